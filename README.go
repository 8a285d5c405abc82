/*
Package cursor provides pull based iteration over values of any origin.

The package centers on the Iterator interface.
Everything else is either a producer that wraps a concrete data source into an Iterator,
a combinator that derives a new Iterator out of existing ones,
or a consumer that walks an Iterator down to a final result.
Since all three speak the same small protocol,
sources and consumers compose freely without knowing about each other.

The length of an iterated sequence is not known up front.
It can be anything from zero values to a series that never ends on its own,
so consumers treat running out of values as a regular outcome rather than an error.

# Resources

https://en.wikipedia.org/wiki/Iterator_pattern
*/
package cursor
