package cursor

import "go.llib.dev/cursor/errorkit"

// Break stops a ForEach iteration early when the block returns it, without reporting an error.
const Break errorkit.Error = `cursor:break`

// ForEach calls the block with every value of the iterator, then closes the iterator.
// A Break returned from the block ends the iteration early without an error,
// any other non-nil error ends it and gets returned.
func ForEach[T any](i Iterator[T], blk func(T) error) (rErr error) {
	defer func() {
		if cErr := i.Close(); rErr == nil {
			rErr = cErr
		}
	}()
	for i.Next() {
		if err := blk(i.Value()); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}
	return i.Err()
}
