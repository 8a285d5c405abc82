package cursor

// Reduce folds the sequence into a single value.
// It starts from the initial accumulator value
// and combines the accumulator with every iterated value through the block,
// in the order the iterator yields them.
// The block is either a plain combining function
// or one that can also fail, in which case its error cancels the fold.
// Reduce closes the iterator before returning.
func Reduce[
	R, T any,
	FN func(R, T) R |
		func(R, T) (R, error),
](i Iterator[T], initial R, blk FN) (result R, rErr error) {
	defer func() {
		if cErr := i.Close(); rErr == nil {
			rErr = cErr
		}
	}()
	var fold func(R, T) (R, error)
	switch blk := any(blk).(type) {
	case func(R, T) R:
		fold = func(acc R, v T) (R, error) { return blk(acc, v), nil }
	case func(R, T) (R, error):
		fold = blk
	}
	acc := initial
	for i.Next() {
		var err error
		acc, err = fold(acc, i.Value())
		if err != nil {
			return acc, err
		}
	}
	return acc, i.Err()
}
