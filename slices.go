package splitvec

import "github.com/standardbeagle/splitvec/internal/vecerr"

// SliceIter is a lazy, single-pass iterator over the sequence of
// contiguous slices whose concatenation equals the elements of a
// range [a, b). The first and last slices it yields may be partial;
// every slice in between is a whole fragment. It yields zero slices
// for an empty range.
type SliceIter[T any] struct {
	sv       *SplitVec[T]
	fragIdx  int
	offset   int
	remain   int
}

// Slices returns an iterator over the slices composing [a, b). It
// returns an *vecerr.OutOfBoundsError if b is greater than Len() or a
// is greater than b.
func (sv *SplitVec[T]) Slices(a, b int) (*SliceIter[T], error) {
	if b > sv.length || a > b || a < 0 {
		return nil, vecerr.NewOutOfBounds(b, sv.length)
	}
	it := &SliceIter[T]{sv: sv, remain: b - a}
	if a == b {
		return it, nil
	}
	f, off, ok := sv.growth.ResolveIndex(a, sv.length, sv.fragmentLengths())
	if !ok {
		return nil, vecerr.NewOutOfBounds(a, sv.length)
	}
	it.fragIdx, it.offset = f, off
	return it, nil
}

// SlicesMut is the mutable counterpart to Slices; the slices it yields
// alias the container's storage and may be written through.
func (sv *SplitVec[T]) SlicesMut(a, b int) (*SliceIter[T], error) {
	return sv.Slices(a, b)
}

// Next returns the next contiguous slice in the range and true, or nil
// and false once the range is exhausted.
func (it *SliceIter[T]) Next() ([]T, bool) {
	if it.remain == 0 {
		return nil, false
	}
	f := it.sv.fragments[it.fragIdx]
	avail := f.Len() - it.offset
	n := avail
	if n > it.remain {
		n = it.remain
	}
	s := f.MutSlice()[it.offset : it.offset+n]
	it.offset += n
	it.remain -= n
	if it.offset == f.Len() {
		it.fragIdx++
		it.offset = 0
	}
	return s, true
}

// Remaining reports exactly how many elements are left across every
// slice Next will still yield.
func (it *SliceIter[T]) Remaining() int { return it.remain }

// Flatten adapts it into an element-by-element iterator over the same
// range, turning the slices into a flat element sequence without
// copying.
func (it *SliceIter[T]) Flatten() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for {
			s, ok := it.Next()
			if !ok {
				return
			}
			for _, v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}
