package splitvec

import "github.com/standardbeagle/splitvec/internal/vecerr"

// Get returns the element at flat index i and true, or the zero value
// and false if i is out of bounds.
func (sv *SplitVec[T]) Get(i int) (T, bool) {
	var zero T
	f, off, ok := sv.growth.ResolveIndex(i, sv.length, sv.fragmentLengths())
	if !ok {
		return zero, false
	}
	return sv.fragments[f].Get(off), true
}

// MustGet is like Get but panics with an *vecerr.OutOfBoundsError as
// the panic value if i is out of bounds.
func (sv *SplitVec[T]) MustGet(i int) T {
	v, ok := sv.Get(i)
	if !ok {
		panic(vecerr.NewOutOfBounds(i, sv.length))
	}
	return v
}

// Set overwrites the element at flat index i, returning an
// *vecerr.OutOfBoundsError if i is out of bounds.
func (sv *SplitVec[T]) Set(i int, v T) error {
	f, off, ok := sv.growth.ResolveIndex(i, sv.length, sv.fragmentLengths())
	if !ok {
		return vecerr.NewOutOfBounds(i, sv.length)
	}
	sv.fragments[f].Set(off, v)
	return nil
}

// MustSet is like Set but panics instead of returning an error.
func (sv *SplitVec[T]) MustSet(i int, v T) {
	if err := sv.Set(i, v); err != nil {
		panic(err)
	}
}

// First returns the first element and true, or the zero value and
// false if the container is empty.
func (sv *SplitVec[T]) First() (T, bool) {
	return sv.Get(0)
}

// Last returns the last element and true, or the zero value and false
// if the container is empty.
func (sv *SplitVec[T]) Last() (T, bool) {
	if sv.length == 0 {
		var zero T
		return zero, false
	}
	return sv.Get(sv.length - 1)
}

// GetAt returns the element at the given (fragment, offset) pair
// directly, bypassing index resolution. It is the two-axis counterpart
// to Get, useful to callers that already hold a fragment/offset pair
// from an iterator. ok is false if fragmentIdx or offset is out of
// range for the container's current shape.
func (sv *SplitVec[T]) GetAt(fragmentIdx, offset int) (T, bool) {
	var zero T
	if fragmentIdx < 0 || fragmentIdx >= len(sv.fragments) {
		return zero, false
	}
	f := sv.fragments[fragmentIdx]
	if offset < 0 || offset >= f.Len() {
		return zero, false
	}
	return f.Get(offset), true
}

// SetAt overwrites the element at the given (fragment, offset) pair
// directly. It returns an *vecerr.OutOfBoundsError if the pair is out
// of range.
func (sv *SplitVec[T]) SetAt(fragmentIdx, offset int, v T) error {
	if fragmentIdx < 0 || fragmentIdx >= len(sv.fragments) {
		return vecerr.NewOutOfBounds(fragmentIdx, len(sv.fragments))
	}
	f := sv.fragments[fragmentIdx]
	if offset < 0 || offset >= f.Len() {
		return vecerr.NewOutOfBounds(offset, f.Len())
	}
	f.Set(offset, v)
	return nil
}
