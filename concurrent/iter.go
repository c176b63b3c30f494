package concurrent

// SliceIter yields the contiguous slices covering a range of
// positions within a ConcurrentSplitVec's allocated capacity.
type SliceIter[T any] struct {
	cv      *ConcurrentSplitVec[T]
	fragIdx int
	offset  int
	remain  int
}

// Next returns the next slice and true, or nil and false once the
// range is exhausted.
func (it *SliceIter[T]) Next() ([]T, bool) {
	if it.remain == 0 {
		return nil, false
	}
	f := it.cv.slots[it.fragIdx]
	avail := f.Capacity() - it.offset
	n := avail
	if n > it.remain {
		n = it.remain
	}
	s := f.MutSlice()[:f.Capacity()][it.offset : it.offset+n]
	it.offset += n
	it.remain -= n
	if it.offset == f.Capacity() {
		it.fragIdx++
		it.offset = 0
	}
	return s, true
}

// PtrIter yields raw pointers to individual positions across fragment
// boundaries, for consumers that need pointer identity rather than a
// batch slice view.
type PtrIter[T any] struct {
	cv      *ConcurrentSplitVec[T]
	fragIdx int
	offset  int
	remain  int
}

// Next returns the next pointer and true, or nil and false once the
// range is exhausted.
func (it *PtrIter[T]) Next() (*T, bool) {
	if it.remain == 0 {
		return nil, false
	}
	f := it.cv.slots[it.fragIdx]
	p := f.Ptr(it.offset)
	it.offset++
	it.remain--
	if it.offset == f.Capacity() {
		it.fragIdx++
		it.offset = 0
	}
	return p, true
}

// ElemIter yields elements by value over a declared-initialized
// prefix of a ConcurrentSplitVec.
type ElemIter[T any] struct {
	cv      *ConcurrentSplitVec[T]
	fragIdx int
	offset  int
	remain  int
}

// Next returns the next element and true, or the zero value and false
// once exhausted.
func (it *ElemIter[T]) Next() (T, bool) {
	var zero T
	if it.remain == 0 {
		return zero, false
	}
	f := it.cv.slots[it.fragIdx]
	v := f.Get(it.offset)
	it.offset++
	it.remain--
	if it.offset == f.Capacity() {
		it.fragIdx++
		it.offset = 0
	}
	return v, true
}

// ElemIterMut is the pointer-yielding counterpart to ElemIter: Next
// returns a stable pointer into fragment storage instead of a copy, so
// the caller can mutate a declared-initialized prefix of a
// ConcurrentSplitVec in place while walking it.
type ElemIterMut[T any] struct {
	cv      *ConcurrentSplitVec[T]
	fragIdx int
	offset  int
	remain  int
}

// Next returns a pointer to the next element and true, or nil and
// false once exhausted.
func (it *ElemIterMut[T]) Next() (*T, bool) {
	if it.remain == 0 {
		return nil, false
	}
	f := it.cv.slots[it.fragIdx]
	p := f.Ptr(it.offset)
	it.offset++
	it.remain--
	if it.offset == f.Capacity() {
		it.fragIdx++
		it.offset = 0
	}
	return p, true
}
