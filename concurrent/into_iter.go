package concurrent

// ConcurrentIntoIter is the owning counterpart to Iter/IterMut,
// grounded on orx-split-vec's ConcurrentSplitVecIntoIter: it takes a
// declared range [a, b) of cv's allocated capacity, zeroing every
// position outside that range immediately since they are not part of
// the range being taken, then reads and zeroes each position within
// the range exactly once as the caller consumes it (the Go substitute
// for the original's ptr.read()-then-Drop ownership transfer, which Go
// has no destructor to express automatically).
type ConcurrentIntoIter[T any] struct {
	cv      *ConcurrentSplitVec[T]
	fragIdx int
	offset  int
	remain  int
}

// IntoIter consumes the range [a, b) of cv's allocated capacity: every
// position outside [a, b) is zeroed immediately, and the returned
// iterator reads, then zeroes, each remaining position as it is
// pulled. a and b are clamped to [0, Capacity()].
func (cv *ConcurrentSplitVec[T]) IntoIter(a, b int) *ConcurrentIntoIter[T] {
	var zero T
	capacity := cv.Capacity()
	if a < 0 {
		a = 0
	}
	if a > capacity {
		a = capacity
	}
	if b < 0 {
		b = 0
	}
	if b > capacity {
		b = capacity
	}
	for i := 0; i < a; i++ {
		fIdx, off := cv.growth.ResolveIndexUnchecked(i)
		cv.slots[fIdx].Set(off, zero)
	}
	for i := b; i < capacity; i++ {
		fIdx, off := cv.growth.ResolveIndexUnchecked(i)
		cv.slots[fIdx].Set(off, zero)
	}

	it := &ConcurrentIntoIter[T]{cv: cv, remain: b - a}
	if b > a {
		it.fragIdx, it.offset = cv.growth.ResolveIndexUnchecked(a)
	}
	return it
}

// Next reads the next position, zeroes it, and returns its prior value
// and true, or the zero value and false once the range is exhausted.
func (it *ConcurrentIntoIter[T]) Next() (T, bool) {
	var zero T
	if it.remain == 0 {
		return zero, false
	}
	f := it.cv.slots[it.fragIdx]
	v := f.Get(it.offset)
	f.Set(it.offset, zero)
	it.offset++
	it.remain--
	if it.remain > 0 && it.offset == f.Capacity() {
		it.fragIdx++
		it.offset = 0
	}
	return v, true
}

// Remaining reports exactly how many elements Next will still yield.
func (it *ConcurrentIntoIter[T]) Remaining() int { return it.remain }

// Close discards any unconsumed remainder, zeroing each position Next
// never reached. It is the explicit substitute for the original
// iterator's Drop impl, which zeroed (dropped) whatever was left
// un-pulled when the iterator itself went out of scope.
func (it *ConcurrentIntoIter[T]) Close() {
	for {
		if _, ok := it.Next(); !ok {
			return
		}
	}
}
