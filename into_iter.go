package splitvec

import "github.com/standardbeagle/splitvec/fragment"

// IntoIter is an owning, forward element iterator: it takes exclusive
// ownership of the fragments it walks and hands each element to the
// caller by value. Calling IntoIter leaves the source SplitVec empty,
// mirroring the original container's by-value into_iter semantics in
// a language without move-out-of-struct.
type IntoIter[T any] struct {
	sv      *SplitVec[T]
	fragIdx int
	offset  int
	remain  int
}

// IntoIter consumes sv, returning an iterator over its elements and
// leaving sv empty (a single, fresh, empty first fragment).
func (sv *SplitVec[T]) IntoIter() *IntoIter[T] {
	owned := &SplitVec[T]{fragments: sv.fragments, growth: sv.growth, length: sv.length, pool: sv.pool}
	it := &IntoIter[T]{sv: owned, remain: sv.length}

	firstCap := sv.growth.NewFragmentCapacity(nil)
	sv.fragments = []*fragment.Fragment[T]{sv.newFragment(firstCap)}
	sv.length = 0
	return it
}

// Next returns the next element by value and true, zeroing its slot so
// the garbage collector can reclaim anything it referenced, or the
// zero value and false once exhausted. When the iterator is abandoned
// before exhaustion, any unconsumed elements remain referenced by the
// fragments the iterator still owns until the iterator itself is
// garbage collected.
func (it *IntoIter[T]) Next() (T, bool) {
	var zero T
	if it.remain == 0 {
		return zero, false
	}
	f := it.sv.fragments[it.fragIdx]
	v := f.Get(it.offset)
	f.Set(it.offset, zero)
	it.offset++
	it.remain--
	if it.offset == f.Len() && it.remain > 0 {
		it.fragIdx++
		it.offset = 0
	}
	return v, true
}

// Remaining reports exactly how many elements Next will still yield.
func (it *IntoIter[T]) Remaining() int { return it.remain }

// All adapts it to the standard range-over-func shape.
func (it *IntoIter[T]) All() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
