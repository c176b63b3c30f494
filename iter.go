package splitvec

// Iter is a lazy, single-pass, forward element iterator over a
// SplitVec, produced by (*SplitVec[T]).Iter. Its size hint is exact:
// Remaining always reports exactly how many elements are left.
type Iter[T any] struct {
	sv       *SplitVec[T]
	fragIdx  int
	offset   int
	remain   int
}

// Iter returns a forward iterator over every element currently in sv,
// in ascending flat-index order.
func (sv *SplitVec[T]) Iter() *Iter[T] {
	return &Iter[T]{sv: sv, remain: sv.length}
}

// Next returns the next element and true, or the zero value and false
// once the iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.remain == 0 {
		return zero, false
	}
	f := it.sv.fragments[it.fragIdx]
	v := f.Get(it.offset)
	it.offset++
	it.remain--
	if it.offset == f.Len() && it.remain > 0 {
		it.fragIdx++
		it.offset = 0
	}
	return v, true
}

// Remaining reports exactly how many elements Next will still yield.
func (it *Iter[T]) Remaining() int { return it.remain }

// Clone returns an independent iterator that continues from the same
// position as it, so that restarting a partially-consumed reference
// iterator never re-walks elements already seen.
func (it *Iter[T]) Clone() *Iter[T] {
	cp := *it
	return &cp
}

// All adapts it to the standard range-over-func shape, so a forward
// iterator can be consumed with `for v := range sv.Iter().All() { ... }`.
func (it *Iter[T]) All() func(yield func(T) bool) {
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

// IterMut is the pointer-yielding counterpart to Iter: Next returns a
// stable pointer into the underlying fragment storage, so the caller
// can mutate elements in place while walking the container.
type IterMut[T any] struct {
	sv      *SplitVec[T]
	fragIdx int
	offset  int
	remain  int
}

// IterMut returns a forward iterator over every element currently in
// sv, yielding a mutable pointer to each rather than a copy.
func (sv *SplitVec[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{sv: sv, remain: sv.length}
}

// Next returns a pointer to the next element and true, or nil and
// false once the iterator is exhausted.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.remain == 0 {
		return nil, false
	}
	f := it.sv.fragments[it.fragIdx]
	p := f.Ptr(it.offset)
	it.offset++
	it.remain--
	if it.offset == f.Len() && it.remain > 0 {
		it.fragIdx++
		it.offset = 0
	}
	return p, true
}

// Remaining reports exactly how many elements Next will still yield.
func (it *IterMut[T]) Remaining() int { return it.remain }

// All adapts it to the standard range-over-func shape.
func (it *IterMut[T]) All() func(yield func(*T) bool) {
	return func(yield func(*T) bool) {
		for {
			p, ok := it.Next()
			if !ok {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}

// RevIter is the reverse-order counterpart to Iter.
type RevIter[T any] struct {
	sv      *SplitVec[T]
	fragIdx int
	offset  int
	remain  int
}

// IterRev returns a reverse iterator over every element currently in
// sv, from the last element to the first.
func (sv *SplitVec[T]) IterRev() *RevIter[T] {
	r := &RevIter[T]{sv: sv, remain: sv.length}
	if sv.length > 0 {
		r.fragIdx = len(sv.fragments) - 1
		for r.fragIdx > 0 && sv.fragments[r.fragIdx].IsEmpty() {
			r.fragIdx--
		}
		r.offset = sv.fragments[r.fragIdx].Len() - 1
	}
	return r
}

// Next returns the next element in descending flat-index order and
// true, or the zero value and false once exhausted.
func (it *RevIter[T]) Next() (T, bool) {
	var zero T
	if it.remain == 0 {
		return zero, false
	}
	f := it.sv.fragments[it.fragIdx]
	v := f.Get(it.offset)
	it.remain--
	if it.offset == 0 {
		if it.remain > 0 {
			it.fragIdx--
			it.offset = it.sv.fragments[it.fragIdx].Len() - 1
		}
	} else {
		it.offset--
	}
	return v, true
}

// Remaining reports exactly how many elements Next will still yield.
func (it *RevIter[T]) Remaining() int { return it.remain }

// Clone returns an independent iterator continuing from it's current
// position.
func (it *RevIter[T]) Clone() *RevIter[T] {
	cp := *it
	return &cp
}

// All adapts it to the standard range-over-func shape.
func (it *RevIter[T]) All() func(yield func(T) bool) {
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

// RevIterMut is the pointer-yielding, reverse-order counterpart to
// IterMut.
type RevIterMut[T any] struct {
	sv      *SplitVec[T]
	fragIdx int
	offset  int
	remain  int
}

// IterMutRev returns a reverse iterator over every element currently
// in sv, yielding a mutable pointer to each, from the last element to
// the first.
func (sv *SplitVec[T]) IterMutRev() *RevIterMut[T] {
	r := &RevIterMut[T]{sv: sv, remain: sv.length}
	if sv.length > 0 {
		r.fragIdx = len(sv.fragments) - 1
		for r.fragIdx > 0 && sv.fragments[r.fragIdx].IsEmpty() {
			r.fragIdx--
		}
		r.offset = sv.fragments[r.fragIdx].Len() - 1
	}
	return r
}

// Next returns a pointer to the next element in descending flat-index
// order and true, or nil and false once exhausted.
func (it *RevIterMut[T]) Next() (*T, bool) {
	if it.remain == 0 {
		return nil, false
	}
	f := it.sv.fragments[it.fragIdx]
	p := f.Ptr(it.offset)
	it.remain--
	if it.offset == 0 {
		if it.remain > 0 {
			it.fragIdx--
			it.offset = it.sv.fragments[it.fragIdx].Len() - 1
		}
	} else {
		it.offset--
	}
	return p, true
}

// Remaining reports exactly how many elements Next will still yield.
func (it *RevIterMut[T]) Remaining() int { return it.remain }

// All adapts it to the standard range-over-func shape.
func (it *RevIterMut[T]) All() func(yield func(*T) bool) {
	return func(yield func(*T) bool) {
		for {
			p, ok := it.Next()
			if !ok {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}
