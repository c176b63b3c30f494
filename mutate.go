package splitvec

import (
	"github.com/standardbeagle/splitvec/fragment"
	"github.com/standardbeagle/splitvec/growth"
	"github.com/standardbeagle/splitvec/internal/diag"
	"github.com/standardbeagle/splitvec/internal/vecerr"
)

// Push appends x as the new last element, growing the fragment
// directory (and allocating a new fragment) first if the current last
// fragment is full.
func (sv *SplitVec[T]) Push(x T) {
	last := sv.fragments[len(sv.fragments)-1]
	if !last.HasRoomForOne() {
		sv.growFragment()
		last = sv.fragments[len(sv.fragments)-1]
	}
	last.Push(x)
	sv.length++
}

// growFragment appends a new, empty fragment to the directory, sized
// by the container's growth policy, growing the directory slice itself
// first if it has no spare capacity.
func (sv *SplitVec[T]) growFragment() {
	if len(sv.fragments) == cap(sv.fragments) {
		grown := make([]*fragment.Fragment[T], len(sv.fragments), len(sv.fragments)*2)
		copy(grown, sv.fragments)
		diag.Directory(cap(sv.fragments), cap(grown))
		sv.fragments = grown
	}
	next := sv.growth.NewFragmentCapacity(sv.fragmentCapacities())
	sv.fragments = append(sv.fragments, sv.newFragment(next))
	diag.Fragment(len(sv.fragments)-1, next)
}

// Pop removes and returns the last element, if any. An emptied
// trailing fragment beyond the first is retired through the
// configured pool, if any.
func (sv *SplitVec[T]) Pop() (T, bool) {
	var zero T
	if sv.length == 0 {
		return zero, false
	}
	last := sv.fragments[len(sv.fragments)-1]
	v, _ := last.Pop()
	sv.length--
	if last.IsEmpty() && len(sv.fragments) > 1 {
		sv.releaseFragment(last)
		sv.fragments = sv.fragments[:len(sv.fragments)-1]
	}
	return v, true
}

// Insert shifts every element at or after i one slot to the right and
// places x at i. i == Len() appends. It returns an
// *vecerr.OutOfBoundsError if i > Len().
func (sv *SplitVec[T]) Insert(i int, x T) error {
	if i < 0 || i > sv.length {
		return vecerr.NewOutOfBounds(i, sv.length)
	}
	if i == sv.length {
		sv.Push(x)
		return nil
	}
	sv.Push(x) // guarantees room for the shift below
	for j := sv.length - 1; j > i; j-- {
		prev := sv.MustGet(j - 1)
		sv.MustSet(j, prev)
	}
	sv.MustSet(i, x)
	return nil
}

// Remove deletes the element at i, shifting every later element one
// slot to the left, and returns it. It returns an
// *vecerr.OutOfBoundsError if i is out of bounds.
func (sv *SplitVec[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= sv.length {
		return zero, vecerr.NewOutOfBounds(i, sv.length)
	}
	removed := sv.MustGet(i)
	for j := i; j < sv.length-1; j++ {
		next := sv.MustGet(j + 1)
		sv.MustSet(j, next)
	}
	v, _ := sv.Pop()
	_ = v
	return removed, nil
}

// Truncate drops every element at or after newLen. It is a no-op if
// newLen >= Len().
func (sv *SplitVec[T]) Truncate(newLen int) {
	if newLen < 0 {
		newLen = 0
	}
	if newLen >= sv.length {
		return
	}
	remaining := newLen
	keep := 0
	for ; keep < len(sv.fragments); keep++ {
		l := sv.fragments[keep].Len()
		if remaining <= l {
			break
		}
		remaining -= l
	}
	sv.fragments[keep].Truncate(remaining)
	for k := keep + 1; k < len(sv.fragments); k++ {
		sv.releaseFragment(sv.fragments[k])
	}
	sv.fragments = sv.fragments[:keep+1]
	sv.length = newLen
}

// Clear removes every element, retaining only the first, now-empty
// fragment.
func (sv *SplitVec[T]) Clear() {
	sv.Truncate(0)
}

// Extend appends every element produced by seq, in order.
func (sv *SplitVec[T]) Extend(seq func(yield func(T) bool)) {
	seq(func(v T) bool {
		sv.Push(v)
		return true
	})
}

// ExtendFromSlice appends every element of s, in order.
func (sv *SplitVec[T]) ExtendFromSlice(s []T) {
	for _, v := range s {
		sv.Push(v)
	}
}

// AppendSlice adopts s as a new, final fragment without copying its
// elements, in O(1). It is only available on containers built with
// WithRecursive or WithRecursiveAndDirectoryCapacity; it returns an
// *vecerr.ContractViolationError for any other growth policy, since
// only Recursive tolerates a fragment whose capacity the policy itself
// did not choose.
func (sv *SplitVec[T]) AppendSlice(s []T) error {
	if _, ok := sv.growth.(growth.Recursive); !ok {
		return vecerr.NewContractViolation("AppendSlice", "only supported by the Recursive growth policy")
	}
	if len(s) == 0 {
		return nil
	}
	if len(sv.fragments) == cap(sv.fragments) {
		grown := make([]*fragment.Fragment[T], len(sv.fragments), len(sv.fragments)*2+1)
		copy(grown, sv.fragments)
		diag.Directory(cap(sv.fragments), cap(grown))
		sv.fragments = grown
	}
	sv.fragments = append(sv.fragments, fragment.FromSlice(s))
	sv.length += len(s)
	diag.Fragment(len(sv.fragments)-1, cap(s))
	return nil
}

// AppendSplitVec moves every fragment of other onto the end of sv in
// O(number of fragments), leaving other empty. Like AppendSlice, it is
// only available under the Recursive growth policy.
func (sv *SplitVec[T]) AppendSplitVec(other *SplitVec[T]) error {
	if _, ok := sv.growth.(growth.Recursive); !ok {
		return vecerr.NewContractViolation("AppendSplitVec", "only supported by the Recursive growth policy")
	}
	if other.length == 0 {
		return nil
	}
	needed := len(sv.fragments) + len(other.fragments)
	if needed > cap(sv.fragments) {
		grown := make([]*fragment.Fragment[T], len(sv.fragments), needed)
		copy(grown, sv.fragments)
		diag.Directory(cap(sv.fragments), needed)
		sv.fragments = grown
	}
	sv.fragments = append(sv.fragments, other.fragments...)
	sv.length += other.length
	other.fragments = []*fragment.Fragment[T]{fragment.New[T](other.growth.NewFragmentCapacity(nil))}
	other.length = 0
	return nil
}
