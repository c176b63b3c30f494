package splitvec

import (
	"github.com/standardbeagle/splitvec/fragment"
	"github.com/standardbeagle/splitvec/growth"
	"github.com/standardbeagle/splitvec/internal/diag"
	"github.com/standardbeagle/splitvec/internal/pool"
)

// SplitVec is a segmented, pinned-in-memory dynamic sequence. See the
// package documentation for the pinning guarantee this container
// provides.
type SplitVec[T any] struct {
	fragments []*fragment.Fragment[T]
	growth    growth.Policy
	length    int
	pool      *pool.SlabAllocator[T]
}

// New creates an empty SplitVec with the default growth policy
// (Doubling) and a single, empty first fragment.
func New[T any](opts ...Option[T]) *SplitVec[T] {
	return WithDoubling(opts...)
}

// WithDoubling creates an empty SplitVec whose fragment f has capacity
// 4*2^f.
func WithDoubling[T any](opts ...Option[T]) *SplitVec[T] {
	return withPolicy[T](growth.Doubling{}, 1, opts)
}

// WithDoublingAndDirectoryCapacity is like WithDoubling but
// pre-reserves dirCap fragment-directory slots so that growth up to
// the corresponding maximum concurrent capacity never reallocates the
// directory.
func WithDoublingAndDirectoryCapacity[T any](dirCap int, opts ...Option[T]) *SplitVec[T] {
	return withPolicy[T](growth.Doubling{}, dirCap, opts)
}

// WithLinear creates an empty SplitVec in which every fragment has
// capacity 2^exponent. exponent must be in [1, 32] ([1, 29] on 32-bit
// platforms); WithLinear panics otherwise (see growth.NewLinear).
func WithLinear[T any](exponent int, opts ...Option[T]) *SplitVec[T] {
	return withPolicy[T](growth.NewLinear(exponent), 1, opts)
}

// WithLinearAndDirectoryCapacity is like WithLinear but pre-reserves
// dirCap fragment-directory slots.
func WithLinearAndDirectoryCapacity[T any](exponent, dirCap int, opts ...Option[T]) *SplitVec[T] {
	return withPolicy[T](growth.NewLinear(exponent), dirCap, opts)
}

// WithRecursive creates an empty SplitVec whose next-fragment-capacity
// schedule matches Doubling but which additionally accepts
// externally-appended fragments of arbitrary capacity via AppendSlice
// and AppendSplitVec.
func WithRecursive[T any](opts ...Option[T]) *SplitVec[T] {
	return withPolicy[T](growth.Recursive{}, 1, opts)
}

// WithRecursiveAndDirectoryCapacity is like WithRecursive but
// pre-reserves dirCap fragment-directory slots.
func WithRecursiveAndDirectoryCapacity[T any](dirCap int, opts ...Option[T]) *SplitVec[T] {
	return withPolicy[T](growth.Recursive{}, dirCap, opts)
}

func withPolicy[T any](p growth.Policy, dirCap int, opts []Option[T]) *SplitVec[T] {
	if dirCap < 1 {
		dirCap = 1
	}
	sv := &SplitVec[T]{growth: p}
	applyOptions(sv, opts)

	firstCap := p.NewFragmentCapacity(nil)
	fragments := make([]*fragment.Fragment[T], 1, dirCap)
	fragments[0] = sv.newFragment(firstCap)
	sv.fragments = fragments
	diag.Fragment(0, firstCap)
	return sv
}

// newFragment allocates a fragment of the given capacity, drawing its
// backing storage from the configured pool if one is set.
func (sv *SplitVec[T]) newFragment(capacity int) *fragment.Fragment[T] {
	if sv.pool == nil {
		return fragment.New[T](capacity)
	}
	buf := sv.pool.Get(capacity)
	return fragment.FromSlice(buf)
}

func (sv *SplitVec[T]) releaseFragment(f *fragment.Fragment[T]) {
	if sv.pool == nil {
		return
	}
	sv.pool.Put(f.IntoSlice())
}

// Len returns the number of elements currently stored.
func (sv *SplitVec[T]) Len() int { return sv.length }

// IsEmpty reports whether the container holds no elements.
func (sv *SplitVec[T]) IsEmpty() bool { return sv.length == 0 }

// Capacity returns the sum of every fragment's capacity.
func (sv *SplitVec[T]) Capacity() int {
	total := 0
	for _, f := range sv.fragments {
		total += f.Capacity()
	}
	return total
}

// MaximumConcurrentCapacity returns the maximum number of elements
// reachable without the fragment directory itself needing to
// reallocate, given its currently reserved number of slots.
func (sv *SplitVec[T]) MaximumConcurrentCapacity() int {
	return sv.growth.MaxConcurrentCapacity(sv.fragmentCapacities(), cap(sv.fragments))
}

// ReserveMaximumConcurrentCapacity grows the fragment directory (not
// the fragments themselves) so that pushing up to newMax elements will
// not require reallocating the directory. It fails only if the growth
// policy cannot represent newMax at all.
func (sv *SplitVec[T]) ReserveMaximumConcurrentCapacity(newMax int) error {
	required, err := sv.growth.RequiredFragments(sv.fragmentCapacities(), newMax)
	if err != nil {
		return err
	}
	if required <= cap(sv.fragments) {
		return nil
	}
	grown := make([]*fragment.Fragment[T], len(sv.fragments), required)
	copy(grown, sv.fragments)
	diag.Directory(cap(sv.fragments), required)
	sv.fragments = grown
	return nil
}

// Fragments returns a read-only view of the fragment directory.
// Callers must not mutate the returned slice or the fragments it
// points to through means other than SplitVec's own API.
func (sv *SplitVec[T]) Fragments() []*fragment.Fragment[T] {
	return sv.fragments
}

// Growth returns the container's growth policy.
func (sv *SplitVec[T]) Growth() growth.Policy { return sv.growth }

func (sv *SplitVec[T]) fragmentCapacities() []int {
	caps := make([]int, len(sv.fragments))
	for i, f := range sv.fragments {
		caps[i] = f.Capacity()
	}
	return caps
}

func (sv *SplitVec[T]) fragmentLengths() []int {
	lens := make([]int, len(sv.fragments))
	for i, f := range sv.fragments {
		lens[i] = f.Len()
	}
	return lens
}
