// Package concurrent wraps a segmented container for shared-access
// scenarios: multiple goroutines may read an already-published
// capacity and write to disjoint, externally-partitioned positions
// without a per-element lock. Growing the wrapper's capacity is a
// distinguished, logically single-writer operation whose result is
// published with a release store so that other goroutines observe
// newly allocated fragments by re-reading the counter with an acquire
// load — the same publication pattern standardbeagle/lci's
// internal/types block allocators use, adapted here to fragment
// storage instead of fixed-size blocks.
package concurrent

import (
	"sync"
	"sync/atomic"

	"github.com/standardbeagle/splitvec"
	"github.com/standardbeagle/splitvec/fragment"
	"github.com/standardbeagle/splitvec/growth"
	"github.com/standardbeagle/splitvec/internal/vecerr"
)

// ConcurrentSplitVec is the shared-access wrapper around a segmented
// container. It requires a growth policy with constant-time index
// resolution (Linear or Doubling); Recursive containers cannot be
// converted, since position resolution there depends on fragment
// lengths that a concurrent writer may still be populating.
type ConcurrentSplitVec[T any] struct {
	growth growth.ConstantTimeAccess

	mu        sync.Mutex // serializes grow_to / reserve against each other
	slots     []*fragment.Fragment[T]
	capacity  atomic.Int64 // C: published (release) after a slot becomes readable
	maxCap    atomic.Int64 // M: current directory ceiling, grows via Reserve
	pinnedLen atomic.Int64 // declared-initialized prefix, set by SetPinnedVecLen
}

// FromSplitVec takes ownership of sv's fragments and policy, leaving
// sv reset to a fresh, empty container, and returns the concurrent
// wrapper around them. It fails if sv's growth policy does not support
// constant-time index resolution.
func FromSplitVec[T any](sv *splitvec.SplitVec[T]) (*ConcurrentSplitVec[T], error) {
	cta, ok := sv.Growth().(growth.ConstantTimeAccess)
	if !ok {
		return nil, vecerr.NewContractViolation("FromSplitVec", "growth policy does not support constant-time index resolution")
	}

	fragments, _, length := splitvec.IntoFragments(sv)

	numSlots := cap(fragments)
	if numSlots < len(fragments) {
		numSlots = len(fragments)
	}
	slots := make([]*fragment.Fragment[T], numSlots)
	copy(slots, fragments)

	capacities := make([]int, len(fragments))
	total := 0
	for i, f := range fragments {
		capacities[i] = f.Capacity()
		total += f.Capacity()
	}

	cv := &ConcurrentSplitVec[T]{growth: cta, slots: slots}
	cv.capacity.Store(int64(total))
	cv.maxCap.Store(int64(cta.MaxConcurrentCapacity(capacities, numSlots)))
	cv.pinnedLen.Store(int64(length))
	return cv, nil
}

// Capacity returns the number of positions currently backed by
// allocated fragment storage, read with acquire ordering.
func (cv *ConcurrentSplitVec[T]) Capacity() int {
	return int(cv.capacity.Load())
}

// MaxCapacity returns the largest capacity reachable without the slot
// directory itself needing to grow.
func (cv *ConcurrentSplitVec[T]) MaxCapacity() int {
	return int(cv.maxCap.Load())
}

// GrowTo ensures at least newCap positions are backed by allocated
// fragment storage, allocating successive directory slots under a
// single-writer lock, and returns the resulting capacity. It never
// exceeds MaxCapacity; callers that need more must call
// ReserveMaximumConcurrentCapacity first.
func (cv *ConcurrentSplitVec[T]) GrowTo(newCap int) (int, error) {
	cv.mu.Lock()
	defer cv.mu.Unlock()

	current := int(cv.capacity.Load())
	if newCap <= current {
		return current, nil
	}
	if newCap > int(cv.maxCap.Load()) {
		return current, vecerr.NewGrowthExhausted("concurrent", newCap, "exceeds reserved maximum concurrent capacity")
	}

	slotIdx := 0
	for ; slotIdx < len(cv.slots) && cv.slots[slotIdx] != nil; slotIdx++ {
	}
	for current < newCap {
		fragCap := cv.growth.FragmentCapacityAt(slotIdx)
		cv.slots[slotIdx] = fragment.New[T](fragCap)
		current += fragCap
		slotIdx++
	}
	cv.capacity.Store(int64(current))
	return current, nil
}

// GrowToAndFillWith is GrowTo followed by initializing every newly
// allocated slot's positions with the result of calling f once per
// position.
func (cv *ConcurrentSplitVec[T]) GrowToAndFillWith(newCap int, f func() T) (int, error) {
	before := cv.Capacity()
	after, err := cv.GrowTo(newCap)
	if err != nil {
		return before, err
	}
	if after > before {
		if err := cv.FillWith(before, after, f); err != nil {
			return after, err
		}
	}
	return after, nil
}

// FillWith writes f() into every position in [a, b). The caller must
// ensure the range lies within the currently allocated capacity and
// is not concurrently read until filled.
func (cv *ConcurrentSplitVec[T]) FillWith(a, b int, f func() T) error {
	if b > cv.Capacity() {
		return vecerr.NewOutOfBounds(b, cv.Capacity())
	}
	for i := a; i < b; i++ {
		fIdx, off := cv.growth.ResolveIndexUnchecked(i)
		cv.slots[fIdx].Set(off, f())
	}
	return nil
}

// Get returns the element at position i. No bounds check is performed
// beyond i < Capacity(); reading an unfilled position returns the
// fragment's zero-valued slot.
func (cv *ConcurrentSplitVec[T]) Get(i int) T {
	fIdx, off := cv.growth.ResolveIndexUnchecked(i)
	return cv.slots[fIdx].Get(off)
}

// GetPtr returns a pointer to position i's storage slot, the primitive
// that lets independent goroutines each write their own reserved
// positions without synchronizing with one another.
func (cv *ConcurrentSplitVec[T]) GetPtr(i int) *T {
	fIdx, off := cv.growth.ResolveIndexUnchecked(i)
	return cv.slots[fIdx].Ptr(off)
}

// SlicesWithinCapacity returns an iterator over the slices covering
// [a, b), which must lie within Capacity(); unlike the plain
// container's Slices, it does not require the range to lie within a
// declared logical length.
func (cv *ConcurrentSplitVec[T]) SlicesWithinCapacity(a, b int) (*SliceIter[T], error) {
	if b > cv.Capacity() || a > b || a < 0 {
		return nil, vecerr.NewOutOfBounds(b, cv.Capacity())
	}
	it := &SliceIter[T]{cv: cv, remain: b - a}
	if a == b {
		return it, nil
	}
	it.fragIdx, it.offset = cv.growth.ResolveIndexUnchecked(a)
	return it, nil
}

// PtrIterUnchecked returns an iterator of raw pointers to positions
// [a, b), skipping across fragment boundaries, for callers that need
// pointer identity rather than a batch slice view.
func (cv *ConcurrentSplitVec[T]) PtrIterUnchecked(a, b int) *PtrIter[T] {
	it := &PtrIter[T]{cv: cv, remain: b - a}
	if b > a {
		it.fragIdx, it.offset = cv.growth.ResolveIndexUnchecked(a)
	}
	return it
}

// Iter returns an element iterator over the first length positions,
// which the caller asserts are initialized.
func (cv *ConcurrentSplitVec[T]) Iter(length int) *ElemIter[T] {
	return &ElemIter[T]{cv: cv, remain: length}
}

// IterMut returns a pointer iterator over the first length positions,
// which the caller asserts are initialized, allowing in-place mutation
// while walking the declared prefix.
func (cv *ConcurrentSplitVec[T]) IterMut(length int) *ElemIterMut[T] {
	return &ElemIterMut[T]{cv: cv, remain: length}
}

// SetPinnedVecLen declares that positions [0, length) are initialized.
// This is the length IntoInner observes.
func (cv *ConcurrentSplitVec[T]) SetPinnedVecLen(length int) {
	cv.pinnedLen.Store(int64(length))
}

// PinnedVecLen returns the length last declared via SetPinnedVecLen.
func (cv *ConcurrentSplitVec[T]) PinnedVecLen() int {
	return int(cv.pinnedLen.Load())
}

// IntoInner consumes cv and reconstructs an owning segmented container
// with the given logical length, trimming every fragment's logical
// length to match. It returns an error if length exceeds Capacity().
func (cv *ConcurrentSplitVec[T]) IntoInner(length int) (*splitvec.SplitVec[T], error) {
	if length > cv.Capacity() {
		return nil, vecerr.NewOutOfBounds(length, cv.Capacity())
	}
	var fragments []*fragment.Fragment[T]
	remaining := length
	for _, f := range cv.slots {
		if f == nil {
			break
		}
		if remaining <= 0 {
			break
		}
		n := f.Capacity()
		if n > remaining {
			n = remaining
		}
		f.SetLen(n)
		fragments = append(fragments, f)
		remaining -= n
	}
	if len(fragments) == 0 {
		fragments = []*fragment.Fragment[T]{fragment.New[T](cv.growth.FragmentCapacityAt(0))}
	}
	return splitvec.FromFragments(fragments, cv.growth, length), nil
}

// Clear zeroes elements [0, length) across every allocated fragment
// and resets the declared pinned length to zero. Allocated fragment
// storage is retained for reuse; Capacity() is unchanged.
func (cv *ConcurrentSplitVec[T]) Clear(length int) {
	var zero T
	remaining := length
	for _, f := range cv.slots {
		if f == nil || remaining <= 0 {
			break
		}
		n := f.Capacity()
		if n > remaining {
			n = remaining
		}
		for i := 0; i < n; i++ {
			f.Set(i, zero)
		}
		f.SetLen(0)
		remaining -= n
	}
	cv.pinnedLen.Store(0)
}

// ReserveMaximumConcurrentCapacity enlarges the slot directory (not
// fragment storage) so it can accommodate up to newMax without
// reallocating. It panics if the growth policy cannot represent
// newMax at all — a programmer error, since the caller is expected to
// have sized the directory from a policy-derived bound up front.
func (cv *ConcurrentSplitVec[T]) ReserveMaximumConcurrentCapacity(currentLen, newMax int) {
	cv.mu.Lock()
	defer cv.mu.Unlock()

	if newMax <= int(cv.maxCap.Load()) {
		return
	}

	capacities := make([]int, 0, len(cv.slots))
	for _, f := range cv.slots {
		if f == nil {
			break
		}
		capacities = append(capacities, f.Capacity())
	}
	required, err := cv.growth.RequiredFragments(capacities, newMax)
	if err != nil {
		panic(err)
	}
	if required > len(cv.slots) {
		grown := make([]*fragment.Fragment[T], required)
		copy(grown, cv.slots)
		cv.slots = grown
	}
	newMaxCapacity := cv.growth.MaxConcurrentCapacity(capacities, len(cv.slots))
	cv.maxCap.Store(int64(newMaxCapacity))
}
