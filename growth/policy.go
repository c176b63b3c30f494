// Package growth implements the pluggable capacity policies that decide
// how a split vector's fragment directory grows and how a flat index
// maps to a (fragment, offset) pair.
package growth

import (
	"math"

	"github.com/standardbeagle/splitvec/internal/vecerr"
)

// Policy is the capability set every growth strategy must provide. It
// is deliberately expressed in terms of plain capacity/length slices
// rather than the fragment package's types, so that this package has
// no dependency on fragment and can be unit-tested in isolation.
type Policy interface {
	// NewFragmentCapacity returns the capacity to allocate for the next
	// fragment, given the capacities of the fragments that already
	// exist.
	NewFragmentCapacity(capacities []int) int

	// ResolveIndex returns the (fragment, offset) pair for flat index i
	// given the container's current length n and the current length of
	// each fragment. ok is false if i is out of bounds (i >= n).
	ResolveIndex(i, n int, fragmentLengths []int) (fragmentIdx, offset int, ok bool)

	// IsConstantTimeAccess reports whether ResolveIndex (and the
	// ConstantTimeAccess fast path, when implemented) runs in O(1)
	// rather than O(number of fragments).
	IsConstantTimeAccess() bool

	// MaxConcurrentCapacity returns the maximum capacity reachable
	// using numSlots pre-allocated fragment-directory slots, without
	// the directory itself needing to reallocate.
	MaxConcurrentCapacity(capacities []int, numSlots int) int

	// RequiredFragments returns how many fragment slots are needed to
	// reach maxCapacity, or an error if the policy cannot represent
	// that capacity at all.
	RequiredFragments(capacities []int, maxCapacity int) (int, error)
}

// ConstantTimeAccess is implemented by policies whose index resolution
// is O(1) and does not need to consult the container's current state.
// The concurrent wrapper requires a policy of this kind.
type ConstantTimeAccess interface {
	Policy

	// ResolveIndexUnchecked returns the (fragment, offset) pair for a
	// flat index without any bounds check against the container's
	// current length — the caller is responsible for knowing the index
	// is within whatever capacity has actually been allocated.
	ResolveIndexUnchecked(i int) (fragmentIdx, offset int)

	// FragmentCapacityAt returns the capacity this policy assigns to
	// the fragment at the given directory slot, independent of whether
	// that fragment has actually been allocated yet.
	FragmentCapacityAt(fragmentIdx int) int
}

// simulateRequiredFragments extends a capacities slice by repeatedly
// calling NewFragmentCapacity until reaching target, the generic
// fallback used by Recursive, which cannot offer a closed form for
// MaxConcurrentCapacity/RequiredFragments because it admits
// externally-appended fragments of arbitrary capacity, and by Doubling
// for capacities beyond its precomputed table.
func simulateRequiredFragments(p Policy, capacities []int, maxCapacity int, policyName string) (int, error) {
	sim := append([]int(nil), capacities...)
	count := len(sim)
	total := 0
	for _, c := range sim {
		total += c
	}

	for total < maxCapacity {
		next := p.NewFragmentCapacity(sim)
		if next <= 0 || total > math.MaxInt-next {
			return 0, vecerr.NewGrowthExhausted(policyName, maxCapacity, "cumulative capacity would overflow")
		}
		sim = append(sim, next)
		total += next
		count++
		if count > 1<<20 {
			return 0, vecerr.NewGrowthExhausted(policyName, maxCapacity, "required fragment count exceeds sane bound")
		}
	}
	return count, nil
}

func simulateMaxConcurrentCapacity(p Policy, capacities []int, numSlots int) int {
	if numSlots <= len(capacities) {
		total := 0
		for _, c := range capacities[:numSlots] {
			total += c
		}
		return total
	}
	sim := append([]int(nil), capacities...)
	total := 0
	for _, c := range sim {
		total += c
	}
	for len(sim) < numSlots {
		next := p.NewFragmentCapacity(sim)
		sim = append(sim, next)
		total += next
	}
	return total
}
