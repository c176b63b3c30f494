package growth

import (
	"fmt"
	"math/bits"
)

// minLinearExponent and maxLinearExponent bound the fragment-capacity
// exponent k accepted by NewLinear: capacity is always 2^k, chosen so
// that index resolution can use a bit shift and mask instead of
// division, and so the exponent never approaches the platform's word
// width. The upper bound is 32 on 64-bit platforms and 29 on 32-bit
// ones.
const (
	minLinearExponent = 1
	maxLinearExponent = 29 + 3*(bits.UintSize/64)
)

// Linear is a growth policy under which every fragment has the same
// capacity, 2^k for a constructor-supplied exponent k.
type Linear struct {
	exponent int
	capacity int
}

// NewLinear builds a Linear policy with fragment capacity 2^exponent.
// It panics if exponent is outside 1..32 (1..29 on 32-bit platforms),
// mirroring orx-split-vec's
// LinearGrowth constructor: an invalid exponent is a programmer error,
// not a recoverable runtime condition.
func NewLinear(exponent int) Linear {
	if exponent < minLinearExponent || exponent > maxLinearExponent {
		panic(fmt.Sprintf("growth: Linear exponent must be in [%d, %d], got %d", minLinearExponent, maxLinearExponent, exponent))
	}
	return Linear{exponent: exponent, capacity: 1 << uint(exponent)}
}

// Exponent returns the k such that every fragment has capacity 2^k.
func (l Linear) Exponent() int { return l.exponent }

func (l Linear) NewFragmentCapacity(_ []int) int { return l.capacity }

func (l Linear) IsConstantTimeAccess() bool { return true }

func (l Linear) ResolveIndex(i, n int, _ []int) (int, int, bool) {
	if i < 0 || i >= n {
		return 0, 0, false
	}
	f, j := l.ResolveIndexUnchecked(i)
	return f, j, true
}

func (l Linear) ResolveIndexUnchecked(i int) (int, int) {
	return i >> uint(l.exponent), i & (l.capacity - 1)
}

func (l Linear) FragmentCapacityAt(_ int) int { return l.capacity }

func (l Linear) MaxConcurrentCapacity(_ []int, numSlots int) int {
	return numSlots * l.capacity
}

func (l Linear) RequiredFragments(_ []int, maxCapacity int) (int, error) {
	if maxCapacity <= 0 {
		return 0, nil
	}
	full := maxCapacity / l.capacity
	if maxCapacity%l.capacity > 0 {
		full++
	}
	return full, nil
}
