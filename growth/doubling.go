package growth

import "math/bits"

// doublingTableLen is the number of fragment slots whose capacity we
// tabulate up front (the cumulative table has one more entry, holding
// the total after the last slot), mirroring the
// CAPACITIES/CUMULATIVE_CAPACITIES tables of orx-split-vec's Doubling
// growth policy. 61 slots comfortably covers every directory size
// reachable before a 64-bit cumulative capacity would overflow.
const doublingTableLen = 61

var (
	doublingCapacity   [doublingTableLen]int // capacity of fragment f = 2^(f+2)
	doublingCumulative [doublingTableLen + 1]int
)

func init() {
	cum := 0
	for f := 0; f < doublingTableLen; f++ {
		cap := 1 << uint(f+2)
		doublingCapacity[f] = cap
		doublingCumulative[f] = cum
		cum += cap
	}
	doublingCumulative[doublingTableLen] = cum
}

// Doubling is a growth policy under which fragment f has capacity
// 4*2^f = 2^(f+2); the first fragment has capacity 4.
type Doubling struct{}

func (Doubling) NewFragmentCapacity(capacities []int) int {
	if len(capacities) == 0 {
		return 4
	}
	return capacities[len(capacities)-1] * 2
}

func (Doubling) IsConstantTimeAccess() bool { return true }

func (d Doubling) ResolveIndex(i, n int, _ []int) (int, int, bool) {
	if i < 0 || i >= n {
		return 0, 0, false
	}
	f, j := d.ResolveIndexUnchecked(i)
	return f, j, true
}

// ResolveIndexUnchecked uses the identity i+4 in [2^(f+2), 2^(f+3)),
// i.e. f = floor(log2(i+4)) - 2, which bits.Len gives directly without
// a division or a table probe.
func (Doubling) ResolveIndexUnchecked(i int) (int, int) {
	f := bits.Len(uint(i+4)) - 3
	j := i - doublingCumulativeAt(f)
	return f, j
}

func (Doubling) FragmentCapacityAt(f int) int {
	if f < doublingTableLen {
		return doublingCapacity[f]
	}
	return 1 << uint(f+2)
}

func doublingCumulativeAt(f int) int {
	if f < len(doublingCumulative) {
		return doublingCumulative[f]
	}
	return 1<<uint(f+2) - 4
}

func (Doubling) MaxConcurrentCapacity(_ []int, numSlots int) int {
	return doublingCumulativeAt(numSlots)
}

func (d Doubling) RequiredFragments(_ []int, maxCapacity int) (int, error) {
	if maxCapacity <= 0 {
		return 0, nil
	}
	// smallest f with cumulative(f) >= maxCapacity
	lo, hi := 0, doublingTableLen
	for lo < hi {
		mid := (lo + hi) / 2
		if doublingCumulativeAt(mid) >= maxCapacity {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if doublingCumulativeAt(lo) >= maxCapacity {
		return lo, nil
	}
	return simulateRequiredFragments(d, nil, maxCapacity, "Doubling")
}
