package growth

// Recursive is a growth policy whose next-fragment-capacity sequence
// matches Doubling's, but which additionally tolerates fragments whose
// capacity was not chosen by that formula — such fragments arrive via
// an O(1) external append (see the container's AppendSlice and
// AppendSplitVec operations).
// Because of that, Recursive cannot guarantee constant-time index
// resolution: it does not implement ConstantTimeAccess, and
// ResolveIndex falls back to an O(fragment count) scan.
type Recursive struct{}

func (Recursive) NewFragmentCapacity(capacities []int) int {
	if len(capacities) == 0 {
		return 4
	}
	return capacities[len(capacities)-1] * 2
}

func (Recursive) IsConstantTimeAccess() bool { return false }

// ResolveIndex performs the same O(fragment count) cumulative-length
// scan regardless of whether the fragment capacities happen to follow
// the Doubling schedule, since an append may have inserted fragments
// that don't.
func (Recursive) ResolveIndex(i, n int, fragmentLengths []int) (int, int, bool) {
	if i < 0 || i >= n {
		return 0, 0, false
	}
	prevEnd, end := 0, 0
	for f, length := range fragmentLengths {
		end += length
		if i < end {
			return f, i - prevEnd, true
		}
		prevEnd = end
	}
	return 0, 0, false
}

func (r Recursive) MaxConcurrentCapacity(capacities []int, numSlots int) int {
	return simulateMaxConcurrentCapacity(r, capacities, numSlots)
}

func (r Recursive) RequiredFragments(capacities []int, maxCapacity int) (int, error) {
	return simulateRequiredFragments(r, capacities, maxCapacity, "Recursive")
}
