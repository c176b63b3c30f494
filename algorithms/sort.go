package algorithms

import (
	"slices"

	"github.com/standardbeagle/splitvec/fragment"
)

// InPlaceSortFunc sorts fragments in place according to cmp, without
// ever moving an element across fragment boundaries by reallocating —
// each fragment is sorted internally first, and then a donor-row sweep
// exchanges out-of-order leading elements between fragments until the
// whole sequence is sorted. This keeps every element pinned to its
// fragment's backing array; only its offset within that fragment, and
// occasionally its fragment, can change.
//
// cmp follows the slices.SortFunc convention: negative if a sorts
// before b, zero if equal, positive if a sorts after b.
func InPlaceSortFunc[T any](fragments []*fragment.Fragment[T], cmp func(a, b T) int) {
	if len(fragments) == 0 {
		return
	}
	for _, f := range fragments {
		slices.SortFunc(f.MutSlice(), cmp)
	}

	numFragments := len(fragments)
	r, c := 0, 0
	for r < numFragments-1 {
		if targetRow, ok := rowToSwap(fragments, cmp, r, c); ok {
			a := fragments[r].Get(c)
			b := fragments[targetRow].Get(0)
			fragments[r].Set(c, b)
			fragments[targetRow].Set(0, a)

			value := fragments[targetRow].Get(0)
			if p, ok := findPositionToInsert(fragments[targetRow], 1, cmp, value); ok {
				for i := 0; i < p; i++ {
					x := fragments[targetRow].Get(i)
					y := fragments[targetRow].Get(i + 1)
					fragments[targetRow].Set(i, y)
					fragments[targetRow].Set(i+1, x)
				}
			}
		}

		if c == fragments[r].Len()-1 {
			r++
			c = 0
		} else {
			c++
		}
	}
}

// rowToSwap finds, among the rows after r, the one whose first element
// is smallest (breaking ties toward the earliest row) and reports it
// if that element sorts before fragments[r][c].
func rowToSwap[T any](fragments []*fragment.Fragment[T], cmp func(a, b T) int, r, c int) (int, bool) {
	rBest := r + 1
	if rBest == len(fragments) {
		return 0, false
	}
	best := fragments[rBest].Get(0)
	for q := rBest + 1; q < len(fragments); q++ {
		candidate := fragments[q].Get(0)
		if cmp(candidate, best) < 0 {
			best = candidate
			rBest = q
		}
	}
	if cmp(best, fragments[r].Get(c)) < 0 {
		return rBest, true
	}
	return 0, false
}

// findPositionToInsert locates where value belongs among the elements
// of f at indices [start, f.Len()), which are assumed sorted. It
// returns (0, false) if the element at start already sorts at or after
// value, since no reinsertion is then needed; otherwise it returns the
// number of those elements that sort before value.
func findPositionToInsert[T any](f *fragment.Fragment[T], start int, cmp func(a, b T) int, value T) (int, bool) {
	length := f.Len() - start
	if length <= 0 {
		return 0, false
	}
	if cmp(f.Get(start), value) >= 0 {
		return 0, false
	}

	target := 0
	size := length
	left, right := 0, size
	for left < right {
		mid := left + size/2
		if cmp(f.Get(start+mid), value) >= 0 {
			right = mid
		} else {
			target = mid + 1
			left = mid
		}
		if size == 1 {
			return target, true
		}
		size = right - left
	}
	return target, true
}
