// Package algorithms implements the operations that must see across
// fragment boundaries: binary search and in-place sort. Everything
// else a split vector offers operates one fragment (or one element) at
// a time and lives directly on SplitVec itself.
package algorithms

import "github.com/standardbeagle/splitvec/fragment"

// BinarySearchFunc searches fragments, which must already be sorted
// with respect to cmp, for an element where cmp returns 0. cmp(x)
// should return a negative number if x sorts before the sought value,
// zero if x is the sought value, and a positive number if x sorts
// after it — the same convention as slices.BinarySearchFunc, with the
// target folded into the closure.
//
// It returns (index, true) if a matching element is found. Otherwise
// it returns (insertionIndex, false), the index at which such an
// element would need to be inserted to keep fragments sorted. The scan
// walks fragment by fragment rather than treating the container as one
// flat slice, continuing into the next fragment whenever the
// insertion point found in the current one falls exactly at its end
// (the value could belong at the start of what follows).
func BinarySearchFunc[T any](fragments []*fragment.Fragment[T], cmp func(T) int) (int, bool) {
	begin := 0
	for _, f := range fragments {
		s := f.Slice()
		idx, found := binarySearchSlice(s, cmp)
		if found {
			return begin + idx, true
		}
		if idx != len(s) {
			return begin + idx, false
		}
		begin += len(s)
	}
	return begin, false
}

// binarySearchSlice is the classic sorted-slice binary search,
// returning the same (index, found) shape as BinarySearchFunc for a
// single contiguous slice.
func binarySearchSlice[T any](s []T, cmp func(T) int) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		c := cmp(s[mid])
		switch {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}
