package splitvec

import (
	"cmp"

	"github.com/standardbeagle/splitvec/algorithms"
)

// SortFunc sorts the container's elements in place according to cmp,
// without moving any element across a fragment boundary via
// reallocation (see algorithms.InPlaceSortFunc).
func (sv *SplitVec[T]) SortFunc(compare func(a, b T) int) {
	algorithms.InPlaceSortFunc(sv.fragments, compare)
}

// BinarySearchFunc searches the container, which must already be
// sorted with respect to compare, for an element where compare
// returns 0. See algorithms.BinarySearchFunc for the exact return
// convention.
func (sv *SplitVec[T]) BinarySearchFunc(compare func(T) int) (int, bool) {
	return algorithms.BinarySearchFunc(sv.fragments, compare)
}

// Sort sorts the container's elements of an ordered type into
// ascending order. Go methods cannot introduce additional type
// parameters beyond their receiver's, so this is a free function
// rather than a SplitVec method — mirroring the split between
// SortFunc (a method, taking any T with an explicit comparator) and
// Sort (a function, requiring T to be cmp.Ordered).
func Sort[T cmp.Ordered](sv *SplitVec[T]) {
	sv.SortFunc(cmp.Compare[T])
}

// BinarySearch searches sv, which must already be sorted in ascending
// order, for target.
func BinarySearch[T cmp.Ordered](sv *SplitVec[T], target T) (int, bool) {
	return sv.BinarySearchFunc(func(x T) int { return cmp.Compare(x, target) })
}

// SortByKey sorts sv's elements in ascending order of key(element).
func SortByKey[T any, K cmp.Ordered](sv *SplitVec[T], key func(T) K) {
	sv.SortFunc(func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}

// BinarySearchByKey searches sv, which must already be sorted in
// ascending order of key(element), for an element whose key equals
// target.
func BinarySearchByKey[T any, K cmp.Ordered](sv *SplitVec[T], target K, key func(T) K) (int, bool) {
	return sv.BinarySearchFunc(func(x T) int { return cmp.Compare(key(x), target) })
}
