package splitvec

import (
	"github.com/standardbeagle/splitvec/fragment"
	"github.com/standardbeagle/splitvec/growth"
)

// IntoFragments consumes sv for conversion into another representation
// (the concurrent wrapper in package concurrent is the only current
// caller): it returns sv's fragment directory, growth policy, and
// logical length, and resets sv to a fresh, empty container using the
// same policy. sv must not be used concurrently with this call.
func IntoFragments[T any](sv *SplitVec[T]) ([]*fragment.Fragment[T], growth.Policy, int) {
	fragments, policy, length := sv.fragments, sv.growth, sv.length
	firstCap := policy.NewFragmentCapacity(nil)
	sv.fragments = []*fragment.Fragment[T]{sv.newFragment(firstCap)}
	sv.length = 0
	return fragments, policy, length
}

// FromFragments builds a SplitVec directly from an existing fragment
// directory, growth policy, and logical length — the inverse of
// IntoFragments, used to reconstruct an owning container from the
// concurrent wrapper's into_inner.
func FromFragments[T any](fragments []*fragment.Fragment[T], g growth.Policy, length int) *SplitVec[T] {
	return &SplitVec[T]{fragments: fragments, growth: g, length: length}
}
