package splitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortAndBinarySearch(t *testing.T) {
	sv := WithLinear[int](2)
	sv.ExtendFromSlice([]int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0})

	Sort(sv)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, collect(sv))

	for i := 0; i < 10; i++ {
		idx, found := BinarySearch(sv, i)
		assert.True(t, found)
		assert.Equal(t, i, idx)
	}
	_, found := BinarySearch(sv, 42)
	assert.False(t, found)
}

type pair struct {
	key   int
	label string
}

func TestSortByKeyAndBinarySearchByKey(t *testing.T) {
	sv := New[pair]()
	sv.ExtendFromSlice([]pair{{3, "c"}, {1, "a"}, {2, "b"}})

	SortByKey(sv, func(p pair) int { return p.key })
	assert.Equal(t, []pair{{1, "a"}, {2, "b"}, {3, "c"}}, collect(sv))

	idx, found := BinarySearchByKey(sv, 2, func(p pair) int { return p.key })
	assert.True(t, found)
	assert.Equal(t, 1, idx)
}

func TestSortAcrossManyFragments(t *testing.T) {
	sv := WithDoubling[int]()
	n := 200
	for i := 0; i < n; i++ {
		sv.Push((i*37 + 5) % n)
	}
	Sort(sv)
	got := collect(sv)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1], got[i])
	}
}
