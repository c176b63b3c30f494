package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/splitvec/fragment"
)

func fragmentsOf(rows ...[]int) []*fragment.Fragment[int] {
	out := make([]*fragment.Fragment[int], len(rows))
	for i, row := range rows {
		f := fragment.New[int](len(row))
		for _, v := range row {
			f.Push(v)
		}
		out[i] = f
	}
	return out
}

func compareTo(target int) func(int) int {
	return func(x int) int { return x - target }
}

func TestBinarySearchEmpty(t *testing.T) {
	idx, found := BinarySearchFunc[int](nil, compareTo(42))
	assert.False(t, found)
	assert.Equal(t, 0, idx)
}

func TestBinarySearchEmptyFirstFragment(t *testing.T) {
	fragments := fragmentsOf([]int{})
	idx, found := BinarySearchFunc(fragments, compareTo(42))
	assert.False(t, found)
	assert.Equal(t, 0, idx)
}

func TestBinarySearchEmptySecondFragment(t *testing.T) {
	fragments := fragmentsOf([]int{1, 4, 5}, []int{})

	idx, found := BinarySearchFunc(fragments, compareTo(0))
	assert.False(t, found)
	assert.Equal(t, 0, idx)

	idx, found = BinarySearchFunc(fragments, compareTo(2))
	assert.False(t, found)
	assert.Equal(t, 1, idx)

	idx, found = BinarySearchFunc(fragments, compareTo(42))
	assert.False(t, found)
	assert.Equal(t, 3, idx)

	idx, found = BinarySearchFunc(fragments, compareTo(1))
	assert.True(t, found)
	assert.Equal(t, 0, idx)

	idx, found = BinarySearchFunc(fragments, compareTo(5))
	assert.True(t, found)
	assert.Equal(t, 2, idx)
}

func TestBinarySearchThreeFragments(t *testing.T) {
	fragments := fragmentsOf([]int{1, 4, 5}, []int{7}, []int{9, 10})

	cases := []struct {
		target int
		idx    int
		found  bool
	}{
		{0, 0, false}, {1, 0, true}, {2, 1, false}, {3, 1, false},
		{4, 1, true}, {5, 2, true}, {6, 3, false}, {7, 3, true},
		{8, 4, false}, {9, 4, true}, {10, 5, true}, {11, 6, false},
	}
	for _, c := range cases {
		idx, found := BinarySearchFunc(fragments, compareTo(c.target))
		assert.Equal(t, c.found, found, "target %d", c.target)
		assert.Equal(t, c.idx, idx, "target %d", c.target)
	}
}
