package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/splitvec/fragment"
)

func TestFindPositionToInsert(t *testing.T) {
	f := fragment.New[int](7)
	for _, v := range []int{4, 7, 9, 13, 16, 17, 23} {
		f.Push(v)
	}

	cases := []struct {
		value int
		want  int
		found bool
	}{
		{0, 0, false}, {3, 0, false}, {4, 0, false},
		{5, 1, true}, {6, 1, true}, {7, 1, true},
		{8, 2, true}, {9, 2, true},
		{10, 3, true}, {11, 3, true}, {12, 3, true}, {13, 3, true},
		{14, 4, true}, {15, 4, true}, {16, 4, true},
		{17, 5, true},
		{18, 6, true}, {19, 6, true}, {20, 6, true}, {21, 6, true}, {22, 6, true}, {23, 6, true},
		{24, 7, true}, {25, 7, true}, {100, 7, true},
	}
	for _, c := range cases {
		got, ok := findPositionToInsert(f, 0, func(a, b int) int { return a - b }, c.value)
		assert.Equal(t, c.found, ok, "value %d", c.value)
		if ok {
			assert.Equal(t, c.want, got, "value %d", c.value)
		}
	}
}

func assertSorted(t *testing.T, fragments []*fragment.Fragment[int]) {
	t.Helper()
	var flat []int
	for _, f := range fragments {
		flat = append(flat, f.Slice()...)
	}
	for i := 1; i < len(flat); i++ {
		assert.LessOrEqual(t, flat[i-1], flat[i])
	}
}

func TestInPlaceSortSimple(t *testing.T) {
	fragments := fragmentsOf([]int{2, 4}, []int{0, 5, 6}, []int{1, 3})
	InPlaceSortFunc(fragments, func(a, b int) int { return a - b })
	assertSorted(t, fragments)
}

func TestInPlaceSortManyFragments(t *testing.T) {
	const numFragments = 10
	var fragments []*fragment.Fragment[int]
	capacity := 4
	value := 0
	for i := 0; i < numFragments; i++ {
		f := fragment.New[int](capacity)
		for j := 0; j < capacity; j++ {
			switch value % 3 {
			case 0:
				f.Push(value)
			case 1:
				f.Push(42)
			default:
				f.Push(-value)
			}
			value++
		}
		fragments = append(fragments, f)
		capacity *= 2
	}

	InPlaceSortFunc(fragments, func(a, b int) int { return a - b })
	assertSorted(t, fragments)
}

func TestInPlaceSortEmpty(t *testing.T) {
	InPlaceSortFunc[int](nil, func(a, b int) int { return a - b })
}
