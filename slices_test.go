package splitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlicesRoundTrip(t *testing.T) {
	sv := WithLinear[int](2)
	for i := 0; i < 23; i++ {
		sv.Push(i)
	}

	it, err := sv.Slices(3, 19)
	require.NoError(t, err)

	var flat []int
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		flat = append(flat, s...)
	}

	want := make([]int, 0, 16)
	for i := 3; i < 19; i++ {
		v, _ := sv.Get(i)
		want = append(want, v)
	}
	assert.Equal(t, want, flat)
}

func TestSlicesEmptyRange(t *testing.T) {
	sv := New[int]()
	sv.ExtendFromSlice([]int{1, 2, 3})

	it, err := sv.Slices(1, 1)
	require.NoError(t, err)
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestSlicesOutOfBounds(t *testing.T) {
	sv := New[int]()
	sv.ExtendFromSlice([]int{1, 2, 3})

	_, err := sv.Slices(0, 10)
	assert.Error(t, err)
}

func TestSlicesMutWritesThrough(t *testing.T) {
	sv := WithLinear[int](2)
	sv.ExtendFromSlice([]int{0, 1, 2, 3, 4, 5})

	it, err := sv.SlicesMut(0, sv.Len())
	require.NoError(t, err)
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		for i := range s {
			s[i] *= 10
		}
	}

	v, _ := sv.Get(5)
	assert.Equal(t, 50, v)
}

func TestSliceFlatten(t *testing.T) {
	sv := WithLinear[int](2)
	sv.ExtendFromSlice([]int{0, 1, 2, 3, 4, 5, 6})

	it, err := sv.Slices(0, sv.Len())
	require.NoError(t, err)

	var got []int
	for v := range it.Flatten() {
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, got)
}
