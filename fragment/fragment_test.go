package fragment

import (
	"encoding/binary"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFragment(t *testing.T) {
	f := New[int](4)
	assert.Equal(t, 4, f.Capacity())
	assert.Equal(t, 0, f.Len())
	assert.True(t, f.IsEmpty())
	assert.True(t, f.HasRoomForOne())
	assert.Equal(t, 4, f.Room())
}

func TestPushPop(t *testing.T) {
	f := New[int](3)
	f.Push(1)
	f.Push(2)
	f.Push(3)
	assert.False(t, f.HasRoomForOne())
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []int{1, 2, 3}, f.Slice())

	v, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.HasRoomForOne())
}

func TestPushOnFullPanics(t *testing.T) {
	f := New[int](1)
	f.Push(1)
	assert.Panics(t, func() { f.Push(2) })
}

func TestPopEmpty(t *testing.T) {
	f := New[int](2)
	_, ok := f.Pop()
	assert.False(t, ok)
}

func TestGetSet(t *testing.T) {
	f := New[string](2)
	f.Push("a")
	f.Push("b")
	assert.Equal(t, "a", f.Get(0))
	f.Set(1, "z")
	assert.Equal(t, "z", f.Get(1))
}

func TestPtrStability(t *testing.T) {
	f := New[int](4)
	f.Push(10)
	p := f.Ptr(0)
	f.Push(20)
	f.Push(30)
	assert.Equal(t, 10, *p, "address of element 0 must remain stable across further pushes")
}

func TestTruncateAndClear(t *testing.T) {
	f := New[int](4)
	for i := 0; i < 4; i++ {
		f.Push(i)
	}
	f.Truncate(2)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []int{0, 1}, f.Slice())
	assert.True(t, f.HasRoomForOne())

	f.Clear()
	assert.Equal(t, 0, f.Len())
}

func TestFromSlice(t *testing.T) {
	backing := make([]int, 2, 5)
	backing[0], backing[1] = 7, 8
	f := FromSlice(backing)
	assert.Equal(t, 5, f.Capacity())
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []int{7, 8}, f.Slice())

	f.Push(9)
	assert.Equal(t, []int{7, 8, 9}, f.Slice())
}

func TestIntoSlice(t *testing.T) {
	f := New[int](3)
	f.Push(1)
	f.Push(2)
	s := f.IntoSlice()
	assert.Equal(t, []int{1, 2}, s)
	assert.Equal(t, 0, f.Len())
}

func encodeInt(h *xxhash.Digest, v int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	h.Write(buf[:])
}

func TestFastHashStableAcrossEquivalentContents(t *testing.T) {
	a := New[int](4)
	b := New[int](8)
	for _, v := range []int{1, 2, 3} {
		a.Push(v)
		b.Push(v)
	}
	assert.Equal(t, a.FastHash(encodeInt), b.FastHash(encodeInt))

	b.Push(4)
	assert.NotEqual(t, a.FastHash(encodeInt), b.FastHash(encodeInt))
}

func TestFastHashIgnoresTrailingCapacity(t *testing.T) {
	f := New[int](10)
	f.Push(1)
	f.Push(2)
	before := f.FastHash(encodeInt)

	f.Push(3)
	f.Truncate(2)
	assert.Equal(t, before, f.FastHash(encodeInt))
}
