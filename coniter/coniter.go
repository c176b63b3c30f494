// Package coniter turns a segmented container, owned or referenced,
// into a position-reserving iterator suitable for work-stealing
// consumers: each worker reserves a disjoint range of positions with a
// single atomic fetch-add and then reads that range independently, so
// N workers can drain a container without any of them coordinating
// beyond the one shared counter.
package coniter

import (
	"sync/atomic"

	"github.com/standardbeagle/splitvec"
)

// ConIter is a position-reserving iterator over a SplitVec's current
// elements. It is safe for concurrent use by multiple goroutines: Next,
// NextWithIdx, and ChunkPuller.Pull each reserve positions with a
// single atomic fetch-add, so concurrent callers never observe
// overlapping ranges.
type ConIter[T any] struct {
	sv  *splitvec.SplitVec[T]
	n   int64
	pos atomic.Int64
}

// New wraps sv for position-reserving iteration. sv is conceptually
// consumed: callers should not continue to mutate it while the
// iterator is in use.
func New[T any](sv *splitvec.SplitVec[T]) *ConIter[T] {
	return &ConIter[T]{sv: sv, n: int64(sv.Len())}
}

// NewRef wraps a shared reference to sv for position-reserving
// iteration. Unlike New, the caller retains sv and must not mutate it
// for as long as the iterator is in use, since reads race with any
// concurrent structural change.
func NewRef[T any](sv *splitvec.SplitVec[T]) *ConIter[T] {
	return New(sv)
}

// Next atomically reserves the next position and returns its element,
// or the zero value and false if every position has already been
// reserved.
func (ci *ConIter[T]) Next() (T, bool) {
	_, v, ok := ci.NextWithIdx()
	return v, ok
}

// NextWithIdx is Next, additionally returning the reserved flat index.
func (ci *ConIter[T]) NextWithIdx() (int, T, bool) {
	var zero T
	i := ci.pos.Add(1) - 1
	if i >= ci.n {
		return 0, zero, false
	}
	v, _ := ci.sv.Get(int(i))
	return int(i), v, true
}

// SkipToEnd atomically advances the reservation counter to the end,
// so that no further position is ever reserved by this iterator.
func (ci *ConIter[T]) SkipToEnd() {
	ci.pos.Store(ci.n)
}

// IntoSeqIter consumes the adapter and returns a normal, non-atomic
// sequential iterator over whatever positions had not yet been
// reserved.
func (ci *ConIter[T]) IntoSeqIter() *SeqIter[T] {
	start := ci.pos.Load()
	if start > ci.n {
		start = ci.n
	}
	return &SeqIter[T]{sv: ci.sv, pos: int(start), n: int(ci.n)}
}

// SeqIter is the plain sequential iterator produced by
// ConIter.IntoSeqIter.
type SeqIter[T any] struct {
	sv  *splitvec.SplitVec[T]
	pos int
	n   int
}

// Next returns the next element and true, or the zero value and false
// once exhausted.
func (it *SeqIter[T]) Next() (T, bool) {
	var zero T
	if it.pos >= it.n {
		return zero, false
	}
	v, _ := it.sv.Get(it.pos)
	it.pos++
	return v, true
}
