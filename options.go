package splitvec

import "github.com/standardbeagle/splitvec/internal/pool"

// Option configures a SplitVec at construction time.
type Option[T any] func(*SplitVec[T])

// WithFragmentPool recycles fragments' backing storage through p when
// fragments are retired by Clear, Truncate or Pop, instead of leaving them
// for the garbage collector.
func WithFragmentPool[T any](p *pool.SlabAllocator[T]) Option[T] {
	return func(sv *SplitVec[T]) { sv.pool = p }
}

func applyOptions[T any](sv *SplitVec[T], opts []Option[T]) {
	for _, opt := range opts {
		opt(sv)
	}
}
