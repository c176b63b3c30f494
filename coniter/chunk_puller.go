package coniter

// ChunkPuller batches an iterator's position reservations: each Pull
// reserves up to k positions in a single atomic fetch-add, instead of
// one per element, amortizing the contention on the shared counter
// across a whole chunk.
type ChunkPuller[T any] struct {
	ci *ConIter[T]
	k  int64
}

// ChunkPuller returns a puller that reserves k positions per Pull,
// clamped against whatever remains.
func (ci *ConIter[T]) ChunkPuller(k int) *ChunkPuller[T] {
	if k <= 0 {
		k = 1
	}
	return &ChunkPuller[T]{ci: ci, k: int64(k)}
}

// Pull atomically reserves up to the puller's chunk size worth of
// positions and returns a flattened, single-pass sequence over them,
// and true — or false once nothing remains to reserve.
func (p *ChunkPuller[T]) Pull() (func(yield func(T) bool), bool) {
	start := p.ci.pos.Add(p.k) - p.k
	if start >= p.ci.n {
		return nil, false
	}
	end := start + p.k
	if end > p.ci.n {
		end = p.ci.n
	}
	sv := p.ci.sv
	seq := func(yield func(T) bool) {
		for i := start; i < end; i++ {
			v, _ := sv.Get(int(i))
			if !yield(v) {
				return
			}
		}
	}
	return seq, true
}
