package splitvec_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/splitvec"
	"github.com/standardbeagle/splitvec/coniter"
)

// TestFanOutConsumptionWithErrgroup demonstrates draining a SplitVec
// across a worker pool via the concurrent position-reserving iterator:
// each goroutine reserves disjoint elements with ConIter.Next and
// reports them to a mutex-guarded collector, and the whole group is
// driven with an errgroup so the first worker error cancels the rest.
func TestFanOutConsumptionWithErrgroup(t *testing.T) {
	sv := splitvec.WithLinear[int](4)
	const total = 5000
	for i := 0; i < total; i++ {
		sv.Push(i)
	}

	ci := coniter.New(sv)

	var mu sync.Mutex
	seen := make([]bool, total)

	g, ctx := errgroup.WithContext(context.Background())
	const workers = 8
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				idx, v, ok := ci.NextWithIdx()
				if !ok {
					return nil
				}
				require.Equal(t, idx, v)
				mu.Lock()
				seen[idx] = true
				mu.Unlock()
			}
		})
	}
	require.NoError(t, g.Wait())

	for i, ok := range seen {
		assert.True(t, ok, "index %d was never reserved by any worker", i)
	}
}

// TestFanOutChunkedConsumption demonstrates the same drain using
// ChunkPuller so each worker claims a batch of positions per
// reservation instead of one at a time.
func TestFanOutChunkedConsumption(t *testing.T) {
	sv := splitvec.WithDoubling[int]()
	const total = 4735
	for i := 0; i < total; i++ {
		sv.Push(i)
	}

	ci := coniter.New(sv)

	var mu sync.Mutex
	count := 0

	g := new(errgroup.Group)
	const workers = 4
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			puller := ci.ChunkPuller(7)
			for {
				chunk, ok := puller.Pull()
				if !ok {
					return nil
				}
				n := 0
				for range chunk {
					n++
				}
				mu.Lock()
				count += n
				mu.Unlock()
			}
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, total, count)
}
