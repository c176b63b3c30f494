// Package pool provides an optional tiered slab allocator for fragment
// backing storage, adapted from standardbeagle/lci's slab allocator
// (originally built for reusing trigram-location arrays). SplitVec
// retires whole fragments when Clear or Truncate drops them and when
// Pop empties a trailing fragment beyond the first; code that churns
// through many short-lived split vectors can plug a SlabAllocator in
// via splitvec.WithFragmentPool to recycle those backing arrays instead
// of leaving them for the garbage collector. Because this package is
// internal, only packages of this module can construct a SlabAllocator.
package pool

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// TierConfig describes one capacity tier of the allocator.
type TierConfig struct {
	Capacity int     `toml:"capacity"`
	Weight   float64 `toml:"weight"`
}

// DefaultTiers mirrors the capacity schedule Doubling/Recursive
// fragments actually request (4, 8, 16, ...), so a pooled split vector
// hits a tier on nearly every allocation instead of falling through to
// a fresh make.
var DefaultTiers = []TierConfig{
	{Capacity: 4, Weight: 0.10},
	{Capacity: 8, Weight: 0.15},
	{Capacity: 16, Weight: 0.20},
	{Capacity: 32, Weight: 0.20},
	{Capacity: 64, Weight: 0.15},
	{Capacity: 128, Weight: 0.10},
	{Capacity: 256, Weight: 0.06},
	{Capacity: 512, Weight: 0.04},
}

// Config validates and carries a tier schedule.
type Config struct {
	Tiers []TierConfig
}

// Validate rejects non-positive tier capacities and applies
// DefaultTiers when none were supplied.
func (c *Config) Validate() error {
	if len(c.Tiers) == 0 {
		c.Tiers = DefaultTiers
		return nil
	}
	for i, tier := range c.Tiers {
		if tier.Capacity <= 0 {
			return fmt.Errorf("pool: tier %d has non-positive capacity %d", i, tier.Capacity)
		}
	}
	return nil
}

type tier[T any] struct {
	capacity int
	pool     sync.Pool
}

// Stats tracks allocator-wide hit/miss counters, read with GetStats.
type Stats struct {
	Allocations int64
	Reuses      int64
	PoolHits    int64
	PoolMisses  int64
}

// SlabAllocator is a generic, tiered pool of reusable slices for
// fragment backing storage.
type SlabAllocator[T any] struct {
	tiers []*tier[T]

	mu        sync.Mutex
	stats     Stats
	tierIndex map[uint64]int // xxhash(requested capacity) -> tiers index, memoized
}

// NewSlabAllocator builds an allocator from cfg, validating and
// defaulting it first.
func NewSlabAllocator[T any](cfg Config) (*SlabAllocator[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sa := &SlabAllocator[T]{
		tiers:     make([]*tier[T], len(cfg.Tiers)),
		tierIndex: make(map[uint64]int),
	}
	for i, tc := range cfg.Tiers {
		capacity := tc.Capacity
		sa.tiers[i] = &tier[T]{
			capacity: capacity,
			pool: sync.Pool{
				New: func() any { return make([]T, 0, capacity) },
			},
		}
	}
	return sa, nil
}

// capacityKey fingerprints a requested capacity for the tier-index
// memoization cache, following standardbeagle/lci's xxhash-based fast
// fingerprinting idiom rather than using the capacity itself as a map
// key, so the cache composes with future keys that fold in more than
// just the capacity (e.g. alignment or tier affinity hints).
func capacityKey(capacity int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(capacity))
	return xxhash.Sum64(buf[:])
}

// Get returns a slice with capacity at least the requested amount, and
// length zero.
func (sa *SlabAllocator[T]) Get(capacity int) []T {
	if capacity <= 0 {
		return nil
	}

	key := capacityKey(capacity)
	sa.mu.Lock()
	tierIdx, cached := sa.tierIndex[key]
	sa.mu.Unlock()

	if cached {
		if tierIdx < 0 {
			sa.record(func(st *Stats) { st.Allocations++; st.PoolMisses++ })
			return make([]T, 0, capacity)
		}
		s := sa.tiers[tierIdx].pool.Get().([]T)
		sa.record(func(st *Stats) { st.Reuses++; st.PoolHits++ })
		return s
	}

	for i, t := range sa.tiers {
		if t.capacity >= capacity {
			sa.mu.Lock()
			sa.tierIndex[key] = i
			sa.mu.Unlock()
			s := t.pool.Get().([]T)
			sa.record(func(st *Stats) { st.Reuses++; st.PoolHits++ })
			return s
		}
	}

	sa.mu.Lock()
	sa.tierIndex[key] = -1
	sa.mu.Unlock()
	sa.record(func(st *Stats) { st.Allocations++; st.PoolMisses++ })
	return make([]T, 0, capacity)
}

// Put returns slice to the pool for reuse, clearing its elements first
// so the pool does not keep stale references alive.
func (sa *SlabAllocator[T]) Put(slice []T) {
	if slice == nil || cap(slice) == 0 {
		return
	}
	for _, t := range sa.tiers {
		if t.capacity == cap(slice) {
			var zero T
			slice = slice[:cap(slice)]
			for i := range slice {
				slice[i] = zero
			}
			t.pool.Put(slice[:0])
			return
		}
	}
	sa.record(func(st *Stats) { st.PoolMisses++ })
}

func (sa *SlabAllocator[T]) record(f func(*Stats)) {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	f(&sa.stats)
}

// GetStats returns a snapshot of allocation statistics.
func (sa *SlabAllocator[T]) GetStats() Stats {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.stats
}
