package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidateDefaults(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultTiers, cfg.Tiers)
}

func TestConfigValidateRejectsNonPositive(t *testing.T) {
	cfg := Config{Tiers: []TierConfig{{Capacity: 0, Weight: 1}}}
	assert.Error(t, cfg.Validate())
}

func TestSlabAllocatorGetPut(t *testing.T) {
	sa, err := NewSlabAllocator[int](Config{Tiers: []TierConfig{{Capacity: 8}, {Capacity: 32}}})
	require.NoError(t, err)

	s := sa.Get(5)
	assert.Equal(t, 0, len(s))
	assert.GreaterOrEqual(t, cap(s), 5)

	s = append(s, 1, 2, 3)
	sa.Put(s)

	s2 := sa.Get(8)
	assert.Equal(t, 0, len(s2))
	assert.Equal(t, 8, cap(s2))

	stats := sa.GetStats()
	assert.GreaterOrEqual(t, stats.PoolHits, int64(1))
}

func TestSlabAllocatorFallsBackBeyondLargestTier(t *testing.T) {
	sa, err := NewSlabAllocator[int](Config{Tiers: []TierConfig{{Capacity: 4}}})
	require.NoError(t, err)

	s := sa.Get(100)
	assert.GreaterOrEqual(t, cap(s), 100)
	stats := sa.GetStats()
	assert.Equal(t, int64(1), stats.PoolMisses)
}

func TestSlabAllocatorMemoizesTierLookup(t *testing.T) {
	sa, err := NewSlabAllocator[int](Config{Tiers: []TierConfig{{Capacity: 8}, {Capacity: 32}}})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		s := sa.Get(20)
		assert.Equal(t, 32, cap(s))
		sa.Put(s)
	}

	s := sa.Get(1000)
	assert.GreaterOrEqual(t, cap(s), 1000)
	s2 := sa.Get(1000)
	assert.GreaterOrEqual(t, cap(s2), 1000)
}

func TestDecodeTOML(t *testing.T) {
	data := []byte(`
[[tiers]]
capacity = 8
weight = 0.5

[[tiers]]
capacity = 32
weight = 0.5
`)
	cfg, err := DecodeTOML(data)
	require.NoError(t, err)
	require.Len(t, cfg.Tiers, 2)
	assert.Equal(t, 8, cfg.Tiers[0].Capacity)
	assert.Equal(t, 32, cfg.Tiers[1].Capacity)
}

func TestDecodeTOMLRejectsInvalidTier(t *testing.T) {
	data := []byte(`
[[tiers]]
capacity = 0
`)
	_, err := DecodeTOML(data)
	assert.Error(t, err)
}
