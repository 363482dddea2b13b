package primitive_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grintlab/grint/primitive"
)

// TestSet_AddIdempotent verifies that re-adding a present value changes
// neither the size nor the multiset of iterated values.
func TestSet_AddIdempotent(t *testing.T) {
	s := primitive.NewSet[uint64](0)
	assert.True(t, s.Add(5))
	assert.False(t, s.Add(5), "second Add of the same value must report false")
	assert.Equal(t, 1, s.Len())

	count := 0
	for v := range s.Values() {
		assert.Equal(t, uint64(5), v)
		count++
	}
	assert.Equal(t, 1, count, "value must be yielded exactly once")
}

// TestSet_ContainsRemove verifies the basic membership lifecycle.
func TestSet_ContainsRemove(t *testing.T) {
	s := primitive.NewSet[int32](4)
	assert.False(t, s.Contains(9))
	s.Add(9)
	assert.True(t, s.Contains(9))
	assert.True(t, s.Remove(9))
	assert.False(t, s.Remove(9), "removing an absent value must report false")
	assert.False(t, s.Contains(9))
	assert.Equal(t, 0, s.Len())
}

// TestSet_GrowRetainsValues crosses several resizes and verifies membership.
func TestSet_GrowRetainsValues(t *testing.T) {
	const n = 10_000
	s := primitive.NewSet[uint64](0)
	for i := uint64(0); i < n; i++ {
		s.Add(i * 13)
	}
	require.Equal(t, n, s.Len())
	for i := uint64(0); i < n; i++ {
		require.True(t, s.Contains(i*13), "value %d lost across resizes", i*13)
	}
	assert.False(t, s.Contains(7))
}

// TestSet_Churn replays random add/remove against a reference set.
func TestSet_Churn(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := primitive.NewSet[int64](0)
	ref := make(map[int64]bool)
	for op := 0; op < 50_000; op++ {
		k := int64(rng.Intn(400))
		if rng.Intn(2) == 0 {
			require.Equal(t, ref[k], s.Remove(k))
			delete(ref, k)
		} else {
			require.Equal(t, !ref[k], s.Add(k))
			ref[k] = true
		}
	}
	require.Equal(t, len(ref), s.Len())
	for k := int64(0); k < 400; k++ {
		require.Equal(t, ref[k], s.Contains(k), "Contains(%d) diverged", k)
	}
}

// TestSet_Clear verifies Clear empties the set and it remains usable.
func TestSet_Clear(t *testing.T) {
	s := primitive.NewSet[int32](0)
	for i := int32(0); i < 64; i++ {
		s.Add(i)
	}
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(1))
	assert.True(t, s.Add(1))
}
