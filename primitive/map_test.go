package primitive_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grintlab/grint/primitive"
)

// TestMap_GetAbsentReturnsMiss verifies the configured miss value contract.
func TestMap_GetAbsentReturnsMiss(t *testing.T) {
	m := primitive.NewMap[int32, int64](0, -1)
	assert.Equal(t, int64(-1), m.Get(42), "absent key must return the miss value")
	assert.Equal(t, int64(-1), m.Miss())
	assert.False(t, m.Contains(42))
	assert.Equal(t, 0, m.Len())
}

// TestMap_PutGetOverwrite verifies last-write-wins and Len accounting.
func TestMap_PutGetOverwrite(t *testing.T) {
	m := primitive.NewMap[int32, int64](4, 0)
	m.Put(7, 100)
	m.Put(7, 200)
	assert.Equal(t, int64(200), m.Get(7), "Put must overwrite")
	assert.Equal(t, 1, m.Len(), "overwrite must not change Len")
}

// TestMap_ZeroKeyAndZeroValue verifies that 0 is an ordinary key and value.
func TestMap_ZeroKeyAndZeroValue(t *testing.T) {
	m := primitive.NewMap[int64, int64](0, -1)
	m.Put(0, 0)
	assert.True(t, m.Contains(0))
	assert.Equal(t, int64(0), m.Get(0))
	assert.True(t, m.Remove(0))
	assert.False(t, m.Contains(0))
	assert.Equal(t, int64(-1), m.Get(0))
}

// TestMap_GrowRetainsEntries inserts far past the initial capacity and
// verifies every live key still retrieves its last-written value.
func TestMap_GrowRetainsEntries(t *testing.T) {
	const n = 10_000
	m := primitive.NewMap[int32, int64](0, -1)
	for i := int32(0); i < n; i++ {
		m.Put(i, int64(i)*3)
	}
	require.Equal(t, n, m.Len())
	for i := int32(0); i < n; i++ {
		require.Equal(t, int64(i)*3, m.Get(i), "key %d after resizes", i)
	}
}

// TestMap_RemoveBackwardShift forces a long collision cluster by inserting
// keys far beyond capacity, then removes from the middle of the cluster and
// verifies every survivor remains reachable (probe-sequence correctness).
func TestMap_RemoveBackwardShift(t *testing.T) {
	m := primitive.NewMap[int64, int64](64, -1)
	keys := make([]int64, 0, 48)
	for i := int64(0); i < 48; i++ {
		m.Put(i*977, i)
		keys = append(keys, i*977)
	}
	// Remove every third key.
	removed := 0
	for i := 0; i < len(keys); i += 3 {
		require.True(t, m.Remove(keys[i]))
		removed++
	}
	for i, k := range keys {
		if i%3 == 0 {
			require.False(t, m.Contains(k), "removed key %d resurfaced", k)
			require.Equal(t, int64(-1), m.Get(k))
		} else {
			require.Equal(t, int64(i), m.Get(k), "survivor %d lost after shifts", k)
		}
	}
	assert.Equal(t, len(keys)-removed, m.Len())
}

// TestMap_PutRemoveChurn replays a random interleaving of put/remove against
// a reference map; containsKey must reflect the net effect throughout.
func TestMap_PutRemoveChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m := primitive.NewMap[int32, int32](0, -1)
	ref := make(map[int32]int32)
	for op := 0; op < 50_000; op++ {
		k := int32(rng.Intn(512))
		if rng.Intn(3) == 0 {
			_, inRef := ref[k]
			require.Equal(t, inRef, m.Remove(k))
			delete(ref, k)
		} else {
			v := int32(rng.Intn(1 << 20))
			m.Put(k, v)
			ref[k] = v
		}
	}
	require.Equal(t, len(ref), m.Len())
	for k, v := range ref {
		require.Equal(t, v, m.Get(k))
	}
	for k := int32(0); k < 512; k++ {
		_, inRef := ref[k]
		require.Equal(t, inRef, m.Contains(k), "Contains(%d) diverged", k)
	}
}

// TestMap_Iteration verifies Keys/All cover exactly the live entries.
func TestMap_Iteration(t *testing.T) {
	m := primitive.NewMap[int32, int64](0, 0)
	want := map[int32]int64{1: 10, 2: 20, 3: 30, 4: 40}
	for k, v := range want {
		m.Put(k, v)
	}
	m.Remove(2)
	delete(want, 2)

	gotKeys := make(map[int32]bool)
	for k := range m.Keys() {
		assert.False(t, gotKeys[k], "key %d yielded twice", k)
		gotKeys[k] = true
	}
	assert.Len(t, gotKeys, len(want))

	got := make(map[int32]int64)
	for k, v := range m.All() {
		got[k] = v
	}
	assert.Equal(t, want, got)

	// Restartable: a second range observes the same contents.
	again := make(map[int32]int64)
	for k, v := range m.All() {
		again[k] = v
	}
	assert.Equal(t, got, again)
}

// TestMap_IterationEarlyStop verifies that a break mid-range is honored.
func TestMap_IterationEarlyStop(t *testing.T) {
	m := primitive.NewMap[int32, int32](0, 0)
	for i := int32(0); i < 100; i++ {
		m.Put(i, i)
	}
	seen := 0
	for range m.Keys() {
		seen++
		if seen == 5 {
			break
		}
	}
	assert.Equal(t, 5, seen)
}

// TestMap_Clear verifies Clear empties the table without shrinking it.
func TestMap_Clear(t *testing.T) {
	m := primitive.NewMap[int32, int32](0, -1)
	for i := int32(0); i < 100; i++ {
		m.Put(i, i)
	}
	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, int32(-1), m.Get(50))
	m.Put(1, 2)
	assert.Equal(t, int32(2), m.Get(1))
}
