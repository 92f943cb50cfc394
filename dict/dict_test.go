package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intType() *TypeDescriptor[int] {
	return &TypeDescriptor[int]{
		HashKey: func(key int, seed [16]byte) uint64 {
			return uint64(key)*0x9E3779B97F4A7C15 + uint64(seed[0])
		},
	}
}

func TestAddFindDelete(t *testing.T) {
	d := New[int](intType())

	require.NoError(t, d.Add(1, Int64Value(100)))
	require.ErrorIs(t, d.Add(1, Int64Value(200)), ErrKeyExists)

	v, ok := d.Find(1)
	require.True(t, ok)
	require.Equal(t, int64(100), v.Int64())

	require.NoError(t, d.Delete(1))
	require.ErrorIs(t, d.Delete(1), ErrKeyNotFound)

	_, ok = d.Find(1)
	require.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	d := New[int](intType())
	for i := 0; i < 500; i++ {
		require.NoError(t, d.Add(i, Int64Value(int64(i*2))))
	}
	require.Equal(t, 500, d.Len())
	for i := 0; i < 500; i++ {
		v, ok := d.Find(i)
		require.True(t, ok)
		require.Equal(t, int64(i*2), v.Int64())
	}
}

func TestReplaceInsertsThenOverwrites(t *testing.T) {
	d := New[int](intType())
	inserted := d.Replace(1, Int64Value(1))
	require.True(t, inserted)

	inserted = d.Replace(1, Int64Value(2))
	require.False(t, inserted)

	v, ok := d.Find(1)
	require.True(t, ok)
	require.Equal(t, int64(2), v.Int64())
}

func TestRehashPreservesAllKeys(t *testing.T) {
	d := New[int](intType())
	const n = 2000
	for i := 0; i < n; i++ {
		require.NoError(t, d.Add(i, Int64Value(int64(i))))
	}
	// Finish the rehash the inserts left in flight (Expand refuses to run
	// while one is in progress), then force a fresh rehash cycle by
	// requesting a larger size explicitly.
	for d.IsRehashing() {
		d.RehashStep(16)
	}
	require.NoError(t, d.Expand(n*4))
	require.True(t, d.IsRehashing())

	for d.IsRehashing() {
		d.RehashStep(16)
	}
	require.False(t, d.IsRehashing())
	require.Equal(t, n, d.Len())

	for i := 0; i < n; i++ {
		v, ok := d.Find(i)
		require.True(t, ok)
		require.Equal(t, int64(i), v.Int64())
	}
}

func TestResizeModeForbidNeverGrows(t *testing.T) {
	d := New[int](intType())
	d.SetResizeMode(ResizeForbid)
	for i := 0; i < 64; i++ {
		require.NoError(t, d.Add(i, Value{}))
	}
	require.False(t, d.IsRehashing())
}

func TestRehashStepForbidsProgressMidRehash(t *testing.T) {
	d := New[int](intType())
	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, d.Add(i, Int64Value(int64(i))))
	}
	for d.IsRehashing() {
		d.RehashStep(16)
	}
	require.NoError(t, d.Expand(n*4))
	require.True(t, d.IsRehashing())

	// Switching to ResizeForbid mid-rehash must freeze progress, not just
	// block new rehashes from starting.
	d.SetResizeMode(ResizeForbid)
	for i := 0; i < 50; i++ {
		require.True(t, d.RehashStep(16))
	}
	require.True(t, d.IsRehashing())

	d.SetResizeMode(ResizeEnable)
	for d.IsRehashing() {
		d.RehashStep(16)
	}
	require.Equal(t, n, d.Len())
	for i := 0; i < n; i++ {
		v, ok := d.Find(i)
		require.True(t, ok)
		require.Equal(t, int64(i), v.Int64())
	}
}

func TestRehashStepAvoidRatioGatesProgress(t *testing.T) {
	d := New[int](intType())
	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, d.Add(i, Int64Value(int64(i))))
	}
	for d.IsRehashing() {
		d.RehashStep(16)
	}
	// Expand to just double the bucket count: T1/T0 ratio is 2, below
	// ForceResizeRatio, so ResizeAvoid must refuse to migrate any of it.
	require.NoError(t, d.Expand(n*2))
	require.True(t, d.IsRehashing())

	d.SetResizeMode(ResizeAvoid)
	for i := 0; i < 50; i++ {
		require.True(t, d.RehashStep(16))
	}
	require.True(t, d.IsRehashing())

	d.SetResizeMode(ResizeEnable)
	for d.IsRehashing() {
		d.RehashStep(16)
	}
	require.Equal(t, n, d.Len())
}

func TestTwoPhaseUnlink(t *testing.T) {
	d := New[int](intType())
	require.NoError(t, d.Add(1, Int64Value(42)))

	le := d.TwoPhaseUnlinkFind(1)
	require.True(t, le.Found())
	require.Equal(t, int64(42), le.Value().Int64())

	// Rehashing is paused between find and free; confirm the pause
	// counter round-trips without leaving it stuck.
	d.TwoPhaseUnlinkFree(le)
	require.Equal(t, 0, d.pauseRehash)

	_, ok := d.Find(1)
	require.False(t, ok)
}

func TestBareShapeSet(t *testing.T) {
	s := NewSet()
	require.True(t, s.AddToSet("a"))
	require.False(t, s.AddToSet("a"))
	require.True(t, s.Contains("a"))
	require.NoError(t, s.Delete("a"))
	require.False(t, s.Contains("a"))
}
