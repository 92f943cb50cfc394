package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanVisitsEveryKey(t *testing.T) {
	d := New[int](intType())
	const n = 300
	for i := 0; i < n; i++ {
		require.NoError(t, d.Add(i, Int64Value(int64(i))))
	}

	seen := make(map[int]bool, n)
	var cursor uint64
	for {
		cursor = d.Scan(cursor, func(key int, v Value) {
			seen[key] = true
		})
		if cursor == 0 {
			break
		}
	}

	require.Len(t, seen, n)
	for i := 0; i < n; i++ {
		require.True(t, seen[i], "key %d missed by scan", i)
	}
}

func TestScanVisitsEveryKeyDuringRehash(t *testing.T) {
	d := New[int](intType())
	const n = 300
	for i := 0; i < n; i++ {
		require.NoError(t, d.Add(i, Int64Value(int64(i))))
	}
	for d.IsRehashing() {
		d.RehashStep(16)
	}
	require.NoError(t, d.Expand(n*4))
	require.True(t, d.IsRehashing())

	seen := make(map[int]bool, n)
	var cursor uint64
	for {
		cursor = d.Scan(cursor, func(key int, v Value) {
			seen[key] = true
		})
		d.RehashStep(1)
		if cursor == 0 {
			break
		}
	}
	for i := 0; i < n; i++ {
		require.True(t, seen[i], "key %d missed by scan during rehash", i)
	}
}

func TestScanWithDefragRelocatesValue(t *testing.T) {
	d := New[int](intType())
	require.NoError(t, d.Add(1, Int64Value(1)))
	require.NoError(t, d.Add(2, Int64Value(2)))

	var cursor uint64
	for {
		cursor = d.ScanWithDefrag(cursor, func(key int, v Value) (int, Value, bool) {
			return key, Int64Value(v.Int64() * 10), true
		})
		if cursor == 0 {
			break
		}
	}

	v, ok := d.Find(1)
	require.True(t, ok)
	require.Equal(t, int64(10), v.Int64())
	v, ok = d.Find(2)
	require.True(t, ok)
	require.Equal(t, int64(20), v.Int64())
}
