package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeIteratorVisitsAllAndAllowsMutation(t *testing.T) {
	d := New[int](intType())
	for i := 0; i < 100; i++ {
		require.NoError(t, d.Add(i, Int64Value(int64(i))))
	}

	it := d.NewIterator()
	seen := 0
	for it.Next() {
		seen++
		if k := it.Key(); k%2 == 0 {
			require.NoError(t, d.Delete(k))
		}
	}
	it.Close()
	require.Equal(t, 100, seen)
	require.Equal(t, 50, d.Len())

	// Safe iteration must not leave rehashing stuck paused.
	require.Equal(t, 0, d.pauseRehash)
	require.NoError(t, d.Add(12345, Value{}))
}

func TestUnsafeIteratorPanicsOnMutationDuringWalk(t *testing.T) {
	d := New[int](intType())
	for i := 0; i < 10; i++ {
		require.NoError(t, d.Add(i, Int64Value(int64(i))))
	}

	it := d.NewUnsafeIterator()
	it.Next()
	require.NoError(t, d.Add(999, Value{}))

	require.Panics(t, func() {
		it.Close()
	})
}

func TestUnsafeIteratorToleratesValueOnlyMutation(t *testing.T) {
	d := New[int](intType())
	require.NoError(t, d.Add(1, Int64Value(1)))

	it := d.NewUnsafeIterator()
	require.True(t, it.Next())
	it.SetValue(Int64Value(2))

	require.NotPanics(t, func() {
		it.Close()
	})

	v, ok := d.Find(1)
	require.True(t, ok)
	require.Equal(t, int64(2), v.Int64())
}
