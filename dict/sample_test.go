package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomKeyOnEmptyDict(t *testing.T) {
	d := New[int](intType())
	_, _, ok := d.RandomKey()
	require.False(t, ok)
}

func TestRandomKeyReturnsPresentKey(t *testing.T) {
	d := New[int](intType())
	for i := 0; i < 50; i++ {
		require.NoError(t, d.Add(i, Int64Value(int64(i))))
	}
	for i := 0; i < 20; i++ {
		k, v, ok := d.RandomKey()
		require.True(t, ok)
		require.Equal(t, int64(k), v.Int64())
	}
}

func TestSomeKeysBound(t *testing.T) {
	d := New[int](intType())
	for i := 0; i < 1000; i++ {
		require.NoError(t, d.Add(i, Value{}))
	}

	var got []int
	d.SomeKeys(10, func(key int, v Value) {
		got = append(got, key)
	})
	require.LessOrEqual(t, len(got), 10)
	require.NotEmpty(t, got)
}

func TestFairRandomKey(t *testing.T) {
	d := New[int](intType())
	for i := 0; i < 100; i++ {
		require.NoError(t, d.Add(i, Int64Value(int64(i))))
	}
	k, v, ok := d.FairRandomKey()
	require.True(t, ok)
	require.Equal(t, int64(k), v.Int64())
}
