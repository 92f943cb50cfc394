package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	var s Store
	s.Put("a", 1)
	s.Put("b", "two")

	v, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, ok = s.Get("b")
	require.True(t, ok)
	require.Equal(t, "two", v)

	_, ok = s.Get("missing")
	require.False(t, ok)
}

func TestPutReplace(t *testing.T) {
	var s Store
	s.Put("a", 1)
	s.Put("a", 2)

	v, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
}
