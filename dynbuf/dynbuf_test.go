package dynbuf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendGrows(t *testing.T) {
	var b Buffer
	b.AppendString("hello")
	b.AppendByte(' ')
	b.Append([]byte("world"))

	require.Equal(t, "hello world", b.String())
}

func TestResetKeepsCapacity(t *testing.T) {
	var b Buffer
	b.AppendString(strings.Repeat("x", 2000))
	cap1 := b.Cap()
	b.Reset()

	require.Equal(t, 0, b.Len())
	require.Equal(t, cap1, b.Cap())
}

func TestGrowthPastPrealloc(t *testing.T) {
	var b Buffer
	b.Append(make([]byte, maxPrealloc+10))
	require.Equal(t, maxPrealloc+10, b.Len())
}
