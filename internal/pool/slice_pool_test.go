package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint16Slice(t *testing.T) {
	s, cleanup := GetUint16Slice(100)
	require.Len(t, s, 100)

	for i := range s {
		s[i] = uint16(i)
	}
	cleanup()

	// A pooled slice is resized to the requested length
	s2, cleanup2 := GetUint16Slice(10)
	defer cleanup2()
	require.Len(t, s2, 10)
}

func TestGetUint16Slice_GrowsBeyondPooled(t *testing.T) {
	s, cleanup := GetUint16Slice(4)
	require.Len(t, s, 4)
	cleanup()

	s2, cleanup2 := GetUint16Slice(10_000)
	defer cleanup2()
	require.Len(t, s2, 10_000)
}

func TestGetUint16Slice_Zero(t *testing.T) {
	s, cleanup := GetUint16Slice(0)
	defer cleanup()
	require.Empty(t, s)
}
