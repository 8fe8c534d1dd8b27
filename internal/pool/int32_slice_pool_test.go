package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInt32Slice(t *testing.T) {
	slice, cleanup := GetInt32Slice(100)
	require.Len(t, slice, 100)
	require.NotNil(t, cleanup)

	for i := range slice {
		slice[i] = int32(i)
	}
	cleanup()

	// A pooled slice comes back with the exact requested length,
	// regardless of the capacity retained from earlier use.
	reused, cleanup2 := GetInt32Slice(10)
	require.Len(t, reused, 10)
	cleanup2()
}

func TestGetInt32Slice_Zero(t *testing.T) {
	slice, cleanup := GetInt32Slice(0)
	require.Empty(t, slice)
	cleanup()
}

func TestGetInt32Slice_Grow(t *testing.T) {
	small, cleanup := GetInt32Slice(4)
	require.Len(t, small, 4)
	cleanup()

	large, cleanup2 := GetInt32Slice(1 << 16)
	require.Len(t, large, 1<<16)
	cleanup2()
}
