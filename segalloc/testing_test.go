package segalloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rushi963/Dynamic-Memory-Allocator/region"
)

// newTestAllocator builds an Allocator on top of a fresh SliceArena sized
// to comfortably hold maxBytes worth of heap growth, and fails the test
// immediately on any setup error.
func newTestAllocator(t *testing.T, maxBytes int) *Allocator {
	t.Helper()
	arena, err := region.NewSliceArena(maxBytes)
	require.NoError(t, err)
	a, err := New(arena)
	require.NoError(t, err)
	return a
}
