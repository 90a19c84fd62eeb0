package segalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitOnlyHeapIsConsistent covers scenario 1: a freshly initialized
// allocator, with nothing ever allocated, must already pass every
// consistency check.
func TestInitOnlyHeapIsConsistent(t *testing.T) {
	a := newTestAllocator(t, 1<<20)
	require.NoError(t, a.CheckHeap(false))
}

// TestSmallAllocThenFreeReturnsToSingleBlock covers scenario 2: allocating
// and immediately freeing a small block must leave the heap looking as if
// nothing happened, modulo the one free block's exact size.
func TestSmallAllocThenFreeReturnsToSingleBlock(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	b := a.Alloc(16)
	require.NotNil(t, b)
	require.Len(t, b, 16)

	a.Free(b)
	require.NoError(t, a.CheckHeap(false))

	// The whole heap must be a single free block again: allocate something
	// larger than any single split-off remainder could be and confirm it
	// is satisfied without growing the heap.
	before := a.high
	big := a.Alloc(4080)
	require.NotNil(t, big)
	assert.Equal(t, before, a.high, "reusing the coalesced block should not grow the heap")
}

// TestSplitThenFreeReinsertsRemainder covers scenario 3: allocating from a
// large free block splits off a remainder that is itself usable.
func TestSplitThenFreeReinsertsRemainder(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	first := a.Alloc(32)
	require.NotNil(t, first)

	second := a.Alloc(32)
	require.NotNil(t, second)

	require.NoError(t, a.CheckHeap(false))

	a.Free(first)
	a.Free(second)
	require.NoError(t, a.CheckHeap(false))
}

// TestCoalesceAllFourCasesThroughPublicAPI covers scenario 4 end-to-end
// through Alloc/Free rather than by poking block headers directly.
func TestCoalesceAllFourCasesThroughPublicAPI(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	x := a.Alloc(64)
	y := a.Alloc(64)
	z := a.Alloc(64)
	w := a.Alloc(64)
	require.NotNil(t, x)
	require.NotNil(t, y)
	require.NotNil(t, z)
	require.NotNil(t, w)

	// Case 1: y's neighbors x and z are both allocated.
	a.Free(y)
	require.NoError(t, a.CheckHeap(false))

	// Case 2: x follows the prologue and precedes the free y, so it merges
	// forward.
	a.Free(x)
	require.NoError(t, a.CheckHeap(false))

	// Case 3: z follows the free x+y block and precedes the allocated w, so
	// it merges backward.
	a.Free(z)
	require.NoError(t, a.CheckHeap(false))

	// Case 4: w sits between the free x+y+z block and the heap's remaining
	// free block, so it merges with both.
	a.Free(w)
	require.NoError(t, a.CheckHeap(false))
}

// TestPseudoBestFitBoundedScan covers scenario 5: with many free blocks of
// the same class, allocation must still succeed and keep the heap
// consistent even though the search is bounded, not exhaustive.
func TestPseudoBestFitBoundedScan(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	const n = 50
	blocks := make([][]byte, n)
	for i := range blocks {
		blocks[i] = a.Alloc(64)
		require.NotNil(t, blocks[i])
	}
	// Free every other block so the freed blocks cannot coalesce with each
	// other and stay separate members of the same class list.
	for i := 0; i < n; i += 2 {
		a.Free(blocks[i])
	}
	require.NoError(t, a.CheckHeap(false))

	// A fresh allocation must succeed by picking some suitable free block
	// without scanning all twenty-five.
	again := a.Alloc(64)
	assert.NotNil(t, again)
}

// TestReallocShrinkInPlace and TestReallocForwardMergeAvoidsCopy cover scenario 6:
// realloc must avoid copying when it can resize in place.
func TestReallocShrinkInPlace(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	b := a.Alloc(256)
	require.NotNil(t, b)
	for i := range b {
		b[i] = byte(i)
	}

	shrunk := a.Realloc(b, 8)
	require.NotNil(t, shrunk)
	assert.Len(t, shrunk, 8)
	assert.Same(t, &b[0], &shrunk[0])
	for i := 0; i < 8; i++ {
		assert.Equal(t, byte(i), shrunk[i])
	}
}

func TestReallocForwardMergeAvoidsCopy(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	b := a.Alloc(32)
	spacer := a.Alloc(32)
	require.NotNil(t, b)
	require.NotNil(t, spacer)
	a.Free(spacer)

	for i := range b {
		b[i] = byte(i + 1)
	}

	grown := a.Realloc(b, 48)
	require.NotNil(t, grown)
	assert.Len(t, grown, 48)
	assert.Same(t, &b[0], &grown[0])
	for i := 0; i < len(b); i++ {
		assert.Equal(t, byte(i+1), grown[i])
	}
	require.NoError(t, a.CheckHeap(false))
}

// TestReallocOverReserveGrowsHeapOnce covers scenario 7: repeated growth
// through Realloc should benefit from slack reservation, amortizing the
// number of underlying copies.
func TestReallocOverReserveGrowsHeapOnce(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	b := a.Alloc(16)
	require.NotNil(t, b)
	for i := range b {
		b[i] = byte(7)
	}

	grown := a.Realloc(b, 4096)
	require.NotNil(t, grown)
	assert.Len(t, grown, 4096)
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(7), grown[i])
	}
	assert.GreaterOrEqual(t, cap(grown), 4096)
	require.NoError(t, a.CheckHeap(false))

	// The slack reserved by the first copy absorbs a second growth without
	// moving the block or growing the heap again.
	before := a.high
	again := a.Realloc(grown, 8192)
	require.NotNil(t, again)
	assert.Same(t, &grown[0], &again[0])
	assert.Equal(t, before, a.high)
}

func TestAllocZeroReturnsNil(t *testing.T) {
	a := newTestAllocator(t, 1<<20)
	assert.Nil(t, a.Alloc(0))
}

func TestReallocZeroSizeFrees(t *testing.T) {
	a := newTestAllocator(t, 1<<20)
	b := a.Alloc(16)
	require.NotNil(t, b)

	got := a.Realloc(b, 0)
	assert.Nil(t, got)
	require.NoError(t, a.CheckHeap(false))
}

func TestReallocNilBlockBehavesLikeAlloc(t *testing.T) {
	a := newTestAllocator(t, 1<<20)
	got := a.Realloc(nil, 16)
	require.NotNil(t, got)
	assert.Len(t, got, 16)
}

func TestFreeNilIsNoOp(t *testing.T) {
	a := newTestAllocator(t, 1<<20)
	assert.NotPanics(t, func() { a.Free(nil) })
}

func TestHeapGrowsWhenNoFitExists(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	before := a.high
	big := a.Alloc(8192)
	require.NotNil(t, big)
	assert.Greater(t, a.high, before)
	require.NoError(t, a.CheckHeap(false))
}

func TestAllocReturnsNilWhenRegionExhausted(t *testing.T) {
	a := newTestAllocator(t, 8192)
	var last []byte
	for i := 0; i < 1000; i++ {
		b := a.Alloc(4096)
		if b == nil {
			return
		}
		last = b
	}
	t.Fatalf("expected allocation to eventually fail, last=%v", last != nil)
}
