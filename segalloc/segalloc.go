// Package segalloc implements a segregated-fits dynamic memory allocator:
// classical allocate/free/reallocate over raw, aligned byte blocks carved
// out of a single contiguous, monotonically-growable heap region.
//
// The design, restated from the spec this package implements:
//
//   - every block carries a boundary tag (header and footer) so any block's
//     physical neighbors can be found in O(1) from the block alone;
//   - free blocks are classified into N size-class buckets, each an
//     intrusive, LIFO, doubly-linked free list living inside the blocks
//     themselves;
//   - allocation uses a pseudo-best-fit search, bounded to K+1 candidates
//     per bucket, escalating to larger buckets on a miss;
//   - freeing a block immediately coalesces it with any free physical
//     neighbor, preserving the invariant that no two free blocks are ever
//     physically adjacent;
//   - reallocation tries, in order, shrink-in-place, forward-coalesce-in-
//     place (absorbing a free successor), and finally allocate-copy-free,
//     with slack reserved on the copy path so repeated growth amortizes.
//
// The package never locks anything and is not safe for concurrent use: all
// of its state (free-list heads, every block's header/footer, the epilogue
// position) is exclusively owned by whichever call is in flight, under an
// external lock the caller is responsible for holding if needed.
package segalloc

import (
	"fmt"
	"unsafe"

	"github.com/rushi963/Dynamic-Memory-Allocator/region"
)

const (
	wordSize  = int(unsafe.Sizeof(uintptr(0)))
	dwordSize = 2 * wordSize

	// numClasses is the number of segregated size-class free lists.
	numClasses = 10

	// minBlockSize is the smallest possible block: header, footer, and the
	// two free-list link words a free block stores in its payload.
	minBlockSize = 4 * wordSize

	// chunkSize is the default amount by which the heap is extended when no
	// free block satisfies a request.
	chunkSize = 4096

	// maxSuitable is K in the pseudo-best-fit search: scanning stops once
	// more than this many suitable candidates have been inspected.
	maxSuitable = 5
)

// Allocator manages one heap built on top of a region.Provider. The zero
// value is not usable; construct one with New.
type Allocator struct {
	provider region.Provider

	// base is the address of the very first byte the provider ever handed
	// out: the start of the class-head index array. All block bookkeeping
	// is expressed as byte offsets relative to base, converted to a real
	// address only transiently, to avoid keeping long-lived uintptr values
	// that alias Go-managed memory outside of an unsafe.Pointer field.
	base unsafe.Pointer

	// heapStart is the offset (from base) of the prologue block's payload,
	// i.e. the first block a heap walk should visit.
	heapStart int

	// high tracks the offset (from base) of the epilogue block, i.e. one
	// word past the epilogue header and the current end of the heap region.
	high int
}

// New initializes a heap on top of provider. provider must not have been
// used by any other Allocator.
func New(provider region.Provider) (*Allocator, error) {
	indexBytes := numClasses * wordSize
	headerBytes := indexBytes + 4*wordSize // index + padding + prologue(2) + epilogue
	base, err := provider.Request(headerBytes)
	if err != nil {
		return nil, fmt.Errorf("segalloc: initializing heap: %w", err)
	}

	a := &Allocator{
		provider: provider,
		base:     unsafe.Pointer(base),
	}

	for c := 0; c < numClasses; c++ {
		a.setClassHead(c, 0)
	}

	padOff := indexBytes
	prologueOff := padOff + wordSize
	a.putWord(padOff, 0)
	a.putWord(prologueOff, pack(dwordSize, true))            // prologue header
	a.putWord(prologueOff+wordSize, pack(dwordSize, true))   // prologue footer
	a.putWord(prologueOff+dwordSize, pack(0, true))          // epilogue header

	a.heapStart = prologueOff + wordSize
	a.high = prologueOff + dwordSize + wordSize

	if _, err := a.growHeap(chunkSize / wordSize); err != nil {
		return nil, fmt.Errorf("segalloc: extending initial heap: %w", err)
	}
	return a, nil
}

// adjustedSize computes the block size (including header+footer) needed to
// carry a size-byte payload, rounded up to a double-word multiple and never
// less than the minimum block size.
func adjustedSize(size int) int {
	if size <= dwordSize {
		return 2 * dwordSize
	}
	return dwordSize * ((size + dwordSize + (dwordSize - 1)) / dwordSize)
}

// extraReallocSize reserves growth slack on the copy-fallback realloc path:
// up to sixteen times the requested size, capped at size plus six pages
// (24576 bytes), so repeated growing reallocations amortize.
func extraReallocSize(size int) int {
	bigger := size * 16
	if bigger > size+24576 {
		bigger = size + 24576
	}
	return bigger
}
