package segalloc

import "unsafe"

// Alloc allocates a block with at least size bytes of payload. It returns
// nil if size is zero, or if the region provider cannot grow to satisfy the
// request; otherwise the returned slice has length size and capacity equal
// to the block's full usable payload, with its start address a multiple of
// the double-word size.
func (a *Allocator) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}

	asize := adjustedSize(size)

	bp := a.findFit(asize)
	if bp == 0 {
		grown, err := a.growHeap(max(asize, chunkSize) / wordSize)
		if err != nil {
			return nil
		}
		bp = grown
	}

	a.remove(bp, a.classAt(bp))
	a.place(bp, asize)

	return a.payload(bp, size)
}

// Free returns block to the allocator, coalescing it with any free
// physical neighbor. A nil block, or an empty one with zero capacity, is a
// no-op.
func (a *Allocator) Free(block []byte) {
	bp := a.blockOffset(block)
	if bp == 0 {
		return
	}
	size := a.sizeAt(bp)
	a.setBlock(bp, size, false)
	a.coalesce(bp)
}

// Realloc resizes block to hold at least size bytes, preserving its
// contents. If size is zero, it frees block and returns nil. If block is
// nil, it behaves like Alloc(size). When shrinking in place, a growth-slack
// split is deliberately not performed, so the block keeps whatever slack it
// already had for future growth. Returns nil (leaving block untouched) if a
// new block is required but cannot be obtained.
func (a *Allocator) Realloc(block []byte, size int) []byte {
	if size == 0 {
		a.Free(block)
		return nil
	}
	if block == nil {
		return a.Alloc(size)
	}

	bp := a.blockOffset(block)
	currSize := a.sizeAt(bp)
	currPayload := currSize - dwordSize

	if size < currPayload {
		return a.payload(bp, size)
	}

	next := a.nextBlock(bp)
	if !a.allocAt(next) {
		combined := currSize + a.sizeAt(next)
		if size <= combined-dwordSize {
			a.remove(next, a.classAt(next))
			a.setBlock(bp, combined, true)
			return a.payload(bp, size)
		}
	}

	newBlock := a.Alloc(extraReallocSize(size))
	if newBlock == nil {
		return nil
	}
	copy(newBlock, block[:min(currPayload, size)])
	a.Free(block)
	return newBlock[:size]
}

// payload returns the usable-payload slice for the allocated block at
// offset bp: length size, capacity the block's full payload span.
func (a *Allocator) payload(bp, size int) []byte {
	usable := a.sizeAt(bp) - dwordSize
	return unsafe.Slice((*byte)(unsafe.Add(a.base, bp)), usable)[:size]
}

// blockOffset recovers a block's offset from a slice previously returned by
// Alloc/Realloc. Returns 0 for a slice with zero length and zero capacity.
func (a *Allocator) blockOffset(block []byte) int {
	if len(block) == 0 && cap(block) == 0 {
		return 0
	}
	ptr := unsafe.Pointer(unsafe.SliceData(block))
	return int(uintptr(ptr) - uintptr(a.base))
}
