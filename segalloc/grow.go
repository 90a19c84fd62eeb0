package segalloc

import "fmt"

// growHeap requests words words (rounded up to an even count to preserve
// double-word alignment) of new region from the provider, turns it into a
// free block that replaces the old epilogue, writes a fresh epilogue after
// it, and hands the new block to coalesce (which merges it with the
// preceding block if that one was free). Returns the offset of the
// resulting free block.
func (a *Allocator) growHeap(words int) (int, error) {
	if words%2 != 0 {
		words++
	}
	size := words * wordSize

	addr, err := a.provider.Request(size)
	if err != nil {
		return 0, fmt.Errorf("segalloc: growing heap by %d bytes: %w", size, err)
	}
	bp := int(addr - uintptr(a.base))

	a.setBlock(bp, size, false)          // new free block header+footer
	a.putWord(a.nextBlock(bp)-wordSize, pack(0, true)) // new epilogue header

	a.high = bp + size
	return a.coalesce(bp), nil
}
