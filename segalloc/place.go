package segalloc

// place carves an asize-byte allocated block out of the free block at
// offset bp (already removed from its free list), splitting off and
// reinserting the remainder if it would be at least the minimum block size.
func (a *Allocator) place(bp, asize int) {
	csize := a.sizeAt(bp)

	if csize-asize >= 2*dwordSize {
		a.setBlock(bp, asize, true)

		remainder := bp + asize
		remainderSize := csize - asize
		a.setBlock(remainder, remainderSize, false)
		a.insert(remainder, classOf(remainderSize))
	} else {
		a.setBlock(bp, csize, true)
	}
}
