package segalloc

// findFit searches the segregated free lists for a block of at least asize
// bytes, starting at class classOf(asize) and escalating to larger classes
// on a miss. Within a class it performs a pseudo-best-fit scan: it tracks
// the minimum-padding candidate seen so far and stops scanning as soon as
// more than maxSuitable candidates have been considered, returning the best
// one found so far rather than continuing to search for the global minimum.
// Returns the block's offset, or 0 if no class yields a fit.
func (a *Allocator) findFit(asize int) int {
	for c := classOf(asize); c < numClasses; c++ {
		if bp := a.findFitInClass(asize, c); bp != 0 {
			return bp
		}
	}
	return 0
}

func (a *Allocator) findFitInClass(asize, c int) int {
	const noPadding = int(^uint(0) >> 1) // max int: no candidate seen yet

	best := 0
	minPadding := noPadding
	count := 0

	for curr := a.getClassHead(c); curr != 0; curr = a.getNextLink(curr) {
		size := a.sizeAt(curr)
		if size < asize {
			continue
		}
		if count > maxSuitable {
			return best
		}
		if padding := size - asize; padding < minPadding {
			minPadding = padding
			best = curr
		}
		count++
	}
	return best
}
