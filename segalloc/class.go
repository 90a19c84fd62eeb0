package segalloc

// classBound returns the inclusive upper size bound for class i, for i in
// [0, numClasses-2]. Class numClasses-1 is unbounded.
func classBound(i int) int {
	return 8 * wordSize << uint(i)
}

// classOf is the pure, total mapping from a block size to its segregated
// free-list bucket: class i holds all free blocks with size <= classBound(i),
// and the last class is unbounded. A block's class is always recomputed
// from its current size; no block ever stores a class tag.
func classOf(size int) int {
	for i := 0; i < numClasses-1; i++ {
		if size <= classBound(i) {
			return i
		}
	}
	return numClasses - 1
}

// classAt returns the class a block at offset bp currently belongs to,
// computed from its stored size.
func (a *Allocator) classAt(bp int) int {
	return classOf(a.sizeAt(bp))
}

// classHeadOffset returns the offset of class c's head word within the
// index region at the very start of the heap.
func classHeadOffset(c int) int {
	return c * wordSize
}

func (a *Allocator) getClassHead(c int) int {
	return int(a.getWord(classHeadOffset(c)))
}

func (a *Allocator) setClassHead(c, bp int) {
	a.putWord(classHeadOffset(c), uintptr(bp))
}
