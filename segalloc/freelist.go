package segalloc

// insert adds bp to the head of class c's free list (LIFO insertion).
func (a *Allocator) insert(bp, c int) {
	a.setPrevLink(bp, 0)
	head := a.getClassHead(c)
	a.setNextLink(bp, head)
	if head != 0 {
		a.setPrevLink(head, bp)
	}
	a.setClassHead(c, bp)
}

// remove splices bp out of class c's free list.
func (a *Allocator) remove(bp, c int) {
	prev := a.getPrevLink(bp)
	next := a.getNextLink(bp)

	if prev != 0 {
		a.setNextLink(prev, next)
	} else {
		a.setClassHead(c, next)
	}

	if next != 0 {
		a.setPrevLink(next, prev)
	}
}
