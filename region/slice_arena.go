package region

import (
	"fmt"
	"unsafe"

	"github.com/bytedance/gopkg/lang/dirtmake"
)

// SliceArena is the portable Provider: it reserves a single Go byte slice of
// fixed maximum capacity up front and grows only the used prefix by
// re-slicing within that capacity. Because the backing array's capacity is
// fixed at construction time, re-slicing never triggers a Go slice grow/copy,
// so addresses handed out by Request remain stable for the arena's entire
// lifetime — the property Provider's contract depends on.
//
// The reservation uses dirtmake.Bytes instead of make([]byte, ...) so the
// reserved capacity is not zero-filled up front; freshly extended memory is
// left with whatever bytes happen to be there, matching the undefined
// content of memory freshly obtained from sbrk.
type SliceArena struct {
	buf  []byte
	base unsafe.Pointer
	used int
	max  int
}

// NewSliceArena reserves an arena that can grow up to maxBytes total.
func NewSliceArena(maxBytes int) (*SliceArena, error) {
	if maxBytes <= 0 {
		return nil, fmt.Errorf("region: maxBytes must be positive, got %d", maxBytes)
	}
	buf := dirtmake.Bytes(0, maxBytes)
	return &SliceArena{
		buf:  buf,
		base: unsafe.Pointer(unsafe.SliceData(buf)),
		max:  maxBytes,
	}, nil
}

// Request implements Provider.
func (a *SliceArena) Request(n int) (uintptr, error) {
	if n <= 0 {
		return 0, fmt.Errorf("region: request size must be positive, got %d", n)
	}
	if a.used+n > a.max {
		return 0, ErrOutOfMemory
	}
	addr := uintptr(a.base) + uintptr(a.used)
	a.used += n
	a.buf = a.buf[:a.used]
	return addr, nil
}

// LowBound implements Provider.
func (a *SliceArena) LowBound() uintptr {
	return uintptr(a.base)
}

// HighBound implements Provider.
func (a *SliceArena) HighBound() uintptr {
	return uintptr(a.base) + uintptr(a.used)
}

// Available reports how many bytes remain before Request starts failing.
func (a *SliceArena) Available() int {
	return a.max - a.used
}
