//go:build unix

package region

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MmapArena is a Provider backed by a single anonymous, private mmap
// reservation. Unlike SliceArena, the backing pages are owned by the OS
// rather than the Go runtime/GC, which is closer to what a real sbrk-based
// heap sits on top of. Request only ever bumps the logical high-water mark
// within the reservation; the mapping itself is made once, in full, at
// construction time.
type MmapArena struct {
	data []byte
	base unsafe.Pointer
	used int
	max  int
}

// NewMmapArena reserves an anonymous mapping that can grow up to maxBytes.
func NewMmapArena(maxBytes int) (*MmapArena, error) {
	if maxBytes <= 0 {
		return nil, fmt.Errorf("region: maxBytes must be positive, got %d", maxBytes)
	}
	data, err := unix.Mmap(-1, 0, maxBytes, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("region: mmap %d bytes: %w", maxBytes, err)
	}
	return &MmapArena{
		data: data,
		base: unsafe.Pointer(&data[0]),
		max:  maxBytes,
	}, nil
}

// Request implements Provider.
func (a *MmapArena) Request(n int) (uintptr, error) {
	if n <= 0 {
		return 0, fmt.Errorf("region: request size must be positive, got %d", n)
	}
	if a.used+n > a.max {
		return 0, ErrOutOfMemory
	}
	addr := uintptr(a.base) + uintptr(a.used)
	a.used += n
	return addr, nil
}

// LowBound implements Provider.
func (a *MmapArena) LowBound() uintptr {
	return uintptr(a.base)
}

// HighBound implements Provider.
func (a *MmapArena) HighBound() uintptr {
	return uintptr(a.base) + uintptr(a.used)
}

// Available reports how many bytes remain before Request starts failing.
func (a *MmapArena) Available() int {
	return a.max - a.used
}

// Close unmaps the reservation. This releases the process's mapping of the
// arena; it is not the core allocator returning memory to the provider (the
// core never calls it) and does not conflict with the "no release" contract
// Provider implementations give the allocator while they are in use.
func (a *MmapArena) Close() error {
	if a.data == nil {
		return nil
	}
	err := unix.Munmap(a.data)
	a.data = nil
	a.base = nil
	return err
}
