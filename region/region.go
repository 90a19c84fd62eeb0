// Package region supplies the contiguous, monotonically-growable memory
// ranges that the segalloc heap is built on top of. It plays the role of
// sbrk(2): a provider only ever grows, never shrinks or releases, and every
// address it has ever handed out stays valid for the provider's lifetime.
package region

import "errors"

// ErrOutOfMemory is returned by Provider.Request when a provider cannot
// grow any further (its reserved capacity is exhausted).
var ErrOutOfMemory = errors.New("region: out of memory")

// Provider is the collaborator segalloc.Allocator grows its heap against.
// Implementations must guarantee:
//   - addresses returned by Request are monotonically increasing and never
//     reused or invalidated by a later Request;
//   - Request either extends the region by exactly n bytes and returns the
//     address of the start of that new range, or leaves the region
//     untouched and returns an error;
//   - LowBound and HighBound report the current extent at any time.
type Provider interface {
	// Request grows the region by n bytes and returns the address of the
	// start of the newly appended range. n is always a positive, word-
	// aligned byte count.
	Request(n int) (uintptr, error)

	// LowBound returns the address of the first byte ever handed out.
	LowBound() uintptr

	// HighBound returns the address one past the last byte ever handed out.
	HighBound() uintptr
}
