package buffy

import "sync"

// largePageThreshold is the page size, in bytes, at or above which the default
// allocator backs a page with an anonymous memory mapping instead of the
// Go heap. Mirrors gdbx's split between heap-backed B-tree pages and
// mmap-backed spill segments: small, short-lived pages stay on the heap;
// large ones get their own mapping so they don't pressure the GC.
const largePageThreshold = 256 * 1024

// Allocator is the process-wide collaborator the engine asks for bytes.
// It mirrors the C source's {malloc, calloc, realloc, free} allocator
// object, folded down to the three operations the engine actually needs:
// a fresh zeroed block, a grow-in-place-or-copy resize, and a release.
//
// Growth never shrinks (see the growth policy in §4.3): Realloc is never
// asked for a size smaller than the slice's current length.
type Allocator interface {
	// Malloc returns a new zeroed slice of length n.
	Malloc(n int) ([]byte, error)

	// Realloc grows b to at least n bytes, preserving its existing
	// content as a prefix. It may return b itself (grown in place) or a
	// fresh slice; callers must stop using the original b.
	Realloc(b []byte, n int) ([]byte, error)

	// Free releases b. After Free, b must not be used again.
	Free(b []byte)
}

var allocatorMu sync.RWMutex
var globalAllocator Allocator = newDefaultAllocator()

// SetAllocator installs the process-wide Allocator used by every Buffer
// from this point forward. Pages already allocated are not moved, but
// every later Malloc, Realloc and Free call, including the growth and
// release of existing pages, routes through the new allocator. Passing
// nil restores the default.
func SetAllocator(a Allocator) {
	allocatorMu.Lock()
	defer allocatorMu.Unlock()
	if a == nil {
		a = newDefaultAllocator()
	}
	globalAllocator = a
}

// DefaultAllocator returns a fresh instance of the built-in Allocator
// (heap below largePageThreshold, anonymous mmap above it on platforms
// that support it).
func DefaultAllocator() Allocator {
	return newDefaultAllocator()
}

func activeAllocator() Allocator {
	allocatorMu.RLock()
	defer allocatorMu.RUnlock()
	return globalAllocator
}

// heapAllocator is the fallback (and small-page) path: plain Go heap
// allocation. Go's allocator has no explicit out-of-memory return value
// (it panics/aborts instead of failing gracefully), which is why this
// path can never itself produce ErrOutOfMemory — that error class is
// reserved for allocators that do have a fallible backing resource, such
// as the mmap path in alloc_unix.go.
type heapAllocator struct{}

func (heapAllocator) Malloc(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func (heapAllocator) Realloc(b []byte, n int) ([]byte, error) {
	if cap(b) >= n {
		grown := b[:n]
		for i := len(b); i < n; i++ {
			grown[i] = 0
		}
		return grown, nil
	}
	grown := make([]byte, n)
	copy(grown, b)
	return grown, nil
}

func (heapAllocator) Free(b []byte) {}
