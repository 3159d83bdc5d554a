//go:build unix

package buffy

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// defaultAllocator backs pages at or above largePageThreshold with an
// anonymous memory mapping (no file descriptor, no file on disk — just a
// chunk of address space from the kernel) instead of the Go heap, the
// same way gdbx's mmap package keeps large mapped regions out of the Go
// GC's view. Smaller pages go through heapAllocator, matching gdbx's own
// default (non-spilled) B-tree pages.
type defaultAllocator struct {
	heap heapAllocator
}

func newDefaultAllocator() Allocator {
	return &defaultAllocator{}
}

func (a *defaultAllocator) Malloc(n int) ([]byte, error) {
	if n < largePageThreshold {
		return a.heap.Malloc(n)
	}
	b, err := mmapAnon(n)
	if err != nil {
		return nil, wrapError(ErrOutOfMemory, "malloc", err)
	}
	return b, nil
}

func (a *defaultAllocator) Realloc(b []byte, n int) ([]byte, error) {
	if !isMmapped(b) {
		if n < largePageThreshold {
			return a.heap.Realloc(b, n)
		}
		// crossing the threshold: migrate heap bytes into a mapping.
		grown, err := mmapAnon(n)
		if err != nil {
			return nil, wrapError(ErrOutOfMemory, "realloc", err)
		}
		copy(grown, b)
		return grown, nil
	}
	grown, err := tryMremapAnon(b, n)
	if err == nil {
		return grown, nil
	}
	// fall back to map-copy-unmap when the platform can't remap in place
	fresh, mapErr := mmapAnon(n)
	if mapErr != nil {
		return nil, wrapError(ErrOutOfMemory, "realloc", mapErr)
	}
	copy(fresh, b)
	munmapAnon(b)
	return fresh, nil
}

func (a *defaultAllocator) Free(b []byte) {
	if isMmapped(b) {
		munmapAnon(b)
		return
	}
	a.heap.Free(b)
}

// mappedRegions records which slices are mmap-backed, keyed by the
// address of their first byte, since a plain []byte carries no tag of
// its own provenance.
var (
	mappedRegionsMu sync.Mutex
	mappedRegions   = map[uintptr]struct{}{}
)

func addrOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

func trackMmapped(b []byte) {
	mappedRegionsMu.Lock()
	mappedRegions[addrOf(b)] = struct{}{}
	mappedRegionsMu.Unlock()
}

func untrackMmapped(b []byte) {
	mappedRegionsMu.Lock()
	delete(mappedRegions, addrOf(b))
	mappedRegionsMu.Unlock()
}

func isMmapped(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	mappedRegionsMu.Lock()
	_, ok := mappedRegions[addrOf(b)]
	mappedRegionsMu.Unlock()
	return ok
}

// mmapAnon asks the kernel for a zeroed, anonymous, writable mapping of n
// bytes.
func mmapAnon(n int) ([]byte, error) {
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	trackMmapped(b)
	return b, nil
}

func munmapAnon(b []byte) {
	untrackMmapped(b)
	_ = unix.Munmap(b)
}
