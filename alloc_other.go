//go:build !unix

package buffy

// On platforms without the unix mmap family (windows, wasm, ...) every
// page is heap-backed; largePageThreshold has no effect here. Mirrors
// gdbx's own mmap_windows.go falling back to a different primitive
// rather than the generic unix path.
type defaultAllocator struct {
	heap heapAllocator
}

func newDefaultAllocator() Allocator {
	return &defaultAllocator{}
}

func (a *defaultAllocator) Malloc(n int) ([]byte, error) {
	return a.heap.Malloc(n)
}

func (a *defaultAllocator) Realloc(b []byte, n int) ([]byte, error) {
	return a.heap.Realloc(b, n)
}

func (a *defaultAllocator) Free(b []byte) {
	a.heap.Free(b)
}
