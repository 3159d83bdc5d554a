//go:build unix && !linux

package buffy

import "errors"

// tryMremapAnon is not available outside Linux; the caller falls back to
// map-copy-unmap. Mirrors gdbx's mmap/mmap_darwin.go stub.
func tryMremapAnon(b []byte, n int) ([]byte, error) {
	return nil, errors.New("mremap not available on this platform")
}
