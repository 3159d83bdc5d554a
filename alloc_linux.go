//go:build linux

package buffy

import (
	"syscall"
	"unsafe"
)

// tryMremapAnon uses the Linux mremap(2) syscall to grow a mapping
// in-place or relocate it without copying through userspace, mirroring
// gdbx's mmap/mmap_linux.go tryMremap.
func tryMremapAnon(b []byte, n int) ([]byte, error) {
	const mremapMaymove = 1

	if len(b) == 0 {
		return nil, syscall.EINVAL
	}

	newAddr, _, errno := syscall.Syscall6(
		syscall.SYS_MREMAP,
		uintptr(unsafe.Pointer(&b[0])),
		uintptr(len(b)),
		uintptr(n),
		mremapMaymove,
		0, 0)
	if errno != 0 {
		return nil, errno
	}

	var grown []byte
	sh := (*struct {
		Data uintptr
		Len  int
		Cap  int
	})(unsafe.Pointer(&grown))
	sh.Data = newAddr
	sh.Len = n
	sh.Cap = n

	untrackMmapped(b)
	trackMmapped(grown)
	return grown, nil
}
