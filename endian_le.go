//go:build amd64 || 386 || arm64 || arm || riscv64 || mips64le || mipsle || ppc64le || wasm

package buffy

import "unsafe"

// On little-endian architectures, network (big-endian) byte order is the
// reverse of host order, so writing/reading a big-endian value needs an
// explicit byte swap. Hosting them here (rather than in the hot
// add/remove paths) keeps the swap as the only architecture-dependent
// piece of the endian helpers, mirroring gdbx's endian_le.go/endian_be.go
// split for its own little/big-endian fast paths.

//go:nosplit
func putUint16BE(b []byte, v uint16) {
	v = v<<8 | v>>8
	*(*uint16)(unsafe.Pointer(&b[0])) = v
}

//go:nosplit
func putUint32BE(b []byte, v uint32) {
	v = (v&0x000000FF)<<24 | (v&0x0000FF00)<<8 | (v&0x00FF0000)>>8 | (v&0xFF000000)>>24
	*(*uint32)(unsafe.Pointer(&b[0])) = v
}

//go:nosplit
func putUint64BE(b []byte, v uint64) {
	v = (v&0x00000000000000FF)<<56 | (v&0x000000000000FF00)<<40 |
		(v&0x0000000000FF0000)<<24 | (v&0x00000000FF000000)<<8 |
		(v&0x000000FF00000000)>>8 | (v&0x0000FF0000000000)>>24 |
		(v&0x00FF000000000000)>>40 | (v&0xFF00000000000000)>>56
	*(*uint64)(unsafe.Pointer(&b[0])) = v
}

//go:nosplit
func getUint16BE(b []byte) uint16 {
	v := *(*uint16)(unsafe.Pointer(&b[0]))
	return v<<8 | v>>8
}

//go:nosplit
func getUint32BE(b []byte) uint32 {
	v := *(*uint32)(unsafe.Pointer(&b[0]))
	return (v&0x000000FF)<<24 | (v&0x0000FF00)<<8 | (v&0x00FF0000)>>8 | (v&0xFF000000)>>24
}

//go:nosplit
func getUint64BE(b []byte) uint64 {
	v := *(*uint64)(unsafe.Pointer(&b[0]))
	return (v&0x00000000000000FF)<<56 | (v&0x000000000000FF00)<<40 |
		(v&0x0000000000FF0000)<<24 | (v&0x00000000FF000000)<<8 |
		(v&0x000000FF00000000)>>8 | (v&0x0000FF0000000000)>>24 |
		(v&0x00FF000000000000)>>40 | (v&0xFF00000000000000)>>56
}
