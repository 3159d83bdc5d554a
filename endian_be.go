//go:build !amd64 && !386 && !arm64 && !arm && !riscv64 && !mips64le && !mipsle && !ppc64le && !wasm

package buffy

import "encoding/binary"

// On big-endian architectures, host order already matches network order,
// so no swap is needed; encoding/binary.BigEndian gives us the store
// without relying on unaligned-access tricks.

//go:nosplit
func putUint16BE(b []byte, v uint16) {
	binary.BigEndian.PutUint16(b, v)
}

//go:nosplit
func putUint32BE(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

//go:nosplit
func putUint64BE(b []byte, v uint64) {
	binary.BigEndian.PutUint64(b, v)
}

//go:nosplit
func getUint16BE(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}

//go:nosplit
func getUint32BE(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

//go:nosplit
func getUint64BE(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
