package buffy

import "unsafe"

// drainFlags control the bookkeeping drain-family operations perform on
// the pages they remove (§4.6).
type drainFlags uint8

const (
	// drainNorelease suppresses freeing page memory — used when pages
	// are being handed off to another buffer (§4.7).
	drainNorelease drainFlags = 1 << iota

	// drainNorecycle suppresses retaining a page as the new embedded
	// page — used during Destruct.
	drainNorecycle
)

// drainTo releases and forgets pages [0, pos.PageIdx), advances the new
// first page's readPos by pos.PagePos, and updates contentLen — or, if
// pos lands at end-of-buffer, performs a recycling drain-all (§4.6).
func (b *Buffer) drainTo(pos Position, flags drainFlags) {
	if pos.PageIdx >= b.pages.count() && pos.PagePos == 0 {
		b.drainAllPages(flags)
		return
	}
	if pos.PageIdx > 0 {
		popped := b.pages.popFirstN(pos.PageIdx)
		for _, p := range popped {
			p.release(flags&drainNorelease != 0)
		}
	}
	if pos.PagePos > 0 {
		if first := b.pages.first(); first != nil {
			first.readPos += pos.PagePos
		}
	}
	b.noteRemoved(pos.ContentPos)
}

// drainAllPages drains every page, retaining the largest recyclable page
// (reset to empty) as the new embedded page unless drainNorecycle is set
// (§4.1 Recycling).
func (b *Buffer) drainAllPages(flags drainFlags) {
	removedLen := b.contentLen
	n := b.pages.count()
	if n == 0 {
		b.noteRemoved(0)
		return
	}
	all := b.pages.popFirstN(n)

	var recycled *page
	if flags&drainNorecycle == 0 {
		best, bestSize := -1, -1
		for i, p := range all {
			if p.recyclable() && p.size > bestSize {
				best, bestSize = i, p.size
			}
		}
		if best >= 0 {
			recycled = all[best]
			all = append(all[:best:best], all[best+1:]...)
		}
	}

	for _, p := range all {
		p.release(flags&drainNorelease != 0)
	}

	if recycled != nil {
		recycled.resetForRecycle()
		b.pages.setSolePage(recycled)
	} else {
		b.pages.clear()
	}
	b.noteRemoved(removedLen)
}

// Drain discards up to n bytes from the head of the buffer and returns
// how many were actually discarded (clamped to ContentLen).
func (b *Buffer) Drain(n int) (int, error) {
	if n < 0 {
		return 0, newError(ErrInvalidArgument, "drain")
	}
	if n > b.contentLen {
		n = b.contentLen
	}
	pos := b.positionOf(n)
	b.drainTo(pos, 0)
	return pos.ContentPos, nil
}

// DrainAll discards all content and returns how many bytes were
// discarded.
func (b *Buffer) DrainAll() int {
	n := b.contentLen
	b.drainAllPages(0)
	return n
}

// CopyOut copies up to len(out) content bytes starting at begin into
// out, without mutating the buffer. It returns the number of bytes
// copied, which may be less than len(out) if the buffer doesn't hold
// that much content from begin onward.
func (b *Buffer) CopyOut(begin int, out []byte) (int, error) {
	if begin < 0 {
		return 0, newError(ErrInvalidArgument, "copyOut")
	}
	begin = b.clampOffset(begin)
	avail := b.contentLen - begin
	want := len(out)
	if want > avail {
		want = avail
	}
	if want <= 0 {
		return 0, nil
	}

	start := b.positionOf(begin)
	copied := 0
	for i := start.PageIdx; copied < want; i++ {
		p := b.pages.at(i)
		off := 0
		if i == start.PageIdx {
			off = start.PagePos
		}
		avail := p.contentLen() - off
		take := want - copied
		if take > avail {
			take = avail
		}
		src := p.data[p.readPos+off : p.readPos+off+take]
		copy(out[copied:copied+take], src)
		copied += take
	}
	return copied, nil
}

// Remove copies the buffer's leading content into out (up to len(out)
// bytes) and drains exactly what was copied.
func (b *Buffer) Remove(out []byte) (int, error) {
	n, err := b.CopyOut(0, out)
	if err != nil {
		return 0, err
	}
	if _, err := b.Drain(n); err != nil {
		return 0, err
	}
	return n, nil
}

// RemoveString drains the buffer's entire content and returns it as a
// string. When the content is already a single owned, contiguous page
// after MakeAllContiguous, ownership of that page's backing array
// transfers directly to the returned string with no copy; otherwise a
// fresh copy is made (§4.6).
func (b *Buffer) RemoveString() (string, error) {
	if b.contentLen == 0 {
		return "", nil
	}
	if _, err := b.MakeAllContiguous(); err != nil {
		return "", err
	}

	first := b.pages.first()
	if first != nil && first.reallocatable() && first.contentLen() == b.contentLen {
		live := first.data[first.readPos:first.writePos]
		s := unsafe.String(&live[0], len(live))
		b.drainAllPages(drainNorelease | drainNorecycle)
		return s, nil
	}

	fresh := make([]byte, b.contentLen)
	n, err := b.CopyOut(0, fresh)
	if err != nil {
		return "", err
	}
	b.drainAllPages(0)
	return string(fresh[:n]), nil
}

// RemoveNtohU8 removes one byte from the head of the buffer.
func (b *Buffer) RemoveNtohU8() (uint8, error) {
	var tmp [1]byte
	n, err := b.Remove(tmp[:])
	if err != nil {
		return 0, err
	}
	if n < len(tmp) {
		return 0, newError(ErrInvalidArgument, "removeNtohU8")
	}
	return tmp[0], nil
}

// RemoveNtohU16 removes 2 bytes from the head, decoded as big-endian.
func (b *Buffer) RemoveNtohU16() (uint16, error) {
	var tmp [2]byte
	n, err := b.Remove(tmp[:])
	if err != nil {
		return 0, err
	}
	if n < len(tmp) {
		return 0, newError(ErrInvalidArgument, "removeNtohU16")
	}
	return getUint16BE(tmp[:]), nil
}

// RemoveNtohU32 removes 4 bytes from the head, decoded as big-endian.
func (b *Buffer) RemoveNtohU32() (uint32, error) {
	var tmp [4]byte
	n, err := b.Remove(tmp[:])
	if err != nil {
		return 0, err
	}
	if n < len(tmp) {
		return 0, newError(ErrInvalidArgument, "removeNtohU32")
	}
	return getUint32BE(tmp[:]), nil
}

// RemoveNtohU64 removes 8 bytes from the head, decoded as big-endian.
func (b *Buffer) RemoveNtohU64() (uint64, error) {
	var tmp [8]byte
	n, err := b.Remove(tmp[:])
	if err != nil {
		return 0, err
	}
	if n < len(tmp) {
		return 0, newError(ErrInvalidArgument, "removeNtohU64")
	}
	return getUint64BE(tmp[:]), nil
}
