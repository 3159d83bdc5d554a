package buffy

import "bytes"

// Search finds the first occurrence of needle in the buffer's content
// and returns its content offset. It is SearchRange(0, ContentLen,
// needle).
func (b *Buffer) Search(needle []byte) (int, bool) {
	return b.SearchRange(0, b.contentLen, needle)
}

// SearchRange finds the first occurrence of needle starting at a content
// offset in [begin, end) and returns that offset; the match itself may
// extend past end if the buffer has more content there. Per page in
// range, it fast-scans for needle's first byte, then attempts an
// iterative cross-page match on each hit (§4.9). The cross-page match is
// a plain loop over an explicit (page, offset) cursor rather than
// recursion on the needle's remaining length, so arbitrarily long
// needles cannot grow the call stack.
func (b *Buffer) SearchRange(begin, end int, needle []byte) (int, bool) {
	if len(needle) == 0 {
		return b.clampOffset(begin), true
	}
	begin = b.clampOffset(begin)
	end = b.clampOffset(end)
	if end < begin {
		end = begin
	}
	if begin >= end {
		return 0, false
	}

	startPos := b.positionOf(begin)
	n := b.pages.count()
	curOffset := begin

	for i := startPos.PageIdx; i < n; i++ {
		p := b.pages.at(i)
		lo := 0
		if i == startPos.PageIdx {
			lo = startPos.PagePos
		}
		data := p.data[p.readPos+lo : p.writePos]

		local := 0
		for {
			idx := bytes.IndexByte(data[local:], needle[0])
			if idx < 0 {
				break
			}
			candidate := curOffset + local + idx
			if candidate >= end {
				return 0, false
			}
			if b.matchAt(candidate, needle) {
				return candidate, true
			}
			local += idx + 1
		}
		curOffset += len(data)
	}
	return 0, false
}

// matchAt reports whether needle occurs at content offset, walking pages
// iteratively from the position at offset.
func (b *Buffer) matchAt(offset int, needle []byte) bool {
	pos := b.positionOf(offset)
	pageIdx, pagePos := pos.PageIdx, pos.PagePos
	matched := 0
	n := b.pages.count()

	for matched < len(needle) {
		if pageIdx >= n {
			return false
		}
		p := b.pages.at(pageIdx)
		avail := p.contentLen() - pagePos
		if avail <= 0 {
			pageIdx++
			pagePos = 0
			continue
		}
		take := len(needle) - matched
		if take > avail {
			take = avail
		}
		have := p.data[p.readPos+pagePos : p.readPos+pagePos+take]
		want := needle[matched : matched+take]
		if !bytes.Equal(have, want) {
			return false
		}
		matched += take
		pagePos += take
		if pagePos >= p.contentLen() {
			pageIdx++
			pagePos = 0
		}
	}
	return true
}
