package buffy

import "unsafe"

// IOVec describes one contiguous slice of content, the Go analogue of a
// scatter/gather iovec. Base is invalidated by the next mutating call on
// the Buffer it came from.
type IOVec struct {
	Base []byte
}

// Peek fills vec with up to len(vec) IOVec entries describing the
// content in [begin, end) (clamped to [0, ContentLen)) and returns the
// number of entries that would be required. One entry is produced per
// contributing page, trimmed at the range's edges; empty slices are
// omitted. Passing a nil or short vec still returns the correct needed
// count, enabling two-pass sizing (§4.2).
func (b *Buffer) Peek(begin, end int, vec []IOVec) int {
	begin = b.clampOffset(begin)
	end = b.clampOffset(end)
	if end < begin {
		end = begin
	}
	if begin >= end {
		return 0
	}

	startPos := b.positionOf(begin)
	endPos := b.positionOf(end)
	needed := 0
	n := b.pages.count()

	last := endPos.PageIdx
	if last > n-1 {
		last = n - 1
	}
	for i := startPos.PageIdx; i <= last; i++ {
		p := b.pages.at(i)
		lo := 0
		if i == startPos.PageIdx {
			lo = startPos.PagePos
		}
		hi := p.contentLen()
		if i == endPos.PageIdx {
			hi = endPos.PagePos
		}
		if hi <= lo {
			continue
		}
		needed++
		if needed <= len(vec) {
			vec[needed-1] = IOVec{Base: p.data[p.readPos+lo : p.readPos+hi]}
		}
	}
	return needed
}

// PeekAll is Peek(0, ContentLen, vec).
func (b *Buffer) PeekAll(vec []IOVec) int {
	return b.Peek(0, b.contentLen, vec)
}

// PeekString returns the buffer's entire content as a zero-copy string
// view (via MakeAllContiguous) along with its length. The returned
// string aliases buffer memory and is invalidated by the next mutating
// call.
func (b *Buffer) PeekString() (string, int) {
	if b.contentLen == 0 {
		return "", 0
	}
	data, err := b.MakeAllContiguous()
	if err != nil || len(data) == 0 {
		return "", 0
	}
	return unsafe.String(&data[0], len(data)), len(data)
}
