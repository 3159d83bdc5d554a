package buffy

// MakeContiguous arranges for the first min(wanted, ContentLen) bytes of
// content to live in a single contiguous region and returns a slice over
// that page's live content (at least that many bytes long). The returned
// slice is invalidated by the next mutating call (§4.8, invariant 8).
//
// Change notifications are muted for the duration: relocating content
// into a new page is not itself a content change (total bytes in the
// buffer are unaffected), so nothing should be delivered to a change
// callback even though bytes are drained from and re-added to the page
// array internally.
func (b *Buffer) MakeContiguous(wanted int) ([]byte, error) {
	want := wanted
	if want < 0 {
		want = 0
	}
	if want > b.contentLen {
		want = b.contentLen
	}

	if first := b.pages.first(); first != nil && first.contentLen() >= want {
		return first.readBegin(), nil
	}
	if want == 0 {
		return nil, nil
	}

	b.mute()
	defer b.unmute()

	pos := b.positionOf(want)

	// Allocate a fresh page sized to the prefix, copy the prefix into
	// it, drain the original prefix pages, and prepend the fresh page.
	// An earlier version of this also tried to reuse the tail page's
	// free space when the prefix ran all the way to the last page, but
	// that free space sits after the tail's own live content — writing
	// the prefix there and draining the head produces
	// content[want:]+content[0:want], a rotation, not the original
	// content. There is no free-space region that is both already
	// available and already ahead of every byte the prefix needs to
	// land before, so the copy always goes into a brand new page.
	data, err := activeAllocator().Malloc(want)
	if err != nil {
		return nil, wrapError(ErrOutOfMemory, "makeContiguous", err)
	}
	n, err := b.CopyOut(0, data)
	if err != nil {
		return nil, err
	}
	fresh := &page{data: data, size: len(data), writePos: n}

	b.drainTo(pos, 0)
	b.noteAdded(n)
	b.pages.prependPage(fresh)
	return fresh.readBegin(), nil
}

// MakeAllContiguous is MakeContiguous(b.ContentLen()).
func (b *Buffer) MakeAllContiguous() ([]byte, error) {
	return b.MakeContiguous(b.contentLen)
}
