package buffy

// Buffer is an ordered sequence of pages plus content-level metadata and
// change-notification state (§3). It is single-owner and synchronous:
// every method call completes before returning, and none are safe to
// call concurrently with another call on the same Buffer (§5).
type Buffer struct {
	pages      pageArray
	contentLen int

	changeCB      ChangedFunc
	changeUser    any
	hasChangeCB   bool
	changeInfo    ChangeInfo
	coalesceDepth int
	muteDepth     int
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewUnmanaged returns a Buffer whose entire initial content is the given
// slice, wrapped zero-copy as a single UNMANAGED page: the engine will
// never free or reallocate data, and subsequent Add calls append a new
// page rather than writing into it.
func NewUnmanaged(data []byte) *Buffer {
	b := &Buffer{}
	b.InitUnmanaged(data)
	return b
}

// Init resets b to the empty state, as if freshly returned by New. Any
// existing pages are abandoned without running their unref callbacks;
// callers that need those to fire should call Destruct first.
func (b *Buffer) Init() {
	*b = Buffer{}
}

// InitUnmanaged resets b and wraps data as described in NewUnmanaged.
func (b *Buffer) InitUnmanaged(data []byte) {
	b.Init()
	if len(data) == 0 {
		return
	}
	p := &page{
		data:     data,
		size:     len(data),
		readPos:  0,
		writePos: len(data),
		flags:    PageUnmanaged,
	}
	b.pages.setSolePage(p)
	b.contentLen = p.contentLen()
}

// Free is an alias for Destruct, matching the C API's new/free naming
// alongside Go's init/Destruct pair.
func (b *Buffer) Free() {
	b.Destruct()
}

// Destruct drains all content, firing any unref callbacks for pages the
// engine does not own, then resets b to the empty state (§3 Lifecycles,
// invariant 7: every page is released exactly once).
func (b *Buffer) Destruct() {
	b.drainAllPages(drainNorecycle)
	*b = Buffer{}
}

// ContentLen returns the total number of content bytes across all pages.
func (b *Buffer) ContentLen() int {
	return b.contentLen
}

// SpaceLen returns the writable free space available in the tail page
// without growing it. It is 0 if there are no pages or the tail page is
// not reallocatable.
func (b *Buffer) SpaceLen() int {
	p := b.tailReallocatable()
	if p == nil {
		return 0
	}
	return p.spaceLen()
}

// tailReallocatable returns the buffer's last page if it is eligible to
// receive new writes (owned, not READONLY, not UNMANAGED), or nil.
func (b *Buffer) tailReallocatable() *page {
	p := b.pages.last()
	if p != nil && p.reallocatable() {
		return p
	}
	return nil
}

// growSize implements the growth policy of §4.3: start from
// max(1024, current) and double until >= requested.
func growSize(current, requested int) int {
	size := current
	if size < 1024 {
		size = 1024
	}
	for size < requested {
		size *= 2
	}
	return size
}

// compact memmoves a page's live content down to offset 0, discarding
// the now-unused space before readPos. Only ever called on pages that
// are reallocatable and otherwise unreferenced (§4.3).
func compact(p *page) {
	if p.readPos == 0 {
		return
	}
	n := copy(p.data[0:p.writePos-p.readPos], p.data[p.readPos:p.writePos])
	p.writePos = n
	p.readPos = 0
}

// ensureTailSpace returns a reallocatable tail page with at least n
// bytes of free space, compacting or growing it (or allocating a fresh
// page) as needed. It never touches contentLen or fires change
// notifications; callers commit separately.
func (b *Buffer) ensureTailSpace(n int) (*page, error) {
	if p := b.tailReallocatable(); p != nil {
		if p.spaceLen() < n && p.readPos > 0 {
			compact(p)
		}
		if p.spaceLen() >= n {
			return p, nil
		}
		newSize := growSize(p.size, p.writePos+n)
		grown, err := activeAllocator().Realloc(p.data, newSize)
		if err != nil {
			return nil, wrapError(ErrOutOfMemory, "ensureTailSpace", err)
		}
		p.data = grown
		p.size = newSize
		return p, nil
	}

	newSize := growSize(0, n)
	data, err := activeAllocator().Malloc(newSize)
	if err != nil {
		return nil, wrapError(ErrOutOfMemory, "ensureTailSpace", err)
	}
	np := &page{data: data, size: newSize}
	b.pages.appendPage(np)
	return np, nil
}
