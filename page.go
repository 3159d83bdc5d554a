package buffy

// PageFlag marks ownership/mutability properties of a page's backing
// memory region. The flag set is small and closed: {PageReadonly,
// PageUnmanaged}, folded together with an optional unref callback into
// one of three ownership variants (see recyclable/writable/reallocatable
// below), matching the closed variant set described in the design notes.
type PageFlag uint8

const (
	// PageReadonly forbids writing to the page's data.
	PageReadonly PageFlag = 1 << iota

	// PageUnmanaged forbids freeing or reallocating the page's data; its
	// memory is owned by whoever handed it to the buffer.
	PageUnmanaged
)

// UnrefFunc is invoked exactly once, with the original (data, size, user)
// a page was constructed with, when the engine is done with an
// externally-referenced region.
type UnrefFunc func(data []byte, size int, user any)

type unrefCallback struct {
	fn   UnrefFunc
	data []byte
	size int
	user any
}

func (u *unrefCallback) fire() {
	if u == nil || u.fn == nil {
		return
	}
	fn := u.fn
	u.fn = nil // fires exactly once
	fn(u.data, u.size, u.user)
}

// page is one contiguous memory region participating in a Buffer's
// content. readPos/writePos carve out the live content window
// [readPos, writePos) within data[0:size]; bytes in [writePos, size) are
// free space available to Add.
type page struct {
	data     []byte
	size     int
	readPos  int
	writePos int
	flags    PageFlag
	unref    *unrefCallback
}

func (p *page) contentLen() int {
	return p.writePos - p.readPos
}

func (p *page) spaceLen() int {
	return p.size - p.writePos
}

func (p *page) isReadonly() bool {
	return p.flags&PageReadonly != 0
}

func (p *page) isUnmanaged() bool {
	return p.flags&PageUnmanaged != 0
}

// recyclable reports whether this page is an owned, writable region with
// no external reference to it, so it is safe to retain (with its cursors
// reset) as the next embedded page across a drain-all.
func (p *page) recyclable() bool {
	return !p.isReadonly() && !p.isUnmanaged() && p.unref == nil
}

// writable reports whether Add-family operations may memcpy into this
// page's free space.
func (p *page) writable() bool {
	return !p.isReadonly()
}

// reallocatable reports whether this page's backing array may be grown
// via the Allocator (i.e. neither READONLY nor UNMANAGED).
func (p *page) reallocatable() bool {
	return !p.isReadonly() && !p.isUnmanaged()
}

// readBegin returns the start of the page's live content window. Callers
// must treat the returned slice as invalidated by the next mutating
// operation on the owning Buffer.
func (p *page) readBegin() []byte {
	return p.data[p.readPos:p.writePos]
}

// spaceBegin returns the page's free space (data[writePos:size]).
func (p *page) spaceBegin() []byte {
	return p.data[p.writePos:p.size]
}

// release fires the page's unref callback (if any) and frees its backing
// memory through the active Allocator, unless the page is UNMANAGED (in
// which case the memory is not ours to free) or norelease suppresses it
// (the page is being handed to another buffer).
func (p *page) release(norelease bool) {
	if p.unref != nil {
		p.unref.fire()
		p.unref = nil
	}
	if !norelease && !p.isUnmanaged() && p.data != nil {
		activeAllocator().Free(p.data)
	}
	p.data = nil
}

// resetForRecycle clears content cursors so a retained page can serve as
// a fresh embedded page; its backing array is kept as-is (no shrink).
func (p *page) resetForRecycle() {
	p.readPos = 0
	p.writePos = 0
}
