package buffy

// Add appends data to the tail of the buffer, growing or compacting the
// tail page as needed (§4.4). Failed adds leave ContentLen unchanged.
func (b *Buffer) Add(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	p, err := b.ensureTailSpace(len(data))
	if err != nil {
		return err
	}
	n := copy(p.spaceBegin(), data)
	p.writePos += n
	b.noteAdded(n)
	return nil
}

// AddCh appends a single byte.
func (b *Buffer) AddCh(c byte) error {
	return b.Add([]byte{c})
}

// AddReadonly appends a new page covering data, flagged READONLY and
// UNMANAGED: the engine never writes to or frees it. A subsequent Add
// does not reuse this page; it creates a new writable page after it.
func (b *Buffer) AddReadonly(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	p := &page{
		data:     data,
		size:     len(data),
		readPos:  0,
		writePos: len(data),
		flags:    PageReadonly | PageUnmanaged,
	}
	b.pages.appendPage(p)
	b.noteAdded(p.contentLen())
	return nil
}

// AddReference appends a new UNMANAGED page carrying data, whose unref
// callback fires exactly once when the engine is done with the page —
// on drain, on remove, or (per §4.7) carried along when the page is
// transferred whole into another buffer.
func (b *Buffer) AddReference(data []byte, unref UnrefFunc, user any) error {
	if len(data) == 0 {
		if unref != nil {
			unref(data, 0, user)
		}
		return nil
	}
	p := &page{
		data:     data,
		size:     len(data),
		readPos:  0,
		writePos: len(data),
		flags:    PageUnmanaged,
	}
	if unref != nil {
		p.unref = &unrefCallback{fn: unref, data: data, size: len(data), user: user}
	}
	b.pages.appendPage(p)
	b.noteAdded(p.contentLen())
	return nil
}

// AddPagebreak forces subsequent Add calls into a new page by appending
// an empty, owned, recyclable page.
func (b *Buffer) AddPagebreak() error {
	data, err := activeAllocator().Malloc(0)
	if err != nil {
		return wrapError(ErrOutOfMemory, "addPagebreak", err)
	}
	p := &page{data: data, size: 0}
	b.pages.appendPage(p)
	return nil
}

// AddBuffer moves all of src's content into b, per §4.7. It is sugar for
// src.RemoveBuffer(b, src.ContentLen()).
func (b *Buffer) AddBuffer(src *Buffer) error {
	_, err := src.RemoveBuffer(b, src.ContentLen())
	return err
}

// AddHtonU8 appends v. Provided for API symmetry with the wider widths;
// a single byte has no byte order to convert.
func (b *Buffer) AddHtonU8(v uint8) error {
	return b.AddCh(v)
}

// AddHtonU16 appends v in network (big-endian) byte order.
func (b *Buffer) AddHtonU16(v uint16) error {
	var tmp [2]byte
	putUint16BE(tmp[:], v)
	return b.Add(tmp[:])
}

// AddHtonU32 appends v in network (big-endian) byte order.
func (b *Buffer) AddHtonU32(v uint32) error {
	var tmp [4]byte
	putUint32BE(tmp[:], v)
	return b.Add(tmp[:])
}

// AddHtonU64 appends v in network (big-endian) byte order.
func (b *Buffer) AddHtonU64(v uint64) error {
	var tmp [8]byte
	putUint64BE(tmp[:], v)
	return b.Add(tmp[:])
}
