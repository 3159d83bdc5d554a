package buffy

// PeekSpace returns the tail page's existing free space without growing
// anything. The returned slice is invalidated by the next mutating call
// (§4.5, invariant 8).
func (b *Buffer) PeekSpace() []byte {
	p := b.tailReallocatable()
	if p == nil {
		return nil
	}
	return p.spaceBegin()
}

// ReserveSpace grows the tail (or allocates a fresh one) to hold at
// least n bytes and returns a slice over that space without committing
// any of it as content. The pointer is valid until the next mutating
// call on b (§4.5, invariant 8). A failed reserve returns a nil slice.
func (b *Buffer) ReserveSpace(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	p, err := b.ensureTailSpace(n)
	if err != nil {
		return nil, err
	}
	return p.spaceBegin()[:n], nil
}

// CommitSpace marks n bytes of the tail page's free space as content.
// Committing against a READONLY or UNMANAGED tail returns
// ErrUnsupported; a negative n, or an n larger than the tail's free
// space, returns ErrInvalidArgument (n is not clamped). The size passed
// to the last ReserveSpace is not recorded, so a commit larger than the
// reservation is accepted whenever it fits in the tail's free space.
// Committing less than was reserved is legal (§4.5).
func (b *Buffer) CommitSpace(n int) error {
	if n < 0 {
		return newError(ErrInvalidArgument, "commitSpace")
	}
	if n == 0 {
		return nil
	}
	if last := b.pages.last(); last != nil && !last.reallocatable() {
		return newError(ErrUnsupported, "commitSpace")
	}
	p := b.tailReallocatable()
	if p == nil || n > p.spaceLen() {
		return newError(ErrInvalidArgument, "commitSpace")
	}
	p.writePos += n
	b.noteAdded(n)
	return nil
}

// EnsureSpace grows the tail so that at least n bytes are available for
// a subsequent Add/ReserveSpace, without committing anything.
func (b *Buffer) EnsureSpace(n int) error {
	if n <= 0 {
		return nil
	}
	_, err := b.ensureTailSpace(n)
	return err
}
