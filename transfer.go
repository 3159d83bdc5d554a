package buffy

// RemoveBuffer moves up to wanted bytes from the head of src into the
// tail of dst and returns how many bytes actually moved (§4.7). Whole
// pages are spliced across at the pointer level — data is never copied,
// and any unref callback travels with its page — while a trailing
// partial page is copied byte-for-byte behind a pagebreak in dst, so the
// untouched remainder of that page stays exclusively src's.
func (src *Buffer) RemoveBuffer(dst *Buffer, wanted int) (int, error) {
	if wanted < 0 {
		return 0, newError(ErrInvalidArgument, "removeBuffer")
	}
	if wanted > src.contentLen {
		wanted = src.contentLen
	}
	if wanted == 0 {
		return 0, nil
	}

	end := src.positionOf(wanted)

	if end.PageIdx > 0 {
		moved := src.pages.popFirstN(end.PageIdx)
		dst.pages.appendPages(moved)
		sum := 0
		for _, p := range moved {
			sum += p.contentLen()
		}
		dst.noteAdded(sum)
	}

	if end.PagePos > 0 {
		p := src.pages.first()
		if err := dst.AddPagebreak(); err != nil {
			return 0, err
		}
		if err := dst.Add(p.data[p.readPos : p.readPos+end.PagePos]); err != nil {
			return 0, err
		}
		p.readPos += end.PagePos
	}

	src.noteRemoved(end.ContentPos)
	return end.ContentPos, nil
}
