package buffy

// ChangeInfo accumulates the net content change since the last delivered
// notification: n_added/n_deleted are running totals, orig_size is the
// content length as of the last delivery (or as of SetChangedCB, for the
// first one).
type ChangeInfo struct {
	OrigSize int
	NAdded   int
	NDeleted int
}

// ChangedFunc is invoked synchronously, from inside the mutating call
// that triggers it, with the buffer, the accumulated change, and the
// user argument passed to SetChangedCB. It must not re-enter the same
// Buffer (§5).
type ChangedFunc func(buf *Buffer, info ChangeInfo, user any)

// SetChangedCB installs the change-notification callback and resets the
// accumulator to start counting from the buffer's current content length.
func (b *Buffer) SetChangedCB(cb ChangedFunc, user any) {
	b.changeCB = cb
	b.changeUser = user
	b.hasChangeCB = cb != nil
	b.changeInfo = ChangeInfo{OrigSize: b.contentLen}
}

// BeginCoalescing folds subsequent change notifications into one event,
// delivered when the matching EndCoalescing brings the depth back to
// zero (§4.10).
func (b *Buffer) BeginCoalescing() {
	b.coalesceDepth++
}

// EndCoalescing decrements the coalescing depth and, if it reaches zero
// and mute is not active, delivers any pending change event.
func (b *Buffer) EndCoalescing() {
	if b.coalesceDepth > 0 {
		b.coalesceDepth--
	}
	if b.coalesceDepth == 0 {
		b.maybeDeliver()
	}
}

// mute suppresses notifications during internal-only mutations (e.g.
// make-contiguous) that must not surface as a content change to callers.
func (b *Buffer) mute() {
	b.muteDepth++
}

// unmute decrements the mute depth and, once both mute and coalesce are
// at zero, delivers any pending change event.
func (b *Buffer) unmute() {
	if b.muteDepth > 0 {
		b.muteDepth--
	}
	if b.muteDepth == 0 {
		b.maybeDeliver()
	}
}

func (b *Buffer) noteAdded(n int) {
	b.contentLen += n
	if n == 0 || !b.hasChangeCB || b.muteDepth > 0 {
		return
	}
	b.changeInfo.NAdded += n
	b.maybeDeliver()
}

func (b *Buffer) noteRemoved(n int) {
	b.contentLen -= n
	if n == 0 || !b.hasChangeCB || b.muteDepth > 0 {
		return
	}
	b.changeInfo.NDeleted += n
	b.maybeDeliver()
}

// maybeDeliver fires the change callback when a callback is installed,
// neither mute nor coalescing is active, and the accumulator is
// non-empty, then resets the accumulator against the current size.
func (b *Buffer) maybeDeliver() {
	if !b.hasChangeCB || b.muteDepth > 0 || b.coalesceDepth > 0 {
		return
	}
	if b.changeInfo.NAdded == 0 && b.changeInfo.NDeleted == 0 {
		return
	}
	info := b.changeInfo
	cb := b.changeCB
	user := b.changeUser
	b.changeInfo = ChangeInfo{OrigSize: b.contentLen}
	cb(b, info, user)
}
