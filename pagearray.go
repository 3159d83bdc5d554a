package buffy

// minSpilledCap is the floor capacity the spilled page array grows from;
// below two pages the embedded slot is used instead, so this first
// applies when a buffer's second page arrives.
const minSpilledCap = 16

// pageArray is the ordered sequence of pages backing a Buffer's content.
// A buffer with zero or one page pays no slice allocation at all: the
// single page, if any, lives in embedded. Only once a second page is
// added does the array spill into a growable slice, with the embedded
// page migrated to index 0. This mirrors gdbx's page-table growth
// (doubling capacity) adapted from an on-disk page table to an in-memory
// one, and the inline/spilled split called out in the design notes as
// the natural Go shape for the embedded-page optimization.
type pageArray struct {
	embedded *page
	spilled  []*page
}

// count returns the number of pages currently in the array.
func (pa *pageArray) count() int {
	if pa.spilled != nil {
		return len(pa.spilled)
	}
	if pa.embedded != nil {
		return 1
	}
	return 0
}

// at returns the page at index i. i must be in [0, count()).
func (pa *pageArray) at(i int) *page {
	if pa.spilled != nil {
		return pa.spilled[i]
	}
	return pa.embedded
}

func (pa *pageArray) first() *page {
	if pa.count() == 0 {
		return nil
	}
	return pa.at(0)
}

func (pa *pageArray) last() *page {
	n := pa.count()
	if n == 0 {
		return nil
	}
	return pa.at(n - 1)
}

// growSpilled doubles the spilled slice's capacity (from a floor of
// minSpilledCap) so it can hold at least n entries.
func growSpilled(cur []*page, n int) []*page {
	if cap(cur) >= n {
		return cur
	}
	newCap := cap(cur)
	if newCap == 0 {
		newCap = minSpilledCap
	}
	for newCap < n {
		newCap *= 2
	}
	grown := make([]*page, len(cur), newCap)
	copy(grown, cur)
	return grown
}

// promote migrates the embedded page into index 0 of a freshly spilled
// array, leaving the embedded slot empty.
func (pa *pageArray) promote() {
	if pa.spilled != nil {
		return
	}
	s := growSpilled(nil, 2)
	if pa.embedded != nil {
		s = append(s, pa.embedded)
	}
	pa.spilled = s
	pa.embedded = nil
}

// appendPage adds p to the tail of the array.
func (pa *pageArray) appendPage(p *page) {
	switch pa.count() {
	case 0:
		pa.embedded = p
	case 1:
		pa.promote()
		pa.appendPages([]*page{p})
	default:
		pa.appendPages([]*page{p})
	}
}

// appendPages splices ps onto the tail in order, used by buffer-to-buffer
// transfer to move pages in bulk (§4.7) without releasing or reallocating
// them.
func (pa *pageArray) appendPages(ps []*page) {
	if len(ps) == 0 {
		return
	}
	if pa.spilled == nil {
		// 0 or 1 existing page plus >=1 incoming always needs the array
		// unless we're landing at exactly one page total.
		if pa.embedded == nil && len(ps) == 1 {
			pa.embedded = ps[0]
			return
		}
		pa.promote()
	}
	pa.spilled = growSpilled(pa.spilled, len(pa.spilled)+len(ps))
	pa.spilled = append(pa.spilled, ps...)
}

// prependPage inserts p at index 0, used by make-contiguous (§4.8) when a
// fresh contiguous page is allocated ahead of the existing content.
func (pa *pageArray) prependPage(p *page) {
	switch pa.count() {
	case 0:
		pa.embedded = p
	case 1:
		pa.promote()
		pa.spilled = growSpilled(pa.spilled, 2)
		pa.spilled = append(pa.spilled, nil)
		copy(pa.spilled[1:], pa.spilled[:1])
		pa.spilled[0] = p
	default:
		pa.spilled = growSpilled(pa.spilled, len(pa.spilled)+1)
		pa.spilled = append(pa.spilled, nil)
		copy(pa.spilled[1:], pa.spilled[:len(pa.spilled)-1])
		pa.spilled[0] = p
	}
}

// popFirstN mechanically removes and returns the first n pages, memmoving
// the tail down. It performs no release/unref bookkeeping of its own —
// callers (drain, transfer) decide what happens to the returned pages.
func (pa *pageArray) popFirstN(n int) []*page {
	if n <= 0 {
		return nil
	}
	total := pa.count()
	if n > total {
		n = total
	}
	removed := make([]*page, n)
	for i := 0; i < n; i++ {
		removed[i] = pa.at(i)
	}
	switch {
	case n == total:
		pa.embedded = nil
		pa.spilled = nil
	case pa.spilled != nil:
		copy(pa.spilled, pa.spilled[n:])
		pa.spilled = pa.spilled[:total-n]
		if len(pa.spilled) == 1 {
			// collapse back to the embedded slot once only one page
			// remains, so a long-lived buffer that drains back down to
			// one page doesn't keep paying for the spilled slice.
			pa.embedded = pa.spilled[0]
			pa.spilled = nil
		}
	default:
		// n==0 handled above; n==total handled above; with only the
		// embedded slot in play the only remaining case is n==0.
	}
	return removed
}

// popPage mechanically removes and returns the page at index idx without
// any release/unref bookkeeping, used by drain-all's recycling path to
// pull the chosen page out of the released set (§4.1 Recycling).
func (pa *pageArray) popPage(idx int) *page {
	total := pa.count()
	if idx < 0 || idx >= total {
		return nil
	}
	p := pa.at(idx)
	if pa.spilled != nil {
		pa.spilled = append(pa.spilled[:idx], pa.spilled[idx+1:]...)
		if len(pa.spilled) == 1 {
			// spilled is only ever used with >=2 pages, so popping one
			// always leaves at least one behind; collapse back to the
			// embedded slot if that's down to exactly one.
			pa.embedded = pa.spilled[0]
			pa.spilled = nil
		}
	} else {
		pa.embedded = nil
	}
	return p
}

// setSolePage installs p as the only page in the array (used to install
// a recycled page as the new embedded page after drain-all, and by
// InitUnmanaged to wrap the caller's slice as the buffer's only page).
func (pa *pageArray) setSolePage(p *page) {
	pa.embedded = p
	pa.spilled = nil
}

// clear empties the array without touching any page's memory.
func (pa *pageArray) clear() {
	pa.embedded = nil
	pa.spilled = nil
}
