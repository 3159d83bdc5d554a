// Package buffy implements a paged byte-buffer engine in the style of the
// classical event-loop "evbuffer": content lives in an ordered sequence of
// contiguous memory regions (pages), new content is appended to the tail,
// and content is consumed from the head. Buffers support zero-copy
// wrapping of externally-owned memory and zero-copy transfer of content
// between buffers.
//
// Key properties:
//   - Append-at-tail, consume-from-head page array
//   - Zero-copy wrapping of read-only or externally-referenced memory
//   - Zero-copy buffer-to-buffer transfer
//   - Coalesced/mutable change notifications
//   - Single owner, fully synchronous, no I/O
//
// Basic usage:
//
//	buf := buffy.New()
//	defer buf.Free()
//
//	if _, err := buf.AddPrintf("Hello, %s!", "world"); err != nil {
//	    log.Fatal(err)
//	}
//
//	s, err := buf.RemoveString()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s) // "Hello, world!"
//
// A Buffer is single-owner and synchronous: every operation completes
// before it returns, and no method is safe to call concurrently with
// another on the same Buffer. Callers needing concurrent access must
// arrange their own mutual exclusion.
package buffy
