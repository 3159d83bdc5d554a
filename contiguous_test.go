package buffy

import "testing"

func TestMakeContiguousAlreadyContiguous(t *testing.T) {
	b := New()
	_ = b.Add([]byte("already one page"))
	before := b.pages.count()
	got, err := b.MakeAllContiguous()
	if err != nil {
		t.Fatalf("MakeAllContiguous failed: %v", err)
	}
	if string(got) != "already one page" {
		t.Fatalf("MakeAllContiguous() = %q, want %q", got, "already one page")
	}
	if b.pages.count() != before {
		t.Fatal("MakeAllContiguous must not mutate an already-contiguous buffer")
	}
}

func TestMakeContiguousDoesNotRotateContentWithinLastPage(t *testing.T) {
	// Regression test: want lands partway through the last page (two
	// pages, content "AB"+"CD", want=3 stops one byte into the second
	// page). A copy-into-tail-free-space optimization here would place
	// the prefix after the tail's own surviving bytes and produce the
	// rotation "DABC" instead of preserving "ABCD".
	b := New()
	_ = b.Add([]byte("AB"))
	if err := b.AddPagebreak(); err != nil {
		t.Fatalf("AddPagebreak failed: %v", err)
	}
	_ = b.Add([]byte("CD"))
	if err := b.EnsureSpace(200); err != nil {
		t.Fatalf("EnsureSpace failed: %v", err)
	}
	if b.pages.count() != 2 {
		t.Fatalf("expected two pages set up, got %d", b.pages.count())
	}

	total := b.ContentLen()
	got, err := b.MakeContiguous(3)
	if err != nil {
		t.Fatalf("MakeContiguous(3) failed: %v", err)
	}
	if string(got[:3]) != "ABC" {
		t.Fatalf("MakeContiguous(3) = %q, want prefix %q", got, "ABC")
	}

	full := make([]byte, b.ContentLen())
	if _, err := b.CopyOut(0, full); err != nil {
		t.Fatalf("CopyOut failed: %v", err)
	}
	if string(full) != "ABCD" {
		t.Fatalf("content after MakeContiguous(3) = %q, want unchanged %q", full, "ABCD")
	}
	if b.ContentLen() != total {
		t.Fatalf("ContentLen() = %d after make-contiguous, want unchanged %d", b.ContentLen(), total)
	}
}

func TestMakeAllContiguousAcrossManyPagesPreservesOrder(t *testing.T) {
	b := New()
	_ = b.Add([]byte("AAAA"))
	if err := b.AddPagebreak(); err != nil {
		t.Fatalf("AddPagebreak failed: %v", err)
	}
	_ = b.Add([]byte("BB"))
	if err := b.EnsureSpace(200); err != nil {
		t.Fatalf("EnsureSpace failed: %v", err)
	}

	total := b.ContentLen()
	got, err := b.MakeAllContiguous()
	if err != nil {
		t.Fatalf("MakeAllContiguous failed: %v", err)
	}
	if string(got) != "AAAABB" {
		t.Fatalf("MakeAllContiguous() = %q, want %q", got, "AAAABB")
	}
	full := make([]byte, b.ContentLen())
	if _, err := b.CopyOut(0, full); err != nil {
		t.Fatalf("CopyOut failed: %v", err)
	}
	if string(full) != "AAAABB" {
		t.Fatalf("content after MakeAllContiguous = %q, want %q", full, "AAAABB")
	}
	if b.ContentLen() != total {
		t.Fatalf("ContentLen() = %d after make-contiguous, want unchanged %d", b.ContentLen(), total)
	}
}

func TestMakeContiguousGeneralPathAllocatesFreshPage(t *testing.T) {
	b := New()
	_ = b.AddReadonly([]byte("AA"))
	_ = b.AddReadonly([]byte("BB"))
	_ = b.AddReadonly([]byte("CC"))

	got, err := b.MakeContiguous(3)
	if err != nil {
		t.Fatalf("MakeContiguous(3) failed: %v", err)
	}
	if string(got[:3]) != "AAB" {
		t.Fatalf("MakeContiguous(3) = %q, want prefix %q", got, "AAB")
	}

	full := make([]byte, b.ContentLen())
	if _, err := b.CopyOut(0, full); err != nil {
		t.Fatalf("CopyOut failed: %v", err)
	}
	if string(full) != "AABBCC" {
		t.Fatalf("content after MakeContiguous(3) = %q, want %q", full, "AABBCC")
	}
}

func TestMakeContiguousDoesNotNotifyChange(t *testing.T) {
	b := New()
	_ = b.AddReadonly([]byte("AA"))
	_ = b.AddReadonly([]byte("BB"))

	deliveries := 0
	b.SetChangedCB(func(*Buffer, ChangeInfo, any) { deliveries++ }, nil)

	if _, err := b.MakeAllContiguous(); err != nil {
		t.Fatalf("MakeAllContiguous failed: %v", err)
	}
	if deliveries != 0 {
		t.Fatalf("MakeAllContiguous delivered %d change notifications, want 0", deliveries)
	}
}
