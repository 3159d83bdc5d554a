package buffy

import "testing"

func TestReserveCommitRoundTrip(t *testing.T) {
	b := New()
	space, err := b.ReserveSpace(10)
	if err != nil {
		t.Fatalf("ReserveSpace failed: %v", err)
	}
	if len(space) != 10 {
		t.Fatalf("ReserveSpace(10) returned %d bytes, want 10", len(space))
	}
	copy(space, []byte("0123456789"))
	if err := b.CommitSpace(10); err != nil {
		t.Fatalf("CommitSpace failed: %v", err)
	}
	if b.ContentLen() != 10 {
		t.Fatalf("ContentLen() = %d, want 10", b.ContentLen())
	}
	out := make([]byte, 10)
	_, _ = b.CopyOut(0, out)
	if string(out) != "0123456789" {
		t.Fatalf("content = %q, want %q", out, "0123456789")
	}
}

func TestCommitLessThanReservedIsLegal(t *testing.T) {
	b := New()
	space, err := b.ReserveSpace(100)
	if err != nil {
		t.Fatalf("ReserveSpace failed: %v", err)
	}
	copy(space, []byte("abc"))
	if err := b.CommitSpace(3); err != nil {
		t.Fatalf("CommitSpace(3) after reserving 100 failed: %v", err)
	}
	if b.ContentLen() != 3 {
		t.Fatalf("ContentLen() = %d, want 3", b.ContentLen())
	}
}

func TestCommitMoreThanReservedFails(t *testing.T) {
	b := New()
	if _, err := b.ReserveSpace(4); err != nil {
		t.Fatalf("ReserveSpace failed: %v", err)
	}
	err := b.CommitSpace(5)
	if err == nil {
		t.Fatal("CommitSpace beyond the tail's writable space should fail")
	}
	var bufErr *Error
	if !asError(err, &bufErr) || bufErr.Code != ErrInvalidArgument {
		t.Fatalf("CommitSpace over-commit error = %v, want ErrInvalidArgument", err)
	}
}

func TestCommitSpaceAgainstReadonlyTailIsUnsupported(t *testing.T) {
	b := New()
	if err := b.AddReadonly([]byte("const")); err != nil {
		t.Fatalf("AddReadonly failed: %v", err)
	}
	err := b.CommitSpace(1)
	if err == nil {
		t.Fatal("CommitSpace against a READONLY tail should fail")
	}
	var bufErr *Error
	if !asError(err, &bufErr) || bufErr.Code != ErrUnsupported {
		t.Fatalf("CommitSpace against a READONLY tail error = %v, want ErrUnsupported", err)
	}
}

func TestEnsureSpaceGrowsWithoutCommitting(t *testing.T) {
	b := New()
	if err := b.EnsureSpace(500); err != nil {
		t.Fatalf("EnsureSpace failed: %v", err)
	}
	if b.ContentLen() != 0 {
		t.Fatalf("EnsureSpace must not add content, ContentLen() = %d", b.ContentLen())
	}
	if b.SpaceLen() < 500 {
		t.Fatalf("SpaceLen() = %d after EnsureSpace(500), want >= 500", b.SpaceLen())
	}
}

func TestPeekSpaceReflectsExistingTail(t *testing.T) {
	b := New()
	if got := b.PeekSpace(); got != nil {
		t.Fatalf("PeekSpace() on empty buffer = %v, want nil", got)
	}
	_ = b.Add([]byte("x"))
	if len(b.PeekSpace()) != b.SpaceLen() {
		t.Fatalf("PeekSpace() length %d != SpaceLen() %d", len(b.PeekSpace()), b.SpaceLen())
	}
}

// asError is a small errors.As helper kept local to this file's tests.
func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
