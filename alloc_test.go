package buffy

import "testing"

func TestHeapAllocatorMallocZeroed(t *testing.T) {
	var a heapAllocator
	b, err := a.Malloc(16)
	if err != nil {
		t.Fatalf("Malloc failed: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("Malloc(16) returned %d bytes, want 16", len(b))
	}
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %d, want 0 (malloc must zero)", i, v)
		}
	}
}

func TestHeapAllocatorReallocPreservesPrefix(t *testing.T) {
	var a heapAllocator
	b, _ := a.Malloc(4)
	copy(b, []byte{1, 2, 3, 4})
	grown, err := a.Realloc(b, 8)
	if err != nil {
		t.Fatalf("Realloc failed: %v", err)
	}
	if len(grown) != 8 {
		t.Fatalf("Realloc(_, 8) returned %d bytes, want 8", len(grown))
	}
	for i, want := range []byte{1, 2, 3, 4, 0, 0, 0, 0} {
		if grown[i] != want {
			t.Fatalf("byte %d = %d, want %d", i, grown[i], want)
		}
	}
}

func TestDefaultAllocatorRoundTrip(t *testing.T) {
	a := DefaultAllocator()
	b, err := a.Malloc(64)
	if err != nil {
		t.Fatalf("Malloc failed: %v", err)
	}
	copy(b, []byte("hello"))
	grown, err := a.Realloc(b, 256)
	if err != nil {
		t.Fatalf("Realloc failed: %v", err)
	}
	if string(grown[:5]) != "hello" {
		t.Fatalf("Realloc lost content: %q", grown[:5])
	}
	a.Free(grown)
}

func TestSetAllocatorIsUsedByNewPages(t *testing.T) {
	calls := 0
	custom := &countingAllocator{inner: &heapAllocator{}, mallocs: &calls}
	SetAllocator(custom)
	defer SetAllocator(nil)

	b := New()
	if err := b.Add([]byte("routed through custom allocator")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if calls == 0 {
		t.Fatal("custom allocator installed via SetAllocator was never called")
	}
}

func TestSetAllocatorNilRestoresDefault(t *testing.T) {
	SetAllocator(&countingAllocator{inner: &heapAllocator{}, mallocs: new(int)})
	SetAllocator(nil)
	b := New()
	if err := b.Add([]byte("default allocator again")); err != nil {
		t.Fatalf("Add failed after restoring default allocator: %v", err)
	}
}

type countingAllocator struct {
	inner   Allocator
	mallocs *int
}

func (c *countingAllocator) Malloc(n int) ([]byte, error) {
	*c.mallocs++
	return c.inner.Malloc(n)
}

func (c *countingAllocator) Realloc(b []byte, n int) ([]byte, error) {
	return c.inner.Realloc(b, n)
}

func (c *countingAllocator) Free(b []byte) {
	c.inner.Free(b)
}
