package mempool

// Allocator is the capability containers are parameterized over when they
// should not care where their memory comes from (a pool, the heap, a test
// double). Implementations own all their state; the interface itself is
// stateless.
type Allocator interface {
	// Alloc returns a slice of exactly size bytes, zeroed.
	// Returns nil if size <= 0.
	Alloc(size int) []byte

	// Realloc returns a slice of size bytes whose leading
	// min(len(b), size) bytes equal b's content. The original slice must
	// not be used afterwards. Implementations that cannot resize (Pool)
	// panic instead of silently corrupting memory.
	Realloc(b []byte, size int) []byte

	// Free returns b to the allocator. Implementations for which
	// individual release is meaningless (Pool) make this a no-op so
	// callers can stay uniform with heap-backed code paths.
	Free(b []byte)
}

// HeapAllocator is the trivial Allocator backed by the Go heap.
type HeapAllocator struct{}

// NewHeapAllocator creates a new HeapAllocator.
func NewHeapAllocator() *HeapAllocator { return &HeapAllocator{} }

func (*HeapAllocator) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

func (*HeapAllocator) Realloc(b []byte, size int) []byte {
	if size <= 0 {
		return nil
	}
	if size <= len(b) {
		return b[:size:size]
	}
	nb := make([]byte, size)
	copy(nb, b)
	return nb
}

// Free does nothing; the garbage collector reclaims unreferenced slices.
func (*HeapAllocator) Free(b []byte) {}

// DefaultAllocator is used by the package-level helpers when no Allocator
// is supplied.
var DefaultAllocator Allocator = NewHeapAllocator()

// The package-level helpers below accept a nil Allocator and fall back to
// DefaultAllocator. They let callers treat the allocator as an optional
// dependency rather than threading a non-nil handle everywhere.

// Alloc allocates size bytes from a, or from the heap if a is nil.
func Alloc(a Allocator, size int) []byte {
	if a == nil {
		a = DefaultAllocator
	}
	return a.Alloc(size)
}

// Realloc resizes b using a, or the heap if a is nil.
func Realloc(a Allocator, b []byte, size int) []byte {
	if a == nil {
		a = DefaultAllocator
	}
	return a.Realloc(b, size)
}

// Free releases b back to a, or does nothing if a is nil.
func Free(a Allocator, b []byte) {
	if a == nil {
		a = DefaultAllocator
	}
	a.Free(b)
}

// Dup allocates len(src)+padding bytes from a (or the heap if a is nil)
// and copies src into the front of the new slice. The padding bytes are
// zeroed; they leave room for an appended terminator or extra field.
func Dup(a Allocator, src []byte, padding int) []byte {
	if padding < 0 {
		padding = 0
	}
	b := Alloc(a, len(src)+padding)
	copy(b, src)
	return b
}
