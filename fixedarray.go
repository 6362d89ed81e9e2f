package mempool

// FixedArray chooses between a caller-provided inline buffer and a heap
// allocation for a transient array of elements. The decision is made once
// at construction and never revisited: if count fits in the inline buffer
// the inline buffer is used, otherwise a heap buffer of exactly count
// elements is allocated. The typical caller declares a small array on its
// own stack and passes a slice of it:
//
//	var buf [64]int32
//	fa := mempool.NewFixedArray(buf[:], n)
//	els := fa.Get()
//
// For small n this avoids the heap allocation entirely (subject to the
// compiler's escape analysis). The heap buffer, when one is allocated,
// is reclaimed by the garbage collector once the FixedArray is dropped.
type FixedArray[T any] struct {
	buf    []T
	heaped bool
}

// NewFixedArray builds a FixedArray of count elements backed by inline if
// count <= cap(inline), or by a fresh heap buffer otherwise. A negative
// count is treated as zero. No resizing happens after construction.
func NewFixedArray[T any](inline []T, count int) FixedArray[T] {
	if count < 0 {
		count = 0
	}
	if count <= cap(inline) {
		return FixedArray[T]{buf: inline[:count:count]}
	}
	return FixedArray[T]{buf: make([]T, count), heaped: true}
}

// Get returns the active buffer, sliced to exactly the constructed count.
func (f FixedArray[T]) Get() []T { return f.buf }

// Len returns the constructed element count.
func (f FixedArray[T]) Len() int { return len(f.buf) }

// Heaped reports whether the heap path was taken at construction.
func (f FixedArray[T]) Heaped() bool { return f.heaped }
