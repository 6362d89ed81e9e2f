package mempool

import "unsafe"

// AllocStruct returns a pointer to a T stored inside the pool with zeroed
// memory. The pointer is valid until FreeAll. Only useful for structs
// without pointers the GC needs to track; the pool never scans its blocks.
func AllocStruct[T any](p *Pool) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T)
	}
	b := p.Alloc(size)
	return (*T)(unsafe.Pointer(&b[0]))
}

// PieceAt returns the i-th piece of the pool reinterpreted as a *T,
// assuming every allocation made so far was a T (see
// Pool.FindNthPieceOfSize). Returns nil when i is out of range.
func PieceAt[T any](p *Pool, i int) *T {
	var zero T
	b := p.FindNthPieceOfSize(int(unsafe.Sizeof(zero)), i)
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// View is a homogeneous-mode wrapper around a Pool: every allocation that
// goes through it has the same element type, which makes flat indexed
// access safe without the caller re-stating the element size on every
// lookup. Allocations must not be mixed with raw p.Alloc calls of other
// sizes while a View is in use.
type View[T any] struct {
	p        *Pool
	elemSize int
}

// NewView creates a View over p for element type T.
// Panics for zero-size types, which cannot be indexed.
func NewView[T any](p *Pool) View[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		panic("mempool: View of zero-size type")
	}
	return View[T]{p: p, elemSize: size}
}

// Alloc appends one zeroed element to the view and returns its address.
func (v View[T]) Alloc() *T {
	b := v.p.Alloc(v.elemSize)
	return (*T)(unsafe.Pointer(&b[0]))
}

// At returns the address of the i-th element, or nil when i is out of range.
func (v View[T]) At(i int) *T {
	b := v.p.FindNthPieceOfSize(v.elemSize, i)
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// Len returns the number of elements allocated across all blocks.
func (v View[T]) Len() int {
	piece := roundUp8(v.elemSize)
	n := 0
	for i := range v.p.blocks {
		n += v.p.blocks[i].used() / piece
	}
	return n
}
