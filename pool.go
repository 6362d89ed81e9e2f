// Package mempool implements a pluggable allocator abstraction and a
// bump-pointer pool allocator for allocate-many/free-together workloads.
// Typical usage: create one Pool per parse/build phase, allocate many
// small pieces from it, then FreeAll() at the end for O(blocks) cleanup.
package mempool

// DefaultMinBlockSize is the default minimum block size for new pools (4 KiB).
const DefaultMinBlockSize = 4096

// pieceAlign is the alignment every allocation size is rounded up to.
const pieceAlign = 8

// block is a single contiguous chunk of heap memory subdivided by the pool.
type block struct {
	buf  []byte // backing memory
	free int    // bytes remaining at the tail of buf
}

// used returns the byte count consumed by the bump cursor so far.
func (b *block) used() int { return len(b.buf) - b.free }

// Pool is a bump-pointer pool allocator. It hands out pieces of memory
// that are meant to be freed together: Free is a no-op, only FreeAll
// reclaims memory. Not goroutine-safe; callers needing concurrent access
// must serialize every operation externally.
type Pool struct {
	blocks       []block
	minBlockSize int
}

var _ Allocator = (*Pool)(nil)

// NewPool creates an empty Pool with the default minimum block size.
// The first block is allocated lazily on first Alloc.
func NewPool() *Pool {
	return &Pool{minBlockSize: DefaultMinBlockSize}
}

// SetMinBlockSize configures the size new blocks default to. It may only
// be called while the pool is empty (before the first allocation, or
// after FreeAll); calling it on a pool with live blocks is a usage error
// and panics. If n <= 0, DefaultMinBlockSize is used.
func (p *Pool) SetMinBlockSize(n int) {
	if len(p.blocks) != 0 {
		panic("mempool: SetMinBlockSize after first allocation")
	}
	if n <= 0 {
		n = DefaultMinBlockSize
	}
	p.minBlockSize = n
}

// Alloc returns a slice of exactly size bytes, zeroed. The bump cursor
// advances by size rounded up to an 8-byte boundary, so consecutive
// pieces never straddle an 8-byte misalignment. Returns nil if size <= 0.
//
// The returned slice's capacity is clipped to the rounded size; appending
// to it can never overwrite a neighboring piece.
func (p *Pool) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	need := roundUp8(size)
	cur := p.current()
	if cur == nil || cur.free < need {
		p.grow(need)
		cur = p.current()
	}
	off := cur.used()
	cur.free -= need
	return cur.buf[off : off+size : off+need]
}

// Realloc always panics: the pool keeps no per-piece size metadata, so a
// resize cannot preserve content without corrupting neighbors.
func (p *Pool) Realloc(b []byte, size int) []byte {
	panic("mempool: Realloc is not supported by Pool")
}

// Free does nothing; individual pieces cannot be reclaimed. It exists so
// a Pool satisfies Allocator and callers written against heap-backed
// allocators keep working unchanged.
func (p *Pool) Free(b []byte) {}

// FreeAll drops every block and returns the pool to its initial empty
// state. All slices previously returned by Alloc become invalid. Safe to
// call repeatedly and on an empty pool; the pool is reusable afterwards.
func (p *Pool) FreeAll() {
	p.blocks = nil
}

// FindNthPieceOfSize treats everything allocated so far as a flat, dense
// array of elemSize-byte pieces (each occupying elemSize rounded up to 8
// bytes) and returns the n-th piece. The result is only meaningful if
// every allocation made from this pool was exactly elemSize bytes; see
// View for a typed wrapper that enforces that by construction. Returns
// nil when n is out of range.
func (p *Pool) FindNthPieceOfSize(elemSize, n int) []byte {
	if elemSize <= 0 || n < 0 {
		return nil
	}
	piece := roundUp8(elemSize)
	for i := range p.blocks {
		b := &p.blocks[i]
		pieces := b.used() / piece
		if n < pieces {
			off := n * piece
			return b.buf[off : off+elemSize : off+piece]
		}
		n -= pieces
	}
	return nil
}

// current returns the bump target, or nil for an empty pool.
func (p *Pool) current() *block {
	if len(p.blocks) == 0 {
		return nil
	}
	return &p.blocks[len(p.blocks)-1]
}

// grow appends a new block of max(minBlockSize, need) bytes and makes it
// the bump target. need must already be rounded.
func (p *Pool) grow(need int) {
	size := p.minBlockSize
	if need > size {
		size = need
	}
	p.blocks = append(p.blocks, block{buf: make([]byte, size), free: size})
}

// roundUp8 rounds n up to the next multiple of pieceAlign.
func roundUp8(n int) int {
	return (n + pieceAlign - 1) &^ (pieceAlign - 1)
}
