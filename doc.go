// Package mempool implements a pluggable allocator abstraction and a
// bump-pointer pool allocator for Go.
//
// # Overview
//
// A pool allocator hands out many pieces of memory whose individual
// lifetimes are not tracked and frees them all at once. Allocation is a
// cursor bump within a pre-reserved block, so it is fast and produces no
// per-piece bookkeeping. This is particularly useful for:
//
//   - Parsers and builders that produce many small nodes freed together
//   - Scratch memory for crash-safe or allocation-sensitive code paths
//   - Reducing garbage collection pressure for batch workloads
//   - Containers that should be parameterized over their memory source
//
// # Basic Usage
//
//	pool := mempool.NewPool()
//	defer pool.FreeAll() // reclaim everything in one pass
//
//	// Allocate raw bytes
//	buf := pool.Alloc(1024)
//
//	// Allocate typed values
//	node := mempool.AllocStruct[MyNode](pool)
//
//	// Reuse after FreeAll: the pool returns to its empty initial state
//	pool.FreeAll()
//
// # The Allocator Interface
//
// Pool satisfies the Allocator interface, as does HeapAllocator. The
// package-level Alloc, Realloc, Free and Dup helpers accept a nil
// Allocator and fall back to the Go heap, so an allocator can be an
// optional dependency:
//
//	func build(a mempool.Allocator) []byte {
//		b := mempool.Alloc(a, 256) // works with a == nil
//		...
//	}
//
// Two Allocator operations are deliberately asymmetric on Pool: Free is a
// safe no-op (individual pieces cannot be reclaimed), and Realloc panics
// (the pool keeps no per-piece size metadata, so resizing cannot be
// supported without corrupting neighbors).
//
// # Homogeneous Pools
//
// When every allocation from a pool has the same element size, the pool's
// contents form a flat dense array and can be indexed. View[T] captures
// that usage pattern:
//
//	v := mempool.NewView[Record](pool)
//	r0 := v.Alloc()
//	same := v.At(0) // same == r0
//
// # Memory Layout
//
// The pool allocates memory in blocks (minimum 4 KiB by default,
// configurable once before first use via SetMinBlockSize). Allocation
// sizes are rounded up to a multiple of 8 bytes, so pieces never straddle
// an 8-byte misalignment. A request larger than the minimum block size
// gets a block sized for that request, so any single allocation that fits
// in memory fits in one block.
//
// # Thread Safety
//
// No type in this package is safe for concurrent use. A Pool's bump
// cursor update is not atomic; callers sharing a pool across goroutines
// must serialize every operation, including Alloc and FreeAll, with their
// own mutual exclusion.
//
// # Performance Characteristics
//
//   - Alloc: O(1) amortized, at most one underlying heap allocation
//   - FreeAll: O(number of blocks)
//   - FindNthPieceOfSize / View.At: O(number of blocks)
//   - Memory overhead: per-block metadata only
//
// # Important Notes
//
//   - Slices returned by Alloc are valid only until FreeAll
//   - No individual deallocation - Free is a no-op, use FreeAll
//   - Pool blocks are untyped bytes; do not store pointers the GC must
//     trace through them
//
// # Metrics and Monitoring
//
// The pool reports its memory accounting:
//
//	m := pool.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Bytes in use: %d\n", m.UsedBytes)
package mempool
