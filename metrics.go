package mempool

// UsedBytes returns the total number of bytes consumed by the bump cursor
// across all blocks. This includes internal padding due to 8-byte rounding.
func (p *Pool) UsedBytes() int {
	sum := 0
	for i := range p.blocks {
		sum += p.blocks[i].used()
	}
	return sum
}

// NumBlocks returns the number of blocks currently owned by the pool.
func (p *Pool) NumBlocks() int {
	return len(p.blocks)
}

// Capacity returns the total capacity (in bytes) of all blocks.
func (p *Pool) Capacity() int {
	sum := 0
	for i := range p.blocks {
		sum += len(p.blocks[i].buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 for an empty pool.
func (p *Pool) Utilization() float64 {
	capacity := p.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(p.UsedBytes()) / float64(capacity)
}

// MinBlockSize returns the configured minimum block size.
func (p *Pool) MinBlockSize() int {
	return p.minBlockSize
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		UsedBytes:    p.UsedBytes(),
		Capacity:     p.Capacity(),
		NumBlocks:    p.NumBlocks(),
		MinBlockSize: p.MinBlockSize(),
		Utilization:  p.Utilization(),
	}
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	UsedBytes    int     // Bytes consumed by the bump cursor
	Capacity     int     // Total capacity in bytes
	NumBlocks    int     // Number of blocks
	MinBlockSize int     // Configured minimum block size
	Utilization  float64 // Ratio of used to total capacity (0.0-1.0)
}
