package mempool

// HeapPool serves blocks from the Go heap under a byte budget, standing in
// for a finite internal RAM bank. A capacity of 0 means unlimited.
type HeapPool struct {
	name     string
	capacity int
	used     int
	sizes    map[*byte]int
}

// NewHeap returns a heap pool with the given budget in bytes.
func NewHeap(name string, capacity int) *HeapPool {
	return &HeapPool{
		name:     name,
		capacity: capacity,
		sizes:    map[*byte]int{},
	}
}

// Name implements Pool.
func (p *HeapPool) Name() string { return p.name }

// Alloc implements Pool. Fails when the request would exceed the budget.
func (p *HeapPool) Alloc(n int) ([]byte, bool) {
	if n <= 0 {
		return nil, false
	}
	if p.capacity > 0 && p.used+n > p.capacity {
		return nil, false
	}
	b := make([]byte, n)
	p.used += n
	p.sizes[&b[0]] = n
	return b, true
}

// Free implements Pool, returning the block's bytes to the budget. Memory a
// heap pool never handed out is ignored.
func (p *HeapPool) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	key := &b[0]
	n, ok := p.sizes[key]
	if !ok {
		return
	}
	delete(p.sizes, key)
	p.used -= n
}

// Used returns the bytes currently drawn against the budget.
func (p *HeapPool) Used() int { return p.used }

// Capacity returns the configured budget, 0 for unlimited.
func (p *HeapPool) Capacity() int { return p.capacity }
