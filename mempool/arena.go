package mempool

import "sort"

// arenaAlign is the allocation granularity. Every carved block is a multiple
// of 8 bytes so blocks stay pointer-aligned.
const arenaAlign = 8

// span is a free range inside an arena, in bytes from the arena start.
type span struct {
	off  int
	size int
}

// ArenaPool is a fixed region of memory managed with a first-fit free list.
// Adjacent free spans coalesce on free, so fragmentation only accumulates
// from allocation order, not from free order. It backs the preferred
// ("external RAM") tier; NewMmap builds one over anonymous mapped memory and
// NewArena over any caller-supplied buffer.
type ArenaPool struct {
	name string
	mem  []byte
	free []span // sorted by offset, no two spans adjacent
	live map[*byte]span

	// release unmaps mapped arenas on Close; nil for caller-owned buffers.
	release func() error
}

// NewArena returns an arena pool over buf. The caller keeps ownership of buf
// but must not touch it while the pool is in use.
func NewArena(name string, buf []byte) *ArenaPool {
	p := &ArenaPool{
		name: name,
		mem:  buf,
		live: map[*byte]span{},
	}
	if len(buf) >= arenaAlign {
		p.free = []span{{off: 0, size: len(buf) &^ (arenaAlign - 1)}}
	}
	return p
}

// Name implements Pool.
func (p *ArenaPool) Name() string { return p.name }

// Alloc implements Pool with a first-fit scan. The returned slice is the
// whole carved span, so its length can exceed n by alignment padding.
func (p *ArenaPool) Alloc(n int) ([]byte, bool) {
	if n <= 0 {
		return nil, false
	}
	need := (n + arenaAlign - 1) &^ (arenaAlign - 1)
	for i, s := range p.free {
		if s.size < need {
			continue
		}
		if s.size == need {
			p.free = append(p.free[:i], p.free[i+1:]...)
		} else {
			p.free[i] = span{off: s.off + need, size: s.size - need}
		}
		// Cap the slice at the span boundary so an append through the block
		// cannot reach into a neighboring allocation.
		b := p.mem[s.off : s.off+need : s.off+need]
		p.live[&b[0]] = span{off: s.off, size: need}
		return b, true
	}
	return nil, false
}

// Free implements Pool. Memory the arena never handed out is ignored.
func (p *ArenaPool) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	key := &b[0]
	s, ok := p.live[key]
	if !ok {
		return
	}
	delete(p.live, key)
	p.insertFree(s)
}

// insertFree puts s back into the sorted free list, merging with adjacent
// spans.
func (p *ArenaPool) insertFree(s span) {
	i := sort.Search(len(p.free), func(i int) bool { return p.free[i].off > s.off })

	// Merge with the span before and/or after when they touch.
	if i > 0 && p.free[i-1].off+p.free[i-1].size == s.off {
		p.free[i-1].size += s.size
		if i < len(p.free) && p.free[i-1].off+p.free[i-1].size == p.free[i].off {
			p.free[i-1].size += p.free[i].size
			p.free = append(p.free[:i], p.free[i+1:]...)
		}
		return
	}
	if i < len(p.free) && s.off+s.size == p.free[i].off {
		p.free[i].off = s.off
		p.free[i].size += s.size
		return
	}

	p.free = append(p.free, span{})
	copy(p.free[i+1:], p.free[i:])
	p.free[i] = s
}

// FreeBytes returns the total bytes on the free list.
func (p *ArenaPool) FreeBytes() int {
	total := 0
	for _, s := range p.free {
		total += s.size
	}
	return total
}

// LiveBlocks returns the number of outstanding allocations.
func (p *ArenaPool) LiveBlocks() int { return len(p.live) }

// Close releases a mapped arena. Outstanding blocks become invalid. Arenas
// over caller-owned buffers close to a no-op.
func (p *ArenaPool) Close() error {
	p.free = nil
	p.live = nil
	p.mem = nil
	if p.release == nil {
		return nil
	}
	release := p.release
	p.release = nil
	return release()
}
