//go:build unix

package mempool

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// NewMmap returns an arena pool over size bytes of anonymous mapped memory.
// Mapped pages live outside the Go heap and outside GC accounting, which is
// the point: the tier models a separate physical memory bank. Close unmaps.
func NewMmap(name string, size int) (*ArenaPool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mempool: mmap arena size %d: %w", size, ErrBadSize)
	}
	mem, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mempool: mmap %d bytes: %w", size, err)
	}
	p := NewArena(name, mem)
	p.release = func() error { return unix.Munmap(mem) }
	return p, nil
}
