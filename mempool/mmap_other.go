//go:build !unix

package mempool

import "fmt"

// NewMmap falls back to a heap-backed arena where anonymous mapping is not
// available. The pool behaves identically; only the backing store differs.
func NewMmap(name string, size int) (*ArenaPool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mempool: mmap arena size %d: %w", size, ErrBadSize)
	}
	return NewArena(name, make([]byte, size)), nil
}
