package mempool

import "errors"

var (
	// ErrExhausted indicates every permitted tier failed to supply a block.
	ErrExhausted = errors.New("mempool: all tiers exhausted")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("mempool: negative size")

	// ErrArenaFull indicates an arena pool could not satisfy a request.
	ErrArenaFull = errors.New("mempool: arena full")

	// ErrForeignBlock indicates a free of memory the pool never handed out.
	ErrForeignBlock = errors.New("mempool: block not owned by pool")
)
