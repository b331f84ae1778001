package mempool

import (
	"fmt"
	"os"
)

// exit terminates the process on fatal exhaustion. Tests replace it to
// observe the fatal path.
var exit = os.Exit

// Pool is a backing memory source queried at allocation time. Alloc returns
// a block of at least n bytes or reports failure; it must never return an
// undersized slice. Free returns a block previously handed out by the same
// pool.
type Pool interface {
	Name() string
	Alloc(n int) ([]byte, bool)
	Free(b []byte)
}

// Config selects the pool tiers and the failure policy.
type Config struct {
	// Preferred is tried first for every allocation.
	Preferred Pool
	// Fallback is tried when the preferred pool fails, if AllowFallback.
	Fallback Pool
	// AllowFallback permits consulting Fallback. When false the fallback
	// pool is never touched, even on preferred-pool exhaustion.
	AllowFallback bool
	// AllowFailure returns ErrExhausted instead of terminating the process
	// when every permitted tier fails.
	AllowFailure bool
}

// Stats counts allocator outcomes.
type Stats struct {
	PreferredHits int
	FallbackHits  int
	Failures      int
	FreeCalls     int
	BytesLive     int64
}

// Block is a raw memory region tied to the pool that produced it. The zero
// Block marks a failed (non-fatal) allocation.
type Block struct {
	data []byte
	pool Pool
}

// Bytes returns the block's storage.
func (b Block) Bytes() []byte { return b.data }

// Size returns the usable size in bytes, always >= the requested size for a
// successful allocation.
func (b Block) Size() int { return len(b.data) }

// IsZero reports whether the block is the failed-allocation sentinel.
func (b Block) IsZero() bool { return b.data == nil && b.pool == nil }

// Allocator serves blocks from two pool tiers under a Config policy.
// Not safe for concurrent use; synchronize externally.
type Allocator struct {
	cfg   Config
	stats Stats
}

// New returns an allocator over cfg. Preferred must be set; Fallback may be
// nil when AllowFallback is false.
func New(cfg Config) *Allocator {
	if cfg.Preferred == nil {
		panic("mempool: Config.Preferred is required")
	}
	if cfg.AllowFallback && cfg.Fallback == nil {
		panic("mempool: AllowFallback set without a Fallback pool")
	}
	return &Allocator{cfg: cfg}
}

// Allocate obtains a block of at least n bytes per the configured policy.
// n == 0 succeeds without touching any pool. On exhaustion the process
// terminates unless AllowFailure is set, in which case the zero Block and
// ErrExhausted come back.
func (a *Allocator) Allocate(n int) (Block, error) {
	if n < 0 {
		return Block{}, ErrBadSize
	}
	if n == 0 {
		return Block{data: []byte{}, pool: a.cfg.Preferred}, nil
	}

	if data, ok := a.cfg.Preferred.Alloc(n); ok {
		a.stats.PreferredHits++
		a.stats.BytesLive += int64(len(data))
		return Block{data: data, pool: a.cfg.Preferred}, nil
	}

	if a.cfg.AllowFallback {
		if data, ok := a.cfg.Fallback.Alloc(n); ok {
			a.stats.FallbackHits++
			a.stats.BytesLive += int64(len(data))
			return Block{data: data, pool: a.cfg.Fallback}, nil
		}
	}

	a.stats.Failures++
	if a.cfg.AllowFailure {
		return Block{}, ErrExhausted
	}
	fmt.Fprintf(os.Stderr, "mempool: out of memory allocating %d bytes (preferred %q)\n",
		n, a.cfg.Preferred.Name())
	exit(1)
	return Block{}, ErrExhausted // unreachable except under a stubbed exit
}

// Deallocate returns b to the pool it came from. b must have been produced
// by this allocator and must not be freed twice; neither is detected.
func (a *Allocator) Deallocate(b Block) {
	if b.IsZero() || len(b.data) == 0 {
		return
	}
	a.stats.FreeCalls++
	a.stats.BytesLive -= int64(len(b.data))
	b.pool.Free(b.data)
}

// Stats returns a copy of the outcome counters.
func (a *Allocator) Stats() Stats { return a.stats }
