// Package mempool implements a tiered block allocator: allocations are
// served from a preferred backing pool and fall back to a secondary pool
// under a configurable policy.
//
// # Model
//
// Devices with external RAM serve large buffers from it and spill into
// scarcer internal RAM otherwise. Here a Pool is any backing store with
// Alloc/Free; the package provides an ArenaPool (a fixed
// region with a first-fit free list, optionally over anonymous mapped
// memory, playing the external tier) and a HeapPool (a capacity-budgeted view of the Go heap, playing the
// internal tier).
//
// # Policy
//
// Each allocation walks a fixed state machine: try the preferred pool; on
// failure, try the fallback pool unless Config.AllowFallback is false; on
// total exhaustion either terminate the process (the default — firmware
// that cannot allocate cannot limp) or, with Config.AllowFailure set, hand
// the caller a zero Block and ErrExhausted. An allocation never succeeds
// with less memory than requested.
//
// # Ownership
//
// A Block is owned by the caller until passed back to Deallocate on the same
// allocator it came from. Freeing a block twice, or through a different
// allocator, is a contract violation and is not detected.
//
// Allocator and Pool implementations do not lock. The execution model is a
// single core with interrupt preemption; call sites shared with an interrupt
// path wrap calls in an irq guard.
package mempool
