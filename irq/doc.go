// Package irq provides a scoped critical-section guard against interrupt
// preemption on a single execution core.
//
// Acquire disables interrupt delivery through a Controller and records the
// prior enable state; Release restores exactly that recorded state. Because
// each Lock carries its own prior state, nested guards compose correctly: the
// inner Release returns to the outer disabled state, and only the outermost
// Release re-enables delivery.
//
//	lock := irq.Acquire(ctrl)
//	defer lock.Release()
//	// interrupt delivery is off until every enclosing lock is released
//
// Caller obligations, which the guard cannot enforce: code running under the
// lock must not invoke anything that itself needs interrupt delivery to make
// progress (on flash-mapped targets that includes faulting in code that is
// not already in cache), and a Lock must be released on the same flow that
// acquired it.
//
// The package ships a SoftController for cooperative single-core schedulers
// and host-side simulation, and, on Linux, a SignalController that masks
// asynchronous signals on the calling thread — the closest host analog of
// masking device interrupts.
package irq
