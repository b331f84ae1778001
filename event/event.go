// Package event carries small helpers for signal fan-out and change
// detection on component state.
package event

// CallbackManager fans one value out to multiple subscribers. Callbacks run
// in registration order on the caller's goroutine.
type CallbackManager[T any] struct {
	callbacks []func(T)
}

// Add registers a callback.
func (m *CallbackManager[T]) Add(cb func(T)) {
	m.callbacks = append(m.callbacks, cb)
}

// Call invokes every registered callback with v.
func (m *CallbackManager[T]) Call(v T) {
	for _, cb := range m.callbacks {
		cb(v)
	}
}

// Len returns the number of subscribers.
func (m *CallbackManager[T]) Len() int { return len(m.callbacks) }

// Deduplicator suppresses repeated values. Next reports whether v differs
// from the previous accepted value; the first value is always accepted.
type Deduplicator[T comparable] struct {
	last     T
	hasValue bool
}

// Next records v and reports whether it changed.
func (d *Deduplicator[T]) Next(v T) bool {
	if d.hasValue && d.last == v {
		return false
	}
	d.hasValue = true
	d.last = v
	return true
}

// HasValue reports whether any value has been seen.
func (d *Deduplicator[T]) HasValue() bool { return d.hasValue }
