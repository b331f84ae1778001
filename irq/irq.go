package irq

import "errors"

// State is the interrupt-enable state recorded when a lock is taken and
// handed back on release. Callers pass it through untouched.
type State uint32

const (
	// Disabled means interrupt delivery was off.
	Disabled State = 0
	// Enabled means interrupt delivery was on.
	Enabled State = 1
)

// ErrUnsupported is returned when a controller is not available on the
// current platform.
var ErrUnsupported = errors.New("irq: controller not supported on this platform")

// Controller is the platform interrupt-enable primitive the guard drives.
// It is a consumed collaborator: implementations toggle hardware or
// process-wide state and are themselves infallible.
type Controller interface {
	// Disable turns interrupt delivery off and returns the prior state.
	Disable() State
	// Restore re-applies a state previously returned by Disable.
	Restore(State)
}

// Lock is a held critical section. Use Acquire/Release in pairs; Release is
// safe to defer and idempotent.
type Lock struct {
	ctrl     Controller
	prior    State
	released bool
}

// Acquire disables interrupts through c and records the prior state.
func Acquire(c Controller) *Lock {
	return &Lock{ctrl: c, prior: c.Disable()}
}

// Release restores the state recorded at Acquire. Calling it more than once
// is a no-op, so a deferred Release after an explicit one is harmless.
func (l *Lock) Release() {
	if l.released {
		return
	}
	l.released = true
	l.ctrl.Restore(l.prior)
}

// SoftController models the interrupt-enable flag of a single-core
// cooperative target in ordinary process state. Schedulers poll Enabled to
// decide whether to deliver pending events; tests use it to observe guard
// behavior.
//
// Not safe for concurrent use from parallel OS threads — the execution model
// it represents has exactly one core.
type SoftController struct {
	state State
}

// NewSoftController returns a controller with delivery enabled.
func NewSoftController() *SoftController {
	return &SoftController{state: Enabled}
}

// Disable implements Controller.
func (c *SoftController) Disable() State {
	prior := c.state
	c.state = Disabled
	return prior
}

// Restore implements Controller.
func (c *SoftController) Restore(s State) {
	c.state = s
}

// Enabled reports whether delivery is currently on.
func (c *SoftController) Enabled() bool {
	return c.state == Enabled
}
