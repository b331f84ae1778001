//go:build !linux

package irq

// SignalController is only implemented on Linux. Other platforms use a
// SoftController or a platform-specific Controller.
type SignalController struct{}

// NewSignalController reports the controller as unavailable.
func NewSignalController() (*SignalController, error) {
	return nil, ErrUnsupported
}

// Disable implements Controller. Unreachable off Linux.
func (c *SignalController) Disable() State { return Disabled }

// Restore implements Controller. Unreachable off Linux.
func (c *SignalController) Restore(State) {}
