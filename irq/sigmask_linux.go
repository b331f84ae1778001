//go:build linux

package irq

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// maskedSignals are the asynchronous signals treated as "interrupts" on a
// host system. Synchronous faults (SEGV, FPE...) are deliberately left
// unmasked.
var maskedSignals = []unix.Signal{
	unix.SIGHUP,
	unix.SIGINT,
	unix.SIGTERM,
	unix.SIGUSR1,
	unix.SIGUSR2,
	unix.SIGALRM,
}

// SignalController implements Controller by masking asynchronous signals on
// the calling OS thread. Signal masks are per-thread state, so Disable pins
// the goroutine to its thread and Restore unpins it; acquire and release
// must happen on the same goroutine.
type SignalController struct{}

// NewSignalController returns the signal-mask controller.
func NewSignalController() (*SignalController, error) {
	return &SignalController{}, nil
}

func sigsetOf(signals []unix.Signal) unix.Sigset_t {
	var set unix.Sigset_t
	for _, sig := range signals {
		n := uint(sig) - 1
		set.Val[n/64] |= 1 << (n % 64)
	}
	return set
}

// Disable blocks the masked signal set on the current thread and reports
// whether it was previously unblocked.
func (c *SignalController) Disable() State {
	runtime.LockOSThread()
	block := sigsetOf(maskedSignals)
	var old unix.Sigset_t
	if err := unix.PthreadSigmask(unix.SIG_BLOCK, &block, &old); err != nil {
		// pthread_sigmask only fails on an invalid `how`; treat as already
		// disabled so Restore's unblock stays a no-op. The thread pin is
		// still released by Restore.
		return Disabled
	}
	n := uint(unix.SIGINT) - 1
	if old.Val[n/64]&(1<<(n%64)) != 0 {
		return Disabled
	}
	return Enabled
}

// Restore unblocks the masked signal set when the prior state was enabled,
// then releases the thread pin taken by Disable.
func (c *SignalController) Restore(s State) {
	if s == Enabled {
		unblock := sigsetOf(maskedSignals)
		_ = unix.PthreadSigmask(unix.SIG_UNBLOCK, &unblock, nil)
	}
	runtime.UnlockOSThread()
}
