package daemon

import (
	"os"
	"syscall"

	"codeberg.org/varkas/amptop/internal/errors"
)

// ProcessController hides raw process-signal access so the supervisor logic
// stays platform-neutral.
type ProcessController interface {
	// IsAlive probes the process with a zero signal: true iff the process
	// exists and is signalable.
	IsAlive(pid int) bool
	// Terminate asks the process to shut down.
	Terminate(pid int) error
}

type unixProcessController struct{}

// NewProcessController returns the controller for the current platform.
func NewProcessController() ProcessController {
	return unixProcessController{}
}

func (unixProcessController) IsAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}

func (unixProcessController) Terminate(pid int) error {
	errFactory := errors.New()

	process, err := os.FindProcess(pid)
	if err != nil {
		return errFactory.Wrap(errors.ErrSignalFailed, err)
	}
	if err := process.Signal(syscall.SIGTERM); err != nil {
		return errFactory.Wrap(errors.ErrSignalFailed, err)
	}

	return nil
}
