package daemon

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"syscall"
	"time"

	"codeberg.org/varkas/amptop/internal/config"
	"codeberg.org/varkas/amptop/internal/errors"
	"codeberg.org/varkas/amptop/internal/logger"
)

const (
	// stopExitTimeout bounds how long Stop waits for the signalled process
	// to actually exit before deleting the PID record anyway.
	stopExitTimeout = 5 * time.Second
	stopPollEvery   = 100 * time.Millisecond
)

// Supervisor owns the daemon lifecycle: starting a detached collector
// process, probing it, and stopping it. A single PID record in the state
// directory is the running-daemon lock.
type Supervisor struct {
	cfg  *config.Config
	proc ProcessController
}

// NewSupervisor creates a supervisor bound to the resolved configuration.
func NewSupervisor(cfg *config.Config) *Supervisor {
	return &Supervisor{
		cfg:  cfg,
		proc: NewProcessController(),
	}
}

// Start launches the detached collector process. Existence of the PID
// record alone is authoritative: a stale record from a crashed daemon also
// refuses the start, and is cleared with `daemon stop`. This keeps the
// already-running decision a single filesystem check with no liveness race.
func (s *Supervisor) Start() error {
	errFactory := errors.New()

	if _, err := os.Stat(s.cfg.PIDPath()); err == nil {
		return errFactory.New(errors.ErrDaemonAlreadyRunning)
	}

	exe, err := os.Executable()
	if err != nil {
		return errFactory.Wrap(errors.ErrDetachFailed, err)
	}

	stdout, err := os.Create(s.cfg.StdoutPath())
	if err != nil {
		return errFactory.Wrap(errors.ErrIOFailed, err)
	}
	defer stdout.Close()

	stderr, err := os.Create(s.cfg.StderrPath())
	if err != nil {
		return errFactory.Wrap(errors.ErrIOFailed, err)
	}
	defer stderr.Close()

	cmd := exec.Command(exe, "daemon", "run", "--interval", strconv.Itoa(s.cfg.Interval))
	cmd.Dir = s.cfg.StateDir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return errFactory.Wrap(errors.ErrDetachFailed, err)
	}

	// The child writes its own PID record once it is up; releasing it here
	// detaches it from this process entirely.
	if err := cmd.Process.Release(); err != nil {
		return errFactory.Wrap(errors.ErrDetachFailed, err)
	}

	return nil
}

// Run is the detached child's side of Start: record our own process id,
// then hand control to the collector loop. On the happy path the loop only
// ends via external termination.
func (s *Supervisor) Run(ctx context.Context, loop func(context.Context) error) error {
	if err := writePIDRecord(s.cfg.PIDPath(), os.Getpid()); err != nil {
		return err
	}

	logger.Info().
		Int("pid", os.Getpid()).
		Int("interval", s.cfg.Interval).
		Msg("Collector daemon started")

	return loop(ctx)
}

// IsRunning reports whether the recorded process is alive. Absent record,
// unparsable record, and dead process all read as not running.
func (s *Supervisor) IsRunning() bool {
	pid, err := readPIDRecord(s.cfg.PIDPath())
	if err != nil {
		return false
	}

	return s.proc.IsAlive(pid)
}

// Stop signals the recorded process and removes the PID record. The record
// is deleted even if the process ignores the signal, but only after a
// bounded wait for it to exit, closing most of the stop/start race window.
func (s *Supervisor) Stop() error {
	errFactory := errors.New()

	if _, err := os.Stat(s.cfg.PIDPath()); os.IsNotExist(err) {
		return errFactory.New(errors.ErrDaemonNotRunning)
	}

	pid, err := readPIDRecord(s.cfg.PIDPath())
	if err != nil {
		return err
	}

	if err := s.proc.Terminate(pid); err != nil {
		// Process already gone: nothing to wait for, still clean up.
		logger.Debug().Int("pid", pid).Err(err).Msg("Termination signal not delivered")
	} else if !s.waitForExit(pid) {
		logger.Warn().Int("pid", pid).Msg("Process still alive after stop timeout, removing PID record anyway")
	}

	return removePIDRecord(s.cfg.PIDPath())
}

func (s *Supervisor) waitForExit(pid int) bool {
	deadline := time.Now().Add(stopExitTimeout)
	for time.Now().Before(deadline) {
		if !s.proc.IsAlive(pid) {
			return true
		}
		time.Sleep(stopPollEvery)
	}

	return !s.proc.IsAlive(pid)
}
