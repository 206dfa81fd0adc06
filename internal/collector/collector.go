// Package collector runs the sampling loop inside the detached daemon
// process: one provider read per interval, appended to the persistent log.
package collector

import (
	"context"
	"time"

	"codeberg.org/varkas/amptop/internal/battery"
	"codeberg.org/varkas/amptop/internal/errors"
	"codeberg.org/varkas/amptop/internal/history"
	"codeberg.org/varkas/amptop/internal/logger"
)

const defaultRetryBackoff = time.Second

// Config tunes the sampling loop.
type Config struct {
	// Interval is the sleep between samples.
	Interval time.Duration
	// MaxReadFailures is how many consecutive provider read failures are
	// tolerated before the loop gives up.
	MaxReadFailures int
	// RetryBackoff is the base backoff after a failed read; it doubles per
	// consecutive failure.
	RetryBackoff time.Duration
}

// Collector is the sampling loop. It owns each snapshot it constructs until
// the append hands the durable copy to the log.
type Collector struct {
	provider battery.Provider
	repo     history.Repository
	cfg      Config
}

// New wires a collector to its telemetry provider and snapshot log.
func New(provider battery.Provider, repo history.Repository, cfg Config) *Collector {
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = defaultRetryBackoff
	}
	if cfg.MaxReadFailures <= 0 {
		cfg.MaxReadFailures = 1
	}

	return &Collector{
		provider: provider,
		repo:     repo,
		cfg:      cfg,
	}
}

// Run samples until ctx is cancelled. Isolated provider read failures are
// retried with exponential backoff; only MaxReadFailures consecutive
// failures terminate the loop. A failed log write is always fatal. An
// iteration with no power source present writes nothing.
func (c *Collector) Run(ctx context.Context) error {
	errFactory := errors.New()

	consecutiveFailures := 0
	for {
		reading, err := c.provider.Read()
		switch {
		case err != nil:
			consecutiveFailures++
			logger.Warn().
				Err(err).
				Int("consecutive_failures", consecutiveFailures).
				Msg("Telemetry read failed")
			if consecutiveFailures >= c.cfg.MaxReadFailures {
				return errFactory.Wrap(errors.ErrCollectorLoop, err)
			}
			if !sleepCtx(ctx, c.backoff(consecutiveFailures)) {
				return nil
			}
			continue
		case reading == nil:
			// No power source present: skipped, not logged as data.
			logger.Debug().Msg("No power source present, skipping sample")
		default:
			snapshot := &history.Snapshot{
				Percent:   reading.Percent,
				Timestamp: time.Now().Unix(),
				Status:    reading.Status,
			}
			if err := c.repo.Append(ctx, snapshot); err != nil {
				return errFactory.Wrap(errors.ErrCollectorLoop, err)
			}
			logger.Debug().
				Float64("percent", snapshot.Percent).
				Str("status", string(snapshot.Status)).
				Msg("Snapshot recorded")
		}
		consecutiveFailures = 0

		if !sleepCtx(ctx, c.cfg.Interval) {
			return nil
		}
	}
}

// backoff doubles per consecutive failure: base, 2*base, 4*base, ...
func (c *Collector) backoff(failures int) time.Duration {
	d := c.cfg.RetryBackoff
	for i := 1; i < failures; i++ {
		d *= 2
	}

	return d
}

// sleepCtx sleeps for d, returning false if ctx was cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
