package collector_test

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/varkas/amptop/internal/battery"
	"codeberg.org/varkas/amptop/internal/collector"
	"codeberg.org/varkas/amptop/internal/errors"
	"codeberg.org/varkas/amptop/internal/history"
)

// providerFunc adapts a function to the battery.Provider interface.
type providerFunc func() (*battery.Reading, error)

func (f providerFunc) Read() (*battery.Reading, error) {
	return f()
}

func newTestRepository(t *testing.T) history.Repository {
	t.Helper()

	repo, err := history.NewRepository(history.Config{
		DBPath: filepath.Join(t.TempDir(), "battery.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

func TestRun_AppendsSnapshots(t *testing.T) {
	repo := newTestRepository(t)

	var reads atomic.Int32
	provider := providerFunc(func() (*battery.Reading, error) {
		reads.Add(1)
		return &battery.Reading{Percent: 73.5, Status: battery.StatusDischarging}, nil
	})

	c := collector.New(provider, repo, collector.Config{
		Interval:        5 * time.Millisecond,
		MaxReadFailures: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	require.NoError(t, c.Run(ctx))
	require.GreaterOrEqual(t, reads.Load(), int32(2))

	snapshots, err := repo.Query(context.Background(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, snapshots)
	assert.InDelta(t, 73.5, snapshots[0].Percent, 1e-9)
	assert.Equal(t, battery.StatusDischarging, snapshots[0].Status)
}

func TestRun_TimestampsNonDecreasing(t *testing.T) {
	repo := newTestRepository(t)

	provider := providerFunc(func() (*battery.Reading, error) {
		return &battery.Reading{Percent: 50, Status: battery.StatusCharging}, nil
	})

	c := collector.New(provider, repo, collector.Config{
		Interval:        2 * time.Millisecond,
		MaxReadFailures: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, c.Run(ctx))

	snapshots, err := repo.Query(context.Background(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, snapshots)
	// Query is newest-first, so timestamps must be non-increasing here.
	for i := 1; i < len(snapshots); i++ {
		assert.LessOrEqual(t, snapshots[i].Timestamp, snapshots[i-1].Timestamp)
	}
}

func TestRun_SkipsWhenNoPowerSource(t *testing.T) {
	repo := newTestRepository(t)

	provider := providerFunc(func() (*battery.Reading, error) {
		return nil, nil
	})

	c := collector.New(provider, repo, collector.Config{
		Interval:        2 * time.Millisecond,
		MaxReadFailures: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	require.NoError(t, c.Run(ctx))

	snapshots, err := repo.Query(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, snapshots, "absence of a battery must not be logged as data")
}

func TestRun_IsolatedReadFailureRecovers(t *testing.T) {
	repo := newTestRepository(t)
	errFactory := errors.New()

	var calls atomic.Int32
	provider := providerFunc(func() (*battery.Reading, error) {
		if calls.Add(1) == 1 {
			return nil, errFactory.New(errors.ErrProviderRead)
		}
		return &battery.Reading{Percent: 10, Status: battery.StatusDischarging}, nil
	})

	c := collector.New(provider, repo, collector.Config{
		Interval:        2 * time.Millisecond,
		MaxReadFailures: 3,
		RetryBackoff:    time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, c.Run(ctx))

	snapshots, err := repo.Query(context.Background(), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, snapshots, "a single failed read must not stop collection")
}

func TestRun_FatalAfterConsecutiveReadFailures(t *testing.T) {
	repo := newTestRepository(t)
	errFactory := errors.New()

	provider := providerFunc(func() (*battery.Reading, error) {
		return nil, errFactory.New(errors.ErrProviderRead)
	})

	c := collector.New(provider, repo, collector.Config{
		Interval:        2 * time.Millisecond,
		MaxReadFailures: 3,
		RetryBackoff:    time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := c.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCollectorLoop))
}

func TestRun_FatalOnAppendFailure(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Close()) // force every append to fail

	provider := providerFunc(func() (*battery.Reading, error) {
		return &battery.Reading{Percent: 50, Status: battery.StatusCharging}, nil
	})

	c := collector.New(provider, repo, collector.Config{
		Interval:        2 * time.Millisecond,
		MaxReadFailures: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := c.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCollectorLoop))
}
