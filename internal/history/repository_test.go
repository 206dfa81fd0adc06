package history_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/varkas/amptop/internal/battery"
	"codeberg.org/varkas/amptop/internal/history"
)

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

func TestNewRepository_RequiresDBPath(t *testing.T) {
	_, err := history.NewRepository(history.Config{})
	require.Error(t, err)
}

func TestNewRepository_InitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battery.db")

	first, err := history.NewRepository(history.Config{DBPath: path})
	require.NoError(t, err)
	require.NoError(t, first.Append(context.Background(), &history.Snapshot{
		Percent: 50, Timestamp: 1000, Status: battery.StatusCharging,
	}))
	require.NoError(t, first.Close())

	// Reopening must not disturb existing rows.
	second, err := history.NewRepository(history.Config{DBPath: path})
	require.NoError(t, err)
	defer second.Close()

	snapshots, err := second.Query(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, snapshots, 1)
}

func TestAppendQuery_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	want := &history.Snapshot{
		Percent:   42.5,
		Timestamp: 1700000000,
		Status:    battery.StatusDischarging,
	}
	require.NoError(t, repo.Append(ctx, want))

	got, err := repo.Query(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 42.5, got[0].Percent, 1e-9)
	assert.Equal(t, int64(1700000000), got[0].Timestamp)
	assert.Equal(t, battery.StatusDischarging, got[0].Status)
}

func TestQuery_NewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := int64(1700000000)
	for _, ts := range []int64{base, base + 10, base + 20} {
		require.NoError(t, repo.Append(ctx, &history.Snapshot{
			Percent:   80,
			Timestamp: ts,
			Status:    battery.StatusDischarging,
		}))
	}

	snapshots, err := repo.Query(ctx, 0)
	require.NoError(t, err)
	require.Len(t, snapshots, 3)
	assert.Equal(t, base+20, snapshots[0].Timestamp)
	assert.Equal(t, base+10, snapshots[1].Timestamp)
	assert.Equal(t, base, snapshots[2].Timestamp)
}

func TestQuery_LimitKeepsNewestRows(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := int64(0); i < 10; i++ {
		require.NoError(t, repo.Append(ctx, &history.Snapshot{
			Percent:   float64(100 - i),
			Timestamp: 1700000000 + i,
			Status:    battery.StatusCharging,
		}))
	}

	snapshots, err := repo.Query(ctx, 3)
	require.NoError(t, err)
	require.Len(t, snapshots, 3)
	assert.Equal(t, int64(1700000009), snapshots[0].Timestamp)
	assert.Equal(t, int64(1700000007), snapshots[2].Timestamp)
}

func TestQuery_EmptyLog(t *testing.T) {
	repo := newTestRepository(t)

	snapshots, err := repo.Query(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestAppend_NilSnapshot(t *testing.T) {
	repo := newTestRepository(t)

	require.Error(t, repo.Append(context.Background(), nil))
}
