package service

import (
	"context"
	"os"
	"testing"

	"github.com/MKhiriev/go-aura/internal/store"
	"github.com/MKhiriev/go-aura/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCompanion_Lifecycle(t *testing.T) {
	ctx := context.Background()
	records := store.NewMemoryRecordRepository()
	companion := NewLocalCompanion(newTestServices(t, records))

	status, err := companion.Boot(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LockStateFirstRun, status.State)

	status, err = companion.Setup(ctx, models.SetupRequest{Name: "Ada", Pin: "2468"})
	require.NoError(t, err)
	assert.Equal(t, models.LockStateUnlocked, status.State)

	_, err = companion.RecordMood(ctx, models.MoodInput{Mood: models.MoodCalm, Energy: intPtr(75)})
	require.NoError(t, err)
	_, err = companion.AddJournal(ctx, models.JournalInput{Text: "quiet evening"})
	require.NoError(t, err)

	stats, err := companion.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 75, stats.AverageEnergy)
	assert.Equal(t, 1, stats.Streak)

	status, err = companion.Lock(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LockStateLocked, status.State)

	_, err = companion.State(ctx)
	assert.ErrorIs(t, err, ErrLocked)

	status, err = companion.Unlock(ctx, "1357")
	assert.ErrorIs(t, err, ErrWrongPin)
	assert.Equal(t, models.LockStateLocked, status.State)

	status, err = companion.Unlock(ctx, "2468")
	require.NoError(t, err)
	assert.Equal(t, models.LockStateUnlocked, status.State)

	path, err := companion.SaveExport(ctx, models.ExportKindJournal)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "quiet evening")

	assert.Equal(t, "1.0.0", companion.Version(ctx))

	require.NoError(t, companion.Reset(ctx))
	status, err = companion.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LockStateFirstRun, status.State)
}
