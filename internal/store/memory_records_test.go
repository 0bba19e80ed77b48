package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/models"
)

func TestMemoryRecordRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRecordRepository()

	value := []byte(`{"enabled":true}`)
	require.NoError(t, repo.Write(ctx, models.RecordBatch{Put: []models.Record{{Key: "pin-metadata", Value: value}}}))

	// stored copy is independent of the caller's slice
	value[0] = 'X'
	got, err := repo.Get(ctx, "pin-metadata")
	require.NoError(t, err)
	assert.Equal(t, `{"enabled":true}`, string(got))

	require.NoError(t, repo.Write(ctx, models.RecordBatch{Delete: []string{"pin-metadata"}}))
	_, err = repo.Get(ctx, "pin-metadata")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestNewStorages_Drivers(t *testing.T) {
	ctx := context.Background()

	s, err := NewStorages(ctx, config.Storage{Driver: DriverMemory}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s.Records)

	s, err = NewStorages(ctx, config.Storage{Driver: DriverFiles, Files: config.Files{Dir: t.TempDir()}}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s.Records)

	_, err = NewStorages(ctx, config.Storage{Driver: "mongo"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNewStorages_SQLiteEndToEnd(t *testing.T) {
	ctx := context.Background()
	dsn := t.TempDir() + "/data/aura.db"

	s, err := NewStorages(ctx, config.Storage{Driver: DriverSQLite, DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Records.Write(ctx, models.RecordBatch{Put: []models.Record{
		{Key: "state", Value: []byte(`{"v":350}`)},
		{Key: "pin-metadata", Value: []byte(`{"enabled":false}`)},
	}}))
	require.NoError(t, s.Records.Write(ctx, models.RecordBatch{Put: []models.Record{
		{Key: "state", Value: []byte(`{"v":351}`)},
	}}))

	value, err := s.Records.Get(ctx, "state")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":351}`, string(value))

	keys, err := s.Records.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pin-metadata", "state"}, keys)
}

func TestNewStorages_SQLiteFailedBatchKeepsPriorRecords(t *testing.T) {
	ctx := context.Background()
	dsn := t.TempDir() + "/aura.db"
	cfg := config.Storage{Driver: DriverSQLite, DB: config.DB{DSN: dsn}}

	s, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Records.Write(ctx, models.RecordBatch{Put: []models.Record{
		{Key: "state", Value: []byte(`{"v":1}`)},
	}}))

	// the second insert of the next batch aborts after state was upserted
	_, err = s.Records.(*sqlRecordRepository).DB.ExecContext(ctx, `
		CREATE TRIGGER reject_pin_metadata BEFORE INSERT ON records
		WHEN NEW.record_key = 'pin-metadata'
		BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)

	err = s.Records.Write(ctx, models.RecordBatch{Put: []models.Record{
		{Key: "state", Value: []byte(`{"v":2}`)},
		{Key: "pin-metadata", Value: []byte(`{"enabled":true}`)},
	}})
	require.ErrorIs(t, err, ErrStorageUnavailable)
	require.NoError(t, s.Close())

	reopened, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	value, err := reopened.Records.Get(ctx, "state")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(value))

	_, err = reopened.Records.Get(ctx, "pin-metadata")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
