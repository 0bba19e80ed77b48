package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/logger"
)

// Storage driver names accepted by [NewStorages].
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverFiles    = "diskv"
	DriverMemory   = "memory"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	// Records holds the state document and its security metadata.
	Records RecordRepository
}

// NewStorages initialises the storage layer selected by cfg.Driver:
//  1. sqlite (default) or postgres: opens the database, runs migrations and
//     wires the SQL record repository;
//  2. diskv: keeps the records as files under cfg.Files.Dir;
//  3. memory: keeps the records in process memory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	log.Info().Str("driver", driver).Msg("creating new storages...")

	switch driver {
	case DriverSQLite, DriverPostgres:
		connect := NewConnectSQLite
		if driver == DriverPostgres {
			connect = NewConnectPostgres
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", driver, err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err)
		}

		return &Storages{Records: NewRecordRepository(db, log)}, nil

	case DriverFiles:
		records, err := NewFileRecordRepository(cfg.Files.Dir, log)
		if err != nil {
			return nil, err
		}
		return &Storages{Records: records}, nil

	case DriverMemory:
		return &Storages{Records: NewMemoryRecordRepository()}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}

// Close releases every repository.
func (s *Storages) Close() error {
	if s == nil || s.Records == nil {
		return nil
	}
	return s.Records.Close()
}
