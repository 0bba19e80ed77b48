// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/models"
)

const (
	writeAttempts     = 2
	writeRetryBackoff = 50 * time.Millisecond
)

// sqlRecordRepository is the SQL-backed implementation of [RecordRepository].
// It works against the "records" table on both SQLite and PostgreSQL; dialect
// differences are confined to the squirrel placeholder format carried by [DB].
type sqlRecordRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &sqlRecordRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Get implements [RecordRepository].
func (r *sqlRecordRepository) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(r.builder, key)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordRepository.Get").Str("key", key).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqlRecordRepository.Get").Str("key", key).Msg("failed to read record")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingQuery, err)
	}

	return value, nil
}

// Write implements [RecordRepository]. The batch runs in one transaction and
// is retried when the driver reports a transient failure.
func (r *sqlRecordRepository) Write(ctx context.Context, batch models.RecordBatch) error {
	log := logger.FromContext(ctx)

	if batch.IsEmpty() {
		return nil
	}
	for _, rec := range batch.Put {
		if rec.Key == "" {
			return ErrEmptyKey
		}
	}

	var err error
	for attempt := 1; attempt <= writeAttempts; attempt++ {
		err = r.writeTx(ctx, batch)
		if err == nil {
			return nil
		}
		if attempt == writeAttempts || r.errorClassificator == nil || r.errorClassificator.Classify(err) != Retryable {
			break
		}

		log.Warn().Err(err).
			Str("func", "sqlRecordRepository.Write").
			Int("attempt", attempt).
			Msg("retryable storage error, retrying batch")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrStorageUnavailable, ctx.Err())
		case <-time.After(writeRetryBackoff * time.Duration(attempt)):
		}
	}

	log.Err(err).
		Str("func", "sqlRecordRepository.Write").
		Int("puts", len(batch.Put)).
		Int("deletes", len(batch.Delete)).
		Msg("failed to write record batch")
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

func (r *sqlRecordRepository) writeTx(ctx context.Context, batch models.RecordBatch) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := r.now()
	for _, rec := range batch.Put {
		query, args, err := buildUpsertRecordQuery(r.builder, rec.Key, rec.Value, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, rec.Key, err)
		}
	}

	if len(batch.Delete) > 0 {
		query, args, err := buildDeleteRecordsQuery(r.builder, batch.Delete)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Keys implements [RecordRepository].
func (r *sqlRecordRepository) Keys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListKeysQuery(r.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordRepository.Keys").Msg("failed to list record keys")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0, len(models.RecordKeys))
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return keys, nil
}

// Close implements [RecordRepository].
func (r *sqlRecordRepository) Close() error {
	return r.DB.Close()
}
