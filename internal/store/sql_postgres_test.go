package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "not a pg error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "wrapped deadlock", err: fmt.Errorf("tx: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, want: NonRetryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestBuildUpsertRecordQuery_PostgresPlaceholders(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildUpsertRecordQuery(builder, "state", []byte(`{}`), now)
	assert.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO records (record_key,value,updated_at) VALUES ($1,$2,$3) "+upsertRecordSuffix,
		query)
	assert.Equal(t, []any{"state", `{}`, now}, args)
}

func TestBuildDeleteRecordsQuery_PostgresPlaceholders(t *testing.T) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildDeleteRecordsQuery(builder, []string{"state", "pin-metadata"})
	assert.NoError(t, err)
	assert.Equal(t, "DELETE FROM records WHERE record_key IN ($1,$2)", query)
	assert.Equal(t, []any{"state", "pin-metadata"}, args)
}

func TestIsLocalDSN(t *testing.T) {
	tests := []struct {
		dsn       string
		wantHost  string
		wantLocal bool
	}{
		{dsn: "postgres://aura@localhost:5432/aura", wantLocal: true},
		{dsn: "postgres://aura@127.0.0.1/aura", wantLocal: true},
		{dsn: "postgres://aura@[::1]:5432/aura", wantLocal: true},
		{dsn: "host=/var/run/postgresql dbname=aura", wantLocal: true},
		{dsn: "postgres://aura@db.example.com/aura", wantHost: "db.example.com"},
		{dsn: "postgres://aura@localhost,10.0.0.5/aura", wantHost: "10.0.0.5"},
		{dsn: "postgres://%zz", wantLocal: true},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			host, local := isLocalDSN(tt.dsn)
			assert.Equal(t, tt.wantLocal, local)
			assert.Equal(t, tt.wantHost, host)
		})
	}
}
