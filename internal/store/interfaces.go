package store

import (
	"context"

	"github.com/MKhiriev/go-aura/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository persists the application's keyed JSON records
// (`state`, `security-metadata`, `pin-metadata`).
//
// Implementations must apply a [models.RecordBatch] atomically: after Write
// returns, either every put and delete in the batch is visible or none is.
// Driver-level failures are wrapped with [ErrStorageUnavailable].
type RecordRepository interface {
	// Get returns the stored value for key, or [ErrRecordNotFound] when the
	// key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Write applies every put and delete in batch as one atomic change.
	Write(ctx context.Context, batch models.RecordBatch) error

	// Keys returns the keys currently stored, sorted.
	Keys(ctx context.Context) ([]string, error)

	// Close releases the underlying resources.
	Close() error
}

// ErrorClassification tells the SQL repository whether a failed write is
// worth one more attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown, constraint and syntax errors.
	NonRetryable ErrorClassification = iota
	// Retryable covers transient failures: lost connections, busy databases,
	// deadlocks and serialization conflicts.
	Retryable
)

// ErrorClassificator classifies driver errors for one SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
