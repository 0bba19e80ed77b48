package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/models"
)

// pendingBatchKey holds the undo log of a batch that is being applied. Its
// presence means the batch did not complete; it is rolled back before any
// other access.
const pendingBatchKey = ".pending-batch"

// fileRecordRepository is the diskv-backed implementation of
// [RecordRepository]. Every record is one file under the base directory;
// single-file writes go through diskv's temp dir and are renamed into place.
//
// Multi-record atomicity comes from an undo log: the prior value of every
// touched key is written to the pending-batch file before the batch is
// applied, and the file is removed once the batch is complete. A batch that
// fails or is interrupted half way is rolled back to the prior values.
type fileRecordRepository struct {
	mu     sync.Mutex
	d      *diskv.Diskv
	logger *logger.Logger
}

// undoLog records how to restore the keys a batch touches.
type undoLog struct {
	// Restore maps keys that existed before the batch to their prior values.
	Restore map[string][]byte `json:"restore"`
	// Remove lists keys the batch creates.
	Remove []string `json:"remove"`
}

// NewFileRecordRepository constructs a [RecordRepository] that keeps the
// records as files under dir.
func NewFileRecordRepository(dir string, log *logger.Logger) (RecordRepository, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty records directory", ErrStorageUnavailable)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	r := &fileRecordRepository{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			TempDir:      filepath.Join(dir, ".tmp"),
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
			FilePerm:     0o600,
			PathPerm:     0o700,
		}),
		logger: log,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.replayPending(); err != nil {
		return nil, err
	}

	return r, nil
}

// Get implements [RecordRepository].
func (r *fileRecordRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.replayPending(); err != nil {
		return nil, err
	}

	if !r.d.Has(key) {
		return nil, ErrRecordNotFound
	}
	value, err := r.d.Read(key)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileRecordRepository.Get").Str("key", key).Msg("failed to read record file")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return value, nil
}

// Write implements [RecordRepository].
func (r *fileRecordRepository) Write(ctx context.Context, batch models.RecordBatch) error {
	log := logger.FromContext(ctx)

	if batch.IsEmpty() {
		return nil
	}
	for _, rec := range batch.Put {
		if rec.Key == "" || strings.HasPrefix(rec.Key, ".") {
			return ErrEmptyKey
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.replayPending(); err != nil {
		return err
	}

	undo, err := r.undoFor(batch)
	if err != nil {
		log.Err(err).Str("func", "fileRecordRepository.Write").Msg("failed to read prior records")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	data, err := json.Marshal(undo)
	if err != nil {
		return fmt.Errorf("marshal undo log: %w", err)
	}
	if err := r.d.Write(pendingBatchKey, data); err != nil {
		log.Err(err).Str("func", "fileRecordRepository.Write").Msg("failed to write undo log")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := r.apply(batch); err != nil {
		log.Err(err).Str("func", "fileRecordRepository.Write").Msg("failed to apply record batch, rolling back")
		if rbErr := r.rollback(undo); rbErr != nil {
			// the undo log stays behind and the next access retries
			log.Err(rbErr).Str("func", "fileRecordRepository.Write").Msg("failed to roll back record batch")
		}
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// Keys implements [RecordRepository].
func (r *fileRecordRepository) Keys(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.replayPending(); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(models.RecordKeys))
	for key := range r.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, ".") {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys, nil
}

// Close implements [RecordRepository].
func (r *fileRecordRepository) Close() error {
	return nil
}

// replayPending rolls back a batch left incomplete by a crash or a failed
// rollback. The caller must hold r.mu.
func (r *fileRecordRepository) replayPending() error {
	if !r.d.Has(pendingBatchKey) {
		return nil
	}

	data, err := r.d.Read(pendingBatchKey)
	if err != nil {
		return fmt.Errorf("%w: read undo log: %w", ErrStorageUnavailable, err)
	}

	var undo undoLog
	if err := json.Unmarshal(data, &undo); err != nil {
		// the undo log itself was torn before the batch started; the records are intact
		r.logger.Warn().Err(err).Str("func", "fileRecordRepository.replayPending").Msg("discarding unreadable undo log")
		if err := r.d.Erase(pendingBatchKey); err != nil {
			return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		return nil
	}

	r.logger.Info().Str("func", "fileRecordRepository.replayPending").Msg("rolling back interrupted record batch")
	if err := r.rollback(undo); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// undoFor captures the current value of every key batch touches.
func (r *fileRecordRepository) undoFor(batch models.RecordBatch) (undoLog, error) {
	undo := undoLog{Restore: make(map[string][]byte)}

	keys := make([]string, 0, len(batch.Put)+len(batch.Delete))
	for _, rec := range batch.Put {
		keys = append(keys, rec.Key)
	}
	keys = append(keys, batch.Delete...)

	for _, key := range keys {
		if _, seen := undo.Restore[key]; seen || slices.Contains(undo.Remove, key) {
			continue
		}
		if !r.d.Has(key) {
			undo.Remove = append(undo.Remove, key)
			continue
		}
		value, err := r.d.Read(key)
		if err != nil {
			return undoLog{}, fmt.Errorf("read %s: %w", key, err)
		}
		undo.Restore[key] = value
	}

	return undo, nil
}

func (r *fileRecordRepository) apply(batch models.RecordBatch) error {
	for _, rec := range batch.Put {
		if err := r.d.Write(rec.Key, rec.Value); err != nil {
			return fmt.Errorf("write %s: %w", rec.Key, err)
		}
	}
	for _, key := range batch.Delete {
		if !r.d.Has(key) {
			continue
		}
		if err := r.d.Erase(key); err != nil {
			return fmt.Errorf("erase %s: %w", key, err)
		}
	}

	return r.d.Erase(pendingBatchKey)
}

// rollback puts back the prior values recorded in undo and removes the log.
func (r *fileRecordRepository) rollback(undo undoLog) error {
	for key, value := range undo.Restore {
		if err := r.d.Write(key, value); err != nil {
			return fmt.Errorf("restore %s: %w", key, err)
		}
	}
	for _, key := range undo.Remove {
		if !r.d.Has(key) {
			continue
		}
		if err := r.d.Erase(key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}

	return r.d.Erase(pendingBatchKey)
}
