package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-aura/models"
)

// memoryRecordRepository keeps records in process memory. Nothing survives a
// restart; it backs tests and throwaway demo sessions.
type memoryRecordRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryRecordRepository constructs an empty in-memory [RecordRepository].
func NewMemoryRecordRepository() RecordRepository {
	return &memoryRecordRepository{records: make(map[string][]byte)}
}

func (m *memoryRecordRepository) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return slices.Clone(value), nil
}

func (m *memoryRecordRepository) Write(_ context.Context, batch models.RecordBatch) error {
	for _, rec := range batch.Put {
		if rec.Key == "" {
			return ErrEmptyKey
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range batch.Put {
		m.records[rec.Key] = slices.Clone(rec.Value)
	}
	for _, key := range batch.Delete {
		delete(m.records, key)
	}
	return nil
}

func (m *memoryRecordRepository) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.records))
	for key := range m.records {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}

func (m *memoryRecordRepository) Close() error {
	return nil
}
