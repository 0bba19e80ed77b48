// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-aura/internal/crypto"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/store"
	"github.com/MKhiriev/go-aura/models"
)

// stateStore is the implementation of [StateStore] over a keyed
// [store.RecordRepository].
//
// All records of a Save are built in memory before a single batch is
// written, so a failure while sealing leaves the repository untouched.
type stateStore struct {
	mu sync.Mutex

	records  store.RecordRepository
	deriver  crypto.KeyDeriver
	codec    crypto.Codec
	verifier crypto.PinVerifier

	now    func() time.Time
	logger *logger.Logger
}

// NewStateStore constructs a [StateStore] over records.
func NewStateStore(records store.RecordRepository, deriver crypto.KeyDeriver, codec crypto.Codec, verifier crypto.PinVerifier, logger *logger.Logger) StateStore {
	return &stateStore{
		records:  records,
		deriver:  deriver,
		codec:    codec,
		verifier: verifier,
		now:      time.Now,
		logger:   logger,
	}
}

// envelopeHeader detects whether a state record is sealed.
type envelopeHeader struct {
	Encrypted bool `json:"encrypted"`
}

func (s *stateStore) Exists(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.records.Get(ctx, models.RecordKeyState)
	if errors.Is(err, store.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Load implements [StateStore].
//
// A record that exists but cannot be parsed is reported as [ErrDecode]; it
// is never replaced by a default document.
func (s *stateStore) Load(ctx context.Context, pin string) (models.ApplicationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.records.Get(ctx, models.RecordKeyState)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.NewApplicationState(s.now()), nil
	}
	if err != nil {
		return models.ApplicationState{}, err
	}

	var header envelopeHeader
	if err = json.Unmarshal(raw, &header); err != nil {
		logger.FromContext(ctx).Err(err).Msg("state record is not valid JSON")
		return models.ApplicationState{}, fmt.Errorf("%w: state record: %w", ErrDecode, err)
	}

	var doc models.ApplicationState
	if !header.Encrypted {
		if err = json.Unmarshal(raw, &doc); err != nil {
			return models.ApplicationState{}, fmt.Errorf("%w: state record: %w", ErrDecode, err)
		}
		doc.Normalize()
		return doc, nil
	}

	if pin == "" {
		return models.ApplicationState{}, ErrLocked
	}

	var envelope models.EncryptedEnvelope
	if err = json.Unmarshal(raw, &envelope); err != nil {
		return models.ApplicationState{}, fmt.Errorf("%w: envelope: %w", ErrDecode, err)
	}

	salt, err := s.loadSalt(ctx)
	if err != nil {
		return models.ApplicationState{}, err
	}

	key, _, err := s.deriver.Derive(pin, salt)
	if err != nil {
		return models.ApplicationState{}, fmt.Errorf("derive key: %w", err)
	}
	defer key.Zero()

	if err = s.codec.Open(envelope, key, &doc); err != nil {
		return models.ApplicationState{}, err
	}
	doc.Normalize()

	return doc, nil
}

// Save implements [StateStore].
func (s *stateStore) Save(ctx context.Context, doc models.ApplicationState, protection models.Protection, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.buildBatch(doc, protection, pin)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("building state records failed")
		return err
	}

	if err = s.records.Write(ctx, batch); err != nil {
		logger.FromContext(ctx).Err(err).Msg("writing state records failed")
		if errors.Is(err, ErrStorageUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

func (s *stateStore) buildBatch(doc models.ApplicationState, protection models.Protection, pin string) (models.RecordBatch, error) {
	switch p := protection.(type) {
	case models.Protected:
		if pin == "" {
			return models.RecordBatch{}, ErrPinRequired
		}
		if len(p.Salt) == 0 {
			return models.RecordBatch{}, fmt.Errorf("%w: empty salt", ErrPinRequired)
		}

		key, _, err := s.deriver.Derive(pin, p.Salt)
		if err != nil {
			return models.RecordBatch{}, fmt.Errorf("derive key: %w", err)
		}
		defer key.Zero()

		envelope, err := s.codec.Seal(doc, key)
		if err != nil {
			return models.RecordBatch{}, fmt.Errorf("seal state: %w", err)
		}

		fingerprint := p.Fingerprint
		if fingerprint == "" {
			fingerprint = s.verifier.Fingerprint(pin)
		}

		stateRaw, err := json.Marshal(envelope)
		if err != nil {
			return models.RecordBatch{}, err
		}
		securityRaw, err := json.Marshal(models.SecurityMetadata{Salt: base64.StdEncoding.EncodeToString(p.Salt)})
		if err != nil {
			return models.RecordBatch{}, err
		}
		pinRaw, err := json.Marshal(models.PinMetadata{Enabled: true, Fingerprint: fingerprint})
		if err != nil {
			return models.RecordBatch{}, err
		}

		return models.RecordBatch{Put: []models.Record{
			{Key: models.RecordKeyState, Value: stateRaw},
			{Key: models.RecordKeySecurityMetadata, Value: securityRaw},
			{Key: models.RecordKeyPinMetadata, Value: pinRaw},
		}}, nil

	case models.Unprotected, nil:
		stateRaw, err := json.Marshal(doc)
		if err != nil {
			return models.RecordBatch{}, fmt.Errorf("marshal state: %w", err)
		}
		pinRaw, err := json.Marshal(models.PinMetadata{Enabled: false})
		if err != nil {
			return models.RecordBatch{}, err
		}

		return models.RecordBatch{
			Put: []models.Record{
				{Key: models.RecordKeyState, Value: stateRaw},
				{Key: models.RecordKeyPinMetadata, Value: pinRaw},
			},
			Delete: []string{models.RecordKeySecurityMetadata},
		}, nil
	}

	return models.RecordBatch{}, fmt.Errorf("unsupported protection %T", protection)
}

// Protection implements [StateStore].
func (s *stateStore) Protection(ctx context.Context) (models.Protection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.records.Get(ctx, models.RecordKeyPinMetadata)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Unprotected{}, nil
	}
	if err != nil {
		return nil, err
	}

	var meta models.PinMetadata
	if err = json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("%w: pin metadata: %w", ErrDecode, err)
	}
	if !meta.Enabled {
		return models.Unprotected{}, nil
	}

	salt, err := s.loadSalt(ctx)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return nil, err
	}

	return models.Protected{Salt: salt, Fingerprint: meta.Fingerprint}, nil
}

// Reset implements [StateStore].
func (s *stateStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.records.Write(ctx, models.RecordBatch{Delete: models.RecordKeys})
	if err != nil && !errors.Is(err, ErrStorageUnavailable) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return err
}

// loadSalt reads the salt from the security metadata record. Callers hold mu.
func (s *stateStore) loadSalt(ctx context.Context) ([]byte, error) {
	raw, err := s.records.Get(ctx, models.RecordKeySecurityMetadata)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: missing security metadata: %w", ErrDecode, err)
	}
	if err != nil {
		return nil, err
	}

	var meta models.SecurityMetadata
	if err = json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("%w: security metadata: %w", ErrDecode, err)
	}

	salt, err := base64.StdEncoding.DecodeString(meta.Salt)
	if err != nil || len(salt) == 0 {
		return nil, fmt.Errorf("%w: invalid salt", ErrDecode)
	}

	return salt, nil
}
