// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-aura/internal/crypto"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/validators"
	"github.com/MKhiriev/go-aura/models"
)

// lockService is the implementation of [LockService].
//
// Every transition builds the next document and protection on the side,
// persists them and only then commits them to the session, so a failed
// transition leaves the lock state unchanged.
type lockService struct {
	session   *session
	store     StateStore
	verifier  crypto.PinVerifier
	validator validators.Validator

	newSalt func() ([]byte, error)
	now     func() time.Time

	logger *logger.Logger
}

// newLockService constructs the [LockService] operating on sess.
func newLockService(sess *session, store StateStore, verifier crypto.PinVerifier, validator validators.Validator, logger *logger.Logger) *lockService {
	return &lockService{
		session:   sess,
		store:     store,
		verifier:  verifier,
		validator: validator,
		newSalt:   crypto.NewSalt,
		now:       time.Now,
		logger:    logger,
	}
}

// Boot determines the cold start state from the persisted records.
//
//   - no state record: FIRST_RUN;
//   - sealed state, or lock enabled with a configured PIN: LOCKED;
//   - otherwise the plaintext document is loaded: UNLOCKED.
func (l *lockService) Boot(ctx context.Context) (models.LockState, error) {
	log := logger.FromContext(ctx)

	l.session.mu.Lock()
	state, err := l.boot(ctx)
	l.session.mu.Unlock()
	if err != nil {
		log.Err(err).Msg("boot failed")
		return state, err
	}

	log.Info().Str("state", state.String()).Msg("companion booted")
	l.session.notify(state)
	return state, nil
}

func (l *lockService) boot(ctx context.Context) (models.LockState, error) {
	now := l.now()

	exists, err := l.store.Exists(ctx)
	if err != nil {
		return l.session.state, err
	}
	if !exists {
		l.session.close(models.LockStateFirstRun, models.Unprotected{}, now)
		return models.LockStateFirstRun, nil
	}

	protection, err := l.store.Protection(ctx)
	if err != nil {
		return l.session.state, err
	}

	doc, err := l.store.Load(ctx, "")
	if errors.Is(err, ErrLocked) {
		l.session.close(models.LockStateLocked, protection, now)
		return models.LockStateLocked, nil
	}
	if err != nil {
		return l.session.state, err
	}

	if doc.LockEnabled && models.IsProtected(protection) {
		l.session.close(models.LockStateLocked, protection, now)
		return models.LockStateLocked, nil
	}

	l.session.open(doc, "", protection, now)
	return models.LockStateUnlocked, nil
}

func (l *lockService) Status(ctx context.Context) models.Status {
	l.session.mu.Lock()
	defer l.session.mu.Unlock()

	return l.session.status()
}

// Setup completes the first run. The name is trimmed and cut to
// [models.MaxNameLength] runes; a non-empty PIN seals the document.
func (l *lockService) Setup(ctx context.Context, request models.SetupRequest) error {
	log := logger.FromContext(ctx)

	if err := l.validator.Validate(ctx, request); err != nil {
		return err
	}

	l.session.mu.Lock()
	if l.session.state != models.LockStateFirstRun {
		l.session.mu.Unlock()
		return ErrAlreadySetUp
	}
	// a corrupt record also leaves the session in FIRST_RUN; never overwrite it
	exists, err := l.store.Exists(ctx)
	if err != nil {
		l.session.mu.Unlock()
		return err
	}
	if exists {
		l.session.mu.Unlock()
		return ErrAlreadySetUp
	}

	now := l.now()
	doc := models.NewApplicationState(now)
	doc.Name = NormalizeName(request.Name)

	var protection models.Protection = models.Unprotected{}
	if request.Pin != "" {
		salt, err := l.newSalt()
		if err != nil {
			l.session.mu.Unlock()
			return err
		}
		protection = models.Protected{Salt: salt, Fingerprint: l.verifier.Fingerprint(request.Pin)}
		doc.PinEnabled = true
		doc.LockEnabled = true
	}

	if err := l.store.Save(ctx, doc, protection, request.Pin); err != nil {
		l.session.mu.Unlock()
		log.Err(err).Msg("setup could not persist the document")
		return err
	}

	l.session.open(doc, request.Pin, protection, now)
	l.session.mu.Unlock()

	log.Info().Bool("protected", models.IsProtected(protection)).Msg("setup completed")
	l.session.notify(models.LockStateUnlocked)
	return nil
}

// Unlock opens the sealed document with pin. Failures keep the session
// LOCKED.
func (l *lockService) Unlock(ctx context.Context, pin string) error {
	log := logger.FromContext(ctx)

	if err := l.validator.Validate(ctx, models.UnlockRequest{Pin: pin}); err != nil {
		return err
	}

	l.session.mu.Lock()
	switch l.session.state {
	case models.LockStateFirstRun:
		l.session.mu.Unlock()
		return ErrNotSetUp
	case models.LockStateUnlocked:
		l.session.mu.Unlock()
		return ErrNotLocked
	}

	protection, err := l.store.Protection(ctx)
	if err != nil {
		l.session.mu.Unlock()
		return err
	}

	if p, ok := protection.(models.Protected); ok && p.Fingerprint != "" {
		if !l.verifier.Verify(pin, p.Fingerprint) {
			l.session.mu.Unlock()
			log.Warn().Msg("unlock rejected: pin does not match")
			return ErrWrongPin
		}
	}

	doc, err := l.store.Load(ctx, pin)
	if err != nil {
		l.session.mu.Unlock()
		log.Err(err).Msg("unlock could not open the document")
		return err
	}

	l.session.open(doc, pin, protection, l.now())
	l.session.mu.Unlock()

	log.Info().Msg("companion unlocked")
	l.session.notify(models.LockStateUnlocked)
	return nil
}

// Authenticate checks pin for a client attaching to a running companion. A
// LOCKED session is unlocked; an UNLOCKED one only has the PIN verified.
func (l *lockService) Authenticate(ctx context.Context, pin string) error {
	if err := l.validator.Validate(ctx, models.UnlockRequest{Pin: pin}); err != nil {
		return err
	}

	l.session.mu.Lock()
	if l.session.state != models.LockStateUnlocked {
		l.session.mu.Unlock()
		return l.Unlock(ctx, pin)
	}
	defer l.session.mu.Unlock()

	protected, ok := l.session.protection.(models.Protected)
	if !ok {
		return ErrPinNotConfigured
	}
	if !l.verifier.Verify(pin, protected.Fingerprint) {
		logger.FromContext(ctx).Warn().Msg("authentication rejected: pin does not match")
		return ErrWrongPin
	}
	l.session.lastActive = l.now()

	return nil
}

// Lock persists pending changes, then forgets the document and the PIN.
func (l *lockService) Lock(ctx context.Context) error {
	l.session.mu.Lock()
	err := l.lock(ctx)
	l.session.mu.Unlock()
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Msg("companion locked")
	l.session.notify(models.LockStateLocked)
	return nil
}

func (l *lockService) lock(ctx context.Context) error {
	switch l.session.state {
	case models.LockStateFirstRun:
		return ErrNotSetUp
	case models.LockStateLocked:
		return nil
	}
	if !models.IsProtected(l.session.protection) {
		return ErrPinNotConfigured
	}

	if l.session.dirty {
		if err := l.store.Save(ctx, l.session.doc, l.session.protection, l.session.pin); err != nil {
			return err
		}
	}

	l.session.close(models.LockStateLocked, l.session.protection, l.now())
	return nil
}

// LockIfIdle implements [LockService]. Sessions without a PIN are never
// locked.
func (l *lockService) LockIfIdle(ctx context.Context, idle time.Duration) (bool, error) {
	l.session.mu.Lock()
	if l.session.state != models.LockStateUnlocked ||
		!models.IsProtected(l.session.protection) ||
		l.now().Sub(l.session.lastActive) < idle {
		l.session.mu.Unlock()
		return false, nil
	}

	err := l.lock(ctx)
	l.session.mu.Unlock()
	if err != nil {
		return false, err
	}

	logger.FromContext(ctx).Info().Dur("idle", idle).Msg("companion locked after inactivity")
	l.session.notify(models.LockStateLocked)
	return true, nil
}

// EnableLock requires the PIN on the next cold start.
func (l *lockService) EnableLock(ctx context.Context) error {
	l.session.mu.Lock()
	defer l.session.mu.Unlock()

	if err := l.requireUnlocked(); err != nil {
		return err
	}
	if !models.IsProtected(l.session.protection) {
		return ErrPinNotConfigured
	}

	doc := l.session.doc.Clone()
	doc.LockEnabled = true
	doc.PinEnabled = true

	return l.commit(ctx, doc, l.session.protection, l.session.pin)
}

// DisableLock removes the PIN and rewrites the document in plaintext.
func (l *lockService) DisableLock(ctx context.Context) error {
	l.session.mu.Lock()
	defer l.session.mu.Unlock()

	if err := l.requireUnlocked(); err != nil {
		return err
	}

	doc := l.session.doc.Clone()
	doc.LockEnabled = false
	doc.PinEnabled = false

	if err := l.commit(ctx, doc, models.Unprotected{}, ""); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Msg("pin lock disabled")
	return nil
}

// SetPin configures a PIN on an unprotected document and seals it under a
// fresh salt.
func (l *lockService) SetPin(ctx context.Context, pin string) error {
	if err := l.validator.Validate(ctx, models.SetPinRequest{Pin: pin}); err != nil {
		return err
	}

	l.session.mu.Lock()
	defer l.session.mu.Unlock()

	if err := l.requireUnlocked(); err != nil {
		return err
	}
	if models.IsProtected(l.session.protection) {
		return ErrPinAlreadyConfigured
	}

	return l.reseal(ctx, pin)
}

// ChangePin verifies the current PIN and reseals the document under the new
// PIN with a fresh salt.
func (l *lockService) ChangePin(ctx context.Context, request models.ChangePinRequest) error {
	if err := l.validator.Validate(ctx, request); err != nil {
		return err
	}

	l.session.mu.Lock()
	defer l.session.mu.Unlock()

	if err := l.requireUnlocked(); err != nil {
		return err
	}
	current, ok := l.session.protection.(models.Protected)
	if !ok {
		return ErrPinNotConfigured
	}
	if !l.verifier.Verify(request.CurrentPin, current.Fingerprint) {
		logger.FromContext(ctx).Warn().Msg("pin change rejected: current pin does not match")
		return ErrWrongPin
	}

	return l.reseal(ctx, request.NewPin)
}

// reseal seals the document under pin with a fresh salt. Callers hold mu.
func (l *lockService) reseal(ctx context.Context, pin string) error {
	salt, err := l.newSalt()
	if err != nil {
		return err
	}

	doc := l.session.doc.Clone()
	doc.PinEnabled = true
	doc.LockEnabled = true

	protection := models.Protected{Salt: salt, Fingerprint: l.verifier.Fingerprint(pin)}
	if err = l.commit(ctx, doc, protection, pin); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Msg("document sealed under a new pin")
	return nil
}

// commit persists doc and, on success, makes it the session document.
// Callers hold mu.
func (l *lockService) commit(ctx context.Context, doc models.ApplicationState, protection models.Protection, pin string) error {
	if err := l.store.Save(ctx, doc, protection, pin); err != nil {
		logger.FromContext(ctx).Err(err).Msg("could not persist lock settings")
		return err
	}

	l.session.open(doc, pin, protection, l.now())
	return nil
}

// Reset wipes every record and returns to FIRST_RUN.
func (l *lockService) Reset(ctx context.Context) error {
	l.session.mu.Lock()
	if err := l.store.Reset(ctx); err != nil {
		l.session.mu.Unlock()
		return err
	}
	l.session.close(models.LockStateFirstRun, models.Unprotected{}, l.now())
	l.session.mu.Unlock()

	logger.FromContext(ctx).Info().Msg("all data erased")
	l.session.notify(models.LockStateFirstRun)
	return nil
}

func (l *lockService) OnStateChange(fn func(models.LockState)) {
	l.session.subscribe(fn)
}

// requireUnlocked maps the session state to the error of an operation that
// needs the document. Callers hold mu.
func (l *lockService) requireUnlocked() error {
	return requireUnlocked(l.session)
}

func requireUnlocked(s *session) error {
	switch s.state {
	case models.LockStateFirstRun:
		return ErrNotSetUp
	case models.LockStateLocked:
		return ErrLocked
	}
	return nil
}

// NormalizeName trims name and cuts it to [models.MaxNameLength] runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= models.MaxNameLength {
		return name
	}
	return strings.TrimSpace(string([]rune(name)[:models.MaxNameLength]))
}
