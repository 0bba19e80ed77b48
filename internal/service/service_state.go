package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/models"
)

// stateService is the implementation of [StateService] over the shared
// session.
type stateService struct {
	session *session
	store   StateStore
	now     func() time.Time
	logger  *logger.Logger
}

func newStateService(sess *session, store StateStore, logger *logger.Logger) *stateService {
	return &stateService{
		session: sess,
		store:   store,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *stateService) Snapshot(ctx context.Context) (models.ApplicationState, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	if err := requireUnlocked(s.session); err != nil {
		return models.ApplicationState{}, err
	}
	s.session.lastActive = s.now()

	return s.session.doc.Clone(), nil
}

func (s *stateService) Update(ctx context.Context, fn func(doc *models.ApplicationState) error) error {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	if err := requireUnlocked(s.session); err != nil {
		return err
	}
	s.session.lastActive = s.now()

	working := s.session.doc.Clone()
	if err := fn(&working); err != nil {
		return err
	}

	s.session.doc = working
	return s.persist(ctx)
}

func (s *stateService) Persist(ctx context.Context) error {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	if err := requireUnlocked(s.session); err != nil {
		return err
	}

	return s.persist(ctx)
}

// persist writes the session document. Callers hold the session mutex.
func (s *stateService) persist(ctx context.Context) error {
	err := s.store.Save(ctx, s.session.doc, s.session.protection, s.session.pin)
	if err != nil {
		s.session.dirty = true
		logger.FromContext(ctx).Err(err).Msg("document kept in memory: persisting failed")
		return err
	}

	s.session.dirty = false
	return nil
}
