package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-aura/models"
)

// session is the in-memory unlocked context: the lock state, the owned
// document and the PIN it was opened with. It is shared by the lock and
// state services and guarded by mu.
type session struct {
	mu sync.Mutex

	state      models.LockState
	doc        models.ApplicationState
	pin        string
	protection models.Protection
	dirty      bool
	lastActive time.Time

	listenersMu sync.Mutex
	listeners   []func(models.LockState)
}

func newSession(now time.Time) *session {
	return &session{
		state:      models.LockStateFirstRun,
		doc:        models.NewApplicationState(now),
		protection: models.Unprotected{},
		lastActive: now,
	}
}

// open moves the session to UNLOCKED with doc. Callers hold mu.
func (s *session) open(doc models.ApplicationState, pin string, protection models.Protection, now time.Time) {
	s.state = models.LockStateUnlocked
	s.doc = doc
	s.pin = pin
	s.protection = protection
	s.dirty = false
	s.lastActive = now
}

// close forgets the document and the PIN and moves to state. Callers hold mu.
func (s *session) close(state models.LockState, protection models.Protection, now time.Time) {
	s.state = state
	s.doc = models.NewApplicationState(now)
	s.pin = ""
	s.protection = protection
	s.dirty = false
}

func (s *session) status() models.Status {
	status := models.Status{
		State:         s.state,
		PinConfigured: models.IsProtected(s.protection),
		Dirty:         s.dirty,
	}

	switch s.state {
	case models.LockStateUnlocked:
		status.LockEnabled = s.doc.LockEnabled
		status.Name = s.doc.Name
	case models.LockStateLocked:
		status.LockEnabled = true
	}

	return status
}

func (s *session) subscribe(fn func(models.LockState)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// notify must be called without holding mu.
func (s *session) notify(state models.LockState) {
	s.listenersMu.Lock()
	listeners := make([]func(models.LockState), len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}
