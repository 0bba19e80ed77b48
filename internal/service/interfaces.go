package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-aura/models"
)

// StateStore persists the application document together with its security
// records. Every call is serialised; Save writes all records as one batch.
type StateStore interface {
	// Exists reports whether a state record has been persisted.
	Exists(ctx context.Context) (bool, error)

	// Load returns the persisted document. An absent record yields a fresh
	// default document; a sealed record requires pin.
	Load(ctx context.Context, pin string) (models.ApplicationState, error)

	// Save persists doc as plaintext or sealed, depending on protection.
	Save(ctx context.Context, doc models.ApplicationState, protection models.Protection, pin string) error

	// Protection reads the persisted PIN and salt metadata.
	Protection(ctx context.Context) (models.Protection, error)

	// Reset removes every record.
	Reset(ctx context.Context) error
}

// LockService drives the lock lifecycle: FIRST_RUN, LOCKED and UNLOCKED.
type LockService interface {
	Boot(ctx context.Context) (models.LockState, error)
	Status(ctx context.Context) models.Status

	Setup(ctx context.Context, request models.SetupRequest) error
	Unlock(ctx context.Context, pin string) error
	// Authenticate verifies pin, unlocking the session when it is LOCKED.
	Authenticate(ctx context.Context, pin string) error
	Lock(ctx context.Context) error
	// LockIfIdle locks the session when no activity happened for idle.
	// It reports whether the session was locked.
	LockIfIdle(ctx context.Context, idle time.Duration) (bool, error)

	EnableLock(ctx context.Context) error
	DisableLock(ctx context.Context) error
	SetPin(ctx context.Context, pin string) error
	ChangePin(ctx context.Context, request models.ChangePinRequest) error

	Reset(ctx context.Context) error

	// OnStateChange registers fn to be called after every state transition.
	OnStateChange(fn func(models.LockState))
}

// StateService grants access to the unlocked document.
type StateService interface {
	// Snapshot returns a deep copy of the document.
	Snapshot(ctx context.Context) (models.ApplicationState, error)

	// Update applies fn to the document and persists the result. When fn
	// fails nothing changes. When persisting fails the change is kept in
	// memory, the session is marked dirty and ErrStorageUnavailable is
	// returned.
	Update(ctx context.Context, fn func(doc *models.ApplicationState) error) error

	// Persist writes the in-memory document again.
	Persist(ctx context.Context) error
}

type MoodService interface {
	Record(ctx context.Context, input models.MoodInput) (models.MoodEntry, error)
	Today(ctx context.Context) (*models.MoodEntry, error)
	List(ctx context.Context) ([]models.MoodEntry, error)
	Stats(ctx context.Context) (models.MoodStats, error)
}

type JournalService interface {
	Add(ctx context.Context, input models.JournalInput) (models.JournalEntry, error)
	List(ctx context.Context) ([]models.JournalEntry, error)
	ExportText(ctx context.Context) (string, error)
}

type PreferencesService interface {
	Update(ctx context.Context, update models.PreferencesUpdate) (models.ApplicationState, error)
}

// ExportService renders the document for download. Exports are plaintext.
type ExportService interface {
	Export(ctx context.Context, kind models.ExportKind) (models.Export, error)
	// WriteExport renders kind and writes it into the configured export
	// directory, returning the file path.
	WriteExport(ctx context.Context, kind models.ExportKind) (string, error)
}

// SessionService issues and validates bearer tokens of the local API.
type SessionService interface {
	CreateToken(ctx context.Context) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// RevokeAll invalidates every token issued so far.
	RevokeAll()
}

// AppInfoService describes the running daemon.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// GetAppInfo adds the start time and uptime to the version.
	GetAppInfo(ctx context.Context) models.VersionResponse
}
