package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/companion_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-aura/models"
)

// Companion is the contract the terminal client drives. It is implemented
// over the local services ([NewLocalCompanion]) and over a running daemon
// ([NewRemoteCompanion]); both report the same service errors.
type Companion interface {
	// Boot resolves the initial lock state and returns the status.
	Boot(ctx context.Context) (models.Status, error)
	Status(ctx context.Context) (models.Status, error)

	Setup(ctx context.Context, request models.SetupRequest) (models.Status, error)
	Unlock(ctx context.Context, pin string) (models.Status, error)
	Lock(ctx context.Context) (models.Status, error)

	EnableLock(ctx context.Context) error
	DisableLock(ctx context.Context) error
	SetPin(ctx context.Context, pin string) error
	ChangePin(ctx context.Context, request models.ChangePinRequest) error

	// State returns a copy of the unlocked document.
	State(ctx context.Context) (models.ApplicationState, error)
	RecordMood(ctx context.Context, input models.MoodInput) (models.MoodEntry, error)
	Stats(ctx context.Context) (models.MoodStats, error)
	AddJournal(ctx context.Context, input models.JournalInput) (models.JournalEntry, error)
	UpdatePreferences(ctx context.Context, update models.PreferencesUpdate) (models.ApplicationState, error)

	// Export renders an export in memory.
	Export(ctx context.Context, kind models.ExportKind) (models.Export, error)
	// SaveExport writes an export to the local export directory and returns
	// its path.
	SaveExport(ctx context.Context, kind models.ExportKind) (string, error)

	// Reset erases all data.
	Reset(ctx context.Context) error

	Version(ctx context.Context) string
}
