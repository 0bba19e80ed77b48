package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-aura/models"
)

// localCompanion drives the services in process.
type localCompanion struct {
	services *Services
}

// NewLocalCompanion returns a [Companion] over services.
func NewLocalCompanion(services *Services) Companion {
	return &localCompanion{services: services}
}

func (c *localCompanion) Boot(ctx context.Context) (models.Status, error) {
	if _, err := c.services.LockService.Boot(ctx); err != nil {
		return c.services.LockService.Status(ctx), err
	}
	return c.services.LockService.Status(ctx), nil
}

func (c *localCompanion) Status(ctx context.Context) (models.Status, error) {
	return c.services.LockService.Status(ctx), nil
}

func (c *localCompanion) Setup(ctx context.Context, request models.SetupRequest) (models.Status, error) {
	err := c.services.LockService.Setup(ctx, request)
	return c.services.LockService.Status(ctx), err
}

func (c *localCompanion) Unlock(ctx context.Context, pin string) (models.Status, error) {
	err := c.services.LockService.Unlock(ctx, pin)
	return c.services.LockService.Status(ctx), err
}

func (c *localCompanion) Lock(ctx context.Context) (models.Status, error) {
	err := c.services.LockService.Lock(ctx)
	return c.services.LockService.Status(ctx), err
}

func (c *localCompanion) EnableLock(ctx context.Context) error {
	return c.services.LockService.EnableLock(ctx)
}

func (c *localCompanion) DisableLock(ctx context.Context) error {
	return c.services.LockService.DisableLock(ctx)
}

func (c *localCompanion) SetPin(ctx context.Context, pin string) error {
	return c.services.LockService.SetPin(ctx, pin)
}

func (c *localCompanion) ChangePin(ctx context.Context, request models.ChangePinRequest) error {
	return c.services.LockService.ChangePin(ctx, request)
}

func (c *localCompanion) State(ctx context.Context) (models.ApplicationState, error) {
	return c.services.StateService.Snapshot(ctx)
}

func (c *localCompanion) RecordMood(ctx context.Context, input models.MoodInput) (models.MoodEntry, error) {
	return c.services.MoodService.Record(ctx, input)
}

func (c *localCompanion) Stats(ctx context.Context) (models.MoodStats, error) {
	return c.services.MoodService.Stats(ctx)
}

func (c *localCompanion) AddJournal(ctx context.Context, input models.JournalInput) (models.JournalEntry, error) {
	return c.services.JournalService.Add(ctx, input)
}

func (c *localCompanion) UpdatePreferences(ctx context.Context, update models.PreferencesUpdate) (models.ApplicationState, error) {
	return c.services.PreferencesService.Update(ctx, update)
}

func (c *localCompanion) Export(ctx context.Context, kind models.ExportKind) (models.Export, error) {
	return c.services.ExportService.Export(ctx, kind)
}

func (c *localCompanion) SaveExport(ctx context.Context, kind models.ExportKind) (string, error) {
	return c.services.ExportService.WriteExport(ctx, kind)
}

func (c *localCompanion) Reset(ctx context.Context) error {
	return c.services.LockService.Reset(ctx)
}

func (c *localCompanion) Version(ctx context.Context) string {
	return c.services.AppInfoService.GetAppVersion(ctx)
}

// LockIfIdle lets the client run the auto-lock worker in local mode.
func (c *localCompanion) LockIfIdle(ctx context.Context, idle time.Duration) (bool, error) {
	return c.services.LockService.LockIfIdle(ctx, idle)
}
