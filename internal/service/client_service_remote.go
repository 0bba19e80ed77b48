// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-aura/internal/adapter"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/models"
)

// remoteCompanion drives a running daemon through a [adapter.ServerAdapter].
// Transport errors are translated back into service errors.
type remoteCompanion struct {
	serverAdapter adapter.ServerAdapter
	exportDir     string
	logger        *logger.Logger
}

// NewRemoteCompanion returns a [Companion] attached to a daemon. Exports
// saved by SaveExport are written under exportDir on this machine.
func NewRemoteCompanion(serverAdapter adapter.ServerAdapter, exportDir string, logger *logger.Logger) Companion {
	return &remoteCompanion{
		serverAdapter: serverAdapter,
		exportDir:     exportDir,
		logger:        logger,
	}
}

// Boot reads the daemon status. An unlocked installation without a PIN
// grants a session directly.
func (c *remoteCompanion) Boot(ctx context.Context) (models.Status, error) {
	status, err := c.serverAdapter.Status(ctx)
	if err != nil {
		return models.Status{}, mapAdapterError(err)
	}

	if status.State == models.LockStateUnlocked && !status.PinConfigured {
		session, err := c.serverAdapter.OpenSession(ctx)
		if err != nil {
			return status, mapAdapterError(err)
		}
		return session.Status, nil
	}

	// the daemon may have been unlocked by another client; a PIN is still required
	if status.State == models.LockStateUnlocked && c.serverAdapter.Token() == "" {
		status.State = models.LockStateLocked
	}

	return status, nil
}

func (c *remoteCompanion) Status(ctx context.Context) (models.Status, error) {
	status, err := c.serverAdapter.Status(ctx)
	return status, mapAdapterError(err)
}

func (c *remoteCompanion) Setup(ctx context.Context, request models.SetupRequest) (models.Status, error) {
	session, err := c.serverAdapter.Setup(ctx, request)
	if err != nil {
		return models.Status{}, mapAdapterError(err)
	}
	return session.Status, nil
}

// Unlock opens a session. A daemon that is already unlocked still checks
// the PIN before handing out a token.
func (c *remoteCompanion) Unlock(ctx context.Context, pin string) (models.Status, error) {
	session, err := c.serverAdapter.Unlock(ctx, pin)
	if err != nil {
		return models.Status{}, mapAdapterError(err)
	}
	return session.Status, nil
}

func (c *remoteCompanion) Lock(ctx context.Context) (models.Status, error) {
	status, err := c.serverAdapter.Lock(ctx)
	return status, mapAdapterError(err)
}

func (c *remoteCompanion) EnableLock(ctx context.Context) error {
	return mapAdapterError(c.serverAdapter.EnableLock(ctx))
}

func (c *remoteCompanion) DisableLock(ctx context.Context) error {
	return mapAdapterError(c.serverAdapter.DisableLock(ctx))
}

func (c *remoteCompanion) SetPin(ctx context.Context, pin string) error {
	return mapAdapterError(c.serverAdapter.SetPin(ctx, pin))
}

func (c *remoteCompanion) ChangePin(ctx context.Context, request models.ChangePinRequest) error {
	return mapAdapterError(c.serverAdapter.ChangePin(ctx, request))
}

func (c *remoteCompanion) State(ctx context.Context) (models.ApplicationState, error) {
	doc, err := c.serverAdapter.State(ctx)
	return doc, mapAdapterError(err)
}

func (c *remoteCompanion) RecordMood(ctx context.Context, input models.MoodInput) (models.MoodEntry, error) {
	entry, err := c.serverAdapter.RecordMood(ctx, input)
	return entry, mapAdapterError(err)
}

func (c *remoteCompanion) Stats(ctx context.Context) (models.MoodStats, error) {
	stats, err := c.serverAdapter.Stats(ctx)
	return stats, mapAdapterError(err)
}

func (c *remoteCompanion) AddJournal(ctx context.Context, input models.JournalInput) (models.JournalEntry, error) {
	entry, err := c.serverAdapter.AddJournal(ctx, input)
	return entry, mapAdapterError(err)
}

func (c *remoteCompanion) UpdatePreferences(ctx context.Context, update models.PreferencesUpdate) (models.ApplicationState, error) {
	doc, err := c.serverAdapter.UpdatePreferences(ctx, update)
	return doc, mapAdapterError(err)
}

func (c *remoteCompanion) Export(ctx context.Context, kind models.ExportKind) (models.Export, error) {
	export, err := c.serverAdapter.Export(ctx, kind)
	return export, mapAdapterError(err)
}

func (c *remoteCompanion) SaveExport(ctx context.Context, kind models.ExportKind) (string, error) {
	export, err := c.Export(ctx, kind)
	if err != nil {
		return "", err
	}

	if export.FileName == "" {
		return "", errors.New("export response carries no file name")
	}

	if err = os.MkdirAll(c.exportDir, 0o700); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(c.exportDir, filepath.Base(export.FileName))
	if err = os.WriteFile(path, export.Data, 0o600); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	return path, nil
}

func (c *remoteCompanion) Reset(ctx context.Context) error {
	return mapAdapterError(c.serverAdapter.Reset(ctx))
}

func (c *remoteCompanion) Version(ctx context.Context) string {
	version, err := c.serverAdapter.Version(ctx)
	if err != nil {
		c.logger.Err(err).Msg("daemon version unavailable")
		return "unknown"
	}
	return version
}
