// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client of a running go-aura
// daemon.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// facade from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrLocked] for 423, [ErrUnauthorized] for 401). The
// response body is kept in the error message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-aura/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter mirrors the daemon's JSON API. Implementations keep the
// bearer token returned by Setup, Unlock and OpenSession and attach it to
// every authenticated request.
type ServerAdapter interface {
	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Version returns the daemon version.
	Version(ctx context.Context) (string, error)

	// Status returns the lock status. It needs no token.
	Status(ctx context.Context) (models.Status, error)

	// Setup completes the first run and stores the returned token.
	Setup(ctx context.Context, request models.SetupRequest) (models.SessionResponse, error)

	// Unlock opens the sealed state and stores the returned token.
	Unlock(ctx context.Context, pin string) (models.SessionResponse, error)

	// OpenSession obtains a token for an installation without a PIN.
	OpenSession(ctx context.Context) (models.SessionResponse, error)

	// Lock locks the daemon and forgets the stored token.
	Lock(ctx context.Context) (models.Status, error)

	EnableLock(ctx context.Context) error
	DisableLock(ctx context.Context) error
	SetPin(ctx context.Context, pin string) error
	ChangePin(ctx context.Context, request models.ChangePinRequest) error

	// State returns the unlocked document.
	State(ctx context.Context) (models.ApplicationState, error)

	RecordMood(ctx context.Context, input models.MoodInput) (models.MoodEntry, error)
	Stats(ctx context.Context) (models.MoodStats, error)
	AddJournal(ctx context.Context, input models.JournalInput) (models.JournalEntry, error)
	UpdatePreferences(ctx context.Context, update models.PreferencesUpdate) (models.ApplicationState, error)

	// Export downloads a rendered export.
	Export(ctx context.Context, kind models.ExportKind) (models.Export, error)

	// Reset erases every record on the daemon.
	Reset(ctx context.Context) error
}
