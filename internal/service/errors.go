package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-aura/internal/crypto"
	"github.com/MKhiriev/go-aura/internal/store"
)

// Errors shared with lower layers, re-exported so transports depend on this
// package only.
var (
	ErrAuthFailure        = crypto.ErrAuthFailure
	ErrDecode             = crypto.ErrDecode
	ErrStorageUnavailable = store.ErrStorageUnavailable
)

var (
	// ErrLocked is returned when the document is sealed and no PIN is held.
	ErrLocked = errors.New("state is locked")
	// ErrWrongPin is returned when a PIN does not match the stored
	// fingerprint. It matches [ErrAuthFailure].
	ErrWrongPin = fmt.Errorf("%w: wrong pin", crypto.ErrAuthFailure)

	ErrNotSetUp             = errors.New("companion is not set up")
	ErrAlreadySetUp         = errors.New("companion is already set up")
	ErrNotLocked            = errors.New("companion is not locked")
	ErrPinNotConfigured     = errors.New("no pin is configured")
	ErrPinAlreadyConfigured = errors.New("a pin is already configured")
	ErrPinRequired          = errors.New("pin is required to seal the state")
	ErrNothingToExport      = errors.New("nothing to export")
	ErrUnknownExportKind    = errors.New("unknown export kind")
	ErrTooManyRequests      = errors.New("too many attempts")
	ErrSessionRequiresPin   = errors.New("session requires the pin")

	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrVersionIsNotSpecified   = errors.New("application version is not specified")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
