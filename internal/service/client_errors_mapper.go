// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-aura/internal/adapter"
	"github.com/MKhiriev/go-aura/internal/app"
	"github.com/MKhiriev/go-aura/internal/validators"
)

// validationReasons maps validator messages back to their sentinels.
var validationReasons = []error{
	validators.ErrInvalidPin,
	validators.ErrSamePin,
	validators.ErrInvalidMood,
	validators.ErrInvalidDate,
	validators.ErrEmptyJournalText,
	validators.ErrJournalTooLong,
	validators.ErrInvalidAudioEnv,
	validators.ErrInvalidVolume,
	validators.ErrInvalidTheme,
	validators.ErrNoFieldsToUpdate,
}

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgUnknownExportKind:
			return ErrUnknownExportKind
		}
		if validationErr := parseValidationError(msg); validationErr != nil {
			return validationErr
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgWrongPin:
			return ErrWrongPin
		case app.MsgAuthFailure:
			return ErrAuthFailure
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrMissingToken):
		return ErrTokenCreationFailed

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgNothingToExport {
			return ErrNothingToExport
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgNotSetUp:
			return ErrNotSetUp
		case app.MsgAlreadySetUp:
			return ErrAlreadySetUp
		case app.MsgNotLocked:
			return ErrNotLocked
		case app.MsgPinNotConfigured:
			return ErrPinNotConfigured
		case app.MsgPinAlreadyConfigured:
			return ErrPinAlreadyConfigured
		case app.MsgSessionRequiresPin:
			return ErrSessionRequiresPin
		}

	case errors.Is(err, adapter.ErrUnprocessable):
		return ErrDecode

	case errors.Is(err, adapter.ErrLocked):
		return ErrLocked

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrTooManyRequests

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrStorageUnavailable

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgTokenIsExpiredOrInvalid {
			return ErrTokenCreationFailed
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// parseValidationError rebuilds a [validators.ValidationError] from its
// "field: reason" rendering. It returns nil for unknown reasons.
func parseValidationError(msg string) error {
	field, reason, ok := strings.Cut(msg, ": ")
	if !ok {
		return nil
	}
	for _, sentinel := range validationReasons {
		if sentinel.Error() == reason {
			return &validators.ValidationError{Field: field, Err: sentinel}
		}
	}
	return nil
}
