// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/internal/validators"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

var errPinMismatch = errors.New("the two PINs do not match")

var errorTexts = []struct {
	target error
	text   string
}{
	{service.ErrWrongPin, "Wrong PIN. Try again."},
	{service.ErrAuthFailure, "The stored data could not be opened with this PIN."},
	{service.ErrTooManyRequests, "Too many attempts. Wait a moment and try again."},
	{service.ErrStorageUnavailable, "Could not save. Your changes are kept until the next successful save."},
	{service.ErrDecode, "The stored data is damaged and cannot be read."},
	{service.ErrLocked, "Aura is locked."},
	{service.ErrNothingToExport, "There is nothing to export yet."},
	{service.ErrPinNotConfigured, "No PIN is set."},
	{service.ErrPinAlreadyConfigured, "A PIN is already set."},
	{service.ErrAlreadySetUp, "Aura is already set up."},
	{service.ErrNotSetUp, "Aura is not set up yet."},
	{service.ErrTokenIsExpiredOrInvalid, "The session expired. Unlock again."},
}

// humanizeError turns err into a message for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return capitalize(validationErr.Err.Error()) + "."
	}

	for _, e := range errorTexts {
		if errors.Is(err, e.target) {
			return e.text
		}
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The aura daemon is not reachable."
	}

	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
