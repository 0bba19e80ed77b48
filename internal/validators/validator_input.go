// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-aura/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldPin         = "pin"
	FieldNewPin      = "new_pin"
	FieldMood        = "mood"
	FieldDate        = "date"
	FieldJournalText = "text"
	FieldAudioEnv    = "audio_env"
	FieldAudioVolume = "audio_volume"
	FieldTheme       = "theme"
	FieldPreferences = "preferences"
)

const (
	maxJournalRunes = 4000
	maxThemeRunes   = 32
)

var pinPattern = regexp.MustCompile(`^\d{4,8}$`)

// IsValidPin reports whether pin has the accepted format: 4 to 8 ASCII digits.
func IsValidPin(pin string) bool {
	return pinPattern.MatchString(pin)
}

// InputValidator validates the payloads accepted by the lifecycle and
// document services.
type InputValidator struct {
}

// NewInputValidator constructs the [Validator] used by the service layer.
func NewInputValidator() Validator {
	return &InputValidator{}
}

// Validate implements [Validator]. fields restricts which checks run; when
// empty every check for the value's type runs.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SetupRequest:
		return v.validateSetup(value, fields...)
	case *models.SetupRequest:
		return v.validateSetup(*value, fields...)

	case models.UnlockRequest:
		return v.validatePin(FieldPin, value.Pin)
	case *models.UnlockRequest:
		return v.validatePin(FieldPin, value.Pin)

	case models.SetPinRequest:
		return v.validatePin(FieldPin, value.Pin)
	case *models.SetPinRequest:
		return v.validatePin(FieldPin, value.Pin)

	case models.ChangePinRequest:
		return v.validateChangePin(value, fields...)
	case *models.ChangePinRequest:
		return v.validateChangePin(*value, fields...)

	case models.MoodInput:
		return v.validateMood(value, fields...)
	case *models.MoodInput:
		return v.validateMood(*value, fields...)

	case models.JournalInput:
		return v.validateJournal(value, fields...)
	case *models.JournalInput:
		return v.validateJournal(*value, fields...)

	case models.PreferencesUpdate:
		return v.validatePreferences(value, fields...)
	case *models.PreferencesUpdate:
		return v.validatePreferences(*value, fields...)
	}

	return ErrUnsupportedType
}

func (v *InputValidator) validatePin(field, pin string) error {
	if !IsValidPin(pin) {
		return invalid(field, ErrInvalidPin)
	}
	return nil
}

func (v *InputValidator) validateSetup(request models.SetupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPin}
	}

	for _, f := range fields {
		switch f {
		case FieldPin:
			// the PIN is optional at setup
			if request.Pin == "" {
				continue
			}
			if err := v.validatePin(FieldPin, request.Pin); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateChangePin(request models.ChangePinRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPin, FieldNewPin}
	}

	for _, f := range fields {
		switch f {
		case FieldPin:
			if err := v.validatePin(FieldPin, request.CurrentPin); err != nil {
				return err
			}
		case FieldNewPin:
			if err := v.validatePin(FieldNewPin, request.NewPin); err != nil {
				return err
			}
			if request.NewPin == request.CurrentPin {
				return invalid(FieldNewPin, ErrSamePin)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateMood(input models.MoodInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMood, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldMood:
			if !input.Mood.IsValid() {
				return invalid(FieldMood, ErrInvalidMood)
			}
		case FieldDate:
			if input.Date == "" {
				continue
			}
			if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
				return invalid(FieldDate, ErrInvalidDate)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateJournal(input models.JournalInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldJournalText}
	}

	for _, f := range fields {
		switch f {
		case FieldJournalText:
			text := strings.TrimSpace(input.Text)
			if text == "" {
				return invalid(FieldJournalText, ErrEmptyJournalText)
			}
			if utf8.RuneCountInString(text) > maxJournalRunes {
				return invalid(FieldJournalText, ErrJournalTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validatePreferences(update models.PreferencesUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPreferences, FieldAudioEnv, FieldAudioVolume, FieldTheme}
	}

	for _, f := range fields {
		switch f {
		case FieldPreferences:
			if update == (models.PreferencesUpdate{}) {
				return invalid(FieldPreferences, ErrNoFieldsToUpdate)
			}
		case FieldAudioEnv:
			if update.AudioEnv != nil && !update.AudioEnv.IsValid() {
				return invalid(FieldAudioEnv, ErrInvalidAudioEnv)
			}
		case FieldAudioVolume:
			if update.AudioVolume != nil && (math.IsNaN(*update.AudioVolume) || math.IsInf(*update.AudioVolume, 0)) {
				return invalid(FieldAudioVolume, ErrInvalidVolume)
			}
		case FieldTheme:
			if update.Theme == nil {
				continue
			}
			theme := strings.TrimSpace(*update.Theme)
			if theme == "" || utf8.RuneCountInString(theme) > maxThemeRunes {
				return invalid(FieldTheme, ErrInvalidTheme)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
