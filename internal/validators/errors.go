package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every error returned from a [Validator], so
// callers can treat malformed input uniformly with errors.Is.
var ErrValidation = errors.New("validation error")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPin       = errors.New("pin must be 4 to 8 digits")
	ErrSamePin          = errors.New("new pin must differ from the current one")
	ErrInvalidMood      = errors.New("invalid mood")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrEmptyJournalText = errors.New("journal text is required")
	ErrJournalTooLong   = errors.New("journal text is too long")
	ErrInvalidAudioEnv  = errors.New("invalid audio environment")
	ErrInvalidVolume    = errors.New("invalid audio volume")
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

// ValidationError reports which field failed and why.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap exposes both [ErrValidation] and the specific reason.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
