package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"wrong pin", service.ErrWrongPin, "Wrong PIN. Try again."},
		{"wrapped", fmt.Errorf("unlock: %w", service.ErrLocked), "Aura is locked."},
		{"storage", service.ErrStorageUnavailable, "Could not save. Your changes are kept until the next successful save."},
		{"validation", &validators.ValidationError{Field: validators.FieldPin, Err: validators.ErrInvalidPin}, capitalize(validators.ErrInvalidPin.Error()) + "."},
		{"daemon down", errors.New(`Post "http://127.0.0.1:8080/api/unlock": dial tcp 127.0.0.1:8080: connect: connection refused`), "The aura daemon is not reachable."},
		{"other", errors.New("something odd"), "Something odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "café", fitText("café", 4))
	assert.Equal(t, "日本", fitText("日本語のテキスト", 2))
	assert.Equal(t, "anything", fitText("anything", 0))
}
