// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// StateVersion is the schema version written into every new document.
const StateVersion = 350

// Limits applied to user-editable document fields.
const (
	// MaxNameLength is the maximum number of runes kept from a display name.
	MaxNameLength = 24
	// MaxJournalEntries is the number of most recent journal entries retained.
	MaxJournalEntries = 120
	// DefaultEnergy is assumed for mood entries recorded without an energy level.
	DefaultEnergy = 55
	// DefaultTheme is the theme applied to a fresh document.
	DefaultTheme = "forest"
)

// ApplicationState is the single protected document holding all user data.
//
// The JSON layout is the persisted form: the State Store either writes it
// verbatim (unprotected installations) or seals it into an [EncryptedEnvelope].
type ApplicationState struct {
	// Version is the document schema version (see [StateVersion]).
	Version int `json:"v"`
	// CreatedAt is the RFC 3339 creation timestamp of the installation.
	CreatedAt string `json:"createdAt"`
	// Name is the user's display name.
	Name string `json:"name"`
	// PinEnabled reports whether a PIN has been configured.
	PinEnabled bool `json:"pinEnabled"`
	// LockEnabled reports whether the next cold start must require the PIN.
	LockEnabled bool `json:"lockEnabled"`

	SoundEnabled bool   `json:"soundEnabled"`
	Haptics      bool   `json:"haptics"`
	SFX          bool   `json:"sfx"`
	Theme        string `json:"theme"`

	// Audio holds the ambient soundscape preferences.
	Audio AudioPreferences `json:"audio"`

	// Moods is ordered by Date ascending with at most one entry per date.
	Moods []MoodEntry `json:"moods"`
	// Journal is ordered by creation time, oldest first.
	Journal []JournalEntry `json:"journal"`
}

// NewApplicationState returns a freshly initialised document stamped with now.
func NewApplicationState(now time.Time) ApplicationState {
	return ApplicationState{
		Version:      StateVersion,
		CreatedAt:    now.UTC().Format(time.RFC3339),
		SoundEnabled: true,
		Haptics:      true,
		SFX:          true,
		Theme:        DefaultTheme,
		Audio:        DefaultAudioPreferences(),
		Moods:        []MoodEntry{},
		Journal:      []JournalEntry{},
	}
}

// Clone returns a deep copy of the document so callers can read it without
// sharing slices with the owned session copy.
func (s ApplicationState) Clone() ApplicationState {
	out := s
	if s.Moods != nil {
		out.Moods = make([]MoodEntry, len(s.Moods))
		for i, entry := range s.Moods {
			if entry.Energy != nil {
				energy := *entry.Energy
				entry.Energy = &energy
			}
			out.Moods[i] = entry
		}
	}
	if s.Journal != nil {
		out.Journal = make([]JournalEntry, len(s.Journal))
		copy(out.Journal, s.Journal)
	}
	return out
}

// Normalize fills fields missing from documents written by older versions.
func (s *ApplicationState) Normalize() {
	if s.Version == 0 {
		s.Version = StateVersion
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	if s.Audio.Env == "" {
		s.Audio.Env = AudioEnvForest
	}
	if s.Audio.Volume == 0 {
		s.Audio.Volume = DefaultAudioVolume
	}
	if s.Moods == nil {
		s.Moods = []MoodEntry{}
	}
	if s.Journal == nil {
		s.Journal = []JournalEntry{}
	}
}
