// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateLayout is the calendar date key format used by mood and journal entries.
const DateLayout = "2006-01-02"

// Mood is one of the fixed mood categories.
type Mood string

// Mood categories.
const (
	MoodCalm  Mood = "calm"
	MoodTense Mood = "tense"
	MoodTired Mood = "tired"
	MoodDown  Mood = "down"
)

// Moods lists every mood category in display order.
var Moods = []Mood{MoodCalm, MoodTense, MoodTired, MoodDown}

// IsValid reports whether m is a known mood category.
func (m Mood) IsValid() bool {
	switch m {
	case MoodCalm, MoodTense, MoodTired, MoodDown:
		return true
	}
	return false
}

// MoodEntry is a single day's mood record. Date is the upsert key.
type MoodEntry struct {
	Date      string `json:"date"`
	Mood      Mood   `json:"mood"`
	Energy    *int   `json:"energy,omitempty"`
	Note      string `json:"note,omitempty"`
	Gratitude string `json:"gratitude,omitempty"`
}

// EnergyOrDefault returns the recorded energy, or [DefaultEnergy] when the
// entry carries none.
func (e MoodEntry) EnergyOrDefault() int {
	if e.Energy == nil {
		return DefaultEnergy
	}
	return *e.Energy
}

// MoodInput is the payload accepted when recording a mood.
type MoodInput struct {
	// Date defaults to today when empty.
	Date      string `json:"date,omitempty"`
	Mood      Mood   `json:"mood"`
	Energy    *int   `json:"energy,omitempty"`
	Note      string `json:"note,omitempty"`
	Gratitude string `json:"gratitude,omitempty"`
}

// MoodStats summarises the most recent mood entries.
type MoodStats struct {
	// Window is the number of entries considered.
	Window        int          `json:"window"`
	Counts        map[Mood]int `json:"counts"`
	AverageEnergy int          `json:"averageEnergy"`
	Streak        int          `json:"streak"`
	Total         int          `json:"total"`
	Today         *MoodEntry   `json:"today,omitempty"`
}

// DateKey formats t as a calendar date key in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
