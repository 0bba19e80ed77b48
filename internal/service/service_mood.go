// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/validators"
	"github.com/MKhiriev/go-aura/models"
)

// StatsWindow is the number of most recent mood entries summarised by Stats.
const StatsWindow = 14

type moodService struct {
	state     StateService
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

func NewMoodService(state StateService, validator validators.Validator, logger *logger.Logger) MoodService {
	return &moodService{
		state:     state,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

// Record upserts the mood entry of input.Date (today when empty). Energy
// defaults to [models.DefaultEnergy] and is clamped to 0..100.
func (m *moodService) Record(ctx context.Context, input models.MoodInput) (models.MoodEntry, error) {
	if err := m.validator.Validate(ctx, input); err != nil {
		return models.MoodEntry{}, err
	}

	entry := models.MoodEntry{
		Date:      input.Date,
		Mood:      input.Mood,
		Note:      input.Note,
		Gratitude: input.Gratitude,
	}
	if entry.Date == "" {
		entry.Date = models.DateKey(m.now())
	}
	energy := models.DefaultEnergy
	if input.Energy != nil {
		energy = clampInt(*input.Energy, 0, 100)
	}
	entry.Energy = &energy

	err := m.state.Update(ctx, func(doc *models.ApplicationState) error {
		doc.Moods = upsertMood(doc.Moods, entry)
		return nil
	})
	if err != nil {
		return entry, err
	}

	logger.FromContext(ctx).Debug().Str("date", entry.Date).Str("mood", string(entry.Mood)).Msg("mood recorded")
	return entry, nil
}

func (m *moodService) Today(ctx context.Context) (*models.MoodEntry, error) {
	doc, err := m.state.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return findMood(doc.Moods, models.DateKey(m.now())), nil
}

func (m *moodService) List(ctx context.Context) ([]models.MoodEntry, error) {
	doc, err := m.state.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Moods, nil
}

// Stats summarises the last [StatsWindow] entries and the current streak.
func (m *moodService) Stats(ctx context.Context) (models.MoodStats, error) {
	doc, err := m.state.Snapshot(ctx)
	if err != nil {
		return models.MoodStats{}, err
	}

	return ComputeStats(doc.Moods, m.now()), nil
}

// ComputeStats summarises moods as of now.
func ComputeStats(moods []models.MoodEntry, now time.Time) models.MoodStats {
	stats := models.MoodStats{
		Counts: make(map[models.Mood]int, len(models.Moods)),
		Total:  len(moods),
		Streak: Streak(moods, now),
		Today:  findMood(moods, models.DateKey(now)),
	}
	for _, mood := range models.Moods {
		stats.Counts[mood] = 0
	}

	window := moods
	if len(window) > StatsWindow {
		window = window[len(window)-StatsWindow:]
	}
	stats.Window = len(window)
	if len(window) == 0 {
		return stats
	}

	sum := 0
	for _, entry := range window {
		stats.Counts[entry.Mood]++
		sum += entry.EnergyOrDefault()
	}
	stats.AverageEnergy = int(math.Round(float64(sum) / float64(len(window))))

	return stats
}

// Streak counts consecutive days with a mood entry, ending today.
func Streak(moods []models.MoodEntry, now time.Time) int {
	days := make(map[string]struct{}, len(moods))
	for _, entry := range moods {
		days[entry.Date] = struct{}{}
	}

	streak := 0
	for day := now; ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[models.DateKey(day)]; !ok {
			return streak
		}
		streak++
	}
}

// upsertMood replaces the entry with the same date or inserts entry, keeping
// moods ordered by date.
func upsertMood(moods []models.MoodEntry, entry models.MoodEntry) []models.MoodEntry {
	for i := range moods {
		if moods[i].Date == entry.Date {
			moods[i] = entry
			return moods
		}
	}

	moods = append(moods, entry)
	sort.SliceStable(moods, func(i, j int) bool { return moods[i].Date < moods[j].Date })
	return moods
}

func findMood(moods []models.MoodEntry, date string) *models.MoodEntry {
	for i := range moods {
		if moods[i].Date == date {
			entry := moods[i]
			return &entry
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
