package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/validators"
	"github.com/MKhiriev/go-aura/models"
)

type journalService struct {
	state     StateService
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

func NewJournalService(state StateService, validator validators.Validator, logger *logger.Logger) JournalService {
	return &journalService{
		state:     state,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

// Add appends a trimmed entry; only the newest [models.MaxJournalEntries]
// entries are kept.
func (j *journalService) Add(ctx context.Context, input models.JournalInput) (models.JournalEntry, error) {
	if err := j.validator.Validate(ctx, input); err != nil {
		return models.JournalEntry{}, err
	}

	now := j.now()
	entry := models.JournalEntry{
		Timestamp: now.UnixMilli(),
		Date:      models.DateKey(now),
		Text:      strings.TrimSpace(input.Text),
	}

	err := j.state.Update(ctx, func(doc *models.ApplicationState) error {
		doc.Journal = append(doc.Journal, entry)
		if overflow := len(doc.Journal) - models.MaxJournalEntries; overflow > 0 {
			doc.Journal = append([]models.JournalEntry(nil), doc.Journal[overflow:]...)
		}
		return nil
	})
	if err != nil {
		return entry, err
	}

	return entry, nil
}

func (j *journalService) List(ctx context.Context) ([]models.JournalEntry, error) {
	doc, err := j.state.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Journal, nil
}

// ExportText renders every entry as a dated plain-text block.
func (j *journalService) ExportText(ctx context.Context) (string, error) {
	entries, err := j.List(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", ErrNothingToExport
	}

	return FormatJournal(entries), nil
}

// FormatJournal renders entries oldest first, separated by blank lines.
func FormatJournal(entries []models.JournalEntry) string {
	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(entry.Date)
		b.WriteString("\n")
		b.WriteString(entry.Text)
		b.WriteString("\n")
	}
	return b.String()
}
