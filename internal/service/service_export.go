package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/models"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
)

// exportService renders the unlocked document. Exports are written in
// plaintext regardless of the installation's protection.
type exportService struct {
	state     StateService
	exportDir string
	now       func() time.Time
	logger    *logger.Logger
}

func NewExportService(state StateService, exportDir string, logger *logger.Logger) ExportService {
	return &exportService{
		state:     state,
		exportDir: exportDir,
		now:       time.Now,
		logger:    logger,
	}
}

func (e *exportService) Export(ctx context.Context, kind models.ExportKind) (models.Export, error) {
	doc, err := e.state.Snapshot(ctx)
	if err != nil {
		return models.Export{}, err
	}

	fileName, err := ExportFileName(kind, e.now())
	if err != nil {
		return models.Export{}, err
	}

	switch kind {
	case models.ExportKindJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return models.Export{}, fmt.Errorf("marshal export: %w", err)
		}
		return models.Export{FileName: fileName, ContentType: contentTypeJSON, Data: data}, nil

	case models.ExportKindJournal:
		if len(doc.Journal) == 0 {
			return models.Export{}, ErrNothingToExport
		}
		return models.Export{FileName: fileName, ContentType: contentTypeText, Data: []byte(FormatJournal(doc.Journal))}, nil
	}

	return models.Export{}, ErrUnknownExportKind
}

func (e *exportService) WriteExport(ctx context.Context, kind models.ExportKind) (string, error) {
	export, err := e.Export(ctx, kind)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(e.exportDir, 0o700); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(e.exportDir, export.FileName)
	if err = os.WriteFile(path, export.Data, 0o600); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	logger.FromContext(ctx).Info().Str("path", path).Str("kind", string(kind)).Msg("export written")
	return path, nil
}

// ExportFileName returns the download name of an export created at now.
func ExportFileName(kind models.ExportKind, now time.Time) (string, error) {
	switch kind {
	case models.ExportKindJSON:
		return "AURA_export_" + models.DateKey(now) + ".json", nil
	case models.ExportKindJournal:
		return "AURA_journal_" + models.DateKey(now) + ".txt", nil
	}
	return "", ErrUnknownExportKind
}
