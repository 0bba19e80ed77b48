package models

// ExportKind selects the export file format.
type ExportKind string

// Export kinds.
const (
	ExportKindJSON    ExportKind = "json"
	ExportKindJournal ExportKind = "journal"
)

// Export is a rendered export ready to be written or downloaded.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}
