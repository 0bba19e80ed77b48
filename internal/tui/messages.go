package tui

import (
	"github.com/MKhiriev/go-aura/models"
)

// Page names understood by [RootModel].
const (
	pageSetup    = "setup"
	pageRecover  = "recover"
	pageLock     = "lock"
	pageHome     = "home"
	pageMood     = "mood"
	pageJournal  = "journal"
	pageSettings = "settings"
	pagePin      = "pin"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// noticeMsg carries a one-line confirmation shown by the receiving page.
type noticeMsg struct {
	text string
}

type statusTickMsg struct{}

type statusLoadedMsg struct {
	status models.Status
	err    error
}

// unlockedMsg is the result of setup and unlock attempts.
type unlockedMsg struct {
	status models.Status
	err    error
}

type homeLoadedMsg struct {
	doc    models.ApplicationState
	stats  models.MoodStats
	status models.Status
	err    error
}

type journalLoadedMsg struct {
	entries []models.JournalEntry
	err     error
}

type settingsLoadedMsg struct {
	doc    models.ApplicationState
	status models.Status
	err    error
}

// doneMsg reports a finished action; next names the page to open on success.
type doneMsg struct {
	notice string
	next   string
	err    error
}

type clearStatusMsg struct{}
