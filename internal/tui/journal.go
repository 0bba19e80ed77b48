package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// journalPreview is the number of recent entries listed under the editor.
const journalPreview = 5

// JournalModel writes new entries and lists the most recent ones.
type JournalModel struct {
	ctx       context.Context
	companion service.Companion

	editor  textarea.Model
	entries []models.JournalEntry

	submitting bool
	errMsg     string
	notice     string
}

func NewJournalModel(ctx context.Context, companion service.Companion) *JournalModel {
	editor := textarea.New()
	editor.Placeholder = "Write freely..."
	editor.SetWidth(60)
	editor.SetHeight(5)
	editor.ShowLineNumbers = false

	return &JournalModel{ctx: ctx, companion: companion, editor: editor}
}

func (m *JournalModel) Init() tea.Cmd {
	m.editor.Reset()
	m.submitting, m.errMsg = false, ""
	return tea.Batch(m.editor.Focus(), m.cmdLoad())
}

func (m *JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.entries = msg.entries
		return m, nil
	case doneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.notice = msg.notice
		m.editor.Reset()
		return m, m.cmdLoad()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.notice = ""
			return m, navigate(pageHome, nil)
		case key.Matches(msg, keys.save):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdAdd(m.editor.Value())
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *JournalModel) View() string {
	var b strings.Builder
	b.WriteString(m.editor.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nSaving...\n")
	}
	renderFeedback(&b, m.errMsg, m.notice)

	b.WriteString(fmt.Sprintf("\nRecent entries (%d total)\n", len(m.entries)))
	if len(m.entries) == 0 {
		b.WriteString(helpStyle.Render("  nothing written yet"))
		b.WriteString("\n")
	}
	for i := len(m.entries) - 1; i >= 0 && i >= len(m.entries)-journalPreview; i-- {
		entry := m.entries[i]
		text := strings.ReplaceAll(entry.Text, "\n", " ")
		b.WriteString(fmt.Sprintf("  %s  %s\n", entry.Date, fitText(text, 56)))
	}

	return renderPage("JOURNAL", strings.TrimRight(b.String(), "\n"), "ctrl+s: save entry │ esc: back")
}

func (m *JournalModel) cmdLoad() tea.Cmd {
	ctx, companion := m.ctx, m.companion

	return func() tea.Msg {
		doc, err := companion.State(ctx)
		return journalLoadedMsg{entries: doc.Journal, err: err}
	}
}

func (m *JournalModel) cmdAdd(text string) tea.Cmd {
	ctx, companion := m.ctx, m.companion

	return func() tea.Msg {
		if _, err := companion.AddJournal(ctx, models.JournalInput{Text: text}); err != nil {
			return doneMsg{err: err}
		}
		return doneMsg{notice: "Entry saved."}
	}
}
