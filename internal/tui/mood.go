package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Rows of the mood form.
const (
	moodRowMood = iota
	moodRowEnergy
	moodRowNote
	moodRowGratitude
	moodRows
)

const energyStep = 5

// MoodModel records today's mood. Moods and energy are picked with the
// arrow keys; note and gratitude are free text.
type MoodModel struct {
	ctx       context.Context
	companion service.Companion

	moodIdx   int
	energy    int
	note      textinput.Model
	gratitude textinput.Model
	row       int

	submitting bool
	errMsg     string
}

func NewMoodModel(ctx context.Context, companion service.Companion) *MoodModel {
	note := textinput.New()
	note.Placeholder = "what is on your mind?"
	note.CharLimit = 280
	note.Width = 50

	gratitude := textinput.New()
	gratitude.Placeholder = "one thing you are grateful for"
	gratitude.CharLimit = 280
	gratitude.Width = 50

	return &MoodModel{
		ctx:       ctx,
		companion: companion,
		energy:    models.DefaultEnergy,
		note:      note,
		gratitude: gratitude,
	}
}

func (m *MoodModel) Init() tea.Cmd {
	m.moodIdx, m.energy, m.row = 0, models.DefaultEnergy, moodRowMood
	m.submitting, m.errMsg = false, ""
	m.note.Reset()
	m.gratitude.Reset()
	m.focusRow()
	return nil
}

func (m *MoodModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(doneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		return m, navigate(result.next, noticeMsg{text: result.notice})
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageHome, nil)
		case key.Matches(keyMsg, keys.next):
			m.row = (m.row + 1) % moodRows
			m.focusRow()
			return m, nil
		case key.Matches(keyMsg, keys.prev):
			m.row = (m.row - 1 + moodRows) % moodRows
			m.focusRow()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdRecord(m.input())
		}

		if m.row == moodRowMood || m.row == moodRowEnergy {
			m.adjust(keyMsg)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.row {
	case moodRowNote:
		m.note, cmd = m.note.Update(msg)
	case moodRowGratitude:
		m.gratitude, cmd = m.gratitude.Update(msg)
	}
	return m, cmd
}

// adjust handles left and right on the mood and energy rows.
func (m *MoodModel) adjust(msg tea.KeyMsg) {
	delta := 0
	switch {
	case key.Matches(msg, keys.left):
		delta = -1
	case key.Matches(msg, keys.right):
		delta = 1
	default:
		return
	}

	if m.row == moodRowMood {
		m.moodIdx = (m.moodIdx + delta + len(models.Moods)) % len(models.Moods)
		return
	}
	m.energy = min(max(m.energy+delta*energyStep, 0), 100)
}

func (m *MoodModel) focusRow() {
	m.note.Blur()
	m.gratitude.Blur()
	switch m.row {
	case moodRowNote:
		m.note.Focus()
	case moodRowGratitude:
		m.gratitude.Focus()
	}
}

func (m *MoodModel) input() models.MoodInput {
	energy := m.energy
	return models.MoodInput{
		Mood:      models.Moods[m.moodIdx],
		Energy:    &energy,
		Note:      strings.TrimSpace(m.note.Value()),
		Gratitude: strings.TrimSpace(m.gratitude.Value()),
	}
}

func (m *MoodModel) View() string {
	var b strings.Builder
	b.WriteString("How are you feeling today?\n\n")

	b.WriteString(cursor(m.row == moodRowMood))
	b.WriteString("Mood      ")
	for i, mood := range models.Moods {
		if i == m.moodIdx {
			b.WriteString(selectedStyle.Render("[" + string(mood) + "]"))
		} else {
			b.WriteString(" " + string(mood) + " ")
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	b.WriteString(cursor(m.row == moodRowEnergy))
	b.WriteString(fmt.Sprintf("Energy    %s %d\n", energyBar(m.energy), m.energy))

	b.WriteString(cursor(m.row == moodRowNote))
	b.WriteString("Note      ")
	b.WriteString(m.note.View())
	b.WriteString("\n")

	b.WriteString(cursor(m.row == moodRowGratitude))
	b.WriteString("Grateful  ")
	b.WriteString(m.gratitude.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nSaving...\n")
	}
	renderFeedback(&b, m.errMsg, "")

	return renderPage("CHECK IN", strings.TrimRight(b.String(), "\n"), "tab/↑/↓: row │ ←/→: change │ enter: save │ esc: back")
}

func (m *MoodModel) cmdRecord(input models.MoodInput) tea.Cmd {
	ctx, companion := m.ctx, m.companion

	return func() tea.Msg {
		entry, err := companion.RecordMood(ctx, input)
		if err != nil {
			return doneMsg{err: err}
		}
		return doneMsg{next: pageHome, notice: "Recorded " + string(entry.Mood) + " for " + entry.Date + "."}
	}
}

func energyBar(energy int) string {
	filled := energy / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
