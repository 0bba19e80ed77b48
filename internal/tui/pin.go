package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type pinMode int

const (
	pinModeSet pinMode = iota
	pinModeChange
)

// pinModeMsg opens [PinModel] in the given mode.
type pinModeMsg struct {
	mode pinMode
}

// PinModel sets a first PIN or changes the current one. The new PIN is
// entered twice.
type PinModel struct {
	ctx       context.Context
	companion service.Companion

	mode       pinMode
	current    textinput.Model
	next       textinput.Model
	confirm    textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewPinModel(ctx context.Context, companion service.Companion) *PinModel {
	return &PinModel{
		ctx:       ctx,
		companion: companion,
		current:   newPinInput("current PIN"),
		next:      newPinInput("new PIN, 4-8 digits"),
		confirm:   newPinInput("repeat the new PIN"),
	}
}

func (m *PinModel) Init() tea.Cmd {
	m.current.Reset()
	m.next.Reset()
	m.confirm.Reset()
	m.submitting, m.errMsg = false, ""
	m.focus = 0
	m.syncFocus()
	return textinput.Blink
}

func (m *PinModel) inputs() []*textinput.Model {
	if m.mode == pinModeChange {
		return []*textinput.Model{&m.current, &m.next, &m.confirm}
	}
	return []*textinput.Model{&m.next, &m.confirm}
}

func (m *PinModel) syncFocus() {
	for i, in := range m.inputs() {
		if i == m.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *PinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pinModeMsg:
		m.mode = msg.mode
		return m, m.Init()
	case doneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageSettings, noticeMsg{text: msg.notice})
	case tea.KeyMsg:
		count := len(m.inputs())
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageSettings, nil)
		case key.Matches(msg, keys.next):
			m.focus = (m.focus + 1) % count
			m.syncFocus()
			return m, nil
		case key.Matches(msg, keys.prev):
			m.focus = (m.focus - 1 + count) % count
			m.syncFocus()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if m.next.Value() != m.confirm.Value() {
				m.errMsg = humanizeError(errPinMismatch)
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit()
		}
	}

	focused := m.inputs()[m.focus]
	var cmd tea.Cmd
	*focused, cmd = focused.Update(msg)
	return m, cmd
}

func (m *PinModel) View() string {
	var b strings.Builder
	title := "SET A PIN"
	if m.mode == pinModeChange {
		title = "CHANGE PIN"
		b.WriteString("Current │ ")
		b.WriteString(m.current.View())
		b.WriteString("\n")
	} else {
		b.WriteString("The PIN encrypts everything Aura stores.\n")
		b.WriteString("There is no way to recover it.\n\n")
	}
	b.WriteString("New     │ ")
	b.WriteString(m.next.View())
	b.WriteString("\nAgain   │ ")
	b.WriteString(m.confirm.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nEncrypting...\n")
	}
	renderFeedback(&b, m.errMsg, "")

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: save │ esc: cancel")
}

func (m *PinModel) cmdSubmit() tea.Cmd {
	ctx, companion := m.ctx, m.companion
	mode, current, next := m.mode, m.current.Value(), m.next.Value()

	return func() tea.Msg {
		if mode == pinModeChange {
			if err := companion.ChangePin(ctx, models.ChangePinRequest{CurrentPin: current, NewPin: next}); err != nil {
				return doneMsg{err: err}
			}
			return doneMsg{notice: "PIN changed."}
		}

		if err := companion.SetPin(ctx, next); err != nil {
			return doneMsg{err: err}
		}
		return doneMsg{notice: "PIN set. Aura will ask for it on the next start."}
	}
}
