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

const (
	setupName = iota
	setupPin
	setupConfirm
)

// SetupModel is the first-run screen: a display name and an optional PIN
// entered twice.
type SetupModel struct {
	ctx       context.Context
	companion service.Companion

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	notice     string
}

func NewSetupModel(ctx context.Context, companion service.Companion) *SetupModel {
	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = models.MaxNameLength
	name.Width = 30
	name.Focus()

	return &SetupModel{
		ctx:       ctx,
		companion: companion,
		inputs:    []textinput.Model{name, newPinInput("optional, 4-8 digits"), newPinInput("repeat the PIN")},
	}
}

func newPinInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 8
	in.Width = 30
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	return in
}

func (m *SetupModel) Init() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = moveFocus(m.inputs, 0, 0)
	m.submitting, m.errMsg = false, ""
	return textinput.Blink
}

func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(noticeMsg); ok {
		m.notice = notice.text
		return m, m.Init()
	}

	if result, ok := msg.(unlockedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.notice = ""
		return m, navigate(pageHome, noticeMsg{text: "Welcome to Aura."})
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.next):
			m.focus = moveFocus(m.inputs, m.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.prev):
			m.focus = moveFocus(m.inputs, m.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			pin := m.inputs[setupPin].Value()
			if pin != m.inputs[setupConfirm].Value() {
				m.errMsg = humanizeError(errPinMismatch)
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSetup(models.SetupRequest{Name: strings.TrimSpace(m.inputs[setupName].Value()), Pin: pin})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SetupModel) View() string {
	var b strings.Builder
	b.WriteString("A quiet place for your moods and thoughts.\n")
	b.WriteString("Everything stays on this device. A PIN encrypts it.\n\n")
	b.WriteString("Name  │ ")
	b.WriteString(m.inputs[setupName].View())
	b.WriteString("\nPIN   │ ")
	b.WriteString(m.inputs[setupPin].View())
	b.WriteString("\nAgain │ ")
	b.WriteString(m.inputs[setupConfirm].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nSetting up...\n")
	}
	renderFeedback(&b, m.errMsg, m.notice)

	return renderPage("WELCOME TO AURA", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: start")
}

func (m *SetupModel) cmdSetup(request models.SetupRequest) tea.Cmd {
	ctx, companion := m.ctx, m.companion

	return func() tea.Msg {
		status, err := companion.Setup(ctx, request)
		return unlockedMsg{status: status, err: err}
	}
}

// moveFocus blurs the focused input and focuses the one delta steps away.
func moveFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
