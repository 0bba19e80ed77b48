package tui

import (
	"context"

	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RecoverModel is shown when the stored data cannot be decoded. The only
// ways out are erasing everything or quitting.
type RecoverModel struct {
	ctx       context.Context
	companion service.Companion

	confirmErase bool
	errMsg       string
}

func NewRecoverModel(ctx context.Context, companion service.Companion) *RecoverModel {
	return &RecoverModel{ctx: ctx, companion: companion}
}

func (m *RecoverModel) Init() tea.Cmd {
	return nil
}

func (m *RecoverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(msg.next, noticeMsg{text: msg.notice})
	case tea.KeyMsg:
		if m.confirmErase {
			switch {
			case key.Matches(msg, keys.yes):
				m.confirmErase = false
				return m, cmdReset(m.ctx, m.companion)
			case key.Matches(msg, keys.no):
				m.confirmErase = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.erase):
			m.confirmErase = true
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *RecoverModel) View() string {
	if m.confirmErase {
		return confirmModel{message: "Erase the damaged data and start over?"}.View()
	}

	body := "The stored data is damaged and cannot be read.\n" +
		"Nothing has been changed. You can keep the data directory for later\n" +
		"inspection and quit, or erase it and start over."
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render(m.errMsg)
	}

	return renderPage("DATA CANNOT BE READ", body, "ctrl+r: erase and start over │ q: quit")
}
