// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LockModel asks for the PIN of a sealed installation. ctrl+r offers to
// erase everything for users who forgot their PIN.
type LockModel struct {
	ctx       context.Context
	companion service.Companion

	input      textinput.Model
	submitting bool
	attempts   int
	errMsg     string
	notice     string

	confirmErase bool
}

func NewLockModel(ctx context.Context, companion service.Companion) *LockModel {
	input := newPinInput("PIN")
	input.Focus()

	return &LockModel{
		ctx:       ctx,
		companion: companion,
		input:     input,
	}
}

func (m *LockModel) Init() tea.Cmd {
	m.input.Reset()
	m.input.Focus()
	m.submitting = false
	m.confirmErase = false
	return textinput.Blink
}

func (m *LockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.notice = msg.text
		return m, m.Init()
	case unlockedMsg:
		m.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrWrongPin) {
				m.attempts++
			}
			m.errMsg = humanizeError(msg.err)
			m.input.Reset()
			return m, nil
		}
		m.attempts, m.errMsg, m.notice = 0, "", ""
		return m, navigate(pageHome, nil)
	case doneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(msg.next, noticeMsg{text: msg.notice})
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if m.confirmErase {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirmErase = false
			return m, cmdReset(m.ctx, m.companion)
		case key.Matches(keyMsg, keys.no):
			m.confirmErase = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.erase):
		m.confirmErase = true
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.submitting || m.input.Value() == "" {
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdUnlock(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LockModel) View() string {
	if m.confirmErase {
		return confirmModel{message: "Erase all moods, journal entries and settings? This cannot be undone."}.View()
	}

	var b strings.Builder
	b.WriteString("Aura is locked. Enter your PIN.\n\n")
	b.WriteString("PIN │ ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nUnlocking...\n")
	}
	if m.attempts >= 3 {
		b.WriteString(helpStyle.Render("\nForgot your PIN? ctrl+r erases all data and starts over."))
		b.WriteString("\n")
	}
	renderFeedback(&b, m.errMsg, m.notice)

	return renderPage("LOCKED", strings.TrimRight(b.String(), "\n"), "enter: unlock │ ctrl+r: erase all data")
}

func (m *LockModel) cmdUnlock(pin string) tea.Cmd {
	ctx, companion := m.ctx, m.companion

	return func() tea.Msg {
		status, err := companion.Unlock(ctx, pin)
		return unlockedMsg{status: status, err: err}
	}
}

// cmdReset erases every record and returns to the setup page.
func cmdReset(ctx context.Context, companion service.Companion) tea.Cmd {
	return func() tea.Msg {
		if err := companion.Reset(ctx); err != nil {
			return doneMsg{err: err}
		}
		return doneMsg{next: pageSetup, notice: "All data erased."}
	}
}
