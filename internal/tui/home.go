package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// HomeModel greets the user and summarises recent moods.
type HomeModel struct {
	ctx       context.Context
	companion service.Companion
	now       func() time.Time

	spinner spinner.Model
	loading bool

	doc    models.ApplicationState
	stats  models.MoodStats
	status models.Status
	errMsg string
	notice string
}

func NewHomeModel(ctx context.Context, companion service.Companion) *HomeModel {
	return &HomeModel{
		ctx:       ctx,
		companion: companion,
		now:       time.Now,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *HomeModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.notice = msg.text
		return m, tea.Batch(m.Init(), clearStatusAfter())
	case clearStatusMsg:
		m.notice = ""
		return m, nil
	case homeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.doc, m.stats, m.status = msg.doc, msg.stats, msg.status
		return m, nil
	case doneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(msg.next, noticeMsg{text: msg.notice})
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.mood):
			return m, navigate(pageMood, nil)
		case key.Matches(msg, keys.journal):
			return m, navigate(pageJournal, nil)
		case key.Matches(msg, keys.settings):
			return m, navigate(pageSettings, nil)
		case key.Matches(msg, keys.lock):
			if !m.status.PinConfigured {
				m.errMsg = "Set a PIN in settings to lock Aura."
				return m, nil
			}
			return m, cmdLock(m.ctx, m.companion)
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...\n")
	} else {
		b.WriteString(greeting(m.now(), m.doc.Name))
		b.WriteString("\n\n")
		b.WriteString(renderToday(m.stats.Today))
		b.WriteString("\n")
		b.WriteString(renderStats(m.stats))
		b.WriteString(fmt.Sprintf("\nJournal entries: %d\n", len(m.doc.Journal)))
		if m.status.Dirty {
			b.WriteString(errorStyle.Render("\nSome changes are not saved yet."))
			b.WriteString("\n")
		}
	}
	renderFeedback(&b, m.errMsg, m.notice)

	hotKeys := "m: mood │ j: journal │ s: settings │ v: version │ q: quit"
	if m.status.PinConfigured {
		hotKeys = "m: mood │ j: journal │ s: settings │ l: lock │ v: version │ q: quit"
	}
	return renderPage("AURA", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *HomeModel) cmdLoad() tea.Cmd {
	ctx, companion := m.ctx, m.companion

	return func() tea.Msg {
		doc, err := companion.State(ctx)
		if err != nil {
			return homeLoadedMsg{err: err}
		}
		stats, err := companion.Stats(ctx)
		if err != nil {
			return homeLoadedMsg{err: err}
		}
		status, err := companion.Status(ctx)
		return homeLoadedMsg{doc: doc, stats: stats, status: status, err: err}
	}
}

func cmdLock(ctx context.Context, companion service.Companion) tea.Cmd {
	return func() tea.Msg {
		if _, err := companion.Lock(ctx); err != nil {
			return doneMsg{err: err}
		}
		return doneMsg{next: pageLock, notice: "Locked."}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// greeting picks a salutation from the hour of now.
func greeting(now time.Time, name string) string {
	var salutation string
	switch h := now.Hour(); {
	case h >= 5 && h < 12:
		salutation = "Good morning"
	case h >= 12 && h < 18:
		salutation = "Good afternoon"
	default:
		salutation = "Good evening"
	}

	if name == "" {
		return salutation + "."
	}
	return salutation + ", " + name + "."
}

func renderToday(today *models.MoodEntry) string {
	if today == nil {
		return "Today: no mood recorded yet. Press m to check in."
	}

	line := fmt.Sprintf("Today: %s, energy %d", today.Mood, today.EnergyOrDefault())
	if today.Note != "" {
		line += "\n  " + fitText(today.Note, 60)
	}
	return line
}

func renderStats(stats models.MoodStats) string {
	if stats.Total == 0 {
		return "No check-ins yet."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Streak: %d day(s) │ Check-ins: %d\n", stats.Streak, stats.Total))
	b.WriteString(fmt.Sprintf("Last %d check-ins │ average energy %d\n", stats.Window, stats.AverageEnergy))
	for _, mood := range models.Moods {
		b.WriteString(fmt.Sprintf("  %-6s %s %d\n", mood, strings.Repeat("■", stats.Counts[mood]), stats.Counts[mood]))
	}
	return strings.TrimRight(b.String(), "\n")
}
