package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusPollInterval = 2 * time.Second

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) follows lock state changes made outside the UI (auto-lock, reset)
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx       context.Context
	companion service.Companion

	pages    map[string]tea.Model
	current  tea.Model
	pageName string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, companion service.Companion, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		companion: companion,
		pages:     pages,
		current:   pages[startPage],
		pageName:  startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return tea.Batch(r.current.Init(), pollStatus())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyCtrlC:
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.pageName == pageHome:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)
	case statusTickMsg:
		return r, r.cmdStatus()
	case statusLoadedMsg:
		if msg.err != nil {
			return r, pollStatus()
		}
		if page, notice := r.redirectFor(msg.status.State); page != "" {
			next, cmd := r.navigate(NavigateTo{Page: page, Payload: noticeMsg{text: notice}})
			return next, tea.Batch(cmd, pollStatus())
		}
		return r, pollStatus()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.pageName = nav.Page

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, r.current.Init()
}

// redirectFor returns the page that must replace the current one when the
// companion changed state behind the UI's back.
func (r RootModel) redirectFor(state models.LockState) (page, notice string) {
	switch r.pageName {
	case pageRecover, pageLock, pageSetup:
		return "", ""
	}

	switch state {
	case models.LockStateLocked:
		return pageLock, "Locked after inactivity."
	case models.LockStateFirstRun:
		return pageSetup, ""
	}
	return "", ""
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("AURA", "", "")
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) cmdStatus() tea.Cmd {
	if r.companion == nil {
		return nil
	}
	ctx, companion := r.ctx, r.companion

	return func() tea.Msg {
		status, err := companion.Status(ctx)
		return statusLoadedMsg{status: status, err: err}
	}
}

func pollStatus() tea.Cmd {
	return tea.Tick(statusPollInterval, func(time.Time) tea.Msg { return statusTickMsg{} })
}
