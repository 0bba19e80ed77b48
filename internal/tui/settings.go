package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsItem int

const (
	itemPinLock settingsItem = iota
	itemChangePin
	itemLockNow
	itemSound
	itemHaptics
	itemSFX
	itemAudioOn
	itemAudioEnv
	itemAudioVolume
	itemCopyExport
	itemSaveExport
	itemSaveJournal
	itemErase
)

const volumeStep = 0.05

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// SettingsModel lists lock, sound and data settings. Enter toggles or runs
// the selected item; left and right adjust the volume.
type SettingsModel struct {
	ctx       context.Context
	companion service.Companion

	doc    models.ApplicationState
	status models.Status
	items  []settingsItem
	idx    int

	busy         bool
	confirm      string
	confirmItem  settingsItem
	showError    bool
	errorOverlay errorOverlayModel
	notice       string
}

func NewSettingsModel(ctx context.Context, companion service.Companion) *SettingsModel {
	return &SettingsModel{ctx: ctx, companion: companion}
}

func (m *SettingsModel) Init() tea.Cmd {
	m.busy, m.confirm, m.showError = false, "", false
	return m.cmdLoad()
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.notice = msg.text
		return m, m.Init()
	case settingsLoadedMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.doc, m.status = msg.doc, msg.status
		m.items = visibleItems(m.status)
		m.idx = min(m.idx, len(m.items)-1)
		return m, nil
	case doneMsg:
		m.busy = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, m.cmdLoad()
		}
		if msg.next != "" {
			return m, navigate(msg.next, noticeMsg{text: msg.notice})
		}
		m.notice = msg.notice
		return m, m.cmdLoad()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
		}
		return m, nil
	}

	if m.confirm != "" {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = ""
			m.busy = true
			return m, m.cmdConfirmed(m.confirmItem)
		case key.Matches(msg, keys.no):
			m.confirm = ""
		}
		return m, nil
	}

	if m.busy || len(m.items) == 0 {
		if key.Matches(msg, keys.esc) {
			return m, navigate(pageHome, nil)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.notice = ""
		return m, navigate(pageHome, nil)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.left):
		if m.items[m.idx] == itemAudioVolume {
			return m, m.cmdVolume(-volumeStep)
		}
	case key.Matches(msg, keys.right):
		if m.items[m.idx] == itemAudioVolume {
			return m, m.cmdVolume(volumeStep)
		}
	case key.Matches(msg, keys.enter):
		return m.activate(m.items[m.idx])
	}

	return m, nil
}

func (m *SettingsModel) activate(item settingsItem) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch item {
	case itemPinLock:
		if m.status.PinConfigured {
			m.ask(item, "Remove the PIN? Your data will be stored without encryption.")
			return m, nil
		}
		return m, navigate(pagePin, pinModeMsg{mode: pinModeSet})
	case itemChangePin:
		return m, navigate(pagePin, pinModeMsg{mode: pinModeChange})
	case itemLockNow:
		m.busy = true
		return m, cmdLock(m.ctx, m.companion)
	case itemSound:
		v := !m.doc.SoundEnabled
		return m, m.cmdUpdate(models.PreferencesUpdate{SoundEnabled: &v})
	case itemHaptics:
		v := !m.doc.Haptics
		return m, m.cmdUpdate(models.PreferencesUpdate{Haptics: &v})
	case itemSFX:
		v := !m.doc.SFX
		return m, m.cmdUpdate(models.PreferencesUpdate{SFX: &v})
	case itemAudioOn:
		v := !m.doc.Audio.On
		return m, m.cmdUpdate(models.PreferencesUpdate{AudioOn: &v})
	case itemAudioEnv:
		v := m.doc.Audio.Env.Next()
		return m, m.cmdUpdate(models.PreferencesUpdate{AudioEnv: &v})
	case itemCopyExport:
		m.busy = true
		return m, m.cmdCopyExport()
	case itemSaveExport:
		m.busy = true
		return m, m.cmdSaveExport(models.ExportKindJSON)
	case itemSaveJournal:
		m.busy = true
		return m, m.cmdSaveExport(models.ExportKindJournal)
	case itemErase:
		m.ask(item, "Erase all moods, journal entries and settings? This cannot be undone.")
	}

	return m, nil
}

func (m *SettingsModel) ask(item settingsItem, question string) {
	m.confirmItem = item
	m.confirm = question
}

func (m *SettingsModel) fail(err error) {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: humanizeError(err)}
}

func (m *SettingsModel) View() string {
	if m.showError {
		return m.errorOverlay.View()
	}
	if m.confirm != "" {
		return confirmModel{message: m.confirm}.View()
	}

	var b strings.Builder
	for i, item := range m.items {
		line := m.label(item)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor(i == m.idx))
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString("\nWorking...\n")
	}
	renderFeedback(&b, "", m.notice)

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"), "↑/↓: select │ enter: change │ ←/→: volume │ esc: back")
}

func (m *SettingsModel) label(item settingsItem) string {
	switch item {
	case itemPinLock:
		return "PIN lock: " + onOff(m.status.PinConfigured)
	case itemChangePin:
		return "Change PIN"
	case itemLockNow:
		return "Lock now"
	case itemSound:
		return "Sound: " + onOff(m.doc.SoundEnabled)
	case itemHaptics:
		return "Haptics: " + onOff(m.doc.Haptics)
	case itemSFX:
		return "Sound effects: " + onOff(m.doc.SFX)
	case itemAudioOn:
		return "Ambient sound: " + onOff(m.doc.Audio.On)
	case itemAudioEnv:
		return "Soundscape: " + string(m.doc.Audio.Env)
	case itemAudioVolume:
		return fmt.Sprintf("Volume: %d%%", int(math.Round(m.doc.Audio.Volume*100)))
	case itemCopyExport:
		return "Copy export to clipboard"
	case itemSaveExport:
		return "Save export to file"
	case itemSaveJournal:
		return "Save journal to text file"
	case itemErase:
		return "Erase all data"
	}
	return ""
}

// visibleItems hides the PIN entries that do not apply to status.
func visibleItems(status models.Status) []settingsItem {
	items := []settingsItem{itemPinLock}
	if status.PinConfigured {
		items = append(items, itemChangePin, itemLockNow)
	}
	return append(items,
		itemSound, itemHaptics, itemSFX,
		itemAudioOn, itemAudioEnv, itemAudioVolume,
		itemCopyExport, itemSaveExport, itemSaveJournal,
		itemErase,
	)
}

func (m *SettingsModel) cmdLoad() tea.Cmd {
	ctx, companion := m.ctx, m.companion

	return func() tea.Msg {
		doc, err := companion.State(ctx)
		if err != nil {
			return settingsLoadedMsg{err: err}
		}
		status, err := companion.Status(ctx)
		return settingsLoadedMsg{doc: doc, status: status, err: err}
	}
}

func (m *SettingsModel) cmdUpdate(update models.PreferencesUpdate) tea.Cmd {
	ctx, companion := m.ctx, m.companion

	return func() tea.Msg {
		_, err := companion.UpdatePreferences(ctx, update)
		return doneMsg{err: err}
	}
}

func (m *SettingsModel) cmdVolume(delta float64) tea.Cmd {
	v := models.ClampVolume(math.Round((m.doc.Audio.Volume+delta)*100) / 100)
	return m.cmdUpdate(models.PreferencesUpdate{AudioVolume: &v})
}

func (m *SettingsModel) cmdCopyExport() tea.Cmd {
	ctx, companion := m.ctx, m.companion

	return func() tea.Msg {
		export, err := companion.Export(ctx, models.ExportKindJSON)
		if err != nil {
			return doneMsg{err: err}
		}
		if err = writeClipboard(string(export.Data)); err != nil {
			return doneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return doneMsg{notice: "Export copied to the clipboard."}
	}
}

func (m *SettingsModel) cmdSaveExport(kind models.ExportKind) tea.Cmd {
	ctx, companion := m.ctx, m.companion

	return func() tea.Msg {
		path, err := companion.SaveExport(ctx, kind)
		if err != nil {
			return doneMsg{err: err}
		}
		return doneMsg{notice: "Saved to " + path}
	}
}

func (m *SettingsModel) cmdConfirmed(item settingsItem) tea.Cmd {
	ctx, companion := m.ctx, m.companion

	switch item {
	case itemPinLock:
		return func() tea.Msg {
			if err := companion.DisableLock(ctx); err != nil {
				return doneMsg{err: err}
			}
			return doneMsg{notice: "PIN removed."}
		}
	case itemErase:
		return cmdReset(ctx, companion)
	}
	return nil
}
