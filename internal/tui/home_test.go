package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-aura/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadHome(t *testing.T, m *HomeModel) {
	t.Helper()

	msg, ok := m.cmdLoad()().(homeLoadedMsg)
	require.True(t, ok)
	_, _ = m.Update(msg)
}

func TestGreeting(t *testing.T) {
	at := func(hour int) time.Time { return time.Date(2026, 3, 1, hour, 0, 0, 0, time.UTC) }

	tests := []struct {
		name string
		now  time.Time
		user string
		want string
	}{
		{"morning", at(8), "Ada", "Good morning, Ada."},
		{"afternoon", at(13), "Ada", "Good afternoon, Ada."},
		{"evening", at(21), "", "Good evening."},
		{"night", at(2), "Ada", "Good evening, Ada."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, greeting(tt.now, tt.user))
		})
	}
}

func TestRenderStats(t *testing.T) {
	assert.Equal(t, "No check-ins yet.", renderStats(models.MoodStats{}))

	out := renderStats(models.MoodStats{
		Window:        7,
		Total:         3,
		Streak:        2,
		AverageEnergy: 60,
		Counts:        map[models.Mood]int{models.MoodCalm: 2},
	})
	assert.Contains(t, out, "Streak: 2 day(s)")
	assert.Contains(t, out, "average energy 60")
	assert.Contains(t, out, "■■ 2")
}

func TestHomeModel_Load(t *testing.T) {
	ctx := context.Background()
	companion := newUnlockedCompanion(t, "2468")
	_, err := companion.RecordMood(ctx, models.MoodInput{Mood: models.MoodCalm, Note: "slow morning"})
	require.NoError(t, err)

	m := NewHomeModel(ctx, companion)
	m.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local) }
	m.Init()
	assert.Contains(t, m.View(), "loading...")

	loadHome(t, m)
	view := m.View()
	assert.Contains(t, view, "Good morning, Ada.")
	assert.Contains(t, view, "Today: calm, energy 55")
	assert.Contains(t, view, "slow morning")
	assert.Contains(t, view, "l: lock")
}

func TestHomeModel_Keys(t *testing.T) {
	tests := []struct {
		key  string
		page string
	}{
		{"m", pageMood},
		{"j", pageJournal},
		{"s", pageSettings},
	}

	m := NewHomeModel(context.Background(), newUnlockedCompanion(t, ""))
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, cmd := m.Update(runes(tt.key))
			requireNavigate(t, cmd, tt.page)
		})
	}

	_, cmd := m.Update(runes("q"))
	assert.Equal(t, tea.Quit(), run(t, cmd))
}

func TestHomeModel_Lock(t *testing.T) {
	t.Run("without a PIN", func(t *testing.T) {
		m := NewHomeModel(context.Background(), newUnlockedCompanion(t, ""))
		loadHome(t, m)

		_, cmd := m.Update(runes("l"))
		assert.Nil(t, cmd)
		assert.Equal(t, "Set a PIN in settings to lock Aura.", m.errMsg)
	})

	t.Run("with a PIN", func(t *testing.T) {
		m := NewHomeModel(context.Background(), newUnlockedCompanion(t, "2468"))
		loadHome(t, m)

		_, cmd := m.Update(runes("l"))
		_, cmd = m.Update(run(t, cmd))
		nav := requireNavigate(t, cmd, pageLock)
		assert.Equal(t, noticeMsg{text: "Locked."}, nav.Payload)
	})
}

func TestHomeModel_Notice(t *testing.T) {
	m := NewHomeModel(context.Background(), newUnlockedCompanion(t, ""))

	_, cmd := m.Update(noticeMsg{text: "Entry saved."})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Entry saved.", m.notice)

	_, _ = m.Update(clearStatusMsg{})
	assert.Empty(t, m.notice)
}
