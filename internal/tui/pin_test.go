package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinModel_SetPin(t *testing.T) {
	ctx := context.Background()
	companion := newUnlockedCompanion(t, "")
	m := NewPinModel(ctx, companion)
	_, _ = m.Update(pinModeMsg{mode: pinModeSet})
	assert.Len(t, m.inputs(), 2)
	assert.Contains(t, m.View(), "SET A PIN")

	_, cmd := send(m, runes("2468"), keyPress(tea.KeyTab), runes("2468"), keyPress(tea.KeyEnter))
	done, ok := run(t, cmd).(doneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	_, cmd = m.Update(done)
	nav := requireNavigate(t, cmd, pageSettings)
	assert.Equal(t, noticeMsg{text: "PIN set. Aura will ask for it on the next start."}, nav.Payload)

	status, err := companion.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.PinConfigured)
}

func TestPinModel_ChangePin(t *testing.T) {
	ctx := context.Background()
	companion := newUnlockedCompanion(t, "2468")
	m := NewPinModel(ctx, companion)
	_, _ = m.Update(pinModeMsg{mode: pinModeChange})
	assert.Len(t, m.inputs(), 3)

	t.Run("wrong current PIN", func(t *testing.T) {
		_, cmd := send(m,
			runes("1111"), keyPress(tea.KeyTab),
			runes("1357"), keyPress(tea.KeyTab),
			runes("1357"), keyPress(tea.KeyEnter),
		)
		_, next := m.Update(run(t, cmd))
		assert.Nil(t, next)
		assert.Equal(t, "Wrong PIN. Try again.", m.errMsg)
	})

	t.Run("correct current PIN", func(t *testing.T) {
		_, _ = m.Update(pinModeMsg{mode: pinModeChange})

		_, cmd := send(m,
			runes("2468"), keyPress(tea.KeyTab),
			runes("1357"), keyPress(tea.KeyTab),
			runes("1357"), keyPress(tea.KeyEnter),
		)
		_, cmd = m.Update(run(t, cmd))
		nav := requireNavigate(t, cmd, pageSettings)
		assert.Equal(t, noticeMsg{text: "PIN changed."}, nav.Payload)

		_, err := companion.Lock(ctx)
		require.NoError(t, err)
		_, err = companion.Unlock(ctx, "1357")
		require.NoError(t, err)
	})
}

func TestPinModel_Mismatch(t *testing.T) {
	m := NewPinModel(context.Background(), newUnlockedCompanion(t, ""))
	_, _ = m.Update(pinModeMsg{mode: pinModeSet})

	_, cmd := send(m, runes("2468"), keyPress(tea.KeyTab), runes("8642"), keyPress(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, "The two PINs do not match", m.errMsg)
}

func TestPinModel_FocusCycles(t *testing.T) {
	m := NewPinModel(context.Background(), newUnlockedCompanion(t, "2468"))
	_, _ = m.Update(pinModeMsg{mode: pinModeChange})

	_, _ = send(m, keyPress(tea.KeyTab), keyPress(tea.KeyTab), keyPress(tea.KeyTab))
	assert.Equal(t, 0, m.focus)
	assert.True(t, m.current.Focused())

	_, _ = m.Update(keyPress(tea.KeyShiftTab))
	assert.Equal(t, 2, m.focus)
	assert.True(t, m.confirm.Focused())
	assert.False(t, m.current.Focused())

	_, cmd := m.Update(keyPress(tea.KeyEsc))
	requireNavigate(t, cmd, pageSettings)
}
