package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-aura/internal/mock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecoverModel(t *testing.T) {
	t.Run("erase starts over", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		companion := mock.NewMockCompanion(ctrl)
		companion.EXPECT().Reset(gomock.Any()).Return(nil)

		m := NewRecoverModel(context.Background(), companion)
		assert.Contains(t, m.View(), "DATA CANNOT BE READ")

		_, _ = m.Update(keyPress(tea.KeyCtrlR))
		require.True(t, m.confirmErase)

		_, cmd := m.Update(runes("y"))
		_, cmd = m.Update(run(t, cmd))
		requireNavigate(t, cmd, pageSetup)
	})

	t.Run("failed erase stays", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		companion := mock.NewMockCompanion(ctrl)
		companion.EXPECT().Reset(gomock.Any()).Return(errors.New("read-only file system"))

		m := NewRecoverModel(context.Background(), companion)
		_, _ = m.Update(keyPress(tea.KeyCtrlR))
		_, cmd := m.Update(runes("y"))
		_, cmd = m.Update(run(t, cmd))

		assert.Nil(t, cmd)
		assert.Contains(t, m.View(), "Read-only file system")
	})

	t.Run("q quits without touching data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := NewRecoverModel(context.Background(), mock.NewMockCompanion(ctrl))

		_, cmd := m.Update(runes("q"))
		assert.Equal(t, tea.Quit(), run(t, cmd))
	})
}
