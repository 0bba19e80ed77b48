package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the companion.
type TUI struct {
	companion service.Companion
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(companion service.Companion, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if companion == nil {
		return nil, errors.New("tui: companion is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{
		companion:      companion,
		buildInfo:      buildInfo,
		logger:         log,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// Run boots the companion and blocks until the user quits. It returns
// [ErrUserQuit] when the program was left with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	startPage, err := t.boot(ctx)
	if err != nil {
		return err
	}

	root := NewRootModel(ctx, t.companion, t.pages(ctx), startPage, t.buildInfo)
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)

	finalModel, runErr := tea.NewProgram(root, options...).Run()
	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", runErr)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// boot resolves the lock state and returns the first page to show.
func (t *TUI) boot(ctx context.Context) (string, error) {
	status, err := t.companion.Boot(ctx)
	if err != nil {
		if errors.Is(err, service.ErrDecode) {
			t.logger.Warn().Err(err).Msg("stored state is unreadable, offering reset")
			return pageRecover, nil
		}
		return "", fmt.Errorf("boot companion: %w", err)
	}

	return startPageFor(status), nil
}

func startPageFor(status models.Status) string {
	switch status.State {
	case models.LockStateFirstRun:
		return pageSetup
	case models.LockStateLocked:
		return pageLock
	default:
		return pageHome
	}
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageSetup:    NewSetupModel(ctx, t.companion),
		pageRecover:  NewRecoverModel(ctx, t.companion),
		pageLock:     NewLockModel(ctx, t.companion),
		pageHome:     NewHomeModel(ctx, t.companion),
		pageMood:     NewMoodModel(ctx, t.companion),
		pageJournal:  NewJournalModel(ctx, t.companion),
		pageSettings: NewSettingsModel(ctx, t.companion),
		pagePin:      NewPinModel(ctx, t.companion),
	}
}
