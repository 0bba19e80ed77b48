package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/internal/tui"
	"github.com/MKhiriev/go-aura/internal/workers"
)

// App runs the terminal UI over a companion. In local mode the companion
// also drives the auto-lock worker; a daemon runs its own.
type App struct {
	ui      UI
	workers *workers.Workers
	closer  func() error
	logger  *logger.Logger
}

// NewApp wires ui to companion. closer releases the companion's storage and
// is called once when Run returns; it may be nil.
func NewApp(companion service.Companion, ui UI, cfg config.ClientWorkers, closer func() error, log *logger.Logger) *App {
	ws := &workers.Workers{}
	if locker, ok := companion.(workers.IdleLocker); ok {
		ws = workers.NewWorkers(locker, cfg.AutoLockAfter, log)
	}

	return &App{
		ui:      ui,
		workers: ws,
		closer:  closer,
		logger:  log,
	}
}

// Run blocks until the UI exits. Leaving with ctrl+c is not an error.
func (a *App) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer func() {
		if a.closer == nil {
			return
		}
		if closeErr := a.closer(); closeErr != nil {
			a.logger.Err(closeErr).Msg("failed to close storage")
			err = errors.Join(err, fmt.Errorf("close storage: %w", closeErr))
		}
	}()

	a.workers.Run(ctx)
	defer a.workers.Stop()

	a.logger.Info().Msg("client started")
	if err = a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
