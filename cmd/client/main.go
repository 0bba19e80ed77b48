package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-aura/internal/client"
	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/internal/tui"
	"github.com/MKhiriev/go-aura/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("aura-client", logDir())
	cfg, err := config.GetClientConfig()
	if err != nil {
		fatal(log, err, "error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		fatal(log, err, "error setting log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	companion, closer, err := service.NewClientCompanion(ctx, *cfg, log)
	if err != nil {
		fatal(log, err, "create companion")
	}

	ui, err := tui.New(companion, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		_ = closer()
		fatal(log, err, "error creating ui")
	}

	app := client.NewApp(companion, ui, cfg.Workers, closer, log)
	if err = app.Run(ctx); err != nil {
		fatal(log, err, "client run error")
	}
}

// fatal logs to the client log file and tells the user, since the log
// file is not on screen.
func fatal(log *logger.Logger, err error, msg string) {
	fmt.Fprintf(os.Stderr, "aura: %s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}

func logDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "aura")
	}
	return filepath.Join(os.TempDir(), "aura")
}
