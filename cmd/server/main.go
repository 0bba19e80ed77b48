package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/handler"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/server"
	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/internal/store"
	"github.com/MKhiriev/go-aura/internal/workers"
	"github.com/MKhiriev/go-aura/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("aura-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" && buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.Version()
	}

	log.Debug().Str("storage", cfg.Storage.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if _, err = services.LockService.Boot(log.WithContext(ctx)); err != nil {
		if !errors.Is(err, service.ErrDecode) {
			log.Fatal().Err(err).Msg("error booting companion")
		}
		log.Error().Err(err).Msg("stored state is unreadable; it stays untouched until POST /api/reset")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers := workers.NewWorkers(services.LockService, cfg.Workers.AutoLockAfter, log)
	bgWorkers.Run(ctx)
	defer bgWorkers.Stop()

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}
