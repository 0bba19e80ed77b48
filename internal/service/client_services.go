package service

import (
	"context"

	"github.com/MKhiriev/go-aura/internal/adapter"
	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/store"
)

// NewClientCompanion returns the [Companion] used by the terminal client.
// With a daemon address configured the client attaches to it; otherwise it
// opens the local records directly.
func NewClientCompanion(ctx context.Context, cfg config.ClientConfig, logger *logger.Logger) (Companion, func() error, error) {
	if cfg.IsRemote() {
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
		if err != nil {
			return nil, nil, err
		}
		return NewRemoteCompanion(serverAdapter, cfg.App.ExportDir, logger), func() error { return nil }, nil
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, nil, err
	}

	services, err := NewClientServices(storages, cfg, logger)
	if err != nil {
		_ = storages.Close()
		return nil, nil, err
	}

	return NewLocalCompanion(services), storages.Close, nil
}
