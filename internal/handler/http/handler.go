package http

import (
	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/internal/utils"
)

type Handler struct {
	services *service.Services

	// hashKey enables the HashSHA256 integrity check when non-empty.
	hashKey string
	limiter *rateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().
		Bool("integrity_check", cfg.App.HashKey != "").
		Float64("pin_rate_limit", cfg.Server.RateLimit.RPS).
		Msg("http handler created")

	return &Handler{
		services: services,
		hashKey:  cfg.App.HashKey,
		limiter:  newRateLimiter(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst),
		logger:   logger,
	}
}
