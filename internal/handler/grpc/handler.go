// Package grpc exposes the companion lock state through the standard gRPC
// health service.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// StateServiceName is the health service that reports SERVING while the
// companion is unlocked.
const StateServiceName = "aura.state"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler creates the health server and keeps [StateServiceName] in sync
// with the lock state.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}

	status := services.LockService.Status(context.Background())
	h.setState(status.State)
	services.LockService.OnStateChange(h.setState)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register installs the health service on server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Shutdown marks every service NOT_SERVING so watchers notice the daemon
// going away.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setState(state models.LockState) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if state == models.LockStateUnlocked {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus(StateServiceName, status)
	h.logger.Debug().Str("state", state.String()).Str("health", status.String()).Msg("health status updated")
}

// UnaryLogging logs every unary call with its duration and status.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	event := h.logger.Info()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	event.Str("method", info.FullMethod).Dur("duration", time.Since(start)).Send()

	return resp, err
}
