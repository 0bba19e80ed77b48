package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/internal/store"
	"github.com/MKhiriev/go-aura/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	cfg := config.StructuredConfig{App: config.App{
		TokenIssuer:   "aura",
		TokenDuration: time.Hour,
		Version:       "1.0.0",
		ExportDir:     t.TempDir(),
	}}
	services, err := service.NewServices(&store.Storages{Records: store.NewMemoryRecordRepository()}, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = services.LockService.Boot(context.Background())
	require.NoError(t, err)

	return services
}

// newHealthClient serves h over an in-memory listener.
func newHealthClient(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLogging))
	h.Register(server)
	go server.Serve(listener)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: StateServiceName})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealth_FollowsLockState(t *testing.T) {
	ctx := context.Background()
	services := newTestServices(t)
	client := newHealthClient(t, NewHandler(services, logger.Nop()))

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client))

	require.NoError(t, services.LockService.Setup(ctx, models.SetupRequest{Name: "Ada", Pin: "1234"}))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client))

	require.NoError(t, services.LockService.Lock(ctx))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client))

	require.NoError(t, services.LockService.Unlock(ctx, "1234"))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client))
}

func TestHealth_OverallServerIsServing(t *testing.T) {
	client := newHealthClient(t, NewHandler(newTestServices(t), logger.Nop()))

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestHealth_Shutdown(t *testing.T) {
	ctx := context.Background()
	services := newTestServices(t)
	h := NewHandler(services, logger.Nop())
	client := newHealthClient(t, h)
	require.NoError(t, services.LockService.Setup(ctx, models.SetupRequest{Name: "Ada", Pin: "1234"}))

	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client))

	// transitions after shutdown are ignored
	require.NoError(t, services.LockService.Lock(ctx))
	require.NoError(t, services.LockService.Unlock(ctx, "1234"))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client))
}
