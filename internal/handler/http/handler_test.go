package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/internal/store"
	"github.com/MKhiriev/go-aura/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig(t *testing.T) config.StructuredConfig {
	t.Helper()

	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "aura",
			TokenDuration: time.Hour,
			Version:       "1.2.3",
			ExportDir:     t.TempDir(),
		},
	}
}

// newTestRouter wires real services over an in-memory record repository.
func newTestRouter(t *testing.T, cfg config.StructuredConfig) (http.Handler, *service.Services) {
	t.Helper()

	services, err := service.NewServices(&store.Storages{Records: store.NewMemoryRecordRepository()}, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = services.LockService.Boot(context.Background())
	require.NoError(t, err)

	return NewHandler(services, cfg, logger.Nop()).Init(), services
}

// do sends a JSON request through router. A non-empty token is sent as a
// bearer token.
func do(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// setupCompanion completes first-run setup and returns the session token.
func setupCompanion(t *testing.T, router http.Handler, pin string) string {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/api/setup", "", models.SetupRequest{Name: "Ada", Pin: pin})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.StructuredConfig{}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Empty(t, h.hashKey)
}

func TestNewHandler_RateLimitDisabledWithoutRPS(t *testing.T) {
	h := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, h.limiter)
}

func TestNewHandler_RateLimitConfigured(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{RateLimit: config.RateLimit{RPS: 1, Burst: 2}}}

	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	require.NotNil(t, h.limiter)
	assert.Equal(t, 2, h.limiter.burst)
}

// ─────────────────────────────────────────────
// version
// ─────────────────────────────────────────────

func TestGetServerVersion_WritesJSON(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))

	rec := do(t, router, http.MethodGet, "/api/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	info := decode[models.VersionResponse](t, rec)
	assert.Equal(t, "1.2.3", info.Version)
	assert.False(t, info.StartedAt.IsZero())
	assert.GreaterOrEqual(t, info.UptimeSeconds, int64(0))
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
