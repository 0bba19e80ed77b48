package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/utils"
	"github.com/MKhiriev/go-aura/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the hex HMAC-SHA256 of the request body when a hash key
// is configured.
const HashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for request
// integrity hashes.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var version models.VersionResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&version).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return version.Version, nil
}

// Status implements [ServerAdapter]. GET /api/status.
func (h *httpServerAdapter) Status(ctx context.Context) (models.Status, error) {
	var status models.Status

	resp, err := h.client.R().SetContext(ctx).SetResult(&status).Get("/api/status")
	if err != nil {
		return models.Status{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Status{}, err
	}

	return status, nil
}

// Setup implements [ServerAdapter]. POST /api/setup; the returned token is
// stored via SetToken.
func (h *httpServerAdapter) Setup(ctx context.Context, request models.SetupRequest) (models.SessionResponse, error) {
	return h.openSession(ctx, "/api/setup", request)
}

// Unlock implements [ServerAdapter]. POST /api/unlock; the returned token is
// stored via SetToken.
func (h *httpServerAdapter) Unlock(ctx context.Context, pin string) (models.SessionResponse, error) {
	return h.openSession(ctx, "/api/unlock", models.UnlockRequest{Pin: pin})
}

// OpenSession implements [ServerAdapter]. POST /api/session.
func (h *httpServerAdapter) OpenSession(ctx context.Context) (models.SessionResponse, error) {
	return h.openSession(ctx, "/api/session", nil)
}

func (h *httpServerAdapter) openSession(ctx context.Context, path string, body any) (models.SessionResponse, error) {
	var session models.SessionResponse

	req, err := h.jsonRequest(ctx, body)
	if err != nil {
		return models.SessionResponse{}, err
	}

	resp, err := req.SetResult(&session).Post(path)
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionResponse{}, err
	}

	token := session.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.SessionResponse{}, fmt.Errorf("%w: %w", ErrMissingToken, err)
		}
	}

	h.SetToken(token)
	session.Token = token
	return session, nil
}

// Lock implements [ServerAdapter]. POST /api/lock; the stored token is
// dropped because the daemon revokes it.
func (h *httpServerAdapter) Lock(ctx context.Context) (models.Status, error) {
	var status models.Status

	resp, err := h.authedRequest(ctx).SetResult(&status).Post("/api/lock")
	if err != nil {
		return models.Status{}, fmt.Errorf("lock request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Status{}, err
	}

	h.SetToken("")
	return status, nil
}

// EnableLock implements [ServerAdapter]. POST /api/lock/enable.
func (h *httpServerAdapter) EnableLock(ctx context.Context) error {
	return h.send(ctx, "POST", "/api/lock/enable", nil, nil)
}

// DisableLock implements [ServerAdapter]. POST /api/lock/disable.
func (h *httpServerAdapter) DisableLock(ctx context.Context) error {
	return h.send(ctx, "POST", "/api/lock/disable", nil, nil)
}

// SetPin implements [ServerAdapter]. POST /api/pin.
func (h *httpServerAdapter) SetPin(ctx context.Context, pin string) error {
	return h.send(ctx, "POST", "/api/pin", models.SetPinRequest{Pin: pin}, nil)
}

// ChangePin implements [ServerAdapter]. PUT /api/pin.
func (h *httpServerAdapter) ChangePin(ctx context.Context, request models.ChangePinRequest) error {
	return h.send(ctx, "PUT", "/api/pin", request, nil)
}

// State implements [ServerAdapter]. GET /api/state.
func (h *httpServerAdapter) State(ctx context.Context) (models.ApplicationState, error) {
	var doc models.ApplicationState
	if err := h.send(ctx, "GET", "/api/state", nil, &doc); err != nil {
		return models.ApplicationState{}, err
	}
	return doc, nil
}

// RecordMood implements [ServerAdapter]. POST /api/moods.
func (h *httpServerAdapter) RecordMood(ctx context.Context, input models.MoodInput) (models.MoodEntry, error) {
	var entry models.MoodEntry
	if err := h.send(ctx, "POST", "/api/moods", input, &entry); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

// Stats implements [ServerAdapter]. GET /api/stats.
func (h *httpServerAdapter) Stats(ctx context.Context) (models.MoodStats, error) {
	var stats models.MoodStats
	if err := h.send(ctx, "GET", "/api/stats", nil, &stats); err != nil {
		return models.MoodStats{}, err
	}
	return stats, nil
}

// AddJournal implements [ServerAdapter]. POST /api/journal.
func (h *httpServerAdapter) AddJournal(ctx context.Context, input models.JournalInput) (models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := h.send(ctx, "POST", "/api/journal", input, &entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

// UpdatePreferences implements [ServerAdapter]. PATCH /api/preferences.
func (h *httpServerAdapter) UpdatePreferences(ctx context.Context, update models.PreferencesUpdate) (models.ApplicationState, error) {
	var doc models.ApplicationState
	if err := h.send(ctx, "PATCH", "/api/preferences", update, &doc); err != nil {
		return models.ApplicationState{}, err
	}
	return doc, nil
}

// Export implements [ServerAdapter]. GET /api/export?kind=<kind>; the file
// name is read from Content-Disposition.
func (h *httpServerAdapter) Export(ctx context.Context, kind models.ExportKind) (models.Export, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("kind", string(kind)).
		Get("/api/export")
	if err != nil {
		return models.Export{}, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Export{}, err
	}

	export := models.Export{
		ContentType: resp.Header().Get("Content-Type"),
		Data:        resp.Body(),
	}
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		export.FileName = params["filename"]
	}

	return export, nil
}

// Reset implements [ServerAdapter]. POST /api/reset.
func (h *httpServerAdapter) Reset(ctx context.Context) error {
	if err := h.send(ctx, "POST", "/api/reset", nil, nil); err != nil {
		return err
	}
	h.SetToken("")
	return nil
}

// send performs an authenticated request with an optional JSON body and
// decodes the JSON response into result when it is non-nil.
func (h *httpServerAdapter) send(ctx context.Context, method, path string, body, result any) error {
	req, err := h.jsonRequest(ctx, body)
	if err != nil {
		return err
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

// jsonRequest builds an authenticated request carrying body as JSON and,
// when a hash key is configured, its integrity hash.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	req := h.authedRequest(ctx)
	if body == nil {
		return req, nil
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req.SetHeader("Content-Type", "application/json").SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(HashHeader, utils.Sign(payload))
	}

	return req, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
