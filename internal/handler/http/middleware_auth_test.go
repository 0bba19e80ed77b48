package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/internal/utils"
	"github.com/MKhiriev/go-aura/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// mockSessionService implements service.SessionService with a replaceable
// ParseToken.
type mockSessionService struct {
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockSessionService) CreateToken(context.Context) (models.Token, error) {
	return models.Token{}, nil
}

func (m *mockSessionService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockSessionService) RevokeAll() {}

func executeAuth(sessions service.SessionService, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	h := &Handler{
		logger:   logger.Nop(),
		services: &service.Services{SessionService: sessions},
	}

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)
	return rec
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	validToken := models.Token{RegisteredClaims: jwt.RegisteredClaims{ID: "session-1"}}

	tests := []struct {
		name          string
		authHeader    string
		parseTokenFn  func(ctx context.Context, s string) (models.Token, error)
		wantStatus    int
		wantNext      bool
		wantSessionID string
	}{
		{
			name:       "empty header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing token",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			authHeader: "Bearer revoked",
			parseTokenFn: func(context.Context, string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good",
			parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
				assert.Equal(t, "good", s)
				return validToken, nil
			},
			wantStatus:    http.StatusOK,
			wantNext:      true,
			wantSessionID: "session-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nextCalled bool
			var gotSessionID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotSessionID, _ = utils.GetSessionIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			sessions := &mockSessionService{parseTokenFn: func(context.Context, string) (models.Token, error) {
				t.Fatal("ParseToken must not be called")
				return models.Token{}, nil
			}}
			if tt.parseTokenFn != nil {
				sessions.parseTokenFn = tt.parseTokenFn
			}

			rec := executeAuth(sessions, tt.authHeader, next)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			assert.Equal(t, tt.wantSessionID, gotSessionID)
		})
	}
}
