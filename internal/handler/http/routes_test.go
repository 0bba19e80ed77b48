package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type routeCase struct {
	method string
	path   string
}

var publicRoutes = []routeCase{
	{http.MethodGet, "/api/version"},
	{http.MethodGet, "/api/status"},
	{http.MethodPost, "/api/session"},
	{http.MethodPost, "/api/setup"},
	{http.MethodPost, "/api/unlock"},
}

var protectedRoutes = []routeCase{
	{http.MethodPost, "/api/lock"},
	{http.MethodPost, "/api/lock/enable"},
	{http.MethodPost, "/api/lock/disable"},
	{http.MethodPost, "/api/pin"},
	{http.MethodPut, "/api/pin"},
	{http.MethodPost, "/api/reset"},
	{http.MethodGet, "/api/state"},
	{http.MethodPost, "/api/moods"},
	{http.MethodGet, "/api/moods"},
	{http.MethodGet, "/api/moods/today"},
	{http.MethodGet, "/api/stats"},
	{http.MethodPost, "/api/journal"},
	{http.MethodGet, "/api/journal"},
	{http.MethodGet, "/api/journal/export"},
	{http.MethodPatch, "/api/preferences"},
	{http.MethodGet, "/api/export"},
}

func TestInit_RegistersPublicRoutes(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))

	for _, tc := range publicRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := do(t, router, tc.method, tc.path, "", nil)

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
			assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := do(t, router, tc.method, tc.path, "", nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))

	rec := do(t, router, http.MethodGet, "/api/nonexistent", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))

	rec := do(t, router, http.MethodDelete, "/api/version", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}
