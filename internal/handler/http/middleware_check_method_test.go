package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newCheckMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router.Get("/api/moods", ok)
	router.Post("/api/moods", ok)
	router.Get("/api/status", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/moods", http.StatusOK},
		{http.MethodPost, "/api/moods", http.StatusOK},
		{http.MethodDelete, "/api/moods", http.StatusNotFound},
		{http.MethodPost, "/api/status", http.StatusNotFound},
		{http.MethodGet, "/api/missing", http.StatusNotFound},
	}

	router := newCheckMethodRouter()
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
