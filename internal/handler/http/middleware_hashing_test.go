package http

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/utils"
	"github.com/stretchr/testify/assert"
)

const testHashKey = "integrity-key"

func TestWithIntegrityCheck_TableTest(t *testing.T) {
	utils.InitHasherPool(testHashKey)
	body := []byte(`{"pin":"1234"}`)

	tests := []struct {
		name       string
		hashKey    string
		body       []byte
		header     string
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "disabled without key",
			body:       body,
			header:     "garbage",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "valid hash",
			hashKey:    testHashKey,
			body:       body,
			header:     hex.EncodeToString(utils.Hash(body)),
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "empty body skips check",
			hashKey:    testHashKey,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			hashKey:    testHashKey,
			body:       body,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "tampered body",
			hashKey:    testHashKey,
			body:       []byte(`{"pin":"9999"}`),
			header:     hex.EncodeToString(utils.Hash(body)),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non hex header",
			hashKey:    testHashKey,
			body:       body,
			header:     "zz",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{hashKey: tt.hashKey, logger: logger.Nop()}

			var nextCalled bool
			var gotBody []byte
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotBody, _ = io.ReadAll(r.Body)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/unlock", bytes.NewReader(tt.body))
			if tt.header != "" {
				req.Header.Set(hashHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.withIntegrityCheck(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				// the body is restored for the next handler
				assert.Equal(t, string(tt.body), string(gotBody))
			} else {
				assert.Contains(t, rec.Body.String(), ErrIntegrityCheckFailed.Error())
			}
		})
	}
}
