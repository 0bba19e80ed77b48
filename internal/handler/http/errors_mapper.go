package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-aura/internal/app"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order: ErrWrongPin wraps ErrAuthFailure and
// has to match first.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrUnknownExportKind, http.StatusBadRequest, app.MsgUnknownExportKind},

	{service.ErrWrongPin, http.StatusUnauthorized, app.MsgWrongPin},
	{service.ErrAuthFailure, http.StatusUnauthorized, app.MsgAuthFailure},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrNothingToExport, http.StatusNotFound, app.MsgNothingToExport},

	{service.ErrNotSetUp, http.StatusConflict, app.MsgNotSetUp},
	{service.ErrAlreadySetUp, http.StatusConflict, app.MsgAlreadySetUp},
	{service.ErrNotLocked, http.StatusConflict, app.MsgNotLocked},
	{service.ErrPinNotConfigured, http.StatusConflict, app.MsgPinNotConfigured},
	{service.ErrPinAlreadyConfigured, http.StatusConflict, app.MsgPinAlreadyConfigured},
	{service.ErrSessionRequiresPin, http.StatusConflict, app.MsgSessionRequiresPin},

	{service.ErrDecode, http.StatusUnprocessableEntity, app.MsgDecodeFailed},
	{service.ErrLocked, http.StatusLocked, app.MsgLocked},
	{service.ErrTooManyRequests, http.StatusTooManyRequests, app.MsgTooManyRequests},
	{service.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
}

// responseFromError returns the status code and body for err. Validation
// errors carry their own "field: reason" text.
func responseFromError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}
	if errors.Is(err, validators.ErrValidation) {
		return http.StatusBadRequest, app.MsgInvalidDataProvided
	}

	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

// writeError logs err and answers with its mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, message, status)
}
