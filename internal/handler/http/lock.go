// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-aura/internal/app"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/service"
	"github.com/MKhiriev/go-aura/internal/utils"
	"github.com/MKhiriev/go-aura/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.LockService.Status(r.Context()), http.StatusOK)
}

func (h *Handler) setup(w http.ResponseWriter, r *http.Request) {
	var request models.SetupRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.services.LockService.Setup(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	h.issueSession(w, r, http.StatusCreated)
}

// unlock opens a session with the PIN. A daemon that is already unlocked
// still checks the PIN before handing out a token.
func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	var request models.UnlockRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.services.LockService.Authenticate(r.Context(), request.Pin); err != nil {
		writeError(w, r, err)
		return
	}

	h.issueSession(w, r, http.StatusOK)
}

// openSession hands out a token without a PIN; only unlocked installations
// that have no PIN qualify.
func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	status := h.services.LockService.Status(r.Context())

	switch {
	case status.State == models.LockStateFirstRun:
		writeError(w, r, service.ErrNotSetUp)
		return
	case status.State != models.LockStateUnlocked || status.PinConfigured:
		writeError(w, r, service.ErrSessionRequiresPin)
		return
	}

	h.issueSession(w, r, http.StatusOK)
}

func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, statusCode int) {
	ctx := r.Context()

	token, err := h.services.SessionService.CreateToken(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.SessionResponse{
		Status: h.services.LockService.Status(ctx),
		Token:  token.SignedString,
	}, statusCode)
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	if err := h.services.LockService.Lock(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.services.LockService.Status(r.Context()), http.StatusOK)
}

func (h *Handler) enableLock(w http.ResponseWriter, r *http.Request) {
	if err := h.services.LockService.EnableLock(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.services.LockService.Status(r.Context()), http.StatusOK)
}

func (h *Handler) disableLock(w http.ResponseWriter, r *http.Request) {
	if err := h.services.LockService.DisableLock(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.services.LockService.Status(r.Context()), http.StatusOK)
}

func (h *Handler) setPin(w http.ResponseWriter, r *http.Request) {
	var request models.SetPinRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.services.LockService.SetPin(r.Context(), request.Pin); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.services.LockService.Status(r.Context()), http.StatusOK)
}

func (h *Handler) changePin(w http.ResponseWriter, r *http.Request) {
	var request models.ChangePinRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.services.LockService.ChangePin(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.services.LockService.Status(r.Context()), http.StatusOK)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.services.LockService.Reset(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON decodes the request body into v and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}
