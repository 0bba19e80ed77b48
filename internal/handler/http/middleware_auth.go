package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-aura/internal/app"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/utils"
)

// auth is an HTTP middleware that enforces session tokens.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.SessionService.ParseToken] and stores the token ID in the
// request context under [utils.SessionIDCtxKey]. Tokens are revoked when the
// companion leaves the UNLOCKED state, so a locked daemon answers 401 here.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.SessionService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, token.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
