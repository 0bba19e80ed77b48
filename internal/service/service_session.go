// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/utils"
	"github.com/MKhiriev/go-aura/models"
)

// sessionService is the implementation of [SessionService].
//
// Every issued token ID is remembered until RevokeAll; tokens whose ID is
// unknown are rejected even when their signature is valid.
type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// A random key is generated when none is configured, which invalidates
	// every token on restart.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	ids *utils.UUIDGenerator

	mu     sync.Mutex
	active map[string]time.Time

	logger *logger.Logger
}

// NewSessionService constructs a [SessionService] from the daemon's
// token settings.
func NewSessionService(cfg config.App, logger *logger.Logger) (SessionService, error) {
	signKey := cfg.TokenSignKey
	if signKey == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("generate token sign key: %w", err)
		}
		signKey = hex.EncodeToString(buf)
	}

	return &sessionService{
		tokenSignKey:  signKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		ids:           utils.NewUUIDGenerator(),
		active:        make(map[string]time.Time),
		logger:        logger,
	}, nil
}

// CreateToken issues a signed session token with a fresh token ID.
func (s *sessionService) CreateToken(ctx context.Context) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, s.ids.Generate(), s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	s.prune(time.Now())

	s.mu.Lock()
	s.active[token.ID] = token.ExpiresAt.Time
	s.mu.Unlock()

	return token, nil
}

// ParseToken validates tokenString and checks that its session is active.
// Any failure is reported as [ErrTokenIsExpiredOrInvalid].
func (s *sessionService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.active[token.ID]; !ok {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// RevokeAll forgets every issued token. It is called whenever the
// companion leaves the UNLOCKED state.
func (s *sessionService) RevokeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.active)
}

// prune drops expired token IDs.
func (s *sessionService) prune(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, expiresAt := range s.active {
		if now.After(expiresAt) {
			delete(s.active, id)
		}
	}
}
