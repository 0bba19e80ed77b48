// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// errors wrapped with the offending detail.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}
	if err := validateLogLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimit.RPS < 0 || cfg.Server.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimit.RPS > 0 && cfg.Server.RateLimit.Burst == 0 {
		return fmt.Errorf("%w: rate limit burst must be at least 1", ErrInvalidServerConfigs)
	}

	if cfg.Workers.AutoLockAfter < 0 {
		return fmt.Errorf("%w: negative auto-lock period", ErrInvalidWorkerConfigs)
	}

	return nil
}

func validateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, level)
	}
	return nil
}

func (s Storage) validate() error {
	switch s.Driver {
	case "", "sqlite", "postgres":
		if s.Driver != "" && s.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver requires a DSN", ErrInvalidStorageConfigs, s.Driver)
		}
	case "diskv":
		if s.Files.Dir == "" {
			return fmt.Errorf("%w: diskv driver requires a directory", ErrInvalidStorageConfigs)
		}
	case "memory":
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.HTTPAddress == "" {
		if err := cfg.Storage.validate(); err != nil {
			return err
		}
	}

	if cfg.Workers.AutoLockAfter < 0 {
		return ErrInvalidWorkerConfigs
	}
	if err := validateLogLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	return nil
}
