package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultHTTPAddress    = "127.0.0.1:8457"
	defaultRequestTimeout = 10 * time.Second
	defaultTokenDuration  = 12 * time.Hour
	defaultTokenIssuer    = "aura"
	defaultVersion        = "1.0.0"
	defaultLogLevel       = "info"
	defaultDriver         = "sqlite"
	defaultRateLimitRPS   = 0.5
	defaultRateLimitBurst = 5
	defaultDotEnvFile     = ".env"
)

// DefaultDataDir returns the per-user directory holding the database,
// record files, exports and client logs.
func DefaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "aura")
	}
	return ".aura"
}

func defaultConfig() *StructuredConfig {
	dataDir := DefaultDataDir()

	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Version:       defaultVersion,
			ExportDir:     filepath.Join(dataDir, "exports"),
			LogLevel:      defaultLogLevel,
		},
		Storage: Storage{
			Driver: defaultDriver,
			DB:     DB{DSN: filepath.Join(dataDir, "aura.db")},
			Files:  Files{Dir: filepath.Join(dataDir, "records")},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			RateLimit: RateLimit{
				RPS:   defaultRateLimitRPS,
				Burst: defaultRateLimitBurst,
			},
		},
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
