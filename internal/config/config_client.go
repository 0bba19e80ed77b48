package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used for payload integrity checks against a
	// daemon.
	HashKey string
	// Version is shown in the build info screen.
	Version string
	// ExportDir is where file exports are written.
	ExportDir string
	// TokenDuration bounds the local session token lifetime.
	TokenDuration time.Duration
	// LogLevel is applied to the client log file.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the daemon API address. Empty means local mode.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AutoLockAfter locks the session after this idle period.
	AutoLockAfter time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the daemon address and timeout.
	Adapter ClientAdapter
	// Storage is used in local mode.
	Storage Storage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// IsRemote reports whether the client attaches to a running daemon instead
// of opening local storage.
func (c *ClientConfig) IsRemote() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps a [StructuredConfig] onto the client view.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:       cfg.App.HashKey,
			Version:       cfg.App.Version,
			ExportDir:     cfg.App.ExportDir,
			TokenDuration: cfg.App.TokenDuration,
			LogLevel:      cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: cfg.Storage,
		Workers: ClientWorkers{AutoLockAfter: cfg.Workers.AutoLockAfter},
	}
}
