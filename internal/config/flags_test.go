package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("aura", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// ── NetAddress ──

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantStr string
		wantErr string
	}{
		{name: "localhost", input: "localhost:8457", want: NetAddress{Host: "localhost", Port: 8457}, wantStr: "localhost:8457"},
		{name: "ipv4", input: "127.0.0.1:9457", want: NetAddress{Host: "127.0.0.1", Port: 9457}, wantStr: "127.0.0.1:9457"},
		{name: "ipv6", input: "[::1]:8457", want: NetAddress{Host: "::1", Port: 8457}, wantStr: "[::1]:8457"},
		{name: "missing port", input: "localhost", wantErr: "host:port"},
		{name: "too many colons", input: "host:port:extra", wantErr: "host:port"},
		{name: "empty", input: "", wantErr: "host:port"},
		{name: "non numeric port", input: "localhost:abc", wantErr: "invalid port"},
		{name: "zero port", input: "localhost:0", wantErr: "between 1 and 65535"},
		{name: "port out of range", input: "localhost:70000", wantErr: "between 1 and 65535"},
		{name: "hostname", input: "aura.example:8457", wantErr: "incorrect IP-address"},
		{name: "empty host", input: ":8457", wantErr: "incorrect IP-address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, NetAddress{}, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.wantStr, addr.String())
		})
	}
}

func TestNetAddress_StringUnset(t *testing.T) {
	var addr NetAddress
	assert.Empty(t, addr.String())
}

// ── parseFlags ──

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "daemon flags",
			args: []string{
				"-a", "localhost:8457",
				"-grpc-address", "127.0.0.1:9457",
				"-driver", "postgres",
				"-d", "postgres://aura@localhost/aura",
				"-token-sign-key", "sign",
				"-token-issuer", "aura-test",
				"-token-duration", "1h",
				"-request-timeout", "30s",
				"-hash-key", "hash",
				"-auto-lock", "5m",
				"-log-level", "warn",
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8457", cfg.Server.HTTPAddress)
				assert.Equal(t, "127.0.0.1:9457", cfg.Server.GRPCAddress)
				assert.Equal(t, "postgres", cfg.Storage.Driver)
				assert.Equal(t, "postgres://aura@localhost/aura", cfg.Storage.DB.DSN)
				assert.Equal(t, "sign", cfg.App.TokenSignKey)
				assert.Equal(t, "aura-test", cfg.App.TokenIssuer)
				assert.Equal(t, time.Hour, cfg.App.TokenDuration)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "hash", cfg.App.HashKey)
				assert.Equal(t, 5*time.Minute, cfg.Workers.AutoLockAfter)
				assert.Equal(t, "warn", cfg.App.LogLevel)
			},
		},
		{
			name: "client flags",
			args: []string{"-server", "127.0.0.1:8457", "-driver", "diskv", "-f", "/var/aura/records", "-export-dir", "/tmp/exports"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:8457", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "/var/aura/records", cfg.Storage.Files.Dir)
				assert.Equal(t, "/tmp/exports", cfg.App.ExportDir)
				assert.Empty(t, cfg.Server.HTTPAddress)
			},
		},
		{
			name: "config short and long forms",
			args: []string{"-config", "/etc/aura.yaml"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/aura.yaml", cfg.FilePath)
			},
		},
		{
			name: "nothing set",
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(newTestFlagSet(), tt.args)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad address", args: []string{"-a", "nowhere"}},
		{name: "bad duration", args: []string{"-auto-lock", "soon"}},
		{name: "unknown flag", args: []string{"-pin", "1234"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(newTestFlagSet(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
