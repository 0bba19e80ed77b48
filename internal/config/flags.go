package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress is a host:port flag value. The zero value means "not set".
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the process command line into a partial config. Unset
// flags stay zero so they do not override env or file values when merged.
//
//	-a                daemon API address host:port
//	-grpc-address     gRPC health address host:port
//	-server           running daemon the client attaches to
//	-driver           storage driver (sqlite, postgres, diskv, memory)
//	-d                database DSN
//	-f                record files directory (diskv)
//	-c, -config       JSON or YAML config file
//	-token-sign-key   session token signing key
//	-token-issuer     session token issuer
//	-token-duration   session token lifetime, e.g. 12h
//	-request-timeout  HTTP request timeout, e.g. 10s
//	-hash-key         request integrity key
//	-export-dir       export directory
//	-auto-lock        idle period before the session locks, e.g. 5m
//	-log-level        minimum log level
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		cfg                            StructuredConfig
		httpAddr, grpcAddr, daemonAddr NetAddress
		requestTimeout                 time.Duration
	)

	fs.Var(&httpAddr, "a", "Daemon API address host:port")
	fs.Var(&grpcAddr, "grpc-address", "gRPC health address host:port")
	fs.Var(&daemonAddr, "server", "Running daemon address host:port")
	fs.StringVar(&cfg.Storage.Driver, "driver", "", "Storage driver: sqlite, postgres, diskv, memory")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.Dir, "f", "", "Record files directory")
	fs.StringVar(&cfg.FilePath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&cfg.FilePath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Session token lifetime (e.g., 12h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Request integrity hash key")
	fs.StringVar(&cfg.App.ExportDir, "export-dir", "", "Export directory")
	fs.DurationVar(&cfg.Workers.AutoLockAfter, "auto-lock", 0, "Lock the session after this idle period (e.g., 5m)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Minimum log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()
	cfg.Server.RequestTimeout = requestTimeout
	cfg.Adapter.HTTPAddress = daemonAddr.String()
	cfg.Adapter.RequestTimeout = requestTimeout

	return &cfg, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port where host is "localhost" or an IP literal; IPv6
// literals go in brackets. Aura listens on loopback, so names are not
// resolved.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("incorrect IP-address provided: %q", host)
	}

	a.Host = host
	a.Port = port
	return nil
}
