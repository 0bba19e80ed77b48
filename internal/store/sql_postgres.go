package store

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/logger"
)

// NewConnectPostgres opens a PostgreSQL database through the pgx stdlib
// driver. It serves self-hosted installations that keep the records in an
// existing local Postgres instance.
//
// The records are stored in plaintext when no PIN is configured, so a DSN
// naming a non-local host is logged as a warning.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if host, local := isLocalDSN(cfg.DSN); !local {
		log.Warn().Str("func", "NewConnectPostgres").Str("host", host).
			Msg("postgres host is not local: personal records will leave this machine")
	}

	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: error occured during database connection: %w", ErrStorageUnavailable, err)
	}

	// setup connections
	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		dialect:            "postgres",
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}

	return db, nil
}

// isLocalDSN reports whether every host in dsn is a unix socket or a loopback
// address. It returns the first non-local host. An unparsable DSN is treated
// as local; opening it fails later with a proper error.
func isLocalDSN(dsn string) (string, bool) {
	pgCfg, err := pgconn.ParseConfig(dsn)
	if err != nil {
		return "", true
	}

	hosts := []string{pgCfg.Host}
	for _, fb := range pgCfg.Fallbacks {
		hosts = append(hosts, fb.Host)
	}
	for _, host := range hosts {
		if !isLocalHost(host) {
			return host, false
		}
	}

	return "", true
}

func isLocalHost(host string) bool {
	if strings.HasPrefix(host, "/") || strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
