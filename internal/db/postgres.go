package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"airdemo/bookings/internal/config"
	"airdemo/bookings/internal/logging"
)

// Connect opens the shared pool described by cfg, retrying until the store
// answers a ping, and layers the ORM on top of it.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Connection, error) {
	var driverName, dsn, dialect string
	switch cfg.Driver {
	case config.DriverPostgres:
		driverName, dsn, dialect = "postgres", cfg.PostgresDSN(), DialectPostgres
	case config.DriverSQLite:
		driverName, dsn, dialect = "sqlite3", sqliteDSN(cfg.DSN), DialectSQLite
	default:
		return nil, fmt.Errorf("%w: unsupported driver %q", ErrConnection, cfg.Driver)
	}

	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		sdb *sqlx.DB
		err error
	)
	for i := 0; i < attempts; i++ {
		sdb, err = sqlx.ConnectContext(ctx, driverName, dsn)
		if err == nil {
			break
		}
		logging.Warn("database not reachable yet",
			"driver", driverName,
			"dsn", redactDSN(dsn),
			"attempt", i+1,
			"max_attempts", attempts,
			"error", err,
		)
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrConnection, ctx.Err())
		case <-time.After(cfg.RetryDelay()):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrConnection, driverName, attempts, err)
	}

	pool := poolFor(dialect, cfg)
	sdb.SetMaxOpenConns(pool.maxOpen)
	sdb.SetMaxIdleConns(pool.maxOpen)
	sdb.SetConnMaxIdleTime(pool.maxIdleTime)

	if dialect == DialectPostgres && cfg.Schema != "" {
		stmt := "CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(cfg.Schema)
		if _, err := sdb.ExecContext(ctx, stmt); err != nil {
			_ = sdb.Close()
			return nil, fmt.Errorf("%w: create schema %s: %w", ErrConnection, cfg.Schema, err)
		}
	}

	conn, err := newConnection(dialect, sdb)
	if err != nil {
		_ = sdb.Close()
		return nil, err
	}

	logging.Info("Connected to database",
		"driver", driverName,
		"host", cfg.Host,
		"database", cfg.Name,
		"schema", cfg.Schema,
		"max_open_conns", pool.maxOpen,
	)
	return conn, nil
}

type poolSettings struct {
	maxOpen     int
	maxIdleTime time.Duration
}

// poolFor sizes the pool. SQLite keeps a single connection that is never
// reaped: closing the last connection to an in-memory database drops it.
func poolFor(dialect string, cfg config.DatabaseConfig) poolSettings {
	if dialect == DialectSQLite {
		return poolSettings{maxOpen: 1}
	}
	maxOpen := cfg.MaxOpenConns
	if maxOpen < 1 {
		maxOpen = 1
	}
	return poolSettings{maxOpen: maxOpen, maxIdleTime: 5 * time.Minute}
}

// sqliteDSN switches foreign key enforcement on unless the caller set it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// redactDSN hides the password of a URL style DSN for logs.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}

// IsConnectivity reports whether err means the store could not be reached.
func IsConnectivity(err error) bool {
	return errors.Is(err, ErrConnection) || errors.Is(err, ErrDisconnected)
}
