package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"airdemo/bookings/internal/logging"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var (
	// ErrConnection is returned when the store cannot be opened or reached.
	ErrConnection = errors.New("database connection failed")
	// ErrDisconnected is returned for calls made after Disconnect.
	ErrDisconnected = errors.New("database connection is closed")
)

// RowSet holds the rows of a scoped statement, one column map per row.
type RowSet []map[string]any

// Connection owns the shared pool. Every statement runs on its own and
// commits on completion; there is no cross-call transaction.
type Connection struct {
	mu      sync.RWMutex
	sqlx    *sqlx.DB
	orm     *gorm.DB
	dialect string
	closed  bool
}

// Open wraps an already opened handle. dialect is DialectPostgres or
// DialectSQLite.
func Open(dialect string, handle *sql.DB) (*Connection, error) {
	var driverName string
	switch dialect {
	case DialectPostgres:
		driverName = "postgres"
	case DialectSQLite:
		driverName = "sqlite3"
	default:
		return nil, fmt.Errorf("%w: unsupported dialect %q", ErrConnection, dialect)
	}
	return newConnection(dialect, sqlx.NewDb(handle, driverName))
}

func newConnection(dialect string, sdb *sqlx.DB) (*Connection, error) {
	var dialector gorm.Dialector
	switch dialect {
	case DialectPostgres:
		dialector = postgres.New(postgres.Config{Conn: sdb.DB})
	case DialectSQLite:
		dialector = &sqlite.Dialector{DriverName: "sqlite3", Conn: sdb.DB}
	}

	orm, err := gorm.Open(dialector, &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger:               newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: orm: %w", ErrConnection, err)
	}

	return &Connection{sqlx: sdb, orm: orm, dialect: dialect}, nil
}

func newGormLogger() gormlogger.Interface {
	writer := zap.NewStdLog(logging.Named("gorm").Desugar())
	return gormlogger.New(writer, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Dialect reports DialectPostgres or DialectSQLite.
func (c *Connection) Dialect() string { return c.dialect }

// Disconnect closes the pool. Calling it again is a no-op.
func (c *Connection) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.sqlx.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	logging.Info("Disconnected from database", "dialect", c.dialect)
	return nil
}

func (c *Connection) handle() (*sqlx.DB, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, ErrDisconnected
	}
	return c.sqlx, nil
}

// ORM returns a gorm session bound to ctx. After Disconnect the session
// carries ErrDisconnected and never reaches the store.
func (c *Connection) ORM(ctx context.Context) *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tx := c.orm.WithContext(ctx)
	if c.closed {
		_ = tx.AddError(ErrDisconnected)
	}
	return tx
}

// Ping checks that the store answers.
func (c *Connection) Ping(ctx context.Context) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	if err := h.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

// Rebind rewrites ? placeholders for the active driver.
func (c *Connection) Rebind(query string) string {
	return c.sqlx.Rebind(query)
}

// ExecScoped runs one statement with ? placeholders and returns its rows.
// Statements without a result set yield an empty RowSet.
func (c *Connection) ExecScoped(ctx context.Context, stmt string, args ...any) (RowSet, error) {
	h, err := c.handle()
	if err != nil {
		return nil, err
	}

	rows, err := h.QueryxContext(ctx, h.Rebind(stmt), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := RowSet{}
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Select scans every row of query into dest, a pointer to a slice.
func (c *Connection) Select(ctx context.Context, dest any, query string, args ...any) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	return h.SelectContext(ctx, dest, h.Rebind(query), args...)
}

// Get scans a single row into dest. A missing row is sql.ErrNoRows.
func (c *Connection) Get(ctx context.Context, dest any, query string, args ...any) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	return h.GetContext(ctx, dest, h.Rebind(query), args...)
}

// Exec runs a statement and returns the number of affected rows.
func (c *Connection) Exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	h, err := c.handle()
	if err != nil {
		return 0, err
	}
	res, err := h.ExecContext(ctx, h.Rebind(stmt), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Stats exposes pool statistics for the health endpoint.
func (c *Connection) Stats() sql.DBStats {
	return c.sqlx.Stats()
}
