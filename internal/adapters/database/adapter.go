// Package database opens the database connections whose cursors get collected.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver

	"github.com/satishbabariya/rsdatabase/internal/debug"
)

// SQLDialect represents a SQL dialect.
type SQLDialect string

const (
	// PostgreSQL dialect.
	PostgreSQL SQLDialect = "postgres"
	// MySQL dialect.
	MySQL SQLDialect = "mysql"
	// SQLite dialect.
	SQLite SQLDialect = "sqlite"
)

// ErrUnsupportedProvider is returned for providers with no registered driver.
var ErrUnsupportedProvider = errors.New("unsupported provider")

// Config holds database connection configuration.
type Config struct {
	Provider       string
	URL            string
	MaxIdleTime    int // seconds
	ConnectTimeout int // seconds
}

// Adapter wraps an open *sql.DB together with its dialect.
type Adapter struct {
	db      *sql.DB
	dialect SQLDialect
}

// DialectFor maps a provider name to its dialect and database/sql driver name.
func DialectFor(provider string) (SQLDialect, string, error) {
	switch provider {
	case "postgresql", "postgres":
		return PostgreSQL, "postgres", nil
	case "mysql":
		return MySQL, "mysql", nil
	case "sqlite", "sqlite3", "":
		return SQLite, "sqlite3", nil
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}

// Open connects to the database described by cfg and checks it is reachable.
func Open(ctx context.Context, cfg Config) (*Adapter, error) {
	dialect, driverName, err := DialectFor(cfg.Provider)
	if err != nil {
		return nil, err
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("no database URL configured")
	}

	db, err := sql.Open(driverName, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == SQLite {
		// A single connection keeps :memory: databases and PRAGMAs consistent.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}
	if cfg.MaxIdleTime > 0 {
		db.SetConnMaxIdleTime(time.Duration(cfg.MaxIdleTime) * time.Second)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if dialect == SQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA synchronous = 1"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
		}
	}

	debug.Debug("database opened", "provider", cfg.Provider, "dialect", dialect)
	return &Adapter{db: db, dialect: dialect}, nil
}

// QueryContext executes a query that returns rows.
func (a *Adapter) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	debug.Debug("query", "sql", query, "args", len(args))
	return a.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement without returning rows.
func (a *Adapter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	debug.Debug("exec", "sql", query, "args", len(args))
	return a.db.ExecContext(ctx, query, args...)
}

// Dialect returns the SQL dialect.
func (a *Adapter) Dialect() SQLDialect {
	return a.dialect
}

// DB returns the underlying database handle.
func (a *Adapter) DB() *sql.DB {
	return a.db
}

// Close closes the database.
func (a *Adapter) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
