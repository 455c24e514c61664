// Package sqlite opens the application database with separate read-write and read-only pools and keeps its
// schema up to date.
package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	_ "embed"
)

//go:embed schema.sql
var schemaDefinition string

// migrations are applied in order. The index of a migration plus one is the schema version it produces.
//
//nolint:gochecknoglobals // embedded migration list.
var migrations = []string{
	schemaDefinition,
}

// Database holds the two connection pools. All writes go through ReadWrite, which has a single connection, so
// that a user's next read observes their previous write.
type Database struct {
	ReadWrite *sql.DB
	ReadOnly  *sql.DB
	logger    *slog.Logger
}

// NewDatabase connects to a database and migrates the schema to the latest version.
//
// The url parameter is the path to the SQLite database file or ":memory:" for an in-memory database.
func NewDatabase(ctx context.Context, url string, logger *slog.Logger) (*Database, error) {
	db, err := connect(url, logger)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err = db.migrate(ctx, migrations); err != nil {
		return nil, errors.Join(fmt.Errorf("migrate: %w", err), db.Close())
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "opened database", slog.String("url", url))
	return db, nil
}

//nolint:gochecknoglobals // the driver can be registered only once per process.
var once sync.Once

const optimizedDriver = "sqlite3optimized"

func registerOptimizedDriver() {
	sql.Register(optimizedDriver,
		&sqlite3.SQLiteDriver{
			Extensions: nil,
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				if _, err := conn.Exec(
					// Temporary tables and indices live in memory.
					"PRAGMA temp_store = memory;"+
						"PRAGMA mmap_size = 30000000000;", nil); err != nil {
					return fmt.Errorf("exec optimization pragmas: %w", err)
				}
				return nil
			},
		})
}

func connect(url string, logger *slog.Logger) (*Database, error) {
	// In-memory databases need a unique name and shared cache so that both pools see the same data and parallel
	// tests stay isolated. See https://www.sqlite.org/inmemorydb.html.
	readWriteMode, readOnlyMode := "mode=rwc", "mode=ro"
	if strings.Contains(url, ":memory:") {
		url = rand.Text()
		readWriteMode = "mode=memory&cache=shared"
		readOnlyMode = readWriteMode
	}

	// Options prefixed with underscore are documented at https://pkg.go.dev/github.com/mattn/go-sqlite3#SQLiteDriver.Open.
	commonConfig := strings.Join([]string{
		"_loc=auto",
		"_defer_foreign_keys=1",
		"_journal_mode=wal",
		"_busy_timeout=5000",
		"_synchronous=normal",
		"_foreign_keys=on",
	}, "&")
	readWriteDSN := fmt.Sprintf("file:%s?%s&_txlock=immediate&%s", url, readWriteMode, commonConfig)
	readOnlyDSN := fmt.Sprintf("file:%s?%s&_txlock=deferred&_query_only=true&%s", url, readOnlyMode, commonConfig)

	once.Do(registerOptimizedDriver)

	readWrite, err := sql.Open(optimizedDriver, readWriteDSN)
	if err != nil {
		return nil, fmt.Errorf("open read-write database: %w", err)
	}
	readWrite.SetMaxOpenConns(1)
	readWrite.SetMaxIdleConns(1)
	readWrite.SetConnMaxLifetime(time.Hour)
	readWrite.SetConnMaxIdleTime(time.Hour)

	// sql.DB is lazy. Pinging creates the database file or in-memory database before the read pool opens it.
	if err = readWrite.Ping(); err != nil {
		return nil, errors.Join(fmt.Errorf("ping read-write database: %w", err), readWrite.Close())
	}

	readOnly, err := sql.Open(optimizedDriver, readOnlyDSN)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("open read-only database: %w", err), readWrite.Close())
	}
	maxReadConns := 10
	readOnly.SetMaxOpenConns(maxReadConns)
	readOnly.SetMaxIdleConns(maxReadConns)
	readOnly.SetConnMaxLifetime(time.Hour)
	readOnly.SetConnMaxIdleTime(time.Hour)

	return &Database{
		ReadWrite: readWrite,
		ReadOnly:  readOnly,
		logger:    logger,
	}, nil
}

// Close closes both connection pools.
func (db *Database) Close() error {
	return errors.Join(db.ReadOnly.Close(), db.ReadWrite.Close())
}
