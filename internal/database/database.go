package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names registered with database/sql
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Memory is the SQLite path for a throwaway in-memory database
const Memory = ":memory:"

// DB is a connection pool that knows which SQL dialect it speaks
type DB struct {
	*sql.DB
	Driver string
}

// Open connects to the database named by url and applies the schema.
// postgres:// and postgresql:// URLs use lib/pq; anything else is a SQLite path.
func Open(ctx context.Context, url string) (*DB, error) {
	var (
		conn   *sql.DB
		driver string
		err    error
	)
	if isPostgres(url) {
		driver = DriverPostgres
		conn, err = NewPostgresConnection(url)
	} else {
		driver = DriverSQLite
		conn, err = NewSQLiteConnection(strings.TrimPrefix(url, "sqlite://"))
	}
	if err != nil {
		return nil, err
	}

	db := &DB{DB: conn, Driver: driver}
	if err := db.Migrate(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// NewPostgresConnection opens and pings a Postgres pool
func NewPostgresConnection(url string) (*sql.DB, error) {
	db, err := sql.Open(DriverPostgres, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// NewSQLiteConnection opens a SQLite database at path, creating parent
// directories as needed. ":memory:" keeps everything in a single connection.
func NewSQLiteConnection(path string) (*sql.DB, error) {
	if path != Memory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path == Memory {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	return db, nil
}

// Migrate creates the tables the application needs
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Rebind rewrites ? placeholders into the $n form Postgres expects.
// Queries are left untouched for SQLite.
func (db *DB) Rebind(query string) string {
	if db.Driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}
