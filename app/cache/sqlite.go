package cache

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/frontend-hunter/opp-comb/app/listing"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// SQLite is an embedded Store for single-node deployments that want the
// cache to survive restarts without running a Redis server.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// modernc sqlite serializes writes itself; a single connection avoids
	// SQLITE_BUSY under concurrent fetches.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]listing.Item, bool, error) {
	var payload []byte
	var expiresAt int64

	err := s.db.QueryRowContext(ctx, `
		SELECT payload, expires_at FROM cache_entries WHERE key = ?
	`, key).Scan(&payload, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	if time.Now().Unix() >= expiresAt {
		// Expired rows are reaped on read.
		s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE key = ?`, key)
		return nil, false, nil
	}

	var items []listing.Item
	if err := json.Unmarshal(payload, &items); err != nil {
		s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE key = ?`, key)
		return nil, false, nil
	}

	return items, true, nil
}

func (s *SQLite) Set(ctx context.Context, key string, items []listing.Item, ttl time.Duration) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal items for key %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (key, payload, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, expires_at = excluded.expires_at
	`, key, payload, time.Now().Add(ttl).Unix())
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
