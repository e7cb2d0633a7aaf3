package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/dearfuture/letters/internal/dbx"
	"github.com/dearfuture/letters/internal/storage/migrations"
)

// stateKey is the row under which the serialized collection lives in the
// app_state table, for both SQL backends.
const stateKey = "letters"

// SQLite stores the blob in a single-row key/value table. The schema is
// created by OpenSQLite via goose migrations; NewSQLite assumes it exists.
type SQLite struct {
	db dbx.DBTX
}

func NewSQLite(db dbx.DBTX) *SQLite {
	return &SQLite{db: db}
}

// OpenSQLite opens (creating if needed) the database at dsn and applies
// pending migrations. The caller must have the modernc.org/sqlite driver
// imported.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "sqlite"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func (s *SQLite) Load(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, stateKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load app_state[%s]: %w", stateKey, err)
	}
	return value, nil
}

func (s *SQLite) Save(ctx context.Context, blob []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, stateKey, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save app_state[%s]: %w", stateKey, err)
	}
	return nil
}
