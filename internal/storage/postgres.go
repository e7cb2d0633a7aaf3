package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dearfuture/letters/internal/dbx"
	"github.com/dearfuture/letters/internal/storage/migrations"
)

// Postgres stores the blob in the same single-row key/value shape as the
// SQLite backend, for deployments that keep the state in a hosted database.
type Postgres struct {
	db dbx.DBTX
}

func NewPostgres(db dbx.DBTX) *Postgres {
	return &Postgres{db: db}
}

// OpenPostgres connects via the pgx database/sql driver and applies pending
// migrations.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "postgres"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func (p *Postgres) Load(ctx context.Context) ([]byte, error) {
	var value []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = $1`, stateKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load app_state[%s]: %w", stateKey, err)
	}
	return value, nil
}

func (p *Postgres) Save(ctx context.Context, blob []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, stateKey, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save app_state[%s]: %w", stateKey, err)
	}
	return nil
}
