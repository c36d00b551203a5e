package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/hiresphere/hiresphere/internal/dbx"
	"github.com/hiresphere/hiresphere/internal/storage/migrations"
)

// PostgresStore keeps slots in Postgres for deployments where several
// machines share one board. It is still a plain slot store: concurrent
// writers from different processes keep last-write-wins semantics, the
// backend adds no cross-process coordination.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to dsn and applies migrations.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, db, "postgres"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, slot string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE slot = $1`, slot).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slot[%s]: %w", slot, err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, slot string, value []byte) error {
	return upsertSlot(ctx, s.db, `
		INSERT INTO slots (slot, value) VALUES ($1, $2)
		ON CONFLICT (slot) DO UPDATE SET value = excluded.value
	`, slot, value)
}

func (s *PostgresStore) SetMany(ctx context.Context, values map[string][]byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, slot := range sortedSlots(values) {
			err := upsertSlot(ctx, tx, `
				INSERT INTO slots (slot, value) VALUES ($1, $2)
				ON CONFLICT (slot) DO UPDATE SET value = excluded.value
			`, slot, values[slot])
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PostgresStore) Delete(ctx context.Context, slot string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE slot = $1`, slot)
	if err != nil {
		return fmt.Errorf("failed to delete slot[%s]: %w", slot, err)
	}
	return nil
}

func (s *PostgresStore) Close() error { return s.db.Close() }
