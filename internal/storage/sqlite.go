package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/hiresphere/hiresphere/internal/dbx"
	"github.com/hiresphere/hiresphere/internal/storage/migrations"
)

// SQLiteStore keeps slots in a local SQLite database. This is the default
// backend: a single file, synchronous writes, no server.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dsn and applies
// migrations. The caller must import a sqlite driver registered as "sqlite",
// e.g. modernc.org/sqlite.
func NewSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, db, "sqlite"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, slot string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE slot = ?`, slot).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slot[%s]: %w", slot, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, slot string, value []byte) error {
	return upsertSlot(ctx, s.db, `
		INSERT INTO slots (slot, value) VALUES (?, ?)
		ON CONFLICT(slot) DO UPDATE SET value = excluded.value
	`, slot, value)
}

func (s *SQLiteStore) SetMany(ctx context.Context, values map[string][]byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, slot := range sortedSlots(values) {
			err := upsertSlot(ctx, tx, `
				INSERT INTO slots (slot, value) VALUES (?, ?)
				ON CONFLICT(slot) DO UPDATE SET value = excluded.value
			`, slot, values[slot])
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Delete(ctx context.Context, slot string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("failed to delete slot[%s]: %w", slot, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
