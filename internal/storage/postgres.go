package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// PostgresStore keeps every document in one keyed table, so the per-key
// atomicity contract maps onto row locks instead of schema design.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to connect to postgres: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: failed to apply migrations: %w", err)
	}

	log.Info().Msg("Connected to PostgreSQL")
	return &PostgresStore{db: db}, nil
}

func applyMigrations(db *sqlx.DB) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migration instance: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Debug().Msg("No new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info().Msg("New migrations applied successfully")
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM storage_documents WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: failed to read key %s: %w", key, err)
	}
	return value, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO storage_documents (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("storage: failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM storage_documents WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("storage: failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, key string, fn UpdateFunc) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error().Err(rbErr).Str("key", key).Msg("Failed to rollback update transaction")
			}
		}
	}()

	// SELECT ... FOR UPDATE locks nothing when the row does not exist yet, so
	// two first writers for a new key could both observe nil and the second
	// upsert would overwrite the first. The advisory lock serializes all
	// updates of one key, rows present or not, and releases on commit/rollback.
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("storage: failed to lock key %s: %w", key, err)
	}

	var old []byte
	err = tx.GetContext(ctx, &old, `SELECT value FROM storage_documents WHERE key = $1 FOR UPDATE`, key)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("storage: failed to lock key %s: %w", key, err)
	}
	err = nil

	next, err := fn(old)
	if err != nil {
		return err
	}

	if next == nil {
		_, err = tx.ExecContext(ctx, `DELETE FROM storage_documents WHERE key = $1`, key)
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO storage_documents (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		`, key, next)
	}
	if err != nil {
		return fmt.Errorf("storage: failed to update key %s: %w", key, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: failed to commit update for key %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
