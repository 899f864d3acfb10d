package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/advmanik/casefolio/pkg/schema"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const casesDDL = `
	CREATE TABLE IF NOT EXISTS cases (
		id         UUID PRIMARY KEY,
		title      TEXT NOT NULL,
		category   TEXT NOT NULL,
		summary    TEXT NOT NULL,
		outcome    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`

// PostgresStore implements the case collection over a pgx connection pool.
// The pool is created once at startup and shared by all request handlers;
// pgx serializes access per connection.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to the database, verifies the connection, and
// ensures the cases table exists. database is applied when the DSN does not
// name one. insecureTLS relaxes certificate verification and must only be
// set outside production.
func OpenPostgres(ctx context.Context, dsn, database string, insecureTLS bool) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database DSN: %w", err)
	}
	if cfg.ConnConfig.Database == "" {
		cfg.ConnConfig.Database = database
	}
	if insecureTLS && cfg.ConnConfig.TLSConfig != nil {
		cfg.ConnConfig.TLSConfig.InsecureSkipVerify = true
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	if _, err := pool.Exec(ctx, casesDDL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure cases table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]schema.Case, error) {
	// Secondary sort on id keeps the order stable when timestamps collide.
	rows, err := s.pool.Query(ctx, `
		SELECT id::text, title, category, summary, outcome, created_at
		FROM cases
		ORDER BY created_at DESC, id::text DESC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := make([]schema.Case, 0)
	for rows.Next() {
		var c schema.Case
		if err := rows.Scan(&c.ID, &c.Title, &c.Category, &c.Summary, &c.Outcome, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}

func (s *PostgresStore) Insert(ctx context.Context, c schema.Case) (schema.Case, error) {
	c.ID = uuid.NewString()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO cases (id, title, category, summary, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Title, c.Category, c.Summary, c.Outcome, c.CreatedAt)
	if err != nil {
		return schema.Case{}, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) Update(ctx context.Context, id string, d schema.CaseDraft) (schema.Case, error) {
	if _, err := uuid.Parse(id); err != nil {
		return schema.Case{}, ErrCaseNotFound
	}

	row := s.pool.QueryRow(ctx, `
		UPDATE cases
		SET title = $2, category = $3, summary = $4, outcome = $5
		WHERE id = $1
		RETURNING id::text, title, category, summary, outcome, created_at`,
		id, d.Title, d.Category, d.Summary, d.Outcome)

	var c schema.Case
	err := row.Scan(&c.ID, &c.Title, &c.Category, &c.Summary, &c.Outcome, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return schema.Case{}, ErrCaseNotFound
	}
	if err != nil {
		return schema.Case{}, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrCaseNotFound
	}

	ct, err := s.pool.Exec(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrCaseNotFound
	}
	return nil
}

// Wait exists to satisfy the Store lifecycle; Postgres writes synchronously.
func (s *PostgresStore) Wait() {}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
