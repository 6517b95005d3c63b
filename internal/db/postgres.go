package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresConfig struct {
	DSN string

	// The site issues one round-trip per request, a small pool is plenty.
	MaxConns int32
	MinConns int32
}

// ConnectPostgres opens a pgx pool and verifies it with a ping.
func ConnectPostgres(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	} else {
		poolCfg.MaxConns = 5
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS company_logos (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		image_url TEXT NOT NULL,
		dark_mode_url TEXT,
		alt_text TEXT,
		display_order INTEGER NOT NULL CHECK (display_order >= 1),
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`ALTER TABLE company_logos ADD COLUMN IF NOT EXISTS dark_mode_url TEXT`,
	`CREATE INDEX IF NOT EXISTS company_logos_display_order_idx ON company_logos (display_order, id)`,
}

// MigratePostgres applies the schema. Every statement is idempotent.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range postgresSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}

// PostgresTables lists the tables in the public schema.
func PostgresTables(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	rows, err := pool.Query(ctx, `SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func PostgresVersion(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	var version string
	if err := pool.QueryRow(ctx, `SELECT version()`).Scan(&version); err != nil {
		return "", err
	}
	return version, nil
}
