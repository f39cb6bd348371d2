package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMissingDSN = errors.New("DATABASE_URL not set")

// ConnectPostgres opens a pool, pings it and makes sure the schema exists.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	if err := InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return db, nil
}

// InitSchema creates the menu tables when they are missing.
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	// -------------------------------
	// DISHES
	// -------------------------------
	dishesSQL := `
		CREATE TABLE IF NOT EXISTS dishes (
			id          TEXT PRIMARY KEY,
			position    INT NOT NULL DEFAULT 0,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price       TEXT NOT NULL,
			category    TEXT NOT NULL CHECK (category IN ('meat', 'vegetarian')),
			dietary     TEXT[] NOT NULL DEFAULT '{}',
			spice_level TEXT NULL CHECK (spice_level IN ('mild', 'medium', 'spicy')),
			featured    BOOLEAN NOT NULL DEFAULT FALSE
		)
	`
	if _, err := db.Exec(ctx, dishesSQL); err != nil {
		return err
	}

	positionIndexSQL := `
		CREATE INDEX IF NOT EXISTS dishes_position_idx ON dishes (position)
	`
	if _, err := db.Exec(ctx, positionIndexSQL); err != nil {
		return err
	}

	return nil
}
