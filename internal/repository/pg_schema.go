package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgSchema mirrors the two MongoDB collections. seq breaks created_at ties
// in insertion order.
const pgSchema = `
CREATE TABLE IF NOT EXISTS contact_messages (
	seq        BIGINT GENERATED ALWAYS AS IDENTITY,
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	subject    TEXT NOT NULL,
	message    TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'unread',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS contact_messages_created_at_idx
	ON contact_messages (created_at DESC, seq DESC);

CREATE TABLE IF NOT EXISTS portfolio_config (
	id           TEXT PRIMARY KEY,
	section      TEXT NOT NULL UNIQUE,
	data         JSONB NOT NULL,
	last_updated TIMESTAMPTZ NOT NULL
);`

// EnsurePgSchema creates the tables and indexes when they do not exist yet.
// It is idempotent and never alters existing tables.
func EnsurePgSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		return fmt.Errorf("ensure postgres schema: %w", err)
	}
	return nil
}
