package repository

import (
	"context"
	"fmt"

	"cinema-ticketing/pkg/database"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS halls (
		id          UUID PRIMARY KEY,
		venue_name  TEXT NOT NULL,
		hall_number INT NOT NULL,
		seat_rows   INT NOT NULL,
		seat_cols   INT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id             UUID PRIMARY KEY,
		venue_name     TEXT NOT NULL,
		hall_number    INT NOT NULL,
		session_number INT NOT NULL,
		name           TEXT NOT NULL,
		starts_at      TEXT NOT NULL,
		ends_at        TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id            UUID PRIMARY KEY,
		order_ref     TEXT NOT NULL,
		session_id    UUID NOT NULL REFERENCES sessions (id),
		customer_name TEXT NOT NULL,
		total_seats   INT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_seats (
		order_id    UUID NOT NULL REFERENCES orders (id),
		seat_row    INT NOT NULL,
		seat_column INT NOT NULL,
		PRIMARY KEY (order_id, seat_row, seat_column)
	)`,
}

// EnsureSchema creates the journal tables when they are missing.
func EnsureSchema(ctx context.Context, db database.PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
