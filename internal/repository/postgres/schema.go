package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements are idempotent so EnsureSchema can run on every start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id         SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL,
		phone      TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS customer_details (
		customer_id       INTEGER PRIMARY KEY REFERENCES customers(id) ON DELETE CASCADE,
		street            TEXT NOT NULL DEFAULT '',
		postal_code       TEXT NOT NULL DEFAULT '',
		city              TEXT NOT NULL DEFAULT '',
		email             TEXT NOT NULL DEFAULT '',
		marketing_consent BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id                  SERIAL PRIMARY KEY,
		make                TEXT NOT NULL,
		model               TEXT NOT NULL,
		body_type           TEXT NOT NULL DEFAULT '',
		registration_number TEXT UNIQUE,
		base_daily_rate     NUMERIC(10,2) NOT NULL,
		availability        TEXT NOT NULL DEFAULT 'available'
	)`,
	`CREATE TABLE IF NOT EXISTS price_rules (
		id         SERIAL PRIMARY KEY,
		vehicle_id INTEGER NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		season     TEXT NOT NULL,
		multiplier NUMERIC(6,3) NOT NULL,
		valid_from DATE NOT NULL,
		valid_to   DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rentals (
		id          SERIAL PRIMARY KEY,
		customer_id INTEGER NOT NULL REFERENCES customers(id),
		vehicle_id  INTEGER NOT NULL REFERENCES vehicles(id),
		start_date  DATE NOT NULL,
		end_date    DATE NOT NULL,
		daily_rate  NUMERIC(10,2) NOT NULL,
		total_cost  NUMERIC(12,2) NOT NULL,
		status      TEXT NOT NULL CHECK (status IN ('reserved','active','completed','canceled'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rentals_vehicle_dates ON rentals (vehicle_id, start_date, end_date)`,
	`CREATE INDEX IF NOT EXISTS idx_price_rules_vehicle ON price_rules (vehicle_id, valid_from)`,
}

// EnsureSchema creates the relations the application needs if they do not
// exist yet. Called once at startup, after the connection ping.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
