package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS company_inquiries (
		id                     UUID PRIMARY KEY,
		company_name           TEXT NOT NULL,
		email                  TEXT NOT NULL,
		engineering_discipline TEXT NOT NULL,
		message                TEXT,
		created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS engineer_applications (
		id                UUID PRIMARY KEY,
		full_name         TEXT NOT NULL,
		email             TEXT NOT NULL,
		country_of_origin TEXT NOT NULL,
		specialization    TEXT NOT NULL,
		years_experience  INTEGER NOT NULL DEFAULT 0 CHECK (years_experience >= 0),
		linkedin_url      TEXT,
		cv_url            TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS project_submissions (
		id                     UUID PRIMARY KEY,
		company_name           TEXT NOT NULL,
		email                  TEXT NOT NULL,
		phone                  TEXT,
		project_title          TEXT NOT NULL,
		abstract               TEXT NOT NULL,
		engineering_discipline TEXT NOT NULL,
		attachment_urls        TEXT[] NOT NULL DEFAULT '{}',
		created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the submission tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
