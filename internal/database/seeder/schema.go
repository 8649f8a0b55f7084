package seeder

import (
	"context"

	"directin/internal/database"
)

// SchemaSeeder creates the tables the repositories expect. Statements are
// idempotent so the seeder can run on every boot.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS role_queries (
		position   INT PRIMARY KEY,
		query      TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tracked_companies (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		provider    TEXT NOT NULL,
		board_slug  TEXT NOT NULL DEFAULT '',
		domain      TEXT NOT NULL DEFAULT '',
		careers_url TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tracked_jobs (
		job_id          TEXT PRIMARY KEY,
		company_id      TEXT NOT NULL,
		company_name    TEXT NOT NULL DEFAULT '',
		title           TEXT NOT NULL DEFAULT '',
		url             TEXT NOT NULL DEFAULT '',
		location        TEXT NOT NULL DEFAULT '',
		posted_at       TIMESTAMPTZ,
		status          TEXT NOT NULL DEFAULT 'open',
		last_checked_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_seen_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tracked_jobs_company ON tracked_jobs (company_id)`,
	`CREATE TABLE IF NOT EXISTS company_directory (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		provider    TEXT NOT NULL,
		board_slug  TEXT NOT NULL DEFAULT '',
		domain      TEXT NOT NULL DEFAULT '',
		careers_url TEXT NOT NULL DEFAULT ''
	)`,
}

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
