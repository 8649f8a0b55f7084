package repository

import (
	"context"

	"directin/internal/database"
	"directin/internal/domain/profile"
)

type ProfileRepository interface {
	GetRoleQueries(ctx context.Context) ([]string, error)
	SetRoleQueries(ctx context.Context, queries []string) error

	ListCompanies(ctx context.Context) ([]profile.Company, error)
	AddCompany(ctx context.Context, c profile.Company) error
	// RemoveCompany reports whether a row was actually deleted.
	RemoveCompany(ctx context.Context, companyID string) (bool, error)
	CountCompanies(ctx context.Context) (int, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetRoleQueries(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT query FROM role_queries ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0, profile.MaxQueries)
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SetRoleQueries replaces the whole query set in one transaction so a
// concurrent reader never observes a partial set.
func (r *PostgresProfileRepository) SetRoleQueries(ctx context.Context, queries []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM role_queries`); err != nil {
		return err
	}
	for i, q := range queries {
		_, err := tx.Exec(ctx,
			`INSERT INTO role_queries (position, query) VALUES ($1, $2)`,
			i, q)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PostgresProfileRepository) ListCompanies(ctx context.Context) ([]profile.Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, provider, board_slug, domain, careers_url
		 FROM tracked_companies
		 ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Company, 0, profile.MaxCompanies)
	for rows.Next() {
		var c profile.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Provider, &c.BoardSlug, &c.Domain, &c.CareersURL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) AddCompany(ctx context.Context, c profile.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tracked_companies (id, name, provider, board_slug, domain, careers_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO NOTHING`,
		c.ID, c.Name, c.Provider, c.BoardSlug, c.Domain, c.CareersURL)
	return err
}

func (r *PostgresProfileRepository) RemoveCompany(ctx context.Context, companyID string) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM tracked_companies WHERE id = $1`, companyID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresProfileRepository) CountCompanies(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tracked_companies`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

var _ ProfileRepository = (*PostgresProfileRepository)(nil)
