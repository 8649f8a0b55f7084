package repository

import (
	"context"
	"errors"
	"strings"

	"directin/internal/database"
	"directin/internal/domain/profile"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("not found")

type CompanyDirectoryRepository interface {
	// Suggest matches directory entries whose name or board slug contains q.
	Suggest(ctx context.Context, q string, limit int) ([]profile.Company, error)
	FindByID(ctx context.Context, id string) (profile.Company, error)
	FindBySlug(ctx context.Context, slug string) (profile.Company, error)
}

type PostgresCompanyDirectoryRepository struct {
	db database.DB
}

func NewPostgresCompanyDirectoryRepository(db database.DB) *PostgresCompanyDirectoryRepository {
	return &PostgresCompanyDirectoryRepository{db: db}
}

func (r *PostgresCompanyDirectoryRepository) Suggest(ctx context.Context, q string, limit int) ([]profile.Company, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil, nil
	}
	if limit <= 0 || limit > 25 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, provider, board_slug, domain, careers_url
		 FROM company_directory
		 WHERE LOWER(name) LIKE '%' || $1 || '%' OR LOWER(board_slug) LIKE '%' || $1 || '%'
		 ORDER BY name ASC
		 LIMIT $2`,
		q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Company, 0, limit)
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

func (r *PostgresCompanyDirectoryRepository) FindByID(ctx context.Context, id string) (profile.Company, error) {
	return r.findBy(ctx, `id = $1`, id)
}

func (r *PostgresCompanyDirectoryRepository) FindBySlug(ctx context.Context, slug string) (profile.Company, error) {
	return r.findBy(ctx, `board_slug = $1`, strings.ToLower(strings.TrimSpace(slug)))
}

func (r *PostgresCompanyDirectoryRepository) findBy(ctx context.Context, where string, arg any) (profile.Company, error) {
	var c profile.Company
	err := r.db.QueryRow(ctx,
		`SELECT id, name, provider, board_slug, domain, careers_url
		 FROM company_directory WHERE `+where,
		arg).Scan(&c.ID, &c.Name, &c.Provider, &c.BoardSlug, &c.Domain, &c.CareersURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Company{}, ErrNotFound
		}
		return profile.Company{}, err
	}
	return c, nil
}

var _ CompanyDirectoryRepository = (*PostgresCompanyDirectoryRepository)(nil)
