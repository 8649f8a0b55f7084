package repository

import (
	"context"
	"time"

	"directin/internal/database"
	"directin/internal/domain/tracked"
)

type TrackedJobRepository interface {
	List(ctx context.Context) ([]tracked.Job, error)
	Count(ctx context.Context) (int, error)
	Add(ctx context.Context, j tracked.Job) error
	Remove(ctx context.Context, jobID string) error
	RemoveByCompany(ctx context.Context, companyID string) error
	// ReplaceAll writes the reconciled list back in one transaction.
	ReplaceAll(ctx context.Context, jobs []tracked.Job) error
}

type PostgresTrackedJobRepository struct {
	db database.DB
}

func NewPostgresTrackedJobRepository(db database.DB) *PostgresTrackedJobRepository {
	return &PostgresTrackedJobRepository{db: db}
}

func (r *PostgresTrackedJobRepository) List(ctx context.Context) ([]tracked.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id, company_id, company_name, title, url, location, posted_at, status, last_checked_at, last_seen_at
		 FROM tracked_jobs
		 ORDER BY last_seen_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tracked.Job, 0, tracked.MaxTracked)
	for rows.Next() {
		var j tracked.Job
		var postedAt *time.Time
		var status string
		if err := rows.Scan(&j.JobID, &j.CompanyID, &j.CompanyName, &j.Title, &j.URL, &j.Location, &postedAt, &status, &j.LastCheckedAt, &j.LastSeenAt); err != nil {
			return nil, err
		}
		if postedAt != nil {
			j.PostedAt = *postedAt
		}
		st, err := tracked.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		j.Status = st
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTrackedJobRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tracked_jobs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresTrackedJobRepository) Add(ctx context.Context, j tracked.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tracked_jobs (job_id, company_id, company_name, title, url, location, posted_at, status, last_checked_at, last_seen_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (job_id) DO NOTHING`,
		j.JobID, j.CompanyID, j.CompanyName, j.Title, j.URL, j.Location,
		nullableTime(j.PostedAt), string(j.Status), j.LastCheckedAt, j.LastSeenAt)
	return err
}

func (r *PostgresTrackedJobRepository) Remove(ctx context.Context, jobID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tracked_jobs WHERE job_id = $1`, jobID)
	return err
}

func (r *PostgresTrackedJobRepository) RemoveByCompany(ctx context.Context, companyID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tracked_jobs WHERE company_id = $1`, companyID)
	return err
}

func (r *PostgresTrackedJobRepository) ReplaceAll(ctx context.Context, jobs []tracked.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM tracked_jobs`); err != nil {
		return err
	}
	for _, j := range jobs {
		_, err := tx.Exec(ctx,
			`INSERT INTO tracked_jobs (job_id, company_id, company_name, title, url, location, posted_at, status, last_checked_at, last_seen_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			j.JobID, j.CompanyID, j.CompanyName, j.Title, j.URL, j.Location,
			nullableTime(j.PostedAt), string(j.Status), j.LastCheckedAt, j.LastSeenAt)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

var _ TrackedJobRepository = (*PostgresTrackedJobRepository)(nil)
