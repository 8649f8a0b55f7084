package usecase

import (
	"context"
	"errors"
	"time"

	"directin/internal/domain/job"
	"directin/internal/domain/profile"
	"directin/internal/domain/tracked"
	"directin/internal/infrastructure/provider"
	"directin/internal/repository"
)

type fakeProfileRepo struct {
	queries   []string
	companies []profile.Company

	queriesErr error
	setErr     error
}

func (f *fakeProfileRepo) GetRoleQueries(ctx context.Context) ([]string, error) {
	return f.queries, f.queriesErr
}

func (f *fakeProfileRepo) SetRoleQueries(ctx context.Context, queries []string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.queries = queries
	return nil
}

func (f *fakeProfileRepo) ListCompanies(ctx context.Context) ([]profile.Company, error) {
	return f.companies, nil
}

func (f *fakeProfileRepo) AddCompany(ctx context.Context, c profile.Company) error {
	f.companies = append(f.companies, c)
	return nil
}

func (f *fakeProfileRepo) RemoveCompany(ctx context.Context, companyID string) (bool, error) {
	for i, c := range f.companies {
		if c.ID == companyID {
			f.companies = append(f.companies[:i], f.companies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProfileRepo) CountCompanies(ctx context.Context) (int, error) {
	return len(f.companies), nil
}

type fakeTrackedRepo struct {
	jobs     []tracked.Job
	replaced [][]tracked.Job
}

func (f *fakeTrackedRepo) List(ctx context.Context) ([]tracked.Job, error) { return f.jobs, nil }
func (f *fakeTrackedRepo) Count(ctx context.Context) (int, error)          { return len(f.jobs), nil }

func (f *fakeTrackedRepo) Add(ctx context.Context, j tracked.Job) error {
	for _, have := range f.jobs {
		if have.JobID == j.JobID {
			return nil
		}
	}
	f.jobs = append(f.jobs, j)
	return nil
}

func (f *fakeTrackedRepo) Remove(ctx context.Context, jobID string) error {
	for i, j := range f.jobs {
		if j.JobID == jobID {
			f.jobs = append(f.jobs[:i], f.jobs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeTrackedRepo) RemoveByCompany(ctx context.Context, companyID string) error {
	kept := f.jobs[:0]
	for _, j := range f.jobs {
		if j.CompanyID != companyID {
			kept = append(kept, j)
		}
	}
	f.jobs = kept
	return nil
}

func (f *fakeTrackedRepo) ReplaceAll(ctx context.Context, jobs []tracked.Job) error {
	f.jobs = jobs
	f.replaced = append(f.replaced, jobs)
	return nil
}

type fakeDirectoryRepo struct {
	byID   map[string]profile.Company
	bySlug map[string]profile.Company
}

func (f *fakeDirectoryRepo) Suggest(ctx context.Context, term string, limit int) ([]profile.Company, error) {
	out := []profile.Company{}
	for _, c := range f.byID {
		out = append(out, c)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeDirectoryRepo) FindByID(ctx context.Context, id string) (profile.Company, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return profile.Company{}, repository.ErrNotFound
}

func (f *fakeDirectoryRepo) FindBySlug(ctx context.Context, slug string) (profile.Company, error) {
	if c, ok := f.bySlug[slug]; ok {
		return c, nil
	}
	return profile.Company{}, repository.ErrNotFound
}

type fakeCache struct {
	entries map[string]job.CompanyCacheEntry
	locked  bool
	lockErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]job.CompanyCacheEntry{}}
}

func (f *fakeCache) GetCompanyEntry(ctx context.Context, companyID string) (job.CompanyCacheEntry, bool, error) {
	e, ok := f.entries[companyID]
	return e, ok, nil
}

func (f *fakeCache) SetCompanyEntry(ctx context.Context, entry job.CompanyCacheEntry) error {
	f.entries[entry.CompanyID] = entry
	return nil
}

func (f *fakeCache) DeleteCompanyEntry(ctx context.Context, companyID string) error {
	delete(f.entries, companyID)
	return nil
}

func (f *fakeCache) AcquireRefreshLock(ctx context.Context, ttl time.Duration) (bool, error) {
	if f.lockErr != nil {
		return false, f.lockErr
	}
	if f.locked {
		return false, nil
	}
	f.locked = true
	return true, nil
}

func (f *fakeCache) ReleaseRefreshLock(ctx context.Context) { f.locked = false }

type fakeProviderClient struct {
	name   string
	boards map[string]provider.Board
	errs   map[string]error
}

func (f *fakeProviderClient) Name() string { return f.name }

func (f *fakeProviderClient) FetchBoard(ctx context.Context, boardSlug string) (provider.Board, error) {
	if err, ok := f.errs[boardSlug]; ok {
		return provider.Board{}, err
	}
	if b, ok := f.boards[boardSlug]; ok {
		return b, nil
	}
	return provider.Board{}, errors.New("board not found: " + boardSlug)
}

type fakeNotifier struct {
	badges []Badge
}

func (f *fakeNotifier) NotifyRefreshCompleted(badge Badge) {
	f.badges = append(f.badges, badge)
}

func fixedNow(t time.Time) func() time.Time { return func() time.Time { return t } }

func companiesNamed(ids ...string) []profile.Company {
	out := make([]profile.Company, 0, len(ids))
	for _, id := range ids {
		out = append(out, profile.Company{ID: id, Name: id, Provider: "greenhouse", BoardSlug: id})
	}
	return out
}
