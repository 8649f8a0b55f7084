package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"directin/internal/domain/job"
	"directin/internal/domain/matching"
	"directin/internal/domain/profile"
	"directin/internal/domain/tracked"
	"directin/internal/infrastructure/provider"
	"directin/internal/repository"
)

const refreshLockTTL = 2 * time.Minute

// CompanyRefreshResult reports one company's outcome within a refresh run.
type CompanyRefreshResult struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	JobCount    int    `json:"job_count"`
	MatchCount  int    `json:"match_count"`
	Error       string `json:"error,omitempty"`
}

// RefreshSummary is handed back to the caller and broadcast to overlay
// clients after a run.
type RefreshSummary struct {
	RanAt        time.Time              `json:"ran_at"`
	Companies    []CompanyRefreshResult `json:"companies"`
	TotalMatches int                    `json:"total_matches"`
	NewestPosted time.Time              `json:"newest_posted,omitzero"`
	Badge        Badge                  `json:"badge"`
}

type RefreshUsecase interface {
	RefreshAll(ctx context.Context) (RefreshSummary, error)
}

type boardFetcher interface {
	For(providerName string) (provider.Client, error)
}

type refreshNotifier interface {
	NotifyRefreshCompleted(badge Badge)
}

type RefreshService struct {
	profiles repository.ProfileRepository
	trackedR repository.TrackedJobRepository
	cache    companyCache
	boards   boardFetcher
	notifier refreshNotifier
	freshFor time.Duration
	logger   *log.Logger
	now      func() time.Time
}

func NewRefreshService(
	profiles repository.ProfileRepository,
	trackedRepo repository.TrackedJobRepository,
	cache companyCache,
	boards boardFetcher,
	notifier refreshNotifier,
	freshnessDays int,
	logger *log.Logger,
) *RefreshService {
	if freshnessDays <= 0 {
		freshnessDays = 7
	}
	return &RefreshService{
		profiles: profiles,
		trackedR: trackedRepo,
		cache:    cache,
		boards:   boards,
		notifier: notifier,
		freshFor: time.Duration(freshnessDays) * 24 * time.Hour,
		logger:   logger,
		now:      time.Now,
	}
}

// RefreshAll walks the tracked companies strictly one at a time: a single
// outbound request is in flight at any moment, and one company's failure
// is recorded in its own cache entry without touching the others. A
// second concurrent call is rejected with ErrRefreshInFlight instead of
// racing the first.
func (s *RefreshService) RefreshAll(ctx context.Context) (RefreshSummary, error) {
	ok, err := s.cache.AcquireRefreshLock(ctx, refreshLockTTL)
	if err != nil {
		return RefreshSummary{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !ok {
		return RefreshSummary{}, ErrRefreshInFlight
	}
	defer s.cache.ReleaseRefreshLock(ctx)

	runID := uuid.NewString()
	started := s.now()

	companies, err := s.profiles.ListCompanies(ctx)
	if err != nil {
		return RefreshSummary{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	queries, err := s.profiles.GetRoleQueries(ctx)
	if err != nil {
		return RefreshSummary{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	trackedJobs, err := s.trackedR.List(ctx)
	if err != nil {
		return RefreshSummary{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if s.logger != nil {
		s.logger.Printf("[Refresh] run started run_id=%s companies=%d", runID, len(companies))
	}

	summary := RefreshSummary{RanAt: started, Companies: make([]CompanyRefreshResult, 0, len(companies))}
	entries := make([]job.CompanyCacheEntry, 0, len(companies))

	for _, c := range companies {
		entry, trackedAfter := s.refreshCompany(ctx, c, trackedJobs)
		trackedJobs = trackedAfter

		result := CompanyRefreshResult{
			CompanyID:   c.ID,
			CompanyName: entry.CompanyName,
			JobCount:    len(entry.Jobs),
			Error:       entry.Error,
		}
		if entry.Error == "" {
			matches := matching.RelevantMatches(entry.Jobs, queries)
			result.MatchCount = len(matches)
			summary.TotalMatches += len(matches)
			if len(matches) > 0 {
				if top := matches[0].Job.PostedAt; !top.IsZero() && top.After(summary.NewestPosted) {
					summary.NewestPosted = top
				}
			}
			entries = append(entries, entry)
		}
		summary.Companies = append(summary.Companies, result)

		if s.logger != nil {
			s.logger.Printf("[Refresh] company done run_id=%s company=%s jobs=%d matches=%d error=%q",
				runID, c.ID, result.JobCount, result.MatchCount, result.Error)
		}
	}

	if err := s.trackedR.ReplaceAll(ctx, trackedJobs); err != nil {
		return RefreshSummary{}, fmt.Errorf("%w: persist tracked jobs: %v", ErrInternal, err)
	}

	summary.Badge = countNotifications(entries, queries, s.freshFor, s.now())
	if s.notifier != nil {
		s.notifier.NotifyRefreshCompleted(summary.Badge)
	}

	if s.logger != nil {
		s.logger.Printf("[Refresh] run finished run_id=%s total_matches=%d badge=%s elapsed=%s",
			runID, summary.TotalMatches, summary.Badge.Display, s.now().Sub(started))
	}
	return summary, nil
}

// refreshCompany fetches one board, ingests the result against the prior
// snapshot and reconciles the tracked jobs of that company. Fetch errors
// are captured in the returned cache entry, never propagated.
func (s *RefreshService) refreshCompany(ctx context.Context, c profile.Company, trackedJobs []tracked.Job) (job.CompanyCacheEntry, []tracked.Job) {
	now := s.now()

	client, err := s.boards.For(c.Provider)
	if err != nil {
		entry := job.CompanyCacheEntry{
			CompanyID:   c.ID,
			CompanyName: c.Name,
			FetchedAt:   now,
			Error:       provider.UnsupportedSentinel,
		}
		_ = s.cache.SetCompanyEntry(ctx, entry)
		return entry, trackedJobs
	}

	board, err := client.FetchBoard(ctx, c.BoardSlug)
	if err != nil {
		entry := job.CompanyCacheEntry{
			CompanyID:   c.ID,
			CompanyName: c.Name,
			FetchedAt:   now,
			Error:       err.Error(),
		}
		_ = s.cache.SetCompanyEntry(ctx, entry)
		return entry, trackedJobs
	}

	var previous []job.IngestedJob
	if prev, found, err := s.cache.GetCompanyEntry(ctx, c.ID); err == nil && found {
		previous = prev.Jobs
	}

	jobs := job.Ingest(c.ID, c.Provider, board.Postings, previous, now)

	name := board.CompanyName
	if name == "" {
		name = c.Name
	}
	entry := job.CompanyCacheEntry{
		CompanyID:   c.ID,
		CompanyName: name,
		Jobs:        jobs,
		FetchedAt:   now,
	}
	if err := s.cache.SetCompanyEntry(ctx, entry); err != nil && s.logger != nil {
		s.logger.Printf("[Refresh] cache write failed company=%s err=%v", c.ID, err)
	}

	return entry, tracked.Reconcile(trackedJobs, c.ID, jobs, now)
}

var _ RefreshUsecase = (*RefreshService)(nil)
