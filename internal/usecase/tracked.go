package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"directin/internal/domain/tracked"
	"directin/internal/repository"
)

type TrackedUsecase interface {
	List(ctx context.Context) ([]tracked.Job, error)
	Track(ctx context.Context, companyID, jobID string) (tracked.Job, error)
	Untrack(ctx context.Context, jobID string) error
}

type TrackedService struct {
	trackedR repository.TrackedJobRepository
	cache    companyCache
	logger   *log.Logger
	now      func() time.Time
}

func NewTrackedService(trackedRepo repository.TrackedJobRepository, cache companyCache, logger *log.Logger) *TrackedService {
	return &TrackedService{
		trackedR: trackedRepo,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *TrackedService) List(ctx context.Context) ([]tracked.Job, error) {
	jobs, err := s.trackedR.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return jobs, nil
}

// Track pins a job from the company's last fetched snapshot. The snapshot
// is the source of truth here: a job id that is not in the cache cannot
// be tracked, which keeps hand-typed ids from producing phantom rows.
func (s *TrackedService) Track(ctx context.Context, companyID, jobID string) (tracked.Job, error) {
	companyID = strings.TrimSpace(companyID)
	jobID = strings.TrimSpace(jobID)
	if companyID == "" || jobID == "" {
		return tracked.Job{}, fmt.Errorf("%w: company and job ids are required", ErrInvalidInput)
	}

	count, err := s.trackedR.Count(ctx)
	if err != nil {
		return tracked.Job{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if count >= tracked.MaxTracked {
		return tracked.Job{}, fmt.Errorf("%w: at most %d tracked jobs", ErrLimitExceeded, tracked.MaxTracked)
	}

	entry, found, err := s.cache.GetCompanyEntry(ctx, companyID)
	if err != nil {
		return tracked.Job{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !found || entry.Error != "" {
		return tracked.Job{}, fmt.Errorf("%w: no fetched jobs for company %q", ErrNotFound, companyID)
	}

	now := s.now()
	for _, j := range entry.Jobs {
		if j.ID != jobID {
			continue
		}
		t := tracked.Job{
			JobID:         j.ID,
			CompanyID:     companyID,
			CompanyName:   entry.CompanyName,
			Title:         j.Title,
			URL:           j.URL,
			Location:      j.Location,
			PostedAt:      j.PostedAt,
			Status:        tracked.StatusOpen,
			LastCheckedAt: now,
			LastSeenAt:    now,
		}
		if err := s.trackedR.Add(ctx, t); err != nil {
			return tracked.Job{}, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if s.logger != nil {
			s.logger.Printf("[Tracked] job pinned job_id=%s company=%s", jobID, companyID)
		}
		return t, nil
	}
	return tracked.Job{}, fmt.Errorf("%w: job %q not on company %q board", ErrNotFound, jobID, companyID)
}

func (s *TrackedService) Untrack(ctx context.Context, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	if err := s.trackedR.Remove(ctx, jobID); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if s.logger != nil {
		s.logger.Printf("[Tracked] job unpinned job_id=%s", jobID)
	}
	return nil
}

var _ TrackedUsecase = (*TrackedService)(nil)
