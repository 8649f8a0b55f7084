package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"directin/internal/domain/job"
	"directin/internal/domain/matching"
	"directin/internal/repository"
)

// BadgeCap is the largest count the badge displays; anything beyond
// renders as "99+".
const BadgeCap = 99

type Badge struct {
	Count   int    `json:"count"`
	Display string `json:"display"`
}

type BadgeUsecase interface {
	NotificationCount(ctx context.Context) (Badge, error)
}

type BadgeService struct {
	profiles repository.ProfileRepository
	cache    companyCache
	freshFor time.Duration
	logger   *log.Logger
	now      func() time.Time
}

func NewBadgeService(profiles repository.ProfileRepository, cache companyCache, freshnessDays int, logger *log.Logger) *BadgeService {
	if freshnessDays <= 0 {
		freshnessDays = 7
	}
	return &BadgeService{
		profiles: profiles,
		cache:    cache,
		freshFor: time.Duration(freshnessDays) * 24 * time.Hour,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *BadgeService) NotificationCount(ctx context.Context) (Badge, error) {
	companies, err := s.profiles.ListCompanies(ctx)
	if err != nil {
		return Badge{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	queries, err := s.profiles.GetRoleQueries(ctx)
	if err != nil {
		return Badge{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	entries := make([]job.CompanyCacheEntry, 0, len(companies))
	for _, c := range companies {
		entry, found, err := s.cache.GetCompanyEntry(ctx, c.ID)
		if err != nil || !found {
			continue
		}
		entries = append(entries, entry)
	}

	return countNotifications(entries, queries, s.freshFor, s.now()), nil
}

// countNotifications rolls fresh relevant matches across companies into a
// single badge. Matches are deduplicated by job id across companies, so
// an id collision shares one notification slot.
func countNotifications(entries []job.CompanyCacheEntry, queries []string, freshFor time.Duration, now time.Time) Badge {
	cutoff := now.Add(-freshFor)
	seen := map[string]struct{}{}

	for _, entry := range entries {
		if entry.Error != "" {
			continue
		}
		for _, m := range matching.RelevantMatches(entry.Jobs, queries) {
			if m.Job.PostedAt.IsZero() || m.Job.PostedAt.Before(cutoff) {
				continue
			}
			seen[m.Job.ID] = struct{}{}
		}
	}

	count := len(seen)
	display := fmt.Sprintf("%d", count)
	if count > BadgeCap {
		count = BadgeCap
		display = fmt.Sprintf("%d+", BadgeCap)
	}
	return Badge{Count: count, Display: display}
}

var _ BadgeUsecase = (*BadgeService)(nil)
