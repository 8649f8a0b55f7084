package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"directin/internal/domain/job"
	"directin/internal/domain/matching"
	"directin/internal/domain/profile"
	"directin/internal/repository"
)

// MatchItem is one relevant (job, query) pair ready for rendering.
type MatchItem struct {
	CompanyID   string          `json:"company_id"`
	CompanyName string          `json:"company_name"`
	Job         job.IngestedJob `json:"job"`
	Score       float64         `json:"score"`
	Query       string          `json:"query"`
}

// CompanyOverview pairs a tracked company with its last fetch outcome.
type CompanyOverview struct {
	Company    profile.Company `json:"company"`
	FetchedAt  time.Time       `json:"fetched_at,omitzero"`
	FetchError string          `json:"fetch_error,omitempty"`
	JobCount   int             `json:"job_count"`
	MatchCount int             `json:"match_count"`
}

type MatchesUsecase interface {
	ListCompanyMatches(ctx context.Context, companyID string) ([]MatchItem, error)
	ListAllMatches(ctx context.Context) ([]MatchItem, error)
	CompanyOverviews(ctx context.Context) ([]CompanyOverview, error)
}

type MatchesService struct {
	profiles repository.ProfileRepository
	cache    companyCache
}

func NewMatchesService(profiles repository.ProfileRepository, cache companyCache) *MatchesService {
	return &MatchesService{profiles: profiles, cache: cache}
}

func (s *MatchesService) ListCompanyMatches(ctx context.Context, companyID string) ([]MatchItem, error) {
	companies, err := s.profiles.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var company profile.Company
	tracked := false
	for _, c := range companies {
		if c.ID == companyID {
			company = c
			tracked = true
			break
		}
	}
	if !tracked {
		return nil, ErrNotFound
	}

	queries, err := s.profiles.GetRoleQueries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	entry, found, err := s.cache.GetCompanyEntry(ctx, companyID)
	if err != nil || !found || entry.Error != "" {
		return []MatchItem{}, nil
	}

	name := entry.CompanyName
	if name == "" {
		name = company.Name
	}

	out := make([]MatchItem, 0)
	for _, m := range matching.RelevantMatches(entry.Jobs, queries) {
		out = append(out, MatchItem{
			CompanyID:   companyID,
			CompanyName: name,
			Job:         m.Job,
			Score:       m.Match.Score,
			Query:       m.Match.Query,
		})
	}
	return out, nil
}

func (s *MatchesService) ListAllMatches(ctx context.Context) ([]MatchItem, error) {
	companies, err := s.profiles.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	queries, err := s.profiles.GetRoleQueries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	out := make([]MatchItem, 0)
	for _, c := range companies {
		entry, found, err := s.cache.GetCompanyEntry(ctx, c.ID)
		if err != nil || !found || entry.Error != "" {
			continue
		}
		name := entry.CompanyName
		if name == "" {
			name = c.Name
		}
		for _, m := range matching.RelevantMatches(entry.Jobs, queries) {
			out = append(out, MatchItem{
				CompanyID:   c.ID,
				CompanyName: name,
				Job:         m.Job,
				Score:       m.Match.Score,
				Query:       m.Match.Query,
			})
		}
	}

	sort.SliceStable(out, func(i, k int) bool {
		a, b := out[i].Job.PostedAt, out[k].Job.PostedAt
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b)
	})
	return out, nil
}

// CompanyOverviews reports, per tracked company, the last fetch outcome
// and a relevant-match preview count for listing screens.
func (s *MatchesService) CompanyOverviews(ctx context.Context) ([]CompanyOverview, error) {
	companies, err := s.profiles.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	queries, err := s.profiles.GetRoleQueries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	out := make([]CompanyOverview, 0, len(companies))
	for _, c := range companies {
		ov := CompanyOverview{Company: c}
		entry, found, err := s.cache.GetCompanyEntry(ctx, c.ID)
		if err == nil && found {
			ov.FetchedAt = entry.FetchedAt
			ov.FetchError = entry.Error
			if entry.Error == "" {
				ov.JobCount = len(entry.Jobs)
				ov.MatchCount = len(matching.RelevantMatches(entry.Jobs, queries))
			}
		}
		out = append(out, ov)
	}
	return out, nil
}

var _ MatchesUsecase = (*MatchesService)(nil)
