package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"directin/internal/domain/job"
	"directin/internal/domain/profile"
	"directin/internal/infrastructure/provider"
	"directin/internal/repository"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (profile.Profile, error)
	SetRoleQueries(ctx context.Context, queries []string) ([]string, error)
	SuggestCompanies(ctx context.Context, term string) ([]profile.Company, error)
	AddCompany(ctx context.Context, input string) (profile.Company, error)
	RemoveCompany(ctx context.Context, companyID string) error
}

type ProfileService struct {
	profiles  repository.ProfileRepository
	directory repository.CompanyDirectoryRepository
	trackedR  repository.TrackedJobRepository
	cache     companyCache
	boards    boardFetcher
	logger    *log.Logger
	now       func() time.Time
}

func NewProfileService(
	profiles repository.ProfileRepository,
	directory repository.CompanyDirectoryRepository,
	trackedRepo repository.TrackedJobRepository,
	cache companyCache,
	boards boardFetcher,
	logger *log.Logger,
) *ProfileService {
	return &ProfileService{
		profiles:  profiles,
		directory: directory,
		trackedR:  trackedRepo,
		cache:     cache,
		boards:    boards,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context) (profile.Profile, error) {
	queries, err := s.profiles.GetRoleQueries(ctx)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	companies, err := s.profiles.ListCompanies(ctx)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return profile.Profile{RoleQueries: queries, Companies: companies}, nil
}

// SetRoleQueries replaces the full query list. Blank entries are dropped,
// duplicates collapse on their normalized form, and the result must hold
// between one and profile.MaxQueries entries.
func (s *ProfileService) SetRoleQueries(ctx context.Context, queries []string) ([]string, error) {
	cleaned := make([]string, 0, len(queries))
	for _, q := range queries {
		q = strings.TrimSpace(q)
		if q != "" {
			cleaned = append(cleaned, q)
		}
	}
	cleaned = profile.DedupeQueries(cleaned)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: at least one role query is required", ErrInvalidInput)
	}
	if len(cleaned) > profile.MaxQueries {
		return nil, fmt.Errorf("%w: at most %d role queries", ErrLimitExceeded, profile.MaxQueries)
	}
	if err := s.profiles.SetRoleQueries(ctx, cleaned); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return cleaned, nil
}

func (s *ProfileService) SuggestCompanies(ctx context.Context, term string) ([]profile.Company, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []profile.Company{}, nil
	}
	suggestions, err := s.directory.Suggest(ctx, term, 10)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return suggestions, nil
}

// AddCompany accepts a directory id, a Greenhouse board URL, or a bare
// board slug. Directory entries are trusted as-is: link-only (custom)
// companies and fetch failures are recorded in the cache entry rather
// than rejected. Free-form input is treated as a Greenhouse board and
// verified with a live fetch before it is persisted, so a typo never
// becomes a permanently failing company.
func (s *ProfileService) AddCompany(ctx context.Context, input string) (profile.Company, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return profile.Company{}, fmt.Errorf("%w: company is required", ErrInvalidInput)
	}

	count, err := s.profiles.CountCompanies(ctx)
	if err != nil {
		return profile.Company{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if count >= profile.MaxCompanies {
		return profile.Company{}, fmt.Errorf("%w: at most %d companies", ErrLimitExceeded, profile.MaxCompanies)
	}

	company, fromDirectory, err := s.resolveCompany(ctx, input)
	if err != nil {
		return profile.Company{}, err
	}

	existing, err := s.profiles.ListCompanies(ctx)
	if err != nil {
		return profile.Company{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	for _, c := range existing {
		if c.ID == company.ID {
			return profile.Company{}, fmt.Errorf("%w: company already tracked", ErrConflict)
		}
		// Link-only companies have no board slug; they only collide on id.
		if company.BoardSlug != "" && c.Provider == company.Provider && c.BoardSlug == company.BoardSlug {
			return profile.Company{}, fmt.Errorf("%w: company already tracked", ErrConflict)
		}
	}

	entry, err := s.initialCacheEntry(ctx, company, fromDirectory)
	if err != nil {
		return profile.Company{}, err
	}
	if company.Name == "" {
		company.Name = entry.CompanyName
	}
	if company.Name == "" {
		company.Name = profile.TitleizeSlug(company.BoardSlug)
	}
	if entry.CompanyName == "" {
		entry.CompanyName = company.Name
	}

	if err := s.profiles.AddCompany(ctx, company); err != nil {
		return profile.Company{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Pre-populate the cache so the first badge computation after an add
	// does not wait for the next scheduled refresh.
	if err := s.cache.SetCompanyEntry(ctx, entry); err != nil && s.logger != nil {
		s.logger.Printf("[Profile] cache prepopulate failed company=%s err=%v", company.ID, err)
	}

	if s.logger != nil {
		s.logger.Printf("[Profile] company added id=%s provider=%s slug=%s jobs=%d error=%q",
			company.ID, company.Provider, company.BoardSlug, len(entry.Jobs), entry.Error)
	}
	return company, nil
}

// resolveCompany maps user input to a company and reports whether it
// came from the directory. Directory matches keep their curated
// provider and name; anything else must look like a Greenhouse board.
func (s *ProfileService) resolveCompany(ctx context.Context, input string) (profile.Company, bool, error) {
	if c, err := s.directory.FindByID(ctx, input); err == nil {
		return c, true, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return profile.Company{}, false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	slug, ok := profile.SlugFromBoardInput(input)
	if !ok {
		return profile.Company{}, false, fmt.Errorf("%w: not a recognized company or board", ErrInvalidInput)
	}

	if c, err := s.directory.FindBySlug(ctx, slug); err == nil {
		return c, true, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return profile.Company{}, false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return profile.Company{
		ID:        uuid.NewString(),
		Provider:  "greenhouse",
		BoardSlug: slug,
	}, false, nil
}

// initialCacheEntry fetches the board once and builds the entry the
// refresh loop would have produced. Free-form input must fetch cleanly
// or the add is rejected; a directory company that cannot be fetched
// (link-only provider, transient board error) is still added, with the
// failure recorded the same way a scheduled refresh records it.
func (s *ProfileService) initialCacheEntry(ctx context.Context, c profile.Company, fromDirectory bool) (job.CompanyCacheEntry, error) {
	now := s.now()
	entry := job.CompanyCacheEntry{
		CompanyID:   c.ID,
		CompanyName: c.Name,
		FetchedAt:   now,
	}

	client, err := s.boards.For(c.Provider)
	if err != nil {
		if !fromDirectory {
			return job.CompanyCacheEntry{}, fmt.Errorf("%w: provider %q", ErrUnsupportedBoard, c.Provider)
		}
		entry.Error = provider.UnsupportedSentinel
		return entry, nil
	}

	board, err := client.FetchBoard(ctx, c.BoardSlug)
	if err != nil {
		if !fromDirectory {
			return job.CompanyCacheEntry{}, fmt.Errorf("%w: board %q unreachable: %v", ErrInvalidInput, c.BoardSlug, err)
		}
		entry.Error = err.Error()
		return entry, nil
	}

	if board.CompanyName != "" {
		entry.CompanyName = board.CompanyName
	}
	entry.Jobs = job.Ingest(c.ID, c.Provider, board.Postings, nil, now)
	return entry, nil
}

// RemoveCompany deletes the company and cascades: its tracked jobs and
// its cache entry go with it, so stale rows never linger behind a
// removed board.
func (s *ProfileService) RemoveCompany(ctx context.Context, companyID string) error {
	removed, err := s.profiles.RemoveCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !removed {
		return fmt.Errorf("%w: company %q", ErrNotFound, companyID)
	}
	if err := s.trackedR.RemoveByCompany(ctx, companyID); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := s.cache.DeleteCompanyEntry(ctx, companyID); err != nil && s.logger != nil {
		s.logger.Printf("[Profile] cache evict failed company=%s err=%v", companyID, err)
	}
	if s.logger != nil {
		s.logger.Printf("[Profile] company removed id=%s", companyID)
	}
	return nil
}

var _ ProfileUsecase = (*ProfileService)(nil)
