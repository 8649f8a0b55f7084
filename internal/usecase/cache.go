package usecase

import (
	"context"
	"time"

	"directin/internal/domain/job"
)

// companyCache is the slice of the Redis cache the usecases rely on.
type companyCache interface {
	GetCompanyEntry(ctx context.Context, companyID string) (job.CompanyCacheEntry, bool, error)
	SetCompanyEntry(ctx context.Context, entry job.CompanyCacheEntry) error
	DeleteCompanyEntry(ctx context.Context, companyID string) error
	AcquireRefreshLock(ctx context.Context, ttl time.Duration) (bool, error)
	ReleaseRefreshLock(ctx context.Context)
}
