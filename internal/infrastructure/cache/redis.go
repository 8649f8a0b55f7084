// Package cache stores the per-company job snapshots in Redis and owns the
// refresh single-flight lock. When Redis is unreachable the cache degrades
// to bypass mode: reads miss, writes are dropped, and every refresh is
// treated as a first observation.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"directin/internal/config"
	"directin/internal/domain/job"
)

const (
	companyKeyPrefix = "directin:company:"
	refreshLockKey   = "directin:refresh:lock"
)

type Redis struct {
	client *redis.Client
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
		}
		_ = client.Close()
		return &Redis{client: nil, logger: logger}
	}

	return &Redis{client: client, logger: logger}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) Close() {
	if r == nil || r.client == nil {
		return
	}
	_ = r.client.Close()
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

// GetCompanyEntry returns the stored snapshot for a company; found is
// false on a miss or in bypass mode.
func (r *Redis) GetCompanyEntry(ctx context.Context, companyID string) (job.CompanyCacheEntry, bool, error) {
	var entry job.CompanyCacheEntry
	if r.isUnavailable() {
		return entry, false, nil
	}

	b, err := r.client.Get(ctx, companyKeyPrefix+companyID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entry, false, nil
		}
		r.warnUnavailableOnce(err)
		return entry, false, err
	}
	if err := json.Unmarshal(b, &entry); err != nil {
		return entry, false, err
	}
	return entry, true, nil
}

// SetCompanyEntry fully replaces a company's snapshot. Entries carry no
// TTL: job history must survive until the next refresh, however far away.
func (r *Redis) SetCompanyEntry(ctx context.Context, entry job.CompanyCacheEntry) error {
	if r.isUnavailable() {
		return nil
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, companyKeyPrefix+entry.CompanyID, b, 0).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) DeleteCompanyEntry(ctx context.Context, companyID string) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Del(ctx, companyKeyPrefix+companyID).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// AcquireRefreshLock takes the single-flight lock guarding the refresh
// loop. In bypass mode the lock always succeeds: a single process without
// Redis still serializes refreshes through the usecase.
func (r *Redis) AcquireRefreshLock(ctx context.Context, ttl time.Duration) (bool, error) {
	if r.isUnavailable() {
		return true, nil
	}
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	ok, err := r.client.SetNX(ctx, refreshLockKey, "1", ttl).Result()
	if err != nil {
		r.warnUnavailableOnce(err)
		return false, err
	}
	return ok, nil
}

func (r *Redis) ReleaseRefreshLock(ctx context.Context) {
	if r.isUnavailable() {
		return
	}
	if err := r.client.Del(ctx, refreshLockKey).Err(); err != nil {
		r.warnUnavailableOnce(err)
	}
}
