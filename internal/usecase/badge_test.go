package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"testing"
	"time"

	"directin/internal/domain/job"
)

var badgeNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func entryWithJobs(companyID string, jobs ...job.IngestedJob) job.CompanyCacheEntry {
	return job.CompanyCacheEntry{CompanyID: companyID, CompanyName: companyID, Jobs: jobs, FetchedAt: badgeNow}
}

func matchingJob(id string, postedAt time.Time) job.IngestedJob {
	return job.IngestedJob{ID: id, Title: "Software Engineer Intern", PostedAt: postedAt, FirstSeenAt: postedAt}
}

func TestCountNotificationsFreshnessWindow(t *testing.T) {
	week := 7 * 24 * time.Hour
	entries := []job.CompanyCacheEntry{entryWithJobs("acme",
		matchingJob("fresh", badgeNow.Add(-24*time.Hour)),
		matchingJob("stale", badgeNow.Add(-8*24*time.Hour)),
		matchingJob("edge", badgeNow.Add(-week)),
		matchingJob("undated", time.Time{}),
	)}

	badge := countNotifications(entries, []string{"software engineer intern"}, week, badgeNow)
	if badge.Count != 2 {
		t.Fatalf("Count = %d, want 2 (fresh + boundary; stale and undated excluded)", badge.Count)
	}
	if badge.Display != "2" {
		t.Fatalf("Display = %q, want %q", badge.Display, "2")
	}
}

func TestCountNotificationsDedupesAcrossCompanies(t *testing.T) {
	shared := matchingJob("gh:shared:1", badgeNow.Add(-time.Hour))
	entries := []job.CompanyCacheEntry{
		entryWithJobs("acme", shared),
		entryWithJobs("globex", shared, matchingJob("other", badgeNow.Add(-time.Hour))),
	}

	badge := countNotifications(entries, []string{"swe intern"}, 7*24*time.Hour, badgeNow)
	if badge.Count != 2 {
		t.Fatalf("Count = %d, want 2 after dedupe", badge.Count)
	}
}

func TestCountNotificationsSkipsErrorEntries(t *testing.T) {
	entries := []job.CompanyCacheEntry{
		{CompanyID: "broken", Error: "fetch failed: 503", Jobs: []job.IngestedJob{matchingJob("x", badgeNow)}},
		entryWithJobs("acme", matchingJob("ok", badgeNow.Add(-time.Hour))),
	}

	badge := countNotifications(entries, []string{"software engineer intern"}, 7*24*time.Hour, badgeNow)
	if badge.Count != 1 {
		t.Fatalf("Count = %d, want 1 (error entry ignored)", badge.Count)
	}
}

func TestCountNotificationsCapsDisplay(t *testing.T) {
	jobs := make([]job.IngestedJob, 0, 150)
	for i := 0; i < 150; i++ {
		jobs = append(jobs, matchingJob(fmt.Sprintf("job-%d", i), badgeNow.Add(-time.Hour)))
	}
	entries := []job.CompanyCacheEntry{entryWithJobs("acme", jobs...)}

	badge := countNotifications(entries, []string{"swe intern"}, 7*24*time.Hour, badgeNow)
	if badge.Count != BadgeCap {
		t.Fatalf("Count = %d, want cap %d", badge.Count, BadgeCap)
	}
	if badge.Display != "99+" {
		t.Fatalf("Display = %q, want %q", badge.Display, "99+")
	}
}

func TestCountNotificationsNoQueries(t *testing.T) {
	entries := []job.CompanyCacheEntry{entryWithJobs("acme", matchingJob("a", badgeNow))}
	badge := countNotifications(entries, nil, 7*24*time.Hour, badgeNow)
	if badge.Count != 0 || badge.Display != "0" {
		t.Fatalf("badge = %+v, want zero", badge)
	}
}

func TestBadgeServiceReadsCachedCompanies(t *testing.T) {
	profiles := &fakeProfileRepo{
		queries:   []string{"software engineer intern"},
		companies: companiesNamed("acme", "globex"),
	}
	cache := newFakeCache()
	cache.entries["acme"] = entryWithJobs("acme", matchingJob("a1", badgeNow.Add(-time.Hour)))
	// globex has no cache entry yet; it must simply contribute nothing.

	svc := NewBadgeService(profiles, cache, 7, log.New(io.Discard, "", 0))
	svc.now = fixedNow(badgeNow)

	badge, err := svc.NotificationCount(context.Background())
	if err != nil {
		t.Fatalf("NotificationCount: %v", err)
	}
	if badge.Count != 1 {
		t.Fatalf("Count = %d, want 1", badge.Count)
	}
}
