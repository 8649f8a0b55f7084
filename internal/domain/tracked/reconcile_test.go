package tracked

import (
	"testing"
	"time"

	"directin/internal/domain/job"
)

var now = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func pinned(jobID, companyID string) Job {
	return Job{
		JobID:         jobID,
		CompanyID:     companyID,
		CompanyName:   "Stripe",
		Title:         "SWE Intern",
		URL:           "https://x.test/1",
		Location:      "NYC",
		Status:        StatusOpen,
		LastCheckedAt: now.Add(-24 * time.Hour),
		LastSeenAt:    now.Add(-24 * time.Hour),
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"open", "changed", "closed"} {
		got, err := ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q", s, got)
		}
	}
	for _, s := range []string{"", "OPEN", "archived"} {
		if _, err := ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) expected error", s)
		}
	}
}

func TestReconcile_AbsentBecomesClosedAndKeepsSnapshot(t *testing.T) {
	got := Reconcile([]Job{pinned("1", "stripe")}, "stripe", nil, now)

	j := got[0]
	if j.Status != StatusClosed {
		t.Fatalf("status = %q, want closed", j.Status)
	}
	if j.Title != "SWE Intern" || j.URL != "https://x.test/1" || j.Location != "NYC" {
		t.Fatalf("snapshot erased: %+v", j)
	}
	if !j.LastCheckedAt.Equal(now) {
		t.Errorf("lastCheckedAt not stamped")
	}
	if j.LastSeenAt.Equal(now) {
		t.Errorf("lastSeenAt bumped on a closed job")
	}
}

func TestReconcile_LocationChangeBecomesChangedAndAdoptsLive(t *testing.T) {
	live := []job.IngestedJob{{ID: "1", Title: "SWE Intern", URL: "https://x.test/1", Location: "Remote"}}
	got := Reconcile([]Job{pinned("1", "stripe")}, "stripe", live, now)

	j := got[0]
	if j.Status != StatusChanged {
		t.Fatalf("status = %q, want changed", j.Status)
	}
	if j.Location != "Remote" {
		t.Fatalf("location not adopted: %q", j.Location)
	}
	if !j.LastCheckedAt.Equal(now) || !j.LastSeenAt.Equal(now) {
		t.Errorf("timestamps not stamped: %+v", j)
	}
}

func TestReconcile_UnchangedStaysOpen(t *testing.T) {
	live := []job.IngestedJob{{ID: "1", Title: "SWE Intern", URL: "https://x.test/1", Location: "NYC"}}
	got := Reconcile([]Job{pinned("1", "stripe")}, "stripe", live, now)
	if got[0].Status != StatusOpen {
		t.Fatalf("status = %q, want open", got[0].Status)
	}
}

func TestReconcile_ClosedReopensOnReappearance(t *testing.T) {
	j := pinned("1", "stripe")
	j.Status = StatusClosed

	live := []job.IngestedJob{{ID: "1", Title: "SWE Intern", URL: "https://x.test/1", Location: "NYC"}}
	got := Reconcile([]Job{j}, "stripe", live, now)
	if got[0].Status != StatusOpen {
		t.Fatalf("status = %q, want open after reappearance", got[0].Status)
	}
}

func TestReconcile_OtherCompaniesUntouched(t *testing.T) {
	other := pinned("9", "airbnb")
	got := Reconcile([]Job{other}, "stripe", nil, now)
	if got[0] != other {
		t.Fatalf("job of another company mutated: %+v", got[0])
	}
}
