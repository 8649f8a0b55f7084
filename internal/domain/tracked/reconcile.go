package tracked

import (
	"time"

	"directin/internal/domain/job"
)

// Reconcile advances the status of every tracked job belonging to
// companyID against that company's freshly ingested jobs and returns the
// updated list. Jobs of other companies pass through untouched.
//
// Absent id → closed, snapshot fields preserved, lastSeenAt not bumped.
// Present id → changed when title/url/location differ from the snapshot,
// open otherwise; the snapshot is overwritten with the live values either
// way.
func Reconcile(jobs []Job, companyID string, live []job.IngestedJob, now time.Time) []Job {
	liveByID := make(map[string]job.IngestedJob, len(live))
	for _, j := range live {
		liveByID[j.ID] = j
	}

	out := make([]Job, len(jobs))
	for i, t := range jobs {
		if t.CompanyID != companyID {
			out[i] = t
			continue
		}

		l, ok := liveByID[t.JobID]
		if !ok {
			t.Status = StatusClosed
			t.LastCheckedAt = now
			out[i] = t
			continue
		}

		changed := t.Title != l.Title || t.URL != l.URL || t.Location != l.Location

		t.Title = l.Title
		t.URL = l.URL
		t.Location = l.Location
		t.PostedAt = l.PostedAt
		if changed {
			t.Status = StatusChanged
		} else {
			t.Status = StatusOpen
		}
		t.LastCheckedAt = now
		t.LastSeenAt = now
		out[i] = t
	}
	return out
}
