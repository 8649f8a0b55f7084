package tracked

import "time"

// MaxTracked caps the tracked-job set.
const MaxTracked = 5

// Job is one user-pinned posting. Title/URL/Location are a snapshot of the
// last live values; when the posting disappears they keep the last-known
// content so the user retains a record of what the job was.
type Job struct {
	JobID         string    `json:"job_id"`
	CompanyID     string    `json:"company_id"`
	CompanyName   string    `json:"company_name"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Location      string    `json:"location"`
	PostedAt      time.Time `json:"posted_at"`
	Status        Status    `json:"status"`
	LastCheckedAt time.Time `json:"last_checked_at"`
	LastSeenAt    time.Time `json:"last_seen_at"`
}
