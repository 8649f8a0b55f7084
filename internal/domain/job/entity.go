// Package job holds the posting entities and the ingestion merge that
// assigns stable identity and change-detection state across refreshes.
package job

import "time"

// RawPosting is one record as returned by a board provider, already
// defaulted at the fetch boundary: downstream code never sees a missing
// field, only zero values.
type RawPosting struct {
	ID       string
	LocalID  string // provider-local id, used only when ID is absent
	Title    string
	URL      string
	Location string
	PostedAt time.Time
	// ProviderUpdatedAt is volatile and deliberately excluded from the
	// content hash.
	ProviderUpdatedAt time.Time
}

// IngestedJob is one posting with its lifecycle state. One exists per
// (company, stable id) pair for as long as the id keeps appearing in
// fetches.
type IngestedJob struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	URL               string     `json:"url"`
	Location          string     `json:"location"`
	PostedAt          time.Time  `json:"posted_at"`
	ProviderUpdatedAt time.Time  `json:"provider_updated_at"`
	FirstSeenAt       time.Time  `json:"first_seen_at"`
	LastFetchedAt     time.Time  `json:"last_fetched_at"`
	ContentHash       uint32     `json:"content_hash"`
	LastChangedAt     *time.Time `json:"last_changed_at"`
}

// CompanyCacheEntry is the per-company snapshot, fully replaced on each
// refresh. Error is empty on a successful fetch.
type CompanyCacheEntry struct {
	CompanyID   string        `json:"company_id"`
	CompanyName string        `json:"company_name"`
	Jobs        []IngestedJob `json:"jobs"`
	FetchedAt   time.Time     `json:"fetched_at"`
	Error       string        `json:"error,omitempty"`
}
