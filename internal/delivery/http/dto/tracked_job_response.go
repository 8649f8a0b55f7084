package dto

import (
	"time"

	"directin/internal/domain/tracked"
)

type TrackedJobResponse struct {
	JobID         string     `json:"job_id"`
	CompanyID     string     `json:"company_id"`
	CompanyName   string     `json:"company_name"`
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	Location      string     `json:"location,omitempty"`
	PostedAt      *time.Time `json:"posted_at,omitempty"`
	Status        string     `json:"status"`
	LastCheckedAt time.Time  `json:"last_checked_at"`
	LastSeenAt    time.Time  `json:"last_seen_at"`
}

func NewTrackedJobResponse(j tracked.Job) TrackedJobResponse {
	resp := TrackedJobResponse{
		JobID:         j.JobID,
		CompanyID:     j.CompanyID,
		CompanyName:   j.CompanyName,
		Title:         j.Title,
		URL:           j.URL,
		Location:      j.Location,
		Status:        string(j.Status),
		LastCheckedAt: j.LastCheckedAt,
		LastSeenAt:    j.LastSeenAt,
	}
	if !j.PostedAt.IsZero() {
		t := j.PostedAt
		resp.PostedAt = &t
	}
	return resp
}

func NewTrackedJobResponses(jobs []tracked.Job) []TrackedJobResponse {
	out := make([]TrackedJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewTrackedJobResponse(j))
	}
	return out
}
