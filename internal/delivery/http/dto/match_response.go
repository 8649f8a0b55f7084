package dto

import (
	"time"

	"directin/internal/usecase"
)

type MatchResponse struct {
	CompanyID     string     `json:"company_id"`
	CompanyName   string     `json:"company_name"`
	JobID         string     `json:"job_id"`
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	Location      string     `json:"location,omitempty"`
	PostedAt      *time.Time `json:"posted_at,omitempty"`
	FirstSeenAt   time.Time  `json:"first_seen_at"`
	LastChangedAt *time.Time `json:"last_changed_at,omitempty"`
	Score         float64    `json:"score"`
	Query         string     `json:"query"`
}

func NewMatchResponse(m usecase.MatchItem) MatchResponse {
	resp := MatchResponse{
		CompanyID:     m.CompanyID,
		CompanyName:   m.CompanyName,
		JobID:         m.Job.ID,
		Title:         m.Job.Title,
		URL:           m.Job.URL,
		Location:      m.Job.Location,
		FirstSeenAt:   m.Job.FirstSeenAt,
		LastChangedAt: m.Job.LastChangedAt,
		Score:         m.Score,
		Query:         m.Query,
	}
	if !m.Job.PostedAt.IsZero() {
		t := m.Job.PostedAt
		resp.PostedAt = &t
	}
	return resp
}

func NewMatchResponses(items []usecase.MatchItem) []MatchResponse {
	out := make([]MatchResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewMatchResponse(m))
	}
	return out
}
