package dto

import (
	"time"

	"directin/internal/usecase"
)

type CompanyOverviewResponse struct {
	CompanyResponse
	FetchedAt  *time.Time `json:"fetched_at,omitempty"`
	FetchError string     `json:"fetch_error,omitempty"`
	JobCount   int        `json:"job_count"`
	MatchCount int        `json:"match_count"`
}

func NewCompanyOverviewResponse(ov usecase.CompanyOverview) CompanyOverviewResponse {
	resp := CompanyOverviewResponse{
		CompanyResponse: NewCompanyResponse(ov.Company),
		FetchError:      ov.FetchError,
		JobCount:        ov.JobCount,
		MatchCount:      ov.MatchCount,
	}
	if !ov.FetchedAt.IsZero() {
		t := ov.FetchedAt
		resp.FetchedAt = &t
	}
	return resp
}

func NewCompanyOverviewResponses(overviews []usecase.CompanyOverview) []CompanyOverviewResponse {
	out := make([]CompanyOverviewResponse, 0, len(overviews))
	for _, ov := range overviews {
		out = append(out, NewCompanyOverviewResponse(ov))
	}
	return out
}
