package dto

import "directin/internal/domain/profile"

type CompanyResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Provider   string `json:"provider"`
	BoardSlug  string `json:"board_slug,omitempty"`
	Domain     string `json:"domain,omitempty"`
	CareersURL string `json:"careers_url,omitempty"`
}

type ProfileResponse struct {
	RoleQueries []string          `json:"role_queries"`
	Companies   []CompanyResponse `json:"companies"`
}

func NewCompanyResponse(c profile.Company) CompanyResponse {
	return CompanyResponse{
		ID:         c.ID,
		Name:       c.Name,
		Provider:   c.Provider,
		BoardSlug:  c.BoardSlug,
		Domain:     c.Domain,
		CareersURL: c.CareersURL,
	}
}

func NewCompanyResponses(companies []profile.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	queries := p.RoleQueries
	if queries == nil {
		queries = []string{}
	}
	return ProfileResponse{
		RoleQueries: queries,
		Companies:   NewCompanyResponses(p.Companies),
	}
}
