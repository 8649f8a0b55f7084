// Package profile holds the user's alert keywords and tracked companies
// together with their cardinality limits.
package profile

import (
	"time"

	"directin/internal/domain/matching"
)

const (
	MaxQueries   = 3
	MaxCompanies = 10
)

// Company is one tracked company. Provider names the board backend
// ("greenhouse", "lever", or "custom" for link-only careers pages).
type Company struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Provider   string `json:"provider"`
	BoardSlug  string `json:"board_slug"`
	Domain     string `json:"domain"`
	CareersURL string `json:"careers_url"`
}

// Profile is the user's configuration: 1..MaxQueries alert keywords plus
// up to MaxCompanies tracked companies.
type Profile struct {
	RoleQueries []string  `json:"role_queries"`
	Companies   []Company `json:"companies"`
	CreatedAt   time.Time `json:"created_at"`
}

// DedupeQueries drops blank entries and duplicates, comparing by
// normalized form rather than exact string equality, so "SWE Intern" and
// "swe intern" count as the same keyword. Order is preserved.
func DedupeQueries(queries []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		norm := matching.Normalize(q)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, q)
	}
	return out
}
