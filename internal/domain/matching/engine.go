package matching

import "strings"

// MatchThreshold is the minimum score at which a (job, query) pair counts
// as relevant.
const MatchThreshold = 0.75

// Senior and management titles are never relevant, whatever the query asks
// for. Checked as substrings of the expanded normalized title.
var seniorityBlocklist = []string{
	"senior", "staff", "principal", "lead", "manager", "director", "head",
}

var stopWords = map[string]struct{}{
	"and": {}, "of": {}, "the": {}, "a": {}, "an": {}, "to": {}, "for": {},
}

// tokenAliases maps a query token to the phrases that satisfy it in a
// title. Tokens without an entry alias to themselves. A multi-word alias
// requires every one of its words present in the title token set.
var tokenAliases = map[string][]string{
	"engineer":    {"engineer", "engineering"},
	"engineering": {"engineering", "engineer"},
	"intern":      {"intern", "internship"},
	"internship":  {"internship", "intern"},
	"grad":        {"grad", "graduate"},
	"graduate":    {"graduate", "grad"},
}

// Match is the outcome of scoring one job title against the query set.
// Query is empty when no query was evaluated.
type Match struct {
	Score float64
	Query string
}

func hasSeniority(titleNorm string) bool {
	for _, w := range seniorityBlocklist {
		if strings.Contains(titleNorm, w) {
			return true
		}
	}
	return false
}

func tokenMatchesTitle(token string, titleTokens map[string]struct{}) bool {
	aliases, ok := tokenAliases[token]
	if !ok {
		aliases = []string{token}
	}
	for _, alias := range aliases {
		parts := strings.Fields(alias)
		if len(parts) == 0 {
			continue
		}
		all := true
		for _, p := range parts {
			if _, present := titleTokens[p]; !present {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// ScoreTitleAgainstQuery returns the token-coverage score of title against
// one query, in [0,1]. Seniority-blocked titles score 0 unconditionally.
func ScoreTitleAgainstQuery(title, query string) float64 {
	titleNorm := Expand(title)
	if hasSeniority(titleNorm) {
		return 0
	}

	titleTokens := map[string]struct{}{}
	for _, t := range strings.Fields(titleNorm) {
		titleTokens[t] = struct{}{}
	}

	queryTokens := make([]string, 0, 4)
	for _, t := range Tokenize(query) {
		if _, stop := stopWords[t]; stop {
			continue
		}
		queryTokens = append(queryTokens, t)
	}
	if len(queryTokens) == 0 {
		return 0
	}

	matched := 0
	for _, t := range queryTokens {
		if tokenMatchesTitle(t, titleTokens) {
			matched++
		}
	}

	score := float64(matched) / float64(len(queryTokens))

	// Literal-phrase bonus.
	if qNorm := Expand(query); qNorm != "" && strings.Contains(titleNorm, qNorm) {
		score += 0.1
		if score > 1 {
			score = 1
		}
	}
	return score
}

// BestMatch evaluates every query against the title and returns the highest
// scorer. Ties keep the first query encountered.
func BestMatch(title string, queries []string) Match {
	best := Match{}
	for _, q := range queries {
		if s := ScoreTitleAgainstQuery(title, q); s > best.Score {
			best = Match{Score: s, Query: q}
		}
	}
	return best
}
