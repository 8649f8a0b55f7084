package matching

import (
	"sort"

	"directin/internal/domain/job"
)

// Scored pairs a job with its best-scoring query.
type Scored struct {
	Job   job.IngestedJob
	Match Match
}

// RelevantMatches maps every job to its best match, keeps the ones at or
// above MatchThreshold and sorts them by posting date, newest first. Jobs
// with no usable date sort last. The result is computed fresh on every
// call — callers pass the current job list and query set.
func RelevantMatches(jobs []job.IngestedJob, queries []string) []Scored {
	out := make([]Scored, 0, len(jobs))
	for _, j := range jobs {
		m := BestMatch(j.Title, queries)
		if m.Score >= MatchThreshold {
			out = append(out, Scored{Job: j, Match: m})
		}
	}

	sort.SliceStable(out, func(i, k int) bool {
		a, b := out[i].Job.PostedAt, out[k].Job.PostedAt
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b)
	})
	return out
}
