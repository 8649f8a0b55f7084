package job

import "time"

// StableID derives the join key for a posting: the provider-assigned id,
// or a synthesized fallback that stays constant across refreshes.
func StableID(provider, companyID string, p RawPosting) string {
	if p.ID != "" {
		return p.ID
	}
	return provider + ":" + companyID + ":" + p.LocalID
}

// ContentHash accumulates a base-31 hash over the displayed content of a
// posting. Fetch and provider-update timestamps are excluded so that hash
// equality means "same displayed content", not "fetched at the same
// moment". Not collision resistant, and does not need to be.
func ContentHash(title, location, url string) uint32 {
	s := title + "|" + location + "|" + url
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}

// Ingest merges freshly fetched postings with the previous snapshot for the
// same company. firstSeenAt is preserved from the previous job when one
// exists; lastChangedAt advances only when the content hash differs from
// the stored one. Postings absent from fetched are dropped — closure
// detection belongs to the tracked-job reconciler, not here.
func Ingest(companyID, provider string, fetched []RawPosting, previous []IngestedJob, now time.Time) []IngestedJob {
	prevByID := make(map[string]IngestedJob, len(previous))
	for _, p := range previous {
		prevByID[p.ID] = p
	}

	next := make([]IngestedJob, 0, len(fetched))
	for _, f := range fetched {
		id := StableID(provider, companyID, f)
		hash := ContentHash(f.Title, f.Location, f.URL)

		out := IngestedJob{
			ID:                id,
			Title:             f.Title,
			URL:               f.URL,
			Location:          f.Location,
			PostedAt:          f.PostedAt,
			ProviderUpdatedAt: f.ProviderUpdatedAt,
			FirstSeenAt:       now,
			LastFetchedAt:     now,
			ContentHash:       hash,
		}

		if prev, ok := prevByID[id]; ok {
			out.FirstSeenAt = prev.FirstSeenAt
			if prev.ContentHash != hash {
				changed := now
				out.LastChangedAt = &changed
			} else {
				out.LastChangedAt = prev.LastChangedAt
			}
		}

		next = append(next, out)
	}
	return next
}
