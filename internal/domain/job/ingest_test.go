package job

import (
	"testing"
	"time"
)

var (
	t0 = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	t1 = t0.Add(6 * time.Hour)
	t2 = t0.Add(12 * time.Hour)
)

func TestStableID(t *testing.T) {
	if got := StableID("greenhouse", "stripe", RawPosting{ID: "4001"}); got != "4001" {
		t.Errorf("got %q", got)
	}
	if got := StableID("greenhouse", "stripe", RawPosting{LocalID: "77"}); got != "greenhouse:stripe:77" {
		t.Errorf("got %q", got)
	}
}

func TestContentHash_Deterministic(t *testing.T) {
	a := ContentHash("SWE Intern", "NYC", "https://x.test/1")
	b := ContentHash("SWE Intern", "NYC", "https://x.test/1")
	if a != b {
		t.Fatalf("hash not deterministic: %d != %d", a, b)
	}
	if c := ContentHash("SWE Intern", "SF", "https://x.test/1"); c == a {
		t.Fatalf("different content produced equal hash %d", c)
	}
	// Order sensitivity: swapping fields must change the hash.
	if d := ContentHash("NYC", "SWE Intern", "https://x.test/1"); d == a {
		t.Fatalf("field swap produced equal hash %d", d)
	}
}

func TestIngest_FirstObservation(t *testing.T) {
	got := Ingest("stripe", "greenhouse", []RawPosting{
		{ID: "1", Title: "SWE Intern", URL: "u1", Location: "NYC", PostedAt: t0},
	}, nil, t1)

	if len(got) != 1 {
		t.Fatalf("len = %d", len(got))
	}
	j := got[0]
	if !j.FirstSeenAt.Equal(t1) || !j.LastFetchedAt.Equal(t1) {
		t.Errorf("timestamps not stamped: %+v", j)
	}
	if j.LastChangedAt != nil {
		t.Errorf("lastChangedAt should start nil, got %v", j.LastChangedAt)
	}
}

func TestIngest_Idempotent(t *testing.T) {
	fetched := []RawPosting{
		{ID: "1", Title: "SWE Intern", URL: "u1", Location: "NYC"},
		{ID: "2", Title: "Data Engineer", URL: "u2", Location: "Remote"},
	}
	first := Ingest("stripe", "greenhouse", fetched, nil, t1)
	second := Ingest("stripe", "greenhouse", fetched, first, t2)

	for i := range second {
		if second[i].ContentHash != first[i].ContentHash {
			t.Errorf("hash moved on identical content: %d != %d", second[i].ContentHash, first[i].ContentHash)
		}
		if !second[i].FirstSeenAt.Equal(first[i].FirstSeenAt) {
			t.Errorf("firstSeenAt mutated on re-ingest")
		}
		if second[i].LastChangedAt != nil {
			t.Errorf("lastChangedAt set without a content change")
		}
		if !second[i].LastFetchedAt.Equal(t2) {
			t.Errorf("lastFetchedAt not advanced")
		}
	}
}

func TestIngest_TitleChangeAdvancesLastChanged(t *testing.T) {
	prev := Ingest("stripe", "greenhouse", []RawPosting{
		{ID: "1", Title: "SWE Intern", URL: "u1", Location: "NYC"},
	}, nil, t1)

	got := Ingest("stripe", "greenhouse", []RawPosting{
		{ID: "1", Title: "Software Engineer Intern", URL: "u1", Location: "NYC"},
	}, prev, t2)

	j := got[0]
	if j.LastChangedAt == nil || !j.LastChangedAt.Equal(t2) {
		t.Fatalf("lastChangedAt = %v, want %v", j.LastChangedAt, t2)
	}
	if !j.FirstSeenAt.Equal(t1) {
		t.Fatalf("firstSeenAt = %v, want preserved %v", j.FirstSeenAt, t1)
	}

	// A further unchanged ingest must not bump lastChangedAt again.
	t3 := t2.Add(6 * time.Hour)
	again := Ingest("stripe", "greenhouse", []RawPosting{
		{ID: "1", Title: "Software Engineer Intern", URL: "u1", Location: "NYC"},
	}, got, t3)
	if !again[0].LastChangedAt.Equal(t2) {
		t.Fatalf("lastChangedAt re-bumped to %v", again[0].LastChangedAt)
	}
}

func TestIngest_VolatileFieldsExcludedFromHash(t *testing.T) {
	prev := Ingest("stripe", "greenhouse", []RawPosting{
		{ID: "1", Title: "SWE Intern", URL: "u1", ProviderUpdatedAt: t0},
	}, nil, t1)

	got := Ingest("stripe", "greenhouse", []RawPosting{
		{ID: "1", Title: "SWE Intern", URL: "u1", ProviderUpdatedAt: t2},
	}, prev, t2)

	if got[0].ContentHash != prev[0].ContentHash {
		t.Fatalf("volatile field changed the content hash")
	}
	if got[0].LastChangedAt != nil {
		t.Fatalf("volatile field advanced lastChangedAt")
	}
}

func TestIngest_AbsentPostingsDropped(t *testing.T) {
	prev := Ingest("stripe", "greenhouse", []RawPosting{
		{ID: "1", Title: "SWE Intern"},
		{ID: "2", Title: "Data Engineer"},
	}, nil, t1)

	got := Ingest("stripe", "greenhouse", []RawPosting{
		{ID: "2", Title: "Data Engineer"},
	}, prev, t2)

	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("ghost entries retained: %+v", got)
	}
}

func TestIngest_MissingTitleKeptAsEmpty(t *testing.T) {
	// A malformed posting is ingested with an empty title rather than
	// dropped, keeping the per-company job count stable.
	got := Ingest("stripe", "greenhouse", []RawPosting{
		{ID: "1", URL: "u1"},
	}, nil, t1)
	if len(got) != 1 || got[0].Title != "" {
		t.Fatalf("got %+v", got)
	}
}
