package matching

import (
	"testing"
	"time"

	"directin/internal/domain/job"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  A-B  ", "a b"},
		{"Software Engineer, Intern (2024)", "software engineer intern 2024"},
		{"", ""},
		{"---", ""},
		{"C++ / Go!!", "c go"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"  A-B  ", "SWE Intern!", "already normal", "", "Ünï-cødé"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestExpandAbbreviations_WholeTokensOnly(t *testing.T) {
	if got := ExpandAbbreviations("swe intern"); got != "software engineer intern" {
		t.Errorf("got %q", got)
	}
	if got := ExpandAbbreviations("ml engineer"); got != "machine learning engineer" {
		t.Errorf("got %q", got)
	}
	// Substrings inside longer words must be left alone.
	if got := ExpandAbbreviations("swell html"); got != "swell html" {
		t.Errorf("expanded inside a longer word: %q", got)
	}
}

func TestScoreTitleAgainstQuery_SeniorityVeto(t *testing.T) {
	titles := []string{
		"Senior Software Engineer",
		"Staff Engineer",
		"Principal Scientist",
		"Tech Lead",
		"Engineering Manager",
		"Director of Engineering",
		"Head of Data",
	}
	for _, title := range titles {
		if got := ScoreTitleAgainstQuery(title, "software engineer"); got != 0 {
			t.Errorf("ScoreTitleAgainstQuery(%q) = %v, want 0", title, got)
		}
	}
}

func TestScoreTitleAgainstQuery_FullMatchViaExpansionAndAliases(t *testing.T) {
	got := ScoreTitleAgainstQuery("Software Engineering Internship 2024", "SWE Intern")
	if got != 1.0 {
		t.Fatalf("score = %v, want 1.0", got)
	}
}

func TestScoreTitleAgainstQuery_PartialCoverage(t *testing.T) {
	// "software" and "engineer" match, "intern" does not: 2/3.
	got := ScoreTitleAgainstQuery("Software Engineer, Backend", "software engineer intern")
	want := 2.0 / 3.0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("score = %v, want %v", got, want)
	}
}

func TestScoreTitleAgainstQuery_StopWordsDropped(t *testing.T) {
	// Stop words must not dilute coverage: "of" and "the" are ignored.
	got := ScoreTitleAgainstQuery("Platform Engineer", "engineer of the platform")
	if got != 1.0 {
		t.Fatalf("score = %v, want 1.0", got)
	}
}

func TestScoreTitleAgainstQuery_SubstringBonusCapped(t *testing.T) {
	// Full coverage plus a literal substring hit stays capped at 1.0.
	if got := ScoreTitleAgainstQuery("Software Engineer Intern", "Software Engineer Intern"); got != 1.0 {
		t.Fatalf("score = %v, want 1.0", got)
	}
}

func TestScoreTitleAgainstQuery_Degenerate(t *testing.T) {
	if got := ScoreTitleAgainstQuery("Software Engineer", ""); got != 0 {
		t.Errorf("empty query score = %v, want 0", got)
	}
	if got := ScoreTitleAgainstQuery("Software Engineer", "of the and"); got != 0 {
		t.Errorf("stop-word-only query score = %v, want 0", got)
	}
	if got := ScoreTitleAgainstQuery("", "software engineer"); got != 0 {
		t.Errorf("empty title score = %v, want 0", got)
	}
}

func TestBestMatch(t *testing.T) {
	m := BestMatch("Software Engineer Intern", []string{"data scientist", "swe intern"})
	if m.Query != "swe intern" {
		t.Fatalf("best query = %q, want %q", m.Query, "swe intern")
	}
	if m.Score != 1.0 {
		t.Fatalf("best score = %v, want 1.0", m.Score)
	}
}

func TestBestMatch_EmptyQueries(t *testing.T) {
	m := BestMatch("Software Engineer", nil)
	if m.Score != 0 || m.Query != "" {
		t.Fatalf("got %+v, want zero match", m)
	}
}

func TestBestMatch_TieKeepsFirst(t *testing.T) {
	m := BestMatch("Software Engineer Intern", []string{"software intern", "engineer intern"})
	if m.Query != "software intern" {
		t.Fatalf("tie broke to %q, want first query", m.Query)
	}
}

func TestRelevantMatches_ThresholdAndOrder(t *testing.T) {
	day := 24 * time.Hour
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	jobs := []job.IngestedJob{
		{ID: "old", Title: "Software Engineer Intern", PostedAt: now.Add(-10 * day)},
		{ID: "none", Title: "Accountant"},
		{ID: "new", Title: "Software Engineering Internship", PostedAt: now.Add(-1 * day)},
		{ID: "undated", Title: "SWE Intern"},
		{ID: "senior", Title: "Senior Software Engineer Intern", PostedAt: now},
	}

	got := RelevantMatches(jobs, []string{"SWE Intern"})

	for _, s := range got {
		if s.Match.Score < MatchThreshold {
			t.Fatalf("entry %q below threshold: %v", s.Job.ID, s.Match.Score)
		}
	}

	ids := make([]string, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.Job.ID)
	}
	want := []string{"new", "old", "undated"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
}
