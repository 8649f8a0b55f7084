package profile

import "testing"

func TestDedupeQueries(t *testing.T) {
	got := DedupeQueries([]string{"SWE Intern", "swe intern!", "  ", "Data Engineer"})
	want := []string{"SWE Intern", "Data Engineer"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSlugFromBoardInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"stripe", "stripe", true},
		{"  Acme-Labs ", "acme-labs", true},
		{"https://boards.greenhouse.io/stripe", "stripe", true},
		{"https://boards.greenhouse.io/v1/boards/stripe/jobs", "stripe", true},
		{"https://example.com/stripe", "", false},
		{"not a slug", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := SlugFromBoardInput(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("SlugFromBoardInput(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestTitleizeSlug(t *testing.T) {
	if got := TitleizeSlug("acme-labs"); got != "Acme Labs" {
		t.Errorf("got %q", got)
	}
	if got := TitleizeSlug("stripe"); got != "Stripe" {
		t.Errorf("got %q", got)
	}
}
