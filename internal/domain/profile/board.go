package profile

import (
	"net/url"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// SlugFromBoardInput accepts either a bare Greenhouse board slug
// ("stripe") or a greenhouse.io URL, including the API form
// /v1/boards/<slug>, and returns the lowercased slug. ok is false for
// anything else.
func SlugFromBoardInput(text string) (string, bool) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", false
	}

	if !strings.Contains(t, "http") && slugPattern.MatchString(strings.ToLower(t)) {
		return strings.ToLower(t), true
	}

	u, err := url.Parse(t)
	if err != nil {
		return "", false
	}
	if !strings.Contains(u.Hostname(), "greenhouse.io") {
		return "", false
	}

	parts := make([]string, 0, 4)
	for _, p := range strings.Split(u.Path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) >= 3 && parts[0] == "v1" && parts[1] == "boards" {
		return strings.ToLower(parts[2]), true
	}
	if len(parts) >= 1 {
		return strings.ToLower(parts[0]), true
	}
	return "", false
}

// TitleizeSlug turns a board slug into a display name: "acme-labs" →
// "Acme Labs".
func TitleizeSlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
