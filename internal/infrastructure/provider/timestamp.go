package provider

import (
	"strconv"
	"strings"
	"time"
)

// flexTime tolerates the timestamp shapes board APIs actually emit:
// RFC3339 strings, and epoch seconds or milliseconds as either numbers or
// digit strings. Anything unparseable decodes to the zero time, which the
// match selector sorts last.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = epochToTime(n)
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed.UTC()
		return nil
	}

	t.Time = time.Time{}
	return nil
}

// Values above 1e12 are epoch milliseconds, below are seconds.
func epochToTime(n int64) time.Time {
	if n <= 0 {
		return time.Time{}
	}
	if n > 1_000_000_000_000 {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}
