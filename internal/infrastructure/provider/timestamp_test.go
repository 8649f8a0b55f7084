package provider

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexTime_Unmarshal(t *testing.T) {
	want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", `"2024-03-15T10:30:00Z"`, want},
		{"epoch seconds number", `1710498600`, want},
		{"epoch millis number", `1710498600000`, want},
		{"epoch seconds string", `"1710498600"`, want},
		{"null", `null`, time.Time{}},
		{"empty string", `""`, time.Time{}},
		{"garbage", `"next tuesday"`, time.Time{}},
	}

	for _, c := range cases {
		var ft flexTime
		if err := json.Unmarshal([]byte(c.raw), &ft); err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if !ft.Time.Equal(c.want) {
			t.Errorf("%s: got %v, want %v", c.name, ft.Time, c.want)
		}
	}
}

func TestFlexTime_InsideStruct(t *testing.T) {
	var gj greenhouseJob
	raw := `{"id": 4001, "title": "SWE Intern", "created_at": "2024-03-15T10:30:00Z"}`
	if err := json.Unmarshal([]byte(raw), &gj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if gj.ID.String() != "4001" {
		t.Errorf("id = %q", gj.ID.String())
	}
	if gj.CreatedAt.IsZero() {
		t.Errorf("created_at not parsed")
	}
}
