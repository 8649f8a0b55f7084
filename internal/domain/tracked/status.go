// Package tracked defines user-pinned jobs and the status machine the
// reconciler advances on every refresh.
//
// Status graph:
//
//	open ◄──► changed
//	  ▲  ▲      │
//	  │  └──────┤
//	  ▼         ▼
//	closed ◄────┘
//
// closed is not terminal: provider-assigned ids can reappear, and a closed
// job goes back to open or changed when its id shows up again. Tracked
// jobs leave the set only by explicit user removal.
package tracked

import "fmt"

type Status string

const (
	StatusOpen    Status = "open"
	StatusChanged Status = "changed"
	StatusClosed  Status = "closed"
)

// ParseStatus converts a stored string to a Status, rejecting unknown
// values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusOpen, StatusChanged, StatusClosed:
		return st, nil
	}
	return "", fmt.Errorf("unknown tracked job status %q", s)
}
