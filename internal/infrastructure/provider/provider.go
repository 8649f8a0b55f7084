// Package provider implements the board clients that turn a board slug
// into raw posting records. Every client normalizes its provider's payload
// into job.RawPosting at this boundary so downstream code never deals with
// missing or provider-specific fields.
package provider

import (
	"context"
	"errors"

	"directin/internal/domain/job"
)

// UnsupportedSentinel is recorded in a company's cache entry when its
// provider has no client (link-only careers pages). The UI renders these
// as plain links.
const UnsupportedSentinel = "UNSUPPORTED_PROVIDER"

var ErrUnsupported = errors.New("unsupported provider")

// Board is one fetched board: the provider-reported company name (may be
// empty) plus its postings.
type Board struct {
	CompanyName string
	Postings    []job.RawPosting
}

type Client interface {
	Name() string
	FetchBoard(ctx context.Context, boardSlug string) (Board, error)
}

// Registry resolves a provider name to its client.
type Registry struct {
	clients map[string]Client
}

func NewRegistry(clients ...Client) *Registry {
	m := make(map[string]Client, len(clients))
	for _, c := range clients {
		if c == nil {
			continue
		}
		m[c.Name()] = c
	}
	return &Registry{clients: m}
}

func (r *Registry) For(providerName string) (Client, error) {
	if r == nil {
		return nil, ErrUnsupported
	}
	c, ok := r.clients[providerName]
	if !ok {
		return nil, ErrUnsupported
	}
	return c, nil
}
