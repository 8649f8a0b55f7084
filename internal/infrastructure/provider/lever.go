package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"directin/internal/domain/job"
)

const leverBaseURL = "https://api.lever.co/v0/postings"

type leverClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type leverPosting struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	HostedURL  string   `json:"hostedUrl"`
	CreatedAt  flexTime `json:"createdAt"`
	UpdatedAt  flexTime `json:"updatedAt"`
	Categories *struct {
		Location string `json:"location"`
	} `json:"categories"`
}

func NewLeverClient(logger *log.Logger) Client {
	return &leverClient{
		baseURL: leverBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (c *leverClient) Name() string { return "lever" }

// Lever does not report a company display name; the caller keeps the name
// it already has.
func (c *leverClient) FetchBoard(ctx context.Context, boardSlug string) (Board, error) {
	slug := strings.ToLower(strings.TrimSpace(boardSlug))
	if slug == "" {
		return Board{}, errors.New("empty board slug")
	}
	endpoint := fmt.Sprintf("%s/%s?mode=json", c.baseURL, url.PathEscape(slug))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Board{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Board{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("lever board %s: HTTP %d", slug, resp.StatusCode)
		if c.logger != nil {
			c.logger.Printf("[Provider] Lever fetch error slug=%s status=%d", slug, resp.StatusCode)
		}
		return Board{}, err
	}

	var postings []leverPosting
	if err := json.NewDecoder(resp.Body).Decode(&postings); err != nil {
		return Board{}, fmt.Errorf("lever board %s: decode: %w", slug, err)
	}

	board := Board{Postings: make([]job.RawPosting, 0, len(postings))}
	for _, lp := range postings {
		p := job.RawPosting{
			ID:                lp.ID,
			Title:             lp.Text,
			URL:               lp.HostedURL,
			PostedAt:          lp.CreatedAt.Time,
			ProviderUpdatedAt: lp.UpdatedAt.Time,
		}
		if p.ID == "" {
			p.LocalID = p.URL
		}
		if lp.Categories != nil {
			p.Location = lp.Categories.Location
		}
		board.Postings = append(board.Postings, p)
	}
	return board, nil
}

var _ Client = (*leverClient)(nil)
