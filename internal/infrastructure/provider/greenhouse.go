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

const greenhouseBaseURL = "https://boards.greenhouse.io/v1/boards"

type greenhouseClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type greenhouseResponse struct {
	Company *struct {
		Name string `json:"name"`
	} `json:"company"`
	Jobs []greenhouseJob `json:"jobs"`
}

type greenhouseJob struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	AbsoluteURL string      `json:"absolute_url"`
	CreatedAt   flexTime    `json:"created_at"`
	UpdatedAt   flexTime    `json:"updated_at"`
	Location    *struct {
		Name string `json:"name"`
	} `json:"location"`
}

func NewGreenhouseClient(logger *log.Logger) Client {
	return &greenhouseClient{
		baseURL: greenhouseBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (c *greenhouseClient) Name() string { return "greenhouse" }

func (c *greenhouseClient) FetchBoard(ctx context.Context, boardSlug string) (Board, error) {
	slug := strings.ToLower(strings.TrimSpace(boardSlug))
	if slug == "" {
		return Board{}, errors.New("empty board slug")
	}
	endpoint := fmt.Sprintf("%s/%s/jobs", c.baseURL, url.PathEscape(slug))

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
		err := fmt.Errorf("greenhouse board %s: HTTP %d", slug, resp.StatusCode)
		if c.logger != nil {
			c.logger.Printf("[Provider] Greenhouse fetch error slug=%s status=%d", slug, resp.StatusCode)
		}
		return Board{}, err
	}

	var out greenhouseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Board{}, fmt.Errorf("greenhouse board %s: decode: %w", slug, err)
	}

	board := Board{Postings: make([]job.RawPosting, 0, len(out.Jobs))}
	if out.Company != nil {
		board.CompanyName = strings.TrimSpace(out.Company.Name)
	}
	for _, gj := range out.Jobs {
		p := job.RawPosting{
			ID:                gj.ID.String(),
			Title:             gj.Title,
			URL:               gj.AbsoluteURL,
			PostedAt:          gj.CreatedAt.Time,
			ProviderUpdatedAt: gj.UpdatedAt.Time,
		}
		if p.ID == "" {
			p.LocalID = p.URL
		}
		if gj.Location != nil {
			p.Location = gj.Location.Name
		}
		board.Postings = append(board.Postings, p)
	}
	return board, nil
}

var _ Client = (*greenhouseClient)(nil)
