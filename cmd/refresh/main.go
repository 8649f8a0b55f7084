// Command refresh runs a single fetch cycle and exits. Useful for
// cron-style deployments and for smoke-testing board configuration.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"directin/internal/app"
	"directin/internal/config"
	"directin/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	container, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	summary, err := container.Refresh.RefreshAll(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrRefreshInFlight) {
			log.Fatal("another refresh is already in progress")
		}
		log.Fatalf("refresh failed: %v", err)
	}

	for _, c := range summary.Companies {
		if c.Error != "" {
			log.Printf("company %s (%s): error %s", c.CompanyName, c.CompanyID, c.Error)
			continue
		}
		log.Printf("company %s (%s): %d jobs, %d matches", c.CompanyName, c.CompanyID, c.JobCount, c.MatchCount)
	}
	log.Printf("refresh done: %d total matches, badge %s (took %s)",
		summary.TotalMatches, summary.Badge.Display, time.Since(summary.RanAt))
}
