package seeder

import (
	"context"
	"fmt"

	"directin/internal/database"
	"directin/internal/domain/profile"
)

// CompanyDirectorySeeder loads the curated starter directory. Users can
// still add any Greenhouse board by slug or URL; these rows only feed the
// setup suggestions.
type CompanyDirectorySeeder struct{}

func (CompanyDirectorySeeder) Name() string { return "company_directory" }

var directoryDefaults = []profile.Company{
	{ID: "stripe", Name: "Stripe", Provider: "greenhouse", BoardSlug: "stripe", Domain: "stripe.com", CareersURL: "https://boards.greenhouse.io/stripe"},
	{ID: "airbnb", Name: "Airbnb", Provider: "greenhouse", BoardSlug: "airbnb", Domain: "airbnb.com", CareersURL: "https://boards.greenhouse.io/airbnb"},
	{ID: "doordash", Name: "DoorDash", Provider: "greenhouse", BoardSlug: "doordash", Domain: "doordash.com", CareersURL: "https://boards.greenhouse.io/doordash"},
	{ID: "figma", Name: "Figma", Provider: "greenhouse", BoardSlug: "figma", Domain: "figma.com", CareersURL: "https://boards.greenhouse.io/figma"},
	{ID: "coinbase", Name: "Coinbase", Provider: "greenhouse", BoardSlug: "coinbase", Domain: "coinbase.com", CareersURL: "https://boards.greenhouse.io/coinbase"},
	{ID: "twitch", Name: "Twitch", Provider: "greenhouse", BoardSlug: "twitch", Domain: "twitch.tv", CareersURL: "https://boards.greenhouse.io/twitch"},
	{ID: "roblox", Name: "Roblox", Provider: "greenhouse", BoardSlug: "roblox", Domain: "roblox.com", CareersURL: "https://boards.greenhouse.io/roblox"},
	{ID: "databricks", Name: "Databricks", Provider: "greenhouse", BoardSlug: "databricks", Domain: "databricks.com", CareersURL: "https://boards.greenhouse.io/databricks"},
	{ID: "notion", Name: "Notion", Provider: "greenhouse", BoardSlug: "notion", Domain: "notion.so", CareersURL: "https://boards.greenhouse.io/notion"},
	{ID: "snowflake", Name: "Snowflake", Provider: "greenhouse", BoardSlug: "snowflake", Domain: "snowflake.com", CareersURL: "https://boards.greenhouse.io/snowflake"},
	{ID: "shopify", Name: "Shopify", Provider: "greenhouse", BoardSlug: "shopify", Domain: "shopify.com", CareersURL: "https://boards.greenhouse.io/shopify"},
	{ID: "airtable", Name: "Airtable", Provider: "greenhouse", BoardSlug: "airtable", Domain: "airtable.com", CareersURL: "https://boards.greenhouse.io/airtable"},
	{ID: "discord", Name: "Discord", Provider: "greenhouse", BoardSlug: "discord", Domain: "discord.com", CareersURL: "https://boards.greenhouse.io/discord"},
	{ID: "robinhood", Name: "Robinhood", Provider: "greenhouse", BoardSlug: "robinhood", Domain: "robinhood.com", CareersURL: "https://boards.greenhouse.io/robinhood"},
	{ID: "atlassian", Name: "Atlassian", Provider: "greenhouse", BoardSlug: "atlassian", Domain: "atlassian.com", CareersURL: "https://boards.greenhouse.io/atlassian"},

	{ID: "lever:reddit", Name: "Reddit", Provider: "lever", BoardSlug: "reddit", Domain: "reddit.com", CareersURL: "https://jobs.lever.co/reddit"},
	{ID: "lever:plaid", Name: "Plaid", Provider: "lever", BoardSlug: "plaid", Domain: "plaid.com", CareersURL: "https://jobs.lever.co/plaid"},

	// Link-only careers pages; shown in the directory but never fetched.
	{ID: "custom:google.com", Name: "Google", Provider: "custom", Domain: "google.com", CareersURL: "https://careers.google.com/"},
	{ID: "custom:meta.com", Name: "Meta", Provider: "custom", Domain: "meta.com", CareersURL: "https://www.metacareers.com/"},
	{ID: "custom:amazon.com", Name: "Amazon", Provider: "custom", Domain: "amazon.com", CareersURL: "https://www.amazon.jobs/"},
	{ID: "custom:apple.com", Name: "Apple", Provider: "custom", Domain: "apple.com", CareersURL: "https://www.apple.com/careers/"},
	{ID: "custom:netflix.com", Name: "Netflix", Provider: "custom", Domain: "netflix.com", CareersURL: "https://jobs.netflix.com/"},
	{ID: "custom:microsoft.com", Name: "Microsoft", Provider: "custom", Domain: "microsoft.com", CareersURL: "https://careers.microsoft.com/"},
	{ID: "custom:nvidia.com", Name: "NVIDIA", Provider: "custom", Domain: "nvidia.com", CareersURL: "https://nvidia.wd5.myworkdayjobs.com/NVIDIAExternalCareerSite"},
	{ID: "custom:salesforce.com", Name: "Salesforce", Provider: "custom", Domain: "salesforce.com", CareersURL: "https://www.salesforce.com/company/careers/"},
	{ID: "custom:tesla.com", Name: "Tesla", Provider: "custom", Domain: "tesla.com", CareersURL: "https://www.tesla.com/careers"},
	{ID: "custom:openai.com", Name: "OpenAI", Provider: "custom", Domain: "openai.com", CareersURL: "https://openai.com/careers/"},
	{ID: "custom:anthropic.com", Name: "Anthropic", Provider: "custom", Domain: "anthropic.com", CareersURL: "https://www.anthropic.com/careers"},
}

func (CompanyDirectorySeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range directoryDefaults {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO company_directory (id, name, provider, board_slug, domain, careers_url)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Provider, c.BoardSlug, c.Domain, c.CareersURL,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
