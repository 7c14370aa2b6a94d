package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/wynnforge/wynnforge/internal/catalog"
	"github.com/wynnforge/wynnforge/internal/config"
	"github.com/wynnforge/wynnforge/internal/database"
	"github.com/wynnforge/wynnforge/internal/database/postgres"
	"github.com/wynnforge/wynnforge/internal/validation"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed the item catalog (fetch, db)"
}

func (c *SeedCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: fetch, db")
	}
	subcmd := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch subcmd {
	case "fetch":
		_, _, err := c.fetchCatalog(ctx)
		return err
	case "db":
		return c.seedDatabase(ctx)
	default:
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}
}

// fetchCatalog downloads the item catalog and leaves a copy in the local
// cache file. Returns the raw document and the source it came from.
func (c *SeedCommand) fetchCatalog(ctx context.Context) ([]byte, string, error) {
	primaryURL := getEnv("CATALOG_URL", config.DefaultCatalogURL)
	fallbackURL := getEnv("CATALOG_FALLBACK_URL", config.DefaultCatalogFallbackURL)
	cacheFile := getEnv("CATALOG_CACHE_FILE", config.ConfigPathCatalogCache)

	PrintInfo("Fetching item catalog from %s", primaryURL)

	fetcher := catalog.NewHTTPFetcher(primaryURL, fallbackURL, cacheFile, 60*time.Second)
	raw, source, err := fetcher.Fetch(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("catalog fetch failed: %w", err)
	}

	PrintSuccess("Fetched %d bytes from %s (cached at %s)", len(raw), source, cacheFile)
	return raw, source, nil
}

// seedDatabase loads the cached catalog document, normalizes it and writes a
// snapshot into Postgres. Fetches first when no cache file exists yet.
func (c *SeedCommand) seedDatabase(ctx context.Context) error {
	cacheFile := getEnv("CATALOG_CACHE_FILE", config.ConfigPathCatalogCache)

	raw, err := os.ReadFile(cacheFile)
	source := cacheFile
	if err != nil {
		PrintInfo("No cache file at %s, fetching first", cacheFile)
		raw, source, err = c.fetchCatalog(ctx)
		if err != nil {
			return err
		}
	}

	schemaPath := getEnv("CATALOG_SCHEMA_FILE", config.ConfigPathItemSchema)
	loader := catalog.NewLoader(validation.NewSchemaValidator(), schemaPath)
	items, report, err := loader.LoadBytes(ctx, raw, source)
	if err != nil {
		return fmt.Errorf("catalog document rejected: %w", err)
	}
	PrintInfo("Normalized %d of %d items (%d skipped)", report.Loaded, report.Total, report.Skipped)

	dbURL := databaseURL()
	PrintInfo("Connecting to database: %s", redactPassword(dbURL))

	pool, err := database.NewPool(dbURL, 5, 5*time.Minute, 30*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	store := postgres.NewItemRepository(pool)
	synced, err := store.SyncSnapshot(ctx, raw, source, items)
	if err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}

	if synced {
		PrintSuccess("Snapshot persisted (%d items)", len(items))
	} else {
		PrintSuccess("Snapshot already up to date, nothing written")
	}
	return nil
}
