// Fetch-items downloads the item catalog into the local cache file and
// reports how much of it normalizes cleanly. Useful before going offline or
// for checking whether an upstream catalog update broke ingest.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/wynnforge/wynnforge/internal/catalog"
	"github.com/wynnforge/wynnforge/internal/config"
	"github.com/wynnforge/wynnforge/internal/validation"
)

const fetchTimeout = 2 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	log.Printf("Fetching item catalog from %s", cfg.CatalogURL)

	fetcher := catalog.NewHTTPFetcher(cfg.CatalogURL, cfg.CatalogFallbackURL, cfg.CatalogCacheFile, cfg.CatalogFetchTimeout)
	raw, source, err := fetcher.Fetch(ctx)
	if err != nil {
		log.Fatalf("Catalog fetch failed: %v", err)
	}
	log.Printf("Fetched %d bytes from %s (cached at %s)", len(raw), source, cfg.CatalogCacheFile)

	// Normalize to show what the ingest would keep, without touching any store
	loader := catalog.NewLoader(validation.NewSchemaValidator(), config.ConfigPathItemSchema)
	items, report, err := loader.LoadBytes(ctx, raw, source)
	if err != nil {
		log.Fatalf("Catalog document rejected: %v", err)
	}

	log.Printf("Normalized %d of %d items (%d skipped, %d duplicates)",
		report.Loaded, report.Total, report.Skipped, report.Duplicates)
	for _, issue := range report.Issues {
		log.Printf("  issue: item %d (%s) field %s: %s", issue.Index, issue.Name, issue.Field, issue.Reason)
	}
	if report.IssuesOmitted > 0 {
		log.Printf("  (%d further issues omitted)", report.IssuesOmitted)
	}

	if len(items) == 0 {
		log.Fatal("No usable items in the fetched document")
	}
	log.Println("✅ Catalog cache is ready")
}
