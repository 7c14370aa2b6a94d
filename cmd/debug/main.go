// Debug dumps the catalog tables for inspection: every stored snapshot, and
// the slot and tier breakdown of the most recent one.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/wynnforge/wynnforge/internal/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "wynnforge"),
	)

	dbPool, err := database.NewPool(connString, 5, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Dump snapshots, newest first
	fmt.Println("--- Catalog Snapshots ---")
	rows, err := dbPool.Query(ctx, `
		SELECT snapshot_id, content_hash, source, item_count, loaded_at
		FROM catalog_snapshots
		ORDER BY snapshot_id DESC
	`)
	if err != nil {
		log.Fatalf("Failed to query snapshots: %v", err)
	}
	defer rows.Close()

	var latestID int
	count := 0
	for rows.Next() {
		var id, itemCount int
		var hash, source string
		var loadedAt time.Time
		if err := rows.Scan(&id, &hash, &source, &itemCount, &loadedAt); err != nil {
			log.Fatalf("Failed to scan snapshot: %v", err)
		}
		if count == 0 {
			latestID = id
		}
		count++
		fmt.Printf("ID: %d, Hash: %s…, Source: %s, Items: %d, LoadedAt: %s\n",
			id, hash[:12], source, itemCount, loadedAt.Format(time.RFC3339))
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Failed to read snapshots: %v", err)
	}
	if count == 0 {
		fmt.Println("(no snapshots stored; run 'go run ./cmd/devtool seed db')")
		return
	}

	// Slot breakdown of the latest snapshot
	fmt.Println("\n--- Latest Snapshot by Slot ---")
	dumpBreakdown(ctx, dbPool, latestID, "slot")

	// Tier breakdown of the latest snapshot
	fmt.Println("\n--- Latest Snapshot by Tier ---")
	dumpBreakdown(ctx, dbPool, latestID, "tier")
}

func dumpBreakdown(ctx context.Context, dbPool *pgxpool.Pool, snapshotID int, column string) {
	// column is one of the two call sites above, never user input
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM catalog_items
		WHERE snapshot_id = $1
		GROUP BY %s
		ORDER BY COUNT(*) DESC
	`, column, column)

	rows, err := dbPool.Query(ctx, query, snapshotID)
	if err != nil {
		log.Printf("Failed to query %s breakdown: %v", column, err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var value string
		var n int
		if err := rows.Scan(&value, &n); err != nil {
			log.Printf("Failed to scan %s row: %v", column, err)
			return
		}
		fmt.Printf("%-12s %d\n", value, n)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Failed to read %s breakdown: %v", column, err)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
