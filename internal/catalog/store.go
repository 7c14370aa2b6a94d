package catalog

import (
	"context"
	"time"

	"github.com/wynnforge/wynnforge/internal/domain"
)

// Snapshot describes one persisted catalog document
type Snapshot struct {
	ID          int       `json:"id"`
	ContentHash string    `json:"content_hash"`
	Source      string    `json:"source"`
	ItemCount   int       `json:"item_count"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// Store persists catalog snapshots. Deployments without a database run
// without one; callers must treat the store as optional.
type Store interface {
	// SyncSnapshot persists the document and its normalized items unless a
	// snapshot with the same content hash already exists. Returns whether a
	// new snapshot was written.
	SyncSnapshot(ctx context.Context, raw []byte, source string, items []domain.Item) (bool, error)

	// LatestSnapshot returns the most recent snapshot metadata, or
	// ErrNoSnapshot when the store is empty.
	LatestSnapshot(ctx context.Context) (*Snapshot, error)

	// LoadItems returns the items of the most recent snapshot.
	LoadItems(ctx context.Context) ([]domain.Item, error)
}
