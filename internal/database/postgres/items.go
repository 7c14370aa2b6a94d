package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wynnforge/wynnforge/internal/catalog"
	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/logger"
)

type itemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a PostgreSQL catalog snapshot store
func NewItemRepository(db *pgxpool.Pool) catalog.Store {
	return &itemRepository{db: db}
}

// SyncSnapshot persists the document unless its content hash matches an
// existing snapshot. Items are written inside one transaction; older
// snapshots beyond KeepSnapshots are pruned on success.
func (r *itemRepository) SyncSnapshot(ctx context.Context, raw []byte, source string, items []domain.Item) (bool, error) {
	log := logger.FromContext(ctx)

	sum := sha256.Sum256(raw)
	hash := hex.EncodeToString(sum[:])

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM catalog_snapshots WHERE content_hash = $1)`,
		hash).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf(ErrMsgQuerySnapshot, err)
	}
	if exists {
		log.Debug(LogMsgSnapshotUnchanged, "hash", hash[:12], "source", source)
		return false, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			log.Error(ErrMsgRollbackTransaction, "error", err)
		}
	}()

	var snapshotID int
	err = tx.QueryRow(ctx,
		`INSERT INTO catalog_snapshots (content_hash, source, item_count)
		 VALUES ($1, $2, $3)
		 RETURNING snapshot_id`,
		hash, source, len(items)).Scan(&snapshotID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgInsertSnapshot, err)
	}

	batch := &pgx.Batch{}
	for i := range items {
		it := &items[i]
		data, err := json.Marshal(it)
		if err != nil {
			return false, fmt.Errorf(ErrMsgInsertItems, err)
		}
		batch.Queue(
			`INSERT INTO catalog_items (snapshot_id, item_name, slot, tier, item_level, item_data)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			snapshotID, it.Name, string(it.Slot), string(it.Tier), it.Level, data)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return false, fmt.Errorf(ErrMsgInsertItems, err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM catalog_snapshots
		 WHERE snapshot_id NOT IN (
		     SELECT snapshot_id FROM catalog_snapshots
		     ORDER BY snapshot_id DESC
		     LIMIT $1
		 )`,
		KeepSnapshots); err != nil {
		return false, fmt.Errorf(ErrMsgPruneSnapshots, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgSnapshotWritten,
		"snapshot_id", snapshotID,
		"items", len(items),
		"hash", hash[:12],
		"source", source)
	return true, nil
}

// LatestSnapshot returns the most recent snapshot metadata
func (r *itemRepository) LatestSnapshot(ctx context.Context) (*catalog.Snapshot, error) {
	var snap catalog.Snapshot
	err := r.db.QueryRow(ctx,
		`SELECT snapshot_id, content_hash, source, item_count, loaded_at
		 FROM catalog_snapshots
		 ORDER BY snapshot_id DESC
		 LIMIT 1`).Scan(&snap.ID, &snap.ContentHash, &snap.Source, &snap.ItemCount, &snap.LoadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNoSnapshot
		}
		return nil, fmt.Errorf(ErrMsgQuerySnapshot, err)
	}
	return &snap, nil
}

// LoadItems returns the items of the most recent snapshot in name order
func (r *itemRepository) LoadItems(ctx context.Context) ([]domain.Item, error) {
	snap, err := r.LatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT item_name, item_data
		 FROM catalog_items
		 WHERE snapshot_id = $1
		 ORDER BY item_name`,
		snap.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryItems, err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0, snap.ItemCount)
	for rows.Next() {
		var name string
		var data []byte
		if err := rows.Scan(&name, &data); err != nil {
			return nil, fmt.Errorf(ErrMsgQueryItems, err)
		}
		var item domain.Item
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeItem, name, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgQueryItems, err)
	}

	return items, nil
}
