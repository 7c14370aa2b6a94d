package schema

// SchemaSQL contains the full database schema initialization script.
// cmd/setup applies it to bootstrap a fresh database; incremental changes
// go through the goose migrations under migrations/.
const SchemaSQL = `
-- Catalog Snapshot Schema

-- 1. Snapshot Registry
-- One row per distinct catalog document, keyed by content hash so an
-- unchanged document is never written twice.
CREATE TABLE IF NOT EXISTS catalog_snapshots (
    snapshot_id SERIAL PRIMARY KEY,
    content_hash CHAR(64) UNIQUE NOT NULL,
    source TEXT NOT NULL,
    item_count INTEGER NOT NULL DEFAULT 0,
    loaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- 2. Snapshot Items
-- Normalized items of each snapshot. The full item lives in item_data;
-- the indexed columns exist for slot/tier/level queries without JSONB
-- extraction.
CREATE TABLE IF NOT EXISTS catalog_items (
    item_id SERIAL PRIMARY KEY,
    snapshot_id INTEGER NOT NULL REFERENCES catalog_snapshots(snapshot_id) ON DELETE CASCADE,
    item_name VARCHAR(100) NOT NULL,
    slot VARCHAR(20) NOT NULL,
    tier VARCHAR(20) NOT NULL,
    item_level INTEGER NOT NULL,
    item_data JSONB NOT NULL,
    UNIQUE (snapshot_id, item_name)
);

-- Indexes for the common lookup paths
CREATE INDEX IF NOT EXISTS idx_catalog_items_snapshot ON catalog_items (snapshot_id);
CREATE INDEX IF NOT EXISTS idx_catalog_items_slot_tier ON catalog_items (slot, tier, item_level);
CREATE INDEX IF NOT EXISTS idx_catalog_items_data ON catalog_items USING GIN (item_data);
`
