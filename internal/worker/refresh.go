package worker

import (
	"context"
	"os"

	"github.com/wynnforge/wynnforge/internal/catalog"
	"github.com/wynnforge/wynnforge/internal/logger"
)

// CatalogRefreshJob re-pulls the item catalog through the service's
// fetcher chain. When a snapshot store is configured it also syncs the
// refreshed document to the database, reading the raw bytes back from
// the cache file the fetcher just wrote.
type CatalogRefreshJob struct {
	catalog   catalog.Service
	store     catalog.Store
	cacheFile string
}

// NewCatalogRefreshJob creates the periodic refresh job. store may be
// nil for file-only deployments; cacheFile may be empty when no cache
// file is configured, which skips the store sync.
func NewCatalogRefreshJob(catalogSvc catalog.Service, store catalog.Store, cacheFile string) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		catalog:   catalogSvc,
		store:     store,
		cacheFile: cacheFile,
	}
}

// Process refreshes the catalog and syncs the snapshot store. A failed
// refresh leaves the previous catalog serving and is reported as a job
// error.
func (j *CatalogRefreshJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCatalogRefreshStarted)

	report, err := j.catalog.Refresh(ctx)
	if err != nil {
		return err
	}

	log.Info(LogMsgCatalogRefreshCompleted,
		"loaded", report.Loaded,
		"skipped", report.Skipped,
		"source", report.Source)

	if j.store == nil || j.cacheFile == "" {
		return nil
	}

	raw, err := os.ReadFile(j.cacheFile)
	if err != nil {
		log.Warn(LogMsgSnapshotSyncSkipped, "path", j.cacheFile, "error", err)
		return nil
	}
	synced, err := j.store.SyncSnapshot(ctx, raw, report.Source, j.catalog.Items())
	if err != nil {
		return err
	}
	if synced {
		log.Info(LogMsgSnapshotSynced, "items", j.catalog.Len(), "source", report.Source)
	}
	return nil
}
