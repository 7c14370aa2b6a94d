package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wynnforge/wynnforge/internal/catalog"
	"github.com/wynnforge/wynnforge/internal/worker"
)

// PrimeCatalog fills the item catalog at startup. The fetcher chain
// (network, then cache file) is authoritative and the result is synced to
// the database; when every source fails and a database is configured, the
// latest stored snapshot is installed so the API can come up offline.
func PrimeCatalog(ctx context.Context, catalogSvc catalog.Service, store catalog.Store, cacheFile string) error {
	refreshErr := worker.NewCatalogRefreshJob(catalogSvc, store, cacheFile).Process(ctx)
	if refreshErr == nil {
		return nil
	}

	if store == nil {
		return refreshErr
	}
	slog.Warn(LogMsgCatalogFetchFailed, "error", refreshErr)

	items, err := store.LoadItems(ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrNoSnapshot) {
			return refreshErr
		}
		return errors.Join(refreshErr, err)
	}

	report, err := catalogSvc.Install(ctx, items, SourceDatabase)
	if err != nil {
		return errors.Join(refreshErr, err)
	}

	snap, err := store.LatestSnapshot(ctx)
	if err == nil {
		slog.Info(LogMsgCatalogRestoredFromDB,
			"items", report.Loaded,
			"original_source", snap.Source,
			"stored_at", snap.LoadedAt)
	} else {
		slog.Info(LogMsgCatalogRestoredFromDB, "items", report.Loaded)
	}
	return nil
}
