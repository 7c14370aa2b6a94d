package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/logger"
	"github.com/wynnforge/wynnforge/internal/metrics"
)

// SearchFilter narrows a catalog search. Zero values leave the dimension
// unfiltered; Limit falls back to DefaultSearchLimit.
type SearchFilter struct {
	Slot     domain.Slot `json:"slot,omitempty"`
	Tier     domain.Tier `json:"tier,omitempty"`
	MinLevel int         `json:"min_level,omitempty"`
	MaxLevel int         `json:"max_level,omitempty"`
	Limit    int         `json:"limit,omitempty"`
}

// Service provides read access to the normalized item catalog.
// Items returns a shared snapshot that callers must not modify; the
// snapshot stays valid across a concurrent reload.
type Service interface {
	Items() []domain.Item
	Len() int
	Get(name string) (*domain.Item, error)
	Search(ctx context.Context, query string, filter SearchFilter) []domain.Item
	Stats() Statistics
	Report() *IngestReport
	LoadFile(ctx context.Context, path string) (*IngestReport, error)
	LoadBytes(ctx context.Context, data []byte, source string) (*IngestReport, error)
	Install(ctx context.Context, items []domain.Item, source string) (*IngestReport, error)
	Refresh(ctx context.Context) (*IngestReport, error)
}

// Options tunes the catalog service caches
type Options struct {
	SearchCacheSize int
	SearchCacheTTL  time.Duration
}

// DefaultOptions returns the standard cache settings
func DefaultOptions() Options {
	return Options{
		SearchCacheSize: DefaultSearchCacheSize,
		SearchCacheTTL:  DefaultSearchCacheTTL,
	}
}

// cachedSearch wraps cached search results with version metadata so a
// shape change invalidates old entries instead of serving them
type cachedSearch struct {
	Version  string
	CachedAt time.Time
	Items    []domain.Item
}

type service struct {
	loader  Loader
	fetcher Fetcher

	mu     sync.RWMutex
	items  []domain.Item
	byName map[string]int
	stats  Statistics
	report *IngestReport

	searchCache *expirable.LRU[string, cachedSearch]
}

// NewService creates a catalog service. The fetcher may be nil when the
// catalog is only ever loaded from disk.
func NewService(loader Loader, fetcher Fetcher, opts Options) Service {
	if opts.SearchCacheSize <= 0 {
		opts.SearchCacheSize = DefaultSearchCacheSize
	}
	if opts.SearchCacheTTL <= 0 {
		opts.SearchCacheTTL = DefaultSearchCacheTTL
	}
	return &service{
		loader:      loader,
		fetcher:     fetcher,
		searchCache: expirable.NewLRU[string, cachedSearch](opts.SearchCacheSize, nil, opts.SearchCacheTTL),
	}
}

// Items returns the current snapshot. The slice is shared; callers must
// treat it as read-only.
func (s *service) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Len returns how many items the current snapshot holds
func (s *service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get looks up one item by exact name, ignoring case
func (s *service) Get(name string) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		metrics.ItemLookups.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	metrics.ItemLookups.WithLabelValues(metrics.OutcomeSuccess).Inc()
	item := s.items[idx]
	return &item, nil
}

// Search returns items whose name contains query, narrowed by filter.
// Results come back in catalog order (level, then name).
func (s *service) Search(ctx context.Context, query string, filter SearchFilter) []domain.Item {
	log := logger.FromContext(ctx)

	if filter.Limit <= 0 {
		filter.Limit = DefaultSearchLimit
	}
	if filter.Limit > MaxSearchLimit {
		filter.Limit = MaxSearchLimit
	}

	metrics.ItemSearches.Inc()
	key := searchKey(query, filter)
	if entry, ok := s.searchCache.Get(key); ok {
		if entry.Version == SnapshotCacheVersion {
			metrics.SearchCacheHits.Inc()
			log.Debug("Search cache hit", "key", key)
			return entry.Items
		}
		s.searchCache.Remove(key)
	}
	metrics.SearchCacheMisses.Inc()

	s.mu.RLock()
	items := s.items
	s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	results := make([]domain.Item, 0, filter.Limit)
	for i := range items {
		it := &items[i]
		if needle != "" && !strings.Contains(strings.ToLower(it.Name), needle) {
			continue
		}
		if filter.Slot != "" && it.Slot != filter.Slot {
			continue
		}
		if filter.Tier != "" && it.Tier != filter.Tier {
			continue
		}
		if filter.MinLevel > 0 && it.Level < filter.MinLevel {
			continue
		}
		if filter.MaxLevel > 0 && it.Level > filter.MaxLevel {
			continue
		}
		results = append(results, *it)
		if len(results) >= filter.Limit {
			break
		}
	}

	s.searchCache.Add(key, cachedSearch{
		Version:  SnapshotCacheVersion,
		CachedAt: time.Now(),
		Items:    results,
	})
	return results
}

// Stats returns the summary for the current snapshot
func (s *service) Stats() Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Report returns the ingest report from the most recent load, nil before
// the first successful load
func (s *service) Report() *IngestReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// LoadFile ingests a catalog document from disk and swaps it in
func (s *service) LoadFile(ctx context.Context, path string) (*IngestReport, error) {
	items, report, err := s.loader.LoadFile(ctx, path)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, err
	}
	return s.swap(ctx, items, report)
}

// LoadBytes ingests a raw catalog document and swaps it in
func (s *service) LoadBytes(ctx context.Context, data []byte, source string) (*IngestReport, error) {
	items, report, err := s.loader.LoadBytes(ctx, data, source)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, err
	}
	return s.swap(ctx, items, report)
}

// Install swaps in items that were already normalized, such as a snapshot
// read back from the database. No validation runs; the items went through
// the loader when they were first persisted.
func (s *service) Install(ctx context.Context, items []domain.Item, source string) (*IngestReport, error) {
	report := &IngestReport{
		Source:   source,
		Total:    len(items),
		Loaded:   len(items),
		LoadedAt: time.Now(),
	}
	return s.swap(ctx, items, report)
}

// Refresh pulls a fresh document through the fetcher chain and swaps it
// in. The previous snapshot stays live when the refresh fails.
func (s *service) Refresh(ctx context.Context) (*IngestReport, error) {
	if s.fetcher == nil {
		return nil, ErrNoFetcher
	}

	data, source, err := s.fetcher.Fetch(ctx)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, err
	}
	return s.LoadBytes(ctx, data, source)
}

// swap installs a new snapshot. An ingest that produced zero usable items
// is refused so a bad upstream document cannot wipe a working catalog.
func (s *service) swap(ctx context.Context, items []domain.Item, report *IngestReport) (*IngestReport, error) {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		metrics.CatalogReloads.WithLabelValues(metrics.OutcomeFailure).Inc()
		return report, fmt.Errorf("%w (source %s)", ErrNoUsableItems, report.Source)
	}

	byName := make(map[string]int, len(items))
	for i := range items {
		byName[strings.ToLower(items[i].Name)] = i
	}
	stats := computeStatistics(items)

	s.mu.Lock()
	s.items = items
	s.byName = byName
	s.stats = stats
	s.report = report
	s.mu.Unlock()

	s.searchCache.Purge()
	metrics.CatalogReloads.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.CatalogItems.Set(float64(len(items)))

	log.Info(LogMsgCatalogLoaded,
		"source", report.Source,
		"total", report.Total,
		"loaded", report.Loaded,
		"skipped", report.Skipped,
		"duplicates", report.Duplicates)
	return report, nil
}

// searchKey builds the cache key for one query and filter combination
func searchKey(query string, filter SearchFilter) string {
	return fmt.Sprintf("%s|%s|%s|%d|%d|%d",
		strings.ToLower(strings.TrimSpace(query)),
		filter.Slot, filter.Tier, filter.MinLevel, filter.MaxLevel, filter.Limit)
}
