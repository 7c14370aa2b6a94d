package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/wynnforge/wynnforge/internal/logger"
)

// Fetcher retrieves a raw catalog document. The returned source labels
// where the bytes came from for ingest reporting.
type Fetcher interface {
	Fetch(ctx context.Context) (data []byte, source string, err error)
}

// HTTPFetcher pulls the catalog from the primary endpoint, then the
// fallback endpoint, then the on-disk cache file. Successful network
// fetches refresh the cache so later cold starts work offline.
type HTTPFetcher struct {
	primaryURL  string
	fallbackURL string
	cachePath   string
	httpClient  *http.Client
}

// NewHTTPFetcher creates a fetcher for the given endpoints. An empty
// cachePath disables the cache file entirely.
func NewHTTPFetcher(primaryURL, fallbackURL, cachePath string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPFetcher{
		primaryURL:  primaryURL,
		fallbackURL: fallbackURL,
		cachePath:   cachePath,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch walks the source chain and returns the first document obtained
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, string, error) {
	log := logger.FromContext(ctx)

	log.Info(LogMsgCatalogFetchStarted, "url", f.primaryURL)
	data, primaryErr := f.fetchURL(ctx, f.primaryURL)
	if primaryErr == nil {
		f.writeCache(ctx, data)
		return data, f.primaryURL, nil
	}

	var fallbackErr error
	if f.fallbackURL != "" {
		log.Warn(LogMsgCatalogFetchFallback, "url", f.fallbackURL, "error", primaryErr)
		data, fallbackErr = f.fetchURL(ctx, f.fallbackURL)
		if fallbackErr == nil {
			f.writeCache(ctx, data)
			return data, f.fallbackURL, nil
		}
	}

	var cacheErr error
	if f.cachePath != "" {
		log.Warn(LogMsgCatalogFetchCached, "path", f.cachePath, "error", fallbackErr)
		data, cacheErr = os.ReadFile(f.cachePath)
		if cacheErr == nil {
			return data, f.cachePath, nil
		}
	}

	return nil, "", fmt.Errorf("%w: %v", ErrAllSourcesFailed, errors.Join(primaryErr, fallbackErr, cacheErr))
}

// fetchURL performs one HTTP GET and returns the response body
func (f *HTTPFetcher) fetchURL(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("no catalog URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchFailed, url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchFailed, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(ErrMsgFetchStatus, url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchFailed, url, err)
	}
	return data, nil
}

// writeCache refreshes the on-disk cache file. Cache write failures are
// logged but never fail the fetch that produced the data.
func (f *HTTPFetcher) writeCache(ctx context.Context, data []byte) {
	if f.cachePath == "" {
		return
	}
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(f.cachePath), 0o755); err != nil {
		log.Warn(LogMsgCatalogCacheSkipped, "path", f.cachePath, "error", err)
		return
	}
	if err := os.WriteFile(f.cachePath, data, 0o600); err != nil {
		log.Warn(LogMsgCatalogCacheSkipped, "path", f.cachePath, "error", err)
		return
	}
	log.Debug(LogMsgCatalogCacheWritten, "path", f.cachePath, "bytes", len(data))
}
