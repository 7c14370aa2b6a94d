package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wynnforge/wynnforge/internal/catalog"
	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/logger"
)

// ItemListResponse is the response for item listing and search endpoints
type ItemListResponse struct {
	Count int           `json:"count"`
	Items []domain.Item `json:"items"`
}

// CatalogStatsResponse combines catalog statistics with the last ingest report
type CatalogStatsResponse struct {
	Statistics catalog.Statistics    `json:"statistics"`
	Report     *catalog.IngestReport `json:"report,omitempty"`
}

// CatalogReloadResponse reports the outcome of a catalog reload
type CatalogReloadResponse struct {
	Message string                `json:"message"`
	Items   int                   `json:"items"`
	Report  *catalog.IngestReport `json:"report"`
}

// parseSearchFilter reads the common slot/tier/level/limit query parameters.
// A written response means the caller should return immediately.
func parseSearchFilter(w http.ResponseWriter, r *http.Request) (catalog.SearchFilter, bool) {
	var filter catalog.SearchFilter
	q := r.URL.Query()

	if s := q.Get("slot"); s != "" {
		slot, err := domain.ParseSlot(s)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return filter, false
		}
		filter.Slot = slot
	}
	if t := q.Get("tier"); t != "" {
		tier, err := domain.ParseTier(t)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return filter, false
		}
		filter.Tier = tier
	}
	for name, dst := range map[string]*int{
		"min_level": &filter.MinLevel,
		"max_level": &filter.MaxLevel,
		"limit":     &filter.Limit,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			respondError(w, http.StatusBadRequest, "Invalid "+name+" parameter")
			return filter, false
		}
		*dst = value
	}

	return filter, true
}

// HandleListItems lists catalog items matching the given filters
// @Summary List items
// @Description Lists catalog items filtered by slot, tier and level range
// @Tags catalog
// @Produce json
// @Param slot query string false "Equipment slot"
// @Param tier query string false "Rarity tier"
// @Param min_level query int false "Minimum item level"
// @Param max_level query int false "Maximum item level"
// @Param limit query int false "Maximum results"
// @Success 200 {object} ItemListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Catalog not loaded"
// @Router /items [get]
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc.Len() == 0 {
			respondError(w, http.StatusServiceUnavailable, ErrMsgCatalogUnavailable)
			return
		}

		filter, ok := parseSearchFilter(w, r)
		if !ok {
			return
		}

		items := svc.Search(r.Context(), "", filter)
		respondJSON(w, http.StatusOK, ItemListResponse{Count: len(items), Items: items})
	}
}

// HandleSearchItems searches catalog items by name substring
// @Summary Search items
// @Description Searches catalog items by name with optional slot, tier and level filters
// @Tags catalog
// @Produce json
// @Param q query string true "Name substring"
// @Param slot query string false "Equipment slot"
// @Param tier query string false "Rarity tier"
// @Param min_level query int false "Minimum item level"
// @Param max_level query int false "Maximum item level"
// @Param limit query int false "Maximum results"
// @Success 200 {object} ItemListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Catalog not loaded"
// @Router /items/search [get]
func HandleSearchItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc.Len() == 0 {
			respondError(w, http.StatusServiceUnavailable, ErrMsgCatalogUnavailable)
			return
		}

		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}
		filter, ok := parseSearchFilter(w, r)
		if !ok {
			return
		}

		items := svc.Search(r.Context(), query, filter)
		respondJSON(w, http.StatusOK, ItemListResponse{Count: len(items), Items: items})
	}
}

// HandleGetItem returns a single catalog item by name
// @Summary Get one item
// @Description Looks up a catalog item by its exact name, case-insensitively
// @Tags catalog
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Catalog not loaded"
// @Router /items/{name} [get]
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc.Len() == 0 {
			respondError(w, http.StatusServiceUnavailable, ErrMsgCatalogUnavailable)
			return
		}

		name := chi.URLParam(r, "name")
		item, err := svc.Get(name)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}

// HandleCatalogStats reports catalog composition and the last ingest report
// @Summary Catalog statistics
// @Description Reports item counts by tier, slot and level band plus the last ingest report
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogStatsResponse
// @Failure 503 {object} ErrorResponse "Catalog not loaded"
// @Router /catalog/stats [get]
func HandleCatalogStats(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc.Len() == 0 {
			respondError(w, http.StatusServiceUnavailable, ErrMsgCatalogUnavailable)
			return
		}

		respondJSON(w, http.StatusOK, CatalogStatsResponse{
			Statistics: svc.Stats(),
			Report:     svc.Report(),
		})
	}
}

// HandleCatalogReload re-fetches the catalog from its configured sources
// @Summary Reload the catalog
// @Description Re-fetches the item catalog and swaps it in atomically; the previous catalog stays active on failure
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogReloadResponse
// @Failure 400 {object} ErrorResponse "No fetcher configured"
// @Failure 502 {object} ErrorResponse "Upstream returned no usable items"
// @Router /catalog/reload [post]
func HandleCatalogReload(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		report, err := svc.Refresh(r.Context())
		if err != nil {
			log.Error(LogMsgReloadFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info(LogMsgReloadCompleted, "items", svc.Len(), "source", report.Source)
		respondJSON(w, http.StatusOK, CatalogReloadResponse{
			Message: MsgCatalogReloaded,
			Items:   svc.Len(),
			Report:  report,
		})
	}
}
