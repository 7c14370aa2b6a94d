package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/wynnforge/wynnforge/internal/catalog"
	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/engine"
	"github.com/wynnforge/wynnforge/internal/export"
	"github.com/wynnforge/wynnforge/internal/logger"
	"github.com/wynnforge/wynnforge/internal/profile"
)

// BuildHandler serves the build generation, export and comparison endpoints
type BuildHandler struct {
	engine      engine.Service
	catalog     catalog.Service
	profiles    *profile.Store
	exporter    export.Service
	defaultTopN int
}

// NewBuildHandler wires the build endpoints to their services
func NewBuildHandler(engineSvc engine.Service, catalogSvc catalog.Service, profiles *profile.Store, exporter export.Service, defaultTopN int) *BuildHandler {
	if defaultTopN <= 0 {
		defaultTopN = engine.DefaultTopN
	}
	return &BuildHandler{
		engine:      engineSvc,
		catalog:     catalogSvc,
		profiles:    profiles,
		exporter:    exporter,
		defaultTopN: defaultTopN,
	}
}

// GenerateBuildsRequest is the body of the generate endpoint. Zero values
// fall back to the engine defaults.
type GenerateBuildsRequest struct {
	Class          string   `json:"class" validate:"required,class"`
	Playstyle      string   `json:"playstyle,omitempty" validate:"omitempty,playstyle"`
	Elements       []string `json:"elements,omitempty" validate:"omitempty,dive,element"`
	ElementBoost   bool     `json:"element_boost,omitempty"`
	LevelMin       int      `json:"level_min,omitempty" validate:"gte=0,lte=106"`
	LevelMax       int      `json:"level_max,omitempty" validate:"gte=0,lte=106"`
	NoMythics      bool     `json:"no_mythics,omitempty"`
	MaxSkillPoints int      `json:"max_skill_points,omitempty" validate:"gte=0"`
	MinDPS         float64  `json:"min_dps,omitempty" validate:"gte=0"`
	MinManaSustain float64  `json:"min_mana_sustain,omitempty"`
	MaxCost        *float64 `json:"max_cost,omitempty"`
	TopN           int      `json:"top_n,omitempty" validate:"gte=0,lte=50"`
	CharacterLevel int      `json:"character_level,omitempty" validate:"gte=0,lte=106"`
	CustomScorer   string   `json:"custom_scorer,omitempty" validate:"max=500"`
	Profile        string   `json:"profile,omitempty" validate:"max=50"`
	Workers        int      `json:"workers,omitempty" validate:"gte=0,lte=32"`
}

// GenerateBuildsResponse is the generate endpoint response
type GenerateBuildsResponse struct {
	Count       int                   `json:"count"`
	Builds      []domain.ScoredBuild  `json:"builds"`
	Checked     int64                 `json:"checked"`
	Valid       int64                 `json:"valid"`
	Rejections  engine.RejectionTally `json:"rejections"`
	Truncated   bool                  `json:"truncated"`
	Diagnostics []string              `json:"diagnostics,omitempty"`
	Warnings    []string              `json:"warnings,omitempty"`
	ElapsedMS   int64                 `json:"elapsed_ms"`
}

// HandleGenerate runs a build generation request against the catalog
// @Summary Generate builds
// @Description Enumerates equipment combinations for a class and returns the top scored builds
// @Tags builds
// @Accept json
// @Produce json
// @Param request body GenerateBuildsRequest true "Generation parameters"
// @Success 200 {object} GenerateBuildsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown profile"
// @Failure 503 {object} ErrorResponse "Catalog not loaded"
// @Router /builds/generate [post]
func (h *BuildHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req GenerateBuildsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate builds"); err != nil {
		return
	}

	items := h.catalog.Items()
	if len(items) == 0 {
		respondError(w, http.StatusServiceUnavailable, ErrMsgCatalogUnavailable)
		return
	}

	engineReq := engine.Request{
		Class:          domain.Class(strings.ToLower(req.Class)),
		Playstyle:      domain.Playstyle(strings.ToLower(req.Playstyle)),
		ElementBoost:   req.ElementBoost,
		LevelMin:       req.LevelMin,
		LevelMax:       req.LevelMax,
		NoMythics:      req.NoMythics,
		MaxSkillPoints: req.MaxSkillPoints,
		MinDPS:         req.MinDPS,
		MinManaSustain: req.MinManaSustain,
		MaxCost:        req.MaxCost,
		TopN:           req.TopN,
		CharacterLevel: req.CharacterLevel,
		CustomScorer:   req.CustomScorer,
		Workers:        req.Workers,
	}
	for _, e := range req.Elements {
		engineReq.Elements = append(engineReq.Elements, domain.Element(strings.ToLower(e)))
	}
	if req.TopN == 0 {
		engineReq.TopN = h.defaultTopN
	}

	if req.Profile != "" {
		p, ok := h.profiles.Get(req.Profile)
		if !ok {
			respondError(w, http.StatusNotFound, fmt.Sprintf("%s: %s", domain.ErrMsgProfileNotFound, req.Profile))
			return
		}
		weights := p.Weights
		engineReq.Weights = &weights
	}

	result, err := h.engine.GenerateBuilds(r.Context(), items, engineReq)
	if err != nil {
		log.Error(LogMsgGenerateFailed, "error", err, "class", req.Class)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, GenerateBuildsResponse{
		Count:       len(result.Builds),
		Builds:      result.Builds,
		Checked:     result.Checked,
		Valid:       result.Valid,
		Rejections:  result.Rejections,
		Truncated:   result.Truncated,
		Diagnostics: result.Diagnostics,
		Warnings:    result.Warnings,
		ElapsedMS:   result.Elapsed.Milliseconds(),
	})
}

// ExportBuildRequest names the items of one explicit build. Items maps slot
// labels (weapon, helmet, chestplate, leggings, boots, ring1, ring2,
// bracelet, necklace) to item names.
type ExportBuildRequest struct {
	Class          string            `json:"class" validate:"required,class"`
	Items          map[string]string `json:"items" validate:"required,min=1"`
	BuildName      string            `json:"build_name,omitempty" validate:"max=100"`
	CharacterLevel int               `json:"character_level,omitempty" validate:"gte=0,lte=106"`
}

// ShareURLResponse is the url-format export response
type ShareURLResponse struct {
	ShareURL  string `json:"share_url"`
	BuildHash string `json:"build_hash"`
}

// HandleExport renders an explicit build in the requested format
// @Summary Export a build
// @Description Scores an explicit equipment selection and renders it as JSON, share URL, text or XLSX
// @Tags builds
// @Accept json
// @Produce json
// @Param format query string false "Export format" Enums(json, url, text, xlsx) default(json)
// @Param request body ExportBuildRequest true "Build to export"
// @Success 200 {object} export.BuildDocument
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 503 {object} ErrorResponse "Catalog not loaded"
// @Router /builds/export [post]
func (h *BuildHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "json"
	}
	switch format {
	case "json", "url", "text", "xlsx":
	default:
		respondError(w, http.StatusBadRequest, ErrMsgUnknownExportFormat)
		return
	}

	var req ExportBuildRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Export build"); err != nil {
		return
	}

	sb, err := h.scoreSelection(r, domain.Class(strings.ToLower(req.Class)), req.Items, req.CharacterLevel)
	if err != nil {
		log.Error(LogMsgExportFailed, "error", err, "class", req.Class)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	switch format {
	case "json":
		doc, err := h.exporter.Document(sb, req.BuildName)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, doc)
	case "url":
		url, err := h.exporter.ShareURL(&sb.Build)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, ShareURLResponse{
			ShareURL:  url,
			BuildHash: h.exporter.BuildHash(&sb.Build),
		})
	case "text":
		text, err := h.exporter.TextSummary(sb)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		w.Header().Set("Content-Type", ContentTypeText)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(text)); err != nil {
			log.Error("Failed to write text summary", "error", err)
		}
	case "xlsx":
		data, err := h.exporter.Workbook(sb.Build.Class, []domain.ScoredBuild{*sb})
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		w.Header().Set("Content-Type", ContentTypeXLSX)
		w.Header().Set(HeaderContentDispo, fmt.Sprintf(WorkbookFilenameFormat, sb.Build.Class))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			log.Error("Failed to write workbook", "error", err)
		}
	}
}

// CompareBuildsRequest names two explicit builds of the same class
type CompareBuildsRequest struct {
	Class          string            `json:"class" validate:"required,class"`
	First          map[string]string `json:"first" validate:"required,min=1"`
	Second         map[string]string `json:"second" validate:"required,min=1"`
	CharacterLevel int               `json:"character_level,omitempty" validate:"gte=0,lte=106"`
}

// HandleCompare diffs two explicit builds slot by slot and metric by metric
// @Summary Compare two builds
// @Description Scores two explicit equipment selections and reports slot differences and metric deltas
// @Tags builds
// @Accept json
// @Produce json
// @Param request body CompareBuildsRequest true "Builds to compare"
// @Success 200 {object} export.Comparison
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 503 {object} ErrorResponse "Catalog not loaded"
// @Router /builds/compare [post]
func (h *BuildHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CompareBuildsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Compare builds"); err != nil {
		return
	}

	class := domain.Class(strings.ToLower(req.Class))
	first, err := h.scoreSelection(r, class, req.First, req.CharacterLevel)
	if err != nil {
		log.Error(LogMsgCompareFailed, "error", err, "side", "first")
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}
	second, err := h.scoreSelection(r, class, req.Second, req.CharacterLevel)
	if err != nil {
		log.Error(LogMsgCompareFailed, "error", err, "side", "second")
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, h.exporter.Compare(first, second))
}

// scoreSelection resolves item names against the catalog, assembles the
// build and scores it with the default weights
func (h *BuildHandler) scoreSelection(r *http.Request, class domain.Class, items map[string]string, characterLevel int) (*domain.ScoredBuild, error) {
	if h.catalog.Len() == 0 {
		return nil, domain.ErrCatalogNotLoaded
	}

	build, err := h.buildFromSelection(class, items)
	if err != nil {
		return nil, err
	}

	if characterLevel <= 0 {
		characterLevel = engine.DefaultLevelMax
	}
	return h.engine.ScoreBuild(r.Context(), build, characterLevel, 0)
}

// buildFromSelection places named catalog items into their slots. Slot
// labels follow the export document keys, with ring1 and ring2 for the two
// ring positions.
func (h *BuildHandler) buildFromSelection(class domain.Class, items map[string]string) (*domain.Build, error) {
	build := &domain.Build{Class: class}

	for label, name := range items {
		item, err := h.catalog.Get(name)
		if err != nil {
			return nil, err
		}

		slot := strings.ToLower(strings.TrimSpace(label))
		var want domain.Slot
		var target **domain.Item
		switch slot {
		case string(domain.SlotWeapon):
			want, target = domain.SlotWeapon, &build.Weapon
		case string(domain.SlotHelmet):
			want, target = domain.SlotHelmet, &build.Helmet
		case string(domain.SlotChestplate):
			want, target = domain.SlotChestplate, &build.Chestplate
		case string(domain.SlotLeggings):
			want, target = domain.SlotLeggings, &build.Leggings
		case string(domain.SlotBoots):
			want, target = domain.SlotBoots, &build.Boots
		case domain.SlotLabelRing1:
			want, target = domain.SlotRing, &build.Rings[0]
		case domain.SlotLabelRing2:
			want, target = domain.SlotRing, &build.Rings[1]
		case string(domain.SlotBracelet):
			want, target = domain.SlotBracelet, &build.Bracelet
		case string(domain.SlotNecklace):
			want, target = domain.SlotNecklace, &build.Necklace
		default:
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSlot, label)
		}

		if item.Slot != want {
			return nil, fmt.Errorf("%w: %q is a %s, not a %s", domain.ErrInvalidInput, item.Name, item.Slot, want)
		}
		*target = item
	}

	return build, nil
}
