package export

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/metrics"
)

// Service renders scored builds into shareable formats
type Service interface {
	// Document produces the canonical JSON export structure.
	Document(sb *domain.ScoredBuild, name string) (*BuildDocument, error)

	// ShareURL encodes the equipment into a wynnbuilder import URL.
	ShareURL(b *domain.Build) (string, error)

	// TextSummary renders a fixed-width plain text card.
	TextSummary(sb *domain.ScoredBuild) (string, error)

	// BuildHash returns a short stable identifier for an equipment set.
	BuildHash(b *domain.Build) string

	// Compare diffs two builds slot by slot and metric by metric.
	Compare(first, second *domain.ScoredBuild) *Comparison

	// Workbook renders a ranked result list as an XLSX workbook.
	Workbook(class domain.Class, builds []domain.ScoredBuild) ([]byte, error)
}

// BuildDocument is the JSON export shape
type BuildDocument struct {
	FormatVersion string             `json:"format_version"`
	ExportedAt    time.Time          `json:"exported_at"`
	BuildName     string             `json:"build_name"`
	Class         domain.Class       `json:"class"`
	Items         map[string]string  `json:"items"`
	Stats         DocumentStats      `json:"stats"`
	SkillPoints   domain.SkillVector `json:"skill_points"`
	BuildHash     string             `json:"build_hash"`
	ShareURL      string             `json:"share_url"`
}

// DocumentStats are the headline numbers carried in a JSON export,
// rounded to two decimals
type DocumentStats struct {
	DPS         float64 `json:"dps"`
	ManaSustain float64 `json:"mana_sustain"`
	EffectiveHP float64 `json:"effective_hp"`
	TotalHP     int     `json:"total_hp"`
	Cost        float64 `json:"cost"`
	Score       float64 `json:"score"`
}

// shareDocument is the compact payload wynnbuilder decodes from the URL
// fragment
type shareDocument struct {
	Version int               `json:"version"`
	Class   int               `json:"class"`
	Items   map[string]string `json:"items"`
}

type service struct {
	titler cases.Caser
}

// NewService creates a build exporter
func NewService() Service {
	return &service{titler: cases.Title(language.English)}
}

func (s *service) Document(sb *domain.ScoredBuild, name string) (*BuildDocument, error) {
	if sb == nil || !sb.Build.Complete() {
		return nil, domain.ErrBuildIncomplete
	}

	if name == "" {
		name = fmt.Sprintf("%s Build", s.titler.String(string(sb.Build.Class)))
	}

	items := make(map[string]string)
	for _, eq := range sb.Build.Equipment() {
		items[eq.Slot] = eq.Item.Name
	}

	shareURL, err := s.ShareURL(&sb.Build)
	if err != nil {
		return nil, err
	}

	metrics.BuildsExported.WithLabelValues("json").Inc()
	return &BuildDocument{
		FormatVersion: FormatVersion,
		ExportedAt:    time.Now().UTC(),
		BuildName:     name,
		Class:         sb.Build.Class,
		Items:         items,
		Stats: DocumentStats{
			DPS:         round2(sb.Derived.DPS),
			ManaSustain: round2(sb.Derived.ManaSustain),
			EffectiveHP: round2(sb.Derived.EffectiveHP.Combined),
			TotalHP:     sb.Derived.EffectiveHP.TotalHP,
			Cost:        round2(sb.Derived.Cost),
			Score:       round2(sb.Score),
		},
		SkillPoints: sb.Stats.Requirements,
		BuildHash:   s.BuildHash(&sb.Build),
		ShareURL:    shareURL,
	}, nil
}

func (s *service) ShareURL(b *domain.Build) (string, error) {
	if b == nil || !b.Complete() {
		return "", domain.ErrBuildIncomplete
	}

	doc := shareDocument{
		Version: ShareEncodingVersion,
		Class:   b.Class.Number(),
		Items:   make(map[string]string),
	}
	for _, eq := range b.Equipment() {
		doc.Items[eq.Slot] = eq.Item.Name
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode share payload: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(payload)
	return fmt.Sprintf("%s%d_%s", ShareURLBase, ShareEncodingVersion, encoded), nil
}

func (s *service) TextSummary(sb *domain.ScoredBuild) (string, error) {
	if sb == nil || !sb.Build.Complete() {
		return "", domain.ErrBuildIncomplete
	}

	rule := strings.Repeat("=", summaryRuleWidth)
	section := strings.Repeat("-", sectionRuleWidth)

	var sb2 strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb2, format+"\n", args...)
	}

	line("%s", rule)
	line("WYNNCRAFT BUILD SUMMARY")
	line("%s", rule)
	line("Class: %s", s.titler.String(string(sb.Build.Class)))
	line("")
	line("EQUIPMENT:")
	line("%s", section)
	for _, eq := range sb.Build.Equipment() {
		line("  %-12s %s (Lv.%d %s)", s.slotDisplay(eq.Slot), eq.Item.Name, eq.Item.Level, eq.Item.Tier)
	}
	line("")
	line("STATISTICS:")
	line("%s", section)
	line("  Health:       %d HP", sb.Derived.EffectiveHP.TotalHP)
	line("  Effective HP: %.0f", sb.Derived.EffectiveHP.Combined)
	line("  Spell DPS:    %.1f", sb.Derived.DPS)
	line("  Mana Sustain: %.1f/s", sb.Derived.ManaSustain)
	line("  Build Cost:   %.0f EB", sb.Derived.Cost)

	req := sb.Stats.Requirements
	line("  Skill Points: %d used, %d free", req.Total(), sb.Derived.UnusedSkillPoints)
	line("    STR %d  DEX %d  INT %d  DEF %d  AGI %d",
		req.Strength, req.Dexterity, req.Intelligence, req.Defense, req.Agility)
	line("  Score:        %.1f", sb.Score)
	line("")
	line("SHARE:")
	line("%s", section)
	line("  Hash: %s", s.BuildHash(&sb.Build))
	if url, err := s.ShareURL(&sb.Build); err == nil {
		line("  URL:  %s", url)
	}
	line("%s", rule)

	metrics.BuildsExported.WithLabelValues("text").Inc()
	return sb2.String(), nil
}

// BuildHash hashes the class and the equipped (slot, name, level) triples.
// Two builds with the same class and equipment always hash alike, and the
// digest is truncated for readability.
func (s *service) BuildHash(b *domain.Build) string {
	if b == nil {
		return ""
	}

	lines := []string{fmt.Sprintf("class:%s", b.Class)}
	for _, eq := range b.Equipment() {
		lines = append(lines, fmt.Sprintf("%s:%s:%d", eq.Slot, eq.Item.Name, eq.Item.Level))
	}
	sort.Strings(lines)

	digest := md5.Sum([]byte(strings.Join(lines, "\n")))
	return fmt.Sprintf("%x", digest)[:BuildHashLength]
}

// slotDisplay renders a slot label for the text summary
func (s *service) slotDisplay(slot string) string {
	switch slot {
	case domain.SlotLabelRing1:
		return "Ring 1"
	case domain.SlotLabelRing2:
		return "Ring 2"
	default:
		return s.titler.String(slot)
	}
}

// round2 rounds to two decimal places for export documents
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
