package engine

import (
	"time"

	"github.com/wynnforge/wynnforge/internal/domain"
)

// Request describes one build generation run. Zero values fall back to the
// engine defaults during Normalize.
type Request struct {
	// Class selects the weapon type and the class scaling tables. Required.
	Class domain.Class `json:"class"`

	// Playstyle biases candidate ordering and selects the scoring weights.
	// Empty means no playstyle bias and default weights.
	Playstyle domain.Playstyle `json:"playstyle,omitempty"`

	// Elements to favor during candidate selection. Empty disables the
	// element stage entirely.
	Elements []domain.Element `json:"elements,omitempty"`

	// ElementBoost switches the element stage to strict mode: items with no
	// matching elemental stat are dropped instead of kept at neutral score.
	ElementBoost bool `json:"element_boost,omitempty"`

	// LevelMin and LevelMax bound item levels, inclusive on both ends.
	LevelMin int `json:"level_min,omitempty"`
	LevelMax int `json:"level_max,omitempty"`

	// NoMythics excludes Mythic tier items from every slot.
	NoMythics bool `json:"no_mythics,omitempty"`

	// MaxSkillPoints caps each skill requirement and the requirement total.
	MaxSkillPoints int `json:"max_skill_points,omitempty"`

	// MinDPS and MinManaSustain reject builds below the thresholds.
	// Zero disables the corresponding check.
	MinDPS         float64 `json:"min_dps,omitempty"`
	MinManaSustain float64 `json:"min_mana_sustain,omitempty"`

	// MaxCost rejects builds whose estimated cost exceeds it. Nil disables
	// the check; an explicit zero enforces a free build.
	MaxCost *float64 `json:"max_cost,omitempty"`

	// TopN is the number of builds to return. Zero is honored as an empty
	// result, negative is rejected.
	TopN int `json:"top_n"`

	// CharacterLevel feeds base health and derived stat scaling.
	CharacterLevel int `json:"character_level,omitempty"`

	// CustomScorer is an optional scoring expression evaluated per build.
	// Compile or evaluation failures fall back to the weight formula.
	CustomScorer string `json:"custom_scorer,omitempty"`

	// Weights overrides the playstyle scoring weights when non-nil.
	Weights *domain.ScoreWeights `json:"weights,omitempty"`

	// Workers shards the weapon loop across goroutines when above one.
	Workers int `json:"workers,omitempty"`
}

// Normalize fills unset fields with the given defaults. It does not
// validate; call Validate afterwards.
func (r *Request) Normalize(opts Options) {
	if r.LevelMin <= 0 {
		r.LevelMin = DefaultLevelMin
	}
	if r.LevelMax <= 0 {
		r.LevelMax = DefaultLevelMax
	}
	if r.MaxSkillPoints <= 0 {
		r.MaxSkillPoints = opts.MaxSkillPoints
	}
	if r.CharacterLevel <= 0 {
		r.CharacterLevel = r.LevelMax
	}
	if r.Workers <= 0 {
		r.Workers = opts.Workers
	}
}

// Validate reports the first problem with the request, or nil.
func (r *Request) Validate() error {
	if r.Class == "" {
		return domain.ErrInvalidInput
	}
	if !r.Class.Valid() {
		return domain.ErrUnknownClass
	}
	if r.Playstyle != "" && !r.Playstyle.Valid() {
		return domain.ErrUnknownPlaystyle
	}
	for _, e := range r.Elements {
		if !e.Valid() {
			return domain.ErrUnknownElement
		}
	}
	if r.LevelMin > r.LevelMax {
		return domain.ErrInvalidLevel
	}
	if r.TopN < 0 {
		return domain.ErrInvalidTopN
	}
	return nil
}

// ScoreWeights resolves the weight set for this request: explicit override
// first, then the playstyle preset, then the defaults.
func (r *Request) ScoreWeights() domain.ScoreWeights {
	if r.Weights != nil {
		return *r.Weights
	}
	if r.Playstyle != "" {
		return r.Playstyle.Weights()
	}
	return domain.DefaultScoreWeights()
}

// RejectionTally counts candidates dropped per validation check
type RejectionTally struct {
	SkillPoints int64 `json:"skill_points"`
	LowDPS      int64 `json:"low_dps"`
	LowMana     int64 `json:"low_mana"`
	HighCost    int64 `json:"high_cost"`
}

// Total returns the number of rejected candidates across all checks
func (t RejectionTally) Total() int64 {
	return t.SkillPoints + t.LowDPS + t.LowMana + t.HighCost
}

// Result is the outcome of one generation run.
type Result struct {
	// Builds holds up to TopN scored builds, best first.
	Builds []domain.ScoredBuild `json:"builds"`

	// Candidates reports the per-slot list sizes after filtering.
	Candidates map[domain.Slot]int `json:"candidates,omitempty"`

	// Checked counts raw combinations inspected before stopping.
	Checked int64 `json:"checked"`

	// Valid counts builds that passed validation before top-N selection.
	Valid int64 `json:"valid"`

	// Rejections tallies validation failures by reason.
	Rejections RejectionTally `json:"rejections"`

	// Truncated is set when the combination cap stopped enumeration before
	// the search space was exhausted.
	Truncated bool `json:"truncated"`

	// Diagnostics explains an empty result, such as a mandatory slot with
	// no surviving candidates.
	Diagnostics []string `json:"diagnostics,omitempty"`

	// Warnings records non-fatal degradations, such as a custom scorer
	// falling back to default weights.
	Warnings []string `json:"warnings,omitempty"`

	// Elapsed is the wall time the run took.
	Elapsed time.Duration `json:"elapsed_ms"`
}
