package engine

import (
	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/utils"
)

// Constraints are the acceptance thresholds applied to each candidate build
type Constraints struct {
	// MaxSkillPoints caps every single skill requirement and the summed
	// requirement total.
	MaxSkillPoints int

	// MinDPS and MinManaSustain reject builds below the threshold when
	// positive.
	MinDPS         float64
	MinManaSustain float64

	// MaxCost rejects builds above the limit when non-nil.
	MaxCost *float64
}

// CheckStructure runs the cheap requirement checks that need no derived
// stats. A build passes when no single skill requirement and no summed
// requirement total exceeds the cap.
func CheckStructure(agg domain.AggregatedStats, maxSkillPoints int) bool {
	if agg.Requirements.MaxComponent() > maxSkillPoints {
		return false
	}
	return agg.Requirements.Total() <= maxSkillPoints
}

// RejectReason classifies why a candidate build failed validation
type RejectReason string

const (
	RejectNone        RejectReason = ""
	RejectSkillPoints RejectReason = "skill_points"
	RejectLowDPS      RejectReason = "low_dps"
	RejectLowMana     RejectReason = "low_mana"
	RejectHighCost    RejectReason = "high_cost"
)

// ClassifyThresholds returns the first stat threshold a build misses, or
// RejectNone. Comparisons carry the float tolerance so borderline builds
// are not rejected on rounding noise.
func ClassifyThresholds(derived domain.DerivedStats, c Constraints) RejectReason {
	if c.MinDPS > 0 && !utils.MeetsMinimum(derived.DPS, c.MinDPS) {
		return RejectLowDPS
	}
	if c.MinManaSustain > 0 && !utils.MeetsMinimum(derived.ManaSustain, c.MinManaSustain) {
		return RejectLowMana
	}
	if c.MaxCost != nil && !utils.WithinMaximum(derived.Cost, *c.MaxCost) {
		return RejectHighCost
	}
	return RejectNone
}

// CheckThresholds reports whether a build passes every stat threshold
func CheckThresholds(derived domain.DerivedStats, c Constraints) bool {
	return ClassifyThresholds(derived, c) == RejectNone
}
