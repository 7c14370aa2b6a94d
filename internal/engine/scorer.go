package engine

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/wynnforge/wynnforge/internal/domain"
)

// Score computes the composite weight formula for one build
func Score(derived domain.DerivedStats, w domain.ScoreWeights) float64 {
	return derived.DPS*w.DPS +
		derived.EffectiveHP.Combined*w.EHP +
		derived.ManaSustain*w.ManaSustain +
		float64(derived.UnusedSkillPoints)*w.SkillPoints
}

// CustomScorer evaluates a caller-supplied expression against each build's
// derived stats. Expressions see the variables dps, ehp, ehp_defense,
// ehp_agility, total_hp, mana_sustain, cost and unused_skill_points, and
// must yield a number.
type CustomScorer struct {
	program *vm.Program
}

// CompileScorer compiles the expression once for reuse across every build
// of a request
func CompileScorer(source string) (*CustomScorer, error) {
	program, err := expr.Compile(source, expr.Env(scorerEnv(domain.DerivedStats{})), expr.AsFloat64())
	if err != nil {
		return nil, err
	}
	return &CustomScorer{program: program}, nil
}

// Score evaluates the expression for one build
func (s *CustomScorer) Score(derived domain.DerivedStats) (float64, error) {
	out, err := expr.Run(s.program, scorerEnv(derived))
	if err != nil {
		return 0, err
	}
	score, ok := out.(float64)
	if !ok {
		return 0, domain.ErrInvalidScoringExpr
	}
	return score, nil
}

func scorerEnv(d domain.DerivedStats) map[string]interface{} {
	return map[string]interface{}{
		"dps":                 d.DPS,
		"ehp":                 d.EffectiveHP.Combined,
		"ehp_defense":         d.EffectiveHP.Defense,
		"ehp_agility":         d.EffectiveHP.Agility,
		"total_hp":            float64(d.EffectiveHP.TotalHP),
		"mana_sustain":        d.ManaSustain,
		"cost":                d.Cost,
		"unused_skill_points": float64(d.UnusedSkillPoints),
	}
}
