package stats

import (
	"math"

	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/utils"
)

// Calculator derives combat statistics for builds of one class. The class
// configuration is fixed at construction and never mutated, so a single
// calculator is safe to share across goroutines.
type Calculator struct {
	class domain.ClassConfig
}

// NewCalculator builds a calculator for the given class
func NewCalculator(class domain.Class) (*Calculator, error) {
	cfg, err := domain.ClassConfigFor(class)
	if err != nil {
		return nil, err
	}
	return &Calculator{class: cfg}, nil
}

// Class returns the configuration the calculator was built with
func (c *Calculator) Class() domain.ClassConfig {
	return c.class
}

// DPS computes spell damage per second for the build. The weapon's average
// damage is scaled by the class spell multiplier and conversion factor,
// boosted by percentage identifications, raised by raw spell damage, and
// finally multiplied by the attack-speed multiplier. A build without a
// weapon deals zero.
func (c *Calculator) DPS(b *domain.Build, agg domain.AggregatedStats) float64 {
	if b == nil || b.Weapon == nil {
		return 0
	}

	base := b.Weapon.AverageDamage() * c.class.BaseSpellMultiplier * c.class.ConversionFactor()
	boost := 1 + float64(agg.SpellDamagePct)/100 + float64(agg.DamagePct.Total())/100
	dps := base*boost + float64(agg.SpellDamageRaw)

	mult := b.Weapon.AttackSpeed.Multiplier() * (1 + float64(agg.AttackSpeedBonus)*AttackSpeedBonusStep)
	return utils.ClampMin(dps*mult, 0)
}

// EffectiveHP computes the survivability variants at the given character
// level. Defense reduction and dodge chance are capped, and every divisor
// is clamped away from zero.
func (c *Calculator) EffectiveHP(agg domain.AggregatedStats, level int) domain.EffectiveHP {
	totalHP := c.class.BaseHealth(level) + agg.Health
	defRed := utils.ClampMax(float64(agg.SkillBonuses.Defense)*DefensePointReduction, MaxDamageReduction)
	dodge := utils.ClampMax(float64(agg.SkillBonuses.Agility)*AgilityPointDodge, MaxDodgeChance)

	hp := float64(totalHP)
	return domain.EffectiveHP{
		TotalHP:          totalHP,
		Defense:          hp / utils.ClampMin((1-defRed)*c.class.DefenseMultiplier, MinEHPDivisor),
		Agility:          hp / utils.ClampMin(1-dodge, MinEHPDivisor),
		Combined:         hp / utils.ClampMin((1-defRed)*(1-dodge)*c.class.DefenseMultiplier, MinEHPDivisor),
		DefenseReduction: defRed,
		DodgeChance:      dodge,
	}
}

// ManaSustain estimates mana regenerated per second from regen plus steal.
// Steal is converted using an assumed hit rate, which approximates real
// combat rather than reproducing it.
func (c *Calculator) ManaSustain(agg domain.AggregatedStats) float64 {
	return float64(agg.ManaRegen) + float64(agg.ManaSteal)*EstimatedHitRate*ManaStealProcFactor
}

// SpellCosts computes the final mana cost of each class spell under the
// build's intelligence and cost modifiers
func (c *Calculator) SpellCosts(agg domain.AggregatedStats) []domain.SpellCost {
	costs := make([]domain.SpellCost, 0, len(c.class.Spells))
	for _, spell := range c.class.Spells {
		costs = append(costs, domain.SpellCost{
			Spell: spell.Name,
			Cost:  SpellCost(spell.BaseCost, agg.SkillBonuses.Intelligence, agg.SpellCostRaw, agg.SpellCostPct),
		})
	}
	return costs
}

// SpellCost applies intelligence reduction and cost modifiers to one base
// cost. Every two intelligence points remove one mana, but the reduction
// can never push the cost below the floor on its own; raw and percentage
// modifiers apply afterwards with the same floor.
func SpellCost(baseCost, intelligence, rawModifier, pctModifier int) int {
	reduction := intelligence / IntPointsPerReduction
	if reduction > baseCost-MinSpellCost {
		reduction = baseCost - MinSpellCost
	}
	if reduction < 0 {
		reduction = 0
	}

	modified := float64(baseCost-reduction+rawModifier) * (1 - float64(pctModifier)/100)
	cost := int(math.Floor(modified))
	if cost < MinSpellCost {
		cost = MinSpellCost
	}
	return cost
}

// BuildCost estimates the emerald cost of acquiring every item in the
// build, weighting each item's tier cost by its level
func BuildCost(b *domain.Build) float64 {
	if b == nil {
		return 0
	}
	total := 0.0
	for _, it := range b.Items() {
		mult := float64(it.Level) / CostLevelDivisor
		if mult < 1 {
			mult = 1
		}
		total += it.Tier.BaseCost() * mult
	}
	return total
}

// Derive computes the full derived stat block for a build. A non-positive
// level falls back to the default character level.
func (c *Calculator) Derive(b *domain.Build, agg domain.AggregatedStats, level, maxSkillPoints int) domain.DerivedStats {
	if level <= 0 {
		level = DefaultCharacterLevel
	}
	return domain.DerivedStats{
		DPS:               c.DPS(b, agg),
		EffectiveHP:       c.EffectiveHP(agg, level),
		ManaSustain:       c.ManaSustain(agg),
		SpellCosts:        c.SpellCosts(agg),
		Cost:              BuildCost(b),
		UnusedSkillPoints: max(0, maxSkillPoints-agg.Requirements.Total()),
	}
}
