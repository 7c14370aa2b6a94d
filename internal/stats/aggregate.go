package stats

import "github.com/wynnforge/wynnforge/internal/domain"

// Aggregate sums the identification contributions of every item in the
// build into one stat block. Items missing an identification contribute
// zero for it; a nil or empty build aggregates to all zeroes.
func Aggregate(b *domain.Build) domain.AggregatedStats {
	var agg domain.AggregatedStats
	if b == nil {
		return agg
	}

	for _, it := range b.Items() {
		agg.Health += it.Health + it.ID(domain.StatHealthBonus)
		agg.HealthRegenRaw += it.ID(domain.StatHealthRegenRaw)
		agg.HealthRegenPct += it.ID(domain.StatHealthRegenPct)
		agg.ManaRegen += it.ID(domain.StatManaRegen)
		agg.ManaSteal += it.ID(domain.StatManaSteal)
		agg.SpellDamageRaw += it.ID(domain.StatSpellDamageRaw)
		agg.SpellDamagePct += it.ID(domain.StatSpellDamagePct)
		agg.MeleeDamageRaw += it.ID(domain.StatMeleeDamageRaw)
		agg.MeleeDamagePct += it.ID(domain.StatMeleeDamagePct)
		agg.LifeSteal += it.ID(domain.StatLifeSteal)
		agg.Poison += it.ID(domain.StatPoison)
		agg.Thorns += it.ID(domain.StatThorns)
		agg.Reflection += it.ID(domain.StatReflection)
		agg.WalkSpeed += it.ID(domain.StatWalkSpeed)
		agg.AttackSpeedBonus += it.ID(domain.StatAttackSpeedBonus)
		agg.SpellCostRaw += it.ID(domain.StatSpellCostRaw)
		agg.SpellCostPct += it.ID(domain.StatSpellCostPct)

		agg.DamagePct.Earth += it.ID(domain.StatEarthDamagePct)
		agg.DamagePct.Thunder += it.ID(domain.StatThunderDamagePct)
		agg.DamagePct.Water += it.ID(domain.StatWaterDamagePct)
		agg.DamagePct.Fire += it.ID(domain.StatFireDamagePct)
		agg.DamagePct.Air += it.ID(domain.StatAirDamagePct)

		agg.DefensePct.Earth += it.ID(domain.StatEarthDefensePct)
		agg.DefensePct.Thunder += it.ID(domain.StatThunderDefensePct)
		agg.DefensePct.Water += it.ID(domain.StatWaterDefensePct)
		agg.DefensePct.Fire += it.ID(domain.StatFireDefensePct)
		agg.DefensePct.Air += it.ID(domain.StatAirDefensePct)

		agg.SkillBonuses.Strength += it.ID(domain.StatStrength)
		agg.SkillBonuses.Dexterity += it.ID(domain.StatDexterity)
		agg.SkillBonuses.Intelligence += it.ID(domain.StatIntelligence)
		agg.SkillBonuses.Defense += it.ID(domain.StatDefense)
		agg.SkillBonuses.Agility += it.ID(domain.StatAgility)

		agg.Requirements = agg.Requirements.Add(it.Requirements)
	}

	return agg
}
