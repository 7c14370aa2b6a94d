package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wynnforge/wynnforge/internal/domain"
)

func newTestCalculator(t *testing.T, class domain.Class) *Calculator {
	t.Helper()
	calc, err := NewCalculator(class)
	require.NoError(t, err)
	return calc
}

func TestNewCalculator_UnknownClass(t *testing.T) {
	_, err := NewCalculator("necromancer")
	assert.ErrorIs(t, err, domain.ErrUnknownClass)
}

func TestCalculator_DPS(t *testing.T) {
	calc := newTestCalculator(t, domain.ClassMage)

	b := &domain.Build{
		Class: domain.ClassMage,
		Weapon: &domain.Item{
			Name:        "Test Wand",
			Slot:        domain.SlotWeapon,
			WeaponType:  domain.WeaponWand,
			AttackSpeed: domain.AttackSpeedNormal,
			Damage:      &domain.DamageProfile{Neutral: domain.DamageRange{50, 90}},
		},
	}
	agg := domain.AggregatedStats{
		SpellDamagePct: 20,
		SpellDamageRaw: 15,
		DamagePct:      domain.ElementVector{Water: 10},
	}

	// avg 70 * spellMult 1.0 * conversion 0.44 = 30.8
	// 30.8 * (1 + 0.2 + 0.1) + 15 = 55.04
	// 55.04 * 2.05 = 112.832
	dps := calc.DPS(b, agg)
	assert.InDelta(t, 112.832, dps, 1e-9)
}

func TestCalculator_DPS_AttackSpeedBonus(t *testing.T) {
	calc := newTestCalculator(t, domain.ClassMage)

	b := &domain.Build{
		Class: domain.ClassMage,
		Weapon: &domain.Item{
			Name:        "Test Wand",
			Slot:        domain.SlotWeapon,
			AttackSpeed: domain.AttackSpeedNormal,
			Damage:      &domain.DamageProfile{Neutral: domain.DamageRange{100, 100}},
		},
	}

	base := calc.DPS(b, domain.AggregatedStats{})
	boosted := calc.DPS(b, domain.AggregatedStats{AttackSpeedBonus: 1})

	// One bonus tier raises the multiplier by 15%
	assert.InDelta(t, base*1.15, boosted, 1e-9)
}

func TestCalculator_DPS_NoWeapon(t *testing.T) {
	calc := newTestCalculator(t, domain.ClassArcher)

	b := &domain.Build{Class: domain.ClassArcher}
	assert.Equal(t, 0.0, calc.DPS(b, domain.AggregatedStats{}))
	assert.Equal(t, 0.0, calc.DPS(nil, domain.AggregatedStats{}))
}

func TestCalculator_DPS_NeverNegative(t *testing.T) {
	calc := newTestCalculator(t, domain.ClassAssassin)

	b := &domain.Build{
		Class: domain.ClassAssassin,
		Weapon: &domain.Item{
			Name:        "Cursed Dagger",
			Slot:        domain.SlotWeapon,
			AttackSpeed: domain.AttackSpeedFast,
			Damage:      &domain.DamageProfile{Neutral: domain.DamageRange{1, 3}},
		},
	}
	agg := domain.AggregatedStats{SpellDamagePct: -500, SpellDamageRaw: -100}

	assert.GreaterOrEqual(t, calc.DPS(b, agg), 0.0)
}

func TestCalculator_EffectiveHP_CappedReduction(t *testing.T) {
	// Assassin has a 1.0 defense multiplier
	calc := newTestCalculator(t, domain.ClassAssassin)

	// Level 100 base health is 500, items bring the total to 1000
	agg := domain.AggregatedStats{
		Health:       500,
		SkillBonuses: domain.SkillVector{Defense: 300},
	}

	ehp := calc.EffectiveHP(agg, 100)

	assert.Equal(t, 1000, ehp.TotalHP)
	assert.InDelta(t, 0.8, ehp.DefenseReduction, 1e-9, "Reduction caps at 80%")
	assert.InDelta(t, 0.0, ehp.DodgeChance, 1e-9)
	assert.InDelta(t, 5000.0, ehp.Combined, 1e-6)
	assert.InDelta(t, 5000.0, ehp.Defense, 1e-6)
	assert.InDelta(t, 1000.0, ehp.Agility, 1e-6, "Agility variant ignores defense")
}

func TestCalculator_EffectiveHP_DodgeCap(t *testing.T) {
	calc := newTestCalculator(t, domain.ClassAssassin)

	agg := domain.AggregatedStats{
		Health:       470,
		SkillBonuses: domain.SkillVector{Agility: 1000},
	}

	ehp := calc.EffectiveHP(agg, 106)

	assert.InDelta(t, 0.75, ehp.DodgeChance, 1e-9, "Dodge caps at 75%")
	assert.Equal(t, 1000, ehp.TotalHP)
	assert.InDelta(t, 4000.0, ehp.Agility, 1e-6)
}

func TestCalculator_EffectiveHP_ClassMultiplier(t *testing.T) {
	// Warrior takes 1.2x on the divisor, archer 0.6x
	warrior := newTestCalculator(t, domain.ClassWarrior)
	archer := newTestCalculator(t, domain.ClassArcher)

	agg := domain.AggregatedStats{Health: 1000}

	warriorEHP := warrior.EffectiveHP(agg, 0)
	archerEHP := archer.EffectiveHP(agg, 0)

	assert.InDelta(t, 1000.0/1.2, warriorEHP.Combined, 1e-6)
	assert.InDelta(t, 1000.0/0.6, archerEHP.Combined, 1e-6)
}

func TestCalculator_ManaSustain(t *testing.T) {
	calc := newTestCalculator(t, domain.ClassMage)

	agg := domain.AggregatedStats{ManaRegen: 12, ManaSteal: 5}

	// 12 + 5 * 2.0 * 0.01 = 12.1
	assert.InDelta(t, 12.1, calc.ManaSustain(agg), 1e-9)
}

func TestSpellCost(t *testing.T) {
	tests := []struct {
		name         string
		baseCost     int
		intelligence int
		raw          int
		pct          int
		expected     int
	}{
		{
			name:         "intelligence reduction capped at base minus one",
			baseCost:     8,
			intelligence: 20,
			expected:     1,
		},
		{
			name:         "partial reduction",
			baseCost:     6,
			intelligence: 4,
			expected:     4,
		},
		{
			name:         "no intelligence leaves base cost",
			baseCost:     4,
			intelligence: 0,
			expected:     4,
		},
		{
			name:         "negative intelligence does not raise cost",
			baseCost:     4,
			intelligence: -10,
			expected:     4,
		},
		{
			name:         "raw modifier applies after reduction",
			baseCost:     6,
			intelligence: 4,
			raw:          2,
			expected:     6,
		},
		{
			name:         "percentage discount floors the result",
			baseCost:     6,
			intelligence: 0,
			pct:          25,
			expected:     4,
		},
		{
			name:         "cost never drops below one",
			baseCost:     4,
			intelligence: 100,
			raw:          -10,
			pct:          90,
			expected:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := SpellCost(tt.baseCost, tt.intelligence, tt.raw, tt.pct)
			assert.Equal(t, tt.expected, cost)
		})
	}
}

func TestCalculator_SpellCosts(t *testing.T) {
	calc := newTestCalculator(t, domain.ClassMage)

	costs := calc.SpellCosts(domain.AggregatedStats{SkillBonuses: domain.SkillVector{Intelligence: 20}})

	require.Len(t, costs, 4)
	assert.Equal(t, "Heal", costs[0].Spell)
	assert.Equal(t, 1, costs[0].Cost, "Heal base 6 fully reduced")
	assert.Equal(t, "Teleport", costs[1].Spell)
	assert.Equal(t, 1, costs[1].Cost, "Teleport base 8 fully reduced")
}

func TestBuildCost(t *testing.T) {
	b := &domain.Build{
		Class: domain.ClassMage,
		Weapon: &domain.Item{
			Name: "Warp", Slot: domain.SlotWeapon,
			Tier: domain.TierMythic, Level: 95,
		},
		Helmet: &domain.Item{
			Name: "Facile Helm", Slot: domain.SlotHelmet,
			Tier: domain.TierUnique, Level: 30,
		},
	}

	// Mythic: 500 * (95/50) = 950; Unique below level 50 keeps base: 1 * 1
	assert.InDelta(t, 951.0, BuildCost(b), 1e-9)
	assert.Equal(t, 0.0, BuildCost(nil))
}

func TestCalculator_Derive(t *testing.T) {
	calc := newTestCalculator(t, domain.ClassMage)

	b := &domain.Build{
		Class: domain.ClassMage,
		Weapon: &domain.Item{
			Name:        "Test Wand",
			Slot:        domain.SlotWeapon,
			Tier:        domain.TierRare,
			Level:       50,
			AttackSpeed: domain.AttackSpeedNormal,
			Damage:      &domain.DamageProfile{Neutral: domain.DamageRange{40, 60}},
			Requirements: domain.SkillVector{
				Intelligence: 30,
			},
		},
	}
	agg := Aggregate(b)

	derived := calc.Derive(b, agg, 106, 200)

	assert.Greater(t, derived.DPS, 0.0)
	assert.Equal(t, 170, derived.UnusedSkillPoints)
	assert.Len(t, derived.SpellCosts, 4)
	assert.InDelta(t, 5.0, derived.Cost, 1e-9)
	assert.Equal(t, 530, derived.EffectiveHP.TotalHP, "Level 106 mage base health")
}

func TestCalculator_Derive_DefaultsLevel(t *testing.T) {
	calc := newTestCalculator(t, domain.ClassWarrior)

	derived := calc.Derive(&domain.Build{Class: domain.ClassWarrior}, domain.AggregatedStats{}, 0, 200)

	assert.Equal(t, 5*DefaultCharacterLevel, derived.EffectiveHP.TotalHP)
}
