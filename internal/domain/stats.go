package domain

// StatKey names one identification (stat bonus) an item can carry.
// The values match the normalized catalog format.
type StatKey string

const (
	StatHealthBonus      StatKey = "health_bonus"
	StatHealthRegenRaw   StatKey = "health_regen_raw"
	StatHealthRegenPct   StatKey = "health_regen_percent"
	StatManaRegen        StatKey = "mana_regen"
	StatManaSteal        StatKey = "mana_steal"
	StatSpellDamageRaw   StatKey = "spell_damage_raw"
	StatSpellDamagePct   StatKey = "spell_damage_percent"
	StatMeleeDamageRaw   StatKey = "melee_damage_raw"
	StatMeleeDamagePct   StatKey = "melee_damage_percent"
	StatLifeSteal        StatKey = "life_steal"
	StatPoison           StatKey = "poison"
	StatThorns           StatKey = "thorns"
	StatReflection       StatKey = "reflection"
	StatWalkSpeed        StatKey = "walk_speed"
	StatAttackSpeedBonus StatKey = "attack_speed_bonus"
	StatSpellCostRaw     StatKey = "spell_cost_raw"
	StatSpellCostPct     StatKey = "spell_cost_percent"

	// Skill-point bonuses share their keys with the requirement vector
	StatStrength     StatKey = "str"
	StatDexterity    StatKey = "dex"
	StatIntelligence StatKey = "int"
	StatDefense      StatKey = "def"
	StatAgility      StatKey = "agi"

	StatEarthDamagePct   StatKey = "earth_damage_percent"
	StatThunderDamagePct StatKey = "thunder_damage_percent"
	StatWaterDamagePct   StatKey = "water_damage_percent"
	StatFireDamagePct    StatKey = "fire_damage_percent"
	StatAirDamagePct     StatKey = "air_damage_percent"

	StatEarthDefensePct   StatKey = "earth_defense_percent"
	StatThunderDefensePct StatKey = "thunder_defense_percent"
	StatWaterDefensePct   StatKey = "water_defense_percent"
	StatFireDefensePct    StatKey = "fire_defense_percent"
	StatAirDefensePct     StatKey = "air_defense_percent"
)

// StatKeys lists every identification key in canonical display order
var StatKeys = []StatKey{
	StatHealthBonus, StatHealthRegenRaw, StatHealthRegenPct,
	StatManaRegen, StatManaSteal,
	StatSpellDamageRaw, StatSpellDamagePct,
	StatMeleeDamageRaw, StatMeleeDamagePct,
	StatLifeSteal, StatPoison, StatThorns, StatReflection,
	StatWalkSpeed, StatAttackSpeedBonus,
	StatSpellCostRaw, StatSpellCostPct,
	StatStrength, StatDexterity, StatIntelligence, StatDefense, StatAgility,
	StatEarthDamagePct, StatThunderDamagePct, StatWaterDamagePct,
	StatFireDamagePct, StatAirDamagePct,
	StatEarthDefensePct, StatThunderDefensePct, StatWaterDefensePct,
	StatFireDefensePct, StatAirDefensePct,
}

// StatMap is an item's identification table. Absent keys contribute zero.
type StatMap map[StatKey]int

// Get returns the value for key, zero when absent
func (m StatMap) Get(key StatKey) int {
	if m == nil {
		return 0
	}
	return m[key]
}

// ElementVector holds one value per elemental channel
type ElementVector struct {
	Earth   int `json:"earth"`
	Thunder int `json:"thunder"`
	Water   int `json:"water"`
	Fire    int `json:"fire"`
	Air     int `json:"air"`
}

// Total returns the sum across all five channels
func (v ElementVector) Total() int {
	return v.Earth + v.Thunder + v.Water + v.Fire + v.Air
}

// Get returns the value for one element
func (v ElementVector) Get(e Element) int {
	switch e {
	case ElementEarth:
		return v.Earth
	case ElementThunder:
		return v.Thunder
	case ElementWater:
		return v.Water
	case ElementFire:
		return v.Fire
	case ElementAir:
		return v.Air
	default:
		return 0
	}
}

// AggregatedStats holds the summed contributions of every item in a build.
// Health includes both base item health and health-bonus identifications.
// AttackSpeedBonus feeds the attack-speed multiplier in the damage formula.
type AggregatedStats struct {
	Health           int          `json:"health"`
	HealthRegenRaw   int          `json:"health_regen_raw"`
	HealthRegenPct   int          `json:"health_regen_percent"`
	ManaRegen        int          `json:"mana_regen"`
	ManaSteal        int          `json:"mana_steal"`
	SpellDamageRaw   int          `json:"spell_damage_raw"`
	SpellDamagePct   int          `json:"spell_damage_percent"`
	MeleeDamageRaw   int          `json:"melee_damage_raw"`
	MeleeDamagePct   int          `json:"melee_damage_percent"`
	LifeSteal        int          `json:"life_steal"`
	Poison           int          `json:"poison"`
	Thorns           int          `json:"thorns"`
	Reflection       int          `json:"reflection"`
	WalkSpeed        int          `json:"walk_speed"`
	AttackSpeedBonus int          `json:"attack_speed_bonus"`
	SpellCostRaw     int          `json:"spell_cost_raw"`
	SpellCostPct     int          `json:"spell_cost_percent"`
	DamagePct        ElementVector `json:"damage_percent"`
	DefensePct       ElementVector `json:"defense_percent"`
	SkillBonuses     SkillVector  `json:"skill_bonuses"`
	Requirements     SkillVector  `json:"requirements"`
}

// EffectiveHP reports the survivability variants for a build. Defense and
// Agility apply only their own mitigation factor; Combined applies both plus
// the class defense multiplier.
type EffectiveHP struct {
	TotalHP          int     `json:"total_hp"`
	Defense          float64 `json:"defense_ehp"`
	Agility          float64 `json:"agility_ehp"`
	Combined         float64 `json:"combined_ehp"`
	DefenseReduction float64 `json:"defense_reduction"`
	DodgeChance      float64 `json:"dodge_chance"`
}

// SpellCost is the final mana cost of one spell after reductions
type SpellCost struct {
	Spell string `json:"spell"`
	Cost  int    `json:"cost"`
}

// DerivedStats are the combat values computed from aggregated stats
type DerivedStats struct {
	DPS               float64     `json:"dps"`
	EffectiveHP       EffectiveHP `json:"effective_hp"`
	ManaSustain       float64     `json:"mana_sustain"`
	SpellCosts        []SpellCost `json:"spell_costs,omitempty"`
	Cost              float64     `json:"cost"`
	UnusedSkillPoints int         `json:"unused_skill_points"`
}

// ScoredBuild pairs a build with its stats and composite score. It is the
// unit returned by the engine and consumed by every presentation layer.
type ScoredBuild struct {
	Build   Build           `json:"build"`
	Stats   AggregatedStats `json:"stats"`
	Derived DerivedStats    `json:"derived"`
	Score   float64         `json:"score"`
}

// ScoreWeights are the four coefficients of the composite score formula:
// dps*DPS + ehp*EHP + manaSustain*ManaSustain + unusedSkillPoints*SkillPoints
type ScoreWeights struct {
	DPS         float64 `json:"dps" yaml:"dps"`
	EHP         float64 `json:"ehp" yaml:"ehp"`
	ManaSustain float64 `json:"mana" yaml:"mana"`
	SkillPoints float64 `json:"skill_points" yaml:"skill_points"`
}

// DefaultScoreWeights returns the balanced weight profile
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{DPS: 0.4, EHP: 0.0001, ManaSustain: 50, SkillPoints: 10}
}
