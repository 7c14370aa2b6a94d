package stats

// ============================================================================
// Damage Formula
// ============================================================================

// AttackSpeedBonusStep is how much each point of attack-speed bonus shifts
// the attack-speed multiplier
const AttackSpeedBonusStep = 0.15

// ============================================================================
// Survivability Formula
// ============================================================================

// DefensePointReduction is the damage reduction granted per defense point
const DefensePointReduction = 0.003

// MaxDamageReduction caps defense-based damage reduction at 80%
const MaxDamageReduction = 0.8

// AgilityPointDodge is the dodge chance granted per agility point
const AgilityPointDodge = 0.002

// MaxDodgeChance caps agility-based dodge at 75%
const MaxDodgeChance = 0.75

// MinEHPDivisor guards the effective-HP divisors against zero
const MinEHPDivisor = 0.01

// ============================================================================
// Mana Sustain Formula
// ============================================================================

// EstimatedHitRate is the assumed melee hits per second used to convert
// mana steal into sustained regen. An approximation, not game telemetry.
const EstimatedHitRate = 2.0

// ManaStealProcFactor converts a mana-steal identification point into mana
// per hit
const ManaStealProcFactor = 0.01

// ============================================================================
// Spell Cost Formula
// ============================================================================

// IntPointsPerReduction is how many intelligence points buy one point of
// spell cost reduction
const IntPointsPerReduction = 2

// MinSpellCost is the floor below which no spell cost can drop
const MinSpellCost = 1

// ============================================================================
// Build Cost Formula
// ============================================================================

// CostLevelDivisor scales an item's tier cost by its level
const CostLevelDivisor = 50.0

// ============================================================================
// Character Defaults
// ============================================================================

// DefaultCharacterLevel is the assumed character level when a request does
// not specify one
const DefaultCharacterLevel = 106
