package domain

import "strings"

// Playstyle names a build archetype used to bias candidate selection
// and scoring
type Playstyle string

const (
	PlaystyleSpellspam Playstyle = "spellspam"
	PlaystyleMelee     Playstyle = "melee"
	PlaystyleTank      Playstyle = "tank"
	PlaystyleHybrid    Playstyle = "hybrid"
)

// Playstyles lists all supported playstyles
var Playstyles = []Playstyle{PlaystyleSpellspam, PlaystyleMelee, PlaystyleTank, PlaystyleHybrid}

// ParsePlaystyle resolves a user-supplied playstyle name
func ParsePlaystyle(s string) (Playstyle, error) {
	p := Playstyle(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", ErrUnknownPlaystyle
	}
	return p, nil
}

// Valid reports whether the playstyle is a supported archetype
func (p Playstyle) Valid() bool {
	switch p {
	case PlaystyleSpellspam, PlaystyleMelee, PlaystyleTank, PlaystyleHybrid:
		return true
	}
	return false
}

// AffinityStats returns the identification keys that mark an item as
// useful for the playstyle
func (p Playstyle) AffinityStats() []StatKey {
	switch p {
	case PlaystyleSpellspam:
		return []StatKey{
			StatSpellDamagePct, StatSpellDamageRaw,
			StatManaRegen, StatManaSteal, StatIntelligence,
			StatEarthDamagePct, StatThunderDamagePct, StatWaterDamagePct,
			StatFireDamagePct, StatAirDamagePct,
		}
	case PlaystyleMelee:
		return []StatKey{
			StatMeleeDamagePct, StatMeleeDamageRaw,
			StatAttackSpeedBonus, StatStrength, StatDexterity,
		}
	case PlaystyleTank:
		return []StatKey{
			StatHealthBonus, StatHealthRegenRaw, StatDefense,
			StatEarthDefensePct, StatThunderDefensePct, StatWaterDefensePct,
			StatFireDefensePct, StatAirDefensePct,
		}
	case PlaystyleHybrid:
		return []StatKey{
			StatSpellDamagePct, StatMeleeDamagePct,
			StatHealthBonus, StatManaRegen,
			StatStrength, StatDexterity, StatIntelligence,
			StatDefense, StatAgility,
		}
	default:
		return nil
	}
}

// AffinityScore counts how many of the playstyle's marker stats the item
// carries with a positive value. Base health on armour counts toward the
// tank archetype alongside the health bonus identification.
func (p Playstyle) AffinityScore(it *Item) int {
	if it == nil {
		return 0
	}
	score := 0
	for _, key := range p.AffinityStats() {
		if it.ID(key) > 0 {
			score++
		}
	}
	if p == PlaystyleTank && it.Health > 0 {
		score++
	}
	return score
}

// Weights returns the scoring weights tuned for the playstyle
func (p Playstyle) Weights() ScoreWeights {
	switch p {
	case PlaystyleSpellspam:
		return ScoreWeights{DPS: 0.6, EHP: 0, ManaSustain: 100, SkillPoints: 0}
	case PlaystyleMelee:
		return ScoreWeights{DPS: 0.4, EHP: 0.0001, ManaSustain: 0, SkillPoints: 0}
	case PlaystyleTank:
		return ScoreWeights{DPS: 0, EHP: 0.0002, ManaSustain: 20, SkillPoints: 0}
	case PlaystyleHybrid:
		return ScoreWeights{DPS: 0.3, EHP: 0.0001, ManaSustain: 30, SkillPoints: 0}
	default:
		return DefaultScoreWeights()
	}
}
