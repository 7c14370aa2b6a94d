package domain

import "strings"

// Class is one of the five playable character classes
type Class string

const (
	ClassMage     Class = "mage"
	ClassArcher   Class = "archer"
	ClassWarrior  Class = "warrior"
	ClassAssassin Class = "assassin"
	ClassShaman   Class = "shaman"
)

// Classes lists all classes in share-format order (index = class number)
var Classes = []Class{ClassMage, ClassArcher, ClassWarrior, ClassAssassin, ClassShaman}

// ParseClass resolves a user-supplied class name
func ParseClass(s string) (Class, error) {
	c := Class(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrUnknownClass
	}
	return c, nil
}

// Valid reports whether the class is one of the five playable classes
func (c Class) Valid() bool {
	switch c {
	case ClassMage, ClassArcher, ClassWarrior, ClassAssassin, ClassShaman:
		return true
	}
	return false
}

// Weapon returns the only weapon type the class can equip
func (c Class) Weapon() WeaponType {
	switch c {
	case ClassMage:
		return WeaponWand
	case ClassArcher:
		return WeaponBow
	case ClassWarrior:
		return WeaponSpear
	case ClassAssassin:
		return WeaponDagger
	case ClassShaman:
		return WeaponRelik
	default:
		return ""
	}
}

// Number returns the class index used by the share-URL format
func (c Class) Number() int {
	for i, cl := range Classes {
		if cl == c {
			return i
		}
	}
	return 0
}

// Spell is one castable ability and its base mana cost
type Spell struct {
	Name     string `json:"name"`
	BaseCost int    `json:"base_cost"`
}

// SpellConversion maps a fraction of a spell's neutral weapon damage into
// one elemental channel
type SpellConversion struct {
	Spell   string  `json:"spell"`
	Element Element `json:"element"`
	Percent int     `json:"percent"`
}

// ClassConfig carries the per-class constants used by every derived-stat
// calculator. Instances are immutable value copies; construct one with
// ClassConfigFor and pass it explicitly wherever it is needed.
type ClassConfig struct {
	Class                Class             `json:"class"`
	BaseHealthPerLevel   int               `json:"base_health_per_level"`
	BaseManaPerLevel     int               `json:"base_mana_per_level"`
	DefenseMultiplier    float64           `json:"defense_multiplier"`
	BaseSpellMultiplier  float64           `json:"base_spell_multiplier"`
	BaseDamageMultiplier float64           `json:"base_damage_multiplier"`
	Spells               []Spell           `json:"spells"`
	Conversions          []SpellConversion `json:"conversions"`
}

// BaseHealth returns the class's base HP at the given character level
func (c ClassConfig) BaseHealth(level int) int {
	return c.BaseHealthPerLevel * level
}

// BaseMana returns the class's base mana at the given character level
func (c ClassConfig) BaseMana(level int) int {
	return c.BaseManaPerLevel * level
}

// ConversionFactor returns the mean spell conversion across all of the
// class's spells as a 0..1 factor, 1.0 when no conversions are defined
func (c ClassConfig) ConversionFactor() float64 {
	if len(c.Conversions) == 0 {
		return 1.0
	}
	total := 0
	for _, conv := range c.Conversions {
		total += conv.Percent
	}
	return float64(total) / float64(len(c.Conversions)) / 100
}

// ClassConfigFor builds a fresh configuration for the class. Every call
// returns an independent copy so no caller can mutate shared state.
func ClassConfigFor(c Class) (ClassConfig, error) {
	switch c {
	case ClassMage:
		return ClassConfig{
			Class:                ClassMage,
			BaseHealthPerLevel:   5,
			BaseManaPerLevel:     20,
			DefenseMultiplier:    0.8,
			BaseSpellMultiplier:  1.0,
			BaseDamageMultiplier: 1.0,
			Spells: []Spell{
				{Name: "Heal", BaseCost: 6},
				{Name: "Teleport", BaseCost: 8},
				{Name: "Meteor", BaseCost: 4},
				{Name: "Ice Snake", BaseCost: 4},
			},
			Conversions: []SpellConversion{
				{Spell: "Meteor", Element: ElementEarth, Percent: 30},
				{Spell: "Meteor", Element: ElementFire, Percent: 30},
				{Spell: "Ice Snake", Element: ElementWater, Percent: 70},
				{Spell: "Teleport", Element: ElementAir, Percent: 50},
				{Spell: "Heal", Element: ElementWater, Percent: 40},
			},
		}, nil
	case ClassArcher:
		return ClassConfig{
			Class:                ClassArcher,
			BaseHealthPerLevel:   5,
			BaseManaPerLevel:     15,
			DefenseMultiplier:    0.6,
			BaseSpellMultiplier:  1.0,
			BaseDamageMultiplier: 1.1,
			Spells: []Spell{
				{Name: "Arrow Storm", BaseCost: 6},
				{Name: "Escape", BaseCost: 8},
				{Name: "Bomb Arrow", BaseCost: 4},
				{Name: "Arrow Shield", BaseCost: 6},
			},
			Conversions: []SpellConversion{
				{Spell: "Arrow Storm", Element: ElementAir, Percent: 40},
				{Spell: "Escape", Element: ElementAir, Percent: 80},
				{Spell: "Bomb Arrow", Element: ElementFire, Percent: 100},
				{Spell: "Arrow Shield", Element: ElementEarth, Percent: 30},
			},
		}, nil
	case ClassWarrior:
		return ClassConfig{
			Class:                ClassWarrior,
			BaseHealthPerLevel:   5,
			BaseManaPerLevel:     10,
			DefenseMultiplier:    1.2,
			BaseSpellMultiplier:  0.9,
			BaseDamageMultiplier: 1.2,
			Spells: []Spell{
				{Name: "Bash", BaseCost: 4},
				{Name: "Charge", BaseCost: 6},
				{Name: "Uppercut", BaseCost: 4},
				{Name: "War Scream", BaseCost: 8},
			},
			Conversions: []SpellConversion{
				{Spell: "Bash", Element: ElementEarth, Percent: 50},
				{Spell: "Charge", Element: ElementEarth, Percent: 30},
				{Spell: "Uppercut", Element: ElementThunder, Percent: 50},
				{Spell: "War Scream", Element: ElementThunder, Percent: 30},
			},
		}, nil
	case ClassAssassin:
		return ClassConfig{
			Class:                ClassAssassin,
			BaseHealthPerLevel:   5,
			BaseManaPerLevel:     10,
			DefenseMultiplier:    1.0,
			BaseSpellMultiplier:  1.1,
			BaseDamageMultiplier: 1.3,
			Spells: []Spell{
				{Name: "Spin Attack", BaseCost: 4},
				{Name: "Vanish", BaseCost: 6},
				{Name: "Multihit", BaseCost: 4},
				{Name: "Smoke Bomb", BaseCost: 8},
			},
			Conversions: []SpellConversion{
				{Spell: "Spin Attack", Element: ElementAir, Percent: 40},
				{Spell: "Vanish", Element: ElementAir, Percent: 20},
				{Spell: "Multihit", Element: ElementThunder, Percent: 30},
				{Spell: "Smoke Bomb", Element: ElementFire, Percent: 20},
			},
		}, nil
	case ClassShaman:
		return ClassConfig{
			Class:                ClassShaman,
			BaseHealthPerLevel:   5,
			BaseManaPerLevel:     15,
			DefenseMultiplier:    0.5,
			BaseSpellMultiplier:  1.0,
			BaseDamageMultiplier: 1.0,
			Spells: []Spell{
				{Name: "Totem", BaseCost: 6},
				{Name: "Haul", BaseCost: 4},
				{Name: "Aura", BaseCost: 6},
				{Name: "Uproot", BaseCost: 8},
			},
			Conversions: []SpellConversion{
				{Spell: "Totem", Element: ElementEarth, Percent: 40},
				{Spell: "Haul", Element: ElementAir, Percent: 60},
				{Spell: "Aura", Element: ElementWater, Percent: 30},
				{Spell: "Uproot", Element: ElementEarth, Percent: 60},
			},
		}, nil
	default:
		return ClassConfig{}, ErrUnknownClass
	}
}
