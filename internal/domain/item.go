package domain

import "strings"

// Slot identifies the equipment position an item occupies in a build
type Slot string

const (
	SlotWeapon     Slot = "weapon"
	SlotHelmet     Slot = "helmet"
	SlotChestplate Slot = "chestplate"
	SlotLeggings   Slot = "leggings"
	SlotBoots      Slot = "boots"
	SlotRing       Slot = "ring"
	SlotBracelet   Slot = "bracelet"
	SlotNecklace   Slot = "necklace"
)

// Slots lists every equipment slot in canonical order
var Slots = []Slot{SlotWeapon, SlotHelmet, SlotChestplate, SlotLeggings, SlotBoots, SlotRing, SlotBracelet, SlotNecklace}

// MandatorySlots must all have at least one candidate before generation starts
var MandatorySlots = []Slot{SlotWeapon, SlotHelmet, SlotChestplate, SlotLeggings, SlotBoots}

// AccessorySlots may be left unfilled when the catalog has no candidates
var AccessorySlots = []Slot{SlotRing, SlotBracelet, SlotNecklace}

// ParseSlot resolves a user-supplied slot name
func ParseSlot(s string) (Slot, error) {
	slot := Slot(strings.ToLower(strings.TrimSpace(s)))
	if !slot.Valid() {
		return "", ErrUnknownSlot
	}
	return slot, nil
}

// Valid reports whether the slot is one of the eight equipment positions
func (s Slot) Valid() bool {
	switch s {
	case SlotWeapon, SlotHelmet, SlotChestplate, SlotLeggings, SlotBoots, SlotRing, SlotBracelet, SlotNecklace:
		return true
	}
	return false
}

// WeaponType is the weapon category carried in the weapon slot.
// Each class can equip exactly one weapon type.
type WeaponType string

const (
	WeaponWand   WeaponType = "wand"
	WeaponBow    WeaponType = "bow"
	WeaponSpear  WeaponType = "spear"
	WeaponDagger WeaponType = "dagger"
	WeaponRelik  WeaponType = "relik"
)

// WeaponTypes lists all weapon categories
var WeaponTypes = []WeaponType{WeaponWand, WeaponBow, WeaponSpear, WeaponDagger, WeaponRelik}

// Tier is the item rarity grade. Set is a parallel categorical tier,
// not part of the Normal..Mythic ladder.
type Tier string

const (
	TierNormal    Tier = "Normal"
	TierUnique    Tier = "Unique"
	TierRare      Tier = "Rare"
	TierLegendary Tier = "Legendary"
	TierFabled    Tier = "Fabled"
	TierMythic    Tier = "Mythic"
	TierSet       Tier = "Set"
)

// BaseCost returns the emerald-block cost estimate for one item of this tier.
// Unknown tiers cost nothing.
func (t Tier) BaseCost() float64 {
	switch t {
	case TierNormal:
		return 0
	case TierUnique:
		return 1
	case TierRare:
		return 5
	case TierLegendary:
		return 50
	case TierMythic:
		return 500
	case TierFabled:
		return 1000
	case TierSet:
		return 20
	default:
		return 0
	}
}

// Valid reports whether the tier is a known grade
func (t Tier) Valid() bool {
	switch t {
	case TierNormal, TierUnique, TierRare, TierLegendary, TierFabled, TierMythic, TierSet:
		return true
	}
	return false
}

// ParseTier normalizes a rarity string to its canonical tier
func ParseTier(s string) (Tier, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrUnknownTier
	}
	canonical := Tier(strings.ToUpper(trimmed[:1]) + strings.ToLower(trimmed[1:]))
	if !canonical.Valid() {
		return "", ErrUnknownTier
	}
	return canonical, nil
}

// AttackSpeed is the discrete swing-rate tier of a weapon
type AttackSpeed string

const (
	AttackSpeedSuperSlow AttackSpeed = "SUPER_SLOW"
	AttackSpeedVerySlow  AttackSpeed = "VERY_SLOW"
	AttackSpeedSlow      AttackSpeed = "SLOW"
	AttackSpeedNormal    AttackSpeed = "NORMAL"
	AttackSpeedFast      AttackSpeed = "FAST"
	AttackSpeedVeryFast  AttackSpeed = "VERY_FAST"
	AttackSpeedSuperFast AttackSpeed = "SUPER_FAST"
)

// Multiplier returns the attacks-per-second factor applied to damage.
// Unknown tiers fall back to the NORMAL multiplier.
func (a AttackSpeed) Multiplier() float64 {
	switch a {
	case AttackSpeedSuperSlow:
		return 0.51
	case AttackSpeedVerySlow:
		return 0.83
	case AttackSpeedSlow:
		return 1.5
	case AttackSpeedNormal:
		return 2.05
	case AttackSpeedFast:
		return 2.5
	case AttackSpeedVeryFast:
		return 3.1
	case AttackSpeedSuperFast:
		return 4.3
	default:
		return 2.05
	}
}

// ParseAttackSpeed normalizes the spellings found across catalog sources
// ("Super Fast", "SUPER_FAST", "super_fast") to the canonical tier.
func ParseAttackSpeed(s string) AttackSpeed {
	canonical := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
	switch AttackSpeed(canonical) {
	case AttackSpeedSuperSlow, AttackSpeedVerySlow, AttackSpeedSlow, AttackSpeedNormal, AttackSpeedFast, AttackSpeedVeryFast, AttackSpeedSuperFast:
		return AttackSpeed(canonical)
	default:
		return AttackSpeedNormal
	}
}

// Element is one of the five elemental damage/defense channels
type Element string

const (
	ElementEarth   Element = "earth"
	ElementThunder Element = "thunder"
	ElementWater   Element = "water"
	ElementFire    Element = "fire"
	ElementAir     Element = "air"
)

// Elements lists the channels in canonical order
var Elements = []Element{ElementEarth, ElementThunder, ElementWater, ElementFire, ElementAir}

// ParseElement resolves a user-supplied element name
func ParseElement(s string) (Element, error) {
	e := Element(strings.ToLower(strings.TrimSpace(s)))
	switch e {
	case ElementEarth, ElementThunder, ElementWater, ElementFire, ElementAir:
		return e, nil
	}
	return "", ErrUnknownElement
}

// Valid reports whether the element is a known channel
func (e Element) Valid() bool {
	switch e {
	case ElementEarth, ElementThunder, ElementWater, ElementFire, ElementAir:
		return true
	}
	return false
}

// DamagePctKey returns the identification key for this element's damage bonus
func (e Element) DamagePctKey() StatKey {
	return StatKey(string(e) + "_damage_percent")
}

// DefensePctKey returns the identification key for this element's defense bonus
func (e Element) DefensePctKey() StatKey {
	return StatKey(string(e) + "_defense_percent")
}

// DamageRange is a min/max damage pair, serialized as a two-element array
type DamageRange [2]int

// Average returns the midpoint of the range
func (d DamageRange) Average() float64 {
	return float64(d[0]+d[1]) / 2
}

// DamageProfile holds a weapon's per-element damage ranges
type DamageProfile struct {
	Neutral DamageRange `json:"neutral"`
	Earth   DamageRange `json:"earth"`
	Thunder DamageRange `json:"thunder"`
	Water   DamageRange `json:"water"`
	Fire    DamageRange `json:"fire"`
	Air     DamageRange `json:"air"`
}

// Average returns the mean damage per hit summed across all channels
func (d DamageProfile) Average() float64 {
	return d.Neutral.Average() + d.Earth.Average() + d.Thunder.Average() +
		d.Water.Average() + d.Fire.Average() + d.Air.Average()
}

// SkillVector holds one value per character attribute. It is used both for
// equip requirements and for skill-point bonuses granted by gear.
type SkillVector struct {
	Strength     int `json:"str"`
	Dexterity    int `json:"dex"`
	Intelligence int `json:"int"`
	Defense      int `json:"def"`
	Agility      int `json:"agi"`
}

// Add returns the component-wise sum
func (v SkillVector) Add(o SkillVector) SkillVector {
	return SkillVector{
		Strength:     v.Strength + o.Strength,
		Dexterity:    v.Dexterity + o.Dexterity,
		Intelligence: v.Intelligence + o.Intelligence,
		Defense:      v.Defense + o.Defense,
		Agility:      v.Agility + o.Agility,
	}
}

// Total returns the sum of all five attributes
func (v SkillVector) Total() int {
	return v.Strength + v.Dexterity + v.Intelligence + v.Defense + v.Agility
}

// MaxComponent returns the largest single attribute value
func (v SkillVector) MaxComponent() int {
	return max(v.Strength, v.Dexterity, v.Intelligence, v.Defense, v.Agility)
}

// Item is one catalog record. Weapon-only attributes (Damage, AttackSpeed,
// WeaponType) are nil/empty for armor and accessories.
type Item struct {
	Name            string         `json:"name"`
	Slot            Slot           `json:"slot"`
	WeaponType      WeaponType     `json:"weapon_type,omitempty"`
	Tier            Tier           `json:"tier"`
	Level           int            `json:"lvl"`
	ClassReq        Class          `json:"class_req,omitempty"`
	Requirements    SkillVector    `json:"requirements"`
	Health          int            `json:"hp,omitempty"`
	Mana            int            `json:"mana,omitempty"`
	Identifications StatMap        `json:"identifications,omitempty"`
	Damage          *DamageProfile `json:"damage,omitempty"`
	AttackSpeed     AttackSpeed    `json:"attack_speed,omitempty"`
	QuestReq        string         `json:"quest_req,omitempty"`
	Untradeable     bool           `json:"untradeable,omitempty"`
}

// IsWeapon reports whether the item occupies the weapon slot
func (i *Item) IsWeapon() bool {
	return i.Slot == SlotWeapon
}

// ID returns the identification value for key, zero when absent
func (i *Item) ID(key StatKey) int {
	if i.Identifications == nil {
		return 0
	}
	return i.Identifications[key]
}

// AverageDamage returns the mean per-hit damage for weapons, zero otherwise
func (i *Item) AverageDamage() float64 {
	if i.Damage == nil {
		return 0
	}
	return i.Damage.Average()
}
