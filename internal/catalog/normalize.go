package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wynnforge/wynnforge/internal/domain"
)

// Issue records one problem found while normalizing a catalog record
type Issue struct {
	Index  int    `json:"index"`
	Name   string `json:"name,omitempty"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// IngestReport summarizes one catalog load. Skipped counts records dropped
// entirely; records kept with a defaulted field appear in Issues but still
// count as loaded.
type IngestReport struct {
	Source        string    `json:"source,omitempty"`
	Total         int       `json:"total"`
	Loaded        int       `json:"loaded"`
	Skipped       int       `json:"skipped"`
	Duplicates    int       `json:"duplicates"`
	Issues        []Issue   `json:"issues,omitempty"`
	IssuesOmitted int       `json:"issues_omitted,omitempty"`
	LoadedAt      time.Time `json:"loaded_at"`
}

func (r *IngestReport) addIssue(issue Issue) {
	if len(r.Issues) >= MaxReportedIssues {
		r.IssuesOmitted++
		return
	}
	r.Issues = append(r.Issues, issue)
}

// slotForType maps the wynnbuilder "type" field to an equipment slot
var slotForType = map[string]domain.Slot{
	"wand":       domain.SlotWeapon,
	"bow":        domain.SlotWeapon,
	"spear":      domain.SlotWeapon,
	"dagger":     domain.SlotWeapon,
	"relik":      domain.SlotWeapon,
	"helmet":     domain.SlotHelmet,
	"chestplate": domain.SlotChestplate,
	"leggings":   domain.SlotLeggings,
	"boots":      domain.SlotBoots,
	"ring":       domain.SlotRing,
	"bracelet":   domain.SlotBracelet,
	"necklace":   domain.SlotNecklace,
}

// identificationKeys maps wynnbuilder identification names to the
// normalized stat keys the aggregation layer reads
var identificationKeys = map[string]domain.StatKey{
	"hpBonus": domain.StatHealthBonus,
	"hprRaw":  domain.StatHealthRegenRaw,
	"hprPct":  domain.StatHealthRegenPct,
	"mr":      domain.StatManaRegen,
	"ms":      domain.StatManaSteal,
	"sdRaw":   domain.StatSpellDamageRaw,
	"sdPct":   domain.StatSpellDamagePct,
	"mdRaw":   domain.StatMeleeDamageRaw,
	"mdPct":   domain.StatMeleeDamagePct,
	"ls":      domain.StatLifeSteal,
	"poison":  domain.StatPoison,
	"thorns":  domain.StatThorns,
	"ref":     domain.StatReflection,
	"spd":     domain.StatWalkSpeed,
	"atkTier": domain.StatAttackSpeedBonus,
	"str":     domain.StatStrength,
	"dex":     domain.StatDexterity,
	"int":     domain.StatIntelligence,
	"def":     domain.StatDefense,
	"agi":     domain.StatAgility,
	"eDamPct": domain.StatEarthDamagePct,
	"tDamPct": domain.StatThunderDamagePct,
	"wDamPct": domain.StatWaterDamagePct,
	"fDamPct": domain.StatFireDamagePct,
	"aDamPct": domain.StatAirDamagePct,
	"eDefPct": domain.StatEarthDefensePct,
	"tDefPct": domain.StatThunderDefensePct,
	"wDefPct": domain.StatWaterDefensePct,
	"fDefPct": domain.StatFireDefensePct,
	"aDefPct": domain.StatAirDefensePct,
}

// Per-spell cost modifiers fold into a single raw and a single percent
// channel, matching the one-modifier cost formula.
var (
	spellCostRawKeys = []string{"spRaw1", "spRaw2", "spRaw3", "spRaw4"}
	spellCostPctKeys = []string{"spPct1", "spPct2", "spPct3", "spPct4"}
)

// damageKeys maps wynnbuilder damage-range fields to their channel
var damageKeys = []struct {
	key     string
	element string
}{
	{"nDam", "neutral"},
	{"eDam", "earth"},
	{"tDam", "thunder"},
	{"wDam", "water"},
	{"fDam", "fire"},
	{"aDam", "air"},
}

// recordReader extracts typed fields from a decoded catalog record,
// collecting the names of fields that failed coercion
type recordReader struct {
	rec       map[string]any
	badFields []string
}

// str returns the first present key coerced to a trimmed string
func (r *recordReader) str(keys ...string) string {
	for _, key := range keys {
		raw, ok := r.rec[key]
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case string:
			return strings.TrimSpace(v)
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		default:
			r.badFields = append(r.badFields, key)
			return ""
		}
	}
	return ""
}

// num returns the first present key coerced to an int. Unparseable values
// record the field name and yield zero.
func (r *recordReader) num(keys ...string) int {
	for _, key := range keys {
		raw, ok := r.rec[key]
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case float64:
			return int(v)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				r.badFields = append(r.badFields, key)
				return 0
			}
			return n
		default:
			r.badFields = append(r.badFields, key)
			return 0
		}
	}
	return 0
}

// has reports whether any of the keys is present with a non-nil value
func (r *recordReader) has(keys ...string) bool {
	for _, key := range keys {
		if raw, ok := r.rec[key]; ok && raw != nil {
			return true
		}
	}
	return false
}

// parseDamageRange parses a "12-34" style damage string
func parseDamageRange(s string) (domain.DamageRange, error) {
	var rng domain.DamageRange
	lo, hi, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		// single-value ranges occur in older exports
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return rng, fmt.Errorf("malformed damage range %q", s)
		}
		return domain.DamageRange{n, n}, nil
	}
	minDmg, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return rng, fmt.Errorf("malformed damage range %q", s)
	}
	maxDmg, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return rng, fmt.Errorf("malformed damage range %q", s)
	}
	return domain.DamageRange{minDmg, maxDmg}, nil
}

// normalizeRecord converts one decoded wynnbuilder record into a domain
// item. The second return is false when the record must be skipped; the
// report receives an issue either way something went wrong.
func normalizeRecord(index int, rec map[string]any, report *IngestReport) (domain.Item, bool) {
	r := &recordReader{rec: rec}

	name := r.str("name", "displayName")
	if name == "" {
		report.addIssue(Issue{Index: index, Field: "name", Reason: "missing item name"})
		return domain.Item{}, false
	}

	itemType := strings.ToLower(r.str("type"))
	slot, ok := slotForType[itemType]
	if !ok {
		report.addIssue(Issue{Index: index, Name: name, Field: "type", Reason: fmt.Sprintf("unknown item type %q", itemType)})
		return domain.Item{}, false
	}

	level := r.num("lvl", "level")
	if len(r.badFields) > 0 {
		report.addIssue(Issue{Index: index, Name: name, Field: "lvl", Reason: "level is not a number"})
		return domain.Item{}, false
	}

	item := domain.Item{
		Name:   name,
		Slot:   slot,
		Level:  level,
		Tier:   domain.TierNormal,
		Health: r.num("hp"),
		Mana:   r.num("mana"),
	}

	if slot == domain.SlotWeapon {
		item.WeaponType = domain.WeaponType(itemType)
	}

	if rawTier := r.str("tier", "rarity"); rawTier != "" {
		tier, err := domain.ParseTier(rawTier)
		if err != nil {
			report.addIssue(Issue{Index: index, Name: name, Field: "tier", Reason: fmt.Sprintf("unknown tier %q, defaulting to Normal", rawTier)})
		} else {
			item.Tier = tier
		}
	}

	if rawClass := r.str("classReq"); rawClass != "" {
		class, err := domain.ParseClass(strings.ToLower(rawClass))
		if err != nil {
			report.addIssue(Issue{Index: index, Name: name, Field: "classReq", Reason: fmt.Sprintf("unknown class %q, requirement dropped", rawClass)})
		} else {
			item.ClassReq = class
		}
	}

	item.Requirements = domain.SkillVector{
		Strength:     r.num("strReq"),
		Dexterity:    r.num("dexReq"),
		Intelligence: r.num("intReq"),
		Defense:      r.num("defReq"),
		Agility:      r.num("agiReq"),
	}

	ids := make(domain.StatMap)
	for rawKey, statKey := range identificationKeys {
		if !r.has(rawKey) {
			continue
		}
		if value := r.num(rawKey); value != 0 {
			ids[statKey] = value
		}
	}
	for _, rawKey := range spellCostRawKeys {
		if r.has(rawKey) {
			ids[domain.StatSpellCostRaw] += r.num(rawKey)
		}
	}
	for _, rawKey := range spellCostPctKeys {
		if r.has(rawKey) {
			ids[domain.StatSpellCostPct] += r.num(rawKey)
		}
	}
	if ids[domain.StatSpellCostRaw] == 0 {
		delete(ids, domain.StatSpellCostRaw)
	}
	if ids[domain.StatSpellCostPct] == 0 {
		delete(ids, domain.StatSpellCostPct)
	}
	if len(ids) > 0 {
		item.Identifications = ids
	}

	if slot == domain.SlotWeapon {
		item.AttackSpeed = domain.ParseAttackSpeed(r.str("atkSpd"))
		profile := &domain.DamageProfile{}
		for _, dk := range damageKeys {
			raw := r.str(dk.key)
			if raw == "" {
				continue
			}
			rng, err := parseDamageRange(raw)
			if err != nil {
				report.addIssue(Issue{Index: index, Name: name, Field: dk.key, Reason: err.Error()})
				continue
			}
			switch dk.element {
			case "neutral":
				profile.Neutral = rng
			case "earth":
				profile.Earth = rng
			case "thunder":
				profile.Thunder = rng
			case "water":
				profile.Water = rng
			case "fire":
				profile.Fire = rng
			case "air":
				profile.Air = rng
			}
		}
		item.Damage = profile
	}

	item.QuestReq = r.str("quest")
	item.Untradeable = strings.EqualFold(r.str("drop"), "never")

	for _, field := range r.badFields {
		report.addIssue(Issue{Index: index, Name: name, Field: field, Reason: "value is not a number, defaulting to zero"})
	}

	return item, true
}
