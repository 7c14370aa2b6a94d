package engine

import (
	"sort"

	"github.com/wynnforge/wynnforge/internal/domain"
)

// FilterOptions selects and orders the candidate items for each slot
type FilterOptions struct {
	Class        domain.Class
	Playstyle    domain.Playstyle
	Elements     []domain.Element
	ElementBoost bool
	LevelMin     int
	LevelMax     int
	NoMythics    bool

	// Limit caps each slot's list after scoring. Zero means the default.
	Limit int
}

// Candidates holds the ordered per-slot lists the generator enumerates.
// Item pointers reference the caller's catalog and must not be mutated.
type Candidates struct {
	Weapons     []*domain.Item
	Helmets     []*domain.Item
	Chestplates []*domain.Item
	Leggings    []*domain.Item
	Boots       []*domain.Item
	Rings       []*domain.Item
	Bracelets   []*domain.Item
	Necklaces   []*domain.Item
}

// Counts reports the list size per slot
func (c *Candidates) Counts() map[domain.Slot]int {
	counts := make(map[domain.Slot]int, len(domain.Slots))
	for _, slot := range domain.Slots {
		counts[slot] = len(c.bySlot(slot))
	}
	return counts
}

// MissingMandatory returns the mandatory slots that ended up with no
// candidates, in canonical slot order
func (c *Candidates) MissingMandatory() []domain.Slot {
	var missing []domain.Slot
	for _, slot := range domain.MandatorySlots {
		if len(c.bySlot(slot)) == 0 {
			missing = append(missing, slot)
		}
	}
	return missing
}

// Combinations returns the raw search-space size the generator would walk,
// accounting for ring pairing and accessory placeholders
func (c *Candidates) Combinations() int64 {
	total := int64(len(c.Weapons)) * int64(len(c.Helmets)) * int64(len(c.Chestplates)) *
		int64(len(c.Leggings)) * int64(len(c.Boots))
	total *= int64(len(ringPairs(c.Rings)))
	total *= int64(max(1, len(c.Bracelets)))
	total *= int64(max(1, len(c.Necklaces)))
	return total
}

func (c *Candidates) bySlot(slot domain.Slot) []*domain.Item {
	switch slot {
	case domain.SlotWeapon:
		return c.Weapons
	case domain.SlotHelmet:
		return c.Helmets
	case domain.SlotChestplate:
		return c.Chestplates
	case domain.SlotLeggings:
		return c.Leggings
	case domain.SlotBoots:
		return c.Boots
	case domain.SlotRing:
		return c.Rings
	case domain.SlotBracelet:
		return c.Bracelets
	case domain.SlotNecklace:
		return c.Necklaces
	}
	return nil
}

// SelectCandidates partitions the catalog into per-slot lists, applies the
// class, level and tier filters, orders each list by playstyle affinity and
// element preference, and truncates it to the candidate limit. Catalog order
// is preserved between equally scored items.
func SelectCandidates(catalog []domain.Item, opts FilterOptions) *Candidates {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}

	cands := &Candidates{}
	for i := range catalog {
		it := &catalog[i]
		if !passesFilters(it, opts) {
			continue
		}
		switch it.Slot {
		case domain.SlotWeapon:
			cands.Weapons = append(cands.Weapons, it)
		case domain.SlotHelmet:
			cands.Helmets = append(cands.Helmets, it)
		case domain.SlotChestplate:
			cands.Chestplates = append(cands.Chestplates, it)
		case domain.SlotLeggings:
			cands.Leggings = append(cands.Leggings, it)
		case domain.SlotBoots:
			cands.Boots = append(cands.Boots, it)
		case domain.SlotRing:
			cands.Rings = append(cands.Rings, it)
		case domain.SlotBracelet:
			cands.Bracelets = append(cands.Bracelets, it)
		case domain.SlotNecklace:
			cands.Necklaces = append(cands.Necklaces, it)
		}
	}

	for _, slot := range domain.Slots {
		list := cands.bySlot(slot)
		list = orderByPlaystyle(list, opts.Playstyle)
		list = orderByElements(list, opts.Elements, opts.ElementBoost)
		if len(list) > limit {
			list = list[:limit]
		}
		cands.setSlot(slot, list)
	}
	return cands
}

func (c *Candidates) setSlot(slot domain.Slot, list []*domain.Item) {
	switch slot {
	case domain.SlotWeapon:
		c.Weapons = list
	case domain.SlotHelmet:
		c.Helmets = list
	case domain.SlotChestplate:
		c.Chestplates = list
	case domain.SlotLeggings:
		c.Leggings = list
	case domain.SlotBoots:
		c.Boots = list
	case domain.SlotRing:
		c.Rings = list
	case domain.SlotBracelet:
		c.Bracelets = list
	case domain.SlotNecklace:
		c.Necklaces = list
	}
}

func passesFilters(it *domain.Item, opts FilterOptions) bool {
	if it.Slot == domain.SlotWeapon {
		if it.WeaponType != opts.Class.Weapon() {
			return false
		}
	} else if it.ClassReq != "" && it.ClassReq != opts.Class {
		return false
	}
	if it.Level < opts.LevelMin || it.Level > opts.LevelMax {
		return false
	}
	if opts.NoMythics && it.Tier == domain.TierMythic {
		return false
	}
	return true
}

// orderByPlaystyle sorts by descending affinity score. Without a playstyle
// the list keeps catalog order.
func orderByPlaystyle(list []*domain.Item, style domain.Playstyle) []*domain.Item {
	if style == "" || len(list) < 2 {
		return list
	}
	sort.SliceStable(list, func(i, j int) bool {
		return style.AffinityScore(list[i]) > style.AffinityScore(list[j])
	})
	return list
}

// orderByElements scores each item by its matching elemental stats and sorts
// descending. Outside boost mode, items with no match keep a neutral score so
// nothing is dropped; in boost mode they are removed.
func orderByElements(list []*domain.Item, elements []domain.Element, boost bool) []*domain.Item {
	if len(elements) == 0 {
		return list
	}
	type scoredItem struct {
		item  *domain.Item
		score int
	}
	kept := make([]scoredItem, 0, len(list))
	for _, it := range list {
		score := elementAffinity(it, elements)
		if score == 0 {
			if boost {
				continue
			}
			score = ElementNeutralScore
		}
		kept = append(kept, scoredItem{item: it, score: score})
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})
	out := make([]*domain.Item, len(kept))
	for i, sc := range kept {
		out[i] = sc.item
	}
	return out
}

func elementAffinity(it *domain.Item, elements []domain.Element) int {
	score := 0
	for _, e := range elements {
		if it.ID(e.DamagePctKey()) > 0 {
			score += ElementMatchScore
		}
		if it.ID(e.DefensePctKey()) > 0 {
			score += ElementMatchScore
		}
	}
	return score
}
