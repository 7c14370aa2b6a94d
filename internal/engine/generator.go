package engine

import (
	"github.com/wynnforge/wynnforge/internal/domain"
)

// ringPairs returns every unordered pair of distinct rings in list order,
// matching the enumeration order of the candidate list. With fewer than two
// rings a single empty pair keeps the loop alive so ringless builds are
// still produced.
func ringPairs(rings []*domain.Item) [][2]*domain.Item {
	if len(rings) < 2 {
		return [][2]*domain.Item{{}}
	}
	pairs := make([][2]*domain.Item, 0, len(rings)*(len(rings)-1)/2)
	for i := 0; i < len(rings); i++ {
		for j := i + 1; j < len(rings); j++ {
			pairs = append(pairs, [2]*domain.Item{rings[i], rings[j]})
		}
	}
	return pairs
}

// withPlaceholder substitutes a single nil entry for an empty accessory list
// so the nested loops never short-circuit on an optional slot
func withPlaceholder(list []*domain.Item) []*domain.Item {
	if len(list) == 0 {
		return []*domain.Item{nil}
	}
	return list
}

// Generator walks the equipment cross product in a fixed deterministic
// order: weapon, helmet, chestplate, leggings, boots, ring pair, bracelet,
// necklace, innermost varying fastest.
type Generator struct {
	class     domain.Class
	weapons   []*domain.Item
	helmets   []*domain.Item
	chests    []*domain.Item
	leggings  []*domain.Item
	boots     []*domain.Item
	pairs     [][2]*domain.Item
	bracelets []*domain.Item
	necklaces []*domain.Item

	// perWeapon is the number of combinations under one weapon, used to
	// derive globally consistent sequence indices per shard
	perWeapon int64
}

// NewGenerator prepares the enumeration state for one candidate set
func NewGenerator(class domain.Class, c *Candidates) *Generator {
	g := &Generator{
		class:     class,
		weapons:   c.Weapons,
		helmets:   c.Helmets,
		chests:    c.Chestplates,
		leggings:  c.Leggings,
		boots:     c.Boots,
		pairs:     ringPairs(c.Rings),
		bracelets: withPlaceholder(c.Bracelets),
		necklaces: withPlaceholder(c.Necklaces),
	}
	g.perWeapon = int64(len(g.helmets)) * int64(len(g.chests)) * int64(len(g.leggings)) *
		int64(len(g.boots)) * int64(len(g.pairs)) * int64(len(g.bracelets)) * int64(len(g.necklaces))
	return g
}

// Total returns the raw combination count the full enumeration would visit
func (g *Generator) Total() int64 {
	return int64(len(g.weapons)) * g.perWeapon
}

// Enumerate visits every combination in sequence order. The build passed to
// visit is reused between calls and must be copied if retained. Returning
// false stops enumeration.
func (g *Generator) Enumerate(visit func(seq int64, b *domain.Build) bool) {
	g.EnumerateShard(0, 1, visit)
}

// EnumerateShard visits the combinations whose weapon index belongs to the
// given shard. Sequence indices are identical to a full enumeration, so
// results merged across shards keep a deterministic order.
func (g *Generator) EnumerateShard(shard, shards int, visit func(seq int64, b *domain.Build) bool) {
	if shards < 1 {
		shards = 1
	}
	build := domain.Build{Class: g.class}
	for w := shard; w < len(g.weapons); w += shards {
		seq := int64(w) * g.perWeapon
		build.Weapon = g.weapons[w]
		for _, helmet := range g.helmets {
			build.Helmet = helmet
			for _, chest := range g.chests {
				build.Chestplate = chest
				for _, legs := range g.leggings {
					build.Leggings = legs
					for _, boots := range g.boots {
						build.Boots = boots
						for _, pair := range g.pairs {
							build.Rings = pair
							for _, bracelet := range g.bracelets {
								build.Bracelet = bracelet
								for _, necklace := range g.necklaces {
									build.Necklace = necklace
									if !visit(seq, &build) {
										return
									}
									seq++
								}
							}
						}
					}
				}
			}
		}
	}
}
