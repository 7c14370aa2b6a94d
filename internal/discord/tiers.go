package discord

import "github.com/wynnforge/wynnforge/internal/domain"

// Embed accent colors per rarity, matching the in-game name colors
var tierColors = map[domain.Tier]int{
	domain.TierNormal:    0xd5d6d2,
	domain.TierUnique:    0xf5e96d,
	domain.TierRare:      0xf27fe8,
	domain.TierSet:       0x5bef60,
	domain.TierLegendary: 0x5fccf2,
	domain.TierFabled:    0xf25757,
	domain.TierMythic:    0xaa4ff2,
}

// Rarity order for picking the accent color of a whole build
var tierRank = map[domain.Tier]int{
	domain.TierNormal:    0,
	domain.TierUnique:    1,
	domain.TierSet:       2,
	domain.TierRare:      3,
	domain.TierLegendary: 4,
	domain.TierFabled:    5,
	domain.TierMythic:    6,
}

func colorForTier(t domain.Tier) int {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return tierColors[domain.TierNormal]
}
