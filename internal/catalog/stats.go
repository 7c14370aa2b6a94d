package catalog

import (
	"fmt"

	"github.com/wynnforge/wynnforge/internal/domain"
)

// Statistics summarizes the loaded catalog for the stats endpoints
type Statistics struct {
	TotalItems  int                 `json:"total_items"`
	ByTier      map[domain.Tier]int `json:"by_tier"`
	BySlot      map[domain.Slot]int `json:"by_slot"`
	ByLevelBand map[string]int      `json:"by_level_band"`
	MinLevel    int                 `json:"min_level"`
	MaxLevel    int                 `json:"max_level"`
}

// levelBand buckets a level into its decade label, for example "50-59"
func levelBand(level int) string {
	lo := (level / LevelBandWidth) * LevelBandWidth
	return fmt.Sprintf("%d-%d", lo, lo+LevelBandWidth-1)
}

// computeStatistics builds the summary for one catalog snapshot
func computeStatistics(items []domain.Item) Statistics {
	stats := Statistics{
		TotalItems:  len(items),
		ByTier:      make(map[domain.Tier]int),
		BySlot:      make(map[domain.Slot]int),
		ByLevelBand: make(map[string]int),
	}

	for i := range items {
		it := &items[i]
		stats.ByTier[it.Tier]++
		stats.BySlot[it.Slot]++
		stats.ByLevelBand[levelBand(it.Level)]++

		if i == 0 || it.Level < stats.MinLevel {
			stats.MinLevel = it.Level
		}
		if it.Level > stats.MaxLevel {
			stats.MaxLevel = it.Level
		}
	}

	return stats
}
