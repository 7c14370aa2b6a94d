package export

import (
	"github.com/wynnforge/wynnforge/internal/domain"
)

// slotOrder is the canonical position sequence used when diffing builds
var slotOrder = []string{
	string(domain.SlotWeapon),
	string(domain.SlotHelmet),
	string(domain.SlotChestplate),
	string(domain.SlotLeggings),
	string(domain.SlotBoots),
	domain.SlotLabelRing1,
	domain.SlotLabelRing2,
	string(domain.SlotBracelet),
	string(domain.SlotNecklace),
}

// SlotRef names the item occupying one slot
type SlotRef struct {
	Slot string `json:"slot"`
	Name string `json:"name"`
}

// SlotDiff records a slot where the two builds disagree. An empty name
// means the slot is unfilled in that build.
type SlotDiff struct {
	Slot   string `json:"slot"`
	First  string `json:"first"`
	Second string `json:"second"`
}

// MetricDelta records one derived metric side by side
type MetricDelta struct {
	Metric string  `json:"metric"`
	First  float64 `json:"first"`
	Second float64 `json:"second"`
	Delta  float64 `json:"delta"`
}

// Comparison is the slot-by-slot and metric-by-metric diff of two builds
type Comparison struct {
	Identical   bool          `json:"identical"`
	Common      []SlotRef     `json:"common"`
	Differences []SlotDiff    `json:"differences"`
	FirstOnly   []SlotRef     `json:"first_only"`
	SecondOnly  []SlotRef     `json:"second_only"`
	Metrics     []MetricDelta `json:"metrics"`
}

func (s *service) Compare(first, second *domain.ScoredBuild) *Comparison {
	cmp := &Comparison{
		Common:      []SlotRef{},
		Differences: []SlotDiff{},
		FirstOnly:   []SlotRef{},
		SecondOnly:  []SlotRef{},
	}

	a := equipmentByLabel(&first.Build)
	b := equipmentByLabel(&second.Build)

	for _, slot := range slotOrder {
		nameA, okA := a[slot]
		nameB, okB := b[slot]
		switch {
		case okA && okB && nameA == nameB:
			cmp.Common = append(cmp.Common, SlotRef{Slot: slot, Name: nameA})
		case okA && okB:
			cmp.Differences = append(cmp.Differences, SlotDiff{Slot: slot, First: nameA, Second: nameB})
		case okA:
			cmp.FirstOnly = append(cmp.FirstOnly, SlotRef{Slot: slot, Name: nameA})
		case okB:
			cmp.SecondOnly = append(cmp.SecondOnly, SlotRef{Slot: slot, Name: nameB})
		}
	}
	cmp.Identical = len(cmp.Differences) == 0 && len(cmp.FirstOnly) == 0 && len(cmp.SecondOnly) == 0

	cmp.Metrics = []MetricDelta{
		metricDelta("dps", first.Derived.DPS, second.Derived.DPS),
		metricDelta("effective_hp", first.Derived.EffectiveHP.Combined, second.Derived.EffectiveHP.Combined),
		metricDelta("mana_sustain", first.Derived.ManaSustain, second.Derived.ManaSustain),
		metricDelta("cost", first.Derived.Cost, second.Derived.Cost),
		metricDelta("score", first.Score, second.Score),
	}
	return cmp
}

func equipmentByLabel(b *domain.Build) map[string]string {
	byLabel := make(map[string]string)
	for _, eq := range b.Equipment() {
		byLabel[eq.Slot] = eq.Item.Name
	}
	return byLabel
}

func metricDelta(metric string, first, second float64) MetricDelta {
	return MetricDelta{
		Metric: metric,
		First:  round2(first),
		Second: round2(second),
		Delta:  round2(second - first),
	}
}
