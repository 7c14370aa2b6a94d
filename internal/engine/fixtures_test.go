package engine

import (
	"github.com/wynnforge/wynnforge/internal/domain"
)

// testWand returns a mage weapon with the given neutral damage range
func testWand(name string, minDmg, maxDmg int) domain.Item {
	return domain.Item{
		Name:        name,
		Slot:        domain.SlotWeapon,
		WeaponType:  domain.WeaponWand,
		Tier:        domain.TierUnique,
		Level:       50,
		AttackSpeed: domain.AttackSpeedNormal,
		Damage:      &domain.DamageProfile{Neutral: domain.DamageRange{minDmg, maxDmg}},
	}
}

// testArmor returns an armor piece with optional identifications
func testArmor(name string, slot domain.Slot, ids domain.StatMap) domain.Item {
	return domain.Item{
		Name:            name,
		Slot:            slot,
		Tier:            domain.TierUnique,
		Level:           50,
		Health:          100,
		Identifications: ids,
	}
}

// testAccessory returns a ring, bracelet or necklace
func testAccessory(name string, slot domain.Slot, ids domain.StatMap) domain.Item {
	return domain.Item{
		Name:            name,
		Slot:            slot,
		Tier:            domain.TierUnique,
		Level:           40,
		Identifications: ids,
	}
}

// mandatoryCatalog returns exactly one mage candidate per mandatory slot
func mandatoryCatalog() []domain.Item {
	return []domain.Item{
		testWand("Quartz Wand", 40, 60),
		testArmor("Sandstone Helm", domain.SlotHelmet, nil),
		testArmor("Sandstone Chest", domain.SlotChestplate, nil),
		testArmor("Sandstone Legs", domain.SlotLeggings, nil),
		testArmor("Sandstone Boots", domain.SlotBoots, nil),
	}
}

// pairedCatalog returns two candidates per mandatory slot, 32 combinations
func pairedCatalog() []domain.Item {
	return []domain.Item{
		testWand("Quartz Wand", 40, 60),
		testWand("Comet Wand", 100, 140),
		testArmor("Sandstone Helm", domain.SlotHelmet, nil),
		testArmor("Granite Helm", domain.SlotHelmet, nil),
		testArmor("Sandstone Chest", domain.SlotChestplate, nil),
		testArmor("Granite Chest", domain.SlotChestplate, nil),
		testArmor("Sandstone Legs", domain.SlotLeggings, nil),
		testArmor("Granite Legs", domain.SlotLeggings, nil),
		testArmor("Sandstone Boots", domain.SlotBoots, nil),
		testArmor("Granite Boots", domain.SlotBoots, nil),
	}
}

// buildNames extracts the weapon names of the result in order
func buildNames(result *Result) []string {
	names := make([]string, len(result.Builds))
	for i, sb := range result.Builds {
		names[i] = sb.Build.Weapon.Name
	}
	return names
}
