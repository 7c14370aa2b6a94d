package engine_bench

import (
	"context"
	"fmt"
	"testing"

	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/engine"
)

// --- Synthetic catalog (the engine is pure CPU; no stubs needed) ---

func benchWand(name string, minDmg, maxDmg int, ids domain.StatMap) domain.Item {
	return domain.Item{
		Name:            name,
		Slot:            domain.SlotWeapon,
		WeaponType:      domain.WeaponWand,
		Tier:            domain.TierUnique,
		Level:           60,
		AttackSpeed:     domain.AttackSpeedNormal,
		Damage:          &domain.DamageProfile{Neutral: domain.DamageRange{minDmg, maxDmg}},
		Identifications: ids,
	}
}

func benchArmor(name string, slot domain.Slot, hp int, ids domain.StatMap) domain.Item {
	return domain.Item{
		Name:            name,
		Slot:            slot,
		Tier:            domain.TierRare,
		Level:           55,
		Health:          hp,
		Identifications: ids,
	}
}

func benchAccessory(name string, slot domain.Slot, ids domain.StatMap) domain.Item {
	return domain.Item{
		Name:            name,
		Slot:            slot,
		Tier:            domain.TierRare,
		Level:           50,
		Identifications: ids,
	}
}

// benchCatalog builds a catalog with n candidates per armor slot. Ring count
// is fixed at four so the pair loop stays a constant factor.
func benchCatalog(n int) []domain.Item {
	catalog := []domain.Item{
		benchWand("Quartz Wand", 40, 60, domain.StatMap{domain.StatManaRegen: 6}),
		benchWand("Comet Wand", 100, 140, domain.StatMap{domain.StatSpellDamagePct: 15}),
	}

	armorSlots := []domain.Slot{
		domain.SlotHelmet,
		domain.SlotChestplate,
		domain.SlotLeggings,
		domain.SlotBoots,
	}
	for _, slot := range armorSlots {
		for i := 0; i < n; i++ {
			catalog = append(catalog, benchArmor(
				fmt.Sprintf("%s %d", slot, i),
				slot,
				800+100*i,
				domain.StatMap{domain.StatSpellDamagePct: 5 + i, domain.StatHealthBonus: 200 * i},
			))
		}
	}

	for i := 0; i < 4; i++ {
		catalog = append(catalog, benchAccessory(
			fmt.Sprintf("Ring %d", i),
			domain.SlotRing,
			domain.StatMap{domain.StatManaRegen: 2 + i},
		))
	}
	catalog = append(catalog,
		benchAccessory("Bead Bracelet", domain.SlotBracelet, domain.StatMap{domain.StatSpellDamagePct: 8}),
		benchAccessory("Coal Necklace", domain.SlotNecklace, domain.StatMap{domain.StatHealthBonus: 400}),
	)

	return catalog
}

func benchRequest() engine.Request {
	return engine.Request{
		Class:          domain.ClassMage,
		LevelMin:       1,
		LevelMax:       80,
		TopN:           5,
		CharacterLevel: 80,
	}
}

// --- Benchmark Functions ---

// BenchmarkGenerateBuilds exercises the full pipeline on catalogs of
// increasing width. Three candidates per armor slot is already 972
// combinations before the ring pair loop.
func BenchmarkGenerateBuilds(b *testing.B) {
	for _, n := range []int{2, 3, 4} {
		b.Run(fmt.Sprintf("armor_width_%d", n), func(b *testing.B) {
			svc := engine.NewService(engine.Options{})
			catalog := benchCatalog(n)
			req := benchRequest()
			ctx := context.Background()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				result, err := svc.GenerateBuilds(ctx, catalog, req)
				if err != nil {
					b.Fatalf("GenerateBuilds failed: %v", err)
				}
				if len(result.Builds) == 0 {
					b.Fatal("GenerateBuilds returned no builds")
				}
			}
		})
	}
}

// BenchmarkGenerateBuilds_Parallel shards the weapon loop across four
// goroutines to measure the fan-out overhead against the sequential path.
func BenchmarkGenerateBuilds_Parallel(b *testing.B) {
	svc := engine.NewService(engine.Options{Workers: 4})
	catalog := benchCatalog(4)
	req := benchRequest()
	req.Workers = 4
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := svc.GenerateBuilds(ctx, catalog, req)
		if err != nil {
			b.Fatalf("GenerateBuilds failed: %v", err)
		}
		if len(result.Builds) == 0 {
			b.Fatal("GenerateBuilds returned no builds")
		}
	}
}

// BenchmarkScoreBuild isolates stat aggregation and scoring for one build.
func BenchmarkScoreBuild(b *testing.B) {
	svc := engine.NewService(engine.Options{})
	catalog := benchCatalog(1)

	wand := catalog[0]
	helm := catalog[2]
	chest := catalog[3]
	legs := catalog[4]
	boots := catalog[5]
	ring1 := catalog[6]
	ring2 := catalog[7]

	build := &domain.Build{
		Class:      domain.ClassMage,
		Weapon:     &wand,
		Helmet:     &helm,
		Chestplate: &chest,
		Leggings:   &legs,
		Boots:      &boots,
		Rings:      [2]*domain.Item{&ring1, &ring2},
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scored, err := svc.ScoreBuild(ctx, build, 80, 200)
		if err != nil {
			b.Fatalf("ScoreBuild failed: %v", err)
		}
		if scored.Score == 0 {
			b.Fatal("ScoreBuild returned a zero score")
		}
	}
}
