package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wynnforge/wynnforge/internal/domain"
)

func TestSelectCandidatesClassFilter(t *testing.T) {
	bow := testWand("Longbow", 40, 60)
	bow.WeaponType = domain.WeaponBow

	archerHelm := testArmor("Feather Cap", domain.SlotHelmet, nil)
	archerHelm.ClassReq = domain.ClassArcher

	catalog := []domain.Item{
		testWand("Quartz Wand", 40, 60),
		bow,
		testArmor("Sandstone Helm", domain.SlotHelmet, nil),
		archerHelm,
	}

	cands := SelectCandidates(catalog, FilterOptions{
		Class:    domain.ClassMage,
		LevelMin: 1,
		LevelMax: 106,
	})

	require.Len(t, cands.Weapons, 1, "only the class weapon type should survive")
	assert.Equal(t, "Quartz Wand", cands.Weapons[0].Name)

	require.Len(t, cands.Helmets, 1, "armor locked to another class should be dropped")
	assert.Equal(t, "Sandstone Helm", cands.Helmets[0].Name)
}

func TestSelectCandidatesLevelRange(t *testing.T) {
	low := testArmor("Worn Helm", domain.SlotHelmet, nil)
	low.Level = 10
	mid := testArmor("Sandstone Helm", domain.SlotHelmet, nil)
	mid.Level = 50
	high := testArmor("Stellar Helm", domain.SlotHelmet, nil)
	high.Level = 95

	cands := SelectCandidates([]domain.Item{low, mid, high}, FilterOptions{
		Class:    domain.ClassMage,
		LevelMin: 10,
		LevelMax: 50,
	})

	require.Len(t, cands.Helmets, 2, "range bounds are inclusive")
	assert.Equal(t, "Worn Helm", cands.Helmets[0].Name)
	assert.Equal(t, "Sandstone Helm", cands.Helmets[1].Name)
}

func TestSelectCandidatesNoMythics(t *testing.T) {
	mythic := testWand("Warp", 200, 280)
	mythic.Tier = domain.TierMythic

	catalog := []domain.Item{testWand("Quartz Wand", 40, 60), mythic}

	kept := SelectCandidates(catalog, FilterOptions{
		Class:    domain.ClassMage,
		LevelMin: 1,
		LevelMax: 106,
	})
	require.Len(t, kept.Weapons, 2)

	filtered := SelectCandidates(catalog, FilterOptions{
		Class:     domain.ClassMage,
		LevelMin:  1,
		LevelMax:  106,
		NoMythics: true,
	})
	require.Len(t, filtered.Weapons, 1)
	assert.Equal(t, "Quartz Wand", filtered.Weapons[0].Name)
}

func TestSelectCandidatesPlaystyleOrdering(t *testing.T) {
	plain := testArmor("Plain Helm", domain.SlotHelmet, nil)
	caster := testArmor("Caster Helm", domain.SlotHelmet, domain.StatMap{
		domain.StatSpellDamagePct: 10,
		domain.StatManaRegen:      6,
	})

	// Catalog order puts the plain helmet first
	cands := SelectCandidates([]domain.Item{plain, caster}, FilterOptions{
		Class:     domain.ClassMage,
		Playstyle: domain.PlaystyleSpellspam,
		LevelMin:  1,
		LevelMax:  106,
	})

	require.Len(t, cands.Helmets, 2)
	assert.Equal(t, "Caster Helm", cands.Helmets[0].Name, "higher affinity should sort first")
	assert.Equal(t, "Plain Helm", cands.Helmets[1].Name)
}

func TestSelectCandidatesPlaystyleTiesKeepCatalogOrder(t *testing.T) {
	first := testArmor("First Helm", domain.SlotHelmet, nil)
	second := testArmor("Second Helm", domain.SlotHelmet, nil)

	cands := SelectCandidates([]domain.Item{first, second}, FilterOptions{
		Class:     domain.ClassMage,
		Playstyle: domain.PlaystyleMelee,
		LevelMin:  1,
		LevelMax:  106,
	})

	require.Len(t, cands.Helmets, 2)
	assert.Equal(t, "First Helm", cands.Helmets[0].Name)
	assert.Equal(t, "Second Helm", cands.Helmets[1].Name)
}

func TestSelectCandidatesElementStage(t *testing.T) {
	plain := testArmor("Plain Helm", domain.SlotHelmet, nil)
	earth := testArmor("Earth Helm", domain.SlotHelmet, domain.StatMap{
		domain.StatEarthDamagePct: 12,
	})
	dual := testArmor("Dual Helm", domain.SlotHelmet, domain.StatMap{
		domain.StatEarthDamagePct:  8,
		domain.StatEarthDefensePct: 10,
	})

	t.Run("preference ordering without boost", func(t *testing.T) {
		cands := SelectCandidates([]domain.Item{plain, earth, dual}, FilterOptions{
			Class:    domain.ClassMage,
			Elements: []domain.Element{domain.ElementEarth},
			LevelMin: 1,
			LevelMax: 106,
		})

		require.Len(t, cands.Helmets, 3, "neutral items are kept outside boost mode")
		assert.Equal(t, "Dual Helm", cands.Helmets[0].Name, "damage and defense match scores 4")
		assert.Equal(t, "Earth Helm", cands.Helmets[1].Name, "single match scores 2")
		assert.Equal(t, "Plain Helm", cands.Helmets[2].Name, "no match falls back to the neutral score")
	})

	t.Run("boost drops unmatched items", func(t *testing.T) {
		cands := SelectCandidates([]domain.Item{plain, earth, dual}, FilterOptions{
			Class:        domain.ClassMage,
			Elements:     []domain.Element{domain.ElementEarth},
			ElementBoost: true,
			LevelMin:     1,
			LevelMax:     106,
		})

		require.Len(t, cands.Helmets, 2)
		assert.Equal(t, "Dual Helm", cands.Helmets[0].Name)
		assert.Equal(t, "Earth Helm", cands.Helmets[1].Name)
	})

	t.Run("negative elemental stats do not count", func(t *testing.T) {
		cursed := testArmor("Cursed Helm", domain.SlotHelmet, domain.StatMap{
			domain.StatEarthDamagePct: -5,
		})
		cands := SelectCandidates([]domain.Item{cursed}, FilterOptions{
			Class:        domain.ClassMage,
			Elements:     []domain.Element{domain.ElementEarth},
			ElementBoost: true,
			LevelMin:     1,
			LevelMax:     106,
		})
		assert.Empty(t, cands.Helmets)
	})
}

func TestSelectCandidatesLimit(t *testing.T) {
	catalog := make([]domain.Item, 0, 30)
	for i := 0; i < 30; i++ {
		catalog = append(catalog, testAccessory(fmt.Sprintf("Ring %d", i), domain.SlotRing, nil))
	}

	cands := SelectCandidates(catalog, FilterOptions{
		Class:    domain.ClassMage,
		LevelMin: 1,
		LevelMax: 106,
	})
	assert.Len(t, cands.Rings, DefaultCandidateLimit)

	capped := SelectCandidates(catalog, FilterOptions{
		Class:    domain.ClassMage,
		LevelMin: 1,
		LevelMax: 106,
		Limit:    5,
	})
	assert.Len(t, capped.Rings, 5)
}

func TestCandidatesMissingMandatory(t *testing.T) {
	cands := SelectCandidates([]domain.Item{
		testArmor("Sandstone Helm", domain.SlotHelmet, nil),
	}, FilterOptions{
		Class:    domain.ClassMage,
		LevelMin: 1,
		LevelMax: 106,
	})

	missing := cands.MissingMandatory()
	assert.Equal(t, []domain.Slot{
		domain.SlotWeapon,
		domain.SlotChestplate,
		domain.SlotLeggings,
		domain.SlotBoots,
	}, missing, "missing slots should come back in canonical order")
}

func TestCandidatesCombinations(t *testing.T) {
	tests := []struct {
		name     string
		rings    int
		expected int64
	}{
		{"no rings counts the placeholder", 0, 1},
		{"one ring still uses the placeholder", 1, 1},
		{"two rings form one pair", 2, 1},
		{"four rings form six pairs", 4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := mandatoryCatalog()
			for i := 0; i < tt.rings; i++ {
				catalog = append(catalog, testAccessory(fmt.Sprintf("Ring %d", i), domain.SlotRing, nil))
			}
			cands := SelectCandidates(catalog, FilterOptions{
				Class:    domain.ClassMage,
				LevelMin: 1,
				LevelMax: 106,
			})
			assert.Equal(t, tt.expected, cands.Combinations())
		})
	}
}
