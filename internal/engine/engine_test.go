package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wynnforge/wynnforge/internal/domain"
)

func TestGenerateBuildsSingleCandidatePerSlot(t *testing.T) {
	catalog := append(mandatoryCatalog(),
		testAccessory("Silver Ring", domain.SlotRing, nil),
		testAccessory("Gold Ring", domain.SlotRing, nil),
	)
	svc := NewService(DefaultOptions())

	result, err := svc.GenerateBuilds(context.Background(), catalog, Request{
		Class: domain.ClassMage,
		TopN:  5,
	})
	require.NoError(t, err)

	require.Len(t, result.Builds, 1, "one combination should yield exactly one build")
	assert.False(t, result.Truncated)
	assert.Equal(t, int64(1), result.Checked)
	assert.Equal(t, int64(1), result.Valid)
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, 1, result.Candidates[domain.SlotWeapon])
	assert.Equal(t, 2, result.Candidates[domain.SlotRing])
	assert.Equal(t, 0, result.Candidates[domain.SlotBracelet])

	build := result.Builds[0].Build
	assert.True(t, build.Complete(), "all mandatory slots should be filled")
	assert.Equal(t, 2, build.RingCount(), "both rings should be equipped")
	assert.Nil(t, build.Bracelet, "empty bracelet list should leave the slot open")
	assert.Nil(t, build.Necklace, "empty necklace list should leave the slot open")
	assert.Greater(t, result.Builds[0].Score, 0.0)
}

func TestGenerateBuildsSingleRingLeavesSlotsOpen(t *testing.T) {
	catalog := append(mandatoryCatalog(),
		testAccessory("Silver Ring", domain.SlotRing, nil),
	)
	svc := NewService(DefaultOptions())

	result, err := svc.GenerateBuilds(context.Background(), catalog, Request{
		Class: domain.ClassMage,
		TopN:  5,
	})
	require.NoError(t, err)

	require.Len(t, result.Builds, 1)
	assert.Equal(t, 0, result.Builds[0].Build.RingCount(),
		"a single ring cannot fill a pair, both ring slots stay open")
}

func TestGenerateBuildsTopNZero(t *testing.T) {
	svc := NewService(DefaultOptions())

	result, err := svc.GenerateBuilds(context.Background(), mandatoryCatalog(), Request{
		Class: domain.ClassMage,
		TopN:  0,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Builds)
	assert.Empty(t, result.Diagnostics)
	assert.False(t, result.Truncated)
	assert.Equal(t, int64(0), result.Checked, "no combinations should be inspected")
}

func TestGenerateBuildsMissingMandatorySlot(t *testing.T) {
	t.Run("no helmet candidates", func(t *testing.T) {
		catalog := []domain.Item{
			testWand("Quartz Wand", 40, 60),
			testArmor("Sandstone Chest", domain.SlotChestplate, nil),
			testArmor("Sandstone Legs", domain.SlotLeggings, nil),
			testArmor("Sandstone Boots", domain.SlotBoots, nil),
		}
		svc := NewService(DefaultOptions())

		result, err := svc.GenerateBuilds(context.Background(), catalog, Request{
			Class: domain.ClassMage,
			TopN:  5,
		})
		require.NoError(t, err)

		assert.Empty(t, result.Builds)
		assert.Contains(t, result.Diagnostics, "no candidates for slot helmet")
	})

	t.Run("wrong weapon type for class", func(t *testing.T) {
		catalog := mandatoryCatalog()
		svc := NewService(DefaultOptions())

		// Archer needs a bow, the catalog only has a wand
		result, err := svc.GenerateBuilds(context.Background(), catalog, Request{
			Class: domain.ClassArcher,
			TopN:  5,
		})
		require.NoError(t, err)

		assert.Empty(t, result.Builds)
		assert.Contains(t, result.Diagnostics, "no candidates for slot weapon")
	})
}

func TestGenerateBuildsTruncation(t *testing.T) {
	svc := NewService(Options{MaxCombinations: 10})

	result, err := svc.GenerateBuilds(context.Background(), pairedCatalog(), Request{
		Class: domain.ClassMage,
		TopN:  50,
	})
	require.NoError(t, err)

	assert.True(t, result.Truncated, "32 combinations should exceed the cap of 10")
	assert.Equal(t, int64(10), result.Checked)
	assert.Len(t, result.Builds, 10, "every inspected combination is valid here")
}

func TestGenerateBuildsEarlyExit(t *testing.T) {
	svc := NewService(DefaultOptions())

	result, err := svc.GenerateBuilds(context.Background(), pairedCatalog(), Request{
		Class: domain.ClassMage,
		TopN:  3,
	})
	require.NoError(t, err)

	assert.Len(t, result.Builds, 3)
	assert.False(t, result.Truncated, "early exit at topN is not truncation")
	assert.Equal(t, int64(3), result.Checked, "enumeration should stop once topN builds are found")
}

func TestGenerateBuildsThresholdRejectsAll(t *testing.T) {
	svc := NewService(DefaultOptions())

	result, err := svc.GenerateBuilds(context.Background(), pairedCatalog(), Request{
		Class:  domain.ClassMage,
		TopN:   5,
		MinDPS: 1e9,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Builds)
	assert.False(t, result.Truncated)
	assert.Equal(t, int64(32), result.Checked, "the full space should be walked when nothing passes")
	assert.Equal(t, int64(0), result.Valid)
	assert.Equal(t, int64(32), result.Rejections.LowDPS, "every candidate should be tallied against the dps floor")
	assert.Equal(t, int64(32), result.Rejections.Total())
}

func TestGenerateBuildsSkillPointCap(t *testing.T) {
	catalog := mandatoryCatalog()
	// Two pieces at 150 strength each push the requirement total to 300
	catalog[1].Requirements = domain.SkillVector{Strength: 150}
	catalog[2].Requirements = domain.SkillVector{Strength: 150}

	svc := NewService(DefaultOptions())

	t.Run("default cap rejects", func(t *testing.T) {
		result, err := svc.GenerateBuilds(context.Background(), catalog, Request{
			Class: domain.ClassMage,
			TopN:  5,
		})
		require.NoError(t, err)
		assert.Empty(t, result.Builds, "300 total requirement exceeds the default 200 cap")
		assert.Equal(t, int64(1), result.Rejections.SkillPoints)
	})

	t.Run("raised cap accepts", func(t *testing.T) {
		result, err := svc.GenerateBuilds(context.Background(), catalog, Request{
			Class:          domain.ClassMage,
			TopN:           5,
			MaxSkillPoints: 400,
		})
		require.NoError(t, err)
		assert.Len(t, result.Builds, 1)
	})
}

func TestGenerateBuildsCustomScorer(t *testing.T) {
	catalog := pairedCatalog()
	svc := NewService(DefaultOptions())

	base := Request{Class: domain.ClassMage, TopN: 32}

	byDefault, err := svc.GenerateBuilds(context.Background(), catalog, base)
	require.NoError(t, err)
	require.NotEmpty(t, byDefault.Builds)
	assert.Equal(t, "Comet Wand", byDefault.Builds[0].Build.Weapon.Name,
		"default weights favor the higher damage weapon")

	inverted := base
	inverted.CustomScorer = "-dps"
	byCustom, err := svc.GenerateBuilds(context.Background(), catalog, inverted)
	require.NoError(t, err)
	require.NotEmpty(t, byCustom.Builds)
	assert.Empty(t, byCustom.Warnings)
	assert.Equal(t, "Quartz Wand", byCustom.Builds[0].Build.Weapon.Name,
		"negated dps should rank the weaker weapon first")
}

func TestGenerateBuildsCustomScorerCompileFallback(t *testing.T) {
	svc := NewService(DefaultOptions())

	req := Request{
		Class:        domain.ClassMage,
		TopN:         5,
		CustomScorer: "dps +",
	}
	result, err := svc.GenerateBuilds(context.Background(), mandatoryCatalog(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Warnings, "a broken expression should surface a warning")
	require.Len(t, result.Builds, 1, "generation should continue on default weights")

	plain, err := svc.GenerateBuilds(context.Background(), mandatoryCatalog(), Request{
		Class: domain.ClassMage,
		TopN:  5,
	})
	require.NoError(t, err)
	assert.InDelta(t, plain.Builds[0].Score, result.Builds[0].Score, 0.0001,
		"fallback scoring should match the default weights")
}

func TestGenerateBuildsIdempotent(t *testing.T) {
	svc := NewService(DefaultOptions())
	req := Request{Class: domain.ClassMage, Playstyle: domain.PlaystyleSpellspam, TopN: 10}

	first, err := svc.GenerateBuilds(context.Background(), pairedCatalog(), req)
	require.NoError(t, err)
	second, err := svc.GenerateBuilds(context.Background(), pairedCatalog(), req)
	require.NoError(t, err)

	require.Equal(t, len(first.Builds), len(second.Builds))
	assert.Equal(t, buildNames(first), buildNames(second), "same request should give the same order")
	for i := range first.Builds {
		assert.Equal(t, first.Builds[i].Score, second.Builds[i].Score)
	}
}

func TestGenerateBuildsParallelMatchesSequential(t *testing.T) {
	catalog := pairedCatalog()
	svc := NewService(DefaultOptions())

	// topN above the space size so neither run early-exits
	sequential, err := svc.GenerateBuilds(context.Background(), catalog, Request{
		Class: domain.ClassMage,
		TopN:  100,
	})
	require.NoError(t, err)

	parallel, err := svc.GenerateBuilds(context.Background(), catalog, Request{
		Class:   domain.ClassMage,
		TopN:    100,
		Workers: 4,
	})
	require.NoError(t, err)

	require.Equal(t, len(sequential.Builds), len(parallel.Builds))
	assert.Equal(t, buildNames(sequential), buildNames(parallel),
		"a full walk should merge to the sequential order regardless of shard count")
	assert.Equal(t, sequential.Checked, parallel.Checked)
}

func TestGenerateBuildsInvalidRequest(t *testing.T) {
	svc := NewService(DefaultOptions())
	catalog := mandatoryCatalog()

	tests := []struct {
		name    string
		req     Request
		catalog []domain.Item
		wantErr error
	}{
		{"unknown class", Request{Class: "paladin", TopN: 5}, catalog, domain.ErrUnknownClass},
		{"missing class", Request{TopN: 5}, catalog, domain.ErrInvalidInput},
		{"unknown playstyle", Request{Class: domain.ClassMage, Playstyle: "zerg", TopN: 5}, catalog, domain.ErrUnknownPlaystyle},
		{"unknown element", Request{Class: domain.ClassMage, Elements: []domain.Element{"void"}, TopN: 5}, catalog, domain.ErrUnknownElement},
		{"inverted level range", Request{Class: domain.ClassMage, LevelMin: 80, LevelMax: 20, TopN: 5}, catalog, domain.ErrInvalidLevel},
		{"negative topN", Request{Class: domain.ClassMage, TopN: -1}, catalog, domain.ErrInvalidTopN},
		{"empty catalog", Request{Class: domain.ClassMage, TopN: 5}, nil, domain.ErrCatalogEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GenerateBuilds(context.Background(), tt.catalog, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScoreBuild(t *testing.T) {
	weapon := testWand("Quartz Wand", 40, 60)
	helmet := testArmor("Sandstone Helm", domain.SlotHelmet, domain.StatMap{
		domain.StatManaRegen: 6,
	})
	build := &domain.Build{
		Class:  domain.ClassMage,
		Weapon: &weapon,
		Helmet: &helmet,
	}
	svc := NewService(DefaultOptions())

	scored, err := svc.ScoreBuild(context.Background(), build, 100, 0)
	require.NoError(t, err)

	assert.Equal(t, 6, scored.Stats.ManaRegen)
	assert.Greater(t, scored.Derived.DPS, 0.0)
	expected := Score(scored.Derived, domain.DefaultScoreWeights())
	assert.Equal(t, expected, scored.Score, "explicit builds score with default weights")
}

func TestScoreBuildInvalid(t *testing.T) {
	svc := NewService(DefaultOptions())

	_, err := svc.ScoreBuild(context.Background(), nil, 100, 200)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ScoreBuild(context.Background(), &domain.Build{Class: "paladin"}, 100, 200)
	assert.ErrorIs(t, err, domain.ErrUnknownClass)
}
