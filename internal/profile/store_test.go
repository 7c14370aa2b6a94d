package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wynnforge/wynnforge/internal/domain"
)

func TestNewStoreSeedsPresets(t *testing.T) {
	s := NewStore()

	def, ok := s.Get("default")
	require.True(t, ok)
	assert.Equal(t, domain.DefaultScoreWeights(), def.Weights)

	for _, style := range domain.Playstyles {
		p, ok := s.Get(string(style))
		require.True(t, ok, "preset for %s should exist", style)
		assert.Equal(t, style.Weights(), p.Weights)
	}
}

func TestStoreGetIsCaseInsensitive(t *testing.T) {
	s := NewStore()

	p, ok := s.Get("  TANK ")
	require.True(t, ok)
	assert.Equal(t, "tank", p.Name)

	_, ok = s.Get("berserker")
	assert.False(t, ok)
}

func TestStoreWeightsFallsBack(t *testing.T) {
	s := NewStore()

	assert.Equal(t, domain.PlaystyleSpellspam.Weights(), s.Weights("spellspam"))
	assert.Equal(t, domain.DefaultScoreWeights(), s.Weights("no-such-profile"),
		"unknown names should fall back to the default weights")
}

func TestStoreLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	content := `profiles:
  - name: glass-cannon
    description: All damage, no survivability
    weights:
      dps: 1.0
      ehp: 0
      mana: 0
      skill_points: 0
  - name: Tank
    weights:
      dps: 0
      ehp: 0.001
      mana: 10
      skill_points: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s := NewStore()
	require.NoError(t, s.LoadFile(context.Background(), path))

	custom, ok := s.Get("glass-cannon")
	require.True(t, ok)
	assert.Equal(t, 1.0, custom.Weights.DPS)
	assert.Equal(t, "All damage, no survivability", custom.Description)

	// The file's Tank entry replaces the built-in preset
	tank, ok := s.Get("tank")
	require.True(t, ok)
	assert.Equal(t, 0.001, tank.Weights.EHP)
	assert.NotEqual(t, domain.PlaystyleTank.Weights(), tank.Weights)
}

func TestStoreLoadFileErrors(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		err := s.LoadFile(ctx, filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("profiles: [unclosed"), 0600))
		assert.Error(t, s.LoadFile(ctx, path))
	})

	t.Run("nameless entry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nameless.yaml")
		content := "profiles:\n  - description: no name here\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		assert.Error(t, s.LoadFile(ctx, path))
	})
}

func TestStoreAllSorted(t *testing.T) {
	s := NewStore()
	all := s.All()

	require.Len(t, all, 5, "default plus four playstyle presets")
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name, "profiles should be sorted by name")
	}
}
