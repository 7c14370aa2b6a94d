package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClass(t *testing.T) {
	c, err := ParseClass("  Mage ")
	assert.NoError(t, err)
	assert.Equal(t, ClassMage, c)

	_, err = ParseClass("paladin")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestClass_Weapon(t *testing.T) {
	assert.Equal(t, WeaponWand, ClassMage.Weapon())
	assert.Equal(t, WeaponBow, ClassArcher.Weapon())
	assert.Equal(t, WeaponSpear, ClassWarrior.Weapon())
	assert.Equal(t, WeaponDagger, ClassAssassin.Weapon())
	assert.Equal(t, WeaponRelik, ClassShaman.Weapon())
}

func TestClass_Number(t *testing.T) {
	// Share-format ordering is fixed
	assert.Equal(t, 0, ClassMage.Number())
	assert.Equal(t, 1, ClassArcher.Number())
	assert.Equal(t, 2, ClassWarrior.Number())
	assert.Equal(t, 3, ClassAssassin.Number())
	assert.Equal(t, 4, ClassShaman.Number())
}

func TestClassConfigFor_Mage(t *testing.T) {
	cfg, err := ClassConfigFor(ClassMage)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.BaseHealthPerLevel)
	assert.Equal(t, 20, cfg.BaseManaPerLevel)
	assert.Equal(t, 0.8, cfg.DefenseMultiplier)
	assert.Equal(t, 1.0, cfg.BaseSpellMultiplier)
	assert.Len(t, cfg.Spells, 4)
	assert.Equal(t, "Heal", cfg.Spells[0].Name)
	assert.Equal(t, 6, cfg.Spells[0].BaseCost)
}

func TestClassConfigFor_Unknown(t *testing.T) {
	_, err := ClassConfigFor("druid")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestClassConfig_BaseHealth(t *testing.T) {
	cfg, err := ClassConfigFor(ClassWarrior)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.BaseHealth(100))
	assert.Equal(t, 5, cfg.BaseHealth(1))
}

func TestClassConfig_ConversionFactor(t *testing.T) {
	// Mage conversions: 30, 30, 70, 50, 40 -> mean 44 -> 0.44
	mage, err := ClassConfigFor(ClassMage)
	require.NoError(t, err)
	assert.InDelta(t, 0.44, mage.ConversionFactor(), 1e-9)

	// Archer conversions: 40, 80, 100, 30 -> mean 62.5 -> 0.625
	archer, err := ClassConfigFor(ClassArcher)
	require.NoError(t, err)
	assert.InDelta(t, 0.625, archer.ConversionFactor(), 1e-9)

	// No conversions means damage passes through untouched
	empty := ClassConfig{Class: ClassMage}
	assert.Equal(t, 1.0, empty.ConversionFactor())
}

func TestClassConfigFor_ReturnsIndependentCopies(t *testing.T) {
	first, err := ClassConfigFor(ClassShaman)
	require.NoError(t, err)
	first.Spells[0].BaseCost = 99

	second, err := ClassConfigFor(ClassShaman)
	require.NoError(t, err)
	assert.Equal(t, 6, second.Spells[0].BaseCost)
}
