package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEnvSchema(t *testing.T) {
	t.Run("absent version passes", func(t *testing.T) {
		t.Setenv("ENV_SCHEMA_VERSION", "")
		require.NoError(t, CheckEnvSchema())
	})

	t.Run("matching version passes", func(t *testing.T) {
		t.Setenv("ENV_SCHEMA_VERSION", EnvSchemaVersion)
		require.NoError(t, CheckEnvSchema())
	})

	t.Run("stale version rejected", func(t *testing.T) {
		t.Setenv("ENV_SCHEMA_VERSION", "0.3")
		err := CheckEnvSchema()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0.3")
		assert.Contains(t, err.Error(), EnvSchemaVersion)
	})
}

func TestMissingEnv(t *testing.T) {
	t.Setenv("WYNNFORGE_TEST_SET", "value")
	t.Setenv("WYNNFORGE_TEST_EMPTY", "")

	missing := MissingEnv([]string{"WYNNFORGE_TEST_SET", "WYNNFORGE_TEST_EMPTY", "WYNNFORGE_TEST_UNSET"})
	assert.Equal(t, []string{"WYNNFORGE_TEST_EMPTY", "WYNNFORGE_TEST_UNSET"}, missing)

	assert.Empty(t, MissingEnv(nil))
}

func TestEnvWarnings(t *testing.T) {
	// Pin everything EnvWarnings inspects so host environment leakage
	// cannot flip the subtests
	clean := func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "s3cret")
		t.Setenv("API_KEY", "a1b2c3d4")
		t.Setenv("CATALOG_URL", "https://items.example.com/db.json")
	}

	t.Run("clean environment", func(t *testing.T) {
		clean(t)
		assert.Empty(t, EnvWarnings())
	})

	t.Run("placeholder secrets flagged", func(t *testing.T) {
		clean(t)
		t.Setenv("DB_PASSWORD", "change_this_secure_password")
		t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")

		warnings := EnvWarnings()
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "DB_PASSWORD")
		assert.Contains(t, warnings[1], "API_KEY")
	})

	t.Run("plain http catalog flagged", func(t *testing.T) {
		clean(t)
		t.Setenv("CATALOG_URL", "http://items.example.com/db.json")

		warnings := EnvWarnings()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "CATALOG_URL")
	})
}
