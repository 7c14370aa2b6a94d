package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["name", "count"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"count": {"type": "integer", "minimum": 0}
	}
}`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	validator := NewSchemaValidator()
	schemaPath := writeSchema(t, testSchema)

	t.Run("conforming document", func(t *testing.T) {
		err := validator.ValidateBytes([]byte(`{"name": "widget", "count": 3}`), schemaPath)
		assert.NoError(t, err)
	})

	t.Run("missing required property", func(t *testing.T) {
		err := validator.ValidateBytes([]byte(`{"name": "widget"}`), schemaPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("wrong property type names the location", func(t *testing.T) {
		err := validator.ValidateBytes([]byte(`{"name": "widget", "count": "three"}`), schemaPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/count")
	})

	t.Run("document that is not JSON", func(t *testing.T) {
		err := validator.ValidateBytes([]byte(`{broken`), schemaPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid JSON")
	})

	t.Run("repeat validations reuse the compiled schema", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			err := validator.ValidateBytes([]byte(`{"name": "widget", "count": 3}`), schemaPath)
			assert.NoError(t, err)
		}
	})
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()
	schemaPath := writeSchema(t, testSchema)

	t.Run("conforming file", func(t *testing.T) {
		dataPath := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(dataPath, []byte(`{"name": "widget", "count": 1}`), 0o600))
		assert.NoError(t, validator.ValidateFile(dataPath, schemaPath))
	})

	t.Run("missing data file", func(t *testing.T) {
		err := validator.ValidateFile(filepath.Join(t.TempDir(), "absent.json"), schemaPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read data file")
	})
}

func TestSchemaValidator_SchemaProblems(t *testing.T) {
	validator := NewSchemaValidator()

	t.Run("missing schema file", func(t *testing.T) {
		err := validator.ValidateBytes([]byte(`{}`), filepath.Join(t.TempDir(), "absent.schema.json"))
		require.Error(t, err)
	})

	t.Run("schema that is not JSON", func(t *testing.T) {
		schemaPath := writeSchema(t, `{not valid`)
		err := validator.ValidateBytes([]byte(`{}`), schemaPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid JSON")
	})
}

func TestLocateSchema_ResolvesFromModuleRoot(t *testing.T) {
	// Relative project paths resolve by walking up from the package
	// directory to the module root.
	path, err := locateSchema(filepath.Join("configs", "schema", "item.schema.json"))
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestLocateSchema_MissingRelativePath(t *testing.T) {
	_, err := locateSchema(filepath.Join("configs", "schema", "no-such.schema.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}
