package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator checks JSON documents against JSON Schema files.
// Compiled schemas are cached per path, so repeated validations against
// the same schema only pay the compile cost once.
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaPath string) error
	ValidateFile(dataPath, schemaPath string) error
}

type schemaValidator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	compiled map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a schema validator with an empty cache
func NewSchemaValidator() SchemaValidator {
	return &schemaValidator{
		compiler: jsonschema.NewCompiler(),
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile reads a JSON document from disk and validates it
func (v *schemaValidator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

// ValidateBytes validates a JSON document against the schema at schemaPath
func (v *schemaValidator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schemaFor(schemaPath)
	if err != nil {
		return err
	}

	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("document is not valid JSON: %w", err)
	}

	if err := schema.Validate(document); err != nil {
		return describeFailure(err)
	}
	return nil
}

// schemaFor returns the compiled schema for a path, compiling and caching
// it on first use
func (v *schemaValidator) schemaFor(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.compiled[schemaPath]; ok {
		return schema, nil
	}

	located, err := locateSchema(schemaPath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(located)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", located, err)
	}

	var schemaDoc any
	if err := json.Unmarshal(raw, &schemaDoc); err != nil {
		return nil, fmt.Errorf("schema %s is not valid JSON: %w", located, err)
	}

	if err := v.compiler.AddResource(schemaPath, schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to register schema %s: %w", schemaPath, err)
	}
	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", schemaPath, err)
	}

	v.compiled[schemaPath] = schema
	return schema, nil
}

// locateSchema resolves a schema path. Relative paths are probed against
// the working directory, then against each ancestor directory up to the
// module root, so validation works from package test directories too.
func locateSchema(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}
	if _, err := os.Stat(schemaPath); err == nil {
		return schemaPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}

	for dir := cwd; ; {
		candidate := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("schema file not found: %s (searched upward from %s)", schemaPath, cwd)
}

// describeFailure flattens a validation error into one line per failing
// leaf, keeping the instance path and the keyword that rejected it
func describeFailure(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	var failures []string
	collectLeaves(validationErr, &failures)
	if len(failures) == 0 {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(failures, "; "))
}

// collectLeaves gathers the innermost causes, where the actual keyword
// failures live
func collectLeaves(err *jsonschema.ValidationError, out *[]string) {
	if len(err.Causes) == 0 {
		*out = append(*out, describeLeaf(err))
		return
	}
	for _, cause := range err.Causes {
		collectLeaves(cause, out)
	}
}

func describeLeaf(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	if err.ErrorKind != nil {
		if keywords := err.ErrorKind.KeywordPath(); len(keywords) > 0 {
			return fmt.Sprintf("%s failed %s", location, strings.Join(keywords, "."))
		}
	}
	return fmt.Sprintf("%s failed validation", location)
}
