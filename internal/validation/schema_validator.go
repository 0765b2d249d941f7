package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against JSON schemas read from a file system.
// Compiled schemas are cached, so one validator can serve every load of a config file.
type SchemaValidator struct {
	schemas fs.FS

	mu       sync.Mutex
	compiler *jsonschema.Compiler
	compiled map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator resolving schema paths inside schemas
func NewSchemaValidator(schemas fs.FS) *SchemaValidator {
	return &SchemaValidator{
		schemas:  schemas,
		compiler: jsonschema.NewCompiler(),
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates the JSON file at dataPath on disk
func (v *SchemaValidator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

// ValidateBytes validates a JSON document
func (v *SchemaValidator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func (v *SchemaValidator) schema(path string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.compiled[path]; ok {
		return s, nil
	}

	raw, err := fs.ReadFile(v.schemas, path)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	if err := v.compiler.AddResource(path, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	s, err := v.compiler.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.compiled[path] = s
	return s, nil
}

// formatValidationError lists every failing location, one per line
func formatValidationError(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validation error: %w", err)
	}
	var lines []string
	collectErrors(verr, &lines)
	return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
}

// collectErrors reports leaf causes only; parents just say "some child failed"
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")

	keyword := "schema"
	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			keyword = strings.Join(path, ".")
		}
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keyword)
}
