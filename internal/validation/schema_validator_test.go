package validation

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Bouquet_Go/configs"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"name": {"type": "string"},
		"petals": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func newTestValidator() *SchemaValidator {
	return NewSchemaValidator(fstest.MapFS{
		"flower.schema.json": {Data: []byte(testSchema)},
		"broken.schema.json": {Data: []byte(`{"type": `)},
	})
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"valid", `{"name": "rose", "petals": 5}`, ""},
		{"optional field left out", `{"name": "tulip"}`, ""},
		{"missing required", `{"petals": 5}`, "required"},
		{"wrong type", `{"name": "rose", "petals": "five"}`, "/petals"},
		{"below minimum", `{"name": "rose", "petals": -1}`, "minimum"},
		{"unknown field", `{"name": "rose", "thorns": true}`, "additionalProperties"},
		{"malformed JSON", `{"name": `, "failed to parse JSON data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "flower.schema.json")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchemaValidator_SchemaErrors(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateBytes([]byte(`{}`), "missing.schema.json")
	assert.ErrorContains(t, err, "failed to load schema")

	err = v.ValidateBytes([]byte(`{}`), "broken.schema.json")
	assert.ErrorContains(t, err, "failed to parse schema JSON")
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := newTestValidator()
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"name": "lily"}`), 0600))
	assert.NoError(t, v.ValidateFile(good, "flower.schema.json"))

	err := v.ValidateFile(filepath.Join(dir, "absent.json"), "flower.schema.json")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSchemaValidator_ShippedBalance(t *testing.T) {
	v := NewSchemaValidator(configs.Schemas)

	assert.NoError(t, v.ValidateFile("../../configs/balance.json", configs.BalanceSchema))

	// property-name failures are reported against the name itself, not its parent path
	err := v.ValidateBytes([]byte(`{"weather": {"shares": {"meteor": 1}}}`), configs.BalanceSchema)
	assert.ErrorContains(t, err, "enum validation failed")

	err = v.ValidateBytes([]byte(`{"weather": {"shares": {"rain": "lots"}}}`), configs.BalanceSchema)
	assert.ErrorContains(t, err, "at /weather/shares/rain")
}
