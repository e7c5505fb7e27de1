package validation

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipeSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"slug": {"type": "string", "pattern": "^[a-z0-9_]+$"},
		"craft_gold_cost": {"type": "integer", "minimum": 0},
		"requires": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"slug": {"type": "string"},
					"quantity": {"type": "integer", "minimum": 1}
				},
				"required": ["slug", "quantity"]
			}
		}
	},
	"required": ["slug"]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "recipe.schema.json", recipeSchema)
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "valid recipe", data: `{"slug": "iron_sword", "craft_gold_cost": 5, "requires": [{"slug": "iron_ore", "quantity": 3}]}`},
		{name: "raw item", data: `{"slug": "iron_ore"}`},
		{name: "missing slug", data: `{"craft_gold_cost": 5}`, wantErr: "required"},
		{name: "negative gold", data: `{"slug": "x", "craft_gold_cost": -1}`, wantErr: "/craft_gold_cost"},
		{name: "zero quantity", data: `{"slug": "x", "requires": [{"slug": "y", "quantity": 0}]}`, wantErr: "/requires/0/quantity"},
		{name: "bad slug", data: `{"slug": "Iron Sword"}`, wantErr: "pattern"},
		{name: "invalid JSON", data: `{"slug": }`, wantErr: ErrMsgParseData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchemaValidator_ViolationsAreTyped(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "recipe.schema.json", recipeSchema)

	err := NewSchemaValidator().ValidateBytes([]byte(`{"craft_gold_cost": "free"}`), schemaPath)
	assert.ErrorIs(t, err, ErrSchemaViolation)

	err = NewSchemaValidator().ValidateBytes([]byte(`not json`), schemaPath)
	assert.NotErrorIs(t, err, ErrSchemaViolation)
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "recipe.schema.json", recipeSchema)
	dataPath := writeFile(t, dir, "recipe.json", `{"slug": "iron_ore"}`)
	v := NewSchemaValidator()

	assert.NoError(t, v.ValidateFile(dataPath, schemaPath))

	err := v.ValidateFile(filepath.Join(dir, "missing.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")

	err = v.ValidateFile(dataPath, "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "recipe.schema.json", recipeSchema)
	v := NewSchemaValidator().(*validator)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, v.ValidateBytes([]byte(`{"slug": "a"}`), schemaPath))
		}()
	}
	wg.Wait()

	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_ResolvesFromModuleRoot(t *testing.T) {
	// Tests run from internal/validation, the schema lives at the repo root
	v := NewSchemaValidator()
	err := v.ValidateBytes([]byte(`{"version": "1.0", "items": []}`), "configs/schemas/equipment.schema.json")
	assert.NoError(t, err)
}
