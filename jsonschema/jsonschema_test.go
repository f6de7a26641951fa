package jsonschema

import (
	"testing"

	"github.com/coregx/hsm/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drive(t *testing.T, schemaJSON map[string]any, chunks ...string) bool {
	t.Helper()
	a, err := Compile(schemaJSON)
	require.NoError(t, err)

	population := engine.WalkersOf(a)
	for _, c := range chunks {
		population = engine.AdvanceAll(population, c)
		if len(population) == 0 {
			return false
		}
	}
	for _, w := range population {
		if !w.HasReachedAcceptState() {
			continue
		}
		if rem, has := w.RemainingInput(); has && rem != "" {
			continue
		}
		return true
	}
	return false
}

func TestCompileObjectWithRequiredProperty(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"age":  map[string]any{"type": "integer"},
		},
		"required":             []any{"name"},
		"additionalProperties": false,
	}

	assert.True(t, drive(t, schema, `{"name":"ann","age":30}`))
	assert.False(t, drive(t, schema, `{"age":30}`))
	assert.False(t, drive(t, schema, `{"name":"ann","extra":1}`))
}

func TestCompileArrayWithMinMaxItems(t *testing.T) {
	schema := map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "number"},
		"minItems": 1.0,
		"maxItems": 3.0,
	}

	assert.False(t, drive(t, schema, "[]"))
	assert.True(t, drive(t, schema, "[1,2]"))
	assert.False(t, drive(t, schema, "[1,2,3,4]"))
}

func TestCompileEnum(t *testing.T) {
	schema := map[string]any{"enum": []any{"red", "green", "blue"}}

	assert.True(t, drive(t, schema, `"red"`))
	assert.False(t, drive(t, schema, `"purple"`))
}

func TestCompileConst(t *testing.T) {
	schema := map[string]any{"const": "fixed"}

	assert.True(t, drive(t, schema, `"fixed"`))
	assert.False(t, drive(t, schema, `"other"`))
}

func TestCompileNullable(t *testing.T) {
	schema := map[string]any{"type": "string", "nullable": true}

	assert.True(t, drive(t, schema, `"hi"`))
	assert.True(t, drive(t, schema, "null"))
}

func TestCompileRef(t *testing.T) {
	schema := map[string]any{
		"$defs": map[string]any{
			"pos": map[string]any{"type": "number", "minimum": 0.0},
		},
		"$ref": "#/$defs/pos",
	}

	assert.True(t, drive(t, schema, "5"))
	assert.False(t, drive(t, schema, "-5"))
}

func TestCompileAllOf(t *testing.T) {
	schema := map[string]any{
		"allOf": []any{
			map[string]any{"type": "number", "minimum": 0.0},
			map[string]any{"type": "number", "maximum": 10.0},
		},
	}

	assert.True(t, drive(t, schema, "5"))
	assert.False(t, drive(t, schema, "15"))
}

func TestCompileAnyOf(t *testing.T) {
	schema := map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "number"},
		},
	}

	assert.True(t, drive(t, schema, `"hi"`))
	assert.True(t, drive(t, schema, "42"))
	assert.False(t, drive(t, schema, "true"))
}

func TestCompileTypeList(t *testing.T) {
	schema := map[string]any{"type": []any{"string", "null"}}

	assert.True(t, drive(t, schema, `"hi"`))
	assert.True(t, drive(t, schema, "null"))
	assert.False(t, drive(t, schema, "42"))
}

func TestCompileNumberBounds(t *testing.T) {
	schema := map[string]any{
		"type":             "number",
		"exclusiveMinimum": 0.0,
		"multipleOf":       0.5,
	}

	assert.True(t, drive(t, schema, "1.5"))
	assert.False(t, drive(t, schema, "0"))
	assert.False(t, drive(t, schema, "1.3"))
}

func TestCompileIntegerRejectsFraction(t *testing.T) {
	schema := map[string]any{"type": "integer"}

	assert.True(t, drive(t, schema, "42"))
	assert.False(t, drive(t, schema, "42.5"))
}

func TestCompileStringPattern(t *testing.T) {
	schema := map[string]any{"type": "string", "pattern": "^[a-z]+$"}

	assert.True(t, drive(t, schema, `"abc"`))
	assert.False(t, drive(t, schema, `"ABC"`))
}

func TestCompileUntypedIsAnyJSONValue(t *testing.T) {
	schema := map[string]any{}

	assert.True(t, drive(t, schema, `{"a":[1,"x",true,null]}`))
}

func TestCompileUnknownTypeErrors(t *testing.T) {
	_, err := Compile(map[string]any{"type": "weird"})
	require.Error(t, err)
}

func TestCompileRequiredPropertyMustBeDeclared(t *testing.T) {
	_, err := Compile(map[string]any{
		"type":     "object",
		"required": []any{"missing"},
	})
	require.Error(t, err)
}
