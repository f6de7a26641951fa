// Package jsonschema compiles a JSON Schema document (decoded into the
// usual map[string]any/[]any/float64/string/bool/nil shape
// encoding/json.Unmarshal produces) into an accept.Acceptor, the
// supporting piece spec.md's own §4.F leaves implicit: "the composite
// layer accepts already-built sub-acceptors; something still has to turn
// a JSON Schema document into one." This module's dispatch mirrors the
// reference get_acceptor/resolve_subschemas pair
// (original_source/pse/util/state_machine/get_acceptor.py) keyword for
// keyword.
package jsonschema

import (
	"encoding/json"
	"sort"

	"github.com/coregx/hsm/accept"
	"github.com/coregx/hsm/composite"
	"github.com/coregx/hsm/hsmerr"
	"github.com/coregx/hsm/primitive"
)

// Compile builds an acceptor for schema. $defs entries are registered
// once up front; nested schemas are compiled on demand as $ref is
// encountered. Genuinely self-referential $defs (a definition whose own
// body, transitively, $refs back to itself) are not supported — a
// second encounter of the same $ref mid-resolution is treated as
// contributing no further alternatives, the same fixed-point-at-depth-one
// behavior resolve_subschemas falls back to, rather than an error or an
// infinite compile.
func Compile(schema map[string]any) (accept.Acceptor, error) {
	c := &compiler{defs: map[string]map[string]any{}}
	if defs, ok := schema["$defs"].(map[string]any); ok {
		for name, raw := range defs {
			if m, ok := raw.(map[string]any); ok {
				c.defs["#/$defs/"+name] = m
			}
		}
	}
	return c.compile(schema)
}

type compiler struct {
	defs map[string]map[string]any
}

func (c *compiler) compile(schema map[string]any) (accept.Acceptor, error) {
	if nullable, _ := schema["nullable"].(bool); nullable {
		nonNull, err := c.compile(omit(schema, "nullable"))
		if err != nil {
			return nil, err
		}
		return composite.NewAnyOf(primitive.NewPhrase("null", true), nonNull), nil
	}

	resolved, err := c.resolveSubschemas(schema, map[string]bool{})
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return composite.NewJSONValue(), nil
	}
	if len(resolved) == 1 {
		return c.compileOne(resolved[0])
	}

	alts := make([]accept.Acceptor, len(resolved))
	for i, rs := range resolved {
		a, err := c.compileOne(rs)
		if err != nil {
			return nil, err
		}
		alts[i] = a
	}
	return composite.NewAnyOf(alts...), nil
}

func (c *compiler) compileOne(schema map[string]any) (accept.Acceptor, error) {
	if _, ok := schema["not"]; ok {
		return nil, hsmerr.NewSchemaError("not", "the 'not' keyword is not supported", hsmerr.ErrUnsupportedKeyword)
	}

	if typeList, ok := schema["type"].([]any); ok {
		alts := make([]accept.Acceptor, 0, len(typeList))
		for _, t := range typeList {
			variant := omit(schema, "type")
			variant["type"] = t
			a, err := c.compile(variant)
			if err != nil {
				return nil, err
			}
			alts = append(alts, a)
		}
		return composite.NewAnyOf(alts...), nil
	}

	if hasEnum(schema) {
		return c.compileEnum(schema)
	}
	if hasConst(schema) {
		return c.compileConst(schema)
	}

	schemaType, _ := schema["type"].(string)
	if schemaType == "" {
		if _, ok := schema["properties"]; ok {
			schemaType = "object"
		} else if _, ok := schema["items"]; ok {
			schemaType = "array"
		}
	}

	switch schemaType {
	case "boolean":
		return composite.NewAnyOf(primitive.NewPhrase("true", true), primitive.NewPhrase("false", true)), nil
	case "null":
		return primitive.NewPhrase("null", true), nil
	case "number":
		return newNumberSchema(schema, false), nil
	case "integer":
		return newNumberSchema(schema, true), nil
	case "string":
		return c.compileString(schema)
	case "object":
		return c.compileObject(schema)
	case "array":
		return c.compileArray(schema)
	case "":
		// An untyped, constraint-free schema ({}) is a reasonable stand-in
		// for "any value" rather than a hard error — a common JSON Schema
		// idiom (a property whose shape is deliberately left open).
		return composite.NewJSONValue(), nil
	default:
		return nil, hsmerr.NewSchemaError("type", "unknown schema type: "+schemaType, hsmerr.ErrUnknownType)
	}
}

func (c *compiler) compileEnum(schema map[string]any) (accept.Acceptor, error) {
	values, _ := schema["enum"].([]any)
	return composite.NewEnum(values...)
}

func (c *compiler) compileConst(schema map[string]any) (accept.Acceptor, error) {
	lit, err := json.Marshal(schema["const"])
	if err != nil {
		return nil, hsmerr.NewSchemaError("const", err.Error(), hsmerr.ErrUnsupportedKeyword)
	}
	return primitive.NewPhrase(string(lit), true), nil
}

func (c *compiler) compileObject(schema map[string]any) (accept.Acceptor, error) {
	propsRaw, _ := schema["properties"].(map[string]any)
	names := make([]string, 0, len(propsRaw))
	for name := range propsRaw {
		names = append(names, name)
	}
	sort.Strings(names)

	kvs := make([]*composite.KeyValue, 0, len(names))
	declared := make(map[string]bool, len(names))
	for _, name := range names {
		propSchema, _ := propsRaw[name].(map[string]any)
		value, err := c.compile(propSchema)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, composite.NewKeyValue(name, value))
		declared[name] = true
	}

	var required []string
	if reqRaw, ok := schema["required"].([]any); ok {
		for _, r := range reqRaw {
			name, _ := r.(string)
			if !declared[name] {
				return nil, hsmerr.NewSchemaError("required", "required property not declared: "+name, hsmerr.ErrRequiredPropertyUndeclared)
			}
			required = append(required, name)
		}
	}

	allowAdditional := true
	if ap, ok := schema["additionalProperties"].(bool); ok {
		allowAdditional = ap
	}
	var additional accept.Acceptor
	if allowAdditional {
		additional = composite.NewAdditionalProperty(composite.NewJSONValue())
	}

	return composite.NewObject(kvs, required, additional), nil
}

func (c *compiler) compileArray(schema map[string]any) (accept.Acceptor, error) {
	var element accept.Acceptor
	if itemsRaw, ok := schema["items"].(map[string]any); ok {
		el, err := c.compile(itemsRaw)
		if err != nil {
			return nil, err
		}
		element = el
	} else {
		element = composite.NewJSONValue()
	}
	return composite.NewArray(element, intOf(schema["minItems"]), intOf(schema["maxItems"])), nil
}

func hasEnum(schema map[string]any) bool {
	_, ok := schema["enum"]
	return ok
}

func hasConst(schema map[string]any) bool {
	_, ok := schema["const"]
	return ok
}

func omit(schema map[string]any, key string) map[string]any {
	out := make(map[string]any, len(schema))
	for k, v := range schema {
		if k != key {
			out[k] = v
		}
	}
	return out
}

func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func intOf(v any) int {
	n, ok := numberOf(v)
	if !ok {
		return 0
	}
	return int(n)
}

func refNotFoundErr(ref string) error {
	return hsmerr.NewSchemaError("$ref", "definition not found: "+ref, hsmerr.ErrMissingDef)
}
