package jsonschema

// resolveSubschemas expands $ref/allOf/anyOf/oneOf into a flat list of
// plain schemas with no further composition keywords, ported from the
// reference resolve_subschemas
// (original_source/pse/util/state_machine/get_acceptor.py): allOf
// reduces by cartesian shallow-merge across every member (later keys win,
// matching Python dict update semantics), anyOf/oneOf instead keep each
// alternative's merge separate rather than reducing them together. A
// schema with none of these keywords resolves to itself.
func (c *compiler) resolveSubschemas(schema map[string]any, visited map[string]bool) ([]map[string]any, error) {
	if ref, ok := schema["$ref"].(string); ok {
		if visited[ref] {
			return nil, nil
		}
		def, ok := c.defs[ref]
		if !ok {
			return nil, refNotFoundErr(ref)
		}
		next := make(map[string]bool, len(visited)+1)
		for k := range visited {
			next[k] = true
		}
		next[ref] = true
		return c.resolveSubschemas(def, next)
	}

	if allOf, ok := schema["allOf"].([]any); ok {
		schemas, err := c.resolveSubschemas(omit(schema, "allOf"), visited)
		if err != nil {
			return nil, err
		}
		for _, sub := range allOf {
			subMap, _ := sub.(map[string]any)
			resolvedSub, err := c.resolveSubschemas(subMap, visited)
			if err != nil {
				return nil, err
			}
			schemas = cartesianMerge(schemas, resolvedSub)
		}
		return schemas, nil
	}

	for _, key := range [2]string{"anyOf", "oneOf"} {
		alts, ok := schema[key].([]any)
		if !ok {
			continue
		}
		base, err := c.resolveSubschemas(omit(schema, key), visited)
		if err != nil {
			return nil, err
		}
		var combined []map[string]any
		for _, sub := range alts {
			subMap, _ := sub.(map[string]any)
			resolvedSub, err := c.resolveSubschemas(subMap, visited)
			if err != nil {
				return nil, err
			}
			combined = append(combined, cartesianMerge(base, resolvedSub)...)
		}
		return combined, nil
	}

	return []map[string]any{schema}, nil
}

// cartesianMerge shallow-merges every pair (a, b) across as×bs, b's keys
// winning on overlap — the same "later schema wins the field" rule
// Python's dict(base, **override) update gives resolve_subschemas.
func cartesianMerge(as, bs []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			merged := make(map[string]any, len(a)+len(b))
			for k, v := range a {
				merged[k] = v
			}
			for k, v := range b {
				merged[k] = v
			}
			out = append(out, merged)
		}
	}
	return out
}
