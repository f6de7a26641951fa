package jsonschema

import (
	"net/url"
	"regexp"
	"time"

	"github.com/coregx/hsm/accept"
	"github.com/coregx/hsm/hsmerr"
	"github.com/coregx/hsm/primitive"
)

// formatValidators implements the small fixed subset of JSON Schema's
// "format" keyword this module supports, grounded on
// string_schema_acceptor.py's own format dispatch table — like that
// reference, formats outside this table are a compile-time error rather
// than a silently-ignored no-op.
var formatValidators = map[string]func(string) bool{
	"email": func(s string) bool {
		return emailPattern.MatchString(s)
	},
	"date-time": func(s string) bool {
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	},
	"uri": func(s string) bool {
		u, err := url.Parse(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	},
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (c *compiler) compileString(schema map[string]any) (accept.Acceptor, error) {
	minLen := intOf(schema["minLength"])
	maxLen := 10000
	if v, ok := numberOf(schema["maxLength"]); ok {
		maxLen = int(v)
	}

	var pattern *regexp.Regexp
	if p, ok := schema["pattern"].(string); ok {
		compiled, err := regexp.Compile(p)
		if err != nil {
			return nil, hsmerr.NewSchemaError("pattern", err.Error(), hsmerr.ErrUnsupportedKeyword)
		}
		pattern = compiled
	}

	format, _ := schema["format"].(string)
	if format != "" {
		if _, ok := formatValidators[format]; !ok {
			return nil, hsmerr.NewSchemaError("format", "format not implemented: "+format, hsmerr.ErrUnsupportedKeyword)
		}
	}

	if pattern == nil && format == "" {
		return primitive.NewString(minLen, maxLen, nil), nil
	}

	validate := func(content string) bool {
		if pattern != nil && !pattern.MatchString(content) {
			return false
		}
		if format != "" && !formatValidators[format](content) {
			return false
		}
		return true
	}
	return primitive.NewString(minLen, maxLen, validate), nil
}
