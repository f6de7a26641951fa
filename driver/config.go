package driver

import "github.com/coregx/hsm/hsmerr"

// Delimiters is an open/close pair bracketing a structured region inside
// otherwise free-form model output (§6: ```json ... ``` and similar).
type Delimiters struct {
	Open, Close string
}

// Config controls Driver behavior, modeled 1:1 on meta.Config /
// meta.DefaultConfig / meta.Config.Validate's shape: a plain struct with
// a constructor for sane defaults and a Validate method a caller runs
// once at construction time.
type Config struct {
	// UseDelimiters wraps the schema acceptor in a
	// primitive.Encapsulated(open, schema, close) chain so free-form
	// text before the opening delimiter doesn't derail the walker
	// population (§6, §9 "S3").
	UseDelimiters bool

	// Delimiters is the open/close pair SetSchema wraps the acceptor in
	// when no explicit pair is passed to it.
	Delimiters Delimiters

	// MaxPopulation caps the walker population size after each step
	// (§9 "branching factor ceilings"): 0 means unbounded. On overflow,
	// the walkers with the longest RawValue (closest to acceptance) are
	// kept.
	MaxPopulation int
}

// DefaultConfig returns sensible defaults: no delimiters, population
// capped at 512 (generous for the schemas this module's test corpus
// exercises; pathological anyOf/pass-through schemas should lower this).
func DefaultConfig() Config {
	return Config{
		UseDelimiters: false,
		Delimiters:    Delimiters{Open: "```json\n", Close: "\n```"},
		MaxPopulation: 512,
	}
}

// DefaultDelimiters returns the fixed, small delimiter table §6
// specifies per output kind (json/python/bash) — confirmed as a fixed
// table rather than open configuration by original_source/pse/types/
// grammar and pse/lark/python.go.
func DefaultDelimiters() map[string]Delimiters {
	return map[string]Delimiters{
		"json":   {Open: "```json\n", Close: "\n```"},
		"python": {Open: "```python\n", Close: "\n```"},
		"bash":   {Open: "```bash\n", Close: "\n```"},
	}
}

// Validate checks c for internal consistency, returning a
// *hsmerr.SchemaError wrapping hsmerr.ErrInvalidConfig on failure.
func (c Config) Validate() error {
	if c.MaxPopulation < 0 {
		return hsmerr.NewSchemaError("MaxPopulation", "must be >= 0 (0 means unbounded)", hsmerr.ErrInvalidConfig)
	}
	if c.UseDelimiters && (c.Delimiters.Open == "" || c.Delimiters.Close == "") {
		return hsmerr.NewSchemaError("Delimiters", "open and close delimiters must be non-empty when UseDelimiters is set", hsmerr.ErrInvalidConfig)
	}
	return nil
}
