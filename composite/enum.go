package composite

import (
	"encoding/json"

	"github.com/coregx/hsm/accept"
	"github.com/coregx/hsm/hsmerr"
	"github.com/coregx/hsm/primitive"
)

// Enum is AnyOf specialized over a fixed set of literal values (§4.F),
// grounded on the reference EnumSchemaAcceptor: each member is rendered
// to its JSON literal form (so a string member comes out quoted) and
// wrapped in a Phrase, the same way EnumSchemaAcceptor wraps each
// allowed value in a TextAcceptor over json.dumps(value). Walker.
// CurrentValue's existing numeric/JSON-unmarshal fallback chain already
// turns the matched literal back into the right Go type, so Enum needs
// no bespoke value-reconstruction of its own.
type Enum struct {
	*AnyOf
}

// NewEnum builds an Enum over values, each marshaled to JSON to produce
// its literal acceptor. Returns a *hsmerr.SchemaError if values is empty
// (§7: "empty enum" is a schema construction error).
func NewEnum(values ...any) (*Enum, error) {
	if len(values) == 0 {
		return nil, hsmerr.NewSchemaError("enum", "enum must declare at least one value", hsmerr.ErrEmptyEnum)
	}

	alts := make([]accept.Acceptor, len(values))
	for i, v := range values {
		lit, err := json.Marshal(v)
		if err != nil {
			return nil, hsmerr.NewSchemaError("enum", err.Error(), hsmerr.ErrUnsupportedKeyword)
		}
		alts[i] = primitive.NewPhrase(string(lit), true)
	}
	return &Enum{AnyOf: NewAnyOf(alts...)}, nil
}
