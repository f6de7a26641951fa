package composite

import (
	"github.com/coregx/hsm/accept"
	"github.com/coregx/hsm/primitive"
)

// jsonValue is the cyclic "any JSON value" acceptor: object, array,
// string, number, boolean, or null, with object/array elements
// recursively typed as the very same acceptor. Exactly one instance is
// built per NewJSONValue call, and its alternatives hold a pointer back
// to it — the acceptor graph is genuinely self-referential rather than
// unrolled to some fixed depth, the "immutable arena, walkers hold
// handles rather than owning references" shape an unbounded
// additionalProperties/items schema requires.
type jsonValue struct {
	*AnyOf
}

// NewJSONValue builds a fresh "any JSON value" acceptor.
func NewJSONValue() accept.Acceptor {
	v := &jsonValue{}
	obj := NewObject(nil, nil, NewAdditionalProperty(v))
	arr := NewArray(v, 0, 0)
	str := primitive.NewString(0, 1<<20, nil)
	num := primitive.NewNumber()
	boolean := NewAnyOf(primitive.NewPhrase("true", true), primitive.NewPhrase("false", true))
	null := primitive.NewPhrase("null", true)
	v.AnyOf = NewAnyOf(obj, arr, str, num, boolean, null)
	return v
}

// NewAdditionalProperty recognizes any "name": value pair whose key is
// an arbitrary JSON string rather than one fixed literal — used for
// additionalProperties and for NewJSONValue's own object alternative.
// Unlike KeyValue it does not implement PropNamed, so the already-seen
// key gating Object.ShouldStartStep applies to declared properties never
// fires for it: every additionalProperties match is independent.
func NewAdditionalProperty(value accept.Acceptor) accept.Acceptor {
	return NewSequence(
		primitive.NewString(0, 1<<20, nil),
		primitive.NewWhitespace(0, 40),
		primitive.NewPhrase(":", true),
		primitive.NewWhitespace(0, 40),
		value,
	)
}
