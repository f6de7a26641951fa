package composite

import (
	"encoding/json"

	"github.com/coregx/hsm/accept"
	"github.com/coregx/hsm/primitive"
)

// KeyValue recognizes a single object property (§4.F): string → ws →
// ':' → ws → value, grounded on the reference PropertySchemaAcceptor
// (pse/schema_acceptors/property_schema_acceptor.py), whose own graph is
// exactly this five-step sequence built over TextAcceptor/
// WhitespaceAcceptor plus a schema-chosen value acceptor.
//
// KeyValue embeds *Sequence for its graph but overrides NewWalker/Walkers
// so every walker's StateMachine back-reference is the *KeyValue itself,
// not the bare embedded Sequence — Object needs to recover the property
// name from a pending transition's sub-acceptor, which only works if
// that back-reference survives.
type KeyValue struct {
	*Sequence
	name string
}

// NewKeyValue builds a KeyValue acceptor for property name, whose value
// must satisfy the value acceptor.
func NewKeyValue(name string, value accept.Acceptor) *KeyValue {
	keyLit, _ := json.Marshal(name)
	seq := NewSequence(
		primitive.NewPhrase(string(keyLit), true),
		primitive.NewWhitespace(0, 40),
		primitive.NewPhrase(":", true),
		primitive.NewWhitespace(0, 40),
		value,
	)
	return &KeyValue{Sequence: seq, name: name}
}

// PropName returns the property name this KeyValue recognizes.
func (k *KeyValue) PropName() string { return k.name }

func (k *KeyValue) NewWalker(state accept.State) *accept.Walker {
	return accept.NewWalker(k, state)
}

func (k *KeyValue) Walkers() []*accept.Walker {
	return accept.DefaultWalkers(k)
}

// PropNamed is implemented by any acceptor that recognizes a single
// named object property — currently only *KeyValue, but kept as an
// interface so an alternative property acceptor could plug into Object.
type PropNamed interface {
	PropName() string
}

// propNameOf recovers the property name of the sub-acceptor a walker is
// currently (or was) transitioning through, if that sub-acceptor is
// PropNamed.
func propNameOf(w *accept.Walker) (string, bool) {
	if w == nil {
		return "", false
	}
	if pn, ok := w.StateMachine.(PropNamed); ok {
		return pn.PropName(), true
	}
	return "", false
}

// extractProperty reads the (name, value) pair out of a completed
// KeyValue walker: the property name from its PropNamed back-reference,
// and the value from the last entry of its accepted history (the value
// acceptor is always the final step of the five-step sequence).
func extractProperty(w *accept.Walker) (string, any, bool) {
	name, ok := propNameOf(w)
	if !ok {
		return "", nil, false
	}
	hist := w.AcceptedHistory
	if len(hist) == 0 {
		return name, nil, true
	}
	return name, hist[len(hist)-1].CurrentValue(), true
}
