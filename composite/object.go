package composite

import (
	"github.com/coregx/hsm/accept"
	"github.com/coregx/hsm/primitive"
)

const (
	objStart     accept.State = "0"
	objOpenWs    accept.State = "1"
	objChooseKey accept.State = "2"
	objAfterProp accept.State = "3"
	objPropWs    accept.State = "4"
)

// Object recognizes a well-formed JSON object with named properties
// (§4.F), grounded directly on the reference ObjectAcceptor's five-state
// graph (pse/acceptors/json/object_acceptor.py) and
// ObjectSchemaAcceptor's dynamic per-property edges
// (pse/schema_acceptors/object_schema_acceptor.py): state 2 ("choose next
// key") carries one edge per declared property plus the empty-object "}"
// edge, every time — ShouldStartStep (not EdgesFrom) is what forbids
// re-emitting an already-seen key, forbids ending before every required
// key has been seen, and (when additionalProperties is disallowed) caps
// total properties at the declared set, exactly as
// ObjectSchemawalker.should_start_transition does.
type Object struct {
	properties []*KeyValue
	required   map[string]bool
	// additional, if non-nil, is the KeyValue-shaped acceptor used for
	// any property name not in properties (additionalProperties: true or
	// a schema). nil means additional properties are rejected.
	additional accept.Acceptor
}

// NewObject builds an Object acceptor over the given named properties.
// requiredNames lists which of them must be present before the object
// may close. additional, if non-nil, is consulted for any property name
// outside properties (it must itself accept arbitrary "name": value
// text — typically NewAdditionalProperty(value), or a catch-all
// acceptor the caller builds).
func NewObject(properties []*KeyValue, requiredNames []string, additional accept.Acceptor) *Object {
	req := make(map[string]bool, len(requiredNames))
	for _, r := range requiredNames {
		req[r] = true
	}
	return &Object{properties: properties, required: req, additional: additional}
}

func (o *Object) StartState() accept.State  { return objStart }
func (o *Object) EndStates() []accept.State { return []accept.State{accept.End} }
func (o *Object) IsOptional() bool          { return false }
func (o *Object) IsCaseSensitive() bool     { return true }

func (o *Object) EdgesFrom(state accept.State) []accept.Edge {
	switch state {
	case objStart:
		return []accept.Edge{{Sub: primitive.NewPhrase("{", true), Target: objOpenWs}}
	case objOpenWs:
		return []accept.Edge{{Sub: primitive.NewWhitespace(0, 40), Target: objChooseKey}}
	case objChooseKey:
		edges := make([]accept.Edge, 0, len(o.properties)+2)
		edges = append(edges, accept.Edge{Sub: primitive.NewPhrase("}", true), Target: accept.End})
		for _, p := range o.properties {
			edges = append(edges, accept.Edge{Sub: p, Target: objAfterProp})
		}
		if o.additional != nil {
			edges = append(edges, accept.Edge{Sub: o.additional, Target: objAfterProp})
		}
		return edges
	case objAfterProp:
		return []accept.Edge{{Sub: primitive.NewWhitespace(0, 40), Target: objPropWs}}
	case objPropWs:
		return []accept.Edge{
			{Sub: primitive.NewPhrase(",", true), Target: objOpenWs},
			{Sub: primitive.NewPhrase("}", true), Target: accept.End},
		}
	default:
		return nil
	}
}

// objSeen is the copy-on-write bookkeeping state threaded through a
// walker's Extra slot: which property names have been consumed so far.
// Every mutation allocates a fresh map rather than writing through a
// shared one, so sibling walkers branched from the same ancestor never
// observe each other's keys (§3 invariant 3's monotone-per-lineage
// discipline, applied to this acceptor-specific bookkeeping the same way
// it applies to explored_edges).
type objSeen struct {
	names map[string]bool
}

func getObjSeen(w *accept.Walker) objSeen {
	if s, ok := w.Extra.(objSeen); ok {
		return s
	}
	return objSeen{}
}

func (s objSeen) with(name string) objSeen {
	next := make(map[string]bool, len(s.names)+1)
	for k := range s.names {
		next[k] = true
	}
	next[name] = true
	return objSeen{names: next}
}

func (s objSeen) has(name string) bool { return s.names != nil && s.names[name] }
func (s objSeen) count() int           { return len(s.names) }

func (o *Object) NewWalker(state accept.State) *accept.Walker {
	w := accept.NewWalker(o, state)
	w.WithHooks(accept.Hooks{
		ShouldStartStep: func(cur *accept.Walker, token string) bool {
			target, hasTarget := cur.TargetStateValue()
			if !hasTarget {
				return true
			}
			if target == accept.End {
				seen := getObjSeen(cur)
				for name := range o.required {
					if !seen.has(name) {
						return false
					}
				}
				return true
			}
			if cur.CurrentState == objChooseKey && target == objAfterProp {
				name, ok := propNameOf(cur.SubWalker)
				if !ok {
					// Not a declared property: this is the
					// additionalProperties edge, already absent from
					// EdgesFrom when additional properties are disallowed.
					return true
				}
				return !getObjSeen(cur).has(name)
			}
			return true
		},
		ShouldCompleteStep: func(cur *accept.Walker) bool {
			if cur.CurrentState == objAfterProp && cur.SubWalker == nil && len(cur.AcceptedHistory) > 0 {
				name, _, ok := extractProperty(cur.AcceptedHistory[len(cur.AcceptedHistory)-1])
				if ok {
					cur.Extra = getObjSeen(cur).with(name)
				}
			}
			return true
		},
	})
	return w
}

func (o *Object) Walkers() []*accept.Walker {
	return accept.DefaultWalkers(o)
}

// CurrentValue reconstructs the parsed JSON object map{string]any} a
// completed Object walker represents, by re-walking its accepted
// history's KeyValue entries — used in place of Walker.CurrentValue's
// generic raw-string fallback, since an object's semantic value is a map
// and not just its concatenated source text.
func CurrentValue(w *accept.Walker) map[string]any {
	out := make(map[string]any, len(w.AcceptedHistory))
	for _, h := range w.AcceptedHistory {
		if name, value, ok := extractProperty(h); ok {
			out[name] = value
		}
	}
	return out
}
