package composite

import "github.com/coregx/hsm/accept"
import "github.com/coregx/hsm/primitive"

const (
	arrOpen      accept.State = "0"
	arrBeforeEl  accept.State = "1"
	arrElement   accept.State = "2"
	arrAfterEl   accept.State = "3"
	arrNextOrEnd accept.State = "4"
)

// Array accepts a well-formed JSON array (§4.F): `[`, optional
// whitespace, element, optional `,`-loop with whitespace, `]`.
// minItems/maxItems are enforced in should_start_step by checking the
// current collected item count against bounds, grounded on
// ArraySchemaAcceptor/ArraySchemaWalker
// (pse/acceptors/schema/array_schema_acceptor.py).
type Array struct {
	element            accept.Acceptor
	minItems, maxItems int
}

// NewArray builds an Array acceptor whose elements are recognized by
// element, bounded by [minItems, maxItems] (maxItems<=0 means unbounded).
func NewArray(element accept.Acceptor, minItems, maxItems int) *Array {
	if maxItems <= 0 {
		maxItems = 1<<31 - 1
	}
	return &Array{element: element, minItems: minItems, maxItems: maxItems}
}

func (a *Array) StartState() accept.State  { return arrOpen }
func (a *Array) EndStates() []accept.State { return []accept.State{accept.End} }
func (a *Array) IsOptional() bool          { return false }
func (a *Array) IsCaseSensitive() bool     { return true }

func (a *Array) EdgesFrom(state accept.State) []accept.Edge {
	switch state {
	case arrOpen:
		return []accept.Edge{{Sub: primitive.NewPhrase("[", true), Target: arrBeforeEl}}
	case arrBeforeEl:
		return []accept.Edge{
			{Sub: primitive.NewWhitespace(0, 40), Target: arrElement},
			{Sub: primitive.NewPhrase("]", true), Target: accept.End},
		}
	case arrElement:
		return []accept.Edge{{Sub: a.element, Target: arrAfterEl}}
	case arrAfterEl:
		return []accept.Edge{{Sub: primitive.NewWhitespace(0, 40), Target: arrNextOrEnd}}
	case arrNextOrEnd:
		return []accept.Edge{
			{Sub: primitive.NewChain(primitive.NewPhrase(",", true), primitive.NewWhitespace(0, 40)), Target: arrElement},
			{Sub: primitive.NewPhrase("]", true), Target: accept.End},
		}
	default:
		return nil
	}
}

func (a *Array) NewWalker(state accept.State) *accept.Walker {
	w := accept.NewWalker(a, state)
	w.WithHooks(accept.Hooks{
		ShouldStartStep: func(cur *accept.Walker, token string) bool {
			count, _ := cur.Extra.(int)
			target, hasTarget := cur.TargetStateValue()
			if !hasTarget {
				return true
			}
			if (cur.CurrentState == arrElement && target == arrAfterEl) ||
				(cur.CurrentState == arrNextOrEnd && target == arrElement) {
				return count < a.maxItems
			}
			if target == accept.End {
				return count >= a.minItems
			}
			return true
		},
		ShouldCompleteStep: func(cur *accept.Walker) bool {
			if cur.CurrentState == arrAfterEl && cur.SubWalker == nil {
				count, _ := cur.Extra.(int)
				cur.Extra = count + 1
			}
			return true
		},
	})
	return w
}

func (a *Array) Walkers() []*accept.Walker {
	return accept.DefaultWalkers(a)
}
