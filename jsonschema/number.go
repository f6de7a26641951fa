package jsonschema

import (
	"math"
	"strconv"

	"github.com/coregx/hsm/accept"
	"github.com/coregx/hsm/primitive"
)

// numberSchema layers minimum/maximum/exclusiveMinimum/exclusiveMaximum/
// multipleOf and the integer/number distinction over primitive.Number's
// graph, grounded on the reference NumberSchemaAcceptor/
// NumberSchemaWalker (original_source/pse/schema_acceptors/number_schema_acceptor.go):
// should_start_transition there forbids an integer-typed walker from
// entering the fractional-digit state at all, and should_complete_transition
// runs the numeric bounds check once the walker has no remaining input
// left to place — both reproduced here via Hooks rather than a second
// graph, the same way Object and Array layer schema bookkeeping over a
// plain graph via hooks instead of duplicating it.
type numberSchema struct {
	*primitive.Number
	isInteger                       bool
	hasMin, hasMax                   bool
	hasExclMin, hasExclMax           bool
	hasMultiple                      bool
	min, max, exclMin, exclMax, multiple float64
}

func newNumberSchema(schema map[string]any, isInteger bool) *numberSchema {
	n := &numberSchema{Number: primitive.NewNumber(), isInteger: isInteger}
	if v, ok := numberOf(schema["minimum"]); ok {
		n.hasMin, n.min = true, v
	}
	if v, ok := numberOf(schema["maximum"]); ok {
		n.hasMax, n.max = true, v
	}
	if v, ok := numberOf(schema["exclusiveMinimum"]); ok {
		n.hasExclMin, n.exclMin = true, v
	}
	if v, ok := numberOf(schema["exclusiveMaximum"]); ok {
		n.hasExclMax, n.exclMax = true, v
	}
	if v, ok := numberOf(schema["multipleOf"]); ok {
		n.hasMultiple, n.multiple = true, v
	}
	return n
}

func (n *numberSchema) validate(raw string) bool {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return false
	}
	if n.hasMin && v < n.min {
		return false
	}
	if n.hasMax && v > n.max {
		return false
	}
	if n.hasExclMin && v <= n.exclMin {
		return false
	}
	if n.hasExclMax && v >= n.exclMax {
		return false
	}
	if n.hasMultiple && n.multiple != 0 {
		q := v / n.multiple
		if math.Abs(q-math.Round(q)) > 1e-9 {
			return false
		}
	}
	if n.isInteger && math.Trunc(v) != v {
		return false
	}
	return true
}

func (n *numberSchema) NewWalker(state accept.State) *accept.Walker {
	w := accept.NewWalker(n, state)
	w.WithHooks(accept.Hooks{
		ShouldStartStep: func(cur *accept.Walker, token string) bool {
			if n.isInteger {
				if target, ok := cur.TargetStateValue(); ok && target == primitive.FracDotState() {
					return false
				}
			}
			return true
		},
		ShouldCompleteStep: func(cur *accept.Walker) bool {
			// Mirrors the reference should_complete_transition: only
			// validate once this step lands on an end state with
			// nothing left over to place elsewhere. cur.HasReachedAcceptState
			// isn't usable here — CompleteTransition calls this hook
			// before the accepted flag for *this* transition is set.
			if rem, has := cur.RemainingInput(); has && rem != "" {
				return true
			}
			if !accept.IsEndState(cur.CurrentState, n.EndStates()) {
				return true
			}
			return n.validate(cur.RawValue())
		},
	})
	return w
}

func (n *numberSchema) Walkers() []*accept.Walker {
	return accept.DefaultWalkers(n)
}
