package composite

import (
	"github.com/coregx/hsm/accept"
	"github.com/coregx/hsm/grammar"
)

// Grammar wraps a raw character accumulator and defers acceptance to an
// external grammar.Validator (§4.F, §6): after every consumed character
// it asks Validate(buffer, false, start) — "still a valid prefix?" — and
// treats a false answer as a dead path; once that holds, it also asks
// Validate(buffer, true, start) to see whether the buffer is already a
// complete sentence, in which case the walker becomes accepted while
// still willing to extend (a grammar's closing boundary is whatever
// delimiter wraps it, e.g. primitive.Encapsulated's close phrase — not
// Grammar itself).
type Grammar struct {
	validator grammar.Validator
	start     string
}

// NewGrammar builds a Grammar acceptor that defers to validator, parsing
// from the rule named start.
func NewGrammar(validator grammar.Validator, start string) *Grammar {
	return &Grammar{validator: validator, start: start}
}

func (g *Grammar) StartState() accept.State             { return accept.Int(0) }
func (g *Grammar) EndStates() []accept.State            { return []accept.State{accept.End} }
func (g *Grammar) IsOptional() bool                     { return false }
func (g *Grammar) IsCaseSensitive() bool                { return true }
func (g *Grammar) EdgesFrom(accept.State) []accept.Edge { return nil }

func (g *Grammar) NewWalker(state accept.State) *accept.Walker {
	w := accept.NewWalker(g, state)
	w.WithHooks(accept.Hooks{
		ConsumeToken: g.consume,
		IsWithinValue: func(cur *accept.Walker) bool {
			return cur.RawValue() != ""
		},
	})
	w.SetAcceptsMoreInput(true)
	return w
}

func (g *Grammar) Walkers() []*accept.Walker {
	return []*accept.Walker{g.NewWalker(g.StartState())}
}

func (g *Grammar) consume(cur *accept.Walker, token string) []*accept.Walker {
	prev := cur.RawValue()
	for i := 1; i <= len(token); i++ {
		if !g.validator.Validate(prev+token[:i], false, g.start) {
			return nil
		}
	}
	buf := prev + token

	clone := cur.Clone()
	clone.SetRawValue(buf)
	clone.SetAcceptsMoreInput(true)

	if g.validator.Validate(buf, true, g.start) {
		return []*accept.Walker{clone.Accept()}
	}
	return []*accept.Walker{clone}
}
