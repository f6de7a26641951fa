// Package composite implements the acceptors built from sub-acceptors
// (§4.F): Sequence, AnyOf, Array, Object, KeyValue, Enum, and Grammar.
package composite

import "github.com/coregx/hsm/accept"

// Sequence is a linear chain of N sub-acceptors: state i transitions via
// sub-acceptor i to state i+1, with end_states = {N} (§4.F).
type Sequence struct {
	items []accept.Acceptor
}

// NewSequence builds a Sequence over items, run strictly in order.
func NewSequence(items ...accept.Acceptor) *Sequence {
	return &Sequence{items: items}
}

func (s *Sequence) StartState() accept.State { return accept.Int(0) }

func (s *Sequence) EndStates() []accept.State {
	return []accept.State{accept.Int(len(s.items))}
}

func (s *Sequence) IsOptional() bool {
	for _, it := range s.items {
		if !it.IsOptional() {
			return false
		}
	}
	return true
}

func (s *Sequence) IsCaseSensitive() bool {
	if len(s.items) == 0 {
		return true
	}
	return s.items[0].IsCaseSensitive()
}

func (s *Sequence) EdgesFrom(state accept.State) []accept.Edge {
	for i, it := range s.items {
		if state == accept.Int(i) {
			return []accept.Edge{{Sub: it, Target: accept.Int(i + 1)}}
		}
	}
	return nil
}

func (s *Sequence) NewWalker(state accept.State) *accept.Walker {
	return accept.NewWalker(s, state)
}

func (s *Sequence) Walkers() []*accept.Walker {
	return accept.DefaultWalkers(s)
}
