package composite

import "github.com/coregx/hsm/accept"

// AnyOf is a single state with one edge (sub_i, END) per alternative
// (§4.F) — dispatch across alternatives happens entirely through the
// generic engine's Branch/TransitionsFrom walking every edge from state
// 0 and letting ShouldStartStep prune the ones the proposed token can't
// start. Grounded on nfa.BranchDispatcher's O(1)-by-first-byte dispatch
// (nfa/branch_dispatch.go): here the analogous fast dispatch is by live
// walker rather than by byte, since alternatives are sub-acceptors
// rather than literal byte sets.
type AnyOf struct {
	alternatives []accept.Acceptor
}

// NewAnyOf builds an AnyOf over alternatives.
func NewAnyOf(alternatives ...accept.Acceptor) *AnyOf {
	return &AnyOf{alternatives: alternatives}
}

func (a *AnyOf) StartState() accept.State  { return accept.Int(0) }
func (a *AnyOf) EndStates() []accept.State { return []accept.State{accept.End} }

func (a *AnyOf) IsOptional() bool {
	for _, alt := range a.alternatives {
		if alt.IsOptional() {
			return true
		}
	}
	return false
}

func (a *AnyOf) IsCaseSensitive() bool {
	for _, alt := range a.alternatives {
		if !alt.IsCaseSensitive() {
			return false
		}
	}
	return true
}

func (a *AnyOf) EdgesFrom(state accept.State) []accept.Edge {
	if state != accept.Int(0) {
		return nil
	}
	edges := make([]accept.Edge, len(a.alternatives))
	for i, alt := range a.alternatives {
		edges[i] = accept.Edge{Sub: alt, Target: accept.End}
	}
	return edges
}

func (a *AnyOf) NewWalker(state accept.State) *accept.Walker {
	return accept.NewWalker(a, state)
}

func (a *AnyOf) Walkers() []*accept.Walker {
	return accept.DefaultWalkers(a)
}
