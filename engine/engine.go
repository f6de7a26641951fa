// Package engine implements the state machine engine (§4.D): driving a
// population of accept.Walker values one token at a time across a
// composed acceptor graph, without backtracking.
//
// This is the population-level analogue of nfa.PikeVM's thread-list
// simulation (nfa/pikevm.go): where PikeVM steps every live thread
// through a byte and merges threads that land on the same NFA state,
// AdvanceAll steps every live walker through a token and merges walkers
// that land on the same (current_state, target_state, raw_value) key —
// the walker-level equality contract spec §4.C already requires for
// de-duplication.
package engine

import "github.com/coregx/hsm/accept"

// WalkersOf returns a's initial walker population: its own Walkers(),
// unchanged. Exposed here (rather than forcing every caller to reach
// into accept directly) because population-level code conceptually
// starts here, not at the acceptor.
func WalkersOf(a accept.Acceptor) []*accept.Walker {
	return a.Walkers()
}

// AdvanceAll steps every walker in population through token, merging the
// results with Dedupe. An empty token consumes nothing: walkers that
// cannot start a step on it are dropped, so it does not act as a
// structural-only step over pass-through edges. Each walker
// is driven through its own Consume, not accept.Advance directly, so a
// leaf acceptor used bare as a population's top-level schema (no
// enclosing Sequence/Object/Array) still reaches its ConsumeToken hook
// instead of silently matching nothing.
func AdvanceAll(population []*accept.Walker, token string) []*accept.Walker {
	var next []*accept.Walker
	for _, w := range population {
		next = append(next, w.Consume(token)...)
	}
	return Dedupe(next)
}

// Dedupe merges walkers that share the structural key
// (current_state, target_state, raw_value) spec §4.C/§9 designates as
// the equality contract, keeping the first walker seen for each key.
// This is the engine's answer to the open question of whether walkers
// should be merged across distinct-but-structurally-equal acceptor
// instances: yes, by this key, exactly as accept.Walker.Equal compares.
func Dedupe(population []*accept.Walker) []*accept.Walker {
	seen := make(map[[3]string]struct{}, len(population))
	out := make([]*accept.Walker, 0, len(population))
	for _, w := range population {
		key := w.HashKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Accepted filters population down to walkers that have reached an
// accept state, returning them as the read-only AcceptedState view.
func Accepted(population []*accept.Walker) []*accept.AcceptedState {
	var out []*accept.AcceptedState
	for _, w := range population {
		if w.HasReachedAcceptState() {
			out = append(out, w.AsAccepted())
		}
	}
	return out
}

// AnyAcceptsMoreInput reports whether at least one walker in population
// can still consume further input — the engine's signal that generation
// should continue rather than stop.
func AnyAcceptsMoreInput(population []*accept.Walker) bool {
	for _, w := range population {
		if w.AcceptsMoreInput() {
			return true
		}
	}
	return false
}
