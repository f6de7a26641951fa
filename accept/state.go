// Package accept implements the hierarchical state machine's core data
// model: states, edges, the Acceptor capability set, and the Walker
// cursor that explores an acceptor graph one token at a time.
//
// The package is deliberately one unit (rather than split across
// "acceptor" and "walker" packages) because the two are mutually
// recursive in the same way the teacher's nfa package bundles StateID,
// NFA and the PikeVM thread model together: an Acceptor produces
// Walkers, and a Walker holds a live back-reference to its Acceptor.
package accept

import "fmt"

// State identifies a position in an Acceptor's graph. Integer states are
// formatted as decimal strings ("0", "1", ...); symbolic states (e.g. an
// object acceptor's "choose-key" state) are short names. End is the
// sentinel that marks any accepting state.
type State string

// End is the sentinel accepting state shared by every acceptor graph.
const End State = "$"

// Int formats an integer state the way Sequence/Array graphs do.
func Int(i int) State {
	return State(fmt.Sprintf("%d", i))
}

// Edge is a single outgoing transition: consume Sub, land on Target.
type Edge struct {
	Sub    Acceptor
	Target State
}

// ExploredEdge is the monotone de-duplication key recorded in a walker's
// explored-edges set: (current_state, target_state, raw_value_at_entry).
// Re-entering the same triple is how the engine detects and refuses to
// loop through an optional pass-through chain.
type ExploredEdge struct {
	From  State
	To    State
	Value string
}
