package accept

// Acceptor is the capability set every sub-state-machine satisfies: a
// compiled recognizer for one language fragment, and a node in the
// composition graph (§3, §4.B of the design).
//
// Failure of EdgesFrom/NewWalker/Walkers is structural: an acceptor that
// cannot produce an edge or a walker simply returns an empty/nil result.
// There are no exceptions here — a dead path is silence, not an error.
type Acceptor interface {
	// StartState is the state a fresh walker begins at.
	StartState() State

	// EndStates is the set of accepting states for this acceptor.
	EndStates() []State

	// IsOptional reports whether this acceptor may be bypassed without
	// consuming input (a pass-through transition).
	IsOptional() bool

	// IsCaseSensitive reports whether token matching against this
	// acceptor's language is case sensitive.
	IsCaseSensitive() bool

	// EdgesFrom returns the ordered outgoing edges from state. Acceptors
	// whose edges depend on runtime data (e.g. an object acceptor whose
	// "choose next key" edges depend on which properties are still
	// unseen) compute this lazily per call.
	EdgesFrom(state State) []Edge

	// NewWalker returns a walker positioned at state, owned by this
	// acceptor.
	NewWalker(state State) *Walker

	// Walkers returns this acceptor's initial walker population: the
	// start walker, branched once over its first edges. The default
	// helper DefaultWalkers implements exactly this and is what almost
	// every concrete acceptor should call.
	Walkers() []*Walker
}

// IsEndState reports whether state appears in ends.
func IsEndState(state State, ends []State) bool {
	for _, e := range ends {
		if e == state {
			return true
		}
	}
	return false
}

// DefaultWalkers implements Acceptor.Walkers in terms of Branch: create a
// fresh walker at a's start state and branch it once over its outgoing
// edges. Acceptors with no special construction logic should implement
// Walkers by calling this.
func DefaultWalkers(a Acceptor) []*Walker {
	start := a.NewWalker(a.StartState())
	return Branch(start, "")
}
