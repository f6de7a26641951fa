package accept

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Hooks lets a concrete acceptor customize the few per-instance decisions
// spec §9 calls out: "Walker specializations... override
// should_start_step / should_complete_step only; they do not introduce
// new traversal rules." Each field is optional; a nil field falls back
// to Walker's generic default for that decision. Acceptor constructors
// (e.g. jsonschema's number range check, composite.Object's
// already-seen-key check) build a Walker with closures captured over
// their own config instead of needing a bespoke Walker subtype.
type Hooks struct {
	// ShouldStartStep, if set, is ANDed with the generic explored-edge
	// check (e.g. array min/max-item gating, object duplicate-key gating).
	ShouldStartStep func(w *Walker, token string) bool

	// ShouldCompleteStep, if set, replaces the default "true" (e.g.
	// integer/number range validation).
	ShouldCompleteStep func(w *Walker) bool

	// AcceptsAnyToken, if set, replaces the default
	// delegate-to-sub-walker-or-false (wait-for-trigger acceptors).
	AcceptsAnyToken func(w *Walker) bool

	// AcceptsMoreInput, if set, is ORed with the generic default (the
	// "explicit flag" spec §3 allows a walker to set).
	AcceptsMoreInput func(w *Walker) bool

	// IsWithinValue, if set, replaces the generic
	// delegate-to-sub-walker-or-consumed-count default. Leaf acceptors
	// whose ConsumeToken hook never touches ConsumedCount (String,
	// Grammar) set this to report their own free-form-value progress
	// directly instead of relying on a counter they never maintain.
	IsWithinValue func(w *Walker) bool

	// ConsumeToken, if set, replaces the generic graph-traversal step
	// (accept.Advance) entirely. Leaf acceptors with no sub-acceptor
	// graph of their own — CharacterClass, Whitespace, Phrase, Integer —
	// set this to scan the token directly, the same way the reference
	// implementation's CharacterAcceptor.Walker/TextAcceptor.Walker
	// override consume_token instead of going through the generic
	// state-machine advance loop.
	ConsumeToken func(w *Walker, token string) []*Walker
}

// Walker is a single live parse position: a cursor exploring one path
// through an Acceptor graph. Many walkers explore the same graph in
// parallel without backtracking (§3).
type Walker struct {
	// StateMachine is the read-only back-reference to the owning
	// acceptor. Shared by every walker ever branched from it.
	StateMachine Acceptor

	CurrentState State
	TargetState  State
	hasTarget    bool

	SubWalker *Walker

	AcceptedHistory []*Walker

	exploredEdges map[ExploredEdge]struct{}

	ConsumedCount int

	remainingInput string
	hasRemaining   bool

	rawValue    string
	hasRawValue bool

	accepted bool

	hooks Hooks

	// Extra is an opaque per-acceptor extension slot: composite leaf
	// acceptors that must carry state shaped differently than a single
	// SubWalker (WaitFor's internal walker population, for instance)
	// stash it here instead of every Walker field anticipating every
	// acceptor's needs.
	Extra any
}

// NewWalker constructs a walker for acceptor a positioned at state.
func NewWalker(a Acceptor, state State) *Walker {
	return &Walker{
		StateMachine:  a,
		CurrentState:  state,
		exploredEdges: make(map[ExploredEdge]struct{}),
	}
}

// WithHooks attaches the per-instance hook closures used by this
// walker's defaults. Returns w for chaining at construction time.
func (w *Walker) WithHooks(h Hooks) *Walker {
	w.hooks = h
	return w
}

// SetRawValue pins a literal raw value (used by acceptors like Enum or
// Phrase that already know their emitted string), bypassing history
// reconstruction.
func (w *Walker) SetRawValue(v string) *Walker {
	w.rawValue = v
	w.hasRawValue = true
	return w
}

// SetAcceptsMoreInput sets the explicit "accepts more input" flag spec
// §3 allows independent of sub-walker/graph-edge state.
func (w *Walker) SetAcceptsMoreInput(v bool) *Walker {
	w.hooks.AcceptsMoreInput = func(*Walker) bool { return v }
	return w
}

// RemainingInput returns the unprocessed input tail left after the most
// recent step, and whether one is set at all.
func (w *Walker) RemainingInput() (string, bool) {
	return w.remainingInput, w.hasRemaining
}

// SetRemainingInput records the unconsumed tail string for this walker.
func (w *Walker) SetRemainingInput(s string) {
	w.remainingInput = s
	w.hasRemaining = s != ""
}

// ClearRemainingInput clears the unconsumed tail (after healing consumes it).
func (w *Walker) ClearRemainingInput() {
	w.remainingInput = ""
	w.hasRemaining = false
}

// TargetStateValue returns the pending transition's destination state, and
// whether a transition is currently in progress.
func (w *Walker) TargetStateValue() (State, bool) {
	return w.TargetState, w.hasTarget
}

// SetTarget begins a transition toward target via sub, mirroring the
// Python implementation's Walker.set_target.
func (w *Walker) SetTarget(sub *Walker, target State) *Walker {
	clone := w.Clone()
	clone.SubWalker = sub
	clone.TargetState = target
	clone.hasTarget = true
	return clone
}

// CurrentEdge is the (from, to, raw-value-at-entry) triple used for
// explored-edge de-duplication, matching Python's Walker.current_edge.
func (w *Walker) CurrentEdge() ExploredEdge {
	to := End
	if w.hasTarget {
		to = w.TargetState
	}
	return ExploredEdge{From: w.CurrentState, To: to, Value: w.RawValue()}
}

// ExploredEdges exposes the monotonically-growing set of edges this
// walker (and its lineage) has already traversed.
func (w *Walker) ExploredEdges() map[ExploredEdge]struct{} {
	return w.exploredEdges
}

// MarkExplored records the walker's current edge as explored.
func (w *Walker) MarkExplored() {
	w.exploredEdges[w.CurrentEdge()] = struct{}{}
}

// Clone performs the shallow clone described in §3: mutable aggregates
// (accepted history, explored edges) are duplicated; the back-reference
// to the acceptor is shared read-only. The duplication is eager, so every
// clone costs O(len) in the history and explored-edge sets; the teacher's
// cowCaptures defers that cost via ref-counted copy-on-write, while here
// the aggregates are small enough (per-walker history/edge sets) that an
// immediate copy is simpler.
func (w *Walker) Clone() *Walker {
	clone := *w

	clone.AcceptedHistory = make([]*Walker, len(w.AcceptedHistory))
	copy(clone.AcceptedHistory, w.AcceptedHistory)

	clone.exploredEdges = make(map[ExploredEdge]struct{}, len(w.exploredEdges))
	for k := range w.exploredEdges {
		clone.exploredEdges[k] = struct{}{}
	}

	return &clone
}

// RawValue returns the walker's raw accumulated string: a pinned literal
// if SetRawValue was used, else the concatenation of completed history
// plus the in-progress sub-walker's raw value (§3 invariant 4: always a
// prefix of, or equal to, anything this walker has emitted).
func (w *Walker) RawValue() string {
	if w.hasRawValue {
		return w.rawValue
	}

	if len(w.AcceptedHistory) == 0 && w.SubWalker == nil {
		return ""
	}

	var b strings.Builder
	for _, h := range w.AcceptedHistory {
		b.WriteString(h.RawValue())
	}
	if w.SubWalker != nil {
		b.WriteString(w.SubWalker.RawValue())
	}
	return b.String()
}

// CurrentValue parses RawValue into a Go value: numeric, then
// JSON-object/array, else the raw string, matching the original
// implementation's _parse_value fallback chain.
func (w *Walker) CurrentValue() any {
	raw := w.RawValue()
	if raw == "" {
		return nil
	}

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}

	return raw
}

// AcceptsMoreInput is true iff the sub-walker accepts more input, OR the
// current state has outgoing edges, OR the walker's explicit hook says so.
func (w *Walker) AcceptsMoreInput() bool {
	if w.SubWalker != nil && w.SubWalker.AcceptsMoreInput() {
		return true
	}
	if len(w.StateMachine.EdgesFrom(w.CurrentState)) > 0 {
		return true
	}
	if w.hooks.AcceptsMoreInput != nil {
		return w.hooks.AcceptsMoreInput(w)
	}
	return false
}

// IsWithinValue is true whenever any characters have been consumed, or a
// sub-walker reports being in a value — used by the front-end to
// distinguish structural characters from free-form literal characters.
func (w *Walker) IsWithinValue() bool {
	if w.hooks.IsWithinValue != nil {
		return w.hooks.IsWithinValue(w)
	}
	if w.SubWalker != nil {
		return w.SubWalker.IsWithinValue()
	}
	return w.ConsumedCount > 0
}

// AcceptsAnyToken is true for walkers inside a wait-for-trigger
// construct.
func (w *Walker) AcceptsAnyToken() bool {
	if w.hooks.AcceptsAnyToken != nil {
		return w.hooks.AcceptsAnyToken(w)
	}
	if w.SubWalker != nil {
		return w.SubWalker.AcceptsAnyToken()
	}
	return false
}

// ShouldStartStep asks the sub-walker first; with no sub-walker, it
// declines to re-enter an already-explored edge. Any per-instance hook
// is ANDed on top.
func (w *Walker) ShouldStartStep(token string) bool {
	if w.SubWalker != nil {
		if !w.SubWalker.ShouldStartStep(token) {
			return false
		}
	} else if _, explored := w.exploredEdges[w.CurrentEdge()]; explored {
		return false
	}

	if w.hooks.ShouldStartStep != nil {
		return w.hooks.ShouldStartStep(w, token)
	}
	return true
}

// ShouldCompleteStep is the subclass hook for semantic validation (e.g.
// a number-range check); default true.
func (w *Walker) ShouldCompleteStep() bool {
	if w.SubWalker != nil {
		return w.SubWalker.ShouldCompleteStep()
	}
	if w.hooks.ShouldCompleteStep != nil {
		return w.hooks.ShouldCompleteStep(w)
	}
	return true
}

// HasReachedAcceptState reports whether this walker has been wrapped in
// the AcceptedState marker — by Advance when CompleteTransition reports
// acceptance, or by a leaf acceptor calling Accept.
func (w *Walker) HasReachedAcceptState() bool {
	return w.accepted
}

// Accept clones w with the accepted flag set. Leaf acceptors (primitive
// package) that implement Hooks.ConsumeToken call this directly, the
// same way CompleteTransition's generic promotion does for graph-walking
// acceptors.
func (w *Walker) Accept() *Walker {
	return w.markAccepted()
}

// AsAccepted returns the AcceptedState inspection view of this walker.
// The underlying *Walker is unchanged by wrapping: this module represents
// the "thin wrapper" spec §3 describes as a flag plus a view type, rather
// than a parallel type threaded through every engine function.
func (w *Walker) AsAccepted() *AcceptedState {
	return &AcceptedState{Walker: w}
}

// Equal implements the equality contract required for de-duplication:
// two walkers compare equal iff (current_state, target_state, raw_value)
// match.
func (w *Walker) Equal(other *Walker) bool {
	if other == nil {
		return false
	}
	if w.CurrentState != other.CurrentState {
		return false
	}
	wt, wok := w.TargetStateValue()
	ot, ook := other.TargetStateValue()
	if wok != ook || (wok && wt != ot) {
		return false
	}
	return w.RawValue() == other.RawValue()
}

// HashKey is a comparable projection of Equal's three-field key, usable
// as a Go map key for O(1) de-duplication.
func (w *Walker) HashKey() [3]string {
	target := ""
	if t, ok := w.TargetStateValue(); ok {
		target = string(t)
	}
	return [3]string{string(w.CurrentState), target, w.RawValue()}
}

// AcceptedState is the terminal wrapper over a walker indicating the
// parse has completed at this point, while preserving inspectability of
// the wrapped walker (§3 invariant 1).
type AcceptedState struct {
	*Walker
}
