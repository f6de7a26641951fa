package accept

// Transition pairs a positioned sub-walker with the state it leads to,
// the result of enumerating one acceptor's outgoing edges (§4.D
// "Transition enumeration").
type Transition struct {
	Walker *Walker
	Target State
}

// TransitionsFrom enumerates, for every (sub, target) edge leaving state
// on acceptor a, every walker of sub paired with (state, target). When
// an edge's sub-acceptor is optional, its target is either wrapped as an
// immediately-accepted pass-through (when target is an end state and
// source can't accept more input) or transitions are enumerated
// recursively from target (ordinary pass-through), exactly as the
// reference walker's get_transitions does — ambiguity in spec §4.D's
// prose ("If sub.is_optional, target not in end_states... recursively
// enumerate") is resolved here by following original_source/pse's actual
// branch structure rather than the paraphrase.
func TransitionsFrom(a Acceptor, state State, source *Walker) []Transition {
	var out []Transition

	for _, edge := range a.EdgesFrom(state) {
		for _, sw := range edge.Sub.Walkers() {
			out = append(out, Transition{Walker: sw, Target: edge.Target})
		}

		if !edge.Sub.IsOptional() {
			continue
		}

		if source != nil && IsEndState(edge.Target, a.EndStates()) && !source.AcceptsMoreInput() {
			out = append(out, Transition{Walker: source.markAccepted(), Target: edge.Target})
		} else {
			out = append(out, TransitionsFrom(a, edge.Target, source)...)
		}
	}

	return out
}

// markAccepted clones w with the accepted flag set, used to let
// CompleteTransition's generic promotion logic finish a pass-through
// edge by treating the outer walker as its own already-accepted
// sub-walker.
func (w *Walker) markAccepted() *Walker {
	c := w.Clone()
	c.accepted = true
	return c
}

// Branch clones w and installs a fresh sub-walker per viable outgoing
// edge (§4.C/§4.D). token, if non-empty, or else w's own remaining
// input, gates which candidates are even considered.
func Branch(w *Walker, token string) []*Walker {
	checkToken := token
	if checkToken == "" {
		if rem, ok := w.RemainingInput(); ok {
			checkToken = rem
		}
	}

	var out []*Walker
	for _, t := range TransitionsFrom(w.StateMachine, w.CurrentState, w) {
		if checkToken != "" && !t.Walker.ShouldStartStep(checkToken) {
			continue
		}

		if cur, hasTarget := w.TargetStateValue(); hasTarget && cur == t.Target &&
			w.SubWalker != nil && w.SubWalker.AcceptsMoreInput() {
			// Already exploring this target state via a live sub-walker;
			// skip to avoid cycling under optional pass-through.
			continue
		}

		out = append(out, w.SetTarget(t.Walker, t.Target))
	}
	return out
}

// CompleteTransition is the central promotion rule (§4.D): it clones
// parent, installs advancedSub as its sub-walker, records the edge as
// explored, promotes current_state if advancedSub has reached an
// accepted state (folding it into accepted_history once it is sated),
// and finally asks the walker-specific should_complete_step hook.
// Returns (nil, false) if that hook rejects the transition.
func CompleteTransition(parent *Walker, advancedSub *Walker) (*Walker, bool) {
	w := parent.Clone()
	if rem, ok := advancedSub.RemainingInput(); ok {
		advancedSub = advancedSub.Clone()
		advancedSub.ClearRemainingInput()
		w.SetRemainingInput(rem)
	} else {
		w.ClearRemainingInput()
	}
	w.SubWalker = advancedSub
	w.MarkExplored()

	if advancedSub.HasReachedAcceptState() {
		if target, ok := w.TargetStateValue(); ok {
			w.CurrentState = target
		}
		if !advancedSub.AcceptsMoreInput() {
			w.AcceptedHistory = append(w.AcceptedHistory, advancedSub)
			w.SubWalker = nil
			w.hasTarget = false
		}
	}

	accepted := IsEndState(w.CurrentState, w.StateMachine.EndStates()) &&
		(w.SubWalker == nil || (w.SubWalker.HasReachedAcceptState() && !w.SubWalker.AcceptsMoreInput()))

	if !w.ShouldCompleteStep() {
		return nil, false
	}

	return w, accepted
}

type stepFrame struct {
	walker *Walker
	token  string
}

// Advance runs the single-step breadth-first loop described in §4.D: it
// either branches a blocked walker or feeds the token to its live
// sub-walker, re-queuing any result that still has a remaining tail.
func Advance(start *Walker, token string) []*Walker {
	queue := []stepFrame{{start, token}}
	var out []*Walker

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		w, tok := f.walker, f.token

		if w.SubWalker == nil || !w.ShouldStartStep(tok) {
			out = append(out, handleBlocked(w, tok, &queue)...)
			continue
		}

		for _, advanced := range w.SubWalker.Consume(tok) {
			newW, accepted := CompleteTransition(w, advanced)
			if newW == nil {
				continue
			}
			if accepted {
				newW = newW.markAccepted()
			}
			if rem, ok := newW.RemainingInput(); ok && rem != "" {
				queue = append(queue, stepFrame{newW, rem})
			} else {
				out = append(out, newW)
			}
		}
	}

	return out
}

// handleBlocked implements §4.D's handle_blocked: try branching w with
// tok; requeue any candidate that can start, yield the first candidate
// that is already accepted (terminating handling of w), and otherwise
// fall back to surfacing w's own remaining input or dropping it.
func handleBlocked(w *Walker, tok string, queue *[]stepFrame) []*Walker {
	branched := Branch(w, tok)
	if len(branched) == 0 {
		if rem, ok := w.RemainingInput(); ok && rem != "" {
			return []*Walker{w}
		}
		return nil
	}

	for _, cand := range branched {
		if cand.ShouldStartStep(tok) {
			*queue = append(*queue, stepFrame{cand, tok})
		} else if cand.HasReachedAcceptState() {
			return []*Walker{cand}
		}
	}
	return nil
}

// Consume advances the walker with the given input token. Leaf acceptors
// that set Hooks.ConsumeToken handle their own scanning directly (§4.E);
// every other walker delegates to the generic graph-traversal engine,
// Advance, per §4.C/§4.D.
func (w *Walker) Consume(token string) []*Walker {
	if w.hooks.ConsumeToken != nil {
		return w.hooks.ConsumeToken(w, token)
	}
	return Advance(w, token)
}
