package primitive

import "github.com/coregx/hsm/accept"

// WaitFor accepts arbitrary free-form text until target's walker
// population reaches an accept state, at which point WaitFor itself is
// accepted with target's result as its sub-walker. Grounded on the
// reference WaitForAcceptor/WaitForWalker: accepts_any_token is always
// true (anything until the trigger fires), can_accept_more_input is
// always false (the trigger, once it fires, ends the wait), and
// consume_token re-feeds the whole internal population rather than
// branching a graph.
//
// minBuffer is the minimum number of characters that must already be
// buffered before target's population is even given a chance to match
// (the reference FreeformStateMachine's buffer_length parameter,
// original_source/pse/types/misc/freeform.py:21 — "buffer_length =
// char_min or 1"): this guards against a spurious one-character trigger
// firing before enough free-form preamble has actually been seen.
type WaitFor struct {
	target    accept.Acceptor
	start     accept.State
	minBuffer int
}

// NewWaitFor builds a WaitFor acceptor watching for target. minBuffer
// values below 1 are treated as 1, matching the reference's own
// "char_min or 1" fallback.
func NewWaitFor(target accept.Acceptor, minBuffer int) *WaitFor {
	if minBuffer < 1 {
		minBuffer = 1
	}
	return &WaitFor{target: target, start: accept.Int(0), minBuffer: minBuffer}
}

func (w *WaitFor) StartState() accept.State           { return w.start }
func (w *WaitFor) EndStates() []accept.State          { return []accept.State{accept.End} }
func (w *WaitFor) IsOptional() bool                   { return false }
func (w *WaitFor) IsCaseSensitive() bool               { return w.target.IsCaseSensitive() }
func (w *WaitFor) EdgesFrom(accept.State) []accept.Edge { return nil }

func (w *WaitFor) NewWalker(state accept.State) *accept.Walker {
	walker := accept.NewWalker(w, state)
	walker.Extra = w.target.Walkers()
	walker.WithHooks(accept.Hooks{
		AcceptsAnyToken:  func(*accept.Walker) bool { return true },
		AcceptsMoreInput: func(*accept.Walker) bool { return false },
		ConsumeToken:     w.consume,
	})
	return walker
}

func (w *WaitFor) Walkers() []*accept.Walker {
	return []*accept.Walker{w.NewWalker(w.start)}
}

// consume re-feeds token to every internal candidate walker once enough
// input has been buffered; below w.minBuffer, token is only appended to
// the buffer and target's population is left untouched, so the trigger
// can never be proposed off too short a preamble.
func (w *WaitFor) consume(cur *accept.Walker, token string) []*accept.Walker {
	if len(cur.RawValue()) < w.minBuffer {
		next := cur.Clone()
		next.SetRawValue(cur.RawValue() + token)
		return []*accept.Walker{next}
	}

	population, _ := cur.Extra.([]*accept.Walker)

	var survivors []*accept.Walker
	for _, iw := range population {
		for _, advanced := range iw.Consume(token) {
			if rem, has := advanced.RemainingInput(); has && rem != "" {
				continue
			}
			if advanced.HasReachedAcceptState() {
				accepted := cur.Clone()
				accepted.SubWalker = advanced
				accepted.SetRawValue(cur.RawValue() + token)
				return []*accept.Walker{accepted.Accept()}
			}
			survivors = append(survivors, advanced)
		}
	}

	next := cur.Clone()
	next.Extra = survivors
	next.SetRawValue(cur.RawValue() + token)
	return []*accept.Walker{next}
}
