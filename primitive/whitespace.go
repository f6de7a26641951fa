package primitive

import "github.com/coregx/hsm/accept"

const whitespaceChars = " \n\r\t"

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\n', '\r', '\t':
		return true
	default:
		return false
	}
}

// Whitespace accepts between MinLen and MaxLen whitespace characters,
// grounded on the reference WhitespaceAcceptor (max_whitespace cap,
// optional when min_whitespace is 0).
type Whitespace struct {
	minLen, maxLen int
	start          accept.State
}

// NewWhitespace builds a Whitespace acceptor. maxLen<=0 means the
// reference implementation's default cap of 40.
func NewWhitespace(minLen, maxLen int) *Whitespace {
	if maxLen <= 0 {
		maxLen = 40
	}
	return &Whitespace{minLen: minLen, maxLen: maxLen, start: accept.Int(0)}
}

func (w *Whitespace) StartState() accept.State             { return w.start }
func (w *Whitespace) EndStates() []accept.State             { return []accept.State{accept.End} }
func (w *Whitespace) IsOptional() bool                      { return w.minLen == 0 }
func (w *Whitespace) IsCaseSensitive() bool                  { return true }
func (w *Whitespace) EdgesFrom(accept.State) []accept.Edge   { return nil }

func (w *Whitespace) NewWalker(state accept.State) *accept.Walker {
	walker := accept.NewWalker(w, state)
	walker.WithHooks(accept.Hooks{
		ShouldStartStep: func(cur *accept.Walker, token string) bool {
			if token == "" {
				return false
			}
			return isWhitespace(token[0])
		},
		ConsumeToken: w.consume,
	})
	return walker
}

func (w *Whitespace) Walkers() []*accept.Walker {
	return []*accept.Walker{w.NewWalker(w.start)}
}

func (w *Whitespace) consume(cur *accept.Walker, token string) []*accept.Walker {
	already := len(cur.RawValue())
	if already >= w.maxLen {
		return nil
	}

	i := 0
	for i < len(token) && already+i < w.maxLen && isWhitespace(token[i]) {
		i++
	}
	if i == 0 {
		if w.minLen == 0 {
			clone := cur.Clone()
			clone.SetRemainingInput(token)
			return []*accept.Walker{clone.Accept()}
		}
		return nil
	}

	clone := cur.Clone()
	clone.SetRawValue(cur.RawValue() + token[:i])
	clone.ConsumedCount += i

	var result *accept.Walker
	if len(clone.RawValue()) >= w.minLen {
		result = clone.Accept()
	} else {
		result = clone
	}

	if rest := token[i:]; rest != "" {
		result.SetRemainingInput(rest)
	}
	return []*accept.Walker{result}
}
