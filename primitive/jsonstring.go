package primitive

import "github.com/coregx/hsm/accept"

// String accepts a JSON string literal: a double-quoted, backslash-
// escaped run of characters, grounded on the reference StringAcceptor/
// StringSchemaAcceptor (pse/acceptors/json/string_acceptor.py,
// pse/schema_acceptors/string_schema_acceptor.py). Unlike CharacterClass,
// String hand-rolls its own scan, since escape handling needs one bit of
// carried state — is the previous consumed byte a backslash — rather
// than a static membership table.
//
// minLen/maxLen bound the unquoted content length; validate, if non-nil,
// is the schema's combined pattern/format check, run once the
// closing quote is seen and checked inside consume itself (like Phrase
// and Whitespace, String's ConsumeToken hook bypasses the generic
// should_complete_step path entirely, so the check can't live there).
// This module deliberately does not implement a general regex engine, so
// pattern validation is a single match against the completed string
// rather than incremental prefix checking.
type String struct {
	minLen, maxLen int
	validate       func(string) bool
	start          accept.State
}

// NewString builds a String acceptor. maxLen<=0 means unbounded. validate
// may be nil.
func NewString(minLen, maxLen int, validate func(string) bool) *String {
	if maxLen <= 0 {
		maxLen = 1 << 20
	}
	return &String{minLen: minLen, maxLen: maxLen, validate: validate, start: accept.Int(0)}
}

func (s *String) StartState() accept.State             { return s.start }
func (s *String) EndStates() []accept.State             { return []accept.State{accept.End} }
func (s *String) IsOptional() bool                      { return false }
func (s *String) IsCaseSensitive() bool                 { return true }
func (s *String) EdgesFrom(accept.State) []accept.Edge { return nil }

// stringScan is the escape-state carried in a walker's Extra slot:
// whether the opening quote has been seen, and whether the previous byte
// was an unconsumed backslash.
type stringScan struct {
	started  bool
	escaping bool
}

func (s *String) NewWalker(state accept.State) *accept.Walker {
	w := accept.NewWalker(s, state)
	w.Extra = stringScan{}
	w.WithHooks(accept.Hooks{
		ShouldStartStep: func(cur *accept.Walker, token string) bool {
			if token == "" {
				return false
			}
			if st, _ := cur.Extra.(stringScan); !st.started {
				return token[0] == '"'
			}
			return true
		},
		ConsumeToken: s.consume,
		IsWithinValue: func(cur *accept.Walker) bool {
			st, _ := cur.Extra.(stringScan)
			return st.started
		},
	})
	return w
}

func (s *String) Walkers() []*accept.Walker {
	return []*accept.Walker{s.NewWalker(s.start)}
}

// stringContent strips the surrounding quotes a completed walker's raw
// value carries.
func stringContent(raw string) string {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return raw[1 : len(raw)-1]
	}
	return raw
}

func (s *String) consume(cur *accept.Walker, token string) []*accept.Walker {
	st, _ := cur.Extra.(stringScan)
	raw := cur.RawValue()
	i := 0

	if !st.started {
		if len(token) == 0 || token[0] != '"' {
			return nil
		}
		raw += `"`
		st.started = true
		i = 1
	}

	for i < len(token) {
		c := token[i]

		if st.escaping {
			raw += string(c)
			i++
			st.escaping = false
			continue
		}
		if c == '\\' {
			raw += string(c)
			i++
			st.escaping = true
			continue
		}
		if c == '"' {
			raw += string(c)
			i++
			content := stringContent(raw)
			if len(content) < s.minLen || len(content) > s.maxLen {
				return nil
			}
			if s.validate != nil && !s.validate(content) {
				return nil
			}

			clone := cur.Clone()
			clone.SetRawValue(raw)
			clone.Extra = st
			result := clone.Accept()
			if rest := token[i:]; rest != "" {
				result.SetRemainingInput(rest)
			}
			return []*accept.Walker{result}
		}

		raw += string(c)
		i++
		if len(raw)-1 > s.maxLen {
			return nil
		}
	}

	clone := cur.Clone()
	clone.SetRawValue(raw)
	clone.Extra = st
	clone.SetAcceptsMoreInput(true)
	return []*accept.Walker{clone}
}
