package primitive

import "github.com/coregx/hsm/accept"

// Phrase accepts a single fixed string exactly, byte-for-byte (or
// case-insensitively). Grounded on the reference TextAcceptor/TextWalker:
// should_start_transition matches either direction of prefix — the token
// may be a prefix of the remaining phrase text, or the remaining phrase
// text may be a prefix of the token (the token boundary doesn't have to
// line up with the phrase boundary).
type Phrase struct {
	text       string
	caseSens   bool
	isOptional bool
	start      accept.State
}

// NewPhrase builds a Phrase acceptor for a non-empty literal string.
func NewPhrase(text string, caseSensitive bool) *Phrase {
	return &Phrase{text: text, caseSens: caseSensitive, start: accept.Int(0)}
}

func (p *Phrase) StartState() accept.State           { return p.start }
func (p *Phrase) EndStates() []accept.State          { return []accept.State{accept.End} }
func (p *Phrase) IsOptional() bool                   { return p.isOptional }
func (p *Phrase) IsCaseSensitive() bool              { return p.caseSens }
func (p *Phrase) EdgesFrom(accept.State) []accept.Edge { return nil }

func (p *Phrase) eq(a, b byte) bool {
	if p.caseSens {
		return a == b
	}
	return lowerByte(a) == lowerByte(b)
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func (p *Phrase) matchLen(remaining, token string) int {
	n := len(remaining)
	if len(token) < n {
		n = len(token)
	}
	for i := 0; i < n; i++ {
		if !p.eq(remaining[i], token[i]) {
			return i
		}
	}
	return n
}

func (p *Phrase) NewWalker(state accept.State) *accept.Walker {
	w := accept.NewWalker(p, state)
	w.WithHooks(accept.Hooks{
		ShouldStartStep: func(cur *accept.Walker, token string) bool {
			if token == "" {
				return false
			}
			remaining := p.text[cur.ConsumedCount:]
			full := p.matchLen(remaining, token)
			return full == len(remaining) || full == len(token)
		},
		AcceptsMoreInput: func(cur *accept.Walker) bool {
			return cur.ConsumedCount < len(p.text)
		},
		ConsumeToken: p.consume,
	})
	return w
}

func (p *Phrase) Walkers() []*accept.Walker {
	return []*accept.Walker{p.NewWalker(p.start)}
}

func (p *Phrase) consume(cur *accept.Walker, token string) []*accept.Walker {
	pos := cur.ConsumedCount
	remaining := p.text[pos:]
	n := p.matchLen(remaining, token)
	if n == 0 || n < minInt(len(remaining), len(token)) {
		return nil
	}

	clone := cur.Clone()
	clone.ConsumedCount = pos + n
	clone.SetRawValue(p.text[:pos+n])

	var result *accept.Walker
	if pos+n == len(p.text) {
		result = clone.Accept()
	} else {
		result = clone
	}
	if rest := token[n:]; rest != "" {
		result.SetRemainingInput(rest)
	}
	return []*accept.Walker{result}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
