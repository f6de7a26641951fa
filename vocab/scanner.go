package vocab

import "github.com/coregx/ahocorasick"

// Scanner wraps an Aho-Corasick automaton built over an entire
// vocabulary's token strings. Where Trie answers "is X a token" and
// "what tokens start/end with X" by descent, Scanner answers the
// complementary question a healing or biasing front-end needs in a
// single linear pass: "which known tokens occur anywhere in this
// arbitrary buffer" — e.g. verifying a model's raw byte output against
// the vocabulary before the walker population ever sees it, the same
// role literal/extractor-derived patterns play as a prefilter ahead of
// the full NFA engine.
type Scanner struct {
	automaton *ahocorasick.Automaton
	ids       map[string]int
}

// NewScanner builds a Scanner over the given token strings, each
// identified by its position in ids (same convention as Trie.Insert).
func NewScanner(tokens []string, ids map[string]int) (*Scanner, error) {
	builder := ahocorasick.NewBuilder()
	for _, t := range tokens {
		builder.AddPattern([]byte(t))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Scanner{automaton: auto, ids: ids}, nil
}

// NewScannerFromTrie builds a Scanner over every token string already
// held by t.
func NewScannerFromTrie(t *Trie) (*Scanner, error) {
	ids := make(map[string]int, t.Len())
	words := t.Words()
	for _, w := range words {
		id, _ := t.TokenID(w)
		ids[w] = id
	}
	return NewScanner(words, ids)
}

// Match is one vocabulary token found within a scanned buffer.
type Match struct {
	Token      string
	TokenID    int
	Start, End int
}

// Contains reports whether any vocabulary token occurs anywhere within
// buf.
func (s *Scanner) Contains(buf []byte) bool {
	return s.automaton.IsMatch(buf)
}

// FindFirst returns the first (leftmost) vocabulary token occurring
// within buf at or after at.
func (s *Scanner) FindFirst(buf []byte, at int) (Match, bool) {
	m := s.automaton.Find(buf, at)
	if m == nil {
		return Match{}, false
	}
	tok := string(buf[m.Start:m.End])
	return Match{Token: tok, TokenID: s.ids[tok], Start: m.Start, End: m.End}, true
}

// FindAll walks the buffer with repeated Find calls, collecting every
// non-overlapping vocabulary token encountered left to right. Used by
// heal.ScanKnownTokens to pre-filter a healing candidate before the
// more expensive trie descent runs.
func (s *Scanner) FindAll(buf []byte) []Match {
	var out []Match
	at := 0
	for at <= len(buf) {
		m := s.automaton.Find(buf, at)
		if m == nil {
			break
		}
		tok := string(buf[m.Start:m.End])
		out = append(out, Match{Token: tok, TokenID: s.ids[tok], Start: m.Start, End: m.End})
		if m.End <= at {
			at++
		} else {
			at = m.End
		}
	}
	return out
}
