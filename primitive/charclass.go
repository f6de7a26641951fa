// Package primitive implements the primitive acceptors (§4.E):
// CharacterClass, Whitespace, Integer, Number, Phrase, String, WaitFor,
// Chain, and Encapsulated. Most are leaves with no sub-acceptors of their
// own; Number, Chain and Encapsulated are small graphs over the others.
package primitive

import "github.com/coregx/hsm/accept"

// CharacterClass accepts a maximal run of bytes drawn from a fixed
// membership set, one or more (minRun=1) or zero or more (minRun=0).
//
// Grounded on nfa.CharClassSearcher (nfa/charclass_searcher.go): the
// same 256-byte lookup table gives O(1) membership tests, and the same
// maximal-prefix idea applies — but here the searcher's verdict becomes
// a walker's consumed prefix plus remaining_input tail instead of a
// (start, end) match span, since a walker only ever sees one proposed
// token at a time rather than a whole haystack.
type CharacterClass struct {
	membership [256]bool
	minRun     int
	start      accept.State
}

// NewCharacterClass builds a CharacterClass from inclusive byte ranges.
// minRun is 1 for "one or more", 0 for "zero or more".
func NewCharacterClass(ranges [][2]byte, minRun int) *CharacterClass {
	c := &CharacterClass{minRun: minRun, start: accept.Int(0)}
	for _, r := range ranges {
		for b := int(r[0]); b <= int(r[1]); b++ {
			c.membership[b] = true
			if b == 255 {
				break
			}
		}
	}
	return c
}

func (c *CharacterClass) accepts(b byte) bool { return c.membership[b] }

func (c *CharacterClass) StartState() accept.State   { return c.start }
func (c *CharacterClass) EndStates() []accept.State  { return []accept.State{accept.End} }
func (c *CharacterClass) IsOptional() bool           { return c.minRun == 0 }
func (c *CharacterClass) IsCaseSensitive() bool      { return true }
func (c *CharacterClass) EdgesFrom(accept.State) []accept.Edge {
	return nil
}

func (c *CharacterClass) NewWalker(state accept.State) *accept.Walker {
	w := accept.NewWalker(c, state)
	w.WithHooks(accept.Hooks{
		ShouldStartStep: func(w *accept.Walker, token string) bool {
			return token != "" && c.accepts(token[0])
		},
		ConsumeToken: c.consume,
	})
	return w
}

// Walkers returns a single walker at the start state: CharacterClass has
// no internal graph to branch over, only the consume-time membership
// test performed in consume.
func (c *CharacterClass) Walkers() []*accept.Walker {
	return []*accept.Walker{c.NewWalker(c.start)}
}

// consume is CharacterClass's own stepping rule, installed as its
// walkers' Hooks.ConsumeToken: it does not go through accept.Advance's
// sub-walker machinery since it has no sub-acceptors — it directly scans
// the maximal matching prefix of token, mirroring
// CharClassSearcher.SearchAt's scan loop.
func (c *CharacterClass) consume(w *accept.Walker, token string) []*accept.Walker {
	i := 0
	for i < len(token) && c.accepts(token[i]) {
		i++
	}
	if i == 0 {
		if c.minRun == 0 {
			clone := w.Clone()
			clone.SetRemainingInput(token)
			return []*accept.Walker{clone.Accept()}
		}
		return nil
	}

	matched := token[:i]
	rest := token[i:]

	clone := w.Clone()
	clone.SetRawValue(w.RawValue() + matched)
	clone.ConsumedCount += i
	result := clone.Accept()

	if rest != "" {
		result.SetRemainingInput(rest)
	}
	return []*accept.Walker{result}
}
