// Package heal implements token healing (§4.G): when a proposed token
// string overruns the characters an acceptor graph can actually accept,
// the walker is left holding a non-empty remaining_input tail. Healing
// searches backwards from that overrun for the longest prefix of the
// token that IS a valid vocabulary entry, substituting it so generation
// can continue on a still-valid token boundary instead of aborting.
//
// This mirrors the teacher's reverse-suffix searcher family
// (meta/reverse_suffix.go, meta/reverse_suffix_set.go): both search
// backwards from one end of a string for the longest known fragment,
// here applied to an over-long generated token rather than a regex
// suffix literal.
package heal

import "github.com/coregx/hsm/vocab"

// Candidate is one healed replacement for an over-long token: Healed is
// the longest valid vocabulary prefix of the original string, and
// Overrun is the tail that was cut away and must be fed back into the
// engine on the next step.
type Candidate struct {
	Healed  string
	Overrun string
}

// Heal computes every way tok can be healed against v: for each walker
// whose consumption left a non-empty remaining_input, the prefix of tok
// up to (but excluding) remaining_input is a candidate if it is itself a
// known vocabulary token, per spec §4.G.
//
// token is the full string the tokenizer decoded, and remaining is the
// tail a walker's Consume call could not place. Healing is only
// attempted when remaining is a non-empty, proper suffix of token.
func Heal(v *vocab.Vocabulary, token, remaining string) (Candidate, bool) {
	if remaining == "" || len(remaining) >= len(token) {
		return Candidate{}, false
	}
	prefix := token[:len(token)-len(remaining)]
	if prefix == "" || !v.Contains(prefix) {
		return Candidate{}, false
	}
	return Candidate{Healed: prefix, Overrun: remaining}, true
}

// LongestHealable finds the longest valid-token prefix of tok, regardless
// of where a particular walker's remaining_input boundary fell — used
// when several walkers disagree about the overrun point and the driver
// wants the single best substitution across all of them.
func LongestHealable(v *vocab.Vocabulary, tok string) (Candidate, bool) {
	prefix, ok := v.LongestValidPrefix(tok)
	if !ok || prefix == tok {
		return Candidate{}, false
	}
	return Candidate{Healed: prefix, Overrun: tok[len(prefix):]}, true
}

// ScanKnownTokens is the Aho-Corasick prefiltering step (§4.A/§4.G):
// before attempting the more precise per-walker Heal above, a driver may
// call this to cheaply rule out healing entirely when no vocabulary
// token occurs anywhere in the candidate buffer.
func ScanKnownTokens(v *vocab.Vocabulary, buf []byte) []vocab.Match {
	return v.Scan.FindAll(buf)
}
