// Package vocab implements the prefix-lookup structure over a
// tokenizer's decoded token strings (§4.A): Contains/WithPrefix for the
// core's own token-healing needs, plus the parallel reverse trie used by
// a biasing front-end to find token strings ending with a given suffix.
package vocab

// node is one trie node. children is keyed by byte rather than rune so
// that byte-level BPE vocabularies (whose "characters" are often partial
// UTF-8 sequences) are represented without pretending they're text.
type node struct {
	children map[byte]*node
	// tokenID is set (hasID=true) when a token string ends exactly at this node.
	tokenID int
	hasID   bool
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie is a prefix trie over decoded token strings, each associated
// with its token id.
type Trie struct {
	root  *node
	size  int
	words []string // insertion order, used to build the Aho-Corasick scanner
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds s with its token id to the trie. Re-inserting the same
// string updates its id.
func (t *Trie) Insert(s string, tokenID int) {
	n := t.root
	for i := 0; i < len(s); i++ {
		b := s[i]
		child, ok := n.children[b]
		if !ok {
			child = newNode()
			n.children[b] = child
		}
		n = child
	}
	if !n.hasID {
		t.size++
		t.words = append(t.words, s)
	}
	n.tokenID = tokenID
	n.hasID = true
}

// Len returns the number of distinct strings stored.
func (t *Trie) Len() int {
	return t.size
}

// Words returns every string inserted, in insertion order. Used to seed
// an Aho-Corasick Scanner over the same vocabulary.
func (t *Trie) Words() []string {
	return t.words
}

func (t *Trie) walk(s string) (*node, bool) {
	n := t.root
	for i := 0; i < len(s); i++ {
		child, ok := n.children[s[i]]
		if !ok {
			return nil, false
		}
		n = child
	}
	return n, true
}

// Contains reports whether prefix is itself a complete token string.
func (t *Trie) Contains(prefix string) bool {
	n, ok := t.walk(prefix)
	return ok && n.hasID
}

// TokenID returns the token id for an exact token string.
func (t *Trie) TokenID(s string) (int, bool) {
	n, ok := t.walk(s)
	if !ok || !n.hasID {
		return 0, false
	}
	return n.tokenID, true
}

// WithPrefix returns every token string beginning with prefix (including
// prefix itself, if it is a token).
func (t *Trie) WithPrefix(prefix string) []string {
	n, ok := t.walk(prefix)
	if !ok {
		return nil
	}
	var out []string
	collect(n, prefix, &out)
	return out
}

func collect(n *node, acc string, out *[]string) {
	if n.hasID {
		*out = append(*out, acc)
	}
	for b, child := range n.children {
		collect(child, acc+string(b), out)
	}
}

// LongestPrefixOf returns the longest token string that is itself a
// prefix of s — the exact query token healing needs (§4.G): "is there a
// valid vocabulary token that this string starts with, shorter than the
// whole string?"
func (t *Trie) LongestPrefixOf(s string) (string, bool) {
	n := t.root
	best := -1
	for i := 0; i < len(s)-1; i++ {
		child, ok := n.children[s[i]]
		if !ok {
			break
		}
		n = child
		if n.hasID {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return s[:best+1], true
}

// Reverse builds the companion reverse trie described in §4.A: the same
// vocabulary, inserted back-to-front, so EndsWith-style suffix queries
// become prefix queries.
func (t *Trie) Reverse() *Trie {
	rev := New()
	for _, w := range t.words {
		id, _ := t.TokenID(w)
		rev.Insert(reverseString(w), id)
	}
	return rev
}

// WithSuffix returns every token string ending with suffix, using the
// reverse trie (call on the trie returned by Reverse).
func (t *Trie) WithSuffix(suffix string) []string {
	out := t.WithPrefix(reverseString(suffix))
	for i, s := range out {
		out[i] = reverseString(s)
	}
	return out
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
