package vocab

// Vocabulary is the full component A structure: the forward trie over a
// tokenizer's decoded strings, the parallel reverse trie, and an
// Aho-Corasick scanner for substring-style membership queries. Built
// once per tokenizer and shared read-only by every driver instance that
// uses it.
type Vocabulary struct {
	Forward *Trie
	Reverse *Trie
	Scan    *Scanner
}

// Build constructs a Vocabulary from a decode table: index i is the
// decoded string for token id i. Empty strings are skipped (some
// tokenizers reserve ids with no printable form).
func Build(decoded []string) (*Vocabulary, error) {
	fwd := New()
	for id, s := range decoded {
		if s == "" {
			continue
		}
		fwd.Insert(s, id)
	}

	scan, err := NewScannerFromTrie(fwd)
	if err != nil {
		return nil, err
	}

	return &Vocabulary{
		Forward: fwd,
		Reverse: fwd.Reverse(),
		Scan:    scan,
	}, nil
}

// Contains reports whether s is a complete, known token string.
func (v *Vocabulary) Contains(s string) bool {
	return v.Forward.Contains(s)
}

// WithPrefix returns every token string beginning with prefix.
func (v *Vocabulary) WithPrefix(prefix string) []string {
	return v.Forward.WithPrefix(prefix)
}

// WithSuffix returns every token string ending with suffix, used by a
// biasing front-end to find continuations for an accepted walker's
// expected tail (§4.A).
func (v *Vocabulary) WithSuffix(suffix string) []string {
	return v.Reverse.WithSuffix(suffix)
}

// LongestValidPrefix returns the longest known token that is itself a
// prefix of s and shorter than s, the exact query token healing poses
// (§4.G).
func (v *Vocabulary) LongestValidPrefix(s string) (string, bool) {
	return v.Forward.LongestPrefixOf(s)
}
