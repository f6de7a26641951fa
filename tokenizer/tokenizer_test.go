package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTokenizer struct {
	decoded []string
	special map[int]bool
}

func (f *fakeTokenizer) Decode(id int) (string, bool) {
	if id < 0 || id >= len(f.decoded) {
		return "", false
	}
	return f.decoded[id], true
}

func (f *fakeTokenizer) Encode(s string) ([]int, error) { return nil, nil }

func (f *fakeTokenizer) VocabSize() int { return len(f.decoded) }

func (f *fakeTokenizer) IsSpecial(id int) bool { return f.special[id] }

func TestBuildDecodeTableSkipsSpecialTokens(t *testing.T) {
	tok := &fakeTokenizer{
		decoded: []string{"<bos>", "cat", "dog", "<eos>"},
		special: map[int]bool{0: true, 3: true},
	}

	table := BuildDecodeTable(tok)
	assert.Equal(t, []string{"", "cat", "dog", ""}, table)
}
