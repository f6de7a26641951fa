package heal

import (
	"testing"

	"github.com/coregx/hsm/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustVocab(t *testing.T, words []string) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.Build(words)
	require.NoError(t, err)
	return v
}

func TestHealSubstitutesKnownPrefix(t *testing.T) {
	v := mustVocab(t, []string{"cat", "cats"})

	cand, ok := Heal(v, "catalog", "alog")
	require.True(t, ok)
	assert.Equal(t, "cat", cand.Healed)
	assert.Equal(t, "alog", cand.Overrun)
}

func TestHealRejectsUnknownPrefix(t *testing.T) {
	v := mustVocab(t, []string{"dog"})

	_, ok := Heal(v, "catalog", "alog")
	assert.False(t, ok)
}

func TestHealRequiresProperRemainingSuffix(t *testing.T) {
	v := mustVocab(t, []string{"cat"})

	_, ok := Heal(v, "cat", "cat")
	assert.False(t, ok)

	_, ok = Heal(v, "cat", "")
	assert.False(t, ok)
}

func TestLongestHealableFindsBestSubstitution(t *testing.T) {
	v := mustVocab(t, []string{"he", "hello"})

	cand, ok := LongestHealable(v, "hello world")
	require.True(t, ok)
	assert.Equal(t, "hello", cand.Healed)
	assert.Equal(t, " world", cand.Overrun)
}

func TestLongestHealableRejectsExactMatch(t *testing.T) {
	v := mustVocab(t, []string{"cat"})

	_, ok := LongestHealable(v, "cat")
	assert.False(t, ok)
}

func TestScanKnownTokens(t *testing.T) {
	v := mustVocab(t, []string{"cat", "dog"})

	matches := ScanKnownTokens(v, []byte("a cat and a dog"))
	assert.Len(t, matches, 2)
}
