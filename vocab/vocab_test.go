package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrieInsertAndContains(t *testing.T) {
	tr := New()
	tr.Insert("cat", 1)
	tr.Insert("car", 2)

	assert.True(t, tr.Contains("cat"))
	assert.True(t, tr.Contains("car"))
	assert.False(t, tr.Contains("ca"))
	assert.Equal(t, 2, tr.Len())
}

func TestTrieWithPrefix(t *testing.T) {
	tr := New()
	tr.Insert("cat", 1)
	tr.Insert("car", 2)
	tr.Insert("dog", 3)

	got := tr.WithPrefix("ca")
	assert.ElementsMatch(t, []string{"cat", "car"}, got)
}

func TestTrieLongestPrefixOf(t *testing.T) {
	tr := New()
	tr.Insert("he", 1)
	tr.Insert("hello", 2)

	prefix, ok := tr.LongestPrefixOf("hello world")
	require.True(t, ok)
	assert.Equal(t, "hello", prefix)

	prefix, ok = tr.LongestPrefixOf("helicopter")
	require.True(t, ok)
	assert.Equal(t, "he", prefix)

	_, ok = tr.LongestPrefixOf("xyz")
	assert.False(t, ok)
}

func TestTrieReverseWithSuffix(t *testing.T) {
	tr := New()
	tr.Insert("running", 1)
	tr.Insert("walking", 2)
	tr.Insert("cat", 3)

	rev := tr.Reverse()
	got := rev.WithSuffix("ing")
	assert.ElementsMatch(t, []string{"running", "walking"}, got)
}

func TestVocabularyBuild(t *testing.T) {
	v, err := Build([]string{"", "cat", "car", "dog"})
	require.NoError(t, err)

	assert.True(t, v.Contains("cat"))
	assert.False(t, v.Contains(""))
	assert.ElementsMatch(t, []string{"cat", "car"}, v.WithPrefix("ca"))

	prefix, ok := v.LongestValidPrefix("catalog")
	require.True(t, ok)
	assert.Equal(t, "cat", prefix)
}

func TestVocabularyScanFindsKnownTokens(t *testing.T) {
	v, err := Build([]string{"cat", "dog"})
	require.NoError(t, err)

	matches := v.Scan.FindAll([]byte("a cat and a dog"))
	require.Len(t, matches, 2)
	assert.Equal(t, "cat", matches[0].Token)
	assert.Equal(t, "dog", matches[1].Token)
}
