package driver

import (
	"strings"
	"testing"

	"github.com/coregx/hsm/hsmerr"
	"github.com/coregx/hsm/primitive"
	"github.com/coregx/hsm/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenizer is a minimal whitespace-free byte-ish tokenizer: each id
// maps 1:1 to a fixed string table, and Encode greedily splits on exact
// table matches, taking the first entry in table order that matches.
type fakeTokenizer struct {
	table []string
}

func (f *fakeTokenizer) Decode(id int) (string, bool) {
	if id < 0 || id >= len(f.table) {
		return "", false
	}
	return f.table[id], true
}

func (f *fakeTokenizer) Encode(s string) ([]int, error) {
	var ids []int
	for len(s) > 0 {
		matched := false
		for id, tok := range f.table {
			if tok != "" && strings.HasPrefix(s, tok) {
				ids = append(ids, id)
				s = s[len(tok):]
				matched = true
				break
			}
		}
		if !matched {
			return nil, hsmerr.ErrNotAccepted
		}
	}
	return ids, nil
}

func (f *fakeTokenizer) VocabSize() int { return len(f.table) }

func (f *fakeTokenizer) IsSpecial(id int) bool { return f.table[id] == "" }

func newFakeDriver(t *testing.T, table []string) (*Driver, *fakeTokenizer) {
	t.Helper()
	tok := &fakeTokenizer{table: table}
	v, err := vocab.Build(table)
	require.NoError(t, err)

	d, err := New(tok, v, DefaultConfig(), nil)
	require.NoError(t, err)
	return d, tok
}

func idOf(t *testing.T, tok *fakeTokenizer, s string) int {
	t.Helper()
	for id, w := range tok.table {
		if w == s {
			return id
		}
	}
	t.Fatalf("no token id for %q", s)
	return -1
}

func TestDriverProcessTokenAcceptsExact(t *testing.T) {
	d, tok := newFakeDriver(t, []string{`"hi"`})
	d.SetSchema(primitive.NewPhrase(`"hi"`, true), false, nil)

	verdict, id := d.ProcessToken(idOf(t, tok, `"hi"`))
	assert.Equal(t, Accept, verdict)
	assert.Equal(t, idOf(t, tok, `"hi"`), id)
	assert.Equal(t, 1, d.Stats().Steps)
	assert.True(t, d.HasReachedAcceptState())
}

func TestDriverProcessTokenRejectsBadToken(t *testing.T) {
	d, tok := newFakeDriver(t, []string{`"hi"`, "bye"})
	d.SetSchema(primitive.NewPhrase(`"hi"`, true), false, nil)

	verdict, _ := d.ProcessToken(idOf(t, tok, "bye"))
	assert.Equal(t, Reject, verdict)
	assert.Equal(t, 1, d.Stats().Rejects)
	assert.Equal(t, 0, d.Stats().Steps)
}

func TestDriverProcessTokenHealsOverlongToken(t *testing.T) {
	d, tok := newFakeDriver(t, []string{"true", "truely"})
	d.SetSchema(primitive.NewPhrase("true", true), false, nil)

	verdict, id := d.ProcessToken(idOf(t, tok, "truely"))
	assert.Equal(t, Healed, verdict)
	assert.Equal(t, idOf(t, tok, "true"), id)
	assert.Equal(t, 1, d.Stats().Heals)
}

func TestDriverConsumeRawDoesNotHeal(t *testing.T) {
	d, _ := newFakeDriver(t, []string{"true", "truely"})
	d.SetSchema(primitive.NewPhrase("true", true), false, nil)

	require.NoError(t, d.ConsumeRaw("true"))
}

func TestDriverSetSchemaWithDelimiters(t *testing.T) {
	d, tok := newFakeDriver(t, []string{"```json\n", "true", "\n```"})
	d.SetSchema(primitive.NewPhrase("true", true), true, nil)

	for _, tk := range []string{"```json\n", "true", "\n```"} {
		verdict, _ := d.ProcessToken(idOf(t, tok, tk))
		require.Equal(t, Accept, verdict)
	}
	assert.True(t, d.HasReachedAcceptState())
}

func TestDriverIsInStructuredRegionFalseInsideJSONString(t *testing.T) {
	d, tok := newFakeDriver(t, []string{`"`, "hi"})
	d.SetSchema(primitive.NewString(0, 0, nil), false, nil)

	assert.True(t, d.IsInStructuredRegion(), "no string content consumed yet")

	verdict, _ := d.ProcessToken(idOf(t, tok, `"`))
	require.Equal(t, Accept, verdict)
	assert.False(t, d.IsInStructuredRegion(), "inside an open JSON string, sampling should diverge into free-form mode")

	verdict, _ = d.ProcessToken(idOf(t, tok, "hi"))
	require.Equal(t, Accept, verdict)
	assert.False(t, d.IsInStructuredRegion())
}

func TestDriverAllowedTokenIDs(t *testing.T) {
	d, tok := newFakeDriver(t, []string{"true", "false"})
	d.SetSchema(primitive.NewPhrase("true", true), false, nil)

	allowed := d.AllowedTokenIDs()
	assert.True(t, allowed[idOf(t, tok, "true")])
	assert.False(t, allowed[idOf(t, tok, "false")])
}

func TestConfigValidateRejectsNegativePopulation(t *testing.T) {
	cfg := Config{MaxPopulation: -1}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsEmptyDelimitersWhenEnabled(t *testing.T) {
	cfg := Config{UseDelimiters: true}
	assert.Error(t, cfg.Validate())
}

func TestStatsStepsSinceLastHeal(t *testing.T) {
	var s Stats
	s.Steps = 3
	assert.Equal(t, 3, s.StepsSinceLastHeal())

	s.Heals = 1
	s.lastHealStep = 2
	assert.Equal(t, 1, s.StepsSinceLastHeal())
}
