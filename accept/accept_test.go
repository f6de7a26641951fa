package accept_test

import (
	"testing"

	"github.com/coregx/hsm/accept"
	"github.com/coregx/hsm/engine"
	"github.com/coregx/hsm/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEndState(t *testing.T) {
	ends := []accept.State{accept.Int(1), accept.End}
	assert.True(t, accept.IsEndState(accept.Int(1), ends))
	assert.True(t, accept.IsEndState(accept.End, ends))
	assert.False(t, accept.IsEndState(accept.Int(2), ends))
}

func TestIntFormatsDecimalState(t *testing.T) {
	assert.Equal(t, accept.State("0"), accept.Int(0))
	assert.Equal(t, accept.State("42"), accept.Int(42))
}

func TestWalkerEqualComparesStateTargetAndRawValue(t *testing.T) {
	a := accept.NewWalker(primitive.NewPhrase("hi", true), accept.Int(0))
	b := accept.NewWalker(primitive.NewPhrase("hi", true), accept.Int(0))
	assert.True(t, a.Equal(b))

	a.SetRawValue("h")
	assert.False(t, a.Equal(b))
}

func TestWalkerHashKeyMatchesEqual(t *testing.T) {
	a := accept.NewWalker(primitive.NewPhrase("hi", true), accept.Int(0))
	b := accept.NewWalker(primitive.NewPhrase("hi", true), accept.Int(0))
	assert.Equal(t, a.HashKey(), b.HashKey())
}

func TestWalkerCloneDuplicatesExploredEdges(t *testing.T) {
	w := accept.NewWalker(primitive.NewPhrase("hi", true), accept.Int(0))
	w.MarkExplored()

	clone := w.Clone()
	clone.SetRawValue("h")
	clone.MarkExplored()

	assert.Len(t, w.ExploredEdges(), 1)
	assert.Len(t, clone.ExploredEdges(), 2)
}

func TestWalkerCurrentValueParsesNumericBeforeString(t *testing.T) {
	w := accept.NewWalker(primitive.NewNumber(), accept.Int(0))
	w.SetRawValue("42")
	assert.Equal(t, int64(42), w.CurrentValue())

	w.SetRawValue("abc")
	assert.Equal(t, "abc", w.CurrentValue())
}

func TestSequenceDefaultWalkersBranchesOverFirstEdge(t *testing.T) {
	seq := primitive.NewChain(primitive.NewPhrase("a", true), primitive.NewPhrase("b", true))
	population := engine.WalkersOf(seq)
	require.NotEmpty(t, population)

	population = engine.AdvanceAll(population, "ab")
	assert.NotEmpty(t, engine.Accepted(population))
}
