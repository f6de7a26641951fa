package composite

import (
	"testing"

	"github.com/coregx/hsm/engine"
	"github.com/coregx/hsm/primitive"
	"github.com/stretchr/testify/assert"
)

func TestSequenceRunsItemsInOrder(t *testing.T) {
	seq := NewSequence(primitive.NewPhrase("foo", true), primitive.NewPhrase("bar", true))

	population := engine.WalkersOf(seq)
	population = engine.AdvanceAll(population, "foobar")
	assert.NotEmpty(t, engine.Accepted(population))
}

func TestSequenceRejectsOutOfOrder(t *testing.T) {
	seq := NewSequence(primitive.NewPhrase("foo", true), primitive.NewPhrase("bar", true))

	population := engine.WalkersOf(seq)
	population = engine.AdvanceAll(population, "barfoo")
	assert.Empty(t, engine.Accepted(population))
}

func TestSequenceEmptyIsOptional(t *testing.T) {
	seq := NewSequence()
	assert.True(t, seq.IsOptional())
}

func TestAnyOfAcceptsEitherAlternative(t *testing.T) {
	any := NewAnyOf(primitive.NewPhrase("true", true), primitive.NewPhrase("false", true))

	for _, tok := range []string{"true", "false"} {
		population := engine.WalkersOf(any)
		population = engine.AdvanceAll(population, tok)
		assert.NotEmptyf(t, engine.Accepted(population), "expected %q to be accepted", tok)
	}
}

func TestAnyOfRejectsNeitherAlternative(t *testing.T) {
	any := NewAnyOf(primitive.NewPhrase("true", true), primitive.NewPhrase("false", true))

	population := engine.WalkersOf(any)
	population = engine.AdvanceAll(population, "maybe")
	assert.Empty(t, population)
}
