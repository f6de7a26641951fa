package primitive

import (
	"testing"

	"github.com/coregx/hsm/engine"
	"github.com/stretchr/testify/assert"
)

func TestWaitForSkipsFreeTextUntilTrigger(t *testing.T) {
	population := engine.WalkersOf(NewWaitFor(NewPhrase("STOP", true), 1))
	population = engine.AdvanceAll(population, "blah blah STOP")
	assert.NotEmpty(t, engine.Accepted(population))
}

func TestWaitForNeverAcceptsWithoutTrigger(t *testing.T) {
	population := engine.WalkersOf(NewWaitFor(NewPhrase("STOP", true), 1))
	population = engine.AdvanceAll(population, "blah blah")
	assert.Empty(t, engine.Accepted(population))
	assert.NotEmpty(t, population)
}

func TestChainRunsFirstThenSecond(t *testing.T) {
	c := NewChain(NewPhrase("foo", true), NewPhrase("bar", true))
	population := engine.WalkersOf(c)
	population = engine.AdvanceAll(population, "foobar")
	assert.NotEmpty(t, engine.Accepted(population))
}

func TestWaitForMinBufferDelaysTrigger(t *testing.T) {
	population := engine.WalkersOf(NewWaitFor(NewPhrase("STOP", true), 4))

	population = engine.AdvanceAll(population, "STOP")
	assert.Empty(t, engine.Accepted(population), "fewer than minBuffer characters are buffered, so the trigger must not even be proposed")

	population = engine.AdvanceAll(population, "STOP")
	assert.NotEmpty(t, engine.Accepted(population), "once minBuffer characters are buffered, a later STOP should trigger")
}

func TestEncapsulatedSkipsPreambleAndMatchesDelimiters(t *testing.T) {
	inner := NewPhrase("true", true)
	wrapped := Encapsulated("```json\n", inner, "\n```", 1)

	population := engine.WalkersOf(wrapped)
	population = engine.AdvanceAll(population, "here is json:\n```json\ntrue\n```")
	assert.NotEmpty(t, engine.Accepted(population))
}
