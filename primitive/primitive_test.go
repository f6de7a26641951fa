package primitive

import (
	"testing"

	"github.com/coregx/hsm/engine"
	"github.com/stretchr/testify/assert"
)

func TestPhraseAcceptsExactLiteral(t *testing.T) {
	population := engine.WalkersOf(NewPhrase("true", true))
	population = engine.AdvanceAll(population, "true")
	assert.NotEmpty(t, engine.Accepted(population))
}

func TestPhraseIsCaseInsensitiveWhenConfigured(t *testing.T) {
	population := engine.WalkersOf(NewPhrase("true", false))
	population = engine.AdvanceAll(population, "TRUE")
	assert.NotEmpty(t, engine.Accepted(population))
}

func TestPhraseRejectsMismatch(t *testing.T) {
	population := engine.WalkersOf(NewPhrase("true", true))
	population = engine.AdvanceAll(population, "false")
	assert.Empty(t, population)
}

func TestNumberAcceptsInteger(t *testing.T) {
	population := engine.WalkersOf(NewNumber())
	population = engine.AdvanceAll(population, "42")
	assert.NotEmpty(t, engine.Accepted(population))
}

func TestNumberAcceptsFractionAndExponent(t *testing.T) {
	population := engine.WalkersOf(NewNumber())
	population = engine.AdvanceAll(population, "-3.14e+10")
	assert.NotEmpty(t, engine.Accepted(population))
}

func TestNumberRejectsBareSign(t *testing.T) {
	population := engine.WalkersOf(NewNumber())
	population = engine.AdvanceAll(population, "-")
	assert.Empty(t, engine.Accepted(population))
}

func TestWhitespaceAcceptsRun(t *testing.T) {
	population := engine.WalkersOf(NewWhitespace(0, 10))
	population = engine.AdvanceAll(population, "   ")
	assert.NotEmpty(t, engine.Accepted(population))
}

func TestWhitespaceEnforcesMinLen(t *testing.T) {
	population := engine.WalkersOf(NewWhitespace(2, 10))
	population = engine.AdvanceAll(population, " ")
	for _, w := range population {
		assert.False(t, w.HasReachedAcceptState())
	}
}

func TestCharacterClassAcceptsDigitRun(t *testing.T) {
	population := engine.WalkersOf(Integer())
	population = engine.AdvanceAll(population, "12345")
	assert.NotEmpty(t, engine.Accepted(population))
}

func TestCharacterClassRejectsEmptyWhenRequired(t *testing.T) {
	population := engine.WalkersOf(Integer())
	population = engine.AdvanceAll(population, "x")
	assert.Empty(t, population)
}
