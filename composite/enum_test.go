package composite

import (
	"testing"

	"github.com/coregx/hsm/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnumRejectsEmptyValues(t *testing.T) {
	_, err := NewEnum()
	require.Error(t, err)
}

func TestEnumAcceptsDeclaredLiteral(t *testing.T) {
	e, err := NewEnum("red", "green", 3.0)
	require.NoError(t, err)

	population := engine.WalkersOf(e)
	population = engine.AdvanceAll(population, `"green"`)
	assert.NotEmpty(t, engine.Accepted(population))
}

func TestEnumRejectsUndeclaredLiteral(t *testing.T) {
	e, err := NewEnum("red", "green")
	require.NoError(t, err)

	population := engine.WalkersOf(e)
	population = engine.AdvanceAll(population, `"blue"`)
	assert.Empty(t, population)
}

func TestEnumAcceptsNumericLiteral(t *testing.T) {
	e, err := NewEnum(1.0, 2.0)
	require.NoError(t, err)

	population := engine.WalkersOf(e)
	population = engine.AdvanceAll(population, "2")
	assert.NotEmpty(t, engine.Accepted(population))
}
