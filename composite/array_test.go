package composite

import (
	"testing"

	"github.com/coregx/hsm/engine"
	"github.com/coregx/hsm/primitive"
	"github.com/stretchr/testify/assert"
)

func arrayAccepts(arr *Array, chunks ...string) bool {
	population := engine.WalkersOf(arr)
	for _, c := range chunks {
		population = engine.AdvanceAll(population, c)
		if len(population) == 0 {
			return false
		}
	}
	for _, w := range population {
		if !w.HasReachedAcceptState() {
			continue
		}
		if rem, has := w.RemainingInput(); has && rem != "" {
			continue
		}
		return true
	}
	return false
}

func TestArrayAcceptsEmpty(t *testing.T) {
	arr := NewArray(primitive.NewNumber(), 0, 0)
	assert.True(t, arrayAccepts(arr, "[]"))
}

func TestArrayAcceptsElements(t *testing.T) {
	arr := NewArray(primitive.NewNumber(), 0, 0)
	assert.True(t, arrayAccepts(arr, "[1,2,3]"))
}

func TestArrayEnforcesMinItems(t *testing.T) {
	arr := NewArray(primitive.NewNumber(), 2, 0)
	assert.False(t, arrayAccepts(arr, "[1]"))
	assert.True(t, arrayAccepts(arr, "[1,2]"))
}

func TestArrayEnforcesMaxItems(t *testing.T) {
	arr := NewArray(primitive.NewNumber(), 0, 2)
	assert.False(t, arrayAccepts(arr, "[1,2,3]"))
	assert.True(t, arrayAccepts(arr, "[1,2]"))
}
