package bias

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuppressDisallowedKeepsAllowedUntouched(t *testing.T) {
	scores := Scores{1, 2, 3, 4}
	allowed := map[int]bool{1: true, 3: true}

	SuppressDisallowed.Bias(scores, allowed)

	assert.True(t, math.IsInf(float64(scores[0]), -1))
	assert.Equal(t, float32(2), scores[1])
	assert.True(t, math.IsInf(float64(scores[2]), -1))
	assert.Equal(t, float32(4), scores[3])
}

func TestBiaserFuncAdaptsPlainFunction(t *testing.T) {
	var called bool
	f := BiaserFunc(func(scores Scores, allowed map[int]bool) {
		called = true
	})

	f.Bias(Scores{1}, map[int]bool{})
	assert.True(t, called)
}
