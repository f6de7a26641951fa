// Package bias defines the logits-biasing front-end contract consumed by
// driver (§6): given a score vector and the set of token ids the live
// walker population still accepts, return an additive bias vector that
// suppresses every disallowed id. This module does not depend on any
// specific numeric/tensor backend — Scores is a plain []float32 so a
// caller can adapt it to whatever tensor library already holds the
// model's logits.
package bias

import "math"

// Scores is a flat, mutable score vector indexed by token id.
type Scores []float32

// Biaser additively biases scores in place, given the set of token ids
// currently allowed by the walker population.
type Biaser interface {
	Bias(scores Scores, allowed map[int]bool)
}

// BiaserFunc adapts a plain function to Biaser.
type BiaserFunc func(scores Scores, allowed map[int]bool)

// Bias implements Biaser.
func (f BiaserFunc) Bias(scores Scores, allowed map[int]bool) { f(scores, allowed) }

// SuppressDisallowed is a minimal reference Biaser satisfying the
// consumed contract: every id not in allowed is driven to -Inf. Real
// front-ends typically substitute a large negative constant tuned to
// their own sampler instead of -Inf, to keep a downstream softmax from
// producing NaNs when every id happens to be suppressed.
var SuppressDisallowed Biaser = BiaserFunc(func(scores Scores, allowed map[int]bool) {
	for id := range scores {
		if !allowed[id] {
			scores[id] = float32(math.Inf(-1))
		}
	}
})
