package primitive

import "github.com/coregx/hsm/accept"

const (
	chainFirst  accept.State = "0"
	chainSecond accept.State = "1"
)

// Chain runs two acceptors back-to-back as a two-state machine (§4.E):
// First, then Second, with no branching alternative at either step.
type Chain struct {
	First, Second accept.Acceptor
}

// NewChain builds a Chain of exactly two acceptors, run in order.
func NewChain(first, second accept.Acceptor) *Chain {
	return &Chain{First: first, Second: second}
}

func (c *Chain) StartState() accept.State { return chainFirst }
func (c *Chain) EndStates() []accept.State {
	return []accept.State{accept.End}
}
func (c *Chain) IsOptional() bool      { return c.First.IsOptional() && c.Second.IsOptional() }
func (c *Chain) IsCaseSensitive() bool { return c.First.IsCaseSensitive() }

func (c *Chain) EdgesFrom(state accept.State) []accept.Edge {
	switch state {
	case chainFirst:
		return []accept.Edge{{Sub: c.First, Target: chainSecond}}
	case chainSecond:
		return []accept.Edge{{Sub: c.Second, Target: accept.End}}
	default:
		return nil
	}
}

func (c *Chain) NewWalker(state accept.State) *accept.Walker {
	return accept.NewWalker(c, state)
}

func (c *Chain) Walkers() []*accept.Walker {
	return accept.DefaultWalkers(c)
}
