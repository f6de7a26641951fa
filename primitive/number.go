package primitive

import "github.com/coregx/hsm/accept"

var digitRange = [][2]byte{{'0', '9'}}

// NewDigits returns a CharacterClass over ASCII digits, minRun or-more.
func NewDigits(minRun int) *CharacterClass {
	return NewCharacterClass(digitRange, minRun)
}

// Integer accepts a JSON-style integer: one or more digits, grounded on
// the reference IntegerAcceptor (itself a DigitAcceptor/CharacterAcceptor
// specialization).
func Integer() *CharacterClass {
	return NewDigits(1)
}

// number graph states, mirroring NumberAcceptor's graph shape:
//
//	0 -("-")-> 1            0 -(digits)-> 2
//	1 -(digits)-> 2
//	2 -(".")-> 2b            2b -(digits+)-> 3
//	2 -([eE])-> 4            3 -([eE])-> 4
//	4 -([+-])-> 5            4 -(digits)-> $
//	5 -(digits)-> $
const (
	numStart    accept.State = "0"
	numSign     accept.State = "1"
	numInt      accept.State = "2"
	numFracDot  accept.State = "2b"
	numFrac     accept.State = "3"
	numExpSign  accept.State = "4"
	numExpDigit accept.State = "5"
)

// Number accepts a well-formed JSON number (integer, optional fractional
// part, optional exponent), grounded on the reference NumberAcceptor's
// state graph (pse/acceptors/basic/number/number_acceptor.py).
type Number struct{}

// NewNumber constructs the Number acceptor.
func NewNumber() *Number { return &Number{} }

func (n *Number) StartState() accept.State  { return numStart }
func (n *Number) IsOptional() bool          { return false }
func (n *Number) IsCaseSensitive() bool     { return true }
func (n *Number) EndStates() []accept.State { return []accept.State{numInt, numFrac, accept.End} }

func (n *Number) EdgesFrom(state accept.State) []accept.Edge {
	switch state {
	case numStart:
		return []accept.Edge{
			{Sub: NewPhrase("-", true), Target: numSign},
			{Sub: Integer(), Target: numInt},
		}
	case numSign:
		return []accept.Edge{{Sub: Integer(), Target: numInt}}
	case numInt:
		return []accept.Edge{
			{Sub: NewPhrase(".", true), Target: numFracDot},
			{Sub: NewCharacterClass([][2]byte{{'e', 'e'}, {'E', 'E'}}, 1), Target: numExpSign},
		}
	case numFracDot:
		return []accept.Edge{{Sub: NewDigits(1), Target: numFrac}}
	case numFrac:
		return []accept.Edge{
			{Sub: NewCharacterClass([][2]byte{{'e', 'e'}, {'E', 'E'}}, 1), Target: numExpSign},
		}
	case numExpSign:
		return []accept.Edge{
			{Sub: NewCharacterClass([][2]byte{{'+', '+'}, {'-', '-'}}, 1), Target: numExpDigit},
			{Sub: Integer(), Target: accept.End},
		}
	case numExpDigit:
		return []accept.Edge{{Sub: Integer(), Target: accept.End}}
	default:
		return nil
	}
}

func (n *Number) NewWalker(state accept.State) *accept.Walker {
	return accept.NewWalker(n, state)
}

func (n *Number) Walkers() []*accept.Walker {
	return accept.DefaultWalkers(n)
}

// FracDotState exposes the Number graph's fractional-dot target state so
// a schema-level wrapper (jsonschema's integer handling) can forbid
// transitioning into it without reaching into unexported state.
func FracDotState() accept.State { return numFracDot }
