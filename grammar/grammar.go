// Package grammar defines the external grammar-parser contract consumed
// by composite.Grammar (§6, §4.F): each grammar acceptor defers to a
// Validator to answer "is this buffer a valid (or still-possibly-valid)
// sentence?" instead of compiling its own language grammar.
//
// The two Validators shipped here (Bash, Python) are explicitly
// lightweight stand-ins for a real Lark/tree-sitter binding — balanced-
// delimiter and keyword-shape checks, not full language parsers. This
// module's own Non-goals rule out a general parser/regex engine; these
// exist only so composite.Grammar and its tests are exercisable without
// a real external dependency wired in. See DESIGN.md for why no example
// repo's own parser (PlayerR9-grammar, clarete-langlang, npillmayer-
// gorgo) was adopted wholesale here.
package grammar

// Validator is the external parser contract (§6): validate reports
// whether buffer is accepted by the grammar named by start. strict=false
// asks "is buffer a valid prefix of some sentence?"; strict=true asks
// "is buffer itself a complete sentence?".
type Validator interface {
	Validate(buffer string, strict bool, start string) bool
}

// ValidatorFunc adapts a plain function to the Validator interface, the
// same convention net/http.HandlerFunc and the stdlib's other *Func
// adapters use.
type ValidatorFunc func(buffer string, strict bool, start string) bool

// Validate implements Validator.
func (f ValidatorFunc) Validate(buffer string, strict bool, start string) bool {
	return f(buffer, strict, start)
}
