package primitive

import "github.com/coregx/hsm/accept"

// Encapsulated wraps inner in a WaitFor(open) → inner → close chain
// (§4.E): free-form text is skipped until the opening delimiter appears,
// inner then runs to completion, and the closing delimiter is matched
// exactly. Used by driver.Driver.SetSchema for fenced code blocks
// (``` json ... ``` and friends). minBuffer is forwarded to the leading
// WaitFor unchanged (see WaitFor's doc comment); pass 1 for the common
// "propose the delimiter as soon as it could possibly start" case.
func Encapsulated(open string, inner accept.Acceptor, close string, minBuffer int) accept.Acceptor {
	waitForOpen := NewWaitFor(NewPhrase(open, true), minBuffer)
	return NewChain(waitForOpen, NewChain(inner, NewPhrase(close, true)))
}
