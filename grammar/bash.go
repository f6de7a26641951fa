package grammar

import "strings"

// bashBlocks pairs each Bash compound-statement opener with its closer,
// used to check keyword balance the same way bracketBalance checks
// punctuation balance.
var bashBlocks = [][2]string{
	{"if", "fi"},
	{"for", "done"},
	{"while", "done"},
	{"until", "done"},
	{"case", "esac"},
}

// bashValidator implements Validator as a keyword-shape/bracket-balance
// check rather than a real shell grammar (see package doc). Strict mode
// additionally requires every opened compound statement to have closed.
type bashValidator struct{}

// Bash is the reference Validator for ```bash fenced blocks (§6).
var Bash Validator = bashValidator{}

func (bashValidator) Validate(buffer string, strict bool, start string) bool {
	balanced, open := bracketBalance(buffer)
	if !balanced {
		return false
	}

	for _, pair := range bashBlocks {
		opens := countWord(buffer, pair[0])
		closes := countWord(buffer, pair[1])
		if closes > opens {
			return false
		}
		if strict && closes != opens {
			return false
		}
	}

	if strict && open {
		return false
	}

	trimmed := strings.TrimRight(buffer, " \t")
	danglingOperator := strings.HasSuffix(trimmed, "|") || strings.HasSuffix(trimmed, "&&") || strings.HasSuffix(trimmed, "||")
	if strict && danglingOperator {
		return false
	}

	return true
}
