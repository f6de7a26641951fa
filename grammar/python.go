package grammar

import "strings"

// pythonCompoundKeywords open a suite that needs an indented body; a
// line ending with one of these (and a trailing ':') cannot be the last
// line of a strictly-valid buffer.
var pythonCompoundKeywords = []string{
	"if", "elif", "else", "for", "while", "def", "class", "try", "except", "finally", "with",
}

// pythonValidator implements Validator as a bracket-balance plus
// trailing-colon/indentation shape check rather than a real Python
// grammar (see package doc).
type pythonValidator struct{}

// Python is the reference Validator for ```python fenced blocks (§6).
var Python Validator = pythonValidator{}

func (pythonValidator) Validate(buffer string, strict bool, start string) bool {
	balanced, open := bracketBalance(buffer)
	if !balanced {
		return false
	}
	if !strict {
		return true
	}
	if open {
		return false
	}

	lines := strings.Split(buffer, "\n")
	last := lastNonBlank(lines)
	if last == "" {
		return true
	}

	trimmed := strings.TrimRight(last, " \t")
	if strings.HasSuffix(trimmed, ":") {
		return false
	}
	for _, kw := range pythonCompoundKeywords {
		head := strings.TrimLeft(trimmed, " \t")
		if head == kw || strings.HasPrefix(head, kw+" ") || strings.HasPrefix(head, kw+"(") {
			if !strings.Contains(trimmed, ":") {
				return false
			}
		}
	}
	return true
}

func lastNonBlank(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i]
		}
	}
	return ""
}
