package grammar

// bracketBalance reports whether buffer's brackets/parens/braces and
// quotes are balanced (balanced==true) and whether any are still open
// (open==true) — the structural check both reference validators share
// before applying their own per-language keyword checks.
func bracketBalance(buf string) (balanced, open bool) {
	var stack []byte
	var quote byte
	escaped := false

	for i := 0; i < len(buf); i++ {
		c := buf[i]

		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}

		switch c {
		case '\'', '"':
			quote = c
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 {
				return false, false
			}
			top := stack[len(stack)-1]
			if (c == ')' && top != '(') || (c == ']' && top != '[') || (c == '}' && top != '{') {
				return false, false
			}
			stack = stack[:len(stack)-1]
		}
	}

	return true, len(stack) > 0 || quote != 0
}

// countWord counts non-overlapping whole-word occurrences of word in
// buf, used by the Bash validator's keyword-pair balance check.
func countWord(buf, word string) int {
	count := 0
	for i := 0; i+len(word) <= len(buf); i++ {
		if buf[i:i+len(word)] != word {
			continue
		}
		if i > 0 && isWordByte(buf[i-1]) {
			continue
		}
		end := i + len(word)
		if end < len(buf) && isWordByte(buf[end]) {
			continue
		}
		count++
		i = end - 1
	}
	return count
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
