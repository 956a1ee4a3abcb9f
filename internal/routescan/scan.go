package routescan

import (
	"regexp"
	"strings"
)

// FindCalls returns the raw argument text of every call that starts at an
// occurrence of needle. The needle must end with the opening parenthesis,
// e.g. ".route(". Parentheses inside double-quoted strings do not count
// towards nesting. Calls that are still open at end of input are dropped.
func FindCalls(text, needle string) []string {
	var calls []string
	i := 0
	for {
		idx := strings.Index(text[i:], needle)
		if idx == -1 {
			break
		}
		start := i + idx + len(needle)
		end, ok := closingParen(text, start)
		if !ok {
			break
		}
		calls = append(calls, text[start:end])
		i = end + 1
	}
	return calls
}

// closingParen scans from start, which sits just inside an open parenthesis,
// and returns the index of the matching closing parenthesis.
func closingParen(text string, start int) (int, bool) {
	depth := 1
	inStr := false
	esc := false
	for j := start; j < len(text); j++ {
		ch := text[j]
		if inStr {
			switch {
			case esc:
				esc = false
			case ch == '\\':
				esc = true
			case ch == '"':
				inStr = false
			}
			continue
		}
		switch ch {
		case '"':
			inStr = true
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return 0, false
}

// SplitTopLevelComma splits args at the first comma that is neither nested in
// parentheses nor inside a string literal.
func SplitTopLevelComma(args string) (left, right string, ok bool) {
	depth := 0
	inStr := false
	esc := false
	for i := 0; i < len(args); i++ {
		ch := args[i]
		if inStr {
			switch {
			case esc:
				esc = false
			case ch == '\\':
				esc = true
			case ch == '"':
				inStr = false
			}
			continue
		}
		switch ch {
		case '"':
			inStr = true
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				return args[:i], args[i+1:], true
			}
		}
	}
	return "", "", false
}

var (
	leadingLiteral = regexp.MustCompile(`^\s*"((?:\\.|[^"\\])*)"`)
	literalEscapes = strings.NewReplacer(`\\`, `\`, `\"`, `"`)
)

// ExtractStringLiteral returns the decoded double-quoted literal expr starts
// with. Only \\ and \" are decoded; other escapes are left as written.
func ExtractStringLiteral(expr string) (string, bool) {
	m := leadingLiteral.FindStringSubmatch(expr)
	if m == nil {
		return "", false
	}
	return unescapeLiteral(m[1]), true
}

func unescapeLiteral(raw string) string {
	return literalEscapes.Replace(raw)
}
