package transliterate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// matcher is a rule with its pattern pre-folded for case-insensitive search.
type matcher struct {
	pattern     []rune // folded
	replacement string
}

func newMatcher(rule Rule) matcher {
	pattern := make([]rune, 0, utf8.RuneCountInString(rule.Pattern))
	for _, r := range rule.Pattern {
		pattern = append(pattern, fold(r))
	}
	return matcher{pattern: pattern, replacement: rule.Replacement}
}

// fold maps r to its canonical form for case-insensitive comparison.
// Runes outside ASCII never fold into ASCII: U+017F LONG S does not
// match "s" and U+212A KELVIN SIGN does not match "k".
func fold(r rune) rune {
	u := unicode.ToUpper(r)
	if r >= utf8.RuneSelf && u < utf8.RuneSelf {
		return r
	}
	return u
}

func foldString(s string) string {
	return strings.Map(fold, s)
}

// index returns the byte offset and byte length of the first occurrence
// of the pattern in s, or (-1, 0).
func (m *matcher) index(s string) (int, int) {
	if len(m.pattern) == 0 {
		return -1, 0
	}
	for start := 0; start < len(s); {
		first, size := utf8.DecodeRuneInString(s[start:])
		if fold(first) == m.pattern[0] {
			if n := m.matchAt(s[start+size:]); n >= 0 {
				return start, size + n
			}
		}
		start += size
	}
	return -1, 0
}

// matchAt checks whether s starts with pattern[1:] and returns the number of
// bytes consumed, or -1.
func (m *matcher) matchAt(s string) int {
	n := 0
	for _, want := range m.pattern[1:] {
		if n >= len(s) {
			return -1
		}
		r, size := utf8.DecodeRuneInString(s[n:])
		if fold(r) != want {
			return -1
		}
		n += size
	}
	return n
}
