package transliterate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Result is the outcome of transliterating a text with a registry profile.
type Result struct {
	Text      string    // transliterated text
	Lang      string    // language code of the profile, empty for unknown keys
	Direction Direction // writing direction of Text
}

// Transliterate converts text with the rules of profile p.
// A nil or empty profile leaves text unchanged.
//
// Example for Greek:
//
//	"logos " => "λογος ".
func Transliterate(text string, p *Profile) string {
	return p.Transliterate(text)
}

// Transliterate converts text with the rules of p.
//
// Rules are applied one after the other, longest pattern first, each one
// replacing every non-overlapping occurrence in the not yet converted parts
// of the text. Afterwards the word-final form is applied if text ends with
// a space.
func (p *Profile) Transliterate(text string) string {
	if p.IsEmpty() || text == "" {
		return text
	}
	spans := []span{{text: text}}
	for i := range p.sorted {
		spans = substitute(spans, &p.sorted[i])
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, s := range spans {
		b.WriteString(s.text)
	}
	return p.applyFinalForm(b.String())
}

// span is a piece of text. Converted spans are output of a rule and are not
// visible to later rules.
type span struct {
	text      string
	converted bool
}

func substitute(spans []span, m *matcher) []span {
	out := make([]span, 0, len(spans))
	for _, s := range spans {
		if s.converted {
			out = append(out, s)
			continue
		}
		rest := s.text
		for rest != "" {
			at, n := m.index(rest)
			if at < 0 {
				break
			}
			if at > 0 {
				out = append(out, span{text: rest[:at]})
			}
			out = append(out, span{text: m.replacement, converted: true})
			rest = rest[at+n:]
		}
		if rest != "" {
			out = append(out, span{text: rest})
		}
	}
	return out
}

// applyFinalForm replaces the last letter before trailing whitespace by its
// word-final form. It only triggers if text ends with a space, i.e. a word
// has just been completed. Earlier words are left alone. When the final form
// is applied, the trailing whitespace collapses to a single space.
func (p *Profile) applyFinalForm(text string) string {
	if len(p.FinalVariants) == 0 || !strings.HasSuffix(text, " ") {
		return text
	}
	word := strings.TrimRightFunc(text, unicode.IsSpace)
	last, size := utf8.DecodeLastRuneInString(word)
	if size == 0 {
		return text
	}
	final, ok := p.FinalVariants[last]
	if !ok {
		return text
	}
	return word[:len(word)-size] + string(final) + " "
}
