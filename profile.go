package transliterate

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"golang.org/x/text/language"
)

// Errors reported while compiling a profile or a registry.
var (
	ErrEmptyProfile     = errors.New("profile has no rules")
	ErrInvalidRule      = errors.New("rule has empty pattern or replacement")
	ErrDuplicatePattern = errors.New("duplicate pattern")
	ErrDanglingFinal    = errors.New("final variant maps a character no rule produces")
	ErrDuplicateProfile = errors.New("duplicate profile name")
)

// Rule maps a short ASCII/Latin pattern to its native-script replacement.
// Patterns are matched case-insensitively.
type Rule struct {
	Pattern     string
	Replacement string
}

// RuleReader yields rules one-by-one.
// It should return io.EOF when the stream is exhausted.
type RuleReader interface {
	Next() (pattern string, replacement string, err error)
}

// Profile is a compiled input method.
//
// A profile contains:
//   - rules in declaration order, as handed to LoadProfile
//   - an optional table of word-final letter forms.
//
// Multiple profiles may share a Code: two input methods can target the
// same script.
type Profile struct {
	Name          string        // registry key, e.g. "greek"
	Code          string        // language tag used for output annotation, e.g. "el"
	Tag           language.Tag  // parsed form of Code
	Rules         []Rule        // declaration order
	FinalVariants map[rune]rune // base letter => word-final form
	sorted        []matcher     // rules by descending pattern length, ties in declaration order
	prefixes      *trie.Trie    // folded pattern => Rule
	direction     Direction
}

// identity is handed out for unknown registry keys. It has no rules and
// transliterates every input to itself.
var identity = &Profile{}

// LoadProfile compiles rules from a streaming, format-agnostic source.
//
// File format parsing is outside the base package. Use adapters like package
// tomlprofiles to parse concrete formats and feed this API.
func LoadProfile(name, code string, reader RuleReader, finals map[rune]rune) (p *Profile, err error) {
	var tag language.Tag
	if tag, err = language.Parse(code); err != nil {
		return nil, fmt.Errorf("profile %q: language code %q: %w", name, code, err)
	}
	p = &Profile{
		Name:     name,
		Code:     code,
		Tag:      tag,
		prefixes: trie.New(),
	}
	seen := make(map[string]bool)
	produced := make(map[string]bool)
	for {
		var pattern, replacement string
		pattern, replacement, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		if pattern == "" || replacement == "" {
			return nil, fmt.Errorf("profile %q: %w: %q => %q", name, ErrInvalidRule, pattern, replacement)
		}
		key := foldString(pattern)
		if seen[key] {
			return nil, fmt.Errorf("profile %q: %w: %q", name, ErrDuplicatePattern, pattern)
		}
		seen[key] = true
		produced[replacement] = true
		rule := Rule{Pattern: pattern, Replacement: replacement}
		p.Rules = append(p.Rules, rule)
		p.prefixes.Add(foldString(pattern), rule)
	}
	if len(p.Rules) == 0 {
		return nil, fmt.Errorf("profile %q: %w", name, ErrEmptyProfile)
	}
	if len(finals) > 0 {
		p.FinalVariants = make(map[rune]rune, len(finals))
		for base, final := range finals {
			if !produced[string(base)] {
				return nil, fmt.Errorf("profile %q: %w: %q", name, ErrDanglingFinal, base)
			}
			p.FinalVariants[base] = final
		}
	}
	p.compile()
	tracer().Infof("compiled profile %s (%s): %d rules, %d final forms, direction %s",
		p.Name, p.Code, len(p.Rules), len(p.FinalVariants), p.direction)
	for _, pair := range p.Overlaps() {
		tracer().Debugf("profile %s: patterns %q and %q may overlap, declaration order decides",
			p.Name, pair[0], pair[1])
	}
	return p, nil
}

// NewProfile compiles a profile from an in-memory rule list.
func NewProfile(name, code string, rules []Rule, finals map[rune]rune) (*Profile, error) {
	return LoadProfile(name, code, &sliceRuleReader{rules: rules}, finals)
}

// MustNewProfile is like NewProfile but panics on configuration errors.
// It is intended for tables compiled into the program.
func MustNewProfile(name, code string, rules []Rule, finals map[rune]rune) *Profile {
	p, err := NewProfile(name, code, rules, finals)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Profile) compile() {
	p.sorted = make([]matcher, len(p.Rules))
	for i, rule := range p.Rules {
		p.sorted[i] = newMatcher(rule)
	}
	sort.SliceStable(p.sorted, func(i, j int) bool {
		return len(p.sorted[i].pattern) > len(p.sorted[j].pattern)
	})
	assert(len(p.sorted) == len(p.Rules), "every rule must be compiled")
	p.direction = Neutral
	for _, rule := range p.Rules {
		if d := directionOf(rule.Replacement); d != Neutral {
			p.direction = d
			break
		}
	}
}

// IsEmpty returns true for a profile without rules, like the identity
// profile returned for unknown registry keys.
func (p *Profile) IsEmpty() bool {
	return p == nil || len(p.Rules) == 0
}

// Direction returns the writing direction of the profile's script.
func (p *Profile) Direction() Direction {
	if p == nil {
		return Neutral
	}
	return p.direction
}

// Completions returns the rules whose pattern starts with prefix, compared
// case-insensitively and ordered by pattern. An empty prefix returns every rule.
//
// Example for Greek:
//
//	"p" => [ p→π, ps→ψ ].
func (p *Profile) Completions(prefix string) []Rule {
	if p.IsEmpty() || p.prefixes == nil {
		return nil
	}
	if prefix == "" {
		rules := make([]Rule, len(p.Rules))
		copy(rules, p.Rules)
		sortByPattern(rules)
		return rules
	}
	keys := p.prefixes.PrefixSearch(foldString(prefix))
	rules := make([]Rule, 0, len(keys))
	for _, key := range keys {
		if node, ok := p.prefixes.Find(key); ok {
			rules = append(rules, node.Meta().(Rule))
		}
	}
	sortByPattern(rules)
	return rules
}

// Overlaps lists pairs of equal-length patterns which can match overlapping
// text, i.e. a proper suffix of the first is a prefix of the second
// ("ts" and "sh" on input "tsh"). For such pairs the result depends on
// declaration order.
func (p *Profile) Overlaps() [][2]string {
	if p.IsEmpty() || p.prefixes == nil {
		return nil
	}
	var pairs [][2]string
	seen := make(map[[2]string]bool)
	for _, rule := range p.Rules {
		key := foldString(rule.Pattern)
		n := utf8.RuneCountInString(key)
		for i := range key {
			if i == 0 {
				continue
			}
			for _, other := range p.prefixes.PrefixSearch(key[i:]) {
				if other == key || utf8.RuneCountInString(other) != n {
					continue
				}
				node, ok := p.prefixes.Find(other)
				if !ok {
					continue
				}
				pair := [2]string{rule.Pattern, node.Meta().(Rule).Pattern}
				if !seen[pair] {
					seen[pair] = true
					pairs = append(pairs, pair)
				}
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

func sortByPattern(rules []Rule) {
	sort.Slice(rules, func(i, j int) bool {
		return foldString(rules[i].Pattern) < foldString(rules[j].Pattern)
	})
}

type sliceRuleReader struct {
	rules []Rule
	index int
}

func (r *sliceRuleReader) Next() (string, string, error) {
	if r.index >= len(r.rules) {
		return "", "", io.EOF
	}
	rule := r.rules[r.index]
	r.index++
	return rule.Pattern, rule.Replacement, nil
}
