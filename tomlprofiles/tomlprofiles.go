/*
Package tomlprofiles reads transliteration profiles from TOML documents.

A document holds any number of profiles. Rules keep their order, which decides
between equal-length patterns matching overlapping text:

	[[profile]]
	name = "greek-lite"
	code = "el"
	finals = { "σ" = "ς" }   # optional, single characters only

	[[profile.rule]]
	pattern = "ps"
	replacement = "ψ"

	[[profile.rule]]
	pattern = "s"
	replacement = "σ"
*/
package tomlprofiles

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pelletier/go-toml/v2"

	"github.com/npillmayer/transliterate"
)

// tracer writes to trace with key 'transliterate.toml'
func tracer() tracing.Trace {
	return tracing.Select("transliterate.toml")
}

type document struct {
	Profiles []profileEntry `toml:"profile"`
}

type profileEntry struct {
	Name   string            `toml:"name"`
	Code   string            `toml:"code"`
	Finals map[string]string `toml:"finals"`
	Rules  []ruleEntry       `toml:"rule"`
}

type ruleEntry struct {
	Pattern     string `toml:"pattern"`
	Replacement string `toml:"replacement"`
}

// RuleReader streams the rules of one decoded profile entry.
type RuleReader struct {
	rules []ruleEntry
	index int
}

// Next returns the next rule as (pattern, replacement).
// It returns io.EOF when exhausted.
func (r *RuleReader) Next() (string, string, error) {
	if r.index >= len(r.rules) {
		return "", "", io.EOF
	}
	rule := r.rules[r.index]
	r.index++
	return rule.Pattern, rule.Replacement, nil
}

// LoadProfiles decodes a TOML document and compiles every profile in it.
func LoadProfiles(reader io.Reader) ([]*transliterate.Profile, error) {
	var doc document
	dec := toml.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding profiles: %w", err)
	}
	profiles := make([]*transliterate.Profile, 0, len(doc.Profiles))
	for i, entry := range doc.Profiles {
		if entry.Name == "" {
			return nil, fmt.Errorf("profile #%d has no name", i+1)
		}
		finals, err := decodeFinals(entry.Finals)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", entry.Name, err)
		}
		p, err := transliterate.LoadProfile(entry.Name, entry.Code, &RuleReader{rules: entry.Rules}, finals)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	tracer().Infof("loaded %d profiles from TOML", len(profiles))
	return profiles, nil
}

func decodeFinals(finals map[string]string) (map[rune]rune, error) {
	if len(finals) == 0 {
		return nil, nil
	}
	m := make(map[rune]rune, len(finals))
	for base, final := range finals {
		b, ok := singleRune(base)
		if !ok {
			return nil, fmt.Errorf("final form key %q is not a single character", base)
		}
		f, ok := singleRune(final)
		if !ok {
			return nil, fmt.Errorf("final form %q is not a single character", final)
		}
		m[b] = f
	}
	return m, nil
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, false
	}
	return r, true
}
