// Package builtin provides the input methods shipped with package transliterate.
//
// Registry keys and language codes:
//
//	coptic  cop   Coptic letters from a simple Latin keyboard
//	arabic  ar    Arabic letters, including dotted Latin letters for emphatics
//	hebrew  he    Hebrew letters with final forms
//	greek   el    monotonic Greek with final sigma
//	beta    cop   polytonic Greek from Beta Code
//
// The tables are a de facto standard used by downstream consumers and must
// not change.
package builtin

import (
	"sync"

	"github.com/npillmayer/transliterate"
)

// Registry keys of the built-in profiles.
const (
	Coptic = "coptic"
	Arabic = "arabic"
	Hebrew = "hebrew"
	Greek  = "greek"
	Beta   = "beta"
)

var registry = sync.OnceValue(func() *transliterate.Registry {
	reg, err := transliterate.NewRegistry(Profiles()...)
	if err != nil {
		panic(err)
	}
	return reg
})

var profiles = sync.OnceValue(func() []*transliterate.Profile {
	return []*transliterate.Profile{
		transliterate.MustNewProfile(Coptic, "cop", copticRules, nil),
		transliterate.MustNewProfile(Arabic, "ar", arabicRules, nil),
		transliterate.MustNewProfile(Hebrew, "he", hebrewRules, hebrewFinals),
		transliterate.MustNewProfile(Greek, "el", greekRules, greekFinals),
		transliterate.MustNewProfile(Beta, "cop", betaRules, nil),
	}
})

// Registry returns the registry of built-in profiles. It is created on first
// use and shared afterwards.
func Registry() *transliterate.Registry {
	return registry()
}

// Profiles returns the built-in profiles in the order listed above.
func Profiles() []*transliterate.Profile {
	pp := profiles()
	out := make([]*transliterate.Profile, len(pp))
	copy(out, pp)
	return out
}

// Profile returns the built-in profile for key, or an empty profile which
// leaves every text unchanged.
func Profile(key string) *transliterate.Profile {
	return Registry().Profile(key)
}
