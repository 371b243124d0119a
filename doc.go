/*
Package transliterate converts ASCII/Latin keyboard sequences into native-script
text for a set of input methods (Coptic, Arabic, Hebrew, Greek and Greek Beta
Code).

Each input method is described by a [Profile]: a table of pattern rules plus an
optional set of word-final letter forms. Patterns are matched case-insensitively
and longest-first, so that digraphs like "th" or "ps" are substituted before any
of their single-letter prefixes get a chance to match. Output produced by one
rule is never matched again by a later rule.

When the text ends with a space, the last letter before it is replaced by its
word-final form, if the profile defines one (Hebrew final letters, Greek final
sigma). This mirrors a live-typing situation where the user has just completed
a word.

The engine is a pure function of its inputs. Profiles are immutable after
construction and may be shared between goroutines. Built-in profiles live in
package builtin; package tomlprofiles reads additional profiles from TOML.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package transliterate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'transliterate'
func tracer() tracing.Trace {
	return tracing.Select("transliterate")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
