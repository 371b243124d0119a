package transliterate

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction is the writing direction of a text or script.
type Direction int8

const (
	Neutral     Direction = iota // no strong directional character
	LeftToRight                  // e.g. Greek, Coptic
	RightToLeft                  // e.g. Hebrew, Arabic
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	}
	return "auto"
}

// directionOf returns the direction of the first strong character in s.
func directionOf(s string) Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
	}
	return Neutral
}
