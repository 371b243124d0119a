package transliterate

import (
	"sync"
	"testing"
)

func TestLongestMatchFirst(t *testing.T) {
	p := mustProfile(t, []Rule{{"t", "τ"}, {"h", "η"}, {"th", "θ"}}, nil)
	tests := []struct {
		input string
		want  string
	}{
		{input: "th", want: "θ"},
		{input: "TH", want: "θ"},
		{input: "tH", want: "θ"},
		{input: "tht", want: "θτ"},
		{input: "htth", want: "ητθ"},
		{input: "t-h", want: "τ-η"},
		{input: "", want: ""},
	}
	for _, tt := range tests {
		if got := p.Transliterate(tt.input); got != tt.want {
			t.Fatalf("transliteration of %q: got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUnmatchedInputIsKept(t *testing.T) {
	p := mustProfile(t, []Rule{{"a", "α"}}, nil)
	if got := p.Transliterate("a1b?a"); got != "α1b?α" {
		t.Fatalf("expected unmatched characters to pass through, got %q", got)
	}
}

func TestOutputIsNotRematched(t *testing.T) {
	// the target alphabet overlaps the pattern alphabet
	p := mustProfile(t, []Rule{{"b", "X"}, {"ab", "b"}}, nil)
	tests := []struct {
		input string
		want  string
	}{
		{input: "ab", want: "b"},
		{input: "abb", want: "bX"},
		{input: "bab", want: "Xb"},
	}
	for _, tt := range tests {
		if got := p.Transliterate(tt.input); got != tt.want {
			t.Fatalf("transliteration of %q: got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEqualLengthTiesByDeclarationOrder(t *testing.T) {
	first := mustProfile(t, []Rule{{"ts", "צ"}, {"sh", "ש"}}, nil)
	if got := first.Transliterate("tsh"); got != "צh" {
		t.Fatalf("expected ts to win, got %q", got)
	}
	second := mustProfile(t, []Rule{{"sh", "ש"}, {"ts", "צ"}}, nil)
	if got := second.Transliterate("tsh"); got != "tש" {
		t.Fatalf("expected sh to win, got %q", got)
	}
}

func TestCaseFolding(t *testing.T) {
	p := mustProfile(t, []Rule{{"k", "κ"}, {"s", "σ"}, {"ḥ", "ח"}}, nil)
	tests := []struct {
		input string
		want  string
	}{
		{input: "K", want: "κ"},
		{input: "S", want: "σ"},
		{input: "Ḥ", want: "ח"},
		{input: "\u212a", want: "\u212a"}, // KELVIN SIGN
		{input: "\u017f", want: "\u017f"}, // LATIN SMALL LETTER LONG S
	}
	for _, tt := range tests {
		if got := p.Transliterate(tt.input); got != tt.want {
			t.Fatalf("transliteration of %q: got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFinalForm(t *testing.T) {
	p := mustProfile(t, []Rule{{"s", "σ"}, {"o", "ο"}, {"l", "λ"}}, map[rune]rune{'σ': 'ς'})
	tests := []struct {
		input string
		want  string
	}{
		{input: "os ", want: "ος "},
		{input: "os", want: "οσ"},
		{input: "os  ", want: "ος "},
		{input: "os\t ", want: "ος "},
		{input: "os\n ", want: "ος "},
		{input: "sol  ", want: "σολ  "},
		{input: "os\t", want: "οσ\t"},
		{input: "os os ", want: "οσ ος "},
		{input: "sol ", want: "σολ "},
		{input: " ", want: " "},
		{input: "   ", want: "   "},
	}
	for _, tt := range tests {
		if got := p.Transliterate(tt.input); got != tt.want {
			t.Fatalf("transliteration of %q: got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIdentityTransform(t *testing.T) {
	if got := Transliterate("abc", nil); got != "abc" {
		t.Fatalf("nil profile should be identity, got %q", got)
	}
	if got := Transliterate("abc ", identity); got != "abc " {
		t.Fatalf("empty profile should be identity, got %q", got)
	}
}

func TestTransliterateIsIdempotent(t *testing.T) {
	p := mustProfile(t, []Rule{{"th", "θ"}, {"s", "σ"}, {"o", "ο"}, {"t", "τ"}}, map[rune]rune{'σ': 'ς'})
	for _, input := range []string{"thos ", "sots", "x y z", "TOTS "} {
		once := Transliterate(input, p)
		if twice := Transliterate(once, p); twice != once {
			t.Fatalf("second pass changed %q to %q", once, twice)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	p := mustProfile(t, []Rule{{"th", "θ"}, {"s", "σ"}, {"o", "ο"}}, map[rune]rune{'σ': 'ς'})
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := p.Transliterate("thos "); got != "θος " {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("concurrent transliteration returned %q", got)
	}
}
