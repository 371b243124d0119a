package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertArguments(t *testing.T) {
	out, err := runCLI(t, "", "convert", "-l", "greek", "logos ")
	if err != nil {
		t.Fatal(err)
	}
	if out != "λογος \n" {
		t.Fatalf("unexpected output %q", out)
	}
	out, err = runCLI(t, "", "convert", "--lang", "greek", "ho", "logos")
	if err != nil {
		t.Fatal(err)
	}
	if out != "ηο λογοσ\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConvertStdin(t *testing.T) {
	out, err := runCLI(t, "shalom \nlogos\n", "convert", "-l", "hebrew")
	if err != nil {
		t.Fatal(err)
	}
	if out != "שאלום \nלוגוס\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConvertAnnotate(t *testing.T) {
	out, err := runCLI(t, "", "convert", "-l", "arabic", "--annotate", "salam")
	if err != nil {
		t.Fatal(err)
	}
	if out != "سالام\tar\trtl\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConvertUnknownLanguage(t *testing.T) {
	if _, err := runCLI(t, "", "convert", "-l", "klingon", "abc"); err == nil {
		t.Fatalf("expected error for unknown language")
	}
}

func TestLanguagesCommand(t *testing.T) {
	out, err := runCLI(t, "", "languages")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"arabic", "beta", "coptic", "greek", "hebrew", "cop", "rtl"} {
		if !strings.Contains(out, want) {
			t.Fatalf("languages output lacks %q:\n%s", want, out)
		}
	}
}

func TestRulesCommand(t *testing.T) {
	out, err := runCLI(t, "", "rules", "greek")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"θ", "th", "ψ", "final σ"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rules output lacks %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "α") > strings.Index(out, "ω") {
		t.Fatalf("rules should be ordered by letter:\n%s", out)
	}
}

func TestCompleteCommand(t *testing.T) {
	out, err := runCLI(t, "", "complete", "greek", "p")
	if err != nil {
		t.Fatal(err)
	}
	if out != "p\tπ\nps\tψ\n" {
		t.Fatalf("unexpected completions %q", out)
	}
}

func TestProfilesFlag(t *testing.T) {
	file := filepath.Join(t.TempDir(), "profiles.toml")
	doc := "[[profile]]\nname = \"mini\"\ncode = \"el\"\n[[profile.rule]]\npattern = \"a\"\nreplacement = \"α\"\n"
	if err := os.WriteFile(file, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, "", "--profiles", file, "convert", "-l", "mini", "aba")
	if err != nil {
		t.Fatal(err)
	}
	if out != "αbα\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := runCLI(t, "", "--profiles", filepath.Join(t.TempDir(), "missing.toml"), "languages"); err == nil {
		t.Fatalf("expected error for missing profiles file")
	}
}
