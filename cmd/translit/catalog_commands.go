package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/npillmayer/transliterate"
	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
)

func newLanguagesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List available input methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := ctx.ensureRegistry()
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(reg.Keys()))
			for _, key := range reg.Keys() {
				p, _ := reg.Lookup(key)
				rows = append(rows, []string{
					key,
					p.Code,
					p.Direction().String(),
					strconv.Itoa(len(p.Rules)),
					strconv.Itoa(len(p.FinalVariants)),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]column{
				{Header: "Key"},
				{Header: "Code"},
				{Header: "Dir"},
				{Header: "Rules", Right: true},
				{Header: "Finals", Right: true},
			}, rows))
			return nil
		},
	}
}

func newRulesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rules <language>",
		Short: "Show the pattern table of an input method, ordered by letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.profile(args[0])
			if err != nil {
				return err
			}
			rules := sortedByLetter(p)
			rows := make([][]string, 0, len(rules)+len(p.FinalVariants))
			for _, rule := range rules {
				rows = append(rows, []string{rule.Replacement, rule.Pattern})
			}
			bases := make([]rune, 0, len(p.FinalVariants))
			for base := range p.FinalVariants {
				bases = append(bases, base)
			}
			sort.Slice(bases, func(i, j int) bool { return bases[i] < bases[j] })
			for _, base := range bases {
				rows = append(rows, []string{string(p.FinalVariants[base]), "final " + string(base)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]column{letterColumn, patternColumn}, rows))
			return nil
		},
	}
}

func newCompleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <language> <prefix>",
		Short: "List patterns starting with a partially typed sequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.profile(args[0])
			if err != nil {
				return err
			}
			for _, rule := range p.Completions(args[1]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", rule.Pattern, rule.Replacement)
			}
			return nil
		},
	}
}

// sortedByLetter orders the rules of p by their replacement, using the
// collation of the profile's language.
func sortedByLetter(p *transliterate.Profile) []transliterate.Rule {
	rules := make([]transliterate.Rule, len(p.Rules))
	copy(rules, p.Rules)
	coll := collate.New(p.Tag)
	sort.SliceStable(rules, func(i, j int) bool {
		return coll.CompareString(rules[i].Replacement, rules[j].Replacement) < 0
	})
	return rules
}
