package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/transliterate"
	"github.com/spf13/cobra"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var annotate bool

	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Transliterate text given as arguments, or stdin line by line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.profile(lang); err != nil {
				return err
			}
			reg, err := ctx.ensureRegistry()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				writeResult(out, reg.Transliterate(lang, strings.Join(args, " ")), annotate)
				return nil
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				writeResult(out, reg.Transliterate(lang, scanner.Text()), annotate)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "greek", "Input method (see 'translit languages')")
	cmd.Flags().BoolVar(&annotate, "annotate", false, "Append language code and direction to each line")
	return cmd
}

func writeResult(out io.Writer, res transliterate.Result, annotate bool) {
	if annotate {
		fmt.Fprintf(out, "%s\t%s\t%s\n", res.Text, res.Lang, res.Direction)
		return
	}
	fmt.Fprintln(out, res.Text)
}
