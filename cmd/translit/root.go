package main

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// traceKeys are the tracers raised to debug level by --verbose.
var traceKeys = []string{"transliterate", "transliterate.toml"}

func newRootCommand() *cobra.Command {
	var profilesFlag string
	var verbose bool

	ctx := newCommandContext(&profilesFlag)

	rootCmd := &cobra.Command{
		Use:           "translit",
		Short:         "Transliterate Latin keyboard input into Coptic, Arabic, Hebrew and Greek",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				for _, key := range traceKeys {
					tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
				}
			}
			_, err := ctx.ensureRegistry()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&profilesFlag, "profiles", "", "TOML file with additional profiles")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace profile compilation")

	rootCmd.AddCommand(newConvertCommand(ctx))
	rootCmd.AddCommand(newLanguagesCommand(ctx))
	rootCmd.AddCommand(newRulesCommand(ctx))
	rootCmd.AddCommand(newCompleteCommand(ctx))

	return rootCmd
}
