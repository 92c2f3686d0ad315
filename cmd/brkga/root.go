package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brkga",
		Short: "brkga - configuration tooling for BRKGA-MP-IPR",
		Long: `brkga works with configuration files for the multi-parent biased
random-key genetic algorithm with implicit path relinking (BRKGA-MP-IPR).

It checks configuration files against the algorithm's invariants, converts
between the key-value and YAML formats, lists the available strategies and
scaffolds new configurations.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newConvertCommand())
	cmd.AddCommand(newEnumsCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
