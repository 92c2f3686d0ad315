package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brkga-mp-ipr/brkga/internal/config"
)

func newConvertCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a configuration between the key-value and YAML formats",
		Long: `Convert reads a configuration and writes it to another file. The format of
each side follows its extension: .yaml and .yml are YAML, anything else is
key-value.

The configuration is validated before it is written, so convert never
produces a file that check would reject. Strategy names are written in their
canonical upper-case form.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convertCommandE(cmd, args[0], args[1], force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the output file if it exists")
	return cmd
}

func convertCommandE(cmd *cobra.Command, in, out string, force bool) error {
	if sameFile(in, out) {
		return fmt.Errorf("input and output are the same file: %s", in)
	}

	cfg, err := config.LoadFile(in)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return &ValidationFailedError{Message: fmt.Sprintf("%s: %v", in, err)}
	}

	if !force {
		if _, err := os.Stat(out); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", out)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %q: %w", out, err)
		}
	}

	if err := config.SaveFile(out, *cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Converted %s (%s) → %s (%s)\n", in, config.FormatOf(in), out, config.FormatOf(out)) //nolint:errcheck
	return nil
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
