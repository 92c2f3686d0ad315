package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brkga-mp-ipr/brkga/internal/config"
	"github.com/brkga-mp-ipr/brkga/internal/wizard"
)

const defaultInitPath = "brkga.yaml"

func newInitCommand() *cobra.Command {
	var (
		interactive bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter configuration",
		Long: `Initialize writes a starter BRKGA-MP-IPR configuration to path
(brkga.yaml when omitted). A path ending in .yaml or .yml gets the YAML
format; anything else, such as brkga.conf, gets the key-value format.

The starter values are the ones the reference framework ships in its sample
configuration. Use --interactive to review and edit every parameter in a
guided form before the file is written.

An existing file is never overwritten unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultInitPath
			if len(args) > 0 {
				path = args[0]
			}
			return initCommandE(cmd, path, interactive, force)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Edit the parameters in a guided form")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func initCommandE(cmd *cobra.Command, path string, interactive, force bool) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil {
		if !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %q: %w", path, err)
	}

	cfg := config.Sample()
	if interactive {
		edited, err := wizard.Run(cmd.InOrStdin(), out, cfg)
		if err != nil {
			return err
		}
		if err := edited.Validate(); err != nil {
			return &ValidationFailedError{Message: err.Error()}
		}
		cfg = *edited
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := config.SaveFile(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "Created %s (%s)\n", path, config.FormatOf(path)) //nolint:errcheck
	fmt.Fprintf(out, "Run 'brkga check %s' to validate it.\n", path)   //nolint:errcheck
	return nil
}
