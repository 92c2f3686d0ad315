package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/brkga-mp-ipr/brkga/internal/config"
	"github.com/brkga-mp-ipr/brkga/internal/validation"
)

// maxParallelChecks bounds how many files are checked at once.
const maxParallelChecks = 8

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [config-file...]",
		Short: "Check configuration files against the BRKGA-MP-IPR invariants",
		Long: `Check loads each configuration file and validates it the way the engine
does before the first generation.

Files ending in .yaml or .yml are read as YAML, anything else as key-value
("key value" per line). Strategy names are matched ignoring case.

With no arguments, the nearest brkga.yaml, .brkga.yaml or brkga.conf found by
walking up from the current directory is checked.

Exit status is 1 when a file loads but is invalid, and 2 when a file cannot
be read or parsed.`,
		RunE: runCheck,
	}
	cmd.Flags().String("format", formatText, "Output format: text | json")
	return cmd
}

type violationJSON struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type checkResult struct {
	Path       string                `json:"path"`
	Format     config.Format         `json:"format"`
	Valid      bool                  `json:"valid"`
	Error      string                `json:"error,omitempty"`
	Violations []violationJSON       `json:"violations,omitempty"`
	Config     *config.Configuration `json:"config,omitempty"`

	loadErr error
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		found, err := config.Discover(".")
		if errors.Is(err, os.ErrNotExist) {
			return errors.New("no configuration file found; pass a path or create brkga.yaml or brkga.conf")
		}
		if err != nil {
			return err
		}
		slog.Debug("Discovered configuration", "path", found)
		paths = []string{found}
	}

	results := checkFiles(paths)

	out := cmd.OutOrStdout()
	if format == formatJSON {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		printCheckResults(out, results)
	}

	return checkOutcome(results)
}

// checkFiles checks every path concurrently; results keep the input order.
func checkFiles(paths []string) []checkResult {
	results := make([]checkResult, len(paths))
	var g errgroup.Group
	g.SetLimit(maxParallelChecks)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = checkFile(path)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func checkFile(path string) checkResult {
	res := checkResult{Path: path, Format: config.FormatOf(path)}

	cfg, err := config.LoadFile(path)
	if err != nil {
		res.loadErr = err
		res.Error = err.Error()
		return res
	}
	res.Config = cfg

	err = cfg.Validate()
	var pe *validation.ParamsError
	switch {
	case err == nil:
		res.Valid = true
	case errors.As(err, &pe):
		for _, v := range pe.Violations {
			res.Violations = append(res.Violations, violationJSON{Field: v.Field, Rule: v.Rule, Message: v.Message})
		}
	default:
		res.loadErr = err
		res.Error = err.Error()
	}
	slog.Debug("Checked configuration", "path", path, "valid", res.Valid, "violations", len(res.Violations))
	return res
}

func printCheckResults(w io.Writer, results []checkResult) {
	for _, r := range results {
		switch {
		case r.Valid:
			fmt.Fprintf(w, "✅ %s (%s)\n", r.Path, r.Format) //nolint:errcheck
		case r.loadErr != nil:
			fmt.Fprintf(w, "❌ %s (%s)\n   %s\n", r.Path, r.Format, r.Error) //nolint:errcheck
		default:
			fmt.Fprintf(w, "❌ %s (%s)\n", r.Path, r.Format) //nolint:errcheck
			fields := make([]string, len(r.Violations))
			for i, v := range r.Violations {
				fields[i] = v.Field
			}
			width := columnWidth(fields)
			for _, v := range r.Violations {
				fmt.Fprintf(w, "   %s  %s\n", padRight(v.Field, width), v.Message) //nolint:errcheck
			}
		}
	}

	valid := 0
	for _, r := range results {
		if r.Valid {
			valid++
		}
	}
	fmt.Fprintf(w, "\n%d of %d configuration(s) valid\n", valid, len(results)) //nolint:errcheck
}

// checkOutcome turns the results into the command's error: load errors
// take precedence over validation failures.
func checkOutcome(results []checkResult) error {
	var loadErrs []error
	invalid := 0
	for _, r := range results {
		if r.loadErr != nil {
			loadErrs = append(loadErrs, r.loadErr)
		} else if !r.Valid {
			invalid++
		}
	}
	if len(loadErrs) > 0 {
		return errors.Join(loadErrs...)
	}
	if invalid > 0 {
		return &ValidationFailedError{Message: fmt.Sprintf("%d configuration(s) failed validation", invalid)}
	}
	return nil
}
