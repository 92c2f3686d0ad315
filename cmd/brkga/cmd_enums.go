package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brkga-mp-ipr/brkga/strategy"
)

func newEnumsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enums [enumeration]",
		Short: "List the strategy enumerations and their variants",
		Long: `Enums prints every strategy enumeration with its variants and their
numeric tags. Pass an enumeration name (case-insensitive) to print only that
one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEnums,
	}
	cmd.Flags().String("format", formatText, "Output format: text | json")
	cmd.AddCommand(newEnumsResolveCommand())
	return cmd
}

func newEnumsResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <enumeration> <token>",
		Short: "Resolve a token to the canonical variant name",
		Long: `Resolve matches token against the named enumeration, ignoring case, and
prints the canonical variant name. It fails when the token names no variant.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enum, err := strategy.LookupEnumeration(args[0])
			if err != nil {
				return err
			}
			name, err := enum.Resolve(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name) //nolint:errcheck
			return nil
		},
	}
}

type variantJSON struct {
	Name string `json:"name"`
	Tag  uint8  `json:"tag"`
}

type enumerationJSON struct {
	Name     string        `json:"name"`
	Variants []variantJSON `json:"variants"`
}

func runEnums(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}

	enums := strategy.Enumerations()
	if len(args) == 1 {
		enum, err := strategy.LookupEnumeration(args[0])
		if err != nil {
			return err
		}
		enums = []strategy.Enumeration{enum}
	}

	if format == formatJSON {
		out := make([]enumerationJSON, len(enums))
		for i, e := range enums {
			out[i] = enumerationJSON{Name: e.Name, Variants: make([]variantJSON, len(e.Variants))}
			for j, v := range e.Variants {
				out[i].Variants[j] = variantJSON{Name: v, Tag: e.Tags[j]}
			}
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	printEnumerations(cmd.OutOrStdout(), enums)
	return nil
}

func printEnumerations(w io.Writer, enums []strategy.Enumeration) {
	for i, e := range enums {
		if i > 0 {
			fmt.Fprintln(w) //nolint:errcheck
		}
		fmt.Fprintln(w, e.Name)                           //nolint:errcheck
		fmt.Fprintln(w, strings.Repeat("─", len(e.Name))) //nolint:errcheck
		width := columnWidth(e.Variants)
		for j, v := range e.Variants {
			fmt.Fprintf(w, "  %s  %d\n", padRight(v, width), e.Tags[j]) //nolint:errcheck
		}
	}
}
