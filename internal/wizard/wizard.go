// Package wizard builds a configuration interactively.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/brkga-mp-ipr/brkga/internal/config"
	"github.com/brkga-mp-ipr/brkga/params"
	"github.com/brkga-mp-ipr/brkga/strategy"
)

// controlKeys are shown on the second page of the form.
var controlKeys = map[string]bool{
	"exchange_interval":        true,
	"num_exchange_individuals": true,
	"reset_interval":           true,
}

var descriptions = map[string]string{
	"population_size":             "Individuals per population (> 0)",
	"elite_percentage":            "Fraction of the population in the elite set, in (0, 1]",
	"mutants_percentage":          "Fraction of mutants per generation, in (0, 1]",
	"num_elite_parents":           "Elite parents per mating (> 0)",
	"total_parents":               "Total parents per mating (>= elite parents)",
	"bias_type":                   "Rank weighting used to pick parents",
	"num_independent_populations": "Independent parallel populations (> 0)",
	"pr_number_pairs":             "Chromosome pairs tested for path relinking (0 = all)",
	"pr_minimum_distance":         "Minimum distance between relinked chromosomes",
	"pr_type":                     "How the path is built",
	"pr_selection":                "Which individuals anchor the path",
	"alpha_block_size":            "Block size relative to the population (> 0)",
	"pr_percentage":               "Fraction of the path to compute, in (0, 1]",
	"exchange_interval":           "Generations between elite exchanges (0 = never)",
	"num_exchange_individuals":    "Elite chromosomes exchanged per population",
	"reset_interval":              "Generations between resets (0 = never)",
}

// strategyOptions returns the select options for a strategy key, or nil
// for numeric keys.
func strategyOptions(key string) []huh.Option[string] {
	var names []string
	switch key {
	case "bias_type":
		// CUSTOM needs a caller-supplied function, which a file cannot carry.
		for _, b := range strategy.AllBiasFunctions() {
			if b != strategy.BiasCustom {
				names = append(names, b.String())
			}
		}
	case "pr_type":
		for _, t := range strategy.AllPathRelinkingTypes() {
			names = append(names, t.String())
		}
	case "pr_selection":
		for _, s := range strategy.AllPathRelinkingSelections() {
			names = append(names, s.String())
		}
	default:
		return nil
	}
	options := make([]huh.Option[string], len(names))
	for i, n := range names {
		options[i] = huh.NewOption(strings.ToLower(n), n)
	}
	return options
}

// validateValue checks a single answer the way the configuration loader
// would parse it. An empty answer keeps the current value when keepOnEmpty
// is set, as accessible prompts do.
func validateValue(key string, keepOnEmpty bool) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			if keepOnEmpty {
				return nil
			}
			return fmt.Errorf("%s is required", key)
		}
		return params.NewBuilder().Set(key, s)
	}
}

// ErrUnexpectedEOF is returned by Run when the input ends before every
// question has been answered.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// lineReader feeds accessible prompts one byte per Read. Each prompt wraps
// its reader in a fresh bufio.Scanner, which would otherwise buffer the
// answers meant for the prompts after it. It records whether the input
// ran out at the start of a line, where a prompt was still waiting.
type lineReader struct {
	r         io.Reader
	lineStart bool
	starved   bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: r, lineStart: true}
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := l.r.Read(p[:1])
	if n == 1 {
		l.lineStart = p[0] == '\n'
	}
	if errors.Is(err, io.EOF) && l.lineStart {
		l.starved = true
	}
	return n, err
}

// Run asks for every parameter, starting from seed, and returns the
// resulting configuration. The result is not validated.
//
// When in is not a terminal the form runs in accessible mode: one answer
// per line, an empty line keeps the value from seed, and strategies are
// chosen by their number in the listed options.
func Run(in io.Reader, out io.Writer, seed config.Configuration) (*config.Configuration, error) {
	accessible := true
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		accessible = false
	}
	var lines *lineReader
	if accessible {
		lines = newLineReader(in)
		in = lines
	}

	answers := config.Values(seed)
	values := make(map[string]*string, len(params.Keys))

	var brkgaFields, controlFields []huh.Field
	for _, key := range params.Keys {
		v := answers[key]
		values[key] = &v

		var field huh.Field
		if options := strategyOptions(key); options != nil {
			field = huh.NewSelect[string]().
				Title(key).
				Description(descriptions[key]).
				Options(options...).
				Value(values[key])
		} else {
			field = huh.NewInput().
				Title(key).
				Description(descriptions[key]).
				Value(values[key]).
				Validate(validateValue(key, accessible))
		}
		if controlKeys[key] {
			controlFields = append(controlFields, field)
		} else {
			brkgaFields = append(brkgaFields, field)
		}
	}

	form := huh.NewForm(
		huh.NewGroup(brkgaFields...).Title("BRKGA and path relinking"),
		huh.NewGroup(controlFields...).Title("Exchange and reset"),
	).
		WithInput(in).
		WithOutput(out).
		WithAccessible(accessible)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	if lines != nil && lines.starved {
		return nil, ErrUnexpectedEOF
	}

	return collect(seed, values)
}

// collect applies the answers on top of seed.
func collect(seed config.Configuration, values map[string]*string) (*config.Configuration, error) {
	answers := make(map[string]string, len(values))
	for key, v := range values {
		answers[key] = *v
	}
	b := params.NewBuilderFrom(seed.Brkga, seed.Control)
	if err := b.Apply(answers); err != nil {
		return nil, err
	}
	brkga, control := b.Build()
	return &config.Configuration{Brkga: brkga, Control: control}, nil
}
