package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/brkga-mp-ipr/brkga/params"
)

// ErrMissingKeys is wrapped by Parse when the input leaves keys unset.
var ErrMissingKeys = errors.New("missing configuration keys")

// ParseError locates a problem in a key-value configuration.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a key-value configuration file.
func Load(path string) (*Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, pe
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads a key-value configuration. Every key must be present
// exactly once; the legacy spelling num_exchange_indivuduals is accepted.
func Parse(r io.Reader) (*Configuration, error) {
	b := params.NewBuilder()
	seenAt := make(map[string]int, len(params.Keys))

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("expected \"key value\", got %q", strings.TrimSpace(line))}
		}

		key, ok := params.CanonicalKey(fields[0])
		if ok {
			if prev, dup := seenAt[key]; dup {
				return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("%s already set on line %d", key, prev)}
			}
			seenAt[key] = lineNo
		}
		if err := b.Set(fields[0], fields[1]); err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	if missing := b.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(missing, ", "))
	}

	brkga, control := b.Build()
	return &Configuration{Brkga: brkga, Control: control}, nil
}

// Values renders every parameter of cfg as the text a key-value file
// holds, keyed by canonical key.
func Values(cfg Configuration) map[string]string {
	p, c := cfg.Brkga, cfg.Control
	return map[string]string{
		"population_size":             strconv.Itoa(p.PopulationSize),
		"elite_percentage":            formatFloat(p.ElitePercentage),
		"mutants_percentage":          formatFloat(p.MutantsPercentage),
		"num_elite_parents":           strconv.Itoa(p.NumEliteParents),
		"total_parents":               strconv.Itoa(p.TotalParents),
		"bias_type":                   p.BiasType.String(),
		"num_independent_populations": strconv.Itoa(p.NumIndependentPopulations),
		"pr_number_pairs":             strconv.Itoa(p.PRNumberPairs),
		"pr_minimum_distance":         formatFloat(p.PRMinimumDistance),
		"pr_type":                     p.PRType.String(),
		"pr_selection":                p.PRSelection.String(),
		"alpha_block_size":            formatFloat(p.AlphaBlockSize),
		"pr_percentage":               formatFloat(p.PRPercentage),
		"exchange_interval":           strconv.Itoa(c.ExchangeInterval),
		"num_exchange_individuals":    strconv.Itoa(c.NumExchangeIndividuals),
		"reset_interval":              strconv.Itoa(c.ResetInterval),
	}
}

// Write emits cfg as key-value lines in canonical key order, with
// strategies under their canonical names. The output parses back into cfg.
func Write(w io.Writer, cfg Configuration) error {
	p := cfg.Brkga
	for _, enum := range []interface{ IsValid() bool }{p.BiasType, p.PRType, p.PRSelection} {
		if !enum.IsValid() {
			return fmt.Errorf("cannot write invalid strategy %v", enum)
		}
	}
	values := Values(cfg)

	bw := bufio.NewWriter(w)
	width := 0
	for _, k := range params.Keys {
		width = max(width, len(k))
	}
	for _, k := range params.Keys {
		if _, err := fmt.Fprintf(bw, "%-*s %s\n", width, k, values[k]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
