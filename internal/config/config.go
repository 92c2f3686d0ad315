// Package config loads and writes BRKGA-MP-IPR configuration files.
//
// Two formats are supported. The key-value format has one "key value" pair
// per line, '#' comments and case-insensitive keys and strategy names; it
// is the format the algorithm's reference implementation ships with. The
// YAML format groups the same keys under "brkga" and "control" sections.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/brkga-mp-ipr/brkga/internal/validation"
	"github.com/brkga-mp-ipr/brkga/params"
	"github.com/brkga-mp-ipr/brkga/strategy"
)

// Sample values written by `brkga init`. These are the single source of
// truth for the starter configuration; no other code should duplicate them.
const (
	DefaultPopulationSize            = 2000
	DefaultElitePercentage           = 0.30
	DefaultMutantsPercentage         = 0.15
	DefaultNumEliteParents           = 2
	DefaultTotalParents              = 3
	DefaultBiasType                  = strategy.BiasLogInverse
	DefaultNumIndependentPopulations = 3
	DefaultPRNumberPairs             = 0
	DefaultPRMinimumDistance         = 0.15
	DefaultPRType                    = strategy.PathRelinkPermutation
	DefaultPRSelection               = strategy.SelectBestSolution
	DefaultAlphaBlockSize            = 1.0
	DefaultPRPercentage              = 1.0

	DefaultExchangeInterval       = 200
	DefaultNumExchangeIndividuals = 2
	DefaultResetInterval          = 600
)

// File names searched by Discover, in order of preference.
var discoverNames = []string{"brkga.yaml", ".brkga.yaml", "brkga.conf"}

// maxDiscoverDepth bounds how many directories Discover walks up.
const maxDiscoverDepth = 10

// Configuration is everything a configuration file holds.
type Configuration struct {
	Brkga   params.BrkgaParams           `yaml:"brkga" json:"brkga"`
	Control params.ExternalControlParams `yaml:"control" json:"control"`
}

// Sample returns the starter configuration.
func Sample() Configuration {
	return Configuration{
		Brkga: params.BrkgaParams{
			PopulationSize:            DefaultPopulationSize,
			ElitePercentage:           DefaultElitePercentage,
			MutantsPercentage:         DefaultMutantsPercentage,
			NumEliteParents:           DefaultNumEliteParents,
			TotalParents:              DefaultTotalParents,
			BiasType:                  DefaultBiasType,
			NumIndependentPopulations: DefaultNumIndependentPopulations,
			PRNumberPairs:             DefaultPRNumberPairs,
			PRMinimumDistance:         DefaultPRMinimumDistance,
			PRType:                    DefaultPRType,
			PRSelection:               DefaultPRSelection,
			AlphaBlockSize:            DefaultAlphaBlockSize,
			PRPercentage:              DefaultPRPercentage,
		},
		Control: params.NewExternalControlParams(
			DefaultExchangeInterval,
			DefaultNumExchangeIndividuals,
			DefaultResetInterval,
		),
	}
}

// Validate runs the engine-side checks on both records.
func (c Configuration) Validate() error {
	return validation.Validate(c.Brkga, c.Control)
}

// Format identifies a configuration file format.
type Format string

const (
	FormatKeyValue Format = "key-value"
	FormatYAML     Format = "yaml"
)

// FormatOf picks the format from a file name: .yaml and .yml are YAML,
// anything else is key-value.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatKeyValue
	}
}

// LoadFile reads a configuration in the format implied by its name.
func LoadFile(path string) (*Configuration, error) {
	var (
		cfg *Configuration
		err error
	)
	format := FormatOf(path)
	switch format {
	case FormatYAML:
		cfg, err = LoadYAML(path)
	default:
		cfg, err = Load(path)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("Configuration loaded", "path", path, "format", format)
	return cfg, nil
}

// SaveFile writes cfg in the format implied by the file name.
func SaveFile(path string, cfg Configuration) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}

	switch FormatOf(path) {
	case FormatYAML:
		err = WriteYAML(f, cfg)
	default:
		err = Write(f, cfg)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	slog.Debug("Configuration saved", "path", path)
	return nil
}

// Discover walks up from startDir (at most 10 levels) looking for a
// configuration file and returns its path. It returns os.ErrNotExist when
// none is found and propagates real I/O errors such as permission denied.
func Discover(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", startDir, err)
	}
	dir := absDir

	for i := 0; i < maxDiscoverDepth; i++ {
		for _, name := range discoverNames {
			p := filepath.Join(dir, name)
			info, err := os.Stat(p)
			if err == nil && !info.IsDir() {
				return p, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("checking %q: %w", p, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
