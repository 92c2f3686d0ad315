package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brkga-mp-ipr/brkga/internal/validation"
)

// SchemaError reports a YAML document that does not match the
// configuration schema.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "configuration does not match schema:\n  " + strings.Join(e.Problems, "\n  ")
}

// LoadYAML reads a YAML configuration file.
func LoadYAML(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	cfg, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseYAML checks data against the configuration schema and decodes it.
// The control section may be omitted, leaving every control field 0.
func ParseYAML(data []byte) (*Configuration, error) {
	if problems := validation.ValidateYAMLBytes(data); len(problems) > 0 {
		return nil, &SchemaError{Problems: problems}
	}

	var cfg Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return &cfg, nil
}

// WriteYAML emits cfg as a YAML document.
func WriteYAML(w io.Writer, cfg Configuration) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
