package validation

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// defaultPrinter formats every validation message in this package.
var defaultPrinter = message.NewPrinter(language.English)

const configSchemaURL = "config.schema.json"

//go:embed config.schema.json
var configSchemaJSON string

// configSchema describes a YAML configuration document. The control
// section is optional; the brkga section must name every parameter.
var configSchema = func() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(configSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("parsing embedded %s: %v", configSchemaURL, err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(configSchemaURL, doc); err != nil {
		panic(fmt.Sprintf("adding %s: %v", configSchemaURL, err))
	}
	return c.MustCompile(configSchemaURL)
}()

// ValidateYAMLFile checks a YAML configuration file against the schema.
func ValidateYAMLFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return ValidateYAMLBytes(data), nil
}

// ValidateYAMLBytes checks a YAML configuration document against the
// schema. It returns one "location: message" line per leaf failure, or
// nil when the document conforms.
func ValidateYAMLBytes(data []byte) []string {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("YAML parse error: %v", err)}
	}
	if doc == nil {
		return []string{"/: configuration document is empty"}
	}

	err := configSchema.Validate(stringKeys(doc))
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{fmt.Sprintf("schema: %v", err)}
	}

	var problems []string
	pending := []*jsonschema.ValidationError{ve}
	for len(pending) > 0 {
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if len(next.Causes) > 0 {
			for i := len(next.Causes) - 1; i >= 0; i-- {
				pending = append(pending, next.Causes[i])
			}
			continue
		}
		location := "/" + strings.Join(next.InstanceLocation, "/")
		problems = append(problems, location+": "+next.ErrorKind.LocalizedString(defaultPrinter))
	}
	return problems
}

// stringKeys rewrites YAML mappings with non-string keys into the
// map[string]any the schema validator walks.
func stringKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			val[k] = stringKeys(child)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[fmt.Sprint(k)] = stringKeys(child)
		}
		return out
	case []any:
		for i, child := range val {
			val[i] = stringKeys(child)
		}
		return val
	default:
		return v
	}
}
