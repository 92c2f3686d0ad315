package params

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ErrUnknownKey is returned by Builder.Set for a key that names no field.
var ErrUnknownKey = errors.New("unknown parameter")

// Keys lists every configuration key in canonical order: the thirteen
// BrkgaParams fields followed by the three ExternalControlParams fields.
var Keys = []string{
	"population_size",
	"elite_percentage",
	"mutants_percentage",
	"num_elite_parents",
	"total_parents",
	"bias_type",
	"num_independent_populations",
	"pr_number_pairs",
	"pr_minimum_distance",
	"pr_type",
	"pr_selection",
	"alpha_block_size",
	"pr_percentage",
	"exchange_interval",
	"num_exchange_individuals",
	"reset_interval",
}

// keyAliases maps legacy spellings onto canonical keys. Older configuration
// files misspell num_exchange_individuals.
var keyAliases = map[string]string{
	"num_exchange_indivuduals": "num_exchange_individuals",
}

// CanonicalKey normalizes a configuration key (case, whitespace, aliases)
// and reports whether it names a known parameter.
func CanonicalKey(key string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := keyAliases[k]; ok {
		k = alias
	}
	for _, known := range Keys {
		if k == known {
			return k, true
		}
	}
	return k, false
}

type document struct {
	BrkgaParams           `mapstructure:",squash"`
	ExternalControlParams `mapstructure:",squash"`
}

// Builder assembles parameters one key at a time from textual values, as
// read from a configuration file or a form. Values are converted as they
// are set (numbers parsed, strategy names resolved ignoring case) but the
// result is not validated.
type Builder struct {
	doc document
	set map[string]bool
}

// NewBuilder returns a builder holding default parameters and no keys set.
func NewBuilder() *Builder {
	return &Builder{
		doc: document{BrkgaParams: NewBrkgaParams()},
		set: make(map[string]bool, len(Keys)),
	}
}

// NewBuilderFrom returns a builder seeded with existing parameters, with
// every key marked as set.
func NewBuilderFrom(brkga BrkgaParams, control ExternalControlParams) *Builder {
	b := &Builder{
		doc: document{BrkgaParams: brkga, ExternalControlParams: control},
		set: make(map[string]bool, len(Keys)),
	}
	for _, k := range Keys {
		b.set[k] = true
	}
	return b
}

// Set assigns one parameter from its textual value.
func (b *Builder) Set(key, value string) error {
	canonical, ok := CanonicalKey(key)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	value = strings.TrimSpace(value)

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &b.doc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			decimalInt,
		),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}
	if err := dec.Decode(map[string]any{canonical: value}); err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, canonical, err)
	}
	b.set[canonical] = true
	return nil
}

// decimalInt parses text bound for an int field in base 10. Weak decoding
// alone would read "0600" as octal and accept "0x10".
func decimalInt(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int {
		return data, nil
	}
	n, err := strconv.ParseInt(reflect.ValueOf(data).String(), 10, 0)
	if err != nil {
		return nil, fmt.Errorf("%q is not a decimal integer", reflect.ValueOf(data).String())
	}
	return int(n), nil
}

// Apply sets every key of values in sorted key order, stopping at the
// first error.
func (b *Builder) Apply(values map[string]string) error {
	for _, k := range slices.Sorted(maps.Keys(values)) {
		if err := b.Set(k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// IsSet reports whether key has been assigned.
func (b *Builder) IsSet(key string) bool {
	canonical, _ := CanonicalKey(key)
	return b.set[canonical]
}

// Missing returns the keys not yet assigned, in canonical order.
func (b *Builder) Missing() []string {
	var missing []string
	for _, k := range Keys {
		if !b.set[k] {
			missing = append(missing, k)
		}
	}
	return missing
}

// Build returns the assembled parameters. Unassigned fields keep their
// defaults.
func (b *Builder) Build() (BrkgaParams, ExternalControlParams) {
	return b.doc.BrkgaParams, b.doc.ExternalControlParams
}
