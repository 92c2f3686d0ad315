// Package strategy defines the closed enumerations that select BRKGA-MP-IPR
// behavior (optimization sense, mating bias, path-relinking mode and
// selection, shaking) and the path-relinking outcome flag.
//
// Every enumeration parses from its variant name case-insensitively and
// formats to its canonical upper-case name, so values round-trip through
// configuration files, YAML/JSON documents and command-line arguments.
package strategy

import (
	"encoding"
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// ErrUnknownVariant is matched (via errors.Is) by every *LookupError.
var ErrUnknownVariant = errors.New("unknown variant")

// LookupError reports a token that names no variant of an enumeration.
type LookupError struct {
	Enum  string
	Token string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Token, e.Enum)
}

// Is lets errors.Is(err, ErrUnknownVariant) match any lookup failure.
func (e *LookupError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// variant pairs a canonical name with its tag.
type variant[E ~uint8] struct {
	name  string
	value E
}

// registry is the static name table of one enumeration. It is built once
// at package init and only read afterwards.
type registry[E ~uint8] struct {
	enum     string
	variants []variant[E]
	byName   map[string]E
}

func newRegistry[E ~uint8](enum string, variants ...variant[E]) *registry[E] {
	r := &registry[E]{
		enum:     enum,
		variants: variants,
		byName:   make(map[string]E, len(variants)),
	}
	seen := make(map[E]bool, len(variants))
	for _, v := range variants {
		key := foldName(v.name)
		if _, dup := r.byName[key]; dup {
			panic(fmt.Sprintf("strategy: duplicate %s name %q", enum, v.name))
		}
		if seen[v.value] {
			panic(fmt.Sprintf("strategy: duplicate %s tag %d", enum, v.value))
		}
		seen[v.value] = true
		r.byName[key] = v.value
	}
	return r
}

func (r *registry[E]) parse(token string) (E, error) {
	if v, ok := r.byName[foldName(token)]; ok {
		return v, nil
	}
	return 0, &LookupError{Enum: r.enum, Token: token}
}

func (r *registry[E]) name(v E) (string, bool) {
	for _, candidate := range r.variants {
		if candidate.value == v {
			return candidate.name, true
		}
	}
	return "", false
}

func (r *registry[E]) format(v E) string {
	if name, ok := r.name(v); ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", r.enum, uint8(v))
}

func (r *registry[E]) marshal(v E) ([]byte, error) {
	name, ok := r.name(v)
	if !ok {
		return nil, fmt.Errorf("cannot marshal %s: invalid tag %d", r.enum, uint8(v))
	}
	return []byte(name), nil
}

func (r *registry[E]) valid(v E) bool {
	_, ok := r.name(v)
	return ok
}

func (r *registry[E]) values() []E {
	out := make([]E, len(r.variants))
	for i, v := range r.variants {
		out[i] = v.value
	}
	return out
}

func (r *registry[E]) names() []string {
	out := make([]string, len(r.variants))
	for i, v := range r.variants {
		out[i] = v.name
	}
	return out
}

// foldName normalizes a variant name for case-insensitive comparison.
// Whitespace is significant: " linear" names no variant.
// A fresh Caser is used per call because Casers carry state.
func foldName(s string) string {
	return cases.Fold().String(s)
}

// textEnum is satisfied by a pointer to any enumeration in this package.
type textEnum[E any] interface {
	*E
	encoding.TextUnmarshaler
}

// Resolve returns the variant of E that token names. A token that already
// has type E is returned unchanged; strings, byte slices and fmt.Stringers
// are matched against the variant names ignoring case. Anything else is
// formatted with fmt.Sprint first, which never names a variant.
//
//	bias, err := strategy.Resolve[strategy.BiasFunction]("loginverse")
func Resolve[E any, PE textEnum[E]](token any) (E, error) {
	var out E
	var text string
	switch t := token.(type) {
	case E:
		return t, nil
	case string:
		text = t
	case []byte:
		text = string(t)
	case fmt.Stringer:
		text = t.String()
	default:
		text = fmt.Sprint(t)
	}
	if err := PE(&out).UnmarshalText([]byte(text)); err != nil {
		return out, err
	}
	return out, nil
}
