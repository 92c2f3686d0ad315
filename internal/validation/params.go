// Package validation checks BRKGA-MP-IPR configurations before an engine
// consumes them: field invariants of the parameter records and the shape
// of YAML configuration documents.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/brkga-mp-ipr/brkga/params"
)

// paramsValidate is shared by every check in this package. It reports
// fields by their configuration key (the yaml tag).
var paramsValidate *validator.Validate

func init() {
	paramsValidate = validator.New(validator.WithRequiredStructEnabled())
	paramsValidate.RegisterTagNameFunc(configKey)
	paramsValidate.RegisterStructValidation(validateBrkgaStruct, params.BrkgaParams{})
	paramsValidate.RegisterStructValidation(validateControlStruct, params.ExternalControlParams{})
}

func configKey(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// Struct-level rule tags.
const (
	tagStrategy            = "strategy"
	tagPercentageSum       = "percentage_sum"
	tagEliteParents        = "elite_parents"
	tagExchangeIndividuals = "exchange_individuals"
)

func validateBrkgaStruct(sl validator.StructLevel) {
	p := sl.Current().Interface().(params.BrkgaParams)

	if !p.BiasType.IsValid() {
		sl.ReportError(p.BiasType, "bias_type", "BiasType", tagStrategy, "")
	}
	if !p.PRType.IsValid() {
		sl.ReportError(p.PRType, "pr_type", "PRType", tagStrategy, "")
	}
	if !p.PRSelection.IsValid() {
		sl.ReportError(p.PRSelection, "pr_selection", "PRSelection", tagStrategy, "")
	}
	if p.ElitePercentage+p.MutantsPercentage > 1 {
		sl.ReportError(p.MutantsPercentage, "mutants_percentage", "MutantsPercentage", tagPercentageSum, "")
	}
	if elite := EliteSize(p); p.NumEliteParents > 0 && p.NumEliteParents > elite {
		sl.ReportError(p.NumEliteParents, "num_elite_parents", "NumEliteParents", tagEliteParents, fmt.Sprint(elite))
	}
}

func validateControlStruct(sl validator.StructLevel) {
	p := sl.Current().Interface().(params.ExternalControlParams)

	if p.ExchangeInterval > 0 && p.NumExchangeIndividuals <= 0 {
		sl.ReportError(p.NumExchangeIndividuals, "num_exchange_individuals", "NumExchangeIndividuals", tagExchangeIndividuals, "")
	}
}

// EliteSize is the number of elite individuals p yields per population.
func EliteSize(p params.BrkgaParams) int {
	return int(p.ElitePercentage * float64(p.PopulationSize))
}

// FieldViolation is one failed rule.
type FieldViolation struct {
	Field   string
	Rule    string
	Value   any
	Message string
}

// ParamsError lists every rule a configuration breaks.
type ParamsError struct {
	Violations []FieldViolation
}

func (e *ParamsError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return "invalid parameters: " + strings.Join(msgs, "; ")
}

// Fields returns the keys of the violated fields, in report order.
func (e *ParamsError) Fields() []string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return fields
}

// ValidateBrkgaParams checks every BrkgaParams invariant. It returns a
// *ParamsError when any rule fails.
func ValidateBrkgaParams(p params.BrkgaParams) error {
	return toParamsError(paramsValidate.Struct(p))
}

// ValidateControlParams checks every ExternalControlParams invariant.
func ValidateControlParams(p params.ExternalControlParams) error {
	return toParamsError(paramsValidate.Struct(p))
}

// Validate checks both records and merges their violations.
func Validate(brkga params.BrkgaParams, control params.ExternalControlParams) error {
	var merged ParamsError
	for _, err := range []error{ValidateBrkgaParams(brkga), ValidateControlParams(control)} {
		if err == nil {
			continue
		}
		var pe *ParamsError
		if !errors.As(err, &pe) {
			return err
		}
		merged.Violations = append(merged.Violations, pe.Violations...)
	}
	if len(merged.Violations) == 0 {
		return nil
	}
	return &merged
}

func toParamsError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating parameters: %w", err)
	}
	pe := &ParamsError{Violations: make([]FieldViolation, 0, len(verrs))}
	for _, fe := range verrs {
		pe.Violations = append(pe.Violations, FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Value:   fe.Value(),
			Message: describe(fe),
		})
	}
	return pe
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "gt":
		return defaultPrinter.Sprintf("%s must be greater than %s, got %v", field, fe.Param(), fe.Value())
	case "gte":
		return defaultPrinter.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "lte":
		return defaultPrinter.Sprintf("%s must be at most %s, got %v", field, fe.Param(), fe.Value())
	case "ltefield":
		return defaultPrinter.Sprintf("%s must not exceed %s, got %v", field, siblingKey(fe), fe.Value())
	case tagStrategy:
		return defaultPrinter.Sprintf("%s is not a valid strategy: %v", field, fe.Value())
	case tagPercentageSum:
		return defaultPrinter.Sprintf("elite_percentage + mutants_percentage must not exceed 1")
	case tagEliteParents:
		return defaultPrinter.Sprintf("%s must not exceed the elite set size %s, got %v", field, fe.Param(), fe.Value())
	case tagExchangeIndividuals:
		return defaultPrinter.Sprintf("%s must be greater than 0 when exchange_interval is set", field)
	default:
		return defaultPrinter.Sprintf("%s failed rule %q", field, fe.Tag())
	}
}

// siblingKey maps the struct field named by a cross-field rule onto its
// configuration key.
func siblingKey(fe validator.FieldError) string {
	parent := reflect.TypeOf(params.BrkgaParams{})
	if strings.HasPrefix(fe.StructNamespace(), "ExternalControlParams.") {
		parent = reflect.TypeOf(params.ExternalControlParams{})
	}
	if f, ok := parent.FieldByName(fe.Param()); ok {
		return configKey(f)
	}
	return fe.Param()
}
