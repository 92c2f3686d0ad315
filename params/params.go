// Package params holds the BRKGA-MP-IPR parameter records.
//
// The records are plain values with no behavior of their own: they start
// out zeroed ("unconfigured"), are filled in field by field by a loader,
// and are validated by the engine when it consumes them. After hand-off
// they are meant to be treated as read-only; nothing here synchronizes
// access.
package params

import "github.com/brkga-mp-ipr/brkga/strategy"

// BrkgaParams are the BRKGA and IPR hyper-parameters.
type BrkgaParams struct {
	// Number of individuals in each population [> 0].
	PopulationSize int `yaml:"population_size" json:"population_size" mapstructure:"population_size" validate:"gt=0"`
	// Fraction of the population forming the elite set (0, 1].
	ElitePercentage float64 `yaml:"elite_percentage" json:"elite_percentage" mapstructure:"elite_percentage" validate:"gt=0,lte=1"`
	// Fraction of mutants inserted each generation (0, 1].
	MutantsPercentage float64 `yaml:"mutants_percentage" json:"mutants_percentage" mapstructure:"mutants_percentage" validate:"gt=0,lte=1"`
	// Number of elite parents for mating [> 0].
	NumEliteParents int `yaml:"num_elite_parents" json:"num_elite_parents" mapstructure:"num_elite_parents" validate:"gt=0,ltefield=TotalParents"`
	// Total number of parents for mating [> 0].
	TotalParents int `yaml:"total_parents" json:"total_parents" mapstructure:"total_parents" validate:"gt=0,ltefield=PopulationSize"`
	// Rank weighting used to pick parents.
	BiasType strategy.BiasFunction `yaml:"bias_type" json:"bias_type" mapstructure:"bias_type"`
	// Number of independent parallel populations [> 0].
	NumIndependentPopulations int `yaml:"num_independent_populations" json:"num_independent_populations" mapstructure:"num_independent_populations" validate:"gt=0"`

	// Number of chromosome pairs tested for path relinking [>= 0].
	PRNumberPairs int `yaml:"pr_number_pairs" json:"pr_number_pairs" mapstructure:"pr_number_pairs" validate:"gte=0"`
	// Minimum distance between chromosomes selected for path relinking [>= 0].
	PRMinimumDistance float64 `yaml:"pr_minimum_distance" json:"pr_minimum_distance" mapstructure:"pr_minimum_distance" validate:"gte=0"`
	// How the path between two chromosomes is built.
	PRType strategy.PathRelinkingType `yaml:"pr_type" json:"pr_type" mapstructure:"pr_type"`
	// Which individuals anchor the path.
	PRSelection strategy.PathRelinkingSelection `yaml:"pr_selection" json:"pr_selection" mapstructure:"pr_selection"`
	// Block size, relative to the population size [> 0].
	AlphaBlockSize float64 `yaml:"alpha_block_size" json:"alpha_block_size" mapstructure:"alpha_block_size" validate:"gt=0"`
	// Fraction of the path to be computed (0, 1].
	PRPercentage float64 `yaml:"pr_percentage" json:"pr_percentage" mapstructure:"pr_percentage" validate:"gt=0,lte=1"`
}

// NewBrkgaParams returns unconfigured parameters: every number is zero and
// the strategies are CONSTANT, DIRECT and BESTSOLUTION. It is the same as
// the zero value.
func NewBrkgaParams() BrkgaParams {
	return BrkgaParams{
		BiasType:    strategy.BiasConstant,
		PRType:      strategy.PathRelinkDirect,
		PRSelection: strategy.SelectBestSolution,
	}
}

// ExternalControlParams control multi-population migration and resets.
// A zero interval disables the corresponding event.
type ExternalControlParams struct {
	// Generations between elite exchanges among populations.
	ExchangeInterval int `yaml:"exchange_interval" json:"exchange_interval" mapstructure:"exchange_interval" validate:"gte=0"`
	// Elite chromosomes sent from each population per exchange.
	NumExchangeIndividuals int `yaml:"num_exchange_individuals" json:"num_exchange_individuals" mapstructure:"num_exchange_individuals" validate:"gte=0"`
	// Generations between population resets.
	ResetInterval int `yaml:"reset_interval" json:"reset_interval" mapstructure:"reset_interval" validate:"gte=0"`
}

// NewExternalControlParams builds control parameters positionally.
func NewExternalControlParams(exchangeInterval, numExchangeIndividuals, resetInterval int) ExternalControlParams {
	return ExternalControlParams{
		ExchangeInterval:       exchangeInterval,
		NumExchangeIndividuals: numExchangeIndividuals,
		ResetInterval:          resetInterval,
	}
}

// ControlOption sets one field of ExternalControlParams.
type ControlOption func(*ExternalControlParams)

// WithExchangeInterval sets ExchangeInterval.
func WithExchangeInterval(n int) ControlOption {
	return func(p *ExternalControlParams) { p.ExchangeInterval = n }
}

// WithNumExchangeIndividuals sets NumExchangeIndividuals.
func WithNumExchangeIndividuals(n int) ControlOption {
	return func(p *ExternalControlParams) { p.NumExchangeIndividuals = n }
}

// WithResetInterval sets ResetInterval.
func WithResetInterval(n int) ControlOption {
	return func(p *ExternalControlParams) { p.ResetInterval = n }
}

// NewExternalControlParamsWith builds control parameters from named
// options; fields without an option stay 0.
func NewExternalControlParamsWith(opts ...ControlOption) ExternalControlParams {
	var p ExternalControlParams
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// ExchangeEnabled reports whether elite exchange is switched on.
func (p ExternalControlParams) ExchangeEnabled() bool { return p.ExchangeInterval > 0 }

// ResetEnabled reports whether population resets are switched on.
func (p ExternalControlParams) ResetEnabled() bool { return p.ResetInterval > 0 }
