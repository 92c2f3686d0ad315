package params

import (
	"testing"

	"github.com/brkga-mp-ipr/brkga/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SetEveryKey(t *testing.T) {
	b := NewBuilder()
	values := map[string]string{
		"population_size":             "2000",
		"elite_percentage":            "0.30",
		"mutants_percentage":          "0.15",
		"num_elite_parents":           "2",
		"total_parents":               "3",
		"bias_type":                   "loginverse",
		"num_independent_populations": "3",
		"pr_number_pairs":             "0",
		"pr_minimum_distance":         "0.15",
		"pr_type":                     "Permutation",
		"pr_selection":                "randomelite",
		"alpha_block_size":            "1.0",
		"pr_percentage":               "1.0",
		"exchange_interval":           "200",
		"num_exchange_individuals":    "2",
		"reset_interval":              "600",
	}
	require.NoError(t, b.Apply(values))
	assert.Empty(t, b.Missing())

	brkga, control := b.Build()
	assert.Equal(t, BrkgaParams{
		PopulationSize:            2000,
		ElitePercentage:           0.30,
		MutantsPercentage:         0.15,
		NumEliteParents:           2,
		TotalParents:              3,
		BiasType:                  strategy.BiasLogInverse,
		NumIndependentPopulations: 3,
		PRNumberPairs:             0,
		PRMinimumDistance:         0.15,
		PRType:                    strategy.PathRelinkPermutation,
		PRSelection:               strategy.SelectRandomElite,
		AlphaBlockSize:            1.0,
		PRPercentage:              1.0,
	}, brkga)
	assert.Equal(t, NewExternalControlParams(200, 2, 600), control)
}

func TestBuilder_PartialState(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Set("population_size", "100"))
	require.NoError(t, b.Set("BIAS_TYPE", "CUBIC"))

	assert.True(t, b.IsSet("population_size"))
	assert.True(t, b.IsSet("bias_type"))
	assert.False(t, b.IsSet("total_parents"))
	assert.Len(t, b.Missing(), len(Keys)-2)
	assert.NotContains(t, b.Missing(), "bias_type")

	brkga, control := b.Build()
	assert.Equal(t, 100, brkga.PopulationSize)
	assert.Equal(t, strategy.BiasCubic, brkga.BiasType)
	assert.Equal(t, strategy.PathRelinkDirect, brkga.PRType)
	assert.Equal(t, ExternalControlParams{}, control)
}

func TestBuilder_LaterSetOverrides(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Set("reset_interval", "10"))
	require.NoError(t, b.Set("exchange_interval", "5"))
	require.NoError(t, b.Set("reset_interval", "20"))

	_, control := b.Build()
	assert.Equal(t, NewExternalControlParams(5, 0, 20), control)
}

func TestBuilder_LegacyAlias(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Set("num_exchange_indivuduals", "7"))

	assert.True(t, b.IsSet("num_exchange_individuals"))
	_, control := b.Build()
	assert.Equal(t, 7, control.NumExchangeIndividuals)
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		contains string
	}{
		{name: "unknown key", key: "crossover_rate", value: "0.7", contains: "unknown parameter"},
		{name: "not an integer", key: "population_size", value: "many", contains: "population_size"},
		{name: "hexadecimal", key: "population_size", value: "0x10", contains: `"0x10" is not a decimal integer`},
		{name: "octal prefix", key: "reset_interval", value: "0o17", contains: `"0o17" is not a decimal integer`},
		{name: "exponent", key: "total_parents", value: "1e3", contains: `"1e3" is not a decimal integer`},
		{name: "not a float", key: "elite_percentage", value: "ten percent", contains: "elite_percentage"},
		{name: "unknown strategy", key: "bias_type", value: "sideways", contains: "not a valid BiasFunction"},
		{name: "unknown selection", key: "pr_selection", value: "worst", contains: "not a valid PathRelinkingSelection"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			err := b.Set(tt.key, tt.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Len(t, b.Missing(), len(Keys))
		})
	}
}

func TestBuilder_IntegersAreDecimal(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{value: "0600", want: 600},
		{value: "007", want: 7},
		{value: "+12", want: 12},
		{value: " 30 ", want: 30},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			b := NewBuilder()
			require.NoError(t, b.Set("reset_interval", tt.value))
			_, control := b.Build()
			assert.Equal(t, tt.want, control.ResetInterval)
		})
	}
}

func TestBuilder_UnknownKeyIsSentinel(t *testing.T) {
	err := NewBuilder().Set("mystery", "1")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestNewBuilderFrom(t *testing.T) {
	brkga := NewBrkgaParams()
	brkga.PopulationSize = 42
	b := NewBuilderFrom(brkga, NewExternalControlParams(1, 2, 3))
	assert.Empty(t, b.Missing())

	require.NoError(t, b.Set("population_size", "43"))
	got, control := b.Build()
	assert.Equal(t, 43, got.PopulationSize)
	assert.Equal(t, NewExternalControlParams(1, 2, 3), control)
}

func TestCanonicalKey(t *testing.T) {
	k, ok := CanonicalKey("  Population_Size ")
	assert.True(t, ok)
	assert.Equal(t, "population_size", k)

	_, ok = CanonicalKey("chromosome_size")
	assert.False(t, ok)
}
