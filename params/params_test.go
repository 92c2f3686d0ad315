package params

import (
	"testing"

	"github.com/brkga-mp-ipr/brkga/strategy"
	"github.com/stretchr/testify/assert"
)

func TestNewBrkgaParams_Defaults(t *testing.T) {
	p := NewBrkgaParams()

	assert.Equal(t, 0, p.PopulationSize)
	assert.Equal(t, 0.0, p.ElitePercentage)
	assert.Equal(t, 0.0, p.MutantsPercentage)
	assert.Equal(t, 0, p.NumEliteParents)
	assert.Equal(t, 0, p.TotalParents)
	assert.Equal(t, strategy.BiasConstant, p.BiasType)
	assert.Equal(t, 0, p.NumIndependentPopulations)
	assert.Equal(t, 0, p.PRNumberPairs)
	assert.Equal(t, 0.0, p.PRMinimumDistance)
	assert.Equal(t, strategy.PathRelinkDirect, p.PRType)
	assert.Equal(t, strategy.SelectBestSolution, p.PRSelection)
	assert.Equal(t, 0.0, p.AlphaBlockSize)
	assert.Equal(t, 0.0, p.PRPercentage)

	assert.Equal(t, BrkgaParams{}, p, "defaults equal the zero value")
}

func TestBrkgaParams_IsCopiedByValue(t *testing.T) {
	a := NewBrkgaParams()
	a.PopulationSize = 100
	b := a
	b.PopulationSize = 200
	b.BiasType = strategy.BiasCubic

	assert.Equal(t, 100, a.PopulationSize)
	assert.Equal(t, strategy.BiasConstant, a.BiasType)
}

func TestExternalControlParams_Construction(t *testing.T) {
	tests := []struct {
		name string
		got  ExternalControlParams
		want [3]int
	}{
		{name: "zero value", got: ExternalControlParams{}, want: [3]int{0, 0, 0}},
		{name: "no options", got: NewExternalControlParamsWith(), want: [3]int{0, 0, 0}},
		{name: "positional", got: NewExternalControlParams(10, 20, 30), want: [3]int{10, 20, 30}},
		{
			name: "named",
			got: NewExternalControlParamsWith(
				WithExchangeInterval(30),
				WithNumExchangeIndividuals(10),
				WithResetInterval(20),
			),
			want: [3]int{30, 10, 20},
		},
		{
			name: "named out of order",
			got: NewExternalControlParamsWith(
				WithResetInterval(20),
				WithExchangeInterval(30),
			),
			want: [3]int{30, 0, 20},
		},
		{
			name: "struct literal",
			got:  ExternalControlParams{ExchangeInterval: 30, NumExchangeIndividuals: 10, ResetInterval: 20},
			want: [3]int{30, 10, 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, [3]int{tt.got.ExchangeInterval, tt.got.NumExchangeIndividuals, tt.got.ResetInterval})
		})
	}
}

func TestExternalControlParams_PositionalMatchesNamed(t *testing.T) {
	positional := NewExternalControlParams(30, 10, 20)
	named := NewExternalControlParamsWith(
		WithExchangeInterval(30),
		WithNumExchangeIndividuals(10),
		WithResetInterval(20),
	)
	assert.Equal(t, positional, named)
}

func TestExternalControlParams_Enabled(t *testing.T) {
	p := NewExternalControlParams(0, 2, 0)
	assert.False(t, p.ExchangeEnabled())
	assert.False(t, p.ResetEnabled())

	p = NewExternalControlParams(50, 2, 600)
	assert.True(t, p.ExchangeEnabled())
	assert.True(t, p.ResetEnabled())
}
