package wizard

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/brkga-mp-ipr/brkga/internal/config"
	"github.com/brkga-mp-ipr/brkga/params"
	"github.com/brkga-mp-ipr/brkga/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyOptions(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{key: "bias_type", want: []string{"CONSTANT", "CUBIC", "EXPONENTIAL", "LINEAR", "LOGINVERSE", "QUADRATIC"}},
		{key: "pr_type", want: []string{"DIRECT", "PERMUTATION"}},
		{key: "pr_selection", want: []string{"BESTSOLUTION", "RANDOMELITE"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			options := strategyOptions(tt.key)
			got := make([]string, len(options))
			for i, o := range options {
				got[i] = o.Value
			}
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Nil(t, strategyOptions("population_size"))
	assert.Nil(t, strategyOptions("reset_interval"))
}

func TestDescriptions_CoverEveryKey(t *testing.T) {
	for _, key := range params.Keys {
		assert.NotEmpty(t, descriptions[key], key)
	}
}

func TestValidateValue(t *testing.T) {
	assert.NoError(t, validateValue("population_size", false)("100"))
	assert.NoError(t, validateValue("elite_percentage", false)(" 0.25 "))
	assert.EqualError(t, validateValue("population_size", false)("  "), "population_size is required")
	assert.NoError(t, validateValue("population_size", true)(""))
	assert.Error(t, validateValue("population_size", true)("lots"))
	assert.Error(t, validateValue("reset_interval", true)("0x10"))
	assert.Error(t, validateValue("pr_percentage", false)("all"))
}

func answersFor(cfg config.Configuration) map[string]*string {
	answers := config.Values(cfg)
	values := make(map[string]*string, len(answers))
	for k, v := range answers {
		values[k] = &v
	}
	return values
}

func TestCollect(t *testing.T) {
	values := answersFor(config.Sample())
	*values["bias_type"] = "CUBIC"
	*values["population_size"] = "750"

	cfg, err := collect(config.Sample(), values)
	require.NoError(t, err)
	assert.Equal(t, 750, cfg.Brkga.PopulationSize)
	assert.Equal(t, strategy.BiasCubic, cfg.Brkga.BiasType)
	assert.Equal(t, config.Sample().Control, cfg.Control)
}

func TestCollect_KeepsSeedForUnansweredKeys(t *testing.T) {
	four := "4"
	values := map[string]*string{"total_parents": &four}

	cfg, err := collect(config.Sample(), values)
	require.NoError(t, err)
	want := config.Sample()
	want.Brkga.TotalParents = 4
	assert.Equal(t, want, *cfg)
}

func TestCollect_InvalidAnswer(t *testing.T) {
	values := answersFor(config.Sample())
	*values["reset_interval"] = "soon"

	_, err := collect(config.Sample(), values)
	assert.ErrorContains(t, err, "reset_interval")
}

// blankLines answers n prompts with an empty line each.
func blankLines(n int) string {
	return strings.Repeat("\n", n)
}

func TestRun_AcceptsDefaults(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, err := Run(strings.NewReader(blankLines(len(params.Keys))), out, config.Sample())
	require.NoError(t, err)
	assert.Equal(t, config.Sample(), *cfg)
	assert.Contains(t, out.String(), "population_size")
	assert.Contains(t, out.String(), "reset_interval")
}

func TestRun_OverridesValues(t *testing.T) {
	input := "750\n" + // population_size
		blankLines(4) +
		"2\n" + // bias_type: cubic
		blankLines(3) +
		"1\n" + // pr_type: direct
		blankLines(5) +
		"0\n" // reset_interval

	cfg, err := Run(strings.NewReader(input), &bytes.Buffer{}, config.Sample())
	require.NoError(t, err)

	want := config.Sample()
	want.Brkga.PopulationSize = 750
	want.Brkga.BiasType = strategy.BiasCubic
	want.Brkga.PRType = strategy.PathRelinkDirect
	want.Control.ResetInterval = 0
	assert.Equal(t, want, *cfg)
}

func TestRun_RepromptsOnInvalidAnswers(t *testing.T) {
	input := "lots\n750\n" + // population_size, rejected then accepted
		blankLines(4) +
		"9\n6\n" + // bias_type out of range, then quadratic
		blankLines(10)
	out := &bytes.Buffer{}

	cfg, err := Run(strings.NewReader(input), out, config.Sample())
	require.NoError(t, err)
	assert.Equal(t, 750, cfg.Brkga.PopulationSize)
	assert.Equal(t, strategy.BiasQuadratic, cfg.Brkga.BiasType)
	assert.Contains(t, out.String(), `invalid value "lots" for population_size`)
	assert.Contains(t, out.String(), "must be a number between 1 and 6")
}

func TestRun_LastAnswerWithoutNewline(t *testing.T) {
	input := blankLines(len(params.Keys)-1) + "900"

	cfg, err := Run(strings.NewReader(input), &bytes.Buffer{}, config.Sample())
	require.NoError(t, err)
	assert.Equal(t, 900, cfg.Control.ResetInterval)
}

func TestRun_UnexpectedEOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no input", input: ""},
		{name: "first answer only", input: "750\n"},
		{name: "invalid last answer", input: "lots\n"},
		{name: "one answer short", input: blankLines(len(params.Keys) - 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(strings.NewReader(tt.input), &bytes.Buffer{}, config.Sample())
			assert.ErrorIs(t, err, ErrUnexpectedEOF)
		})
	}
}

func TestLineReader_OneBytePerRead(t *testing.T) {
	r := newLineReader(strings.NewReader("ab\n"))
	buf := make([]byte, 16)

	for _, want := range []byte("ab\n") {
		n, err := r.Read(buf)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		assert.Equal(t, want, buf[0])
	}
	assert.False(t, r.starved)

	_, err := r.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, r.starved)
}
