package limits

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptwire/promptwire"
)

func TestDefault_CoversCommonFamilies(t *testing.T) {
	t.Parallel()
	for _, model := range []string{
		"claude-sonnet-4-5-20250929",
		"gpt-4o-2024-08-06",
		"gpt-4o-mini",
		"gemini-2.5-pro",
		"llama3.3",
	} {
		ml, ok := Lookup(model)
		require.True(t, ok, "model %q", model)
		assert.Positive(t, ml.ContextWindow, "model %q", model)
	}
}

func TestLookup_ExactBeforePrefix(t *testing.T) {
	t.Parallel()
	tbl := NewTable()
	tbl.Set("gpt-4", ModelLimits{ContextWindow: 8192})
	tbl.Set("gpt-4o", ModelLimits{ContextWindow: 128000})

	ml, ok := tbl.Lookup("gpt-4o")
	require.True(t, ok)
	assert.Equal(t, 128000, ml.ContextWindow)
}

func TestLookup_LongestPrefixWins(t *testing.T) {
	t.Parallel()
	tbl := NewTable()
	tbl.Set("gpt-4", ModelLimits{ContextWindow: 8192})
	tbl.Set("gpt-4o", ModelLimits{ContextWindow: 128000})
	tbl.Set("gpt-4o-mini", ModelLimits{ContextWindow: 64000})

	tests := []struct {
		model string
		want  int
	}{
		{"gpt-4-0613", 8192},
		{"gpt-4o-2024-08-06", 128000},
		{"gpt-4o-mini-2024-07-18", 64000},
	}
	for _, tt := range tests {
		ml, ok := tbl.Lookup(tt.model)
		require.True(t, ok, "model %q", tt.model)
		assert.Equal(t, tt.want, ml.ContextWindow, "model %q", tt.model)
	}
}

func TestLookup_Normalization(t *testing.T) {
	t.Parallel()
	tbl := NewTable()
	tbl.Set("claude-sonnet-4", ModelLimits{ContextWindow: 200000})

	for _, model := range []string{
		"Claude-Sonnet-4",
		"  claude-sonnet-4  ",
		"anthropic/claude-sonnet-4-5",
	} {
		_, ok := tbl.Lookup(model)
		assert.True(t, ok, "model %q", model)
	}
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()
	tbl := NewTable()
	_, ok := tbl.Lookup("unknown-model")
	assert.False(t, ok)
}

func TestLoad_MergesAndOverrides(t *testing.T) {
	t.Parallel()
	tbl := NewTable()
	tbl.Set("my-model", ModelLimits{ContextWindow: 1000, MaxOutput: 100})

	err := tbl.Load(strings.NewReader(`
my-model:
  context_window: 2000
  max_output: 200
other-model:
  context_window: 4096
`))
	require.NoError(t, err)

	ml, ok := tbl.Lookup("my-model")
	require.True(t, ok)
	assert.Equal(t, 2000, ml.ContextWindow)
	assert.Equal(t, 200, ml.MaxOutput)

	ml, ok = tbl.Lookup("other-model")
	require.True(t, ok)
	assert.Equal(t, 4096, ml.ContextWindow)
	assert.Equal(t, 0, ml.MaxOutput)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "{{{"},
		{"zero context window", "m:\n  context_window: 0\n"},
		{"negative context window", "m:\n  context_window: -5\n"},
		{"negative max output", "m:\n  context_window: 10\n  max_output: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tbl := NewTable()
			err := tbl.Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLimits)
		})
	}
}

func TestLoad_InvalidKeepsExisting(t *testing.T) {
	t.Parallel()
	tbl := NewTable()
	tbl.Set("keep-me", ModelLimits{ContextWindow: 123})

	err := tbl.Load(strings.NewReader("bad:\n  context_window: 0\n"))
	require.Error(t, err)

	ml, ok := tbl.Lookup("keep-me")
	require.True(t, ok)
	assert.Equal(t, 123, ml.ContextWindow)
}

func TestNames_Sorted(t *testing.T) {
	t.Parallel()
	tbl := NewTable()
	tbl.Set("zeta", ModelLimits{ContextWindow: 1})
	tbl.Set("alpha", ModelLimits{ContextWindow: 1})
	tbl.Set("mid", ModelLimits{ContextWindow: 1})
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, tbl.Names())
}

func TestDefault_IsACopy(t *testing.T) {
	t.Parallel()
	tbl := Default()
	tbl.Set("gpt-4o", ModelLimits{ContextWindow: 1})

	ml, ok := Lookup("gpt-4o")
	require.True(t, ok)
	assert.NotEqual(t, 1, ml.ContextWindow)
}

func TestFitterFor(t *testing.T) {
	t.Parallel()
	tbl := NewTable()
	tbl.Set("tiny", ModelLimits{ContextWindow: 40})

	f, err := tbl.FitterFor("tiny", &promptwire.HeuristicTokenizer{}, promptwire.WithReserve(10))
	require.NoError(t, err)

	res, err := f.Fit(strings.Repeat("a", 400)) // 100 tokens, budget 30
	require.NoError(t, err)
	assert.Equal(t, 40, res.ModelMax)
	assert.Equal(t, 30, res.FittedTokens)
	assert.True(t, res.Truncated())
}

func TestFitterFor_UnknownModel(t *testing.T) {
	t.Parallel()
	tbl := NewTable()
	_, err := tbl.FitterFor("nope", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestFitterFor_DefaultTable(t *testing.T) {
	t.Parallel()
	f, err := FitterFor("gpt-4o", nil)
	require.NoError(t, err)

	res, err := f.Fit("hello")
	require.NoError(t, err)
	assert.Equal(t, 128000, res.ModelMax)
}
