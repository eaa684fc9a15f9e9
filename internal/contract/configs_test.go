package contract

import (
	"testing"
	"time"

	"github.com/octoprofile/octoprofile/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation, for tests that
// tweak one field at a time.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Login:      "octocat",
		Token:      "ghp_testtoken",
		Years:      2,
		MinCommits: 1,
		Style:      "both",
		Theme:      "dark",
		TopN:       10,
		Color:      "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(_ *ConfigRawInput) {},
			expectError: false,
		},
		{
			name:        "missing username",
			mutate:      func(in *ConfigRawInput) { in.Login = "  " },
			expectError: true,
		},
		{
			name:        "missing token",
			mutate:      func(in *ConfigRawInput) { in.Token = "" },
			expectError: true,
		},
		{
			name:        "invalid style",
			mutate:      func(in *ConfigRawInput) { in.Style = "fancy" },
			expectError: true,
		},
		{
			name:        "invalid theme",
			mutate:      func(in *ConfigRawInput) { in.Theme = "sepia" },
			expectError: true,
		},
		{
			name:        "style is case insensitive",
			mutate:      func(in *ConfigRawInput) { in.Style = "NeoFetch" },
			expectError: false,
		},
		{
			name:        "negative min commits",
			mutate:      func(in *ConfigRawInput) { in.MinCommits = -1 },
			expectError: true,
		},
		{
			name:        "top-n above limit",
			mutate:      func(in *ConfigRawInput) { in.TopN = MaxTopLanguages + 1 },
			expectError: true,
		},
		{
			name:        "negative delay",
			mutate:      func(in *ConfigRawInput) { in.DelayMs = -5 },
			expectError: true,
		},
		{
			name:        "bad from date",
			mutate:      func(in *ConfigRawInput) { in.From = "06/15/2024" },
			expectError: true,
		},
		{
			name: "from after to",
			mutate: func(in *ConfigRawInput) {
				in.From = "2024-06-01"
				in.To = "2023-06-01"
			},
			expectError: true,
		},
		{
			name:        "bad color value",
			mutate:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestProcessAndValidateDefaults verifies zero-value inputs resolve to the
// documented defaults.
func TestProcessAndValidateDefaults(t *testing.T) {
	input := validInput()
	input.Years = 0
	input.DelayMs = 0
	input.Out = ""

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, DefaultRequestDelay, cfg.RequestDelay)
	assert.Equal(t, DefaultOutBase, cfg.OutBase)
	assert.True(t, cfg.LineCounts)
	assert.True(t, cfg.ShowYearly)
	assert.True(t, cfg.UseColors)

	// Zero years falls back to the default lookback window.
	wantStart := cfg.EndTime.AddDate(-DefaultYearsBack, 0, 0)
	assert.WithinDuration(t, wantStart, cfg.StartTime, time.Minute)
}

func TestProcessTimeWindowExplicitDates(t *testing.T) {
	input := validInput()
	input.From = "2023-01-15"
	input.To = "2024-01-15"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC), cfg.StartTime)
	assert.Equal(t, time.Date(2024, time.January, 15, 23, 59, 59, 0, time.UTC), cfg.EndTime)
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input     string
		want      bool
		expectErr bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"on", true, false},
		{"", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"off", false, false},
		{"sometimes", false, true},
	}

	for _, tt := range tests {
		t.Run("value "+tt.input, func(t *testing.T) {
			got, parseErr := ParseBoolString(tt.input)
			if tt.expectErr {
				require.Error(t, parseErr)
				return
			}
			require.NoError(t, parseErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSVGPath(t *testing.T) {
	cfg := &Config{OutBase: "stats"}
	assert.Equal(t, "stats_neofetch_dark.svg", cfg.SVGPath(schema.NeofetchStyle, schema.DarkTheme))
	assert.Equal(t, "stats_terminal_light.svg", cfg.SVGPath(schema.TerminalStyle, schema.LightTheme))
}
