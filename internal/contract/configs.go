package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/octoprofile/octoprofile/schema"
)

// Default values for configuration.
const (
	DefaultYearsBack    = 5
	DefaultMinCommits   = 1
	DefaultTopLanguages = 10
	MaxTopLanguages     = 25
	DefaultOutBase      = "profile"

	// DefaultRequestDelay is the fixed pause before every outbound query.
	DefaultRequestDelay = 200 * time.Millisecond
)

// Config holds the runtime configuration for a run.
// This struct remains the "final, validated" config.
type Config struct {
	Login string
	Token string

	StartTime time.Time
	EndTime   time.Time

	ExcludeForks   bool
	ExcludePrivate bool
	MinCommits     int
	LineCounts     bool

	Style   schema.CardStyle
	Theme   schema.Theme
	OutBase string

	JSONFile    string
	ParquetFile string

	TopN         int
	RequestDelay time.Duration
	Width        int // Terminal width override (0 = auto-detect)
	UseColors    bool
	ShowYearly   bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	Login string

	Token        string `mapstructure:"token"`
	Years        int    `mapstructure:"years"`
	From         string `mapstructure:"from"`
	To           string `mapstructure:"to"`
	ExcludeForks bool   `mapstructure:"exclude-forks"`
	ExcludePriv  bool   `mapstructure:"exclude-private"`
	MinCommits   int    `mapstructure:"min-commits"`
	NoLineCounts bool   `mapstructure:"no-line-counts"`
	Style        string `mapstructure:"style"`
	Theme        string `mapstructure:"theme"`
	Out          string `mapstructure:"out"`
	Output       string `mapstructure:"output"`
	Parquet      string `mapstructure:"export-parquet"`
	TopN         int    `mapstructure:"top-n"`
	DelayMs      int    `mapstructure:"delay"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	NoYearly     bool   `mapstructure:"no-yearly"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateIdentity(cfg, input); err != nil {
		return err
	}
	if err := processTimeWindow(cfg, input); err != nil {
		return err
	}
	if err := validateOutputs(cfg, input); err != nil {
		return err
	}
	return validateTuning(cfg, input)
}

// validateIdentity checks the target login and credential.
func validateIdentity(cfg *Config, input *ConfigRawInput) error {
	cfg.Login = strings.TrimSpace(input.Login)
	if cfg.Login == "" {
		return fmt.Errorf("a target username is required")
	}

	cfg.Token = strings.TrimSpace(input.Token)
	if cfg.Token == "" {
		return fmt.Errorf("a GitHub token is required; pass --token or set GITHUB_TOKEN")
	}
	return nil
}

// processTimeWindow resolves --from/--to or --years into an absolute window.
func processTimeWindow(cfg *Config, input *ConfigRawInput) error {
	now := time.Now().UTC()

	years := input.Years
	if years <= 0 {
		years = DefaultYearsBack
	}
	cfg.EndTime = now
	cfg.StartTime = now.AddDate(-years, 0, 0)

	if input.From != "" {
		t, err := ParseStartDate(input.From)
		if err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
		cfg.StartTime = t
	}
	if input.To != "" {
		t, err := ParseEndDate(input.To)
		if err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
		cfg.EndTime = t
	}

	if cfg.StartTime.After(cfg.EndTime) {
		return fmt.Errorf("start time (%s) cannot be after end time (%s)",
			cfg.StartTime.Format(DateFormat), cfg.EndTime.Format(DateFormat))
	}
	return nil
}

// validateOutputs checks style, theme and output destinations.
func validateOutputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Style = schema.CardStyle(strings.ToLower(input.Style))
	if _, ok := schema.ValidCardStyles[cfg.Style]; !ok {
		return fmt.Errorf("invalid style '%s'. must be neofetch, terminal, both", input.Style)
	}

	cfg.Theme = schema.Theme(strings.ToLower(input.Theme))
	if _, ok := schema.ValidThemes[cfg.Theme]; !ok {
		return fmt.Errorf("invalid theme '%s'. must be dark, light, both", input.Theme)
	}

	cfg.OutBase = strings.TrimSpace(input.Out)
	if cfg.OutBase == "" {
		cfg.OutBase = DefaultOutBase
	}
	cfg.JSONFile = input.Output
	cfg.ParquetFile = input.Parquet
	return nil
}

// validateTuning checks filters, limits and the request delay.
func validateTuning(cfg *Config, input *ConfigRawInput) error {
	cfg.ExcludeForks = input.ExcludeForks
	cfg.ExcludePrivate = input.ExcludePriv
	cfg.LineCounts = !input.NoLineCounts
	cfg.ShowYearly = !input.NoYearly
	cfg.Width = input.Width

	if input.MinCommits < 0 {
		return fmt.Errorf("min-commits cannot be negative (received %d)", input.MinCommits)
	}
	cfg.MinCommits = input.MinCommits

	if input.TopN <= 0 || input.TopN > MaxTopLanguages {
		return fmt.Errorf("top-n must be between 1 and %d (received %d)", MaxTopLanguages, input.TopN)
	}
	cfg.TopN = input.TopN

	if input.DelayMs < 0 {
		return fmt.Errorf("delay cannot be negative (received %d)", input.DelayMs)
	}
	cfg.RequestDelay = time.Duration(input.DelayMs) * time.Millisecond
	if input.DelayMs == 0 {
		cfg.RequestDelay = DefaultRequestDelay
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors
	return nil
}

// ParseBoolString interprets yes/no style flag values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	}
	return false, fmt.Errorf("expected yes/no/true/false/1/0, received %q", s)
}

// SVGPath returns the output path for one style and theme combination.
func (c *Config) SVGPath(style schema.CardStyle, theme schema.Theme) string {
	return fmt.Sprintf("%s_%s_%s.svg", c.OutBase, style, theme)
}
