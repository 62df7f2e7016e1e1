package contract

import (
	"fmt"
	"math"
	"strings"

	"github.com/spiroflow/vo2peak/schema"
)

// Default values for configuration. The physiological constants follow the
// MetaLyzer breath-by-breath export convention: one averaged sample every
// 10 seconds, smoothed over a 30 second trailing window.
const (
	DefaultSamplingInterval = 10.0 // seconds per row when no time column exists
	DefaultWindowDuration   = 30.0 // seconds of trailing window
	DefaultPlateauThreshold = 0.15 // L/min increment below which V'O2 is flat
	DefaultBodyMass         = 70.0 // kg, used only when the channel is absent
	DefaultPrecision        = 2
	DefaultResultLimit      = 25 // rows shown in terminal tables (0 = all)
	MaxResultLimit          = 100000
)

// Config holds the runtime configuration for one analysis.
// This struct remains the "final, validated" config.
type Config struct {
	DatasetPath string
	InputFormat schema.InputFormat

	SamplingInterval float64 // seconds between rows for a synthesized time axis
	WindowDuration   float64 // smoothing window in seconds
	WindowRows       int     // computed: WindowDuration / SamplingInterval
	PlateauThreshold float64 // L/min per smoothing step
	DefaultBodyMass  float64 // kg fallback when no body-mass column exists

	SkipUnitsRow bool // drop the first non-header row (units sub-header)

	ResultLimit int // row display cap for the smoothed table (0 = all)
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DatasetPathStr string

	SamplingInterval float64 `mapstructure:"sampling-interval"`
	Window           float64 `mapstructure:"window"`
	PlateauThresh    float64 `mapstructure:"plateau-threshold"`
	BodyMass         float64 `mapstructure:"body-mass"`
	UnitsRow         string  `mapstructure:"units-row"`
	InputFormat      string  `mapstructure:"input-format"`
	Limit            int     `mapstructure:"limit"`
	Precision        int     `mapstructure:"precision"`
	Output           string  `mapstructure:"output"`
	OutputFile       string  `mapstructure:"output-file"`
	Width            int     `mapstructure:"width"`
	Color            string  `mapstructure:"color"`
}

// Clone returns a copy of the Config struct. MCP handlers clone the base
// config before applying per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWindow(cfg, input); err != nil {
		return err
	}
	cfg.DatasetPath = input.DatasetPathStr
	return nil
}

// validateSimpleInputs processes and validates all non-window fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Boolean-ish flags ---
	unitsRow, err := ParseBoolString(input.UnitsRow)
	if err != nil {
		return fmt.Errorf("invalid --units-row value: %w", err)
	}
	cfg.SkipUnitsRow = unitsRow

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// --- 3. Input Format Validation ---
	cfg.InputFormat = schema.InputFormat(strings.ToLower(input.InputFormat))
	if _, ok := schema.ValidInputFormats[cfg.InputFormat]; !ok {
		return fmt.Errorf("invalid input format '%s'. must be auto, xlsx, csv", input.InputFormat)
	}

	// --- 4. Physiological Constants Validation ---
	if input.PlateauThresh <= 0 {
		return fmt.Errorf("plateau-threshold must be greater than 0 (received %g)", input.PlateauThresh)
	}
	cfg.PlateauThreshold = input.PlateauThresh

	if input.BodyMass <= 0 {
		return fmt.Errorf("body-mass must be greater than 0 (received %g)", input.BodyMass)
	}
	cfg.DefaultBodyMass = input.BodyMass

	return nil
}

// RevalidateWindow re-checks the smoothing parameters and re-derives the
// trailing-window row count after per-request overrides. MCP handlers call
// this on a cloned config.
func RevalidateWindow(cfg *Config) error {
	input := &ConfigRawInput{
		SamplingInterval: cfg.SamplingInterval,
		Window:           cfg.WindowDuration,
	}
	return processWindow(cfg, input)
}

// processWindow validates the sampling interval and smoothing window and
// derives the row count of the trailing window.
func processWindow(cfg *Config, input *ConfigRawInput) error {
	if input.SamplingInterval <= 0 {
		return fmt.Errorf("sampling-interval must be greater than 0 (received %g)", input.SamplingInterval)
	}
	if input.Window <= 0 {
		return fmt.Errorf("window must be greater than 0 (received %g)", input.Window)
	}

	ratio := input.Window / input.SamplingInterval
	rows := math.Round(ratio)
	if rows < 1 || math.Abs(ratio-rows) > 1e-9 {
		return fmt.Errorf("window (%gs) must be a positive multiple of sampling-interval (%gs)", input.Window, input.SamplingInterval)
	}

	cfg.SamplingInterval = input.SamplingInterval
	cfg.WindowDuration = input.Window
	cfg.WindowRows = int(rows)
	return nil
}
