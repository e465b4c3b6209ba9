package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied by the Get* methods when a field is unset.
const (
	DefaultOrthogonalityTolerance = 1e-9
	DefaultOutputDir              = "plots"
	DefaultPlotWidthInches        = 8.0
	DefaultPlotHeightInches       = 8.0
)

// Config holds the numeric tolerances and demo output settings. Pointer
// fields distinguish "unset" from zero so partial JSON files are safe.
type Config struct {
	OrthogonalityTolerance *float64 `json:"orthogonality_tolerance,omitempty"`

	// Plot output
	OutputDir        *string  `json:"output_dir,omitempty"`
	PlotWidthInches  *float64 `json:"plot_width_inches,omitempty"`
	PlotHeightInches *float64 `json:"plot_height_inches,omitempty"`

	Debug *bool `json:"debug,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrBool(v bool) *bool          { return &v }

// Empty returns a Config with every field unset.
func Empty() *Config {
	return &Config{}
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	return &Config{
		OrthogonalityTolerance: ptrFloat64(DefaultOrthogonalityTolerance),
		OutputDir:              ptrString(DefaultOutputDir),
		PlotWidthInches:        ptrFloat64(DefaultPlotWidthInches),
		PlotHeightInches:       ptrFloat64(DefaultPlotHeightInches),
		Debug:                  ptrBool(false),
	}
}

// LoadConfig loads a Config from a JSON file.
// The file must have a .json extension and be at most 1MB. Fields omitted
// from the file keep falling back to their defaults.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the set fields are in range.
func (c *Config) Validate() error {
	if c.OrthogonalityTolerance != nil {
		if *c.OrthogonalityTolerance <= 0 || *c.OrthogonalityTolerance >= 1 {
			return fmt.Errorf("orthogonality_tolerance must be in (0, 1), got %g", *c.OrthogonalityTolerance)
		}
	}

	if c.OutputDir != nil && *c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}

	if c.PlotWidthInches != nil && *c.PlotWidthInches <= 0 {
		return fmt.Errorf("plot_width_inches must be positive, got %g", *c.PlotWidthInches)
	}
	if c.PlotHeightInches != nil && *c.PlotHeightInches <= 0 {
		return fmt.Errorf("plot_height_inches must be positive, got %g", *c.PlotHeightInches)
	}

	return nil
}

// GetOrthogonalityTolerance returns the orthogonality_tolerance value or the default.
func (c *Config) GetOrthogonalityTolerance() float64 {
	if c.OrthogonalityTolerance == nil {
		return DefaultOrthogonalityTolerance
	}
	return *c.OrthogonalityTolerance
}

// GetOutputDir returns the output_dir value or the default.
func (c *Config) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return DefaultOutputDir
	}
	return *c.OutputDir
}

func (c *Config) GetPlotWidthInches() float64 {
	if c.PlotWidthInches == nil {
		return DefaultPlotWidthInches
	}
	return *c.PlotWidthInches
}

func (c *Config) GetPlotHeightInches() float64 {
	if c.PlotHeightInches == nil {
		return DefaultPlotHeightInches
	}
	return *c.PlotHeightInches
}

// GetDebug returns the debug value or false.
func (c *Config) GetDebug() bool {
	if c.Debug == nil {
		return false
	}
	return *c.Debug
}
