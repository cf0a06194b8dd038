// Package config loads run configuration for the edgescan tools from JSON
// files. Fields omitted from the JSON retain their defaults, so partial
// configs are safe; command-line flags override loaded values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RunConfig represents the JSON run configuration. All fields are optional
// pointers so a partial file only overrides what it names.
type RunConfig struct {
	// Core params
	Width      *int `json:"width,omitempty"`
	ScaleShift *int `json:"scale_shift,omitempty"`

	// Stream params
	BlankingCycles *int `json:"blanking_cycles,omitempty"`

	// Stimulus params
	Stimulus *string `json:"stimulus,omitempty"`
	Height   *int    `json:"height,omitempty"`
	EdgeAt   *int    `json:"edge_at,omitempty"`
	Low      *int    `json:"low,omitempty"`
	High     *int    `json:"high,omitempty"`
}

// Load reads a RunConfig from a JSON file. The path must have a .json
// extension; the file is size-capped for safety.
func Load(path string) (*RunConfig, error) {
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

	cfg := &RunConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that set fields are within the core's accepted ranges.
func (c *RunConfig) Validate() error {
	if c.Width != nil && *c.Width < 3 {
		return fmt.Errorf("width must be at least 3, got %d", *c.Width)
	}
	if c.ScaleShift != nil && (*c.ScaleShift < 0 || *c.ScaleShift > 15) {
		return fmt.Errorf("scale_shift must be between 0 and 15, got %d", *c.ScaleShift)
	}
	if c.BlankingCycles != nil && *c.BlankingCycles < 0 {
		return fmt.Errorf("blanking_cycles must be non-negative, got %d", *c.BlankingCycles)
	}
	if c.Height != nil && *c.Height < 3 {
		return fmt.Errorf("height must be at least 3, got %d", *c.Height)
	}
	for _, v := range []struct {
		name string
		val  *int
	}{{"low", c.Low}, {"high", c.High}} {
		if v.val != nil && (*v.val < 0 || *v.val > 4095) {
			return fmt.Errorf("%s must be a 12-bit sample value, got %d", v.name, *v.val)
		}
	}
	return nil
}

// GetWidth returns the configured width or the default.
func (c *RunConfig) GetWidth() int {
	if c.Width == nil {
		return 640
	}
	return *c.Width
}

// GetScaleShift returns the configured scale shift or the default.
func (c *RunConfig) GetScaleShift() int {
	if c.ScaleShift == nil {
		return 4
	}
	return *c.ScaleShift
}

// GetBlankingCycles returns the configured blanking cycles or the default.
func (c *RunConfig) GetBlankingCycles() int {
	if c.BlankingCycles == nil {
		return 0
	}
	return *c.BlankingCycles
}

// GetStimulus returns the configured stimulus name or the default.
func (c *RunConfig) GetStimulus() string {
	if c.Stimulus == nil {
		return "vstep"
	}
	return *c.Stimulus
}

// GetHeight returns the configured frame height or the default.
func (c *RunConfig) GetHeight() int {
	if c.Height == nil {
		return 480
	}
	return *c.Height
}

// GetEdgeAt returns the configured step position or the default.
func (c *RunConfig) GetEdgeAt() int {
	if c.EdgeAt == nil {
		return 320
	}
	return *c.EdgeAt
}

// GetLow returns the configured low sample value or the default.
func (c *RunConfig) GetLow() uint16 {
	if c.Low == nil {
		return 100
	}
	return uint16(*c.Low)
}

// GetHigh returns the configured high sample value or the default.
func (c *RunConfig) GetHigh() uint16 {
	if c.High == nil {
		return 1100
	}
	return uint16(*c.High)
}
