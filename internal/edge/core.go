package edge

import (
	"fmt"
)

// PipelineDepth is the fixed number of cycles between a sample entering the
// core and its output appearing: one register stage each for window
// formation, gradient arithmetic, and the output stage. Constant for every
// configuration and independent of sample position or value.
const PipelineDepth = 3

// Config holds the construction-time parameters of a Core. Neither field
// may change mid-run.
type Config struct {
	// Width is the row length in samples. Must be at least 3 so a 3×3
	// window fits within a row.
	Width int

	// ScaleShift is the arithmetic right shift applied to the raw
	// gradient magnitude (0–15).
	ScaleShift uint
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.Width < 3 {
		return fmt.Errorf("width must be at least 3, got %d", c.Width)
	}
	if c.ScaleShift > 15 {
		return fmt.Errorf("scale shift must be at most 15, got %d", c.ScaleShift)
	}
	return nil
}

// Input is the per-cycle upstream interface: a sample paired with a valid
// flag. The sample is meaningful only when Valid is set; an invalid cycle
// is a blanking cycle and consumes nothing.
type Input struct {
	Pixel uint16
	Valid bool
}

// Output is the per-cycle downstream interface. Pixel is meaningful only
// when Valid is set. WindowValid reports that the sample had a complete
// 3×3 window (interior pixel); when false the sample is border passthrough.
type Output struct {
	Pixel       uint16
	Valid       bool
	WindowValid bool
}

// Core is the streaming edge-detection pipeline. A single execution
// context advances it one cycle at a time via Step; all internal state
// (row buffers, raster counters, the in-flight queue) is exclusively
// owned and no locking is needed.
type Core struct {
	cfg     Config
	former  *WindowFormer
	engine  *GradientEngine
	cadence *Cadence
}

// New creates a Core for the given configuration.
func New(cfg Config) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid core config: %w", err)
	}
	return &Core{
		cfg:     cfg,
		former:  NewWindowFormer(cfg.Width),
		engine:  NewGradientEngine(cfg.ScaleShift),
		cadence: NewCadence(PipelineDepth),
	}, nil
}

// Config returns the construction-time configuration.
func (c *Core) Config() Config { return c.cfg }

// Depth returns the fixed pipeline latency in cycles.
func (c *Core) Depth() int { return c.cadence.Depth() }

// Step advances the pipeline one cycle. On a valid cycle the sample is
// consumed, windowed and transformed; on a blanking cycle no state other
// than the in-flight queue advances. Exactly one Output is produced per
// call, reflecting the input presented Depth() cycles earlier.
func (c *Core) Step(in Input) Output {
	var entry flight
	if in.Valid {
		w, _ := c.former.Advance(in.Pixel)
		r := c.engine.Apply(w)
		entry = flight{pixel: r.Value, valid: true, windowValid: r.Computed}
	}
	out := c.cadence.Cycle(entry)
	return Output{Pixel: out.pixel, Valid: out.valid, WindowValid: out.windowValid}
}

// Reset atomically clears all internal buffers, counters and the in-flight
// queue, returning the core to its post-construction state. Inputs
// presented while the caller is resetting are ignored by definition: Reset
// replaces the cycle's Step.
func (c *Core) Reset() {
	c.former.Reset()
	c.cadence.Reset()
}
