package raster

import (
	"fmt"

	"github.com/banshee-data/edgescan/internal/edge"
)

// Sample is one reassembled output position: the edge response (or border
// passthrough) and whether it came from a complete 3×3 window.
type Sample struct {
	Value       uint16
	WindowValid bool
}

// Result is the reassembled output frame, indexed in window-center
// coordinates: Samples[y*Width+x] is the response for the window centered
// at (x, y) of the input frame. Border positions carry the passthrough
// pixel with WindowValid false.
type Result struct {
	Width   int
	Height  int
	Samples []Sample
}

// At returns the sample at (x, y).
func (r *Result) At(x, y int) Sample { return r.Samples[y*r.Width+x] }

// Interior reports whether (x, y) is an interior position (one-pixel
// border excluded on all four sides).
func (r *Result) Interior(x, y int) bool {
	return x >= 1 && x <= r.Width-2 && y >= 1 && y <= r.Height-2
}

// InteriorValues returns the responses of all interior positions in raster
// order, the population the report statistics are computed over.
func (r *Result) InteriorValues() []float64 {
	vals := make([]float64, 0, (r.Width-2)*(r.Height-2))
	for y := 1; y <= r.Height-2; y++ {
		for x := 1; x <= r.Width-2; x++ {
			vals = append(vals, float64(r.At(x, y).Value))
		}
	}
	return vals
}

// Process streams a frame through the core in raster-scan order, inserting
// blanking cycles between rows, drains the pipeline, and reassembles the
// outputs into center coordinates. The core is reset first so a single
// core can process frames back to back.
//
// The valid cadence is checked on every cycle; a violation is a structural
// defect in the core and is returned as an error, never papered over.
func Process(core *edge.Core, frame *Frame, blankingCycles int) (*Result, error) {
	if err := frame.Validate(); err != nil {
		return nil, fmt.Errorf("invalid frame: %w", err)
	}
	if frame.Width != core.Config().Width {
		return nil, fmt.Errorf("frame width %d does not match core width %d",
			frame.Width, core.Config().Width)
	}
	if blankingCycles < 0 {
		return nil, fmt.Errorf("blanking cycles must not be negative, got %d", blankingCycles)
	}

	core.Reset()
	depth := core.Depth()
	valids := make([]bool, 0, len(frame.Pix)+frame.Height*blankingCycles+depth)
	outputs := make([]edge.Output, 0, len(frame.Pix))

	cycle := func(in edge.Input) error {
		valids = append(valids, in.Valid)
		out := core.Step(in)
		t := len(valids) - 1
		var want bool
		if t >= depth {
			want = valids[t-depth]
		}
		if out.Valid != want {
			return fmt.Errorf("cadence violation at cycle %d: output valid %v, input valid %d cycles earlier %v",
				t, out.Valid, depth, want)
		}
		if out.Valid {
			outputs = append(outputs, out)
		}
		return nil
	}

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			if err := cycle(edge.Input{Pixel: frame.At(x, y), Valid: true}); err != nil {
				return nil, err
			}
		}
		for i := 0; i < blankingCycles; i++ {
			if err := cycle(edge.Input{}); err != nil {
				return nil, err
			}
		}
	}
	for i := 0; i < depth; i++ {
		if err := cycle(edge.Input{}); err != nil {
			return nil, err
		}
	}

	if len(outputs) != len(frame.Pix) {
		return nil, fmt.Errorf("cadence violation: %d valid outputs for %d valid inputs",
			len(outputs), len(frame.Pix))
	}

	// Output k carries the response for center k-(width+1). The final
	// width+1 centers (tail of the last row) are never emitted; they are
	// borders and keep their passthrough pixel.
	res := &Result{
		Width:   frame.Width,
		Height:  frame.Height,
		Samples: make([]Sample, len(frame.Pix)),
	}
	for i, v := range frame.Pix {
		res.Samples[i] = Sample{Value: v}
	}
	shift := frame.Width + 1
	for k := shift; k < len(outputs); k++ {
		res.Samples[k-shift] = Sample{Value: outputs[k].Pixel, WindowValid: outputs[k].WindowValid}
	}
	return res, nil
}
