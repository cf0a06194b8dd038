package raster

import (
	"fmt"

	"github.com/banshee-data/edgescan/internal/edge"
)

// Frame is a width×height matrix of 12-bit grayscale samples in row-major
// order. Frames are the unit of work for streaming: pixels are fed to the
// core row by row, left to right.
type Frame struct {
	Width  int
	Height int
	Pix    []uint16
}

// NewFrame allocates a zeroed frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint16, width*height),
	}
}

// At returns the sample at (x, y). Callers must stay in bounds.
func (f *Frame) At(x, y int) uint16 { return f.Pix[y*f.Width+x] }

// Set stores a sample at (x, y).
func (f *Frame) Set(x, y int, v uint16) { f.Pix[y*f.Width+x] = v }

// Validate checks frame geometry against the core's requirements.
func (f *Frame) Validate() error {
	if f.Width < 3 || f.Height < 3 {
		return fmt.Errorf("frame must be at least 3×3, got %d×%d", f.Width, f.Height)
	}
	if len(f.Pix) != f.Width*f.Height {
		return fmt.Errorf("frame holds %d samples, want %d", len(f.Pix), f.Width*f.Height)
	}
	for i, v := range f.Pix {
		if v > edge.MaxSample {
			return fmt.Errorf("sample %d out of range: %d > %d", i, v, edge.MaxSample)
		}
	}
	return nil
}

// Uniform builds a frame filled with a single value.
func Uniform(width, height int, value uint16) *Frame {
	f := NewFrame(width, height)
	for i := range f.Pix {
		f.Pix[i] = value
	}
	return f
}

// VerticalStep builds a frame with a vertical step edge: columns left of
// edgeX hold low, columns from edgeX onward hold high.
func VerticalStep(width, height, edgeX int, low, high uint16) *Frame {
	f := NewFrame(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < edgeX {
				f.Set(x, y, low)
			} else {
				f.Set(x, y, high)
			}
		}
	}
	return f
}

// HorizontalStep builds a frame with a horizontal step edge: rows above
// edgeY hold low, rows from edgeY onward hold high.
func HorizontalStep(width, height, edgeY int, low, high uint16) *Frame {
	f := NewFrame(width, height)
	for y := 0; y < height; y++ {
		v := low
		if y >= edgeY {
			v = high
		}
		for x := 0; x < width; x++ {
			f.Set(x, y, v)
		}
	}
	return f
}

// Ramp builds a frame whose samples rise linearly left to right across the
// full 12-bit range, a constant-gradient stimulus.
func Ramp(width, height int) *Frame {
	f := NewFrame(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.Set(x, y, uint16(x*edge.MaxSample/(width-1)))
		}
	}
	return f
}
