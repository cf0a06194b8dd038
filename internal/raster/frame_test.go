package raster

import (
	"testing"

	"github.com/banshee-data/edgescan/internal/edge"
)

func TestGenerators_Geometry(t *testing.T) {
	cases := []struct {
		name  string
		frame *Frame
	}{
		{"uniform", Uniform(8, 5, 1000)},
		{"vertical step", VerticalStep(8, 5, 4, 10, 4000)},
		{"horizontal step", HorizontalStep(8, 5, 2, 10, 4000)},
		{"ramp", Ramp(8, 5)},
	}
	for _, tc := range cases {
		if err := tc.frame.Validate(); err != nil {
			t.Errorf("%s: %v", tc.name, err)
		}
		if tc.frame.Width != 8 || tc.frame.Height != 5 {
			t.Errorf("%s: geometry %dx%d, want 8x5", tc.name, tc.frame.Width, tc.frame.Height)
		}
	}
}

func TestVerticalStep_Placement(t *testing.T) {
	f := VerticalStep(6, 3, 3, 100, 2000)
	for y := 0; y < 3; y++ {
		if f.At(2, y) != 100 {
			t.Errorf("row %d: left of edge = %d, want 100", y, f.At(2, y))
		}
		if f.At(3, y) != 2000 {
			t.Errorf("row %d: at edge = %d, want 2000", y, f.At(3, y))
		}
	}
}

func TestRamp_SpansFullRange(t *testing.T) {
	f := Ramp(16, 3)
	if f.At(0, 0) != 0 {
		t.Errorf("ramp start = %d, want 0", f.At(0, 0))
	}
	if f.At(15, 0) != edge.MaxSample {
		t.Errorf("ramp end = %d, want %d", f.At(15, 0), edge.MaxSample)
	}
}

func TestFrame_ValidateRejectsBadGeometry(t *testing.T) {
	if err := NewFrame(2, 5).Validate(); err == nil {
		t.Error("2-wide frame accepted")
	}
	if err := NewFrame(5, 2).Validate(); err == nil {
		t.Error("2-high frame accepted")
	}
}
