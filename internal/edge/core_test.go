package edge

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// runFrame feeds a frame through the core in raster order with blank
// blanking cycles between rows, drains the pipeline, and returns the valid
// outputs in production order. The cadence invariant is checked on every
// cycle: a violation is a defect, not a condition to handle.
func runFrame(t *testing.T, c *Core, frame [][]uint16, blank int) []Output {
	t.Helper()
	depth := c.Depth()
	var history []bool
	var outputs []Output

	cycle := func(in Input) {
		t.Helper()
		history = append(history, in.Valid)
		out := c.Step(in)
		tcycle := len(history) - 1
		var want bool
		if tcycle >= depth {
			want = history[tcycle-depth]
		}
		if out.Valid != want {
			t.Fatalf("cycle %d: output valid = %v, want input valid from %d cycles earlier (%v)",
				tcycle, out.Valid, depth, want)
		}
		if out.Valid {
			outputs = append(outputs, out)
		}
	}

	for _, row := range frame {
		for _, px := range row {
			cycle(Input{Pixel: px, Valid: true})
		}
		for i := 0; i < blank; i++ {
			cycle(Input{})
		}
	}
	for i := 0; i < depth; i++ {
		cycle(Input{})
	}
	return outputs
}

// uniformFrame builds a w×h frame filled with a single value.
func uniformFrame(w, h int, value uint16) [][]uint16 {
	frame := make([][]uint16, h)
	for y := range frame {
		frame[y] = make([]uint16, w)
		for x := range frame[y] {
			frame[y][x] = value
		}
	}
	return frame
}

// stepEdgeFrame builds a w×h frame with a vertical step: columns left of
// edgeX hold low, columns from edgeX onward hold high.
func stepEdgeFrame(w, h, edgeX int, low, high uint16) [][]uint16 {
	frame := make([][]uint16, h)
	for y := range frame {
		frame[y] = make([]uint16, w)
		for x := range frame[y] {
			if x < edgeX {
				frame[y][x] = low
			} else {
				frame[y][x] = high
			}
		}
	}
	return frame
}

// responseAt returns the output carrying the response for the window
// centered at (cx, cy): the outputs are shifted one row plus one column
// behind the input raster.
func responseAt(outputs []Output, w, cx, cy int) Output {
	return outputs[cy*w+cx+w+1]
}

func TestCore_ConfigValidation(t *testing.T) {
	if _, err := New(Config{Width: 2}); err == nil {
		t.Error("width 2 accepted, want error")
	}
	if _, err := New(Config{Width: 640, ScaleShift: 16}); err == nil {
		t.Error("scale shift 16 accepted, want error")
	}
	if _, err := New(Config{Width: 3}); err != nil {
		t.Errorf("minimal config rejected: %v", err)
	}
}

func TestCore_OutputCountMatchesInput(t *testing.T) {
	c, err := New(Config{Width: 16})
	if err != nil {
		t.Fatal(err)
	}
	outputs := runFrame(t, c, uniformFrame(16, 6, 500), 0)
	if len(outputs) != 16*6 {
		t.Errorf("valid outputs = %d, want %d", len(outputs), 16*6)
	}
}

func TestCore_UniformRegionZero(t *testing.T) {
	const w, h = 16, 6
	const value = 900
	c, err := New(Config{Width: w})
	if err != nil {
		t.Fatal(err)
	}
	outputs := runFrame(t, c, uniformFrame(w, h, value), 0)

	for _, out := range outputs {
		if out.WindowValid {
			if out.Pixel != 0 {
				t.Errorf("interior response on uniform frame = %d, want 0", out.Pixel)
			}
		} else if out.Pixel != value {
			t.Errorf("border passthrough = %d, want %d", out.Pixel, value)
		}
	}
}

func TestCore_BorderClassification(t *testing.T) {
	const w, h = 8, 5
	c, err := New(Config{Width: w})
	if err != nil {
		t.Fatal(err)
	}
	outputs := runFrame(t, c, uniformFrame(w, h, 100), 2)

	for k, out := range outputs {
		ci := k - (w + 1)
		var want bool
		if ci >= 0 {
			cx, cy := ci%w, ci/w
			want = cx >= 1 && cx <= w-2 && cy >= 1
		}
		if out.WindowValid != want {
			t.Errorf("output %d: window valid = %v, want %v", k, out.WindowValid, want)
		}
	}
}

func TestCore_StepEdgeEndToEnd(t *testing.T) {
	// 640×6 vertical step at column 320 with scale shift 4. The step
	// excites the two window centers adjacent to the boundary; far
	// columns must stay quiet on every interior row.
	const w, h, edgeX = 640, 6, 320
	c, err := New(Config{Width: w, ScaleShift: 4})
	if err != nil {
		t.Fatal(err)
	}
	outputs := runFrame(t, c, stepEdgeFrame(w, h, edgeX, 100, 1100), 3)

	for cy := 1; cy <= h-2; cy++ {
		for _, cx := range []int{10, 100, 500} {
			out := responseAt(outputs, w, cx, cy)
			if !out.WindowValid {
				t.Fatalf("center (%d,%d) not window-valid", cx, cy)
			}
			if out.Pixel >= 10 {
				t.Errorf("center (%d,%d): magnitude = %d, want < 10", cx, cy, out.Pixel)
			}
		}
		for _, cx := range []int{edgeX - 1, edgeX} {
			out := responseAt(outputs, w, cx, cy)
			if !out.WindowValid {
				t.Fatalf("center (%d,%d) not window-valid", cx, cy)
			}
			if out.Pixel < 50 {
				t.Errorf("center (%d,%d): magnitude = %d, want >= 50", cx, cy, out.Pixel)
			}
		}
	}
}

func TestCore_BlankingCyclesDoNotShiftPositions(t *testing.T) {
	const w, h = 32, 5
	frame := stepEdgeFrame(w, h, 16, 200, 1800)

	run := func(blank int) []Output {
		c, err := New(Config{Width: w, ScaleShift: 2})
		if err != nil {
			t.Fatal(err)
		}
		return runFrame(t, c, frame, blank)
	}

	if diff := cmp.Diff(run(0), run(7)); diff != "" {
		t.Errorf("blanking cycles shifted outputs (-none +blank=7):\n%s", diff)
	}
}

func TestCore_ResetReplayIdentical(t *testing.T) {
	const w, h = 24, 6
	c, err := New(Config{Width: w, ScaleShift: 1})
	if err != nil {
		t.Fatal(err)
	}
	frame := stepEdgeFrame(w, h, 12, 300, 2300)

	// Interrupt a run partway, reset, then replay the full sequence twice.
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 40; i++ {
		c.Step(Input{Pixel: uint16(rng.Intn(4096)), Valid: rng.Intn(2) == 0})
	}
	c.Reset()
	first := runFrame(t, c, frame, 1)
	c.Reset()
	second := runFrame(t, c, frame, 1)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("replay after reset differs (-first +second):\n%s", diff)
	}
}
