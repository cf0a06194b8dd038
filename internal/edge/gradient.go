package edge

// MaxSample is the largest representable output sample (12-bit grayscale).
const MaxSample = 4095

// Sobel kernels. gx weights left-vs-right columns; gy is the transpose,
// weighting top-vs-bottom rows.
var (
	sobelX = [3][3]int32{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]int32{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// Result is the engine's per-sample output. Computed distinguishes the
// magnitude path (complete window) from border passthrough.
type Result struct {
	Value    uint16
	Computed bool
}

// GradientEngine computes the Sobel gradient magnitude for complete windows
// and forwards the passthrough sample for incomplete ones. The magnitude is
// the |Gx|+|Gy| approximation, right-shifted by the configured scale shift
// and saturated to MaxSample, never wrapped.
type GradientEngine struct {
	shift uint
}

// NewGradientEngine creates an engine with the given scale shift (0–15).
func NewGradientEngine(shift uint) *GradientEngine {
	return &GradientEngine{shift: shift}
}

// Apply evaluates one window. Exactly two cases: a complete window takes
// the magnitude path; an incomplete window forwards its Center unchanged.
func (e *GradientEngine) Apply(w Window) Result {
	if !w.Complete {
		return Result{Value: w.Center}
	}

	var gx, gy int32
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			s := int32(w.P[r][c])
			gx += s * sobelX[r][c]
			gy += s * sobelY[r][c]
		}
	}

	mag := abs32(gx) + abs32(gy)
	scaled := mag >> e.shift
	if scaled > MaxSample {
		scaled = MaxSample
	}
	return Result{Value: uint16(scaled), Computed: true}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
