package edge

// Window is a 3×3 neighborhood of samples addressed as P[row][col] with
// row 0 on top (two rows above the newest sample) and col 0 on the left.
// Complete is true only when all nine samples are real buffered pixels;
// an incomplete window carries only the passthrough Center value.
type Window struct {
	P        [3][3]uint16
	Center   uint16
	Complete bool
}

// WindowFormer advances the raster position for each accepted sample,
// maintains the line history, and produces one Window per sample.
//
// A 3×3 neighborhood is only causally complete for the center one column
// and one row behind the newest arrival: the arriving sample is the
// window's bottom-right corner. The former therefore emits, for the
// sample arriving at raster position (x, y), the window centered on the
// sample one raster step of (1, 1) earlier. Complete is true iff that
// center is an interior pixel: center column in [1, width−2] and at
// least two full rows of history above the current row.
type WindowFormer struct {
	width int
	buf   *LineBuffer
	x     int // arrival column of the newest sample
	y     int // arrival row of the newest sample
}

// NewWindowFormer creates a WindowFormer for rows of the given width.
func NewWindowFormer(width int) *WindowFormer {
	return &WindowFormer{
		width: width,
		buf:   NewLineBuffer(width),
	}
}

// Advance accepts one sample, pushes it into the line history and returns
// the 3×3 window for the newest causally complete center. Exactly one
// window (complete or not) is produced per accepted sample, in input order.
// The returned boundary flag reports that the sample completed a row.
func (f *WindowFormer) Advance(pixel uint16) (w Window, boundary bool) {
	ax := f.buf.Col() // column this sample lands in
	ay := f.buf.CompletedRows()

	full := f.buf.Place(pixel)
	f.x, f.y = ax, ay

	// The window spans rows ay−2..ay at columns ax−2..ax. Column offsets
	// are taken against the post-place fill position ax+1.
	if ax >= 2 && ay >= 2 {
		w.Complete = true
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				s, ok := f.buf.SampleAt(2-r, c-3)
				if !ok {
					// Unreachable once ax,ay clear the border checks.
					w.Complete = false
				}
				w.P[r][c] = s
			}
		}
		w.Center = w.P[1][1]
	} else {
		w.Center = f.centerFallback(ax, pixel)
	}

	if full {
		f.buf.Rotate()
		boundary = true
		debugf("row %d complete", ay)
	}
	return w, boundary
}

// centerFallback resolves the passthrough sample for an incomplete window:
// the buffered center pixel when one exists, otherwise the most recently
// accepted sample (stream head, before any center has entered history).
func (f *WindowFormer) centerFallback(ax int, pixel uint16) uint16 {
	var s uint16
	var ok bool
	if ax >= 1 {
		s, ok = f.buf.SampleAt(1, -2)
	} else {
		// Row wrap: the center is the last pixel of the row two above.
		s, ok = f.buf.SampleAt(2, f.width-2)
	}
	if !ok {
		return pixel
	}
	return s
}

// Position returns the raster position (column, row) of the most recently
// accepted sample.
func (f *WindowFormer) Position() (x, y int) { return f.x, f.y }

// Reset clears the line history and raster counters.
func (f *WindowFormer) Reset() {
	f.buf.Reset()
	f.x, f.y = 0, 0
}
