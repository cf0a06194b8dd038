package edge

// rowCount is the number of row buffers retained: the row currently being
// filled plus the two completed rows above it.
const rowCount = 3

// LineBuffer stores the two most-recently-completed rows of a raster stream
// plus the row currently being filled, so the window former can combine the
// current row with the two rows above it. Rows are fixed-length and selected
// by a rotating index; nothing is allocated after construction.
type LineBuffer struct {
	width     int
	rows      [rowCount][]uint16
	cur       int // index into rows of the row being filled
	col       int // fill position within the current row (next index written)
	completed int // rows completed since reset
}

// NewLineBuffer creates a LineBuffer for rows of the given width.
// Width must already be validated by the caller (see Config.Validate).
func NewLineBuffer(width int) *LineBuffer {
	b := &LineBuffer{width: width}
	for i := range b.rows {
		b.rows[i] = make([]uint16, width)
	}
	return b
}

// Place writes a sample at the current fill position and advances it.
// It returns true when the row is now full; the caller must then call
// Rotate before placing the next sample.
func (b *LineBuffer) Place(pixel uint16) bool {
	b.rows[b.cur][b.col] = pixel
	b.col++
	return b.col == b.width
}

// Rotate completes the current row: the row two-above-current is recycled as
// the new fill row, the previous rows shift up by one, and the fill position
// returns to column zero.
func (b *LineBuffer) Rotate() {
	b.cur = (b.cur + 1) % rowCount
	b.col = 0
	b.completed++
}

// SampleAt returns the sample at the given relative position, or false when
// the position is outside the image bounds or outside the buffered history.
// rowOffset 0 addresses the row being filled, 1 the row above it, 2 the row
// two above. colOffset is relative to the current fill position.
func (b *LineBuffer) SampleAt(rowOffset, colOffset int) (uint16, bool) {
	if rowOffset < 0 || rowOffset >= rowCount {
		return 0, false
	}
	if rowOffset > b.completed {
		return 0, false
	}
	col := b.col + colOffset
	if col < 0 || col >= b.width {
		return 0, false
	}
	if rowOffset == 0 && col >= b.col {
		// Current row only holds samples before the fill position.
		return 0, false
	}
	idx := (b.cur - rowOffset + rowCount) % rowCount
	return b.rows[idx][col], true
}

// Col returns the current fill position within the row being filled.
func (b *LineBuffer) Col() int { return b.col }

// CompletedRows returns the number of rows completed since reset.
func (b *LineBuffer) CompletedRows() int { return b.completed }

// Reset clears all buffered rows and counters. Row storage is retained;
// buffers are never resized during a run.
func (b *LineBuffer) Reset() {
	for i := range b.rows {
		clear(b.rows[i])
	}
	b.cur = 0
	b.col = 0
	b.completed = 0
}
