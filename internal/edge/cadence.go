package edge

// flight is one in-flight pipeline entry: a sample paired with the valid
// and window-valid flags that must surface together on the matching
// output cycle.
type flight struct {
	pixel       uint16
	valid       bool
	windowValid bool
}

// Cadence is the fixed-depth delay line mirroring the pipeline's register
// depth. It advances exactly once per cycle, valid or not, so the output
// valid flag always equals the input valid flag sampled depth cycles
// earlier. After a reset the line holds all-invalid entries, which forces
// the output invalid for the first depth cycles (the pre-fill phase).
type Cadence struct {
	ring []flight
	head int
}

// NewCadence creates a delay line of the given depth.
func NewCadence(depth int) *Cadence {
	return &Cadence{ring: make([]flight, depth)}
}

// Cycle advances the line one step: the entry presented this cycle is
// enqueued and the entry enqueued depth cycles ago is returned.
func (q *Cadence) Cycle(in flight) flight {
	out := q.ring[q.head]
	q.ring[q.head] = in
	q.head = (q.head + 1) % len(q.ring)
	return out
}

// Depth returns the fixed delay in cycles.
func (q *Cadence) Depth() int { return len(q.ring) }

// Reset clears all in-flight entries, returning the line to pre-fill.
func (q *Cadence) Reset() {
	clear(q.ring)
	q.head = 0
}
