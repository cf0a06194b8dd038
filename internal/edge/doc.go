// Package edge implements the streaming Sobel edge-detection core.
//
// Responsibilities: line history buffering, 3×3 window formation over a
// raster-scan stream, gradient/magnitude arithmetic, and fixed-latency
// valid-cadence propagation. The core consumes one sample per cycle
// (gated by a valid flag) and emits exactly one output per cycle, with
// the input valid flag mirrored N cycles later.
//
// Dependency rule: edge is a leaf package. It owns no I/O, persistence
// or reporting; those live in internal/raster, internal/edgedb and
// internal/report, which import edge but never the reverse.
package edge
