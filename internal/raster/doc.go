// Package raster owns frame-level concerns around the streaming core:
// synthetic stimulus generation, driving a frame through an edge.Core in
// raster-scan order (with optional blanking cycles between rows), result
// reassembly, and grayscale image file I/O.
//
// Dependency rule: raster imports internal/edge; edge never imports raster.
package raster
