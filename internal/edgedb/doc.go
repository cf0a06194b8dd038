// Package edgedb contains the SQLite repository for edge-detection runs.
//
// Each processing run (one frame through the core) is recorded with its
// configuration, geometry and interior-magnitude statistics so runs can be
// compared across stimulus and scale-shift settings.
package edgedb
