// Command edgegen writes synthetic stimulus frames as 16-bit grayscale
// TIFF files for exercising the edge-detection core and tools.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/banshee-data/edgescan/internal/raster"
)

func main() {
	kind := flag.String("kind", "vstep", "Stimulus kind: uniform, vstep, hstep or ramp")
	width := flag.Int("width", 640, "Frame width")
	height := flag.Int("height", 480, "Frame height")
	edgeAt := flag.Int("edge-at", 320, "Step position (column for vstep, row for hstep)")
	low := flag.Uint("low", 100, "Low sample value")
	high := flag.Uint("high", 1100, "High sample value")
	out := flag.String("out", "stimulus.tiff", "Output TIFF path")
	flag.Parse()

	var frame *raster.Frame
	switch strings.ToLower(*kind) {
	case "uniform":
		frame = raster.Uniform(*width, *height, uint16(*low))
	case "vstep":
		frame = raster.VerticalStep(*width, *height, *edgeAt, uint16(*low), uint16(*high))
	case "hstep":
		frame = raster.HorizontalStep(*width, *height, *edgeAt, uint16(*low), uint16(*high))
	case "ramp":
		frame = raster.Ramp(*width, *height)
	default:
		log.Fatalf("unknown stimulus kind %q", *kind)
	}

	if err := frame.Validate(); err != nil {
		log.Fatalf("generated frame invalid: %v", err)
	}
	if err := raster.Save(*out, frame); err != nil {
		log.Fatalf("failed to write stimulus: %v", err)
	}
	log.Printf("wrote %s stimulus %dx%d to %s", *kind, *width, *height, *out)
}
