package raster

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // registered for Load
	"os"

	"golang.org/x/image/tiff"
)

// Load reads a grayscale image (TIFF or PNG) into a frame. Samples are
// converted to 12-bit depth: 16-bit sources are truncated, 8-bit sources
// are scaled up through the 16-bit color model.
func Load(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	b := img.Bounds()
	frame := NewFrame(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			frame.Set(x-b.Min.X, y-b.Min.Y, g.Y>>4)
		}
	}
	if err := frame.Validate(); err != nil {
		return nil, fmt.Errorf("image %s unusable as frame: %w", path, err)
	}
	return frame, nil
}

// Save writes a frame as a 16-bit grayscale TIFF, with the 12-bit samples
// shifted into the high bits.
func Save(path string, frame *Frame) error {
	img := image.NewGray16(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			img.SetGray16(x, y, color.Gray16{Y: frame.At(x, y) << 4})
		}
	}
	return writeTIFF(path, img)
}

// SaveResult writes a result's response values as a 16-bit grayscale TIFF.
func SaveResult(path string, res *Result) error {
	img := image.NewGray16(image.Rect(0, 0, res.Width, res.Height))
	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			img.SetGray16(x, y, color.Gray16{Y: res.At(x, y).Value << 4})
		}
	}
	return writeTIFF(path, img)
}

func writeTIFF(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if err := tiff.Encode(f, img, nil); err != nil {
		return fmt.Errorf("failed to encode TIFF %s: %w", path, err)
	}
	return nil
}
