package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/edgescan/internal/raster"
)

// WritePNGProfile renders the column magnitude profile as a PNG line plot.
func WritePNGProfile(path string, res *raster.Result, title string) error {
	profile := ColumnProfile(res)

	pts := make(plotter.XYs, len(profile))
	for i, v := range profile {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Mean magnitude"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build profile line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save profile plot: %w", err)
	}
	return nil
}
