package report

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/edgescan/internal/raster"
)

// Summary holds magnitude statistics over a result's interior positions.
// Border passthrough samples are excluded: they carry input pixels, not
// edge responses.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Max    int
	P50    float64
	P95    float64
}

// Summarize computes interior-magnitude statistics for a result.
func Summarize(res *raster.Result) (Summary, error) {
	vals := res.InteriorValues()
	if len(vals) == 0 {
		return Summary{}, fmt.Errorf("result %dx%d has no interior positions", res.Width, res.Height)
	}
	sort.Float64s(vals)

	s := Summary{
		Count:  len(vals),
		Mean:   stat.Mean(vals, nil),
		StdDev: stat.StdDev(vals, nil),
		Max:    int(vals[len(vals)-1]),
		P50:    stat.Quantile(0.5, stat.Empirical, vals, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, vals, nil),
	}
	return s, nil
}

// ColumnProfile returns the mean interior magnitude per column, the signal
// plotted by the HTML and PNG reports. Index i is the profile for interior
// column i+1.
func ColumnProfile(res *raster.Result) []float64 {
	rows := res.Height - 2
	profile := make([]float64, res.Width-2)
	for x := 1; x <= res.Width-2; x++ {
		var sum float64
		for y := 1; y <= res.Height-2; y++ {
			sum += float64(res.At(x, y).Value)
		}
		profile[x-1] = sum / float64(rows)
	}
	return profile
}
