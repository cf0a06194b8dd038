package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/edgescan/internal/raster"
)

// Generate writes the HTML and PNG profile reports for a result into
// outputDir (created if needed) and returns the summary statistics.
func Generate(outputDir string, res *raster.Result, label string) (Summary, error) {
	summary, err := Summarize(res)
	if err != nil {
		return Summary{}, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return Summary{}, fmt.Errorf("failed to create report dir: %w", err)
	}

	subtitle := fmt.Sprintf("%s mean=%.2f stddev=%.2f max=%d", label, summary.Mean, summary.StdDev, summary.Max)
	if err := WriteHTMLProfile(filepath.Join(outputDir, "profile.html"), res, subtitle); err != nil {
		return Summary{}, err
	}
	if err := WritePNGProfile(filepath.Join(outputDir, "profile.png"), res, label); err != nil {
		return Summary{}, err
	}
	return summary, nil
}
