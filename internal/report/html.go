package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/edgescan/internal/raster"
)

// WriteHTMLProfile renders the column magnitude profile as an HTML line
// chart. subtitle identifies the run (source and configuration).
func WriteHTMLProfile(path string, res *raster.Result, subtitle string) error {
	profile := ColumnProfile(res)

	xAxis := make([]string, len(profile))
	data := make([]opts.LineData, len(profile))
	for i, v := range profile {
		xAxis[i] = fmt.Sprintf("%d", i+1)
		data[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Edge Magnitude Profile", Width: "1200px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Mean edge magnitude per column", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Column"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Magnitude"}),
	)
	line.SetXAxis(xAxis)
	line.AddSeries("magnitude", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML report: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
