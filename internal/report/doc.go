// Package report produces post-run summaries of edge-detection results:
// interior-magnitude statistics, an HTML column-profile chart, and a PNG
// profile plot.
package report
