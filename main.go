package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/banshee-data/edgescan/internal/config"
	"github.com/banshee-data/edgescan/internal/edge"
	"github.com/banshee-data/edgescan/internal/edgedb"
	"github.com/banshee-data/edgescan/internal/raster"
	"github.com/banshee-data/edgescan/internal/report"
	"github.com/banshee-data/edgescan/internal/version"
)

var (
	configPath = flag.String("config", "", "JSON run configuration; explicit flags override it")
	inPath     = flag.String("in", "", "Input grayscale image (TIFF or PNG); overrides -synthetic")
	synthetic  = flag.String("synthetic", "vstep", "Synthetic stimulus: uniform, vstep, hstep or ramp")
	width      = flag.Int("width", 640, "Frame width for synthetic stimulus")
	height     = flag.Int("height", 480, "Frame height for synthetic stimulus")
	edgeAt     = flag.Int("edge-at", 320, "Step position (column for vstep, row for hstep)")
	low        = flag.Uint("low", 100, "Low sample value for synthetic stimulus")
	high       = flag.Uint("high", 1100, "High sample value for synthetic stimulus")
	shift      = flag.Uint("shift", 4, "Magnitude scale shift (0-15)")
	blank      = flag.Int("blank", 0, "Blanking cycles inserted between rows")
	outPath    = flag.String("out", "", "Output TIFF path for the edge response frame")
	dbPath     = flag.String("db", "", "Runs database path; empty disables run recording")
	reportDir  = flag.String("report-dir", "", "Directory for HTML/PNG reports; empty disables reports")
	listRuns   = flag.Bool("list", false, "List recorded runs from -db and exit")
)

// buildFrame resolves the input frame and a human-readable source label
// from the flag settings.
func buildFrame(inPath, synthetic string, width, height, edgeAt int, low, high uint16) (*raster.Frame, string, error) {
	if inPath != "" {
		frame, err := raster.Load(inPath)
		if err != nil {
			return nil, "", err
		}
		return frame, inPath, nil
	}

	label := "synthetic:" + synthetic
	switch strings.ToLower(synthetic) {
	case "uniform":
		return raster.Uniform(width, height, low), label, nil
	case "vstep":
		return raster.VerticalStep(width, height, edgeAt, low, high), label, nil
	case "hstep":
		return raster.HorizontalStep(width, height, edgeAt, low, high), label, nil
	case "ramp":
		return raster.Ramp(width, height), label, nil
	default:
		return nil, "", fmt.Errorf("unknown synthetic stimulus %q", synthetic)
	}
}

func listRecordedRuns(path string) error {
	db, err := edgedb.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := edgedb.NewRunStore(db).List(50)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Printf("%s %s %dx%d shift=%d mean=%.2f max=%d\n",
			r.RunID, r.Source, r.Width, r.Height, r.ScaleShift, r.MeanMagnitude, r.MaxMagnitude)
	}
	return nil
}

// applyConfig overlays values from a JSON run config onto every flag the
// user did not set explicitly on the command line.
func applyConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["width"] {
		*width = cfg.GetWidth()
	}
	if !set["height"] {
		*height = cfg.GetHeight()
	}
	if !set["shift"] {
		*shift = uint(cfg.GetScaleShift())
	}
	if !set["blank"] {
		*blank = cfg.GetBlankingCycles()
	}
	if !set["synthetic"] {
		*synthetic = cfg.GetStimulus()
	}
	if !set["edge-at"] {
		*edgeAt = cfg.GetEdgeAt()
	}
	if !set["low"] {
		*low = uint(cfg.GetLow())
	}
	if !set["high"] {
		*high = uint(cfg.GetHigh())
	}
	return nil
}

func main() {
	flag.Parse()
	log.Printf("edgescan %s", version.String())

	if *configPath != "" {
		if err := applyConfig(*configPath); err != nil {
			log.Fatalf("failed to apply config: %v", err)
		}
	}

	if *listRuns {
		if *dbPath == "" {
			log.Fatal("-list requires -db")
		}
		if err := listRecordedRuns(*dbPath); err != nil {
			log.Fatalf("failed to list runs: %v", err)
		}
		return
	}

	frame, source, err := buildFrame(*inPath, *synthetic, *width, *height, *edgeAt, uint16(*low), uint16(*high))
	if err != nil {
		log.Fatalf("failed to build input frame: %v", err)
	}

	core, err := edge.New(edge.Config{Width: frame.Width, ScaleShift: *shift})
	if err != nil {
		log.Fatalf("failed to create core: %v", err)
	}

	res, err := raster.Process(core, frame, *blank)
	if err != nil {
		log.Fatalf("processing failed: %v", err)
	}
	log.Printf("processed %s: %dx%d shift=%d blank=%d depth=%d",
		source, frame.Width, frame.Height, *shift, *blank, core.Depth())

	if *outPath != "" {
		if err := raster.SaveResult(*outPath, res); err != nil {
			log.Fatalf("failed to write output image: %v", err)
		}
		log.Printf("wrote edge response to %s", *outPath)
	}

	summary, err := report.Summarize(res)
	if err != nil {
		log.Fatalf("failed to summarise result: %v", err)
	}
	log.Printf("interior magnitudes: n=%d mean=%.2f stddev=%.2f max=%d p95=%.1f",
		summary.Count, summary.Mean, summary.StdDev, summary.Max, summary.P95)

	if *reportDir != "" {
		if _, err := report.Generate(*reportDir, res, source); err != nil {
			log.Fatalf("failed to generate reports: %v", err)
		}
		log.Printf("wrote reports to %s", *reportDir)
	}

	if *dbPath != "" {
		db, err := edgedb.Open(*dbPath)
		if err != nil {
			log.Fatalf("failed to open runs database: %v", err)
		}
		defer db.Close()

		run := &edgedb.Run{
			Source:          source,
			Width:           frame.Width,
			Height:          frame.Height,
			ScaleShift:      int(*shift),
			BlankingCycles:  *blank,
			MeanMagnitude:   summary.Mean,
			StdDevMagnitude: summary.StdDev,
			MaxMagnitude:    summary.Max,
		}
		if err := edgedb.NewRunStore(db).Insert(run); err != nil {
			log.Fatalf("failed to record run: %v", err)
		}
		log.Printf("recorded run %s", run.RunID)
	}
}
