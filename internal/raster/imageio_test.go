package raster

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSaveLoad_TIFFRoundTrip(t *testing.T) {
	frame := VerticalStep(32, 8, 16, 120, 3900)
	path := filepath.Join(t.TempDir(), "step.tiff")

	if err := Save(path, frame); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff(frame, loaded); diff != "" {
		t.Errorf("round trip altered frame (-saved +loaded):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.tiff")); err == nil {
		t.Error("missing file accepted, want error")
	}
}

func TestSaveResult_WritesFile(t *testing.T) {
	core := newCore(t, 16, 2)
	res, err := Process(core, Ramp(16, 6), 0)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "result.tiff")
	if err := SaveResult(path, res); err != nil {
		t.Fatalf("save result: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("result image unreadable: %v", err)
	}
}
