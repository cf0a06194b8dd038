package edge

import (
	"testing"
)

func TestLineBuffer_PlaceAndRotate(t *testing.T) {
	b := NewLineBuffer(4)

	for i := 0; i < 3; i++ {
		if full := b.Place(uint16(i)); full {
			t.Fatalf("row reported full after %d of 4 samples", i+1)
		}
	}
	if full := b.Place(3); !full {
		t.Fatal("row not reported full after 4 of 4 samples")
	}
	b.Rotate()

	if got := b.Col(); got != 0 {
		t.Errorf("fill position after rotate = %d, want 0", got)
	}
	if got := b.CompletedRows(); got != 1 {
		t.Errorf("completed rows = %d, want 1", got)
	}
}

func TestLineBuffer_SampleAtHistory(t *testing.T) {
	b := NewLineBuffer(3)

	// Fill two complete rows and one sample of the third.
	for _, px := range []uint16{10, 11, 12} {
		if b.Place(px) {
			b.Rotate()
		}
	}
	for _, px := range []uint16{20, 21, 22} {
		if b.Place(px) {
			b.Rotate()
		}
	}
	b.Place(30) // fill position now 1

	cases := []struct {
		name      string
		rowOffset int
		colOffset int
		want      uint16
		available bool
	}{
		{"current row behind fill", 0, -1, 30, true},
		{"current row at fill", 0, 0, 0, false},
		{"row above start", 1, -1, 20, true},
		{"row above end", 1, 1, 22, true},
		{"two above start", 2, -1, 10, true},
		{"left of image", 1, -2, 0, false},
		{"right of image", 1, 2, 0, false},
		{"row offset out of range", 3, 0, 0, false},
	}
	for _, tc := range cases {
		got, ok := b.SampleAt(tc.rowOffset, tc.colOffset)
		if ok != tc.available {
			t.Errorf("%s: available = %v, want %v", tc.name, ok, tc.available)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("%s: sample = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestLineBuffer_NoHistoryBeforeFirstRows(t *testing.T) {
	b := NewLineBuffer(3)
	b.Place(5)

	if _, ok := b.SampleAt(1, -1); ok {
		t.Error("row above reported available with no completed rows")
	}
	if _, ok := b.SampleAt(2, -1); ok {
		t.Error("row two above reported available with no completed rows")
	}
}

func TestLineBuffer_Reset(t *testing.T) {
	b := NewLineBuffer(3)
	for _, px := range []uint16{1, 2, 3, 4} {
		if b.Place(px) {
			b.Rotate()
		}
	}

	b.Reset()

	if b.Col() != 0 || b.CompletedRows() != 0 {
		t.Errorf("after reset col=%d completed=%d, want 0,0", b.Col(), b.CompletedRows())
	}
	b.Place(9)
	if _, ok := b.SampleAt(1, -1); ok {
		t.Error("stale row history survived reset")
	}
}
