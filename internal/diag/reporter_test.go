package diag

import (
	"testing"

	"fretlint/internal/chart"
)

func TestLimitReporterCountsOverflow(t *testing.T) {
	bag := NewBag(0)
	r := NewLimitReporter(BagReporter{Bag: bag}, 2)

	d := NewError(StdOpenNote, chart.GuitarTrackName, chart.Easy, 0, "open")
	for i := 0; i < 5; i++ {
		d.Time = float64(i)
		r.Report(d)
	}

	if bag.Len() != 2 {
		t.Fatalf("expected 2 forwarded diagnostics, got %d", bag.Len())
	}
	if r.Dropped() != 3 {
		t.Fatalf("expected 3 suppressed diagnostics, got %d", r.Dropped())
	}
}

func TestLimitReporterNoLimit(t *testing.T) {
	bag := NewBag(0)
	r := NewLimitReporter(BagReporter{Bag: bag}, 0)

	d := NewError(StdOpenNote, chart.GuitarTrackName, chart.Easy, 0, "open")
	for i := 0; i < 300; i++ {
		d.Time = float64(i)
		r.Report(d)
	}

	if bag.Len() != 300 || r.Dropped() != 0 {
		t.Fatalf("limitless reporter must forward everything: %d forwarded, %d dropped",
			bag.Len(), r.Dropped())
	}
}
