package diag

import (
	"testing"

	"fretlint/internal/chart"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	d := NewError(StdOpenNote, chart.GuitarTrackName, chart.Easy, 1, "open")
	if !bag.Add(d) || !bag.Add(d) {
		t.Fatal("expected first two adds to succeed")
	}
	if bag.Add(d) {
		t.Fatal("expected add beyond cap to fail")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(4)
	bag.Add(New(SevWarning, DiagnosticLimit, chart.GuitarTrackName, chart.Easy, 0, "notice"))
	if bag.HasErrors() {
		t.Fatal("warning-only bag must not report errors")
	}
	bag.Add(NewError(StdBigChord, chart.GuitarTrackName, chart.Easy, 0, "chord"))
	if !bag.HasErrors() {
		t.Fatal("expected HasErrors after adding an error")
	}
}

func TestBagUnboundedByDefault(t *testing.T) {
	bag := NewBag(0)
	d := NewError(StdOpenNote, chart.GuitarTrackName, chart.Easy, 0, "open")
	for i := 0; i < 500; i++ {
		d.Time = float64(i)
		if !bag.Add(d) {
			t.Fatalf("add %d rejected on an unbounded bag", i)
		}
	}
	if bag.Len() != 500 {
		t.Fatalf("expected 500 items, got %d", bag.Len())
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(StdOpenNote, chart.GuitarTrackName, chart.Medium, 2.0, "later"))
	bag.Add(NewError(StdOpenNote, chart.GuitarTrackName, chart.Easy, 1.0, "earlier"))
	bag.Add(NewError(StdStrumNote, chart.GuitarTrackName, chart.Easy, 1.0, "same onset, lower code"))
	bag.Sort()

	items := bag.Items()
	if items[0].Message != "earlier" && items[0].Message != "same onset, lower code" {
		t.Fatalf("expected onset 1.0 first, got %q", items[0].Message)
	}
	if items[0].Time != 1.0 || items[1].Time != 1.0 || items[2].Time != 2.0 {
		t.Fatalf("onsets out of order: %v %v %v", items[0].Time, items[1].Time, items[2].Time)
	}
	// на одном onset — меньший код первым
	if items[0].Code > items[1].Code {
		t.Fatalf("codes out of order at same onset: %v then %v", items[0].Code, items[1].Code)
	}
}

func TestBagDedupKeepsFirstOccurrence(t *testing.T) {
	bag := NewBag(8)
	d := NewError(StdOpenNote, chart.GuitarTrackName, chart.Easy, 1.0, "open")
	bag.Add(d)
	bag.Add(NewError(StdBigChord, chart.GuitarTrackName, chart.Easy, 1.0, "chord"))
	bag.Add(d)
	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", bag.Len())
	}
	if bag.Items()[0].Message != "open" || bag.Items()[1].Message != "chord" {
		t.Fatal("dedup must preserve first-occurrence order")
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	b := NewBag(2)
	a.Add(NewError(StdOpenNote, chart.GuitarTrackName, chart.Easy, 0, "a"))
	b.Add(NewError(StdOpenNote, chart.GuitarTrackName, chart.Easy, 1, "b"))
	b.Add(NewError(StdOpenNote, chart.GuitarTrackName, chart.Easy, 2, "c"))
	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("expected 3 items after merge, got %d", a.Len())
	}
}

func TestCodeIDs(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{StdStrumNote, "STD1001"},
		{StdOrangeLane, "STD1006"},
		{ProLaneTriple, "PRO2004"},
		{IOLoadChartError, "IO4001"},
		{InternalFault, "INT5001"},
		{DiagnosticLimit, "INT5002"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tc.code, got, tc.want)
		}
	}
}
