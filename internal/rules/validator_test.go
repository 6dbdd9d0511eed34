package rules

import (
	"strings"
	"testing"

	"fretlint/internal/chart"
	"fretlint/internal/diag"
)

type recordingFaultLogger struct {
	tracks []string
}

func (r *recordingFaultLogger) Fault(track string, err error) {
	r.tracks = append(r.tracks, track)
}

func TestValidateChartNil(t *testing.T) {
	lines := NewValidator(Options{}, nil).ValidateChart(nil)
	if len(lines) != 0 {
		t.Fatalf("nil chart must yield no diagnostics, got %v", lines)
	}
}

func TestValidateChartWithoutGuitar(t *testing.T) {
	lines := NewValidator(Options{}, nil).ValidateChart(&chart.Chart{Name: "trackless"})
	if len(lines) != 0 {
		t.Fatalf("chart without guitar track must yield no diagnostics, got %v", lines)
	}
}

func TestValidateTrackNil(t *testing.T) {
	lines := NewValidator(Options{}, nil).ValidateTrack(nil, chart.GuitarTrackName)
	if len(lines) != 0 {
		t.Fatalf("nil track must yield no diagnostics, got %v", lines)
	}
}

func TestAbsentDifficultiesAreSilent(t *testing.T) {
	// Only Expert carries data; the other three levels contribute zero
	// diagnostics and cause no failure.
	tr := trackWith(chart.Expert, chordAt(1, 1, 2))
	bag := collect(t, tr, Options{})
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	if bag.Items()[0].Difficulty != chart.Expert {
		t.Fatalf("diagnostic anchored to wrong difficulty: %s", bag.Items()[0].Difficulty)
	}
}

func TestDuplicateViolationsCollapse(t *testing.T) {
	// Two open notes in one chord produce the identical per-note message;
	// the result list must not repeat it.
	tr := trackWith(chart.Expert, chordAt(1, chart.OpenLane, chart.OpenLane))
	lines := NewValidator(Options{}, nil).ValidateTrack(tr, chart.GuitarTrackName)
	if len(lines) != 1 {
		t.Fatalf("expected 1 deduplicated line, got %v", lines)
	}
}

func TestWalkCoversAllDifficulties(t *testing.T) {
	tr := chart.NewTrack()
	tr.SetNotes(chart.Easy, []*chart.Note{chordAt(1, chart.OpenLane)})
	tr.SetNotes(chart.Hard, []*chart.Note{chordAt(2, chart.OpenLane)})
	bag := collect(t, tr, Options{})
	if bag.Len() != 2 {
		t.Fatalf("expected a diagnostic per difficulty with data, got %d", bag.Len())
	}
}

func TestFaultIsolation(t *testing.T) {
	// A nil sibling is malformed external data: reading it panics inside
	// the walk. The facade converts that into one InternalFault
	// diagnostic and keeps everything collected before the fault.
	bad := &chart.Note{Time: 2, Lane: 1}
	bad.Siblings = []*chart.Note{nil}
	tr := chart.NewTrack()
	tr.SetNotes(chart.Easy, []*chart.Note{
		{Time: 1, Lane: 3, Strum: true},
		bad,
	})

	faults := &recordingFaultLogger{}
	v := NewValidator(Options{}, faults)
	lines := v.ValidateChart(&chart.Chart{Name: "broken", Guitar: tr})

	if len(lines) != 2 {
		t.Fatalf("expected strum diagnostic plus fault line, got %v", lines)
	}
	if !strings.Contains(lines[0], "Strum note detected") {
		t.Fatalf("pre-fault diagnostic lost: %v", lines)
	}
	if !strings.Contains(lines[1], "Internal fault while validating FiveFretGuitar") {
		t.Fatalf("missing fault line: %v", lines)
	}
	if len(faults.tracks) != 1 || faults.tracks[0] != chart.GuitarTrackName {
		t.Fatalf("fault logger not notified: %v", faults.tracks)
	}
}

func TestModeIsReadOncePerCall(t *testing.T) {
	// The same validator value serves both modes deterministically; the
	// option decides rule selection, not shared state.
	tr := trackWith(chart.Expert, &chart.Note{Time: 1, Lane: 2, Strum: true})
	std := NewValidator(Options{}, nil).CollectTrack(tr, chart.GuitarTrackName)
	pro := NewValidator(Options{ProMode: true}, nil).CollectTrack(tr, chart.GuitarTrackName)
	if !hasCode(std, diag.StdStrumNote) {
		t.Fatal("standard mode must flag strums")
	}
	if pro.Len() != 0 {
		t.Fatalf("pro mode must allow strums, got %v", codes(pro))
	}
}

func TestEveryViolationReportedByDefault(t *testing.T) {
	// No implicit cap: a chart with hundreds of violations gets one line
	// per violation.
	notes := make([]*chart.Note, 150)
	for i := range notes {
		notes[i] = chordAt(float64(i), chart.OpenLane)
	}
	tr := chart.NewTrack()
	tr.SetNotes(chart.Expert, notes)

	lines := NewValidator(Options{}, nil).ValidateTrack(tr, chart.GuitarTrackName)
	if len(lines) != 150 {
		t.Fatalf("expected 150 diagnostic lines, got %d", len(lines))
	}
}

func TestMaxDiagnosticsCapIsAnnounced(t *testing.T) {
	notes := make([]*chart.Note, 10)
	for i := range notes {
		notes[i] = chordAt(float64(i), chart.OpenLane)
	}
	tr := chart.NewTrack()
	tr.SetNotes(chart.Expert, notes)

	bag := collect(t, tr, Options{MaxDiagnostics: 3})
	if bag.Len() != 4 {
		t.Fatalf("expected 3 violations plus a truncation notice, got %d", bag.Len())
	}
	last := bag.Items()[3]
	if last.Code != diag.DiagnosticLimit || last.Severity != diag.SevWarning {
		t.Fatalf("missing truncation notice: %+v", last)
	}
	want := "Diagnostic limit of 3 reached: 7 more diagnostics were suppressed."
	if last.Message != want {
		t.Fatalf("unexpected notice message: %q", last.Message)
	}
}
