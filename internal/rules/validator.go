package rules

import (
	"fmt"
	"log"
	"os"

	"fretlint/internal/chart"
	"fretlint/internal/diag"
	"fretlint/internal/diagfmt"
)

// FaultLogger receives unexpected failures recovered during validation.
// The host application owns the sink; the engine only reports into it.
type FaultLogger interface {
	Fault(track string, err error)
}

type stderrFaultLogger struct {
	l *log.Logger
}

func (f stderrFaultLogger) Fault(track string, err error) {
	f.l.Printf("fault while validating %s: %v", track, err)
}

// Validator is the top-level entry point of the rule engine. It walks every
// supported track of a chart, aggregates diagnostics and isolates
// unexpected failures so one bad track does not abort the whole chart.
type Validator struct {
	opts   Options
	faults FaultLogger
}

// NewValidator constructs a validator. A nil faults logger falls back to
// stderr logging.
func NewValidator(opts Options, faults FaultLogger) *Validator {
	if faults == nil {
		faults = stderrFaultLogger{l: log.New(os.Stderr, "fretlint: ", log.LstdFlags)}
	}
	return &Validator{opts: opts, faults: faults}
}

// ValidateChart returns the ordered, duplicate-free diagnostic lines for a
// whole chart. A nil chart is not an error: it yields an empty list.
func (v *Validator) ValidateChart(ch *chart.Chart) []string {
	return diagfmt.Lines(v.CollectChart(ch))
}

// ValidateTrack returns the deduplicated diagnostic lines for one track.
// A nil track yields an empty list.
func (v *Validator) ValidateTrack(tr *chart.Track, name string) []string {
	return diagfmt.Lines(v.CollectTrack(tr, name))
}

// CollectChart returns the structured diagnostics for a whole chart.
// Callers that only need rendered text should use ValidateChart. The bag
// is unbounded unless Options.MaxDiagnostics caps it; a biting cap is
// announced with a trailing warning instead of being silent.
func (v *Validator) CollectChart(ch *chart.Chart) *diag.Bag {
	bag := diag.NewBag(0)
	if ch == nil {
		return bag
	}
	limit := diag.NewLimitReporter(diag.BagReporter{Bag: bag}, v.opts.MaxDiagnostics)
	// Currently the five-fret guitar track is the only supported one;
	// further instruments hook in here.
	v.collectTrack(bag, limit, ch.Guitar, chart.GuitarTrackName)
	v.noteTruncation(bag, limit, chart.GuitarTrackName)
	return bag
}

// CollectTrack returns the structured diagnostics for one track.
func (v *Validator) CollectTrack(tr *chart.Track, name string) *diag.Bag {
	bag := diag.NewBag(0)
	limit := diag.NewLimitReporter(diag.BagReporter{Bag: bag}, v.opts.MaxDiagnostics)
	v.collectTrack(bag, limit, tr, name)
	v.noteTruncation(bag, limit, name)
	return bag
}

// collectTrack walks one track, reporting violations through r. Any panic
// raised while reading note data is converted into a single InternalFault
// diagnostic plus a FaultLogger record; diagnostics already collected stay
// in the bag. Expected absence (nil track, missing difficulty) stays
// silent. The fault diagnostic goes straight to the bag: a truncated
// result must still tell the caller the walk broke.
func (v *Validator) collectTrack(bag *diag.Bag, r diag.Reporter, tr *chart.Track, name string) {
	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("panic: %v", rec)
			v.faults.Fault(name, err)
			bag.Add(diag.NewError(diag.InternalFault, name, chart.Easy, 0, fmt.Sprintf(
				"Internal fault while validating %s: %v. Validation of this track is incomplete.", name, rec)))
		}
	}()
	if tr == nil {
		return
	}
	// Дубликаты гасим до лимита, чтобы они не съедали бюджет.
	walkTrack(tr, name, v.opts, diag.NewDedupReporter(r))
}

// noteTruncation appends a warning when the caller-set cap suppressed
// diagnostics, so truncation is always visible in the result.
func (v *Validator) noteTruncation(bag *diag.Bag, limit *diag.LimitReporter, name string) {
	if n := limit.Dropped(); n > 0 {
		bag.Add(diag.New(diag.SevWarning, diag.DiagnosticLimit, name, chart.Easy, 0, fmt.Sprintf(
			"Diagnostic limit of %d reached: %d more diagnostics were suppressed.", v.opts.MaxDiagnostics, n)))
	}
}
