package observ

import (
	"time"
)

// Phase names recorded by the chart-check driver.
const (
	PhaseLoadChart = "load_chart"
	PhaseValidate  = "validate"
	PhaseRender    = "render"
)

// phase holds one timed stage of a chart check.
type phase struct {
	name  string
	start time.Time
	dur   time.Duration
	note  string
}

// Timer measures the stages of one chart check (load, validate, render).
// It is not safe for concurrent use; each Check call owns its own Timer.
type Timer struct {
	phases []phase
}

func NewTimer() *Timer {
	return &Timer{phases: make([]phase, 0, 4)}
}

// Begin opens a named phase and returns its index for End.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, phase{name: name, start: time.Now()})
	return len(t.phases) - 1
}

// End closes the phase at idx and attaches an optional note, e.g. a cache
// hit marker or a diagnostic count. Out-of-range indexes are ignored so
// callers can pass the -1 of a disabled timer.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.dur = time.Since(p.start)
	p.note = note
}

// PhaseReport is the serialisable form of one timed phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates the timed phases of one check.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report snapshots every recorded phase plus the total, in milliseconds.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	out := Report{Phases: make([]PhaseReport, 0, len(t.phases))}
	var total time.Duration
	for _, p := range t.phases {
		total += p.dur
		out.Phases = append(out.Phases, PhaseReport{
			Name:       p.name,
			DurationMS: millis(p.dur),
			Note:       p.note,
		})
	}
	out.TotalMS = millis(total)
	return out
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
