package diag

import (
	"fretlint/internal/chart"
)

// Diagnostic is one immutable rule-violation (or fault) record. Where the
// teacher of this layout anchors diagnostics to byte spans in source files,
// a chart validator anchors them to a track, a difficulty and an onset time.
type Diagnostic struct {
	Severity   Severity
	Code       Code
	Track      string
	Difficulty chart.Difficulty
	Time       float64
	Message    string
}

func New(sev Severity, code Code, track string, diff chart.Difficulty, time float64, msg string) Diagnostic {
	return Diagnostic{
		Severity:   sev,
		Code:       code,
		Track:      track,
		Difficulty: diff,
		Time:       time,
		Message:    msg,
	}
}

func NewError(code Code, track string, diff chart.Difficulty, time float64, msg string) Diagnostic {
	return New(SevError, code, track, diff, time, msg)
}
