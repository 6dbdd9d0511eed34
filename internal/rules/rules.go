package rules

import (
	"strconv"
	"strings"

	"fretlint/internal/chart"
	"fretlint/internal/diag"
)

// Options configures one validation call. The mode is an explicit value
// read once per call; rule selection never consults process-wide state, so
// concurrent validations with different modes are safe.
type Options struct {
	// ProMode selects the pro rule set instead of the standard one.
	ProMode bool
	// MaxDiagnostics caps collected violations (0 = unlimited). When the
	// cap bites, the result carries a warning naming the suppressed count.
	MaxDiagnostics int
}

// ruleContext carries the anchor shared by every rule evaluated against one
// difficulty of one track.
type ruleContext struct {
	track      string
	difficulty chart.Difficulty
	reporter   diag.Reporter
}

func (rc *ruleContext) report(code diag.Code, time float64, msg string) {
	rc.reporter.Report(diag.NewError(code, rc.track, rc.difficulty, time, msg))
}

// formatLanes renders a lane list as "1, 2, 3" for chord-size messages.
func formatLanes(lanes []int) string {
	var b strings.Builder
	for i, lane := range lanes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(lane))
	}
	return b.String()
}
