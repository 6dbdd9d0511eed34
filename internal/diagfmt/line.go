package diagfmt

import (
	"fmt"

	"fretlint/internal/diag"
)

// Line renders one diagnostic into the canonical single-line form:
//
//	<trackName> [<difficulty>] @ mm:ss.fff: <reason>
//
// Fault, I/O and limit diagnostics have no musical anchor, so they render
// as their bare message.
func Line(d diag.Diagnostic) string {
	switch d.Code {
	case diag.IOLoadChartError, diag.InternalFault, diag.DiagnosticLimit:
		return d.Message
	}
	return fmt.Sprintf("%s [%s] @ %s: %s", d.Track, d.Difficulty, diag.FormatOnset(d.Time), d.Message)
}

// Lines renders a bag into ordered diagnostic lines, deduplicated by exact
// line text with first-occurrence order preserved. This is the only
// artifact the public validation API hands to callers.
func Lines(bag *diag.Bag) []string {
	items := bag.Items()
	seen := make(map[string]struct{}, len(items))
	lines := make([]string, 0, len(items))
	for _, d := range items {
		line := Line(d)
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}
	return lines
}
