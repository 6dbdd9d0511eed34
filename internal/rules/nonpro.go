package rules

import (
	"fmt"

	"fretlint/internal/chart"
	"fretlint/internal/diag"
)

// forbiddenPairs are the unordered two-note lane combinations the standard
// mode disallows.
var forbiddenPairs = [...][2]int{{1, 2}, {3, 4}, {3, 5}, {4, 5}}

// checkNonPro evaluates the standard (pro mode disabled) rule set against
// one chord. Per-note rules may fire once per offending member; per-chord
// rules fire at most once. All predicates are independent: a single chord
// can trigger several of them.
func checkNonPro(rc *ruleContext, c Chord) {
	t := c.Time()
	for _, n := range c.Notes() {
		if n.Strum {
			rc.report(diag.StdStrumNote, t, fmt.Sprintf(
				"Strum note detected (fret %d). Strums are not allowed when Pro Mode is disabled.", n.Lane))
		}
		if n.Hopo {
			rc.report(diag.StdHopoNote, t, fmt.Sprintf(
				"HOPO note detected (fret %d). HOPOs are not allowed when Pro Mode is disabled.", n.Lane))
		}
		if n.Lane == chart.OpenLane {
			rc.report(diag.StdOpenNote, t,
				"Open note detected. Open notes are not allowed when Pro Mode is disabled.")
		}
	}

	lanes := c.Lanes()
	if c.Size() >= 3 {
		rc.report(diag.StdBigChord, t, fmt.Sprintf(
			"Chord of %d notes detected (lanes: %s). Chords with 3+ notes are not allowed when Pro Mode is disabled.",
			c.Size(), formatLanes(lanes)))
	}
	if c.Size() == 2 && isForbiddenPair(lanes[0], lanes[1]) {
		// Lane order in the message reflects chord order, not rule order.
		rc.report(diag.StdLanePair, t, fmt.Sprintf(
			"Forbidden two-note chord detected: lanes %d & %d are not allowed together when Pro Mode is disabled.",
			lanes[0], lanes[1]))
	}
	if isLowerDifficulty(rc.difficulty) && containsLane(lanes, chart.OrangeLane) {
		rc.report(diag.StdOrangeLane, t, fmt.Sprintf(
			"Lane 5 (Orange) note detected on %s. Lane 5 is not allowed on Easy/Medium/Hard when Pro Mode is disabled.",
			rc.difficulty))
	}
}

// isForbiddenPair matches the unordered lane pair against forbiddenPairs,
// so [1,2] and [2,1] trigger identically.
func isForbiddenPair(a, b int) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, p := range forbiddenPairs {
		if p[0] == lo && p[1] == hi {
			return true
		}
	}
	return false
}

func isLowerDifficulty(d chart.Difficulty) bool {
	switch d {
	case chart.Easy, chart.Medium, chart.Hard:
		return true
	}
	return false
}

func containsLane(lanes []int, lane int) bool {
	for _, l := range lanes {
		if l == lane {
			return true
		}
	}
	return false
}
