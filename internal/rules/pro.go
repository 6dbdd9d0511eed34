package rules

import (
	"fmt"

	"fretlint/internal/chart"
	"fretlint/internal/diag"
)

// forbiddenTriples are the three-note lane combinations pro mode disallows,
// listed in canonical low-to-high order.
var forbiddenTriples = [...][3]int{{1, 2, 5}, {1, 3, 5}, {1, 4, 5}}

// checkPro evaluates the pro rule set against one chord.
func checkPro(rc *ruleContext, c Chord) {
	t := c.Time()
	for _, n := range c.Notes() {
		if n.Tap {
			rc.report(diag.ProTapNote, t, fmt.Sprintf(
				"Tap note detected (fret %d). Taps are not allowed in Pro Mode.", n.Lane))
		}
		if n.Lane == chart.OpenLane {
			rc.report(diag.ProOpenNote, t,
				"Open note detected. Open notes are not allowed in Pro Mode.")
		}
	}

	lanes := c.Lanes()
	if c.Size() >= 4 {
		rc.report(diag.ProBigChord, t, fmt.Sprintf(
			"Chord of %d notes detected (lanes: %s). Chords with 4+ notes are not allowed.",
			c.Size(), formatLanes(lanes)))
	}
	if c.Size() == 3 && isForbiddenTriple(lanes) {
		rc.report(diag.ProLaneTriple, t, fmt.Sprintf(
			"Forbidden three-note chord detected: lanes %d, %d, & %d are not allowed together on Pro Mode.",
			lanes[0], lanes[1], lanes[2]))
	}
}

// isForbiddenTriple matches the ordered lane triple forwards or backwards:
// the combination is forbidden regardless of which way the chord stacks it.
func isForbiddenTriple(lanes []int) bool {
	for _, tr := range forbiddenTriples {
		if lanes[0] == tr[0] && lanes[1] == tr[1] && lanes[2] == tr[2] {
			return true
		}
		if lanes[0] == tr[2] && lanes[1] == tr[1] && lanes[2] == tr[0] {
			return true
		}
	}
	return false
}
