package rules

import (
	"fretlint/internal/chart"
	"fretlint/internal/diag"
)

// walkTrack iterates the fixed difficulty list of one track and feeds every
// chord to the rule set selected by the options. The rule set is chosen
// once per walk, never per chord, so a mode change mid-walk cannot split a
// track's validation between the two rule families.
//
// Missing or empty difficulty data is skipped silently: expected absence,
// not an error. Unexpected failures while reading note data propagate to
// the validator facade.
func walkTrack(tr *chart.Track, name string, opts Options, r diag.Reporter) {
	check := checkNonPro
	if opts.ProMode {
		check = checkPro
	}
	for _, diff := range chart.Difficulties {
		notes := tr.Notes(diff)
		if len(notes) == 0 {
			continue
		}
		rc := &ruleContext{track: name, difficulty: diff, reporter: r}
		for _, c := range GroupChords(notes) {
			check(rc, c)
		}
	}
}
