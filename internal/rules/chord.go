package rules

import (
	"fretlint/internal/chart"
)

// Chord is an ordered group of notes sharing one musical onset: a primary
// note followed by its linked siblings. Size is always >= 1.
type Chord struct {
	notes []*chart.Note
}

// GroupChords reshapes a difficulty's primary-note sequence into chords.
// Pure data reshaping: no sorting, filtering or validation happens here.
func GroupChords(primaries []*chart.Note) []Chord {
	chords := make([]Chord, 0, len(primaries))
	for _, p := range primaries {
		members := make([]*chart.Note, 0, 1+len(p.Siblings))
		members = append(members, p)
		members = append(members, p.Siblings...)
		chords = append(chords, Chord{notes: members})
	}
	return chords
}

// Notes returns the chord members in linkage order.
func (c Chord) Notes() []*chart.Note {
	return c.notes
}

func (c Chord) Size() int {
	return len(c.notes)
}

// Time returns the shared onset of the chord.
func (c Chord) Time() float64 {
	return c.notes[0].Time
}

// Lanes projects each member's lane index, order preserved from grouping.
func (c Chord) Lanes() []int {
	lanes := make([]int, len(c.notes))
	for i, n := range c.notes {
		lanes[i] = n.Lane
	}
	return lanes
}
