package chart

// Reserved lane values for the five-fret guitar track.
const (
	// OpenLane is the reserved lane index for open notes (no fret held).
	OpenLane = 0
	// OrangeLane is the fifth fret lane, restricted on lower difficulties.
	OrangeLane = 5
)

// Note is a single playable note inside one difficulty of a track.
// Notes are read-only once loaded; the rule engine never mutates them.
type Note struct {
	// Time is the musical onset in seconds from the start of the song.
	Time float64
	// Lane is the fret index. OpenLane (0) means an open note.
	Lane int
	// Play-style flags. At most one is expected to be set, but the
	// model does not enforce that; rules judge each flag independently.
	Strum bool
	Hopo  bool
	Tap   bool
	// Siblings are the notes played simultaneously with this one, in
	// their original linkage order. Only primary notes carry siblings;
	// sibling notes themselves have an empty list.
	Siblings []*Note
}
