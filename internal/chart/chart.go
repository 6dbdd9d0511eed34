package chart

import (
	"fmt"
	"strings"
)

// Difficulty identifies one skill level of a track.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Difficulties is the fixed, ordered list of difficulty levels a track may
// carry. Walkers iterate this slice instead of reflecting over the enum so
// the traversal order is explicit and compile-time known.
var Difficulties = []Difficulty{Easy, Medium, Hard, Expert}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Expert:
		return "Expert"
	}
	return "Unknown"
}

// ParseDifficulty maps a case-insensitive difficulty name to its value.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// GuitarTrackName is the display name of the one track kind the rule
// engine currently validates.
const GuitarTrackName = "FiveFretGuitar"

// Track holds the per-difficulty note data of one instrument.
type Track struct {
	byDifficulty map[Difficulty][]*Note
}

// NewTrack constructs an empty track.
func NewTrack() *Track {
	return &Track{byDifficulty: make(map[Difficulty][]*Note, len(Difficulties))}
}

// SetNotes replaces the primary-note sequence of one difficulty.
func (t *Track) SetNotes(d Difficulty, notes []*Note) {
	if t.byDifficulty == nil {
		t.byDifficulty = make(map[Difficulty][]*Note, len(Difficulties))
	}
	t.byDifficulty[d] = notes
}

// Notes returns the ordered primary notes of a difficulty. A difficulty
// without data returns nil; that is expected absence, not an error.
func (t *Track) Notes(d Difficulty) []*Note {
	if t == nil {
		return nil
	}
	return t.byDifficulty[d]
}

// Chart is the read-only model of one parsed song chart.
type Chart struct {
	Name   string
	Guitar *Track
}
