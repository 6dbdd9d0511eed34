package chart

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// ErrChartSectionMissing indicates that [chart] is missing in a chart file.
var ErrChartSectionMissing = errors.New("missing [chart]")

type fileNote struct {
	Time  float64 `toml:"time"`
	Lane  int64   `toml:"lane"`
	Strum bool    `toml:"strum"`
	Hopo  bool    `toml:"hopo"`
	Tap   bool    `toml:"tap"`
}

type fileChart struct {
	Chart struct {
		Name string `toml:"name"`
	} `toml:"chart"`
	Guitar map[string][]fileNote `toml:"guitar"`
}

// LoadFile parses a TOML chart fixture:
//
//	[chart]
//	name = "Example Song"
//
//	[[guitar.easy]]
//	time = 1.5
//	lane = 1
//
// Notes within one difficulty that share an onset time become one chord:
// the first is the primary note, the rest are linked as its siblings in
// file order. Difficulty keys absent from the file simply carry no data.
func LoadFile(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read chart: %w", path, err)
	}
	ch, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ch, nil
}

// Parse decodes a chart from raw TOML bytes. See LoadFile for the format.
func Parse(data []byte) (*Chart, error) {
	var cfg fileChart
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if !meta.IsDefined("chart") {
		return nil, ErrChartSectionMissing
	}

	ch := &Chart{Name: cfg.Chart.Name}
	if len(cfg.Guitar) == 0 {
		return ch, nil
	}

	track := NewTrack()
	// Детеминированный порядок обхода ключей сложности.
	keys := make([]string, 0, len(cfg.Guitar))
	for k := range cfg.Guitar {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		diff, err := ParseDifficulty(key)
		if err != nil {
			return nil, fmt.Errorf("invalid guitar difficulty: %w", err)
		}
		primaries, err := buildNotes(cfg.Guitar[key])
		if err != nil {
			return nil, fmt.Errorf("guitar.%s: %w", key, err)
		}
		if len(primaries) > 0 {
			track.SetNotes(diff, primaries)
		}
	}
	ch.Guitar = track
	return ch, nil
}

// buildNotes converts raw file entries into primary notes with sibling
// linkage. Entries sharing an onset are grouped in file order.
func buildNotes(raw []fileNote) ([]*Note, error) {
	var primaries []*Note
	var current *Note
	for i, fn := range raw {
		lane, err := safecast.Conv[int](fn.Lane)
		if err != nil {
			return nil, fmt.Errorf("note %d: lane out of range: %w", i, err)
		}
		if lane < OpenLane || lane > OrangeLane {
			return nil, fmt.Errorf("note %d: lane %d outside 0..%d", i, lane, OrangeLane)
		}
		if fn.Time < 0 {
			return nil, fmt.Errorf("note %d: negative onset %v", i, fn.Time)
		}
		n := &Note{
			Time:  fn.Time,
			Lane:  lane,
			Strum: fn.Strum,
			Hopo:  fn.Hopo,
			Tap:   fn.Tap,
		}
		if current != nil && current.Time == n.Time {
			current.Siblings = append(current.Siblings, n)
			continue
		}
		primaries = append(primaries, n)
		current = n
	}
	return primaries, nil
}
