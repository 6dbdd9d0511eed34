package diag

import (
	"fmt"
	"math"
)

// FormatOnset renders an onset time in seconds as mm:ss.fff, zero-padded.
// Negative onsets are clamped to zero; malformed external data must not be
// able to produce an unreadable timestamp.
func FormatOnset(sec float64) string {
	if sec < 0 || math.IsNaN(sec) {
		sec = 0
	}
	total := int64(math.Round(sec * 1000))
	minutes := total / 60000
	seconds := (total % 60000) / 1000
	millis := total % 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}
