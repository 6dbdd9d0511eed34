package diag

import (
	"fmt"
)

// Code identifies which rule (or internal condition) produced a diagnostic.
// Every Diagnostic carries its own Code; there is no shared "last code"
// channel, so concurrent validations never observe each other's results.
type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Standard (non-pro) rule violations
	StdStrumNote  Code = 1001
	StdHopoNote   Code = 1002
	StdOpenNote   Code = 1003
	StdBigChord   Code = 1004
	StdLanePair   Code = 1005
	StdOrangeLane Code = 1006

	// Pro rule violations
	ProTapNote    Code = 2001
	ProOpenNote   Code = 2002
	ProBigChord   Code = 2003
	ProLaneTriple Code = 2004

	// Ошибки I/O
	IOLoadChartError Code = 4001

	// Unexpected faults surfaced as diagnostics
	InternalFault Code = 5001
	// DiagnosticLimit marks a result list truncated by a caller-set cap.
	DiagnosticLimit Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:      "Unknown error",
	StdStrumNote:     "Strum note outside Pro Mode",
	StdHopoNote:      "HOPO note outside Pro Mode",
	StdOpenNote:      "Open note outside Pro Mode",
	StdBigChord:      "Chord of 3+ notes outside Pro Mode",
	StdLanePair:      "Forbidden two-note chord outside Pro Mode",
	StdOrangeLane:    "Lane 5 on lower difficulty outside Pro Mode",
	ProTapNote:       "Tap note in Pro Mode",
	ProOpenNote:      "Open note in Pro Mode",
	ProBigChord:      "Chord of 4+ notes in Pro Mode",
	ProLaneTriple:    "Forbidden three-note chord in Pro Mode",
	IOLoadChartError: "I/O load chart error",
	InternalFault:    "Internal fault during validation",
	DiagnosticLimit:  "Diagnostic limit reached",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("STD%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("PRO%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("INT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
