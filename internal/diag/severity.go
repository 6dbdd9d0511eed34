package diag

// Severity ranks a diagnostic. The rule engine emits two levels: every
// rule violation is an error, while engine notices (a truncated result
// list) are warnings that never fail a chart on their own.
type Severity uint8

const (
	// SevWarning marks advisory findings.
	SevWarning Severity = iota
	// SevError marks rule violations; any error fails the check.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label is the lowercase form used in rendered output.
func (s Severity) Label() string {
	if s == SevError {
		return "error"
	}
	return "warning"
}
