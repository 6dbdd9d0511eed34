package diagfmt

import (
	"encoding/json"
	"io"

	"fretlint/internal/diag"
)

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity   string  `json:"severity"`
	Code       string  `json:"code,omitempty"`
	Track      string  `json:"track"`
	Difficulty string  `json:"difficulty"`
	Time       string  `json:"time"`
	Seconds    float64 `json:"seconds,omitempty"`
	Message    string  `json:"message"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput converts a bag into the JSON output structure.
func BuildDiagnosticsOutput(bag *diag.Bag, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(items)),
	}
	for _, d := range items {
		dj := DiagnosticJSON{
			Severity:   d.Severity.String(),
			Track:      d.Track,
			Difficulty: d.Difficulty.String(),
			Time:       diag.FormatOnset(d.Time),
			Message:    d.Message,
		}
		if opts.IncludeCodes {
			dj.Code = d.Code.ID()
		}
		if opts.IncludeSeconds {
			dj.Seconds = d.Time
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON сериализует диагностики в JSON и пишет в w.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, opts))
}
