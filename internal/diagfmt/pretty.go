package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"fretlint/internal/diag"
)

var (
	prettyErrorColor   = color.New(color.FgRed, color.Bold)
	prettyWarningColor = color.New(color.FgYellow, color.Bold)
	prettyCodeColor    = color.New(color.Faint)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <SEV> [<CODE>] <track> [<difficulty>] @ mm:ss.fff: <Message>
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}
	for _, d := range items {
		label := d.Severity.Label() + ":"
		if opts.Color {
			label = severityColor(d.Severity).Sprint(label)
		}
		if opts.ShowCodes {
			code := "[" + d.Code.ID() + "]"
			if opts.Color {
				code = prettyCodeColor.Sprint(code)
			}
			fmt.Fprintf(w, "%s %s %s\n", label, code, Line(d))
			continue
		}
		fmt.Fprintf(w, "%s %s\n", label, Line(d))
	}
	if rest := bag.Len() - len(items); rest > 0 {
		fmt.Fprintf(w, "... and %d more diagnostics\n", rest)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	if sev == diag.SevError {
		return prettyErrorColor
	}
	return prettyWarningColor
}
