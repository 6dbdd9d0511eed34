package driver

import (
	"context"
	"fmt"
	"os"

	"fretlint/internal/chart"
	"fretlint/internal/diag"
	"fretlint/internal/diagfmt"
	"fretlint/internal/observ"
	"fretlint/internal/rules"
)

// CheckOptions configures one chart check.
type CheckOptions struct {
	// Pro selects the pro rule set.
	Pro bool
	// MaxDiagnostics caps collected diagnostics (0 = unlimited).
	MaxDiagnostics int
	// EnableTimings records per-phase durations into CheckResult.Timing.
	EnableTimings bool
	// Cache, when non-nil, is consulted before validating and updated after.
	Cache *ResultCache
	// Faults overrides the engine's fault sink (nil = stderr).
	Faults rules.FaultLogger
}

// CheckResult carries everything the CLI needs to render one chart check.
type CheckResult struct {
	Path      string
	ChartName string
	Bag       *diag.Bag
	Lines     []string
	Timing    *observ.Report
	FromCache bool
}

// Check loads one chart file and validates it. I/O and parse failures are
// converted into an IOLoadChartError diagnostic rather than an error, so a
// broken file in a directory scan reports like any other finding; the
// returned error is reserved for cancellation.
func Check(ctx context.Context, path string, opts CheckOptions) (*CheckResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	result := &CheckResult{Path: path}

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
		defer func() {
			report := timer.Report()
			result.Timing = &report
		}()
	}
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int, note string) {
		if timer != nil {
			timer.End(idx, note)
		}
	}

	loadIdx := begin(observ.PhaseLoadChart)
	data, err := os.ReadFile(path)
	if err != nil {
		end(loadIdx, "error")
		result.Bag = loadFailureBag(path, err)
		result.Lines = diagfmt.Lines(result.Bag)
		return result, nil
	}

	key := cacheKey(data, opts.Pro)
	if hit, ok := cacheGet(opts.Cache, key); ok {
		end(loadIdx, "cache hit")
		result.ChartName = hit.ChartName
		result.Bag = hit.bag()
		result.Lines = diagfmt.Lines(result.Bag)
		result.FromCache = true
		return result, nil
	}

	ch, err := chart.Parse(data)
	if err != nil {
		end(loadIdx, "error")
		result.Bag = loadFailureBag(path, err)
		result.Lines = diagfmt.Lines(result.Bag)
		return result, nil
	}
	end(loadIdx, "")

	validateIdx := begin(observ.PhaseValidate)
	validator := rules.NewValidator(rules.Options{
		ProMode:        opts.Pro,
		MaxDiagnostics: opts.MaxDiagnostics,
	}, opts.Faults)
	bag := validator.CollectChart(ch)
	end(validateIdx, fmt.Sprintf("%d diagnostics", bag.Len()))

	renderIdx := begin(observ.PhaseRender)
	result.ChartName = ch.Name
	result.Bag = bag
	result.Lines = diagfmt.Lines(bag)
	end(renderIdx, "")

	// Ошибки кэша не критичны — результат уже на руках.
	_ = cachePut(opts.Cache, key, newPayload(ch.Name, opts.Pro, bag))

	return result, nil
}

// loadFailureBag wraps a load error into a single-diagnostic bag.
func loadFailureBag(path string, err error) *diag.Bag {
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.IOLoadChartError, chart.GuitarTrackName, chart.Easy, 0,
		fmt.Sprintf("Failed to load chart %s: %v.", path, err)))
	return bag
}
