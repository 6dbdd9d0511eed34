package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fretlint/internal/diag"
)

const pairChart = `[chart]
name = "Pair Song"

[[guitar.easy]]
time = 1.5
lane = 1

[[guitar.easy]]
time = 1.5
lane = 2
`

const cleanChart = `[chart]
name = "Clean Song"

[[guitar.expert]]
time = 0.5
lane = 3
`

func writeFixture(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestCheckFile(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "pair.toml", pairChart)
	res, err := Check(context.Background(), path, CheckOptions{})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if res.ChartName != "Pair Song" {
		t.Fatalf("unexpected chart name: %q", res.ChartName)
	}
	want := "FiveFretGuitar [Easy] @ 00:01.500: Forbidden two-note chord detected: lanes 1 & 2 are not allowed together when Pro Mode is disabled."
	if len(res.Lines) != 1 || res.Lines[0] != want {
		t.Fatalf("unexpected diagnostics:\nwant: %q\ngot:  %v", want, res.Lines)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("bag must report errors")
	}
}

func TestCheckProModeDiffers(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "pair.toml", pairChart)
	res, err := Check(context.Background(), path, CheckOptions{Pro: true})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(res.Lines) != 0 {
		t.Fatalf("two-note chord is legal in pro mode, got %v", res.Lines)
	}
}

func TestCheckMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	res, err := Check(context.Background(), path, CheckOptions{})
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if len(res.Lines) != 1 || !strings.HasPrefix(res.Lines[0], "Failed to load chart "+path) {
		t.Fatalf("expected load failure diagnostic, got %v", res.Lines)
	}
	if res.Bag.Items()[0].Code != diag.IOLoadChartError {
		t.Fatalf("unexpected code: %v", res.Bag.Items()[0].Code)
	}
}

func TestCheckMalformedFile(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "broken.toml", "name = \"no chart section\"\n")
	res, err := Check(context.Background(), path, CheckOptions{})
	if err != nil {
		t.Fatalf("malformed file must not be an error: %v", err)
	}
	if !res.Bag.HasErrors() || res.Bag.Items()[0].Code != diag.IOLoadChartError {
		t.Fatalf("expected load failure diagnostic, got %v", res.Lines)
	}
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Check(ctx, "ignored.toml", CheckOptions{}); err == nil {
		t.Fatal("cancelled context must surface an error")
	}
}

func TestCheckCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "pair.toml", pairChart)
	cache, err := OpenResultCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	opts := CheckOptions{Cache: cache}

	first, err := Check(context.Background(), path, opts)
	if err != nil {
		t.Fatalf("first check failed: %v", err)
	}
	if first.FromCache {
		t.Fatal("first check must be a cache miss")
	}

	second, err := Check(context.Background(), path, opts)
	if err != nil {
		t.Fatalf("second check failed: %v", err)
	}
	if !second.FromCache {
		t.Fatal("second check must be a cache hit")
	}
	if second.ChartName != first.ChartName {
		t.Fatalf("chart name lost in cache: %q vs %q", second.ChartName, first.ChartName)
	}
	if len(second.Lines) != len(first.Lines) || second.Lines[0] != first.Lines[0] {
		t.Fatalf("cached diagnostics differ:\nfirst:  %v\nsecond: %v", first.Lines, second.Lines)
	}
}

func TestCheckCacheKeyedByMode(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "pair.toml", pairChart)
	cache, err := OpenResultCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}

	if _, err := Check(context.Background(), path, CheckOptions{Cache: cache}); err != nil {
		t.Fatalf("standard check failed: %v", err)
	}
	pro, err := Check(context.Background(), path, CheckOptions{Cache: cache, Pro: true})
	if err != nil {
		t.Fatalf("pro check failed: %v", err)
	}
	// Тот же файл, другой режим — другой ключ.
	if pro.FromCache {
		t.Fatal("pro check must not reuse the standard-mode entry")
	}
	if len(pro.Lines) != 0 {
		t.Fatalf("pro mode must pass this chart, got %v", pro.Lines)
	}
}

func TestCheckTimings(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "clean.toml", cleanChart)
	res, err := Check(context.Background(), path, CheckOptions{EnableTimings: true})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if res.Timing == nil {
		t.Fatal("timing report missing")
	}
}

func TestCheckDirOrdered(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "b-pair.toml", pairChart)
	writeFixture(t, dir, "a-clean.toml", cleanChart)
	writeFixture(t, dir, "notes.txt", "not a chart")

	results, err := CheckDir(context.Background(), dir, CheckOptions{}, 2)
	if err != nil {
		t.Fatalf("CheckDir failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ChartName != "Clean Song" || results[1].ChartName != "Pair Song" {
		t.Fatalf("results out of path order: %q, %q", results[0].ChartName, results[1].ChartName)
	}
	if len(results[0].Lines) != 0 || len(results[1].Lines) != 1 {
		t.Fatalf("unexpected diagnostics: %v / %v", results[0].Lines, results[1].Lines)
	}
}

func TestCheckDirEmpty(t *testing.T) {
	if _, err := CheckDir(context.Background(), t.TempDir(), CheckOptions{}, 1); err == nil {
		t.Fatal("directory without charts must error")
	}
}
