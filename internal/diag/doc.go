// Package diag defines the diagnostic model shared by the rule engine.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture rule
//     violations found while walking a chart's tracks and difficulties.
//   - Offer light-weight utilities (Reporter, Bag) that let rule sets emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// chart traversal. Rendering responsibilities live in internal/diagfmt,
// whereas traversal and rule evaluation live in internal/rules and the
// driver layer.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – two-level enum (Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//     The code travels with each record; there is no process-wide "last code".
//   - Track / Difficulty / Time – the anchor of the finding inside the chart,
//     the chart-domain analogue of a source span.
//   - Message – human oriented text; keep it short and actionable.
//
// # Emitting diagnostics
//
// Rule sets use a diag.Reporter to decouple emission from storage.
// diag.BagReporter aggregates diagnostics into a Bag, which supports
// sorting, deduplication and merging; diag.DedupReporter collapses repeat
// findings before they ever reach a bag, and diag.LimitReporter enforces a
// caller-set cap while counting what it suppressed.
//
// Keep the data model deterministic: any new fields should honour the
// package's layering constraints and avoid side effects, so the CLI and
// future tooling can safely serialise diagnostics for caching and testing.
package diag
