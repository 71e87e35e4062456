// Package diag defines the diagnostic model shared by the lexer, the parser,
// the macro engine and the host expander.
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – compact numeric identifier with a stable string form (LEX1002, SYN2301).
//   - Message – short human text.
//   - Primary – the source.Span the finding points at.
//   - Notes – optional secondary spans.
//   - Fixes – optional text edits a tool may apply.
//
// Producers never store diagnostics themselves; they emit through a Reporter.
// BagReporter collects into a Bag which supports sorting and deduplication.
// Rendering lives in internal/diagfmt, except for the one-line short format
// used by tests and the `short` output mode, which lives here.
//
// The package performs no IO.
package diag
