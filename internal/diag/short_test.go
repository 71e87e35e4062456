package diag

import (
	"testing"

	"litsort/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")

	file := fs.Add("/workspace/testdata/consts.go.in", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     LintKeyNotNFC,
			Message:  "another",
			Primary:  source.Span{File: file, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     SynExpectStringLiteral,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 2, End: 3}, Msg: "note line"},
			},
		},
	}

	expected := "error SYN2301 testdata/consts.go.in:1:1 first line second\n" +
		"note SYN2301 testdata/consts.go.in:2:1 note line\n" +
		"warning LNT7001 testdata/consts.go.in:2:1 another"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}

	withoutNotes := "error SYN2301 testdata/consts.go.in:1:1 first line second\n" +
		"warning LNT7001 testdata/consts.go.in:2:1 another"
	if got := FormatShortDiagnostics(diags, fs, false); got != withoutNotes {
		t.Fatalf("notes must be skipped:\n%s", got)
	}
}

func TestFormatShortDiagnosticsUnknownFile(t *testing.T) {
	fs := source.NewFileSet()
	diags := []Diagnostic{NewError(SynExpectComma, source.Span{File: 9}, "expected `,`")}
	if got := FormatShortDiagnostics(diags, fs, false); got != "" {
		t.Fatalf("expected empty output for unknown file, got %q", got)
	}
}
