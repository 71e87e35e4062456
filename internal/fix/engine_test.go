package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"litsort/internal/diag"
	"litsort/internal/expand"
	"litsort/internal/source"
)

func TestGatherCandidatesSkipsDuplicateFixIDs(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.go.in", []byte(""))
	span := source.Span{File: fileID, Start: 0, End: 0}

	d := diag.Diagnostic{
		Code:    diag.SynExpectComma,
		Message: "expected `,`",
		Primary: span,
		Fixes: []diag.Fix{{
			Title: "insert `,`",
			Edits: []diag.FixEdit{{Span: span, NewText: ","}},
		}},
	}
	// один и тот же диагноз дважды
	candidates, skips := gatherCandidates([]diag.Diagnostic{d, d})

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if len(skips) != 1 {
		t.Fatalf("expected 1 skipped fix, got %d", len(skips))
	}
	if skips[0].ID != FixID(d, 0) || skips[0].Reason != "duplicate fix id" {
		t.Fatalf("unexpected skip: %+v", skips[0])
	}
}

func TestSpansConflict(t *testing.T) {
	edit := func(start, end uint32) diag.FixEdit {
		return diag.FixEdit{Span: source.Span{Start: start, End: end}}
	}
	tests := []struct {
		name string
		a, b diag.FixEdit
		want bool
	}{
		{"two inserts", edit(3, 3), edit(3, 3), false},
		{"insert inside", edit(4, 4), edit(3, 6), true},
		{"insert at end", edit(6, 6), edit(3, 6), false},
		{"overlap", edit(1, 4), edit(3, 6), true},
		{"adjacent", edit(1, 3), edit(3, 6), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spansConflict(tt.a, tt.b); got != tt.want {
				t.Fatalf("spansConflict = %v, want %v", got, tt.want)
			}
			if got := spansConflict(tt.b, tt.a); got != tt.want {
				t.Fatalf("spansConflict reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func diagnose(t *testing.T, fs *source.FileSet, id source.FileID, opts expand.Options) []diag.Diagnostic {
	t.Helper()
	bag := diag.NewBag(0)
	_, _ = expand.File(fs.Get(id), opts, diag.BagReporter{Bag: bag})
	return bag.Items()
}

func TestApplyMissingCommas(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.go.in", []byte("x := sort!(\"c\" \"a\")\ny := sort!(\"b\" \"d\")\n"))
	diags := diagnose(t, fs, id, expand.Options{})
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}

	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Applied) != 2 || len(res.FileChanges) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	want := "x := sort!(\"c\", \"a\")\ny := sort!(\"b\", \"d\")\n"
	if got := string(res.FileChanges[0].Content); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	once, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeOnce, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	want = "x := sort!(\"c\", \"a\")\ny := sort!(\"b\" \"d\")\n"
	if got := string(once.FileChanges[0].Content); len(once.Applied) != 1 || got != want {
		t.Fatalf("once: got %q, want %q", got, want)
	}

	target := FixID(diags[1], 0)
	byID, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeID, TargetID: target, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(byID.Applied) != 1 || byID.Applied[0].ID != target {
		t.Fatalf("by id: %+v", byID)
	}

	_, err = Apply(fs, diags, ApplyOptions{Mode: ApplyModeID, TargetID: "nope", DryRun: true})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
}

func TestApplyNFCWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.go.in")
	if err := os.WriteFile(path, []byte("k := sort!(\"e\u0301\", \"a\")\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	diags := diagnose(t, fs, id, expand.Options{LintNFC: true})
	if len(diags) != 1 || diags[0].Code != diag.LintKeyNotNFC {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}

	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.FileChanges) != 1 || res.FileChanges[0].Path != "keys.go.in" {
		t.Fatalf("unexpected changes: %+v", res.FileChanges)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "k := sort!(\"\u00e9\", \"a\")\n" {
		t.Fatalf("file not rewritten: %q", got)
	}
}

func TestApplySkipsVirtualAndConflicts(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("v.go.in", []byte("abcdef"))
	mk := func(start, end uint32, text string) diag.Diagnostic {
		sp := source.Span{File: id, Start: start, End: end}
		return diag.NewError(diag.SynExpectComma, sp, "x").WithFix("edit", diag.FixEdit{Span: sp, NewText: text})
	}
	diags := []diag.Diagnostic{mk(1, 3, "X"), mk(2, 4, "Y")}

	_, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("virtual files must not be written, got %v", err)
	}

	res, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Applied) != 1 || len(res.Skipped) != 1 {
		t.Fatalf("expected one applied and one conflicting fix: %+v", res)
	}
	if got := string(res.FileChanges[0].Content); got != "aXdef" {
		t.Fatalf("got %q", got)
	}
}
