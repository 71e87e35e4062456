package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"litsort/internal/diag"
	"litsort/internal/expand"
	"litsort/internal/logging"
	"litsort/internal/observ"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestListFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.go.in":        "",
		"b/c.go.in":      "",
		"b/skip.go":      "",
		".git/x.go.in":   "",
		"explicit.txt":   "",
		"b/d/e.tmpl":     "",
		"b/d/f.go.in.go": "",
	})
	got, err := ListFiles([]string{root, filepath.Join(root, "explicit.txt"), filepath.Join(root, "a.go.in")}, []string{".in", ".tmpl"})
	if err != nil {
		t.Fatal(err)
	}
	var rel []string
	for _, p := range got {
		r, _ := filepath.Rel(root, p)
		rel = append(rel, filepath.ToSlash(r))
	}
	want := "a.go.in,b/c.go.in,b/d/e.tmpl,explicit.txt"
	if strings.Join(rel, ",") != want {
		t.Fatalf("got %v, want %s", rel, want)
	}

	if _, err := ListFiles([]string{filepath.Join(root, "missing")}, nil); err == nil {
		t.Fatal("expected error for a missing path")
	}
}

func TestExpandFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"ok.go.in":   "var a = sort!(\"b\", \"a\")\n",
		"bad.go.in":  "var a = sort!(\"b\" 1)\n",
		"none.go.in": "package none\n",
	})
	files, err := ListFiles([]string{root}, []string{".in"})
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, filepath.Join(root, "gone.go.in"))

	var seen atomic.Int32
	timer := observ.NewTimer()
	fs, results, err := ExpandFiles(context.Background(), files, Options{
		Expand:  expand.Options{},
		Jobs:    2,
		BaseDir: root,
		Logger:  logging.NewNop(),
		Timer:   timer,
		OnFile:  func(FileResult) { seen.Add(1) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if int(seen.Load()) != len(files) {
		t.Fatalf("OnFile called %d times for %d files", seen.Load(), len(files))
	}

	byName := make(map[string]FileResult)
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}

	ok := byName["ok.go.in"]
	if ok.Err != nil || string(ok.Output) != "var a = [\"a\", \"b\"]\n" || ok.Expanded != 1 {
		t.Fatalf("ok.go.in: %+v", ok)
	}
	none := byName["none.go.in"]
	if none.Err != nil || string(none.Output) != "package none\n" || none.Invocations != 0 {
		t.Fatalf("none.go.in: %+v", none)
	}
	bad := byName["bad.go.in"]
	if !errors.Is(bad.Err, expand.ErrFailed) || bad.Output != nil {
		t.Fatalf("bad.go.in: %+v", bad)
	}
	gone := byName["gone.go.in"]
	if gone.Err == nil || gone.Bag.Len() != 1 || gone.Bag.Items()[0].Code != diag.IOLoadFileError {
		t.Fatalf("gone.go.in: %+v", gone)
	}

	if !HasErrors(results) {
		t.Fatal("HasErrors must be true")
	}
	short := diag.FormatShortDiagnostics(Diagnostics(results).Items(), fs, false)
	if !strings.Contains(short, "error SYN2302 bad.go.in:1:19 expected `,`") {
		t.Fatalf("unexpected diagnostics:\n%s", short)
	}
	if !strings.Contains(short, "error IO4001 gone.go.in:1:1 failed to load file") {
		t.Fatalf("unexpected diagnostics:\n%s", short)
	}
	if n := len(timer.Report().Phases); n != len(files)+1 {
		t.Fatalf("expected load + per-file phases, got %d", n)
	}
}

func TestExpandFilesCanceled(t *testing.T) {
	root := writeTree(t, map[string]string{"a.go.in": "sort!()"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ExpandFiles(ctx, []string{filepath.Join(root, "a.go.in")}, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTokenize(t *testing.T) {
	root := writeTree(t, map[string]string{"t.go.in": "sort!(\"a\", 'x)"})
	res, err := Tokenize(filepath.Join(root, "t.go.in"), 10)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(res.Tokens); n == 0 || res.Tokens[n-1].Kind.String() != "EOF" {
		t.Fatalf("tokens must end with EOF: %v", res.Tokens)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("unterminated rune literal must be reported")
	}
}
