package expand

import (
	"errors"
	"strings"
	"testing"

	"litsort/internal/diag"
	"litsort/internal/format"
	"litsort/internal/macro"
	"litsort/internal/source"
)

func runFile(t *testing.T, src string, opts Options) (Result, string, error) {
	t.Helper()
	fs := source.NewFileSetWithBase("/w")
	id := fs.AddVirtual("/w/t.go.in", []byte(src))
	bag := diag.NewBag(0)
	res, err := File(fs.Get(id), opts, diag.BagReporter{Bag: bag})
	return res, diag.FormatShortDiagnostics(bag.Items(), fs, true), err
}

func TestFileExpands(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts Options
		want string
	}{
		{
			name: "single",
			src:  "var xs = sort!(\"z\", \"hello\", \"a\", \"\")\n",
			want: "var xs = [\"\", \"a\", \"hello\", \"z\"]\n",
		},
		{
			name: "several invocations",
			src:  "a := sort!(\"b\", \"a\")\nb := sort!()\nc := sort!(`y`, \"x\",)\n",
			want: "a := [\"a\", \"b\"]\nb := []\nc := [\"x\", `y`]\n",
		},
		{
			name: "go style",
			src:  "var xs = sort!(\"b\", \"a\")",
			opts: Options{Format: format.Options{Style: format.StyleGo}},
			want: "var xs = [2]string{\"a\", \"b\"}",
		},
		{
			name: "unrelated text untouched",
			src:  "if x != y { other!(1, 2) }\nsort !(\"b\")\ns := \"sort!(\\\"b\\\", \\\"a\\\")\"\n",
			want: "if x != y { other!(1, 2) }\nsort !(\"b\")\ns := \"sort!(\\\"b\\\", \\\"a\\\")\"\n",
		},
		{
			name: "multiline keeps line indentation",
			src:  "func f() {\n\txs := sort!(\"b\", \"a\")\n}\n",
			opts: Options{Format: format.Options{Multiline: true, UseTabs: true}},
			want: "func f() {\n\txs := [\n\t\t\"a\",\n\t\t\"b\",\n\t]\n}\n",
		},
		{
			name: "comments inside arguments",
			src:  "sort!(\"b\" /* second */, // first\n\"a\")",
			want: "[\"a\", \"b\"]",
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res, diags, err := runFile(t, tt.src, tt.opts)
			if err != nil {
				t.Fatalf("File: %v\n%s", err, diags)
			}
			if diags != "" {
				t.Fatalf("unexpected diagnostics:\n%s", diags)
			}
			if got := string(res.Output); got != tt.want {
				t.Fatalf("got:\n%s\nwant:\n%s", got, tt.want)
			}
			if res.Expanded != len(res.Invocations) {
				t.Fatalf("expanded %d of %d", res.Expanded, len(res.Invocations))
			}
		})
	}
}

func TestFileFailures(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "non-string argument",
			src:  "x := sort!(\"b\", 5, \"a\")\n",
			want: "error SYN2301 t.go.in:1:17 expected string literal",
		},
		{
			name: "missing comma",
			src:  "sort!(\"a\" \"b\")",
			want: "note SYN2302 t.go.in:1:7 after this argument\n" +
				"error SYN2302 t.go.in:1:11 expected `,`",
		},
		{
			name: "all invocations are checked",
			src:  "sort!(1)\nsort!(\"ok\")\nsort!(x)\n",
			want: "error SYN2301 t.go.in:1:7 expected string literal\n" +
				"error SYN2301 t.go.in:3:7 expected string literal",
		},
		{
			name: "bad escape reported once",
			src:  "sort!(\"a\\q\")",
			want: "error LEX1006 t.go.in:1:7 invalid escape sequence in string literal",
		},
		{
			name: "unclosed invocation",
			src:  "sort!(\"a\", \"b\"\n",
			want: "note SYN2006 t.go.in:1:1 invocation starts here\n" +
				"error SYN2006 t.go.in:1:6 unclosed `(` in `sort!` invocation",
		},
		{
			name: "grouped argument",
			src:  "sort!(\"a\", (\"b\"))",
			want: "error SYN2301 t.go.in:1:12 expected string literal",
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res, diags, err := runFile(t, tt.src, Options{})
			if !errors.Is(err, ErrFailed) {
				t.Fatalf("expected ErrFailed, got %v", err)
			}
			if res.Output != nil {
				t.Fatalf("output must be nil on failure, got %q", res.Output)
			}
			if diags != tt.want {
				t.Fatalf("diagnostics:\n%s\nwant:\n%s", diags, tt.want)
			}
		})
	}
}

func TestFileLintNFC(t *testing.T) {
	src := "sort!(\"z\", \"e\u0301\")"
	res, diags, err := runFile(t, src, Options{LintNFC: true})
	if err != nil {
		t.Fatalf("warnings must not fail the file: %v", err)
	}
	if !strings.HasPrefix(diags, "warning LNT7001 t.go.in:1:12 ") {
		t.Fatalf("unexpected diagnostics: %q", diags)
	}
	// разложенная форма сортируется по байтам: 'e' < 'z'
	if got := string(res.Output); got != "[\"e\u0301\", \"z\"]" {
		t.Fatalf("got %q", got)
	}

	_, quiet, _ := runFile(t, src, Options{})
	if quiet != "" {
		t.Fatalf("lint must be opt-in, got %q", quiet)
	}
}

func TestFileCustomName(t *testing.T) {
	reg := macro.DefaultRegistry()
	if err := reg.Alias("lsort", "sort"); err != nil {
		t.Fatal(err)
	}
	res, _, err := runFile(t, "lsort!(\"b\", \"a\") sort!(\"d\", \"c\")", Options{Registry: reg})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Output); got != "[\"a\", \"b\"] [\"c\", \"d\"]" {
		t.Fatalf("got %q", got)
	}
}

func TestFind(t *testing.T) {
	fs := source.NewFileSet()
	src := "sort!(f(x), [1, (2)], {a}) sort!(a ] b)"
	id := fs.AddVirtual("find.go.in", []byte(src))
	invs := Find(fs.Get(id), func(n string) bool { return n == "sort" }, nil)
	if len(invs) != 2 {
		t.Fatalf("expected 2 invocations, got %d", len(invs))
	}
	file := fs.Get(id)
	if got := file.Text(invs[0].Args); got != "f(x), [1, (2)], {a}" {
		t.Fatalf("args[0] = %q", got)
	}
	if got := file.Text(invs[1].Span); got != "sort!(a ] b)" {
		t.Fatalf("span[1] = %q", got)
	}
}

func TestSplice(t *testing.T) {
	content := []byte("0123456789")
	edits := []edit{
		{span: source.Span{Start: 7, End: 9}, text: []byte("X")},
		{span: source.Span{Start: 1, End: 3}, text: []byte("abc")},
		{span: source.Span{Start: 5, End: 5}, text: []byte("-")},
	}
	if got := string(splice(content, edits)); got != "0abc34-56X9" {
		t.Fatalf("got %q", got)
	}
}
