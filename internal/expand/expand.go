package expand

import (
	"errors"
	"fmt"
	"slices"

	"litsort/internal/diag"
	"litsort/internal/format"
	"litsort/internal/lexer"
	"litsort/internal/macro"
	"litsort/internal/source"
)

// ErrFailed is returned when at least one invocation in a file did not expand.
// The diagnostics explaining why have already been reported.
var ErrFailed = errors.New("expansion failed")

type Options struct {
	// Registry resolves invocation names; nil means macro.DefaultRegistry().
	Registry *macro.Registry
	Format   format.Options
	// LintNFC reports string keys that are not in Unicode normalization form C.
	LintNFC bool
}

// Result describes one expanded file.
type Result struct {
	// Output is the file text with every invocation replaced. It is nil on failure.
	Output      []byte
	Invocations []Invocation
	Expanded    int
}

type edit struct {
	span source.Span
	text []byte
}

// File expands every invocation in file. Either all invocations expand and
// Output holds the rewritten text, or ErrFailed is returned and the file is
// left as is.
func File(file *source.File, opts Options, r diag.Reporter) (Result, error) {
	reg := opts.Registry
	if reg == nil {
		reg = macro.DefaultRegistry()
	}
	known := func(name string) bool {
		_, ok := reg.Lookup(name)
		return ok
	}

	counter := &diag.CountingReporter{Next: r}
	invs := Find(file, known, counter)
	res := Result{Invocations: invs}

	cx := macro.NewContext(counter)
	edits := make([]edit, 0, len(invs))
	failed := counter.Errors > 0
	for _, inv := range invs {
		text, ok, err := expandOne(cx, reg, file, inv, opts)
		if err != nil {
			return Result{Invocations: invs}, fmt.Errorf("%s: %w", inv.Name, err)
		}
		if !ok {
			// остальные вызовы всё равно проверяем, чтобы собрать все диагностики
			failed = true
			continue
		}
		edits = append(edits, edit{span: inv.Span, text: text})
		res.Expanded++
	}
	if failed {
		return res, ErrFailed
	}

	res.Output = splice(file.Content, edits)
	return res, nil
}

func expandOne(cx *macro.Context, reg *macro.Registry, file *source.File, inv Invocation, opts Options) ([]byte, bool, error) {
	exp, ok := reg.Lookup(inv.Name)
	if !ok {
		return nil, false, fmt.Errorf("no expander registered")
	}
	toks := lexer.NewRange(file, inv.Args, lexer.Options{Reporter: cx.Reporter}).All()
	out := exp.Expand(cx, inv.Span, toks)
	if !out.OK {
		return nil, false, nil
	}
	if opts.LintNFC {
		lintNFC(cx, out.Expr)
	}

	fopt := opts.Format
	if fopt.Multiline {
		fopt.Indent = lineIndent(file, inv.Span.Start, fopt)
	}
	text, err := format.Expr(file, cx.Builder, out.Expr, fopt)
	if err != nil {
		return nil, false, err
	}
	return text, true, nil
}

// splice replaces each edit span in content. Edits must not overlap.
func splice(content []byte, edits []edit) []byte {
	edits = slices.Clone(edits)
	slices.SortFunc(edits, func(a, b edit) int {
		return int(a.span.Start) - int(b.span.Start)
	})

	size := len(content)
	for _, e := range edits {
		size += len(e.text) - int(e.span.Len())
	}
	out := make([]byte, 0, max(size, 0))
	var pos uint32
	for _, e := range edits {
		out = append(out, content[pos:e.span.Start]...)
		out = append(out, e.text...)
		pos = e.span.End
	}
	return append(out, content[pos:]...)
}

// lineIndent returns the indentation level of the line containing off.
func lineIndent(file *source.File, off uint32, fopt format.Options) int {
	start := off
	for start > 0 && file.Content[start-1] != '\n' {
		start--
	}
	tabs, spaces := 0, 0
scan:
	for _, c := range file.Content[start:off] {
		switch c {
		case '\t':
			tabs++
		case ' ':
			spaces++
		default:
			break scan
		}
	}
	width := fopt.IndentWidth
	if width <= 0 {
		width = 4
	}
	return tabs + spaces/width
}
