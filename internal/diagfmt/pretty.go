package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"litsort/internal/diag"
	"litsort/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, note *color.Color
	gutter, caret, fix    *color.Color
	bold                  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgCyan),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		fix:    color.New(color.FgGreen),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.gutter, p.caret, p.fix, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждой диагностики печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строки контекста с подчёркиванием ^~~~ по Span, затем notes и fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, fs, opts, p)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "\n%s\n", p.warn.Sprintf("%d more diagnostics were dropped (--max-diagnostics)", n))
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	sev := p.severity(d.Severity).Sprint(strings.ToUpper(d.Severity.Label()))
	file, ok := lookupFile(fs, d.Primary)
	if !ok {
		fmt.Fprintf(w, "%s %s: %s\n", sev, p.bold.Sprint(d.Code.ID()), d.Message)
		return
	}

	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(fs, file, opts.PathMode), start.Line, start.Col,
		sev, p.bold.Sprint(d.Code.ID()), d.Message)
	printSnippet(w, fs, file, d.Primary, int(opts.Context), p)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nf, ok := lookupFile(fs, note.Span)
			if !ok {
				fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), note.Msg)
				continue
			}
			pos, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
				formatPath(fs, nf, opts.PathMode), pos.Line, pos.Col, note.Msg)
		}
	}

	if opts.ShowFixes {
		for i, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s\n", p.fix.Sprintf("fix #%d: %s", i+1, fix.Title))
			for _, edit := range fix.Edits {
				ef, ok := lookupFile(fs, edit.Span)
				if !ok {
					continue
				}
				pos, _ := fs.Resolve(edit.Span)
				fmt.Fprintf(w, "    edit %s:%d:%d apply=%s\n",
					formatPath(fs, ef, opts.PathMode), pos.Line, pos.Col, strconv.Quote(edit.NewText))
				if !opts.ShowPreview {
					continue
				}
				preview, err := buildFixEditPreview(fs, edit)
				if err != nil {
					continue
				}
				fmt.Fprintln(w, "    preview:")
				for _, line := range preview.before {
					fmt.Fprintf(w, "      %s\n", p.err.Sprint("- "+line))
				}
				for _, line := range preview.after {
					fmt.Fprintf(w, "      %s\n", p.fix.Sprint("+ "+line))
				}
			}
		}
	}
}

// printSnippet prints the primary line with up to ctx lines around it and
// underlines the span on its first line.
func printSnippet(w io.Writer, fs *source.FileSet, file *source.File, span source.Span, ctx int, p palette) {
	start, end := fs.Resolve(span)
	lines := file.LineCount()
	first := start.Line
	last := start.Line
	for range max(ctx, 0) {
		if first > 1 {
			first--
		}
		if last < lines {
			last++
		}
	}
	gutterWidth := len(strconv.FormatUint(uint64(last), 10))

	for ln := first; ln <= last; ln++ {
		text := file.Line(ln)
		fmt.Fprintf(w, "  %s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), expandTabs(text))
		if ln != start.Line {
			continue
		}
		// колонки в байтах, подчёркивание — в экранных ячейках
		startCol := int(start.Col) - 1
		endCol := len(text)
		if end.Line == start.Line {
			endCol = int(end.Col) - 1
		}
		startCol = min(max(startCol, 0), len(text))
		endCol = min(max(endCol, startCol), len(text))
		pad := runewidth.StringWidth(expandTabs(text[:startCol]))
		width := max(runewidth.StringWidth(expandTabs(text[startCol:endCol])), 1)
		marker := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "  %s %s%s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), p.caret.Sprint(marker))
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
