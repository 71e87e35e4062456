package format

import (
	"bytes"

	"litsort/internal/source"
)

// Writer builds the text of one array literal. Element text is copied from
// sf; everything else is punctuation and indentation.
type Writer struct {
	sf    *source.File
	opt   Options
	buf   bytes.Buffer
	unit  []byte // один уровень отступа
	depth int
	// pending — отступ ещё не выведен для текущей строки
	pending bool
}

func NewWriter(sf *source.File, opt Options) *Writer {
	opt = opt.withDefaults()
	unit := []byte{'\t'}
	if !opt.UseTabs {
		unit = bytes.Repeat([]byte{' '}, opt.IndentWidth)
	}
	return &Writer{sf: sf, opt: opt, unit: unit, depth: opt.Indent}
}

func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *Writer) write(p []byte) {
	if len(p) == 0 {
		return
	}
	if w.pending {
		for range w.depth {
			w.buf.Write(w.unit)
		}
		w.pending = false
	}
	w.buf.Write(p)
	w.pending = p[len(p)-1] == '\n'
}

func (w *Writer) WriteString(s string) {
	w.write([]byte(s))
}

// Space separates inline elements; it is a no-op after whitespace.
func (w *Writer) Space() {
	if w.buf.Len() == 0 {
		return
	}
	switch w.buf.Bytes()[w.buf.Len()-1] {
	case ' ', '\t', '\n':
		return
	}
	w.buf.WriteByte(' ')
}

// Newline ends the current line once; the next write is indented.
func (w *Writer) Newline() {
	if b := w.buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		w.buf.WriteByte('\n')
	}
	w.pending = true
}

func (w *Writer) IndentPush() { w.depth++ }

func (w *Writer) IndentPop() {
	if w.depth > 0 {
		w.depth--
	}
}

// CopySpan writes the source text under sp verbatim. Spans of other files
// and empty spans write nothing.
func (w *Writer) CopySpan(sp source.Span) {
	if w.sf == nil || sp.File != w.sf.ID || sp.End <= sp.Start {
		return
	}
	end := min(int(sp.End), len(w.sf.Content))
	if int(sp.Start) >= end {
		return
	}
	w.write(w.sf.Content[sp.Start:end])
}
