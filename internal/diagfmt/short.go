package diagfmt

import (
	"io"

	"litsort/internal/diag"
	"litsort/internal/source"
)

// Short writes one line per diagnostic: "error SYN2301 path:line:col message".
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) error {
	out := diag.FormatShortDiagnostics(bag.Items(), fs, includeNotes)
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}
