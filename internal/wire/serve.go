package wire

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"litsort/internal/diag"
	"litsort/internal/expand"
	"litsort/internal/format"
	"litsort/internal/macro"
	"litsort/internal/source"
)

type ServeOptions struct {
	Registry       *macro.Registry
	MaxDiagnostics int
	Logger         *slog.Logger
}

// Serve answers requests from r on w until r is exhausted or ctx is done.
// A malformed stream ends the loop with an error; a failed expansion does not.
func Serve(ctx context.Context, r io.Reader, w io.Writer, opts ServeOptions) error {
	if opts.Registry == nil {
		opts.Registry = macro.DefaultRegistry()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	dec := msgpack.NewDecoder(bufio.NewReader(r))
	bw := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(bw)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var req Request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode request: %w", err)
		}

		resp := Handle(&req, opts)
		log.Debug("request served", "id", req.ID, "path", req.Path, "ok", resp.OK, "diagnostics", len(resp.Diagnostics))

		if err := enc.Encode(&resp); err != nil {
			return fmt.Errorf("encode response %d: %w", req.ID, err)
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("flush response %d: %w", req.ID, err)
		}
	}
}

// Handle expands a single request.
func Handle(req *Request, opts ServeOptions) Response {
	resp := Response{ID: req.ID}
	reg := opts.Registry
	if reg == nil {
		reg = macro.DefaultRegistry()
	}

	name := req.Macro
	if name == "" {
		name = "sort"
	}
	if _, ok := reg.Lookup(name); !ok {
		resp.Error = fmt.Sprintf("unknown macro %q", name)
		return resp
	}
	style, err := format.ParseStyle(req.Style)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	// вызов собирается целиком, чтобы span вызова был настоящим
	prefix := name + "!("
	text := prefix + req.Args + ")"
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(req.Path, []byte(text))
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	dedup := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	res, err := expand.File(file, expand.Options{
		Registry: reg,
		Format:   format.Options{Style: style, Multiline: req.Multiline},
		LintNFC:  req.LintNFC,
	}, dedup)
	if n := dedup.Suppressed(); n > 0 && opts.Logger != nil {
		opts.Logger.Debug("duplicate diagnostics dropped", "id", req.ID, "count", n)
	}

	switch {
	case err != nil && !errors.Is(err, expand.ErrFailed):
		resp.Error = err.Error()
		return resp
	case len(res.Invocations) != 1 || res.Invocations[0].Span.End != offset(len(text)):
		// `)` внутри Args закрыл вызов раньше времени; диагностика
		// относилась бы к тексту, которого клиент не писал
		resp.Error = "arguments are not balanced"
		return resp
	}

	shift := offset(len(prefix))
	bag.Sort()
	for _, d := range bag.Items() {
		resp.Diagnostics = append(resp.Diagnostics, toWire(fs, d, shift))
	}
	if err != nil {
		return resp
	}
	resp.OK = true
	resp.Expansion = string(res.Output)
	return resp
}

func toWire(fs *source.FileSet, d diag.Diagnostic, shift uint32) Diagnostic {
	pos, _ := fs.Resolve(d.Primary)
	col := pos.Col
	if pos.Line == 1 {
		col = pos.Col - min(shift, pos.Col-1)
	}
	out := Diagnostic{
		Severity: d.Severity.Label(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		Start:    d.Primary.Start - min(shift, d.Primary.Start),
		End:      d.Primary.End - min(shift, d.Primary.End),
		Line:     pos.Line,
		Col:      col,
	}
	for _, n := range d.Notes {
		out.Notes = append(out.Notes, Note{
			Message: n.Msg,
			Start:   n.Span.Start - min(shift, n.Span.Start),
			End:     n.Span.End - min(shift, n.Span.End),
		})
	}
	return out
}

func offset(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}
