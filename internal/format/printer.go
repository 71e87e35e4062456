package format

import (
	"errors"
	"fmt"
	"strconv"

	"litsort/internal/ast"
	"litsort/internal/source"
)

var ErrUnknownExpr = errors.New("unknown expression")

// Expr prints the node id. Arrays are synthesized from their elements;
// every other node is copied from its source span.
func Expr(sf *source.File, b *ast.Builder, id ast.ExprID, opt Options) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	w := NewWriter(sf, opt)
	if err := printExpr(w, b, id); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func printExpr(w *Writer, b *ast.Builder, id ast.ExprID) error {
	if !id.IsValid() {
		return fmt.Errorf("no expression: %w", ErrUnknownExpr)
	}
	expr := b.Exprs.Get(id)
	if expr == nil {
		return fmt.Errorf("expr %d: %w", id, ErrUnknownExpr)
	}
	if expr.Kind != ast.ExprArray {
		if expr.Span.File != w.sf.ID {
			return fmt.Errorf("expr %d belongs to file %d, printing file %d", id, expr.Span.File, w.sf.ID)
		}
		w.CopySpan(expr.Span)
		return nil
	}
	arr, _ := b.Exprs.Array(id)
	return printArray(w, b, arr)
}

func printArray(w *Writer, b *ast.Builder, arr *ast.ExprArrayData) error {
	closing := "]"
	switch w.opt.Style {
	case StyleGo:
		if arr.Immutable {
			w.WriteString("[" + strconv.Itoa(len(arr.Elements)) + "]string{")
		} else {
			w.WriteString("[]string{")
		}
		closing = "}"
	default:
		w.WriteString("[")
	}

	if w.opt.Multiline && len(arr.Elements) > 0 {
		w.Newline()
		w.IndentPush()
		for _, el := range arr.Elements {
			if err := printExpr(w, b, el); err != nil {
				return err
			}
			w.WriteString(",")
			w.Newline()
		}
		w.IndentPop()
		w.WriteString(closing)
		return nil
	}

	for i, el := range arr.Elements {
		if i > 0 {
			w.WriteString(",")
			w.Space()
		}
		if err := printExpr(w, b, el); err != nil {
			return err
		}
	}
	w.WriteString(closing)
	return nil
}
