package macro

import (
	"fmt"
	"slices"
	"strings"

	"litsort/internal/ast"
	"litsort/internal/diag"
	"litsort/internal/parser"
	"litsort/internal/source"
	"litsort/internal/token"
)

// Entry pairs an argument's decoded string value with its original node.
type Entry struct {
	Key  string
	Expr ast.ExprID
}

// ExpandSort implements sort!(...): on success the result is an immutable
// array literal spanning call whose elements are the arguments sorted by value.
func ExpandSort(cx *Context, call source.Span, tokens []token.Token) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			diag.ReportError(cx.Reporter, diag.UnknownCode, call, fmt.Sprintf("internal error while expanding: %v", r)).Emit()
			res = failed()
		}
	}()

	entries, ok := parseEntries(cx, call, tokens)
	if !ok {
		return failed()
	}
	SortEntries(entries)
	return Result{Expr: buildArray(cx, call, entries), OK: true}
}

// parseEntries reads comma-separated arguments until EOF.
// A trailing comma is accepted; no arguments at all gives an empty slice.
func parseEntries(cx *Context, call source.Span, tokens []token.Token) ([]Entry, bool) {
	stream := token.NewStream(tokens, source.At(call.File, call.End))
	p := parser.New(stream, cx.Builder, parser.Options{Reporter: cx.Reporter})

	var entries []Entry
	malformed := false
	for !p.At(token.EOF) {
		if skipNestedInvocation(cx, p, stream) {
			malformed = true
		} else {
			expr, ok := p.ParseExpr()
			if !ok {
				return nil, false
			}

			key, isString := cx.Builder.StringLiteral(expr)
			if !isString {
				malformed = true
				// ExprBad уже отрапортован лексером
				if kind, _ := cx.Builder.Kind(expr); kind != ast.ExprBad {
					diag.ReportError(cx.Reporter, diag.SynExpectStringLiteral, cx.Builder.Span(expr), "expected string literal").Emit()
				}
			}
			entries = append(entries, Entry{Key: key, Expr: expr})
		}

		if !p.Eat(token.Comma) && !p.At(token.EOF) {
			reportSeparator(cx, p)
			return nil, false
		}
	}

	if malformed {
		return nil, false
	}
	return entries, true
}

// skipNestedInvocation consumes a name!(...) argument and reports it as one
// non-literal argument. Invocations are expanded only at the top level.
func skipNestedInvocation(cx *Context, p *parser.Parser, stream *token.Stream) bool {
	name, bang, open := stream.PeekN(0), stream.PeekN(1), stream.PeekN(2)
	if name.Kind != token.Ident || bang.Kind != token.Bang || open.Kind != token.LParen ||
		name.Span.End != bang.Span.Start {
		return false
	}
	p.Advance() // name
	p.Advance() // !
	depth := 0
	for !p.At(token.EOF) {
		switch p.Advance().Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		}
		if depth == 0 {
			break
		}
	}
	diag.ReportError(cx.Reporter, diag.SynExpectStringLiteral, name.Span.Cover(p.LastSpan()), "expected string literal").
		WithNote(name.Span, "nested `"+name.Text+"!` invocations are not expanded").
		Emit()
	return true
}

func reportSeparator(cx *Context, p *parser.Parser) {
	offending := p.Peek()
	if offending.Kind == token.Invalid {
		return
	}
	prev := p.LastSpan()
	diag.ReportError(cx.Reporter, diag.SynExpectComma, offending.Span, "expected `,`").
		WithNote(prev, "after this argument").
		WithFix("insert `,`", diag.FixEdit{Span: source.At(prev.File, prev.End), NewText: ","}).
		Emit()
}

// SortEntries orders entries by Key using byte-wise comparison.
// Equal keys keep their relative order.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Key, b.Key)
	})
}

func buildArray(cx *Context, call source.Span, entries []Entry) ast.ExprID {
	elems := make([]ast.ExprID, len(entries))
	for i, e := range entries {
		elems[i] = e.Expr
	}
	return cx.Builder.Exprs.NewArray(call, elems, nil, false, true)
}
