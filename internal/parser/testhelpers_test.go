package parser

import (
	"fmt"
	"strings"
	"testing"

	"litsort/internal/ast"
	"litsort/internal/diag"
	"litsort/internal/lexer"
	"litsort/internal/source"
	"litsort/internal/token"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

type parsed struct {
	p      *Parser
	arenas *ast.Builder
	bag    *diag.Bag
	file   *source.File
}

func newTestParser(input string) parsed {
	fs := source.NewFileSet()
	id := fs.AddVirtual("expr.go.in", []byte(input))
	file := fs.Get(id)
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}
	arenas := ast.NewBuilder(ast.Hints{}, nil)
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	return parsed{
		p:      New(lx, arenas, Options{Reporter: rep}),
		arenas: arenas,
		bag:    bag,
		file:   file,
	}
}

// parseExprTestInput парсит ровно одно выражение и требует EOF после него
func parseExprTestInput(t *testing.T, input string) (ast.ExprID, parsed) {
	t.Helper()
	ps := newTestParser(input)
	id, ok := ps.p.ParseExpr()
	if !ok {
		t.Fatalf("parse %q failed: %s", input, diagnosticsSummary(ps.bag))
	}
	if !ps.p.At(token.EOF) {
		t.Fatalf("parse %q: trailing tokens starting at %q", input, ps.p.Peek().Text)
	}
	if ps.bag.Len() != 0 {
		t.Fatalf("parse %q: unexpected diagnostics: %s", input, diagnosticsSummary(ps.bag))
	}
	return id, ps
}

func (ps parsed) text(id ast.ExprID) string {
	return ps.file.Text(ps.arenas.Span(id))
}
