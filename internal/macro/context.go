package macro

import (
	"litsort/internal/ast"
	"litsort/internal/diag"
	"litsort/internal/source"
	"litsort/internal/token"
)

// Context carries per-invocation state. One Context may be reused for
// several invocations of the same file; nodes accumulate in Builder.
type Context struct {
	Builder  *ast.Builder
	Reporter diag.Reporter
}

// NewContext creates a context with a fresh builder. r may be nil.
func NewContext(r diag.Reporter) *Context {
	return &Context{
		Builder:  ast.NewBuilder(ast.Hints{}, nil),
		Reporter: r,
	}
}

// Result is the outcome of one expansion. When OK is false every problem has
// already been reported and Expr is ast.NoExprID.
type Result struct {
	Expr ast.ExprID
	OK   bool
}

func failed() Result { return Result{} }

// Expander turns the tokens between the invocation parentheses into a node.
// call spans the whole invocation; tokens are owned by the caller and only read.
type Expander interface {
	Expand(cx *Context, call source.Span, tokens []token.Token) Result
}

// ExpanderFunc adapts a function to Expander.
type ExpanderFunc func(cx *Context, call source.Span, tokens []token.Token) Result

func (f ExpanderFunc) Expand(cx *Context, call source.Span, tokens []token.Token) Result {
	return f(cx, call, tokens)
}
