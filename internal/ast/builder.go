package ast

import (
	"litsort/internal/source"
)

type Hints struct{ Exprs uint }

// Builder owns the expression arenas for one expansion and the interner
// holding literal values and identifier names.
type Builder struct {
	Exprs   *Exprs
	Strings *source.Interner
}

// NewBuilder creates a builder. A nil strs gets a fresh interner.
func NewBuilder(hints Hints, strs *source.Interner) *Builder {
	if strs == nil {
		strs = source.NewInterner()
	}
	return &Builder{
		Exprs:   NewExprs(hints.Exprs),
		Strings: strs,
	}
}

// StringLiteral reports whether id is a string literal and returns its decoded value.
func (b *Builder) StringLiteral(id ExprID) (string, bool) {
	lit, ok := b.Exprs.Literal(id)
	if !ok || lit.Kind != ExprLitString {
		return "", false
	}
	return b.Strings.MustLookup(lit.Value), true
}

// Span returns the source span of id, or an empty span for an unknown id.
func (b *Builder) Span(id ExprID) source.Span {
	if expr := b.Exprs.Get(id); expr != nil {
		return expr.Span
	}
	return source.Span{}
}

// Kind returns the kind of id. ok is false for an unknown id.
func (b *Builder) Kind(id ExprID) (kind ExprKind, ok bool) {
	if expr := b.Exprs.Get(id); expr != nil {
		return expr.Kind, true
	}
	return 0, false
}
