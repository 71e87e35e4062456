package token

import (
	"litsort/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a literal of any kind.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, StringLit, RawStringLit, KwTrue, KwFalse, KwNil:
		return true
	default:
		return false
	}
}

// IsString reports whether the token is an interpreted or raw string literal.
func (t Token) IsString() bool {
	return t.Kind == StringLit || t.Kind == RawStringLit
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= Dollar
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
