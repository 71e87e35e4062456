package token_test

import (
	"testing"

	"litsort/internal/source"
	"litsort/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntLit, token.FloatLit, token.CharLit,
		token.StringLit, token.RawStringLit, token.KwTrue, token.KwFalse, token.KwNil,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.Plus, token.LParen, token.EOF}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsString(t *testing.T) {
	if !tok(token.StringLit).IsString() || !tok(token.RawStringLit).IsString() {
		t.Fatal("string kinds must report IsString")
	}
	if tok(token.CharLit).IsString() {
		t.Fatal("CharLit is not a string")
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.Minus, token.Comma, token.LParen, token.RParen,
		token.LBracket, token.RBracket, token.Bang, token.Dollar, token.DotDot,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.StringLit, token.EOF} {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := token.Comma.String(); got != "Comma" {
		t.Errorf("Comma.String() = %q", got)
	}
	if got := token.Kind(250).String(); got != "Kind(?)" {
		t.Errorf("unknown kind String() = %q", got)
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := token.LookupKeyword("true"); !ok || k != token.KwTrue {
		t.Fatalf("LookupKeyword(true) = %v, %v", k, ok)
	}
	for _, s := range []string{"True", "sort", "NIL"} {
		if _, ok := token.LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true", s)
		}
	}
}
