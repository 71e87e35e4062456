package parser

import (
	"strconv"

	"litsort/internal/ast"
	"litsort/internal/diag"
	"litsort/internal/token"
)

func (p *Parser) parseIdentExpr() (ast.ExprID, bool) {
	tok := p.advance()
	name := p.arenas.Strings.Intern(tok.Text)
	return p.arenas.Exprs.NewIdent(tok.Span, name), true
}

// parseNumericLiteral парсит числовые и rune литералы; значение — исходный текст
func (p *Parser) parseNumericLiteral() (ast.ExprID, bool) {
	tok := p.advance()

	var kind ast.ExprLitKind
	switch tok.Kind {
	case token.IntLit:
		kind = ast.ExprLitInt
	case token.FloatLit:
		kind = ast.ExprLitFloat
	default:
		kind = ast.ExprLitChar
	}

	valueID := p.arenas.Strings.Intern(tok.Text)
	return p.arenas.Exprs.NewLiteral(tok.Span, kind, valueID), true
}

// parseStringLiteral парсит "..." и `...`. Значение литерала — декодированная строка.
func (p *Parser) parseStringLiteral() (ast.ExprID, bool) {
	tok := p.advance()
	value, err := strconv.Unquote(tok.Text)
	if err != nil {
		// лексер пропускает только валидные литералы; сюда попадает только руками собранный поток
		p.report(diag.LexBadEscape, diag.SevError, tok.Span, "invalid string literal")
		return p.arenas.Exprs.NewBad(tok.Span), true
	}
	valueID := p.arenas.Strings.Intern(value)
	return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitString, valueID), true
}

// parseKeywordLiteral парсит true, false и nil
func (p *Parser) parseKeywordLiteral() (ast.ExprID, bool) {
	tok := p.advance()

	kind := ast.ExprLitNil
	switch tok.Kind {
	case token.KwTrue:
		kind = ast.ExprLitTrue
	case token.KwFalse:
		kind = ast.ExprLitFalse
	}

	valueID := p.arenas.Strings.Intern(tok.Text)
	return p.arenas.Exprs.NewLiteral(tok.Span, kind, valueID), true
}

// parseParenExpr парсит выражения в скобках - может быть группировкой или tuple
func (p *Parser) parseParenExpr() (ast.ExprID, bool) {
	openTok := p.advance() // съедаем '('

	elems, commas, trailing, ok := p.parseExprList(token.RParen)
	if !ok {
		return ast.NoExprID, false
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'")
	if !ok {
		return ast.NoExprID, false
	}

	finalSpan := openTok.Span.Cover(closeTok.Span)
	// (expr) без запятой — обычная группировка
	if len(elems) == 1 && len(commas) == 0 {
		return p.arenas.Exprs.NewGroup(finalSpan, elems[0]), true
	}
	return p.arenas.Exprs.NewTuple(finalSpan, elems, commas, trailing), true
}

// parseArrayExpr парсит [a, b, ...]
func (p *Parser) parseArrayExpr() (ast.ExprID, bool) {
	openTok := p.advance() // съедаем '['

	elems, commas, trailing, ok := p.parseExprList(token.RBracket)
	if !ok {
		return ast.NoExprID, false
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' after array elements")
	if !ok {
		return ast.NoExprID, false
	}

	finalSpan := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewArray(finalSpan, elems, commas, trailing, false), true
}
