package parser

import (
	"litsort/internal/ast"
	"litsort/internal/diag"
	"litsort/internal/source"
	"litsort/internal/token"
)

// parseCallExpr парсит вызов функции: expr(args...)
func (p *Parser) parseCallExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // съедаем '('

	args, commas, trailing, ok := p.parseExprList(token.RParen)
	if !ok {
		return ast.NoExprID, false
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' after function arguments")
	if !ok {
		return ast.NoExprID, false
	}

	targetSpan := p.arenas.Exprs.Get(target).Span
	return p.arenas.Exprs.NewCall(targetSpan.Cover(closeTok.Span), target, args, commas, trailing), true
}

// parseIndexExpr парсит индексацию: expr[index]
func (p *Parser) parseIndexExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // съедаем '['

	index, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' after index")
	if !ok {
		return ast.NoExprID, false
	}

	targetSpan := p.arenas.Exprs.Get(target).Span
	return p.arenas.Exprs.NewIndex(targetSpan.Cover(closeTok.Span), target, index), true
}

// parseMemberExpr парсит доступ к полю: expr.field
func (p *Parser) parseMemberExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // съедаем '.'

	fieldTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected field name after '.'")
	if !ok {
		return ast.NoExprID, false
	}

	targetSpan := p.arenas.Exprs.Get(target).Span
	field := p.arenas.Strings.Intern(fieldTok.Text)
	return p.arenas.Exprs.NewMember(targetSpan.Cover(fieldTok.Span), target, field), true
}

// parseExprList парсит элементы через запятую до closing (не съедая его).
// Завершающая запятая разрешена.
func (p *Parser) parseExprList(closing token.Kind) (elems []ast.ExprID, commas []source.Span, trailing, ok bool) {
	for !p.at_or(closing, token.EOF) {
		elem, ok := p.parseExpr()
		if !ok {
			return nil, nil, false, false
		}
		elems = append(elems, elem)

		if !p.at(token.Comma) {
			break
		}
		commaTok := p.advance()
		commas = append(commas, commaTok.Span)
		if p.at(closing) {
			trailing = true
		}
	}
	return elems, commas, trailing, true
}
