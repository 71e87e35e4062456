package parser

import (
	"slices"

	"litsort/internal/ast"
	"litsort/internal/diag"
	"litsort/internal/source"
	"litsort/internal/token"
)

// TokenSource — поток значимых токенов. Реализуют *lexer.Lexer и *token.Stream.
// После конца поток обязан возвращать EOF.
type TokenSource interface {
	Next() token.Token
	Peek() token.Token
}

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser разбирает выражения из одного потока токенов.
// Он не владеет потоком: вызывающий может чередовать ParseExpr с Eat/At.
type Parser struct {
	lx       TokenSource
	arenas   *ast.Builder
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

func New(lx TokenSource, arenas *ast.Builder, opts Options) *Parser {
	first := lx.Peek().Span
	return &Parser{
		lx:       lx,
		arenas:   arenas,
		opts:     opts,
		lastSpan: source.At(first.File, first.Start),
	}
}

// ParseExpr parses one expression. On failure the problem has already been
// reported and the stream position is unspecified.
func (p *Parser) ParseExpr() (ast.ExprID, bool) {
	return p.parseExpr()
}

// Peek returns the current token without consuming it.
func (p *Parser) Peek() token.Token {
	return p.lx.Peek()
}

// At reports whether the current token has kind k.
func (p *Parser) At(k token.Kind) bool {
	return p.at(k)
}

// Eat consumes the current token if it has kind k.
func (p *Parser) Eat(k token.Kind) bool {
	if !p.at(k) {
		return false
	}
	p.advance()
	return true
}

// Advance consumes the current token whatever its kind.
func (p *Parser) Advance() token.Token {
	return p.advance()
}

// LastSpan returns the span of the last consumed significant token.
func (p *Parser) LastSpan() source.Span {
	return p.lastSpan
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) at_or(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}
