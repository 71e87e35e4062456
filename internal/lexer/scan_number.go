package lexer

import (
	"litsort/internal/diag"
	"litsort/internal/token"
)

// Поддержка: 0, 123, 0b..., 0o..., 0x..., 1.0, .5, 1e-3, 1.0e+10, '_' между цифрами.
// Неверные формы — репорт LexBadNumber и Invalid токен.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	bad := func(msg string) token.Token {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, msg)
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	digits := func(ok func(byte) bool) int {
		n := 0
		for {
			b := lx.cursor.Peek()
			if b == '_' {
				lx.cursor.Bump()
				continue
			}
			if !ok(b) {
				return n
			}
			lx.cursor.Bump()
			n++
		}
	}

	// ".digits"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		digits(isDec)
		goto exponent
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		var base func(byte) bool
		switch lx.cursor.Peek() {
		case 'b', 'B':
			base = func(b byte) bool { return b == '0' || b == '1' }
		case 'o', 'O':
			base = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'x', 'X':
			base = isHex
		}
		if base != nil {
			lx.cursor.Bump()
			if digits(base) == 0 {
				return bad("expected digits after base prefix")
			}
			goto emit
		}
	}

	digits(isDec)

	if lx.cursor.Peek() == '.' {
		// '..' — это оператор, не дробная часть
		if b0, b1, ok := lx.cursor.Peek2(); !ok || b0 != '.' || b1 != '.' {
			lx.cursor.Bump()
			kind = token.FloatLit
			digits(isDec)
		}
	}

exponent:
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if digits(isDec) == 0 {
			return bad("expected digit after exponent")
		}
	}

emit:
	if isIdentByte(lx.cursor.Peek(), true) {
		for isIdentByte(lx.cursor.Peek(), false) {
			lx.cursor.Bump()
		}
		return bad("invalid suffix on numeric literal")
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
