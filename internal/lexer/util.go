package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

// peekRune decodes the rune at the cursor; size is 0 at EOF.
// Invalid UTF-8 decodes as (RuneError, 1).
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	if b := lx.cursor.Peek(); b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.cursor.Rest())
}

// skip moves the cursor n bytes forward.
func (lx *Lexer) skip(n int) {
	off, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("lexer skip overflow: %w", err))
	}
	lx.cursor.Off += off
}

// bumpRune съедает текущую руну целиком, не разрезая UTF-8
func (lx *Lexer) bumpRune() {
	_, size := lx.peekRune()
	lx.skip(size)
}

// isIdentByte: буква или `_`, цифры только не в начале.
func isIdentByte(b byte, first bool) bool {
	switch {
	case b == '_', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case isDec(b):
		return !first
	}
	return false
}

// isIdentRune extends isIdentByte to Unicode letters and digits.
func isIdentRune(r rune, first bool) bool {
	if r < utf8.RuneSelf {
		return isIdentByte(byte(r), first)
	}
	return unicode.IsLetter(r) || (!first && unicode.IsDigit(r))
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isNumberAfterDot: ".5" — точка, за ней цифра.
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// try2 consumes the two bytes a, b if they come next.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
