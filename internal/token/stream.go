package token

import "litsort/internal/source"

// Stream is a read-only cursor over a token slice owned by someone else.
// It never mutates the slice. Reading past the end keeps returning EOF.
type Stream struct {
	toks []Token
	pos  int
	eof  Token
}

// NewStream wraps toks. If toks does not end with EOF, an empty EOF token is
// synthesized right after the last token (or at fallback when toks is empty).
func NewStream(toks []Token, fallback source.Span) *Stream {
	eof := Token{Kind: EOF, Span: source.At(fallback.File, fallback.End)}
	if n := len(toks); n > 0 {
		last := toks[n-1]
		if last.Kind == EOF {
			eof = last
			toks = toks[:n-1]
		} else {
			eof.Span = source.At(last.Span.File, last.Span.End)
		}
	}
	return &Stream{toks: toks, eof: eof}
}

// Next returns the next token and advances.
func (s *Stream) Next() Token {
	if s.pos >= len(s.toks) {
		return s.eof
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() Token {
	return s.PeekN(0)
}

// PeekN looks n tokens ahead; PeekN(0) is Peek.
func (s *Stream) PeekN(n int) Token {
	if s.pos+n >= len(s.toks) {
		return s.eof
	}
	return s.toks[s.pos+n]
}

// Remaining returns how many non-EOF tokens are left.
func (s *Stream) Remaining() int {
	return len(s.toks) - s.pos
}
