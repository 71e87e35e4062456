// Package token defines lexical token kinds and trivia for litsort.
// Invariants:
//   - Token.Text is the exact source text covered by Token.Span.
//   - String literal tokens keep their quotes and escapes; decoding happens in the parser.
//   - Trivia (spaces, newlines, comments) is attached to the next significant token as Leading
//     and never appears in the main token stream.
//   - A token sequence handed to a macro always ends with exactly one EOF token.
package token
