package expand

import (
	"litsort/internal/diag"
	"litsort/internal/lexer"
	"litsort/internal/source"
	"litsort/internal/token"
)

// Invocation is one name!(...) call site found in a host file.
type Invocation struct {
	Name string
	// Span covers the whole invocation from the name to the closing paren.
	Span source.Span
	// Args covers the text between the parentheses.
	Args source.Span
}

// Find scans file for invocations whose name is accepted by known.
// Unclosed invocations are reported with SynUnclosedInvocation and skipped.
// Text inside an invocation is not searched again, so nested calls reach the
// expander as ordinary argument tokens.
func Find(file *source.File, known func(name string) bool, r diag.Reporter) []Invocation {
	// хост-текст может быть чем угодно, лексические ошибки вне аргументов не интересны
	toks := lexer.New(file, lexer.Options{}).All()

	var out []Invocation
	for i := 0; i+2 < len(toks); i++ {
		name, bang, open := toks[i], toks[i+1], toks[i+2]
		if name.Kind != token.Ident || bang.Kind != token.Bang || open.Kind != token.LParen {
			continue
		}
		if name.Span.End != bang.Span.Start || !known(name.Text) {
			continue
		}

		closeIdx := matchClose(toks, i+2)
		if closeIdx < 0 {
			diag.ReportError(r, diag.SynUnclosedInvocation, open.Span, "unclosed `(` in `"+name.Text+"!` invocation").
				WithNote(name.Span, "invocation starts here").
				Emit()
			// всё до конца файла принадлежит незакрытому вызову
			break
		}
		closing := toks[closeIdx]
		out = append(out, Invocation{
			Name: name.Text,
			Span: name.Span.Cover(closing.Span),
			Args: source.Span{File: file.ID, Start: open.Span.End, End: closing.Span.Start},
		})
		i = closeIdx
	}
	return out
}

// matchClose returns the index of the token closing toks[open], or -1.
func matchClose(toks []token.Token, open int) int {
	stack := make([]token.Kind, 0, 8)
	for i := open; i < len(toks); i++ {
		switch toks[i].Kind {
		case token.LParen:
			stack = append(stack, token.RParen)
		case token.LBracket:
			stack = append(stack, token.RBracket)
		case token.LBrace:
			stack = append(stack, token.RBrace)
		case token.RParen, token.RBracket, token.RBrace:
			// перепутанные скобки: закрываем до ближайшей совпадающей,
			// лишние игнорируем, разбор аргументов сам их отрапортует
			j := lastIndex(stack, toks[i].Kind)
			if j < 0 {
				continue
			}
			stack = stack[:j]
			if len(stack) == 0 {
				return i
			}
		case token.EOF:
			return -1
		}
	}
	return -1
}

func lastIndex(stack []token.Kind, k token.Kind) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == k {
			return i
		}
	}
	return -1
}
