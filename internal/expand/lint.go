package expand

import (
	"strconv"

	"golang.org/x/text/unicode/norm"

	"litsort/internal/ast"
	"litsort/internal/diag"
	"litsort/internal/macro"
)

// lintNFC warns about keys that compare differently from their NFC form:
// "é" written as e + U+0301 sorts after "z".
func lintNFC(cx *macro.Context, arr ast.ExprID) {
	data, ok := cx.Builder.Exprs.Array(arr)
	if !ok {
		return
	}
	for _, el := range data.Elements {
		key, ok := cx.Builder.StringLiteral(el)
		if !ok || norm.NFC.IsNormalString(key) {
			continue
		}
		sp := cx.Builder.Span(el)
		diag.ReportWarning(cx.Reporter, diag.LintKeyNotNFC, sp, "string key is not NFC-normalized; it sorts by its decomposed bytes").
			WithFix("normalize to NFC", diag.FixEdit{Span: sp, NewText: strconv.Quote(norm.NFC.String(key))}).
			Emit()
	}
}
