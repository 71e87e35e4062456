package token

var keywords = map[string]Kind{
	"true":  KwTrue,
	"false": KwFalse,
	"nil":   KwNil,
}

// LookupKeyword returns the keyword kind for ident. Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
