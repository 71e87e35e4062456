package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token. The lexer has already reported it.
	Invalid Kind = iota
	// EOF marks the end of the token sequence.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwTrue represents the 'true' keyword.
	KwTrue
	// KwFalse represents the 'false' keyword.
	KwFalse
	// KwNil represents the 'nil' keyword.
	KwNil

	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a float literal.
	FloatLit
	// CharLit represents a rune literal in single quotes.
	CharLit
	// StringLit represents an interpreted "..." string literal.
	StringLit
	// RawStringLit represents a raw `...` string literal.
	RawStringLit

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Assign    // =
	EqEq      // ==
	Bang      // !
	BangEq    // !=
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	Shl       // <<
	Shr       // >>
	Amp       // &
	Pipe      // |
	Caret     // ^
	Tilde     // ~
	AndAnd    // &&
	OrOr      // ||
	Question  // ?
	Colon     // :
	Semicolon // ;
	Comma     // ,
	Dot       // .
	DotDot    // ..
	Arrow     // ->
	FatArrow  // =>
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	At        // @
	Hash      // #
	Dollar    // $
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	KwTrue:       "KwTrue",
	KwFalse:      "KwFalse",
	KwNil:        "KwNil",
	IntLit:       "IntLit",
	FloatLit:     "FloatLit",
	CharLit:      "CharLit",
	StringLit:    "StringLit",
	RawStringLit: "RawStringLit",
	Plus:         "Plus",
	Minus:        "Minus",
	Star:         "Star",
	Slash:        "Slash",
	Percent:      "Percent",
	Assign:       "Assign",
	EqEq:         "EqEq",
	Bang:         "Bang",
	BangEq:       "BangEq",
	Lt:           "Lt",
	LtEq:         "LtEq",
	Gt:           "Gt",
	GtEq:         "GtEq",
	Shl:          "Shl",
	Shr:          "Shr",
	Amp:          "Amp",
	Pipe:         "Pipe",
	Caret:        "Caret",
	Tilde:        "Tilde",
	AndAnd:       "AndAnd",
	OrOr:         "OrOr",
	Question:     "Question",
	Colon:        "Colon",
	Semicolon:    "Semicolon",
	Comma:        "Comma",
	Dot:          "Dot",
	DotDot:       "DotDot",
	Arrow:        "Arrow",
	FatArrow:     "FatArrow",
	LParen:       "LParen",
	RParen:       "RParen",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	At:           "At",
	Hash:         "Hash",
	Dollar:       "Dollar",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
