// Package parser converts text and LaTeX math notation into the canonical
// AST. One grammar engine implements the operator-precedence chain; the two
// notations differ only in their token rule tables and leaf productions.
package parser

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInvalid

	// Literals and names
	TokenNumber
	TokenVar
	TokenVarMulti
	TokenInfinity

	// Arithmetic operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenUnderscore
	TokenBang
	TokenPrimeMark

	// Relational operators
	TokenEq
	TokenNe
	TokenLt
	TokenGt
	TokenLe
	TokenGe

	// Boolean operators
	TokenAnd
	TokenOr
	TokenNot

	// Set relations
	TokenIn
	TokenNotIn
	TokenNi
	TokenNotNi
	TokenSubset
	TokenNotSubset
	TokenSuperset
	TokenNotSuperset
	TokenUnion
	TokenIntersect

	// Punctuation
	TokenComma
	TokenPipe
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace

	// LaTeX-only
	TokenLatexCommand
	TokenFrac
	TokenSqrt
	TokenBeginEnv
	TokenEndEnv
	TokenSetLBrace
	TokenSetRBrace
	TokenAmp
	TokenRowSep
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:          "EOF",
	TokenInvalid:      "Invalid",
	TokenNumber:       "Number",
	TokenVar:          "Var",
	TokenVarMulti:     "VarMulti",
	TokenInfinity:     "Infinity",
	TokenPlus:         "+",
	TokenMinus:        "-",
	TokenStar:         "*",
	TokenSlash:        "/",
	TokenCaret:        "^",
	TokenUnderscore:   "_",
	TokenBang:         "!",
	TokenPrimeMark:    "'",
	TokenEq:           "=",
	TokenNe:           "!=",
	TokenLt:           "<",
	TokenGt:           ">",
	TokenLe:           "<=",
	TokenGe:           ">=",
	TokenAnd:          "and",
	TokenOr:           "or",
	TokenNot:          "not",
	TokenIn:           "in",
	TokenNotIn:        "notin",
	TokenNi:           "ni",
	TokenNotNi:        "notni",
	TokenSubset:       "subset",
	TokenNotSubset:    "notsubset",
	TokenSuperset:     "superset",
	TokenNotSuperset:  "notsuperset",
	TokenUnion:        "union",
	TokenIntersect:    "intersect",
	TokenComma:        ",",
	TokenPipe:         "|",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenLBracket:     "[",
	TokenRBracket:     "]",
	TokenLBrace:       "{",
	TokenRBrace:       "}",
	TokenLatexCommand: "LatexCommand",
	TokenFrac:         `\frac`,
	TokenSqrt:         `\sqrt`,
	TokenBeginEnv:     `\begin`,
	TokenEndEnv:       `\end`,
	TokenSetLBrace:    `\{`,
	TokenSetRBrace:    `\}`,
	TokenAmp:          "&",
	TokenRowSep:       `\\`,
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is one lexeme of the input. Pos is the byte offset of the first
// matched character, used for error locations.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text
}
