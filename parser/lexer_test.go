package parser

import "testing"

func lex(t *testing.T, rules []Rule, ws, input string) []Token {
	t.Helper()
	tok := NewTokenizer(rules, ws)
	tok.SetInput(input)
	var out []Token
	for {
		tk := tok.Advance()
		out = append(out, tk)
		if tk.Kind == TokenEOF {
			return out
		}
	}
}

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tk := range tokens {
		out[i] = tk.Kind
	}
	return out
}

func TestTextLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"42", []TokenKind{TokenNumber, TokenEOF}},
		{"3.14", []TokenKind{TokenNumber, TokenEOF}},
		{".5", []TokenKind{TokenNumber, TokenEOF}},
		{"x", []TokenKind{TokenVar, TokenEOF}},
		{"xyz", []TokenKind{TokenVar, TokenEOF}},
		{"+ - * / ^ _ ! '", []TokenKind{TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenCaret, TokenUnderscore, TokenBang, TokenPrimeMark, TokenEOF}},
		{"= != < <= > >=", []TokenKind{TokenEq, TokenNe, TokenLt, TokenLe, TokenGt, TokenGe, TokenEOF}},
		{"and or not", []TokenKind{TokenAnd, TokenOr, TokenNot, TokenEOF}},
		{"in notin ni notni", []TokenKind{TokenIn, TokenNotIn, TokenNi, TokenNotNi, TokenEOF}},
		{"subset notsubset superset notsuperset", []TokenKind{TokenSubset, TokenNotSubset, TokenSuperset, TokenNotSuperset, TokenEOF}},
		{"union intersect", []TokenKind{TokenUnion, TokenIntersect, TokenEOF}},
		{"( ) [ ] { } , |", []TokenKind{TokenLParen, TokenRParen, TokenLBracket, TokenRBracket, TokenLBrace, TokenRBrace, TokenComma, TokenPipe, TokenEOF}},
		{"infinity", []TokenKind{TokenInfinity, TokenEOF}},
		{"oo", []TokenKind{TokenInfinity, TokenEOF}},
		{"∞", []TokenKind{TokenInfinity, TokenEOF}},
		{"≤ ≥ ≠", []TokenKind{TokenLe, TokenGe, TokenNe, TokenEOF}},
		{"∈ ∉ ∪ ∩", []TokenKind{TokenIn, TokenNotIn, TokenUnion, TokenIntersect, TokenEOF}},
		{"θ", []TokenKind{TokenVarMulti, TokenEOF}},
		// "in" embedded in an identifier stays an identifier
		{"inner", []TokenKind{TokenVar, TokenEOF}},
		{"#", []TokenKind{TokenInvalid, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := kinds(lex(t, textRules, `\s`, tt.input))
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestTextLexerLiterals(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"**", "^"},
		{"≤", "<="},
		{"·", "*"},
		{"−", "-"},
		{"oo", "infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := lex(t, textRules, `\s`, tt.input)[0]
			if tok.Text != tt.text {
				t.Errorf("Text = %q, want %q", tok.Text, tt.text)
			}
		})
	}
}

func TestLatexLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{`\frac`, []TokenKind{TokenFrac, TokenEOF}},
		{`\dfrac`, []TokenKind{TokenFrac, TokenEOF}},
		{`\sqrt`, []TokenKind{TokenSqrt, TokenEOF}},
		{`\begin{pmatrix}`, []TokenKind{TokenBeginEnv, TokenEOF}},
		{`\end{pmatrix}`, []TokenKind{TokenEndEnv, TokenEOF}},
		{`\{ \}`, []TokenKind{TokenSetLBrace, TokenSetRBrace, TokenEOF}},
		{`{ }`, []TokenKind{TokenLBrace, TokenRBrace, TokenEOF}},
		{`\\`, []TokenKind{TokenRowSep, TokenEOF}},
		{"&", []TokenKind{TokenAmp, TokenEOF}},
		{`\cdot`, []TokenKind{TokenStar, TokenEOF}},
		{`\le \ge \ne`, []TokenKind{TokenLe, TokenGe, TokenNe, TokenEOF}},
		{`\in \notin \ni`, []TokenKind{TokenIn, TokenNotIn, TokenNi, TokenEOF}},
		{`\not\in`, []TokenKind{TokenNotIn, TokenEOF}},
		{`\cup \cap`, []TokenKind{TokenUnion, TokenIntersect, TokenEOF}},
		{`\wedge \vee \neg`, []TokenKind{TokenAnd, TokenOr, TokenNot, TokenEOF}},
		{`\infty`, []TokenKind{TokenInfinity, TokenEOF}},
		{`\theta`, []TokenKind{TokenVarMulti, TokenEOF}},
		{`\var{speed}`, []TokenKind{TokenVarMulti, TokenEOF}},
		{`\sin`, []TokenKind{TokenLatexCommand, TokenEOF}},
		{"xy", []TokenKind{TokenVar, TokenVar, TokenEOF}},
		// commands directly followed by digits or subscripts keep their kinds
		{`\frac1x`, []TokenKind{TokenFrac, TokenNumber, TokenVar, TokenEOF}},
		{`\theta_0`, []TokenKind{TokenVarMulti, TokenUnderscore, TokenNumber, TokenEOF}},
		{`x\le5`, []TokenKind{TokenVar, TokenLe, TokenNumber, TokenEOF}},
		// spacing control sequences vanish
		{`a \, b \quad c`, []TokenKind{TokenVar, TokenVar, TokenVar, TokenEOF}},
		{`\left( x \right)`, []TokenKind{TokenLParen, TokenVar, TokenRParen, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := kinds(lex(t, latexRules, latexWhitespace, tt.input))
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestTokenizerPositions(t *testing.T) {
	tokens := lex(t, textRules, `\s`, "x + 12")
	wantPos := []int{0, 2, 4, 6}
	for i, tk := range tokens {
		if tk.Pos != wantPos[i] {
			t.Errorf("token %d (%v): Pos = %d, want %d", i, tk, tk.Pos, wantPos[i])
		}
	}
}

func TestTokenizerUnput(t *testing.T) {
	tok := NewTokenizer(textRules, `\s`)
	tok.SetInput("xyz")
	first := tok.Advance()
	if first.Kind != TokenVar || first.Text != "xyz" {
		t.Fatalf("first token = %v", first)
	}

	tok.Unput("x y z")
	var texts []string
	for {
		tk := tok.Advance()
		if tk.Kind == TokenEOF {
			break
		}
		texts = append(texts, tk.Text)
	}
	if len(texts) != 3 || texts[0] != "x" || texts[1] != "y" || texts[2] != "z" {
		t.Errorf("re-lexed tokens = %v, want [x y z]", texts)
	}
}
