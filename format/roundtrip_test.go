package format

import (
	"testing"

	"github.com/XimeraProject/math-convert/ast"
	"github.com/XimeraProject/math-convert/parser"
)

// roundtripInputs is a corpus of text expressions whose trees must survive
// print-then-reparse in both notations.
var roundtripInputs = []string{
	"1 - x - 3",
	"1 + 2 + 3",
	"2*x",
	"2x y",
	"a/b/c",
	"c*(a/b)",
	"a/(b*c)",
	"-(a*b)",
	"-x^2",
	"(a^b)^c",
	"a^b^c",
	"a^(-b)",
	"2/3",
	"x!",
	"(a+b)!",
	"x'",
	"f'(x)",
	"x_1",
	"a_i_j",
	"x_(i+1)",
	"sin x",
	"sin^2 x",
	"cos(2x)",
	"sqrt(x+1)",
	"f(x, y)",
	"|x + 1|",
	"x = y",
	"x = y = z",
	"x < y <= z",
	"1 <= x <= 10",
	"x > y >= z",
	"x < y > z",
	"x != y",
	"x in A",
	"x notin A",
	"A subset B",
	"A union B intersect C",
	"A union (B intersect C)",
	"not x = y",
	"x = 1 and y = 2",
	"a and b or c",
	"(a or b) and c",
	"(1, 2)",
	"[1, 2]",
	"{x}",
	"{1, 2, 3}",
	"(1, 2]",
	"[1, 2)",
	"1, 2, 3",
	"theta + pi",
	"infinity",
}

// TestRoundTripText checks parse -> print -> reparse identity for the text
// notation.
func TestRoundTripText(t *testing.T) {
	p := parser.NewTextParser()
	printers := map[string]*TextPrinter{
		"ascii":   NewTextPrinter(),
		"unicode": NewTextPrinter(WithUnicodeSymbols(true)),
	}

	for name, pr := range printers {
		t.Run(name, func(t *testing.T) {
			for _, input := range roundtripInputs {
				t.Run(input, func(t *testing.T) {
					tree, err := p.Convert(input)
					if err != nil {
						t.Fatalf("parse: %v", err)
					}
					printed, err := pr.Convert(tree)
					if err != nil {
						t.Fatalf("print: %v", err)
					}
					again, err := p.Convert(printed)
					if err != nil {
						t.Fatalf("reparse %q: %v", printed, err)
					}
					if !ast.Equal(tree, again) {
						t.Errorf("round trip changed the tree:\n input: %s\n printed: %q\n reparsed: %s", tree, printed, again)
					}
				})
			}
		})
	}
}

// TestRoundTripLaTeX parses the text corpus, prints LaTeX, and reparses with
// the LaTeX parser.
func TestRoundTripLaTeX(t *testing.T) {
	text := parser.NewTextParser()
	latex := parser.NewLaTeXParser()
	pr := NewLaTeXPrinter()

	for _, input := range roundtripInputs {
		t.Run(input, func(t *testing.T) {
			tree, err := text.Convert(input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			printed, err := pr.Convert(tree)
			if err != nil {
				t.Fatalf("print: %v", err)
			}
			again, err := latex.Convert(printed)
			if err != nil {
				t.Fatalf("reparse %q: %v", printed, err)
			}
			if !ast.Equal(tree, again) {
				t.Errorf("round trip changed the tree:\n input: %s\n printed: %q\n reparsed: %s", tree, printed, again)
			}
		})
	}
}

// TestRoundTripLaTeXSource round-trips inputs only the LaTeX notation can
// express directly.
func TestRoundTripLaTeXSource(t *testing.T) {
	inputs := []string{
		`\frac{1}{2}`,
		`\frac{x+1}{x-1}`,
		`\sqrt{x}`,
		`\sqrt[3]{x}`,
		`\sin^2 x`,
		`\var{speed} + 1`,
		`\theta_0`,
		`\begin{pmatrix}1 & 2 \\ 3 & 4\end{pmatrix}`,
		`\begin{pmatrix}x+1 & 2x \\ 0 & 1\end{pmatrix}`,
		`\{1, 2\}`,
	}

	latex := parser.NewLaTeXParser()
	pr := NewLaTeXPrinter()

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree, err := latex.Convert(input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			printed, err := pr.Convert(tree)
			if err != nil {
				t.Fatalf("print: %v", err)
			}
			again, err := latex.Convert(printed)
			if err != nil {
				t.Fatalf("reparse %q: %v", printed, err)
			}
			if !ast.Equal(tree, again) {
				t.Errorf("round trip changed the tree:\n input: %s\n printed: %q\n reparsed: %s", tree, printed, again)
			}
		})
	}
}
