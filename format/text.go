package format

import (
	"strings"

	"github.com/XimeraProject/math-convert/ast"
)

// TextPrinter renders canonical trees in plain-text notation.
type TextPrinter struct {
	unicode bool
}

type TextOption func(*TextPrinter)

// WithUnicodeSymbols switches the text output to Unicode operator glyphs
// and Greek letters. The ASCII spellings remain the default.
func WithUnicodeSymbols(enabled bool) TextOption {
	return func(pr *TextPrinter) {
		pr.unicode = enabled
	}
}

// NewTextPrinter builds a text printer with canonical ASCII output.
func NewTextPrinter(opts ...TextOption) *TextPrinter {
	pr := &TextPrinter{}
	for _, opt := range opts {
		opt(pr)
	}
	return pr
}

func (pr *TextPrinter) Convert(n *ast.Node) (string, error) {
	if err := ast.Check(n); err != nil {
		return "", &InvalidTreeError{Err: err}
	}
	var b strings.Builder
	pr.print(&b, n, 0)
	return b.String(), nil
}

func (pr *TextPrinter) op(tag ast.Tag) string {
	if pr.unicode {
		return textOpsUnicode[tag]
	}
	return textOpsASCII[tag]
}

// print renders n into b. min is the lowest precedence the surrounding
// position accepts without parentheses; anything looser is wrapped.
func (pr *TextPrinter) print(b *strings.Builder, n *ast.Node, min int) {
	if precedence(n) < min {
		b.WriteByte('(')
		pr.print(b, n, 0)
		b.WriteByte(')')
		return
	}
	switch n.Tag {
	case ast.TagNumber:
		b.WriteString(ast.FormatNumber(n.Value))
	case ast.TagSymbol:
		pr.symbol(b, n.Name)
	case ast.TagAdd:
		pr.printAdd(b, n)
	case ast.TagNeg:
		b.WriteByte('-')
		pr.print(b, n.Args[0], precMul+1)
	case ast.TagMul:
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteByte('*')
				pr.print(b, arg, precMul+1)
				continue
			}
			pr.print(b, arg, precMul)
		}
	case ast.TagDiv:
		pr.print(b, n.Args[0], precMul)
		b.WriteByte('/')
		pr.print(b, n.Args[1], precMul+1)
	case ast.TagPow:
		pr.print(b, n.Args[0], precPow+1)
		b.WriteByte('^')
		pr.print(b, n.Args[1], precPow)
	case ast.TagUnion, ast.TagIntersect:
		pr.print(b, n.Args[0], precAdd)
		b.WriteString(" " + pr.op(n.Tag) + " ")
		pr.print(b, n.Args[1], precAdd+1)
	case ast.TagEq:
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(" = ")
			}
			pr.print(b, arg, precRelation+1)
		}
	case ast.TagNe, ast.TagLt, ast.TagGt, ast.TagLe, ast.TagGe,
		ast.TagIn, ast.TagNotIn, ast.TagNi, ast.TagNotNi,
		ast.TagSubset, ast.TagNotSubset, ast.TagSuperset, ast.TagNotSuperset:
		pr.print(b, n.Args[0], precRelation+1)
		b.WriteString(" " + pr.op(n.Tag) + " ")
		pr.print(b, n.Args[1], precRelation+1)
	case ast.TagLts, ast.TagGts:
		pr.printChain(b, n)
	case ast.TagNot:
		b.WriteString("not ")
		pr.print(b, n.Args[0], precNot)
	case ast.TagAnd:
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(" and ")
			}
			pr.print(b, arg, precAnd+1)
		}
	case ast.TagOr:
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(" or ")
			}
			pr.print(b, arg, precOr+1)
		}
	case ast.TagList:
		pr.printElements(b, n.Args)
	case ast.TagTuple, ast.TagVector:
		b.WriteByte('(')
		pr.printElements(b, n.Args)
		b.WriteByte(')')
	case ast.TagArray:
		b.WriteByte('[')
		pr.printElements(b, n.Args)
		b.WriteByte(']')
	case ast.TagSet:
		b.WriteByte('{')
		pr.printElements(b, n.Args)
		b.WriteByte('}')
	case ast.TagInterval:
		pr.printInterval(b, n)
	case ast.TagMatrix:
		pr.printMatrix(b, n)
	case ast.TagPrime:
		pr.print(b, n.Args[0], precPostfix)
		b.WriteByte('\'')
	case ast.TagSubscript:
		pr.print(b, n.Args[0], precPostfix)
		b.WriteByte('_')
		pr.print(b, n.Args[1], precAtom)
	case ast.TagApply:
		pr.printApply(b, n)
	}
}

// printAdd merges negated operands into subtraction, so the flattened sum
// ["+", 1, ["-", "x"], ["-", 3]] reads 1 - x - 3.
func (pr *TextPrinter) printAdd(b *strings.Builder, n *ast.Node) {
	for i, arg := range n.Args {
		if arg.Tag == ast.TagNeg {
			if i == 0 {
				b.WriteByte('-')
			} else {
				b.WriteString(" - ")
			}
			pr.print(b, arg.Args[0], precAdd+1)
			continue
		}
		if i > 0 {
			b.WriteString(" + ")
		}
		min := precAdd
		if i > 0 {
			min = precAdd + 1
		}
		pr.print(b, arg, min)
	}
}

func (pr *TextPrinter) printChain(b *strings.Builder, n *ast.Node) {
	strictOp, slackOp := "<", "<="
	if pr.unicode {
		slackOp = "≤"
	}
	if n.Tag == ast.TagGts {
		strictOp, slackOp = ">", ">="
		if pr.unicode {
			slackOp = "≥"
		}
	}
	for i, arg := range n.Args {
		if i > 0 {
			op := slackOp
			if n.Strict[i-1] {
				op = strictOp
			}
			b.WriteString(" " + op + " ")
		}
		pr.print(b, arg, precRelation+1)
	}
}

func (pr *TextPrinter) printElements(b *strings.Builder, args []*ast.Node) {
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		pr.print(b, arg, precOr)
	}
}

func (pr *TextPrinter) printInterval(b *strings.Builder, n *ast.Node) {
	if n.Closed[0] {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	pr.printElements(b, n.Args)
	if n.Closed[1] {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
}

// printMatrix renders a matrix as nested arrays. The text notation has no
// matrix literal, so the rendering re-parses as an array of row arrays.
func (pr *TextPrinter) printMatrix(b *strings.Builder, n *ast.Node) {
	b.WriteByte('[')
	for r := 0; r < n.Rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for c := 0; c < n.Cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			pr.print(b, n.Cell(r, c), precOr)
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
}

func (pr *TextPrinter) printApply(b *strings.Builder, n *ast.Node) {
	head, arg := n.Args[0], n.Args[1]
	if head.Tag == ast.TagSymbol {
		switch head.Name {
		case "factorial":
			pr.print(b, arg, precPostfix)
			b.WriteByte('!')
			return
		case "abs":
			b.WriteByte('|')
			pr.print(b, arg, 0)
			b.WriteByte('|')
			return
		}
	}
	pr.print(b, head, precPostfix)
	b.WriteByte('(')
	if arg.Tag == ast.TagTuple {
		pr.printElements(b, arg.Args)
	} else {
		pr.print(b, arg, precOr)
	}
	b.WriteByte(')')
}

func (pr *TextPrinter) symbol(b *strings.Builder, name string) {
	if name == "infinity" {
		if pr.unicode {
			b.WriteString("∞")
		} else {
			b.WriteString("infinity")
		}
		return
	}
	if pr.unicode {
		if glyph, ok := greekGlyphs[name]; ok {
			b.WriteString(glyph)
			return
		}
	}
	b.WriteString(name)
}
