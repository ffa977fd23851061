package format

import (
	"strings"

	"github.com/XimeraProject/math-convert/ast"
	"github.com/XimeraProject/math-convert/parser"
)

// LaTeXPrinter renders canonical trees in LaTeX notation.
type LaTeXPrinter struct {
	matrixEnv string
	funcs     map[string]bool
}

type LaTeXOption func(*LaTeXPrinter)

// WithMatrixEnvironment selects the environment used for matrices, one of
// matrix, pmatrix or bmatrix.
func WithMatrixEnvironment(env string) LaTeXOption {
	return func(pr *LaTeXPrinter) {
		pr.matrixEnv = env
	}
}

// WithLaTeXFunctions names the symbols rendered as \name control sequences
// when applied. The set must agree with the parser configuration for output
// to re-parse into the same tree.
func WithLaTeXFunctions(names ...string) LaTeXOption {
	return func(pr *LaTeXPrinter) {
		pr.funcs = make(map[string]bool, len(names))
		for _, name := range names {
			pr.funcs[name] = true
		}
	}
}

// NewLaTeXPrinter builds a LaTeX printer. By default matrices render as
// pmatrix and the parser's default function vocabulary is used.
func NewLaTeXPrinter(opts ...LaTeXOption) *LaTeXPrinter {
	pr := &LaTeXPrinter{
		matrixEnv: "pmatrix",
		funcs:     make(map[string]bool),
	}
	for _, name := range parser.DefaultAppliedFunctions {
		pr.funcs[name] = true
	}
	for _, name := range parser.DefaultBareFunctions {
		pr.funcs[name] = true
	}
	for _, opt := range opts {
		opt(pr)
	}
	return pr
}

func (pr *LaTeXPrinter) Convert(n *ast.Node) (string, error) {
	if err := ast.Check(n); err != nil {
		return "", &InvalidTreeError{Err: err}
	}
	var b strings.Builder
	pr.print(&b, n, 0)
	return b.String(), nil
}

// latexPrecedence adjusts the shared table for LaTeX output: \frac braces
// both operands, so a quotient behaves like an atom on the page.
func latexPrecedence(n *ast.Node) int {
	if n.Tag == ast.TagDiv {
		return precAtom
	}
	return precedence(n)
}

func (pr *LaTeXPrinter) print(b *strings.Builder, n *ast.Node, min int) {
	if latexPrecedence(n) < min {
		b.WriteString(`\left(`)
		pr.print(b, n, 0)
		b.WriteString(`\right)`)
		return
	}
	switch n.Tag {
	case ast.TagNumber:
		b.WriteString(ast.FormatNumber(n.Value))
	case ast.TagSymbol:
		b.WriteString(pr.symbol(n.Name))
	case ast.TagAdd:
		pr.printAdd(b, n)
	case ast.TagNeg:
		b.WriteByte('-')
		pr.print(b, n.Args[0], precMul+1)
	case ast.TagMul:
		pr.printMul(b, n)
	case ast.TagDiv:
		b.WriteString(`\frac{`)
		pr.print(b, n.Args[0], 0)
		b.WriteString(`}{`)
		pr.print(b, n.Args[1], 0)
		b.WriteByte('}')
	case ast.TagPow:
		pr.print(b, n.Args[0], precPow+1)
		b.WriteString(`^{`)
		pr.print(b, n.Args[1], 0)
		b.WriteByte('}')
	case ast.TagUnion, ast.TagIntersect:
		pr.print(b, n.Args[0], precAdd)
		b.WriteString(" " + latexOps[n.Tag] + " ")
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
		b.WriteString(" " + latexOps[n.Tag] + " ")
		pr.print(b, n.Args[1], precRelation+1)
	case ast.TagLts, ast.TagGts:
		pr.printChain(b, n)
	case ast.TagNot:
		b.WriteString(`\neg `)
		pr.print(b, n.Args[0], precNot)
	case ast.TagAnd, ast.TagOr:
		op := " " + latexOps[n.Tag] + " "
		min := precAnd + 1
		if n.Tag == ast.TagOr {
			min = precOr + 1
		}
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(op)
			}
			pr.print(b, arg, min)
		}
	case ast.TagList:
		pr.printElements(b, n.Args)
	case ast.TagTuple, ast.TagVector:
		b.WriteString(`\left(`)
		pr.printElements(b, n.Args)
		b.WriteString(`\right)`)
	case ast.TagArray:
		b.WriteString(`\left[`)
		pr.printElements(b, n.Args)
		b.WriteString(`\right]`)
	case ast.TagSet:
		b.WriteString(`\{`)
		pr.printElements(b, n.Args)
		b.WriteString(`\}`)
	case ast.TagInterval:
		pr.printInterval(b, n)
	case ast.TagMatrix:
		pr.printMatrix(b, n)
	case ast.TagPrime:
		pr.print(b, n.Args[0], precPostfix)
		b.WriteByte('\'')
	case ast.TagSubscript:
		pr.print(b, n.Args[0], precPostfix)
		b.WriteString(`_{`)
		pr.print(b, n.Args[1], 0)
		b.WriteByte('}')
	case ast.TagApply:
		pr.printApply(b, n)
	}
}

func (pr *LaTeXPrinter) printAdd(b *strings.Builder, n *ast.Node) {
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

// printMul juxtaposes factors. A \cdot separates two factors whenever the
// right one starts with a digit, which would otherwise glue onto a number
// on the left.
func (pr *LaTeXPrinter) printMul(b *strings.Builder, n *ast.Node) {
	for i, arg := range n.Args {
		min := precMul
		if i > 0 {
			min = precMul + 1
		}
		var part strings.Builder
		pr.print(&part, arg, min)
		s := part.String()
		if i > 0 {
			if s != "" && s[0] >= '0' && s[0] <= '9' {
				b.WriteString(` \cdot `)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(s)
	}
}

func (pr *LaTeXPrinter) printChain(b *strings.Builder, n *ast.Node) {
	strictOp, slackOp := "<", `\le`
	if n.Tag == ast.TagGts {
		strictOp, slackOp = ">", `\ge`
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

func (pr *LaTeXPrinter) printElements(b *strings.Builder, args []*ast.Node) {
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		pr.print(b, arg, precOr)
	}
}

func (pr *LaTeXPrinter) printInterval(b *strings.Builder, n *ast.Node) {
	if n.Closed[0] {
		b.WriteString(`\left[`)
	} else {
		b.WriteString(`\left(`)
	}
	pr.printElements(b, n.Args)
	if n.Closed[1] {
		b.WriteString(`\right]`)
	} else {
		b.WriteString(`\right)`)
	}
}

func (pr *LaTeXPrinter) printMatrix(b *strings.Builder, n *ast.Node) {
	b.WriteString(`\begin{` + pr.matrixEnv + `}`)
	for r := 0; r < n.Rows; r++ {
		if r > 0 {
			b.WriteString(` \\ `)
		}
		for c := 0; c < n.Cols; c++ {
			if c > 0 {
				b.WriteString(" & ")
			}
			pr.print(b, n.Cell(r, c), precOr)
		}
	}
	b.WriteString(`\end{` + pr.matrixEnv + `}`)
}

func (pr *LaTeXPrinter) printApply(b *strings.Builder, n *ast.Node) {
	head, arg := n.Args[0], n.Args[1]
	if head.Tag == ast.TagSymbol {
		switch head.Name {
		case "factorial":
			pr.print(b, arg, precPostfix)
			b.WriteByte('!')
			return
		case "abs":
			b.WriteString(`\left|`)
			pr.print(b, arg, 0)
			b.WriteString(`\right|`)
			return
		case "sqrt":
			b.WriteString(`\sqrt{`)
			pr.print(b, arg, 0)
			b.WriteByte('}')
			return
		}
		if pr.funcs[head.Name] && len(head.Name) > 1 {
			b.WriteString(`\` + head.Name)
		} else {
			b.WriteString(head.Name)
		}
	} else {
		pr.print(b, head, precPostfix)
	}
	b.WriteString(`\left(`)
	if arg.Tag == ast.TagTuple {
		pr.printElements(b, arg.Args)
	} else {
		pr.print(b, arg, precOr)
	}
	b.WriteString(`\right)`)
}

// symbol renders a name: single letters stand alone, Greek names take a
// backslash, and any other multi-letter name is wrapped in \var{...} so it
// re-lexes as one identifier.
func (pr *LaTeXPrinter) symbol(name string) string {
	if name == "infinity" {
		return `\infty`
	}
	if len(name) == 1 {
		return name
	}
	if greekName(name) {
		return `\` + name
	}
	return `\var{` + name + `}`
}
