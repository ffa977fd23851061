// Package format renders canonical trees back into text or LaTeX notation.
// Both printers are precedence-aware: parentheses appear exactly where
// re-parsing the output would otherwise yield a different tree.
package format

import (
	"github.com/XimeraProject/math-convert/ast"
)

// Printer renders a canonical tree into one notation.
type Printer interface {
	Convert(n *ast.Node) (string, error)
}

// InvalidTreeError reports a tree that violates the canonical-form arity
// rules and therefore cannot be rendered.
type InvalidTreeError struct {
	Err error
}

func (e *InvalidTreeError) Error() string {
	return "invalid tree: " + e.Err.Error()
}

func (e *InvalidTreeError) Unwrap() error { return e.Err }

// Operator precedence levels. A child whose level is below the minimum its
// position requires is wrapped in parentheses.
const (
	precList     = 5
	precOr       = 10
	precAnd      = 20
	precNot      = 30
	precRelation = 40
	precAdd      = 50
	precNeg      = 55
	precMul      = 60
	precPow      = 70
	precPostfix  = 80
	precAtom     = 100
)

func precedence(n *ast.Node) int {
	switch n.Tag {
	case ast.TagNumber:
		// A negative literal renders with a leading minus, which binds like
		// unary negation when the output is parsed back.
		if n.Value < 0 {
			return precNeg
		}
		return precAtom
	case ast.TagList:
		return precList
	case ast.TagOr:
		return precOr
	case ast.TagAnd:
		return precAnd
	case ast.TagNot:
		return precNot
	case ast.TagEq, ast.TagNe, ast.TagLt, ast.TagGt, ast.TagLe, ast.TagGe,
		ast.TagLts, ast.TagGts,
		ast.TagIn, ast.TagNotIn, ast.TagNi, ast.TagNotNi,
		ast.TagSubset, ast.TagNotSubset, ast.TagSuperset, ast.TagNotSuperset:
		return precRelation
	case ast.TagAdd, ast.TagUnion, ast.TagIntersect:
		return precAdd
	case ast.TagNeg:
		return precNeg
	case ast.TagMul, ast.TagDiv:
		return precMul
	case ast.TagPow:
		return precPow
	case ast.TagPrime, ast.TagSubscript:
		return precPostfix
	case ast.TagApply:
		// Applications printed as postfix marks sit at postfix level; every
		// other application renders as a closed f(...) form.
		if head := n.Args[0]; head.Tag == ast.TagSymbol && head.Name == "factorial" {
			return precPostfix
		}
		return precAtom
	default:
		return precAtom
	}
}
