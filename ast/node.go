// Package ast defines the canonical expression tree shared by the parsers,
// the printers, and external consumers. Trees are immutable by convention:
// nothing in this module mutates a node after construction.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

type Tag int

const (
	TagInvalid Tag = iota

	// Leaves
	TagNumber
	TagSymbol

	// Arithmetic
	TagAdd
	TagMul
	TagDiv
	TagPow
	TagNeg

	// Relational
	TagEq
	TagNe
	TagLt
	TagGt
	TagLe
	TagGe
	TagLts
	TagGts

	// Boolean
	TagAnd
	TagOr
	TagNot

	// Collections
	TagTuple
	TagArray
	TagSet
	TagList
	TagVector
	TagInterval
	TagMatrix

	// Application and decoration
	TagApply
	TagPrime
	TagSubscript

	// Domain relations
	TagIn
	TagNotIn
	TagNi
	TagNotNi
	TagSubset
	TagNotSubset
	TagSuperset
	TagNotSuperset
	TagUnion
	TagIntersect
)

var tagNames = map[Tag]string{
	TagNumber:      "number",
	TagSymbol:      "symbol",
	TagAdd:         "+",
	TagMul:         "*",
	TagDiv:         "/",
	TagPow:         "^",
	TagNeg:         "-",
	TagEq:          "=",
	TagNe:          "ne",
	TagLt:          "<",
	TagGt:          ">",
	TagLe:          "le",
	TagGe:          "ge",
	TagLts:         "lts",
	TagGts:         "gts",
	TagAnd:         "and",
	TagOr:          "or",
	TagNot:         "not",
	TagTuple:       "tuple",
	TagArray:       "array",
	TagSet:         "set",
	TagList:        "list",
	TagVector:      "vector",
	TagInterval:    "interval",
	TagMatrix:      "matrix",
	TagApply:       "apply",
	TagPrime:       "prime",
	TagSubscript:   "_",
	TagIn:          "in",
	TagNotIn:       "notin",
	TagNi:          "ni",
	TagNotNi:       "notni",
	TagSubset:      "subset",
	TagNotSubset:   "notsubset",
	TagSuperset:    "superset",
	TagNotSuperset: "notsuperset",
	TagUnion:       "union",
	TagIntersect:   "intersect",
}

var tagsByName = map[string]Tag{}

func init() {
	for tag, name := range tagNames {
		tagsByName[name] = tag
	}
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "Unknown"
}

// LookupTag resolves a canonical tag name as it appears in the JSON
// interchange form. The leaf names "number" and "symbol" do not resolve;
// leaves are encoded as bare literals.
func LookupTag(name string) (Tag, bool) {
	tag, ok := tagsByName[name]
	if !ok || tag == TagNumber || tag == TagSymbol {
		return TagInvalid, false
	}
	return tag, true
}

// Node is one vertex of a canonical expression tree. Exactly one shape is
// populated per tag: Value for TagNumber, Name for TagSymbol, Args for
// everything else. Strict rides along on TagLts/TagGts, Closed on
// TagInterval, and Rows/Cols on TagMatrix (Args then holds the cells in
// row-major order).
type Node struct {
	Tag    Tag
	Value  float64
	Name   string
	Args   []*Node
	Strict []bool
	Closed [2]bool
	Rows   int
	Cols   int
}

// ArityError reports a constructor call whose operand count does not match
// the tag's arity class.
type ArityError struct {
	Tag Tag
	Got int
}

func (e *ArityError) Error() string {
	return "ast: " + strconv.Itoa(e.Got) + " operands for " + e.Tag.String()
}

func Number(v float64) *Node {
	return &Node{Tag: TagNumber, Value: v}
}

func Symbol(name string) *Node {
	return &Node{Tag: TagSymbol, Name: name}
}

// arity classes
var (
	variadicTags = map[Tag]bool{
		TagAdd: true, TagMul: true, TagAnd: true, TagOr: true, TagEq: true,
		TagTuple: true, TagArray: true, TagSet: true, TagList: true, TagVector: true,
	}
	binaryTags = map[Tag]bool{
		TagDiv: true, TagPow: true, TagSubscript: true, TagApply: true,
		TagNe: true, TagLt: true, TagGt: true, TagLe: true, TagGe: true,
		TagIn: true, TagNotIn: true, TagNi: true, TagNotNi: true,
		TagSubset: true, TagNotSubset: true, TagSuperset: true, TagNotSuperset: true,
		TagUnion: true, TagIntersect: true,
	}
	unaryTags = map[Tag]bool{
		TagNeg: true, TagNot: true, TagPrime: true,
	}
)

// Variadic reports whether tag holds an open-ended ordered operand sequence.
func Variadic(tag Tag) bool {
	return variadicTags[tag]
}

// Apply builds an operator node, checking the operand count against the
// tag's arity class. TagLts, TagGts, TagInterval, and TagMatrix carry extra
// payload and have their own constructors.
func Apply(tag Tag, args ...*Node) (*Node, error) {
	switch {
	case variadicTags[tag]:
		// A set containing one element is still a set: {x} does not unwrap.
		min := 2
		if tag == TagSet {
			min = 1
		}
		if len(args) < min {
			return nil, &ArityError{Tag: tag, Got: len(args)}
		}
	case binaryTags[tag]:
		if len(args) != 2 {
			return nil, &ArityError{Tag: tag, Got: len(args)}
		}
	case unaryTags[tag]:
		if len(args) != 1 {
			return nil, &ArityError{Tag: tag, Got: len(args)}
		}
	default:
		return nil, &ArityError{Tag: tag, Got: len(args)}
	}
	return &Node{Tag: tag, Args: args}, nil
}

// MustApply is Apply for operand counts known correct at the call site.
func MustApply(tag Tag, args ...*Node) *Node {
	n, err := Apply(tag, args...)
	if err != nil {
		panic(err)
	}
	return n
}

// Chain builds a same-direction chained relation (TagLts or TagGts) over
// three or more operands. strict[i] records whether the i-th relation in the
// run was strict, so len(strict) must be len(operands)-1.
func Chain(tag Tag, operands []*Node, strict []bool) (*Node, error) {
	if tag != TagLts && tag != TagGts {
		return nil, &ArityError{Tag: tag, Got: len(operands)}
	}
	if len(operands) < 3 || len(strict) != len(operands)-1 {
		return nil, &ArityError{Tag: tag, Got: len(operands)}
	}
	return &Node{Tag: tag, Args: operands, Strict: strict}, nil
}

// Interval builds an interval with the given endpoints; closedLo and
// closedHi record whether each endpoint is included.
func Interval(lo, hi *Node, closedLo, closedHi bool) *Node {
	return &Node{Tag: TagInterval, Args: []*Node{lo, hi}, Closed: [2]bool{closedLo, closedHi}}
}

// Matrix builds a rows×cols matrix from row-major cells.
func Matrix(rows, cols int, cells []*Node) (*Node, error) {
	if rows < 1 || cols < 1 || len(cells) != rows*cols {
		return nil, &ArityError{Tag: TagMatrix, Got: len(cells)}
	}
	return &Node{Tag: TagMatrix, Args: cells, Rows: rows, Cols: cols}, nil
}

// Cell returns the matrix entry at row r, column c (zero-based).
func (n *Node) Cell(r, c int) *Node {
	return n.Args[r*n.Cols+c]
}

// Equal reports deep structural equality.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagNumber:
		return a.Value == b.Value
	case TagSymbol:
		return a.Name == b.Name
	}
	if len(a.Args) != len(b.Args) || len(a.Strict) != len(b.Strict) {
		return false
	}
	if a.Closed != b.Closed || a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := range a.Strict {
		if a.Strict[i] != b.Strict[i] {
			return false
		}
	}
	for i := range a.Args {
		if !Equal(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

// FormatNumber renders a numeric value the way both parsers can read it back.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String renders the tree as a compact s-expression, e.g. (+ 1 (- x) 3).
// It is meant for tests and diagnostics, not for interchange.
func (n *Node) String() string {
	var b strings.Builder
	n.sexpr(&b)
	return b.String()
}

func (n *Node) sexpr(b *strings.Builder) {
	switch n.Tag {
	case TagNumber:
		b.WriteString(FormatNumber(n.Value))
		return
	case TagSymbol:
		b.WriteString(n.Name)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Tag.String())
	switch n.Tag {
	case TagLts, TagGts:
		b.WriteString(" (tuple")
		for _, arg := range n.Args {
			b.WriteByte(' ')
			arg.sexpr(b)
		}
		b.WriteString(") (tuple")
		for _, s := range n.Strict {
			fmt.Fprintf(b, " %t", s)
		}
		b.WriteByte(')')
	case TagInterval:
		for _, arg := range n.Args {
			b.WriteByte(' ')
			arg.sexpr(b)
		}
		fmt.Fprintf(b, " (tuple %t %t)", n.Closed[0], n.Closed[1])
	case TagMatrix:
		fmt.Fprintf(b, " (tuple %d %d)", n.Rows, n.Cols)
		for r := 0; r < n.Rows; r++ {
			b.WriteString(" (tuple")
			for c := 0; c < n.Cols; c++ {
				b.WriteByte(' ')
				n.Cell(r, c).sexpr(b)
			}
			b.WriteByte(')')
		}
	default:
		for _, arg := range n.Args {
			b.WriteByte(' ')
			arg.sexpr(b)
		}
	}
	b.WriteByte(')')
}
