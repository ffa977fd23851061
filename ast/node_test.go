package ast

import (
	"testing"
)

func TestApplyArity(t *testing.T) {
	one := []*Node{Number(1)}
	two := []*Node{Number(1), Number(2)}
	three := []*Node{Number(1), Number(2), Number(3)}

	tests := []struct {
		name    string
		tag     Tag
		args    []*Node
		wantErr bool
	}{
		{"add two", TagAdd, two, false},
		{"add three", TagAdd, three, false},
		{"add one", TagAdd, one, true},
		{"set one", TagSet, one, false},
		{"set none", TagSet, nil, true},
		{"div two", TagDiv, two, false},
		{"div three", TagDiv, three, true},
		{"neg one", TagNeg, one, false},
		{"neg two", TagNeg, two, true},
		{"apply two", TagApply, two, false},
		{"subscript one", TagSubscript, one, true},
		{"number is not an operator", TagNumber, one, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(tt.tag, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Apply(%v, %d args) error = %v, wantErr %v", tt.tag, len(tt.args), err, tt.wantErr)
			}
		})
	}
}

func TestChain(t *testing.T) {
	operands := []*Node{Symbol("x"), Symbol("y"), Symbol("z")}

	if _, err := Chain(TagLts, operands, []bool{true, false}); err != nil {
		t.Errorf("Chain over three operands: %v", err)
	}
	if _, err := Chain(TagLts, operands[:2], []bool{true}); err == nil {
		t.Error("Chain over two operands should fail")
	}
	if _, err := Chain(TagLts, operands, []bool{true}); err == nil {
		t.Error("Chain with short strictness vector should fail")
	}
	if _, err := Chain(TagAdd, operands, []bool{true, false}); err == nil {
		t.Error("Chain with a non-chain tag should fail")
	}
}

func TestMatrix(t *testing.T) {
	cells := []*Node{Number(1), Number(2), Number(3), Number(4)}

	m, err := Matrix(2, 2, cells)
	if err != nil {
		t.Fatalf("Matrix(2, 2): %v", err)
	}
	if got := m.Cell(1, 0); !Equal(got, Number(3)) {
		t.Errorf("Cell(1, 0) = %v, want 3", got)
	}

	if _, err := Matrix(2, 3, cells); err == nil {
		t.Error("Matrix with wrong cell count should fail")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"numbers", Number(1), Number(1), true},
		{"numbers differ", Number(1), Number(2), false},
		{"symbols", Symbol("x"), Symbol("x"), true},
		{"symbol vs number", Symbol("x"), Number(1), false},
		{
			"same shape",
			MustApply(TagAdd, Number(1), MustApply(TagNeg, Symbol("x"))),
			MustApply(TagAdd, Number(1), MustApply(TagNeg, Symbol("x"))),
			true,
		},
		{
			"different operand order",
			MustApply(TagAdd, Number(1), Symbol("x")),
			MustApply(TagAdd, Symbol("x"), Number(1)),
			false,
		},
		{
			"interval closedness",
			Interval(Number(1), Number(2), false, true),
			Interval(Number(1), Number(2), true, true),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			"flat sum",
			MustApply(TagAdd, Number(1), MustApply(TagNeg, Symbol("x")), Number(3)),
			"(+ 1 (- x) 3)",
		},
		{
			"chain",
			mustChain(TagLts, []*Node{Symbol("x"), Symbol("y"), Symbol("z")}, []bool{true, false}),
			"(lts (tuple x y z) (tuple true false))",
		},
		{
			"interval",
			Interval(Number(1), Number(2), false, true),
			"(interval 1 2 (tuple false true))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupTag(t *testing.T) {
	if tag, ok := LookupTag("+"); !ok || tag != TagAdd {
		t.Errorf(`LookupTag("+") = %v, %v`, tag, ok)
	}
	if _, ok := LookupTag("number"); ok {
		t.Error("leaf tags must not resolve as operators")
	}
	if _, ok := LookupTag("bogus"); ok {
		t.Error("unknown names must not resolve")
	}
}

func mustChain(tag Tag, operands []*Node, strict []bool) *Node {
	n, err := Chain(tag, operands, strict)
	if err != nil {
		panic(err)
	}
	return n
}
