package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/XimeraProject/math-convert/ast"
	"github.com/XimeraProject/math-convert/parser"
)

func TestMarshalTree(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1-x-3", `["+",1,["-","x"],["-",3]]`},
		{"2x", `["*",2,"x"]`},
		{"sin x", `["apply","sin","x"]`},
		{"x < y <= z", `["lts",["tuple","x","y","z"],["tuple",true,false]]`},
		{"(1,2]", `["interval",["tuple",1,2],["tuple",false,true]]`},
		{"x_1", `["_","x",1]`},
		{"x", `"x"`},
		{"42", `42`},
	}

	p := parser.NewTextParser()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree, err := p.Convert(tt.input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			data, err := MarshalTree(tree)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("MarshalTree = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestMarshalMatrix(t *testing.T) {
	m, err := ast.Matrix(2, 2, []*ast.Node{
		ast.Number(1), ast.Number(2),
		ast.Number(3), ast.Number(4),
	})
	if err != nil {
		t.Fatal(err)
	}

	data, err := MarshalTree(m)
	if err != nil {
		t.Fatal(err)
	}
	want := `["matrix",["tuple",2,2],["tuple",["tuple",1,2],["tuple",3,4]]]`
	if string(data) != want {
		t.Errorf("MarshalTree = %s, want %s", data, want)
	}
}

// TestJSONRoundTrip encodes parsed trees and decodes them back.
func TestJSONRoundTrip(t *testing.T) {
	inputs := []string{
		"1 - x - 3",
		"sin^2 x",
		"x < y <= z",
		"x > y >= z",
		"(1, 2]",
		"f(x, y)",
		"{1, 2, 3}",
		"not x = y and a or b",
	}

	p := parser.NewTextParser()
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree, err := p.Convert(input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			var buf bytes.Buffer
			if err := NewJSONEncoder(&buf).Encode(tree); err != nil {
				t.Fatalf("encode: %v", err)
			}
			again, err := NewJSONDecoder(&buf).Decode()
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !ast.Equal(tree, again) {
				t.Errorf("round trip changed the tree:\n in: %s\n out: %s", tree, again)
			}
		})
	}
}

func TestJSONRoundTripMatrix(t *testing.T) {
	m, err := ast.Matrix(2, 3, []*ast.Node{
		ast.Number(1), ast.Number(2), ast.Number(3),
		ast.Symbol("x"), ast.Symbol("y"), ast.Symbol("z"),
	})
	if err != nil {
		t.Fatal(err)
	}

	data, err := MarshalTree(m)
	if err != nil {
		t.Fatal(err)
	}
	again, err := UnmarshalTree(data)
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(m, again) {
		t.Errorf("round trip changed the matrix: %s vs %s", m, again)
	}
}

func TestUnmarshalTreeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown operator", `["bogus",1,2]`},
		{"wrong arity", `["/",1,2,3]`},
		{"empty operator", `[]`},
		{"non-string head", `[1,2]`},
		{"null value", `null`},
		{"chain with non-bool strictness", `["lts",["tuple",1,2,3],["tuple",1,0]]`},
		{"chain with short operands", `["lts",["tuple",1,2],["tuple",true]]`},
		{"interval without flags", `["interval",["tuple",1,2]]`},
		{"matrix with ragged rows", `["matrix",["tuple",2,2],["tuple",["tuple",1,2],["tuple",3]]]`},
		{"leaf with operands is not expressible", `["number",1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalTree([]byte(tt.input)); err == nil {
				t.Errorf("UnmarshalTree(%s) succeeded, want error", tt.input)
			}
		})
	}
}

func TestUnmarshalRejectsInvalidJSON(t *testing.T) {
	if _, err := NewJSONDecoder(strings.NewReader(`["+",1`)).Decode(); err == nil {
		t.Error("truncated JSON should fail")
	}
}
