package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/XimeraProject/math-convert/ast"
)

// The JSON interchange form writes a tree as nested arrays: operators are
// arrays headed by the tag name, numbers are JSON numbers, symbols are JSON
// strings. The payload-carrying shapes group their extras into tuples:
//
//	["lts", ["tuple", x, y, z], ["tuple", true, false]]
//	["interval", ["tuple", lo, hi], ["tuple", false, true]]
//	["matrix", ["tuple", 2, 2], ["tuple", ["tuple", a, b], ["tuple", c, d]]]

// JSONEncoder writes trees in the interchange form.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(n *ast.Node) error {
	text, err := MarshalTree(n)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

// MarshalTree renders a tree in the interchange form.
func MarshalTree(n *ast.Node) ([]byte, error) {
	if err := ast.Check(n); err != nil {
		return nil, &InvalidTreeError{Err: err}
	}
	return json.Marshal(encodeValue(n))
}

func encodeValue(n *ast.Node) any {
	switch n.Tag {
	case ast.TagNumber:
		return n.Value
	case ast.TagSymbol:
		return n.Name
	case ast.TagLts, ast.TagGts:
		operands := make([]any, 0, len(n.Args)+1)
		operands = append(operands, "tuple")
		for _, arg := range n.Args {
			operands = append(operands, encodeValue(arg))
		}
		strict := make([]any, 0, len(n.Strict)+1)
		strict = append(strict, "tuple")
		for _, s := range n.Strict {
			strict = append(strict, s)
		}
		return []any{n.Tag.String(), operands, strict}
	case ast.TagInterval:
		return []any{
			n.Tag.String(),
			[]any{"tuple", encodeValue(n.Args[0]), encodeValue(n.Args[1])},
			[]any{"tuple", n.Closed[0], n.Closed[1]},
		}
	case ast.TagMatrix:
		rows := make([]any, 0, n.Rows+1)
		rows = append(rows, "tuple")
		for r := 0; r < n.Rows; r++ {
			row := make([]any, 0, n.Cols+1)
			row = append(row, "tuple")
			for c := 0; c < n.Cols; c++ {
				row = append(row, encodeValue(n.Cell(r, c)))
			}
			rows = append(rows, row)
		}
		return []any{
			n.Tag.String(),
			[]any{"tuple", float64(n.Rows), float64(n.Cols)},
			rows,
		}
	default:
		out := make([]any, 0, len(n.Args)+1)
		out = append(out, n.Tag.String())
		for _, arg := range n.Args {
			out = append(out, encodeValue(arg))
		}
		return out
	}
}

// JSONDecoder reads trees in the interchange form, validating structure and
// arity as it goes.
type JSONDecoder struct {
	dec *json.Decoder
}

func NewJSONDecoder(r io.Reader) *JSONDecoder {
	return &JSONDecoder{dec: json.NewDecoder(r)}
}

func (d *JSONDecoder) Decode() (*ast.Node, error) {
	var v any
	if err := d.dec.Decode(&v); err != nil {
		return nil, err
	}
	return decodeValue(v)
}

// UnmarshalTree parses the interchange form into a tree.
func UnmarshalTree(data []byte) (*ast.Node, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return decodeValue(v)
}

func decodeValue(v any) (*ast.Node, error) {
	switch v := v.(type) {
	case float64:
		return ast.Number(v), nil
	case string:
		return ast.Symbol(v), nil
	case []any:
		return decodeOperator(v)
	}
	return nil, fmt.Errorf("json tree: unsupported value %T", v)
}

func decodeOperator(v []any) (*ast.Node, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("json tree: empty operator array")
	}
	name, ok := v[0].(string)
	if !ok {
		return nil, fmt.Errorf("json tree: operator name must be a string, got %T", v[0])
	}
	switch name {
	case "lts", "gts":
		return decodeChain(name, v)
	case "interval":
		return decodeInterval(v)
	case "matrix":
		return decodeMatrix(v)
	}
	tag, ok := ast.LookupTag(name)
	if !ok {
		return nil, fmt.Errorf("json tree: unknown operator %q", name)
	}
	args := make([]*ast.Node, 0, len(v)-1)
	for _, item := range v[1:] {
		arg, err := decodeValue(item)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	n, err := ast.Apply(tag, args...)
	if err != nil {
		return nil, fmt.Errorf("json tree: %w", err)
	}
	return n, nil
}

// decodeTuple unwraps a ["tuple", ...] payload array into its raw items.
func decodeTuple(v any, what string) ([]any, error) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 || items[0] != "tuple" {
		return nil, fmt.Errorf("json tree: %s must be a tuple", what)
	}
	return items[1:], nil
}

func decodeChain(name string, v []any) (*ast.Node, error) {
	if len(v) != 3 {
		return nil, fmt.Errorf("json tree: %s takes an operand tuple and a strictness tuple", name)
	}
	rawOps, err := decodeTuple(v[1], name+" operands")
	if err != nil {
		return nil, err
	}
	rawStrict, err := decodeTuple(v[2], name+" strictness")
	if err != nil {
		return nil, err
	}
	operands := make([]*ast.Node, 0, len(rawOps))
	for _, item := range rawOps {
		arg, err := decodeValue(item)
		if err != nil {
			return nil, err
		}
		operands = append(operands, arg)
	}
	strict := make([]bool, 0, len(rawStrict))
	for _, item := range rawStrict {
		s, ok := item.(bool)
		if !ok {
			return nil, fmt.Errorf("json tree: %s strictness must hold booleans", name)
		}
		strict = append(strict, s)
	}
	tag := ast.TagLts
	if name == "gts" {
		tag = ast.TagGts
	}
	n, err := ast.Chain(tag, operands, strict)
	if err != nil {
		return nil, fmt.Errorf("json tree: %w", err)
	}
	return n, nil
}

func decodeInterval(v []any) (*ast.Node, error) {
	if len(v) != 3 {
		return nil, fmt.Errorf("json tree: interval takes an endpoint tuple and a closedness tuple")
	}
	ends, err := decodeTuple(v[1], "interval endpoints")
	if err != nil {
		return nil, err
	}
	closed, err := decodeTuple(v[2], "interval closedness")
	if err != nil {
		return nil, err
	}
	if len(ends) != 2 || len(closed) != 2 {
		return nil, fmt.Errorf("json tree: interval takes two endpoints and two flags")
	}
	lo, err := decodeValue(ends[0])
	if err != nil {
		return nil, err
	}
	hi, err := decodeValue(ends[1])
	if err != nil {
		return nil, err
	}
	closedLo, okLo := closed[0].(bool)
	closedHi, okHi := closed[1].(bool)
	if !okLo || !okHi {
		return nil, fmt.Errorf("json tree: interval closedness must hold booleans")
	}
	return ast.Interval(lo, hi, closedLo, closedHi), nil
}

func decodeMatrix(v []any) (*ast.Node, error) {
	if len(v) != 3 {
		return nil, fmt.Errorf("json tree: matrix takes a dimension tuple and a row tuple")
	}
	dims, err := decodeTuple(v[1], "matrix dimensions")
	if err != nil {
		return nil, err
	}
	if len(dims) != 2 {
		return nil, fmt.Errorf("json tree: matrix takes two dimensions")
	}
	rowsF, okR := dims[0].(float64)
	colsF, okC := dims[1].(float64)
	if !okR || !okC || rowsF != float64(int(rowsF)) || colsF != float64(int(colsF)) {
		return nil, fmt.Errorf("json tree: matrix dimensions must be integers")
	}
	rows, cols := int(rowsF), int(colsF)
	rawRows, err := decodeTuple(v[2], "matrix rows")
	if err != nil {
		return nil, err
	}
	if len(rawRows) != rows {
		return nil, fmt.Errorf("json tree: matrix declares %d rows, has %d", rows, len(rawRows))
	}
	cells := make([]*ast.Node, 0, rows*cols)
	for _, rawRow := range rawRows {
		row, err := decodeTuple(rawRow, "matrix row")
		if err != nil {
			return nil, err
		}
		if len(row) != cols {
			return nil, fmt.Errorf("json tree: matrix declares %d columns, row has %d", cols, len(row))
		}
		for _, item := range row {
			cell, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
	}
	m, err := ast.Matrix(rows, cols, cells)
	if err != nil {
		return nil, fmt.Errorf("json tree: %w", err)
	}
	return m, nil
}
