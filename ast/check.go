package ast

// Check verifies the arity invariants over a whole tree. Parsed trees always
// satisfy them; trees decoded from external collaborators may not, and the
// printers refuse such trees rather than render garbage.
func Check(n *Node) error {
	if n == nil {
		return &ArityError{Tag: TagInvalid, Got: 0}
	}
	switch n.Tag {
	case TagNumber, TagSymbol:
		if len(n.Args) != 0 {
			return &ArityError{Tag: n.Tag, Got: len(n.Args)}
		}
		return nil
	case TagLts, TagGts:
		if len(n.Args) < 3 || len(n.Strict) != len(n.Args)-1 {
			return &ArityError{Tag: n.Tag, Got: len(n.Args)}
		}
	case TagInterval:
		if len(n.Args) != 2 {
			return &ArityError{Tag: n.Tag, Got: len(n.Args)}
		}
	case TagMatrix:
		if n.Rows < 1 || n.Cols < 1 || len(n.Args) != n.Rows*n.Cols {
			return &ArityError{Tag: n.Tag, Got: len(n.Args)}
		}
	default:
		if _, err := Apply(n.Tag, n.Args...); err != nil {
			return err
		}
	}
	for _, arg := range n.Args {
		if err := Check(arg); err != nil {
			return err
		}
	}
	return nil
}
