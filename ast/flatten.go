package ast

// flattened marks the tags whose nested same-tag children collapse into one
// flat node. These are the associative, order-preserving operators plus the
// list-likes; everything else keeps its parse shape.
var flattened = map[Tag]bool{
	TagAdd: true, TagMul: true, TagAnd: true, TagOr: true,
	TagTuple: true, TagArray: true, TagSet: true, TagList: true,
}

// Flatten rewrites every maximal run of nested same-tag associative nodes
// into a single flat node holding the leaves in left-to-right order. It is
// pure and idempotent; no other rewriting happens here.
func Flatten(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Tag {
	case TagNumber, TagSymbol:
		return n
	}
	args := make([]*Node, 0, len(n.Args))
	for _, arg := range n.Args {
		arg = Flatten(arg)
		if flattened[n.Tag] && arg.Tag == n.Tag {
			args = append(args, arg.Args...)
			continue
		}
		args = append(args, arg)
	}
	out := *n
	out.Args = args
	return &out
}
