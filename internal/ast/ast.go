// Package ast defines the abstract syntax tree for the style sheet
// language. Trees are built once by the parser and never mutated afterward.
package ast

import "fmt"

type NodeKind int

const (
	KIND_STYLE NodeKind = iota
	KIND_MIXIN_DEF
	KIND_ALIAS_DEF
)

// Node is the closed union over the statement kinds a root may hold. The
// emitter switches exhaustively on Kind.
type Node struct {
	Kind NodeKind
	Node any
}

func (n *Node) IsStyle() bool {
	return n.Kind == KIND_STYLE
}

func (n *Node) String() string {
	switch n.Kind {
	case KIND_STYLE:
		return "KIND_STYLE"
	case KIND_MIXIN_DEF:
		return "KIND_MIXIN_DEF"
	case KIND_ALIAS_DEF:
		return "KIND_ALIAS_DEF"
	default:
		return fmt.Sprintf("Unknown Node Kind: %v", n.Kind)
	}
}

// Root is the result of one parse: the ordered statement list of a
// compilation unit.
type Root struct {
	Statements []*Node
}
