package ast

import (
	"github.com/Kirk-KD/SuperStyleSheet/internal/lexer/token"
)

// SelectorGroup is a comma-separated list of single selectors. Enclosing is
// a non-owning reference to the selector group of the lexically enclosing
// style, nil at document root. The chain of Enclosing references is always
// acyclic; a group never knows its children.
type SelectorGroup struct {
	Selectors []*SingleSelector
	Enclosing *SelectorGroup
}

// SingleSelector is one selector of a group: an optional leading combinator
// (only when the selector opens a nested block with an explicit
// combinator), the first compound sequence, the (combinator, sequence)
// continuation pairs, and an optional trailing pseudo-element.
type SingleSelector struct {
	Leading       *token.Token
	First         *CompoundSeq
	Rest          []*CombinatorSeq
	PseudoElement *PseudoElement
}

// CombinatorSeq pairs a combinator token with the compound sequence that
// follows it. A SPACE combinator is the descendant relation.
type CombinatorSeq struct {
	Combinator *token.Token
	Seq        *CompoundSeq
}

// CompoundSeq is a run of selector tokens with no combinator between them
// (type/class/id/universal), plus its attribute selectors and pseudo-class
// annotations. A sequence opening with a bare identifier is an alias
// reference, resolved at emission.
type CompoundSeq struct {
	Tokens        []*token.Token
	Attrs         []*AttrSelector
	PseudoClasses []*PseudoClass
}

// AttrSelector is [name] or [name op value]. Op and Value are both nil for
// the bare existence test.
type AttrSelector struct {
	Name  *token.Token
	Op    *token.Token
	Value *token.Token
}

// PseudoClass is :name with at most one attached attribute selector.
type PseudoClass struct {
	Name  *token.Token
	Attrs []*AttrSelector
}

// PseudoElement is ::name with at most one attached attribute selector.
type PseudoElement struct {
	Name  *token.Token
	Attrs []*AttrSelector
}
