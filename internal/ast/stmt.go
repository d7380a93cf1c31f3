package ast

import (
	"github.com/Kirk-KD/SuperStyleSheet/internal/lexer/token"
)

// Style is one style rule: a selector group, the mixin names pulled in with
// 'using' (may be nil), and a body.
type Style struct {
	Selector *SelectorGroup
	Mixins   []*token.Token
	Body     *StyleBody
}

// StyleBody holds the declared properties and the lexically nested child
// styles, both in source order.
type StyleBody struct {
	Properties []*Property
	Children   []*Style
}

// Property is one declaration: a CSS_PROPERTY token and its raw value text.
type Property struct {
	Name  *token.Token
	Value *token.Token
}

// MixinDef is a named, reusable property list. Only the top-level
// properties of the body are ever pulled into using-sites.
type MixinDef struct {
	Name *token.Token
	Body *StyleBody
}

// AliasDef binds a name to a selector group.
type AliasDef struct {
	Name     *token.Token
	Selector *SelectorGroup
}
