package token

import "log"

type Kind int

const (
	EOF Kind = iota
	INVALID

	// Identifier-shaped tokens. The lexer classifies a scanned word against
	// the vocab sets before falling back to ID.
	ID
	HTML_ELEMENT
	CSS_PROPERTY

	// Keywords
	USING
	MIXIN
	ALIAS
	AS

	// Literals
	STRING
	CSS_PROPERTY_VALUE

	// Whitespace run kept as a candidate descendant combinator
	SPACE

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN

	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY

	// [
	OPEN_BRACKET
	// ]
	CLOSE_BRACKET

	// ,
	COMMA

	// ;
	SEMICOLON

	// .
	DOT
	// #
	SHARP
	// *
	STAR

	// +
	PLUS
	// ~
	TILDE
	// >
	GREATER

	// :
	SINGLE_COLON
	// ::
	DOUBLE_COLON

	// =
	EQUAL
	// ~=
	TILDE_EQUAL
	// *=
	STAR_EQUAL
	// |=
	PIPE_EQUAL
	// ^=
	CARET_EQUAL
	// $=
	DOLLAR_EQUAL
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"using": USING,
	"mixin": MIXIN,
	"alias": ALIAS,
	"as":    AS,
}

// COMBINATORS are the explicit combinator glyphs. The descendant combinator
// is a retained SPACE token and is handled separately.
var COMBINATORS map[Kind]bool = map[Kind]bool{
	PLUS:    true,
	TILDE:   true,
	GREATER: true,
}

// ATTRIBUTE_OPERATORS are the operators allowed inside [name op value].
var ATTRIBUTE_OPERATORS map[Kind]bool = map[Kind]bool{
	EQUAL:        true,
	TILDE_EQUAL:  true,
	STAR_EQUAL:   true,
	PIPE_EQUAL:   true,
	CARET_EQUAL:  true,
	DOLLAR_EQUAL: true,
}

// IDENTIFIERS are the kinds that can act as a plain name. A mixin or alias
// may be named after a known element or property, so all three qualify.
var IDENTIFIERS map[Kind]bool = map[Kind]bool{
	ID:           true,
	HTML_ELEMENT: true,
	CSS_PROPERTY: true,
}

// SELECTOR_BEGIN are the kinds that can open a compound selector. ID opens
// an alias reference or a custom element name.
var SELECTOR_BEGIN map[Kind]bool = map[Kind]bool{
	HTML_ELEMENT: true,
	ID:           true,
	DOT:          true,
	SHARP:        true,
	STAR:         true,
}

func (kind Kind) IsCombinator() bool {
	return COMBINATORS[kind]
}

func (kind Kind) IsAttributeOperator() bool {
	return ATTRIBUTE_OPERATORS[kind]
}

func (kind Kind) IsIdentifier() bool {
	return IDENTIFIERS[kind]
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "end of file"
	case INVALID:
		return "INVALID"
	case ID:
		return "identifier"
	case HTML_ELEMENT:
		return "html element"
	case CSS_PROPERTY:
		return "css property"
	case USING:
		return "using"
	case MIXIN:
		return "mixin"
	case ALIAS:
		return "alias"
	case AS:
		return "as"
	case STRING:
		return "string literal"
	case CSS_PROPERTY_VALUE:
		return "css property value"
	case SPACE:
		return " "
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	case OPEN_BRACKET:
		return "["
	case CLOSE_BRACKET:
		return "]"
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case DOT:
		return "."
	case SHARP:
		return "#"
	case STAR:
		return "*"
	case PLUS:
		return "+"
	case TILDE:
		return "~"
	case GREATER:
		return ">"
	case SINGLE_COLON:
		return ":"
	case DOUBLE_COLON:
		return "::"
	case EQUAL:
		return "="
	case TILDE_EQUAL:
		return "~="
	case STAR_EQUAL:
		return "*="
	case PIPE_EQUAL:
		return "|="
	case CARET_EQUAL:
		return "^="
	case DOLLAR_EQUAL:
		return "$="
	default:
		log.Fatalf("String() method not defined for the following token kind '%d'", kind)
	}
	return ""
}
