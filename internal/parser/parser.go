package parser

import (
	"fmt"

	"github.com/Kirk-KD/SuperStyleSheet/internal/ast"
	"github.com/Kirk-KD/SuperStyleSheet/internal/diagnostics"
	"github.com/Kirk-KD/SuperStyleSheet/internal/lexer/token"
)

type Parser struct {
	cursor    *cursor
	collector *diagnostics.Collector
}

// New builds a parser over an EOF-terminated token sequence.
func New(tokens []*token.Token, collector *diagnostics.Collector) *Parser {
	return &Parser{cursor: newCursor(tokens), collector: collector}
}

// Parse consumes the whole token sequence and returns the root of the tree.
// The first unexpected token aborts parsing; there is no recovery.
func (p *Parser) Parse() (*ast.Root, error) {
	root := new(ast.Root)

	for {
		tok := p.cursor.peek()
		if tok.Kind == token.EOF {
			break
		}

		switch {
		case beginsSelector(tok.Kind):
			style, err := p.parseStyle(nil)
			if err != nil {
				return nil, err
			}
			root.Statements = append(root.Statements, &ast.Node{Kind: ast.KIND_STYLE, Node: style})
		case tok.Kind == token.MIXIN:
			mixin, err := p.parseMixinDef()
			if err != nil {
				return nil, err
			}
			root.Statements = append(root.Statements, &ast.Node{Kind: ast.KIND_MIXIN_DEF, Node: mixin})
		case tok.Kind == token.ALIAS:
			alias, err := p.parseAliasDef()
			if err != nil {
				return nil, err
			}
			root.Statements = append(root.Statements, &ast.Node{Kind: ast.KIND_ALIAS_DEF, Node: alias})
		default:
			return nil, p.reportExpected("selector, 'mixin' or 'alias'", tok)
		}
	}

	return root, nil
}

// beginsSelector reports whether kind can open a compound selector,
// including the prefix-less forms [attr] and :pseudo.
func beginsSelector(kind token.Kind) bool {
	return token.SELECTOR_BEGIN[kind] ||
		kind == token.OPEN_BRACKET || kind == token.SINGLE_COLON
}

func (p *Parser) parseStyle(enclosing *ast.SelectorGroup) (*ast.Style, error) {
	style := new(ast.Style)

	selector, err := p.parseSelectorGroup(enclosing)
	if err != nil {
		return nil, err
	}
	style.Selector = selector

	if p.cursor.nextIs(token.USING) {
		p.cursor.skip() // using
		mixins, err := p.parseIdentifierList()
		if err != nil {
			return nil, err
		}
		style.Mixins = mixins
	}

	body, err := p.parseStyleBody(selector)
	if err != nil {
		return nil, err
	}
	style.Body = body

	return style, nil
}

func (p *Parser) parseStyleBody(selector *ast.SelectorGroup) (*ast.StyleBody, error) {
	body := new(ast.StyleBody)

	_, ok := p.expect(token.OPEN_CURLY)
	if !ok {
		return nil, p.reportExpected("'{'", p.cursor.peek())
	}

	for {
		tok := p.cursor.peek()
		if tok.Kind == token.CLOSE_CURLY {
			break
		}

		switch {
		case tok.Kind == token.CSS_PROPERTY:
			property, err := p.parseProperty()
			if err != nil {
				return nil, err
			}
			body.Properties = append(body.Properties, property)
		case tok.Kind.IsCombinator() || beginsSelector(tok.Kind):
			child, err := p.parseStyle(selector)
			if err != nil {
				return nil, err
			}
			body.Children = append(body.Children, child)
		default:
			return nil, p.reportExpected("property or nested selector", tok)
		}
	}

	p.cursor.skip() // }
	return body, nil
}

func (p *Parser) parseProperty() (*ast.Property, error) {
	property := new(ast.Property)

	name, ok := p.expect(token.CSS_PROPERTY)
	if !ok {
		return nil, p.reportExpected("css property", name)
	}
	property.Name = name

	if _, ok = p.expect(token.SINGLE_COLON); !ok {
		return nil, p.reportExpected("':'", p.cursor.peek())
	}

	value, ok := p.expect(token.CSS_PROPERTY_VALUE)
	if !ok {
		return nil, p.reportExpected("property value", value)
	}
	property.Value = value

	if _, ok = p.expect(token.SEMICOLON); !ok {
		return nil, p.reportExpected("';'", p.cursor.peek())
	}

	return property, nil
}

func (p *Parser) parseSelectorGroup(enclosing *ast.SelectorGroup) (*ast.SelectorGroup, error) {
	group := &ast.SelectorGroup{Enclosing: enclosing}

	selector, err := p.parseSingleSelector()
	if err != nil {
		return nil, err
	}
	group.Selectors = append(group.Selectors, selector)

	for p.cursor.nextIs(token.COMMA) {
		p.cursor.skip() // ,
		selector, err := p.parseSingleSelector()
		if err != nil {
			return nil, err
		}
		group.Selectors = append(group.Selectors, selector)
	}

	return group, nil
}

func (p *Parser) parseSingleSelector() (*ast.SingleSelector, error) {
	selector := new(ast.SingleSelector)

	// An explicit combinator may open a selector only inside a nested
	// block; it relates the selector to its enclosing group.
	if p.cursor.peek().Kind.IsCombinator() {
		selector.Leading = p.cursor.next()
	}

	first, err := p.parseCompoundSeq()
	if err != nil {
		return nil, err
	}
	selector.First = first

	for {
		tok := p.cursor.peek()
		// A surviving SPACE token is the implicit descendant combinator.
		if !tok.Kind.IsCombinator() && tok.Kind != token.SPACE {
			break
		}
		p.cursor.skip()

		seq, err := p.parseCompoundSeq()
		if err != nil {
			return nil, err
		}
		selector.Rest = append(selector.Rest, &ast.CombinatorSeq{Combinator: tok, Seq: seq})
	}

	if p.cursor.nextIs(token.DOUBLE_COLON) {
		pseudoElement, err := p.parsePseudoElement()
		if err != nil {
			return nil, err
		}
		selector.PseudoElement = pseudoElement
	}

	return selector, nil
}

func (p *Parser) parseCompoundSeq() (*ast.CompoundSeq, error) {
	seq := new(ast.CompoundSeq)

	for {
		kind := p.cursor.peek().Kind
		if !token.SELECTOR_BEGIN[kind] && kind != token.CSS_PROPERTY {
			break
		}
		seq.Tokens = append(seq.Tokens, p.cursor.next())
	}

	for p.cursor.nextIs(token.OPEN_BRACKET) {
		attr, err := p.parseAttrSelector()
		if err != nil {
			return nil, err
		}
		seq.Attrs = append(seq.Attrs, attr)
	}

	for p.cursor.nextIs(token.SINGLE_COLON) {
		pseudoClass, err := p.parsePseudoClass()
		if err != nil {
			return nil, err
		}
		seq.PseudoClasses = append(seq.PseudoClasses, pseudoClass)
	}

	return seq, nil
}

func (p *Parser) parseAttrSelector() (*ast.AttrSelector, error) {
	attr := new(ast.AttrSelector)

	p.cursor.skip() // [

	name, ok := p.expect(token.ID)
	if !ok {
		return nil, p.reportExpected("attribute name", name)
	}
	attr.Name = name

	if p.cursor.peek().Kind.IsAttributeOperator() {
		attr.Op = p.cursor.next()

		value := p.cursor.peek()
		if value.Kind != token.STRING && value.Kind != token.ID {
			return nil, p.reportExpected("string or identifier", value)
		}
		attr.Value = p.cursor.next()
	}

	if _, ok = p.expect(token.CLOSE_BRACKET); !ok {
		return nil, p.reportExpected("']'", p.cursor.peek())
	}

	return attr, nil
}

func (p *Parser) parsePseudoClass() (*ast.PseudoClass, error) {
	pseudo := new(ast.PseudoClass)

	p.cursor.skip() // :

	name, ok := p.expect(token.ID)
	if !ok {
		return nil, p.reportExpected("pseudo-class name", name)
	}
	pseudo.Name = name

	if p.cursor.nextIs(token.OPEN_BRACKET) {
		attr, err := p.parseAttrSelector()
		if err != nil {
			return nil, err
		}
		pseudo.Attrs = append(pseudo.Attrs, attr)
	}

	return pseudo, nil
}

func (p *Parser) parsePseudoElement() (*ast.PseudoElement, error) {
	pseudo := new(ast.PseudoElement)

	p.cursor.skip() // ::

	name, ok := p.expect(token.ID)
	if !ok {
		return nil, p.reportExpected("pseudo-element name", name)
	}
	pseudo.Name = name

	if p.cursor.nextIs(token.OPEN_BRACKET) {
		attr, err := p.parseAttrSelector()
		if err != nil {
			return nil, err
		}
		pseudo.Attrs = append(pseudo.Attrs, attr)
	}

	return pseudo, nil
}

func (p *Parser) parseMixinDef() (*ast.MixinDef, error) {
	mixin := new(ast.MixinDef)

	p.cursor.skip() // mixin

	name := p.cursor.peek()
	if !name.Kind.IsIdentifier() {
		return nil, p.reportExpected("mixin name", name)
	}
	mixin.Name = p.cursor.next()

	// A mixin body has no selector of its own; nested styles inside it are
	// parsed but never pulled into using-sites.
	body, err := p.parseStyleBody(nil)
	if err != nil {
		return nil, err
	}
	mixin.Body = body

	return mixin, nil
}

func (p *Parser) parseAliasDef() (*ast.AliasDef, error) {
	alias := new(ast.AliasDef)

	p.cursor.skip() // alias

	name := p.cursor.peek()
	if !name.Kind.IsIdentifier() {
		return nil, p.reportExpected("alias name", name)
	}
	alias.Name = p.cursor.next()

	if _, ok := p.expect(token.AS); !ok {
		return nil, p.reportExpected("'as'", p.cursor.peek())
	}

	selector, err := p.parseSelectorGroup(nil)
	if err != nil {
		return nil, err
	}
	alias.Selector = selector

	return alias, nil
}

func (p *Parser) parseIdentifierList() ([]*token.Token, error) {
	var identifiers []*token.Token

	name := p.cursor.peek()
	if !name.Kind.IsIdentifier() {
		return nil, p.reportExpected("mixin name", name)
	}
	identifiers = append(identifiers, p.cursor.next())

	for p.cursor.nextIs(token.COMMA) {
		p.cursor.skip() // ,
		name := p.cursor.peek()
		if !name.Kind.IsIdentifier() {
			return nil, p.reportExpected("mixin name", name)
		}
		identifiers = append(identifiers, p.cursor.next())
	}

	return identifiers, nil
}

func (p *Parser) expect(expectedKind token.Kind) (*token.Token, bool) {
	tok := p.cursor.peek()
	if tok.Kind != expectedKind {
		return tok, false
	}
	p.cursor.skip()
	return tok, true
}

func (p *Parser) reportExpected(expected string, tok *token.Token) error {
	pos := tok.Pos
	unexpectedToken := diagnostics.Diag{
		Message: fmt.Sprintf(
			"%s:%d:%d: expected %s, not %s",
			pos.Filename,
			pos.Line+1,
			pos.Column+1,
			expected,
			tok.Name(),
		),
	}
	p.collector.ReportAndSave(unexpectedToken)
	return diagnostics.PARSE_ERROR_FOUND
}
