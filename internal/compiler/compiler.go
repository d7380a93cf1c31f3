// Package compiler resolves mixin and alias references and emits CSS text
// from a parsed tree. Symbol tables are rebuilt on every Compile call and
// discarded afterward; the tree itself is never mutated.
package compiler

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/Kirk-KD/SuperStyleSheet/internal/ast"
	"github.com/Kirk-KD/SuperStyleSheet/internal/diagnostics"
	"github.com/Kirk-KD/SuperStyleSheet/internal/lexer/token"
)

type Compiler struct {
	root      *ast.Root
	collector *diagnostics.Collector

	mixins  map[string]*ast.MixinDef
	aliases map[string]*ast.AliasDef
	// alias names being expanded right now, to catch reference cycles
	resolving map[string]bool
}

func New(root *ast.Root, collector *diagnostics.Collector) *Compiler {
	return &Compiler{root: root, collector: collector}
}

// Compile renders the whole tree as CSS, minified or pretty. The first
// semantic fault aborts with no partial output.
func (c *Compiler) Compile(minified bool) (string, error) {
	err := c.collectSymbols()
	if err != nil {
		return "", err
	}
	return c.emitRoot(minified)
}

// collectSymbols is the first pass: one linear scan filling the mixin and
// alias tables. Both tables start fresh on every call.
func (c *Compiler) collectSymbols() error {
	c.mixins = make(map[string]*ast.MixinDef)
	c.aliases = make(map[string]*ast.AliasDef)
	c.resolving = make(map[string]bool)

	for _, statement := range c.root.Statements {
		switch statement.Kind {
		case ast.KIND_STYLE:
			// nothing to collect
		case ast.KIND_MIXIN_DEF:
			mixin := statement.Node.(*ast.MixinDef)
			name := mixin.Name.Name()
			if _, exists := c.mixins[name]; exists {
				return c.reportSemantic(mixin.Name, "duplicate mixin definition '%s'", name)
			}
			c.mixins[name] = mixin
		case ast.KIND_ALIAS_DEF:
			alias := statement.Node.(*ast.AliasDef)
			name := alias.Name.Name()
			if _, exists := c.aliases[name]; exists {
				return c.reportSemantic(alias.Name, "duplicate alias definition '%s'", name)
			}
			c.aliases[name] = alias
		default:
			log.Fatalf("unknown statement kind: %v", statement.Kind)
		}
	}

	return nil
}

func (c *Compiler) emitRoot(minified bool) (string, error) {
	var blocks []string

	for _, statement := range c.root.Statements {
		switch statement.Kind {
		case ast.KIND_STYLE:
			block, err := c.emitStyle(statement.Node.(*ast.Style), minified)
			if err != nil {
				return "", err
			}
			blocks = append(blocks, block)
		case ast.KIND_MIXIN_DEF, ast.KIND_ALIAS_DEF:
			// definitions emit nothing themselves
		default:
			log.Fatalf("unknown statement kind: %v", statement.Kind)
		}
	}

	sort.Strings(blocks)
	if minified {
		return strings.Join(blocks, ""), nil
	}
	return strings.Join(blocks, "\n"), nil
}

// emitStyle renders one style rule and, recursively, every style nested
// inside it. Sibling blocks and property lists are sorted so the output is
// deterministic regardless of traversal order.
func (c *Compiler) emitStyle(style *ast.Style, minified bool) (string, error) {
	selectors, err := c.expandSelectorGroup(style.Selector, minified)
	if err != nil {
		return "", err
	}

	properties := renderProperties(style.Body, minified)
	for _, name := range style.Mixins {
		mixin, ok := c.mixins[name.Name()]
		if !ok {
			return "", c.reportSemantic(name, "undefined mixin '%s'", name.Name())
		}
		properties = append(properties, renderProperties(mixin.Body, minified)...)
	}
	sort.Strings(properties)

	var block string
	if minified {
		block = strings.Join(selectors, ",")
		if len(properties) > 0 {
			block += "{" + strings.Join(properties, ";") + "}"
		} else {
			block += "{}"
		}
	} else {
		block = strings.Join(selectors, ", ")
		if len(properties) > 0 {
			block += " {\n" + strings.Join(properties, ";\n") + "\n}"
		} else {
			block += " {}"
		}
	}

	blocks := []string{block}
	for _, child := range style.Body.Children {
		childBlock, err := c.emitStyle(child, minified)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, childBlock)
	}
	sort.Strings(blocks)

	if minified {
		return strings.Join(blocks, ""), nil
	}
	return strings.Join(blocks, "\n"), nil
}

func renderProperties(body *ast.StyleBody, minified bool) []string {
	var properties []string
	for _, property := range body.Properties {
		name := property.Name.Name()
		value := string(property.Value.Lexeme)
		if minified {
			properties = append(properties, name+":"+value)
		} else {
			properties = append(properties, "  "+name+": "+value)
		}
	}
	return properties
}

// expandSelectorGroup returns the fully qualified selector strings of a
// group. A group nested inside another expands to the Cartesian product of
// the enclosing group's expansion and its own selectors, computed bottom-up
// from the outermost ancestor.
func (c *Compiler) expandSelectorGroup(group *ast.SelectorGroup, minified bool) ([]string, error) {
	var own []string
	for _, selector := range group.Selectors {
		expanded, err := c.renderSingleSelector(selector, minified)
		if err != nil {
			return nil, err
		}
		own = append(own, expanded...)
	}

	if group.Enclosing == nil {
		return own, nil
	}

	parents, err := c.expandSelectorGroup(group.Enclosing, minified)
	if err != nil {
		return nil, err
	}

	var combined []string
	for _, parent := range parents {
		for _, child := range own {
			combined = append(combined, joinNested(parent, child, minified))
		}
	}
	return combined, nil
}

// joinNested glues a parent selector string to a nested one. The pairing
// gets exactly one separating space unless the child opens with an explicit
// combinator glyph, which carries its own spacing: surrounded by spaces in
// pretty mode, bare in minified mode.
func joinNested(parent, child string, minified bool) string {
	if child != "" && (child[0] == '+' || child[0] == '~' || child[0] == '>') {
		if minified {
			return parent + child
		}
	}
	return parent + " " + child
}

func (c *Compiler) renderSingleSelector(selector *ast.SingleSelector, minified bool) ([]string, error) {
	results, err := c.renderCompoundSeq(selector.First, minified)
	if err != nil {
		return nil, err
	}

	if selector.Leading != nil {
		glyph := selector.Leading.Name()
		if !minified {
			glyph += " "
		}
		for i := range results {
			results[i] = glyph + results[i]
		}
	}

	for _, pair := range selector.Rest {
		var separator string
		if pair.Combinator.Kind == token.SPACE {
			separator = " "
		} else if minified {
			separator = pair.Combinator.Name()
		} else {
			separator = " " + pair.Combinator.Name() + " "
		}

		expanded, err := c.renderCompoundSeq(pair.Seq, minified)
		if err != nil {
			return nil, err
		}

		var next []string
		for _, left := range results {
			for _, right := range expanded {
				next = append(next, left+separator+right)
			}
		}
		results = next
	}

	if selector.PseudoElement != nil {
		suffix := renderPseudoElement(selector.PseudoElement, minified)
		for i := range results {
			results[i] += suffix
		}
	}

	return results, nil
}

// renderCompoundSeq renders one compound sequence. A sequence opening with
// a bare identifier that names a defined alias expands to every selector of
// the aliased group, multiplying the result. Any other identifier renders
// literally, so custom element names pass through untouched.
func (c *Compiler) renderCompoundSeq(seq *ast.CompoundSeq, minified bool) ([]string, error) {
	results := []string{""}
	tokens := seq.Tokens

	if len(tokens) > 0 && tokens[0].Kind == token.ID {
		name := tokens[0].Name()
		if alias, ok := c.aliases[name]; ok {
			if c.resolving[name] {
				return nil, c.reportSemantic(tokens[0], "circular alias reference '%s'", name)
			}

			c.resolving[name] = true
			expanded, err := c.expandSelectorGroup(alias.Selector, minified)
			delete(c.resolving, name)
			if err != nil {
				return nil, err
			}

			results = expanded
			tokens = tokens[1:]
		}
	}

	var rest strings.Builder
	for _, tok := range tokens {
		rest.WriteString(tok.Name())
	}
	for _, attr := range seq.Attrs {
		rest.WriteString(renderAttrSelector(attr, minified))
	}
	for _, pseudoClass := range seq.PseudoClasses {
		rest.WriteString(renderPseudoClass(pseudoClass, minified))
	}

	suffix := rest.String()
	for i := range results {
		results[i] += suffix
	}
	return results, nil
}

func renderAttrSelector(attr *ast.AttrSelector, minified bool) string {
	name := attr.Name.Name()
	if attr.Op == nil {
		return "[" + name + "]"
	}

	value := attr.Value.Name()
	if attr.Value.Kind == token.STRING {
		value = "\"" + value + "\""
	}
	if minified {
		return "[" + name + attr.Op.Name() + value + "]"
	}
	return "[" + name + " " + attr.Op.Name() + " " + value + "]"
}

func renderPseudoClass(pseudo *ast.PseudoClass, minified bool) string {
	css := ":" + pseudo.Name.Name()
	for _, attr := range pseudo.Attrs {
		css += renderAttrSelector(attr, minified)
	}
	return css
}

func renderPseudoElement(pseudo *ast.PseudoElement, minified bool) string {
	css := "::" + pseudo.Name.Name()
	for _, attr := range pseudo.Attrs {
		css += renderAttrSelector(attr, minified)
	}
	return css
}

func (c *Compiler) reportSemantic(tok *token.Token, format string, args ...any) error {
	pos := tok.Pos
	diag := diagnostics.Diag{
		Message: fmt.Sprintf(
			"%s:%d:%d: %s",
			pos.Filename,
			pos.Line+1,
			pos.Column+1,
			fmt.Sprintf(format, args...),
		),
	}
	c.collector.ReportAndSave(diag)
	return diagnostics.SEMANTIC_ERROR_FOUND
}
