package parser

import (
	"errors"
	"testing"

	"github.com/Kirk-KD/SuperStyleSheet/internal/ast"
	"github.com/Kirk-KD/SuperStyleSheet/internal/diagnostics"
	"github.com/Kirk-KD/SuperStyleSheet/internal/lexer"
	"github.com/Kirk-KD/SuperStyleSheet/internal/lexer/token"
)

func parseRoot(t *testing.T, src string) *ast.Root {
	t.Helper()
	root, err := parseRootErr(src)
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	return root
}

func parseRootErr(src string) (*ast.Root, error) {
	collector := diagnostics.New()
	lex := lexer.New("test.sss", []byte(src), collector)
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}
	return New(tokens, collector).Parse()
}

func styleAt(t *testing.T, root *ast.Root, i int) *ast.Style {
	t.Helper()
	if i >= len(root.Statements) {
		t.Fatalf("expected at least %d statements, got %d", i+1, len(root.Statements))
	}
	node := root.Statements[i]
	if node.Kind != ast.KIND_STYLE {
		t.Fatalf("expected KIND_STYLE, got %v", node.Kind)
	}
	return node.Node.(*ast.Style)
}

func TestStyle(t *testing.T) {
	tests := []struct {
		input string
		check func(t *testing.T, style *ast.Style)
	}{
		{
			input: ".my-class {}",
			check: func(t *testing.T, style *ast.Style) {
				if len(style.Selector.Selectors) != 1 {
					t.Fatalf("expected one selector, got %d", len(style.Selector.Selectors))
				}
				seq := style.Selector.Selectors[0].First
				if len(seq.Tokens) != 2 {
					t.Fatalf("expected two sequence tokens, got %d", len(seq.Tokens))
				}
				if seq.Tokens[0].Kind != token.DOT || seq.Tokens[1].Name() != "my-class" {
					t.Errorf("unexpected sequence %v", seq.Tokens)
				}
				if len(style.Body.Properties) != 0 || len(style.Body.Children) != 0 {
					t.Errorf("expected empty body")
				}
			},
		},
		{
			input: ".a, #b, h3 {}",
			check: func(t *testing.T, style *ast.Style) {
				if len(style.Selector.Selectors) != 3 {
					t.Fatalf("expected three selectors, got %d", len(style.Selector.Selectors))
				}
			},
		},
		{
			input: "div > p + span {}",
			check: func(t *testing.T, style *ast.Style) {
				selector := style.Selector.Selectors[0]
				if len(selector.Rest) != 2 {
					t.Fatalf("expected two continuation pairs, got %d", len(selector.Rest))
				}
				if selector.Rest[0].Combinator.Kind != token.GREATER {
					t.Errorf("expected '>', got %q", selector.Rest[0].Combinator.Kind)
				}
				if selector.Rest[1].Combinator.Kind != token.PLUS {
					t.Errorf("expected '+', got %q", selector.Rest[1].Combinator.Kind)
				}
			},
		},
		{
			input: "img h2 {}",
			check: func(t *testing.T, style *ast.Style) {
				selector := style.Selector.Selectors[0]
				if len(selector.Rest) != 1 {
					t.Fatalf("expected one continuation pair, got %d", len(selector.Rest))
				}
				if selector.Rest[0].Combinator.Kind != token.SPACE {
					t.Errorf("expected descendant space, got %q", selector.Rest[0].Combinator.Kind)
				}
			},
		},
		{
			input: `a[href$=".pdf"]::before {}`,
			check: func(t *testing.T, style *ast.Style) {
				selector := style.Selector.Selectors[0]
				attrs := selector.First.Attrs
				if len(attrs) != 1 {
					t.Fatalf("expected one attribute selector, got %d", len(attrs))
				}
				if attrs[0].Name.Name() != "href" {
					t.Errorf("expected attribute 'href', got %q", attrs[0].Name.Name())
				}
				if attrs[0].Op.Kind != token.DOLLAR_EQUAL {
					t.Errorf("expected '$=', got %q", attrs[0].Op.Kind)
				}
				if attrs[0].Value.Kind != token.STRING || attrs[0].Value.Name() != ".pdf" {
					t.Errorf("unexpected value token %v", attrs[0].Value)
				}
				if selector.PseudoElement == nil || selector.PseudoElement.Name.Name() != "before" {
					t.Errorf("expected pseudo-element 'before'")
				}
			},
		},
		{
			input: "[onclick] {}",
			check: func(t *testing.T, style *ast.Style) {
				seq := style.Selector.Selectors[0].First
				if len(seq.Tokens) != 0 {
					t.Errorf("expected no sequence tokens, got %v", seq.Tokens)
				}
				if len(seq.Attrs) != 1 || seq.Attrs[0].Op != nil {
					t.Errorf("expected one bare attribute selector")
				}
			},
		},
		{
			input: "div:hover:first-child {}",
			check: func(t *testing.T, style *ast.Style) {
				seq := style.Selector.Selectors[0].First
				if len(seq.PseudoClasses) != 2 {
					t.Fatalf("expected two pseudo-classes, got %d", len(seq.PseudoClasses))
				}
				if seq.PseudoClasses[1].Name.Name() != "first-child" {
					t.Errorf("unexpected pseudo-class %q", seq.PseudoClasses[1].Name.Name())
				}
			},
		},
		{
			input: "div { color: red; }",
			check: func(t *testing.T, style *ast.Style) {
				if len(style.Body.Properties) != 1 {
					t.Fatalf("expected one property, got %d", len(style.Body.Properties))
				}
				property := style.Body.Properties[0]
				if property.Name.Name() != "color" {
					t.Errorf("expected property 'color', got %q", property.Name.Name())
				}
				if string(property.Value.Lexeme) != "red" {
					t.Errorf("expected value 'red', got %q", property.Value.Lexeme)
				}
			},
		},
		{
			input: ".card using rounded, shadow {}",
			check: func(t *testing.T, style *ast.Style) {
				if len(style.Mixins) != 2 {
					t.Fatalf("expected two mixin names, got %d", len(style.Mixins))
				}
				if style.Mixins[0].Name() != "rounded" || style.Mixins[1].Name() != "shadow" {
					t.Errorf("unexpected mixin names %v", style.Mixins)
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			root := parseRoot(t, test.input)
			test.check(t, styleAt(t, root, 0))
		})
	}
}

func TestNestedStyleRecordsEnclosingGroup(t *testing.T) {
	root := parseRoot(t, "div { p { color: red; } > span {} }")
	style := styleAt(t, root, 0)

	if len(style.Body.Children) != 2 {
		t.Fatalf("expected two nested styles, got %d", len(style.Body.Children))
	}

	for _, child := range style.Body.Children {
		if child.Selector.Enclosing != style.Selector {
			t.Errorf("expected child to reference the enclosing selector group")
		}
	}

	second := style.Body.Children[1]
	leading := second.Selector.Selectors[0].Leading
	if leading == nil || leading.Kind != token.GREATER {
		t.Errorf("expected leading '>' combinator, got %v", leading)
	}
	if style.Selector.Enclosing != nil {
		t.Errorf("expected root-level group to have no enclosing reference")
	}
}

func TestMixinDef(t *testing.T) {
	root := parseRoot(t, "mixin bold { font-weight: bold; }")

	node := root.Statements[0]
	if node.Kind != ast.KIND_MIXIN_DEF {
		t.Fatalf("expected KIND_MIXIN_DEF, got %v", node.Kind)
	}
	mixin := node.Node.(*ast.MixinDef)
	if mixin.Name.Name() != "bold" {
		t.Errorf("expected name 'bold', got %q", mixin.Name.Name())
	}
	if len(mixin.Body.Properties) != 1 {
		t.Errorf("expected one property, got %d", len(mixin.Body.Properties))
	}
}

func TestAliasDef(t *testing.T) {
	root := parseRoot(t, "alias btn as .button, #submit")

	node := root.Statements[0]
	if node.Kind != ast.KIND_ALIAS_DEF {
		t.Fatalf("expected KIND_ALIAS_DEF, got %v", node.Kind)
	}
	alias := node.Node.(*ast.AliasDef)
	if alias.Name.Name() != "btn" {
		t.Errorf("expected name 'btn', got %q", alias.Name.Name())
	}
	if len(alias.Selector.Selectors) != 2 {
		t.Errorf("expected two selectors, got %d", len(alias.Selector.Selectors))
	}
	if alias.Selector.Enclosing != nil {
		t.Errorf("expected alias selector group to have no enclosing reference")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unexpected token at root", "} div {}"},
		{"missing body", ".a color: red;"},
		{"missing semicolon", "div { color: red }"},
		{"missing close bracket", "a[href {}"},
		{"bad attribute name", "a[=x] {}"},
		{"missing alias selector keyword", "alias btn .button"},
		{"bad mixin name", "mixin { color: red; }"},
		{"body junk", "div { , }"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseRootErr(test.input)
			if !errors.Is(err, diagnostics.PARSE_ERROR_FOUND) {
				t.Fatalf("expected PARSE_ERROR_FOUND, got %v", err)
			}
		})
	}
}
