package testutil

import (
	"github.com/Kirk-KD/SuperStyleSheet/internal/ast"
	"github.com/Kirk-KD/SuperStyleSheet/internal/compiler"
	"github.com/Kirk-KD/SuperStyleSheet/internal/diagnostics"
	"github.com/Kirk-KD/SuperStyleSheet/internal/lexer"
	"github.com/Kirk-KD/SuperStyleSheet/internal/lexer/token"
	"github.com/Kirk-KD/SuperStyleSheet/internal/parser"
)

const DefaultFilename = "test.sss"

func NewLexer(src []byte, filename string) (*lexer.Lexer, *diagnostics.Collector) {
	if filename == "" {
		filename = DefaultFilename
	}
	collector := diagnostics.New()
	return lexer.New(filename, src, collector), collector
}

// Tokenize lexes src without the trailing EOF token, which keeps test
// tables short.
func Tokenize(src string) ([]*token.Token, error) {
	lex, _ := NewLexer([]byte(src), "")
	lex.KeepEOF = false
	return lex.Tokenize()
}

func ParseRoot(src string) (*ast.Root, *diagnostics.Collector, error) {
	lex, collector := NewLexer([]byte(src), "")
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, collector, err
	}
	p := parser.New(tokens, collector)
	root, err := p.Parse()
	return root, collector, err
}

func CompileString(src string, minified bool) (string, error) {
	root, collector, err := ParseRoot(src)
	if err != nil {
		return "", err
	}
	return compiler.New(root, collector).Compile(minified)
}
