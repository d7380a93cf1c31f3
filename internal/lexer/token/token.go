package token

import "fmt"

type Token struct {
	Lexeme []byte
	Kind   Kind
	Pos    Pos
}

func New(lexeme []byte, kind Kind, pos Pos) *Token {
	return &Token{Lexeme: lexeme, Kind: kind, Pos: pos}
}

// Name returns the token's source text: the lexeme when the lexer stored
// one, otherwise the fixed glyph of its kind.
func (token *Token) Name() string {
	if token.Lexeme != nil {
		return string(token.Lexeme)
	}
	return token.Kind.String()
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %s | %s", string(token.Lexeme), token.Kind, token.Pos)
}
