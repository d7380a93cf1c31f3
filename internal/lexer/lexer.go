package lexer

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/Kirk-KD/SuperStyleSheet/internal/diagnostics"
	"github.com/Kirk-KD/SuperStyleSheet/internal/lexer/token"
	"github.com/Kirk-KD/SuperStyleSheet/internal/vocab"
)

const eof = '\000'

type Lexer struct {
	Collector *diagnostics.Collector
	// KeepEOF controls whether Tokenize keeps the trailing EOF token.
	// The parser needs it, token dumps usually don't.
	KeepEOF bool

	filename string
	src      []byte
	offset   int
	pos      token.Pos
}

func New(filename string, src []byte, collector *diagnostics.Collector) *Lexer {
	lexer := new(Lexer)

	lexer.Collector = collector
	lexer.KeepEOF = true
	lexer.filename = filename
	lexer.src = src
	lexer.offset = 0
	lexer.pos = token.NewPosition(filename, 0, 0)

	return lexer
}

func NewFromFilePath(path string, collector *diagnostics.Collector) (*Lexer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, src, collector), nil
}

func (lex *Lexer) Filename() string { return lex.filename }

// Tokenize scans the whole source and returns the token sequence,
// terminated by EOF unless KeepEOF is false. The only fatal condition is an
// unterminated string literal.
func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	var tokens []*token.Token

	for {
		character := lex.peekChar()
		if character == eof {
			break
		}

		if isSpace(character) {
			lex.consumeSpaceRun(&tokens)
			continue
		}
		if isIdentifierStart(character) {
			tokens = append(tokens, lex.getIdentifier())
			continue
		}
		if character == '"' || character == '\'' {
			tok, err := lex.getStringLit()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			continue
		}

		tok := lex.getToken(character)
		if tok == nil {
			continue
		}
		tokens = append(tokens, tok)

		// A colon right after a property name switches the scanner into raw
		// value mode so the value may contain selector punctuation.
		if tok.Kind == token.SINGLE_COLON && len(tokens) >= 2 &&
			tokens[len(tokens)-2].Kind == token.CSS_PROPERTY {
			tokens = append(tokens, lex.getPropertyValue())
		}
	}

	tokens = append(tokens, token.New(nil, token.EOF, lex.pos))
	return lex.filterSpaceTokens(tokens), nil
}

func (lex *Lexer) getToken(character byte) *token.Token {
	tok := &token.Token{Kind: token.INVALID, Pos: lex.pos}

	switch character {
	case ',':
		lex.consumeTokenNoLex(tok, token.COMMA)
		lex.nextChar()
	case '.':
		lex.consumeTokenNoLex(tok, token.DOT)
		lex.nextChar()
	case '#':
		lex.consumeTokenNoLex(tok, token.SHARP)
		lex.nextChar()
	case '+':
		lex.consumeTokenNoLex(tok, token.PLUS)
		lex.nextChar()
	case '>':
		lex.consumeTokenNoLex(tok, token.GREATER)
		lex.nextChar()
	case ';':
		lex.consumeTokenNoLex(tok, token.SEMICOLON)
		lex.nextChar()
	case '(':
		lex.consumeTokenNoLex(tok, token.OPEN_PAREN)
		lex.nextChar()
	case ')':
		lex.consumeTokenNoLex(tok, token.CLOSE_PAREN)
		lex.nextChar()
	case '{':
		lex.consumeTokenNoLex(tok, token.OPEN_CURLY)
		lex.nextChar()
	case '}':
		lex.consumeTokenNoLex(tok, token.CLOSE_CURLY)
		lex.nextChar()
	case '[':
		lex.consumeTokenNoLex(tok, token.OPEN_BRACKET)
		lex.nextChar()
	case ']':
		lex.consumeTokenNoLex(tok, token.CLOSE_BRACKET)
		lex.nextChar()
	case '=':
		lex.consumeTokenNoLex(tok, token.EQUAL)
		lex.nextChar()
	case '~':
		tok.Kind = token.TILDE
		lex.nextChar() // ~

		if lex.peekChar() != '=' {
			return tok
		}
		lex.nextChar() // =
		tok.Kind = token.TILDE_EQUAL
	case '*':
		tok.Kind = token.STAR
		lex.nextChar() // *

		if lex.peekChar() != '=' {
			return tok
		}
		lex.nextChar() // =
		tok.Kind = token.STAR_EQUAL
	case ':':
		tok.Kind = token.SINGLE_COLON
		lex.nextChar() // :

		if lex.peekChar() != ':' {
			return tok
		}
		lex.nextChar() // :
		tok.Kind = token.DOUBLE_COLON
	case '|':
		lex.nextChar() // |
		if lex.peekChar() != '=' {
			return nil
		}
		lex.nextChar() // =
		tok.Kind = token.PIPE_EQUAL
	case '^':
		lex.nextChar() // ^
		if lex.peekChar() != '=' {
			return nil
		}
		lex.nextChar() // =
		tok.Kind = token.CARET_EQUAL
	case '$':
		lex.nextChar() // $
		if lex.peekChar() != '=' {
			return nil
		}
		lex.nextChar() // =
		tok.Kind = token.DOLLAR_EQUAL
	default:
		// Anything else is not part of the language; skip it.
		lex.nextChar()
		return nil
	}
	return tok
}

func (lex *Lexer) getIdentifier() *token.Token {
	tok := &token.Token{Pos: lex.pos}

	word := lex.readWhile(isIdentifierPart)
	lowered := strings.ToLower(string(word))

	switch {
	case vocab.IsHTMLElement(lowered):
		tok.Kind = token.HTML_ELEMENT
		tok.Lexeme = []byte(lowered)
	case vocab.IsCSSProperty(lowered):
		tok.Kind = token.CSS_PROPERTY
		tok.Lexeme = []byte(lowered)
	default:
		keyword, ok := token.KEYWORDS[string(word)]
		if ok {
			tok.Kind = keyword
			tok.Lexeme = word
		} else {
			tok.Kind = token.ID
			tok.Lexeme = word
		}
	}

	return tok
}

func (lex *Lexer) getStringLit() (*token.Token, error) {
	tok := &token.Token{Kind: token.STRING, Pos: lex.pos}

	closing := lex.peekChar()
	lex.nextChar() // opening quote

	str := lex.readWhile(func(character byte) bool { return character != closing })

	if lex.peekChar() != closing {
		unterminatedStringLiteral := diagnostics.Diag{
			Message: fmt.Sprintf(
				"%s:%d:%d: unterminated string literal",
				tok.Pos.Filename,
				tok.Pos.Line+1,
				tok.Pos.Column+1,
			),
		}
		lex.Collector.ReportAndSave(unterminatedStringLiteral)
		return nil, diagnostics.LEX_ERROR_FOUND
	}
	lex.nextChar() // closing quote

	tok.Lexeme = str
	return tok, nil
}

func (lex *Lexer) getPropertyValue() *token.Token {
	tok := &token.Token{Kind: token.CSS_PROPERTY_VALUE, Pos: lex.pos}

	value := lex.readWhile(func(character byte) bool {
		return character != ';' && character != '}' && character != '\n'
	})

	tok.Lexeme = bytes.TrimSpace(value)
	return tok
}

// consumeSpaceRun collapses a whitespace run into a single SPACE token,
// emitted only when a token already precedes it. Whether the token survives
// is decided later by filterSpaceTokens.
func (lex *Lexer) consumeSpaceRun(tokens *[]*token.Token) {
	if len(*tokens) > 0 {
		*tokens = append(*tokens, token.New([]byte(" "), token.SPACE, lex.pos))
	}
	lex.readWhile(isSpace)
}

// filterSpaceTokens applies the whitespace-significance rule: a SPACE token
// survives only between a token that can end a compound selector and one
// that can start a new compound selector, which is exactly the position
// where a literal space means the CSS descendant combinator. The rule is a
// neighbor-kind heuristic, not a grammar; keep it in this one place.
func (lex *Lexer) filterSpaceTokens(tokens []*token.Token) []*token.Token {
	var kept []*token.Token
	for i, tok := range tokens {
		if tok.Kind == token.SPACE {
			if i == 0 || i+1 >= len(tokens) {
				continue
			}
			left := tokens[i-1]
			right := tokens[i+1]
			if canEndCompound(left.Kind) && canStartCompound(right.Kind) {
				kept = append(kept, tok)
			}
		} else if lex.KeepEOF || tok.Kind != token.EOF {
			kept = append(kept, tok)
		}
	}
	return kept
}

func canEndCompound(kind token.Kind) bool {
	return kind == token.HTML_ELEMENT || kind == token.ID ||
		kind == token.STAR || kind == token.CLOSE_BRACKET
}

func canStartCompound(kind token.Kind) bool {
	return kind == token.DOT || kind == token.SHARP ||
		kind == token.HTML_ELEMENT || kind == token.STAR
}

func (lex *Lexer) consumeTokenNoLex(tok *token.Token, kind token.Kind) {
	tok.Lexeme = nil
	tok.Kind = kind
	tok.Pos = lex.pos
}

func (lex *Lexer) readWhile(isValid func(byte) bool) []byte {
	start := lex.offset

	for {
		character := lex.peekChar()
		if character == eof {
			break
		}

		if isValid(character) {
			lex.nextChar()
		} else {
			break
		}
	}

	return lex.src[start:lex.offset]
}

func (lex *Lexer) nextChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	lex.pos.Move(character)
	lex.offset++
	return character
}

func (lex *Lexer) peekChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	return lex.src[lex.offset]
}

func isSpace(character byte) bool {
	return character == ' ' || character == '\t' || character == '\r' || character == '\n'
}

func isIdentifierStart(character byte) bool {
	return unicode.IsLetter(rune(character)) || character == '_' || character == '-'
}

func isIdentifierPart(character byte) bool {
	return unicode.IsLetter(rune(character)) || unicode.IsDigit(rune(character)) ||
		character == '_' || character == '-'
}
