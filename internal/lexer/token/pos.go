package token

import "fmt"

// Pos is a zero-based source position. Column counts consumed characters on
// the current line and resets when a newline is consumed.
type Pos struct {
	Filename     string
	Line, Column int
}

func NewPosition(filename string, line, column int) Pos {
	return Pos{Filename: filename, Line: line, Column: column}
}

func (pos *Pos) Move(character byte) {
	if character == '\n' {
		pos.Column = 0
		pos.Line++
	} else {
		pos.Column++
	}
}

// String renders the position one-based, the way editors count.
func (pos Pos) String() string {
	return fmt.Sprintf("[%s:%d:%d]", pos.Filename, pos.Line+1, pos.Column+1)
}
