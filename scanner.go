package mathbraille

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

type CellType int

const (
	UNDEFINED CellType = iota
	EOF
	CELL
)

func (cellType CellType) String() string {
	switch cellType {
	case UNDEFINED:
		return "UNDEFINED"
	case EOF:
		return "EOF"
	case CELL:
		return "CELL"
	}
	return "?"
}

// Cell is one significant character of the input. Offset counts characters
// (not bytes) from the start of the input.
type Cell struct {
	Type   CellType
	Rune   rune
	Offset int
}

func (c Cell) String() string {
	if c.Type == EOF {
		return fmt.Sprintf("<%v @%d>", c.Type, c.Offset)
	}
	return fmt.Sprintf("<%v %q @%d>", c.Type, c.Rune, c.Offset)
}

var eof = rune(0)

// Scanner reads cells from a braille source, skipping whitespace.
type Scanner struct {
	r      *bufio.Reader
	offset int
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

func (s *Scanner) read() (rune, bool) {
	ch, _, err := s.r.ReadRune()
	if err != nil {
		return eof, false
	}
	s.offset++
	return ch, true
}

// Scan returns the next significant cell, or a cell of type EOF.
func (s *Scanner) Scan() Cell {
	for {
		ch, ok := s.read()
		if !ok {
			return Cell{Type: EOF, Offset: s.offset}
		}
		if IsWhitespace(ch) {
			continue
		}
		cell := Cell{Type: CELL, Rune: ch, Offset: s.offset - 1}
		if ch == utf8.RuneError || !IsCell(ch) {
			cell.Type = UNDEFINED
		}
		return cell
	}
}

// ScanAll returns every significant cell followed by the terminating EOF cell.
func (s *Scanner) ScanAll() []Cell {
	var cells []Cell
	for {
		c := s.Scan()
		cells = append(cells, c)
		if c.Type == EOF {
			return cells
		}
	}
}
