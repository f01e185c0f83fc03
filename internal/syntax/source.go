package syntax

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// source is a character reader with position tracking.
// The whole input is held in memory so that scanning rules can look
// ahead without consuming characters.
type source struct {
	buf []byte

	filename string
	line     uint32 // current line number (1-based)
	col      uint32 // current column number (1-based, in characters)

	ch     rune // current character, -1 for EOF
	chOffs int  // byte offset of ch in buf
	offs   int  // byte offset of the character after ch

	errh func(err error)
}

// newSource creates a new source from an io.Reader.
// A read failure is reported through errh and leaves the source empty.
func newSource(filename string, src io.Reader, errh func(err error)) *source {
	s := &source{
		filename: filename,
		line:     1,
		col:      0,  // incremented to 1 by the first nextch
		ch:       -1, // sentinel: before first char
		errh:     errh,
	}

	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		if errh != nil {
			errh(err)
		}
		s.buf = nil
	}

	s.nextch()
	return s
}

// nextch reads the next character and updates position.
// (line, col) always refers to s.ch after nextch returns.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.chOffs = s.offs
	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	// An invalid byte decodes to RuneError with width 1 and is then
	// rejected by the scanner like any other illegal character.
	r, width := utf8.DecodeRune(s.buf[s.offs:])
	s.ch = r
	s.offs += width
}

// skip advances over n bytes known to contain no newline.
func (s *source) skip(n int) {
	for end := s.chOffs + n; s.chOffs < end && s.ch >= 0; {
		s.nextch()
	}
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// rest returns the unread input starting at the current character.
func (s *source) rest() []byte {
	if s.ch < 0 {
		return nil
	}
	return s.buf[s.chOffs:]
}

// segment returns the raw text between byte offsets start and the
// current character.
func (s *source) segment(start int) string {
	return string(s.buf[start:s.chOffs])
}

// closes reports whether a closing quote follows the current one.
func (s *source) closes(quote byte) bool {
	return bytes.IndexByte(s.buf[s.offs:], quote) >= 0
}

// isLetter reports whether r is an ASCII letter or underscore.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is ignored between tokens.
// Newlines are handled separately because they advance the line count.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}
