package ddl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner is a rune cursor over normalized DDL text.
type scanner struct {
	input string
	pos   int  // current position in input (points to ch)
	next  int  // reading position in input (after ch)
	ch    rune // current char under examination
}

func newScanner(input string) *scanner {
	s := &scanner{input: input}
	s.read()
	return s
}

func (s *scanner) read() {
	if s.next >= len(s.input) {
		s.ch = 0
		s.pos = len(s.input)
		s.next = len(s.input)
		return
	}
	r, size := utf8.DecodeRuneInString(s.input[s.next:])
	s.ch = r
	s.pos = s.next
	s.next += size
}

func (s *scanner) peek() rune {
	if s.next >= len(s.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.next:])
	return r
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) skipSpace() {
	for !s.eof() && unicode.IsSpace(s.ch) {
		s.read()
	}
}

// skipQuoted advances past a quoted literal or identifier starting at ch.
// A doubled quote inside the literal is an escaped quote. An unterminated
// literal runs to the end of input.
func (s *scanner) skipQuoted() {
	quote := s.ch
	s.read()
	for !s.eof() {
		if s.ch == quote {
			if s.peek() == quote {
				s.read()
				s.read()
				continue
			}
			s.read()
			return
		}
		s.read()
	}
}

// readWord reads up to whitespace or an opening parenthesis. Quoted
// sections are kept whole.
func (s *scanner) readWord() string {
	start := s.pos
	for !s.eof() && !unicode.IsSpace(s.ch) && s.ch != '(' {
		if s.ch == '\'' || s.ch == '"' {
			s.skipQuoted()
			continue
		}
		s.read()
	}
	return s.input[start:s.pos]
}

// seek moves to the next occurrence of ch outside quotes. It reports
// whether ch was found.
func (s *scanner) seek(ch rune) bool {
	for !s.eof() {
		switch s.ch {
		case '\'', '"':
			s.skipQuoted()
			continue
		case ch:
			return true
		}
		s.read()
	}
	return false
}

// readList reads comma separated entries up to the closing parenthesis at
// depth zero and consumes it. The scanner must be positioned just after the
// opening parenthesis.
func (s *scanner) readList() ([]string, bool) {
	var entries []string
	depth := 0
	start := s.pos
	for !s.eof() {
		switch s.ch {
		case '\'', '"':
			s.skipQuoted()
			continue
		case '(':
			depth++
		case ')':
			if depth == 0 {
				entries = append(entries, s.input[start:s.pos])
				s.read()
				return entries, true
			}
			depth--
		case ',':
			if depth == 0 {
				entries = append(entries, s.input[start:s.pos])
				s.read()
				start = s.pos
				continue
			}
		}
		s.read()
	}
	return entries, false
}

// readRemainder reads the trailing clauses after the column list. It stops
// after the first semicolon, or before a line holding only "/". end is the
// offset where the statement terminator begins.
func (s *scanner) readRemainder() (remainder string, end int) {
	start := s.pos
	for !s.eof() {
		switch s.ch {
		case '\'', '"':
			s.skipQuoted()
			continue
		case ';':
			end = s.pos
			s.read()
			return strings.TrimLeftFunc(s.input[start:s.pos], unicode.IsSpace), end
		case '/':
			if isSlashLine(s.input, s.pos) {
				return strings.TrimSpace(s.input[start:s.pos]), s.pos
			}
		}
		s.read()
	}
	return strings.TrimSpace(s.input[start:]), len(s.input)
}

// isSlashLine reports whether the '/' at pos is alone on its line.
func isSlashLine(input string, pos int) bool {
	lineStart := strings.LastIndexByte(input[:pos], '\n') + 1
	if strings.TrimSpace(input[lineStart:pos]) != "" {
		return false
	}
	lineEnd := strings.IndexByte(input[pos:], '\n')
	if lineEnd == -1 {
		lineEnd = len(input) - pos
	}
	return strings.TrimSpace(input[pos+1:pos+lineEnd]) == ""
}

// splitWords splits text on whitespace, keeping quoted sections whole.
func splitWords(text string) []string {
	var words []string
	s := newScanner(text)
	for {
		s.skipSpace()
		if s.eof() {
			return words
		}
		start := s.pos
		for !s.eof() && !unicode.IsSpace(s.ch) {
			if s.ch == '\'' || s.ch == '"' {
				s.skipQuoted()
				continue
			}
			s.read()
		}
		words = append(words, text[start:s.pos])
	}
}

// splitOutside splits text on sep occurring outside double quotes.
func splitOutside(text string, sep rune) []string {
	var parts []string
	s := newScanner(text)
	start := 0
	for !s.eof() {
		switch s.ch {
		case '"':
			s.skipQuoted()
			continue
		case sep:
			parts = append(parts, text[start:s.pos])
			s.read()
			start = s.pos
			continue
		}
		s.read()
	}
	return append(parts, text[start:])
}

func unquote(identifier string) string {
	return strings.Trim(identifier, `"`)
}
