package ddl

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// operators get a single space on each side during normalization.
var operators = []string{"<>", "!=", "<=", ">=", "=>", "||", "=", "<", ">"}

// Normalize canonicalizes raw DDL text before parsing:
//
//   - byte order marks and other format runes are dropped, text is NFC
//   - line endings become LF; line breaks are otherwise kept as is
//   - line and block comments outside literals are removed
//   - everything outside single-quoted literals is upper-cased
//   - comparison and concatenation operators are surrounded by one space
//   - trailing blanks are trimmed from every line
func Normalize(text string) (string, error) {
	clean := transform.Chain(runes.Remove(runes.In(unicode.Cf)), norm.NFC)
	text, _, err := transform.String(clean, text)
	if err != nil {
		return "", fmt.Errorf("failed to normalize unicode: %w", err)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var sb strings.Builder
	sb.Grow(len(text))
	s := newScanner(text)
	for !s.eof() {
		switch {
		case s.ch == '\'':
			start := s.pos
			s.skipQuoted()
			sb.WriteString(text[start:s.pos])
		case s.ch == '"':
			start := s.pos
			s.skipQuoted()
			sb.WriteString(strings.ToUpper(text[start:s.pos]))
		case s.ch == '-' && s.peek() == '-':
			for !s.eof() && s.ch != '\n' {
				s.read()
			}
		case s.ch == '/' && s.peek() == '*':
			s.read()
			s.read()
			for !s.eof() && !(s.ch == '*' && s.peek() == '/') {
				s.read()
			}
			s.read()
			s.read()
			sb.WriteByte(' ')
		default:
			if op := operatorAt(text[s.pos:]); op != "" {
				writeOperator(&sb, op)
				for range len(op) {
					s.read()
				}
				for s.ch == ' ' || s.ch == '\t' {
					s.read()
				}
				continue
			}
			sb.WriteRune(unicode.ToUpper(s.ch))
			s.read()
		}
	}

	lines := strings.Split(sb.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n"), nil
}

func operatorAt(text string) string {
	for _, op := range operators {
		if strings.HasPrefix(text, op) {
			return op
		}
	}
	return ""
}

func writeOperator(sb *strings.Builder, op string) {
	if out := sb.String(); out != "" {
		if last := out[len(out)-1]; last != ' ' && last != '\t' && last != '\n' {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(op)
	sb.WriteByte(' ')
}
