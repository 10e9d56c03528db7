package ddl

import (
	"log/slog"
	"strconv"
	"strings"
)

// constraintKeywords start out-of-line entries of a column list that are not columns.
var constraintKeywords = map[string]struct{}{
	"CONSTRAINT":   {},
	"PRIMARY":      {},
	"UNIQUE":       {},
	"FOREIGN":      {},
	"CHECK":        {},
	"SUPPLEMENTAL": {},
}

// typeSuffixes lists the keyword sequences that continue a multi-word type,
// keyed by the type's leading keyword.
var typeSuffixes = map[string][][]string{
	"TIMESTAMP": {{"WITH", "LOCAL", "TIME", "ZONE"}, {"WITH", "TIME", "ZONE"}},
	"INTERVAL":  {{"YEAR", "TO", "MONTH"}, {"DAY", "TO", "SECOND"}},
	"DOUBLE":    {{"PRECISION"}},
	"LONG":      {{"RAW"}},
}

// Parser extracts table definitions from CREATE TABLE scripts
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser logging through logger. A nil logger discards output.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{logger: logger}
}

// Parse normalizes text and extracts the schema, table name, columns and
// trailing clauses of its CREATE TABLE statement.
func (p *Parser) Parse(text string) (*Table, error) {
	normalized, err := Normalize(text)
	if err != nil {
		return nil, err
	}

	s := newScanner(normalized)
	s.skipSpace()
	statementStart := s.pos
	first := s.readWord()
	s.skipSpace()
	second := s.readWord()
	if first != "CREATE" || second != "TABLE" {
		if first == "" {
			return nil, newParseError(KindUnexpectedStatement, "script is empty")
		}
		return nil, newParseError(KindUnexpectedStatement, "script must begin with CREATE TABLE", first, second)
	}

	s.skipSpace()
	qualified := s.readWord()
	schema, name, err := splitQualifiedName(qualified)
	if err != nil {
		return nil, err
	}
	p.logger.Info("found schema.table name", "schema", schema, "table", name)

	if !s.seek('(') {
		return nil, newParseError(KindMissingColumnList, "no opening parenthesis after table name", qualified)
	}
	s.read()
	entries, ok := s.readList()
	if !ok {
		return nil, newParseError(KindUnterminatedColumnList, "column list is not closed", qualified)
	}

	table := &Table{Schema: schema, Name: name}
	for i, entry := range entries {
		words := splitWords(entry)
		if len(words) == 0 {
			if len(entries) == 1 {
				break
			}
			return nil, newParseError(KindMalformedColumn, "empty entry in column list at position "+strconv.Itoa(i+1))
		}
		if _, ok := constraintKeywords[words[0]]; ok {
			table.Constraints = append(table.Constraints, strings.Join(words, " "))
			continue
		}
		col, err := buildColumn(words)
		if err != nil {
			return nil, err
		}
		p.logger.Debug("parsed column", "table", name, "column", col.Name, "type", col.Type, "options", col.Options)
		table.Columns = append(table.Columns, col)
	}
	if len(table.Columns) == 0 {
		return nil, newParseError(KindNoColumns, "column list defines no columns", qualified)
	}

	remainder, end := s.readRemainder()
	table.Remainder = remainder
	table.Statement = strings.TrimSpace(normalized[statementStart:end])
	p.logger.Debug("parsed remainder", "table", name, "remainder", remainder)

	return table, nil
}

func splitQualifiedName(qualified string) (string, string, error) {
	parts := splitOutside(qualified, '.')
	if len(parts) != 2 {
		return "", "", newParseError(KindInvalidIdentifier, "expected SCHEMA.TABLE", qualified)
	}
	schema, name := unquote(parts[0]), unquote(parts[1])
	if schema == "" || name == "" {
		return "", "", newParseError(KindInvalidIdentifier, "schema and table name must not be empty", qualified)
	}
	return schema, name, nil
}

// buildColumn turns the words of one column entry into a Column. Word 0 is
// the name, the type starts at word 1 and the rest are options.
func buildColumn(words []string) (Column, error) {
	if len(words) < 2 {
		return Column{}, newParseError(KindMalformedColumn, "column needs a name and a type", words...)
	}
	typeWords := words[1:]
	n := typeLength(typeWords)
	return Column{
		Name:    unquote(words[0]),
		Type:    strings.Join(typeWords[:n], " "),
		Options: strings.Join(typeWords[n:], " "),
	}, nil
}

// typeLength returns how many leading words form the column type.
func typeLength(words []string) int {
	n := absorbPrecision(words, 1)
	for _, pattern := range typeSuffixes[baseKeyword(words[0])] {
		if m := matchSuffix(words[n:], pattern); m > 0 {
			return n + m
		}
	}
	return n
}

// absorbPrecision extends a type ending at words[n-1] with the words of a
// parenthesized precision split by whitespace, e.g. NUMBER(10, 2) or
// NUMBER (10, 2).
func absorbPrecision(words []string, n int) int {
	if n >= len(words) {
		return n
	}
	acc := words[n-1]
	if !strings.Contains(acc, "(") && strings.HasPrefix(words[n], "(") {
		acc += " " + words[n]
		n++
	}
	for n < len(words) && parenDepth(acc) > 0 {
		acc += " " + words[n]
		n++
	}
	return n
}

func matchSuffix(words []string, pattern []string) int {
	n := 0
	for _, keyword := range pattern {
		if n >= len(words) || baseKeyword(words[n]) != keyword {
			return 0
		}
		n = absorbPrecision(words, n+1)
	}
	return n
}

func baseKeyword(word string) string {
	if i := strings.IndexByte(word, '('); i >= 0 {
		return word[:i]
	}
	return word
}

func parenDepth(text string) int {
	return strings.Count(text, "(") - strings.Count(text, ")")
}
