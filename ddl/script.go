package ddl

import (
	"strings"
)

var plsqlUnits = map[string]struct{}{
	"TRIGGER":   {},
	"PROCEDURE": {},
	"FUNCTION":  {},
	"PACKAGE":   {},
	"TYPE":      {},
}

// SplitScript splits a SQL*Plus style script into statements that can be
// executed one by one through a driver. Blocks are separated by lines
// holding only "/". PL/SQL units are kept whole with their final semicolon;
// other blocks are split on semicolons and lose them.
func SplitScript(script string) []string {
	var statements []string
	for _, block := range splitBlocks(script) {
		if isPLSQL(block) {
			statements = append(statements, block)
			continue
		}
		statements = append(statements, splitStatements(block)...)
	}
	return statements
}

func splitBlocks(script string) []string {
	var blocks []string
	var current strings.Builder
	flush := func() {
		if block := strings.TrimSpace(current.String()); block != "" {
			blocks = append(blocks, block)
		}
		current.Reset()
	}
	for _, line := range strings.Split(strings.ReplaceAll(script, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "/" {
			flush()
			continue
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}
	flush()
	return blocks
}

func splitStatements(block string) []string {
	var statements []string
	s := newScanner(block)
	start := 0
	for !s.eof() {
		switch s.ch {
		case '\'', '"':
			s.skipQuoted()
			continue
		case ';':
			if stmt := strings.TrimSpace(block[start:s.pos]); stmt != "" {
				statements = append(statements, stmt)
			}
			s.read()
			start = s.pos
			continue
		}
		s.read()
	}
	if stmt := strings.TrimSpace(block[start:]); stmt != "" {
		statements = append(statements, stmt)
	}
	return statements
}

func isPLSQL(block string) bool {
	words := strings.Fields(strings.ToUpper(block))
	if len(words) == 0 {
		return false
	}
	switch words[0] {
	case "BEGIN", "DECLARE":
		return true
	case "CREATE":
	default:
		return false
	}
	for _, w := range words[1:] {
		switch w {
		case "OR", "REPLACE", "EDITIONABLE", "NONEDITIONABLE":
			continue
		}
		_, ok := plsqlUnits[w]
		return ok
	}
	return false
}
