package ddl

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a ParseError
type Kind int

const (
	KindUnexpectedStatement Kind = iota + 1
	KindInvalidIdentifier
	KindMissingColumnList
	KindUnterminatedColumnList
	KindMalformedColumn
	KindNoColumns
)

var (
	ErrUnexpectedStatement    = errors.New("unexpected statement")
	ErrInvalidIdentifier      = errors.New("invalid identifier")
	ErrMissingColumnList      = errors.New("missing column list")
	ErrUnterminatedColumnList = errors.New("unterminated column list")
	ErrMalformedColumn        = errors.New("malformed column definition")
	ErrNoColumns              = errors.New("no columns")
)

func (k Kind) sentinel() error {
	switch k {
	case KindUnexpectedStatement:
		return ErrUnexpectedStatement
	case KindInvalidIdentifier:
		return ErrInvalidIdentifier
	case KindMissingColumnList:
		return ErrMissingColumnList
	case KindUnterminatedColumnList:
		return ErrUnterminatedColumnList
	case KindMalformedColumn:
		return ErrMalformedColumn
	case KindNoColumns:
		return ErrNoColumns
	default:
		return nil
	}
}

func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseError reports why a script could not be parsed. Tokens holds the
// offending words, if any.
type ParseError struct {
	Kind   Kind
	Tokens []string
	Msg    string
}

func newParseError(kind Kind, msg string, tokens ...string) *ParseError {
	return &ParseError{Kind: kind, Tokens: tokens, Msg: msg}
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if len(e.Tokens) > 0 {
		sb.WriteString(fmt.Sprintf(" (found %q)", strings.Join(e.Tokens, " ")))
	}
	return sb.String()
}

// Unwrap lets errors.Is match the sentinel for the error's kind.
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}
