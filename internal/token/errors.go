package token

import (
	"errors"
	"fmt"

	"github.com/GoNZooo/gotyno/schema"
)

// ErrEndOfInput is returned by Next/Peek once the buffer is exhausted. It is
// an io.EOF-alike sentinel, not a failure: callers compare with errors.Is.
var ErrEndOfInput = errors.New("token: end of input")

// LexErrorKind discriminates the lexical failures the tokenizer surfaces:
// unterminated strings, unknown characters, and integer-literal overflow.
type LexErrorKind int

const (
	LexUnterminatedString LexErrorKind = iota
	LexUnknownCharacter
	LexIntegerOverflow
)

// LexError is a lexical-level failure, distinct from the parser-level
// ExpectError.
type LexError struct {
	Kind     LexErrorKind
	Location schema.SourceLocation
	Detail   string
}

func (e *LexError) Error() string {
	switch e.Kind {
	case LexUnterminatedString:
		return fmt.Sprintf("%s: unterminated string literal", e.Location)
	case LexUnknownCharacter:
		return fmt.Sprintf("%s: unknown character %s", e.Location, e.Detail)
	case LexIntegerOverflow:
		return fmt.Sprintf("%s: integer literal overflows u64", e.Location)
	default:
		return fmt.Sprintf("%s: lex error", e.Location)
	}
}

// ExpectError carries an expectation mismatch: the set of acceptable kinds,
// the kind actually found, and the position at which it was found.
type ExpectError struct {
	Expected   []Kind
	Actual     Kind
	ActualText string
	Location   schema.SourceLocation
}

func (e *ExpectError) Error() string {
	found := e.Actual.String()
	if e.ActualText == "end of input" {
		found = e.ActualText
	}
	return fmt.Sprintf("%s: expected %v, found %s", e.Location, e.Expected, found)
}
