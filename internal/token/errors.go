package token

import (
	"errors"
	"fmt"
)

var ErrUnrecognizedChar = errors.New("unrecognized character")

// LexError reports the first character the tokenizer could not classify.
type LexError struct {
	Pos  int
	Char byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrUnrecognizedChar, e.Char, e.Pos)
}

func (e *LexError) Unwrap() error {
	return ErrUnrecognizedChar
}

// ValidationError reports a structural problem in a token sequence. Pos is the
// index of the offending token, or -1 when the problem concerns the whole list.
type ValidationError struct {
	Pos    int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Pos < 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s at token %d", e.Reason, e.Pos)
}

func newValidationError(pos int, format string, args ...any) *ValidationError {
	return &ValidationError{Pos: pos, Reason: fmt.Sprintf(format, args...)}
}
