package parser

import (
	"errors"
	"fmt"
)

// Reason classifies a structural failure.
type Reason string

const (
	ReasonEmptyExpression     Reason = "empty_expression"
	ReasonUnmatchedRightParen Reason = "unmatched_right_paren"
	ReasonUnmatchedLeftParen  Reason = "unmatched_left_paren"
)

var (
	ErrEmptyExpression     = errors.New("empty expression")
	ErrUnmatchedRightParen = errors.New("unmatched right parenthesis")
	ErrUnmatchedLeftParen  = errors.New("unmatched left parenthesis")
)

// Error is a structural parse failure. Pos is the index of the offending token
// in the infix stream, or -1 when no single token is at fault.
type Error struct {
	Reason Reason
	Pos    int
	Err    error
}

func (e *Error) Error() string {
	if e.Pos < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at token %d", e.Err, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func emptyExpression() *Error {
	return &Error{Reason: ReasonEmptyExpression, Pos: -1, Err: ErrEmptyExpression}
}

func unmatchedRight(pos int) *Error {
	return &Error{Reason: ReasonUnmatchedRightParen, Pos: pos, Err: ErrUnmatchedRightParen}
}

func unmatchedLeft(pos int) *Error {
	return &Error{Reason: ReasonUnmatchedLeftParen, Pos: pos, Err: ErrUnmatchedLeftParen}
}
