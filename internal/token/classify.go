package token

import (
	"errors"
	"fmt"
)

var (
	ErrNotNumber   = errors.New("not a number")
	ErrNotOperator = errors.New("not an operator")
	ErrNotGroup    = errors.New("not a group")
)

func IsOperatorChar(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%':
		return true
	default:
		return false
	}
}

func IsGroupChar(c byte) bool {
	return c == '(' || c == ')'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSpace matches the C locale whitespace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// NewNumber scans the literal at the start of input: digits with at most one
// decimal point. A second point ends the scan.
func NewNumber(input string) (Token, error) {
	if input == "" || !isDigit(input[0]) {
		return Token{}, ErrNotNumber
	}

	span := 0
	seenDot := false
	for span < len(input) {
		c := input[span]
		if isDigit(c) {
			span++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			span++
			continue
		}
		break
	}

	typ := INTEGER
	if seenDot {
		typ = FLOAT
	}

	return Token{
		Kind:        KindLiteral,
		Type:        typ,
		Role:        RoleNone,
		Precedence:  PrecedenceNone,
		Association: AssocNone,
		Lexeme:      input[:span],
	}, nil
}

// NewOperator builds a binary, left-associative operator token.
func NewOperator(c byte) (Token, error) {
	var typ Type
	switch c {
	case '+':
		typ = PLUS
	case '-':
		typ = MINUS
	case '*':
		typ = STAR
	case '/':
		typ = SLASH
	case '%':
		typ = MOD
	default:
		return Token{}, fmt.Errorf("%w: %q", ErrNotOperator, c)
	}

	tok := Token{
		Kind:        KindOperator,
		Type:        typ,
		Role:        RoleBinary,
		Association: AssocLeft,
		Lexeme:      string(c),
	}
	tok.Precedence = PrecedenceOf(&tok)
	return tok, nil
}

func NewGroup(c byte) (Token, error) {
	var typ Type
	switch c {
	case '(':
		typ = LPAREN
	case ')':
		typ = RPAREN
	default:
		return Token{}, fmt.Errorf("%w: %q", ErrNotGroup, c)
	}

	return Token{
		Kind:        KindGroup,
		Type:        typ,
		Role:        RoleNone,
		Precedence:  PrecedenceNone,
		Association: AssocNone,
		Lexeme:      string(c),
	}, nil
}
