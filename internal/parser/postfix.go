package parser

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/shunting-yard/internal/token"
)

var ErrMalformedPostfix = errors.New("malformed postfix expression")

// PostfixDepth walks the stream as an evaluator would and returns the number
// of operands left on the stack. A single well-formed expression leaves one.
func PostfixDepth(postfix *token.List) (int, error) {
	if postfix == nil {
		return 0, fmt.Errorf("%w: nil list", ErrMalformedPostfix)
	}

	depth := 0
	for i, tok := range postfix.Tokens() {
		switch {
		case tok.IsLiteral():
			depth++
		case tok.IsOperator() && tok.IsUnary():
			if depth < 1 {
				return depth, fmt.Errorf("%w: unary %s at token %d has no operand", ErrMalformedPostfix, tok.Lexeme, i)
			}
		case tok.IsOperator() && tok.IsBinary():
			if depth < 2 {
				return depth, fmt.Errorf("%w: binary %s at token %d needs two operands", ErrMalformedPostfix, tok.Lexeme, i)
			}
			depth--
		default:
			return depth, fmt.Errorf("%w: unexpected %s token %q at %d", ErrMalformedPostfix, tok.Type, tok.Lexeme, i)
		}
	}

	return depth, nil
}

// ValidatePostfix reports whether postfix describes exactly one expression.
func ValidatePostfix(postfix *token.List) bool {
	depth, err := PostfixDepth(postfix)
	return err == nil && depth == 1
}
