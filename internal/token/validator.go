package token

// InfixValidator checks operator adjacency and grouping of an infix stream.
type InfixValidator struct{}

func NewInfixValidator() *InfixValidator {
	return &InfixValidator{}
}

func (v *InfixValidator) Validate(tokens *List) error {
	if tokens == nil || tokens.IsEmpty() {
		return newValidationError(-1, "expression is empty")
	}

	depth := 0
	last := tokens.Len() - 1

	for i, tok := range tokens.tokens {
		var prev *Token
		if i > 0 {
			prev = &tokens.tokens[i-1]
		}

		switch {
		case tok.IsLiteral():
			if endsOperand(prev) {
				return newValidationError(i, "unexpected literal %s", tok.Lexeme)
			}
		case tok.IsLeftParen():
			if endsOperand(prev) {
				return newValidationError(i, "unexpected opening parenthesis")
			}
			if i < last && tokens.tokens[i+1].IsRightParen() {
				return newValidationError(i, "empty parentheses")
			}
			depth++
		case tok.IsRightParen():
			depth--
			if depth < 0 {
				return newValidationError(i, "unexpected closing parenthesis")
			}
			if prev != nil && prev.IsOperator() {
				return newValidationError(i, "operator %s before closing parenthesis", prev.Lexeme)
			}
		case tok.IsOperator():
			if !endsOperand(prev) && !tok.IsSign() {
				return newValidationError(i, "unexpected %s operator", tok.Lexeme)
			}
			if i == last {
				return newValidationError(i, "expression cannot end with %s", tok.Lexeme)
			}
		default:
			return newValidationError(i, "invalid token: %s", tok.Lexeme)
		}
	}

	if depth != 0 {
		return newValidationError(-1, "unbalanced parentheses: %d unclosed", depth)
	}

	return nil
}

// ValidateInfix reports whether tokens form a well-formed infix expression.
func ValidateInfix(tokens *List) bool {
	return NewInfixValidator().Validate(tokens) == nil
}

// endsOperand reports whether prev closes an operand, i.e. a binary operator
// may follow it.
func endsOperand(prev *Token) bool {
	return prev != nil && (prev.IsLiteral() || prev.IsRightParen())
}
