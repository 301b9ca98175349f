package parser

import (
	"log/slog"

	"github.com/DjordjeVuckovic/shunting-yard/internal/token"
)

// Shunt rewrites an infix token stream into postfix order.
//
// Operators after the start of input, another operator, or an opening
// parenthesis are treated as unary. The infix list is not modified; the
// reclassified tokens only appear in the returned list.
func Shunt(infix *token.List) (*token.List, error) {
	if infix == nil || infix.IsEmpty() {
		return nil, emptyExpression()
	}

	output := token.NewList()
	operators := token.NewList()
	// positions mirrors operators so a stray '(' can be reported by index
	var positions []int

	for i := 0; i < infix.Len(); i++ {
		symbol, _ := infix.PeekAt(i)

		if symbol.IsOperator() && isUnaryContext(infix, i) {
			symbol = symbol.AsUnary()
		}

		switch {
		case symbol.IsLiteral():
			output.Push(symbol)

		case symbol.IsOperator():
			for {
				top, ok := operators.Peek()
				if !ok || !top.IsOperator() {
					break
				}
				o1 := token.PrecedenceOf(&symbol)
				o2 := token.PrecedenceOf(&top)
				if o2 > o1 || (o2 == o1 && symbol.IsLeftAssoc()) {
					popped, _ := operators.Pop()
					positions = positions[:len(positions)-1]
					output.Push(popped)
					continue
				}
				break
			}
			operators.Push(symbol)
			positions = append(positions, i)

		case symbol.IsLeftParen():
			operators.Push(symbol)
			positions = append(positions, i)

		case symbol.IsRightParen():
			for {
				top, ok := operators.Peek()
				if !ok || top.IsLeftParen() {
					break
				}
				popped, _ := operators.Pop()
				positions = positions[:len(positions)-1]
				output.Push(popped)
			}

			if top, ok := operators.Peek(); !ok || !top.IsLeftParen() {
				slog.Debug("mismatched parentheses", "pos", i)
				return nil, unmatchedRight(i)
			}
			operators.Pop()
			positions = positions[:len(positions)-1]
		}
	}

	for !operators.IsEmpty() {
		op, _ := operators.Pop()
		pos := positions[len(positions)-1]
		positions = positions[:len(positions)-1]
		if op.IsLeftParen() {
			slog.Debug("unclosed parenthesis", "pos", pos)
			return nil, unmatchedLeft(pos)
		}
		output.Push(op)
	}

	return output, nil
}

func isUnaryContext(infix *token.List, i int) bool {
	if i == 0 {
		return true
	}
	prev, _ := infix.PeekAt(i - 1)
	return prev.IsOperator() || prev.IsLeftParen()
}
