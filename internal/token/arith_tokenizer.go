package token

import "log/slog"

// ArithTokenizer scans arithmetic expressions: numbers, + - * / %, and parentheses.
type ArithTokenizer struct {
	input string
	pos   int
}

func NewArithTokenizer() *ArithTokenizer {
	return &ArithTokenizer{}
}

// Tokenize converts the whole input into a List in source order.
// Example: Input: `(53 + 2) * -4.5`
// An unrecognized character fails the call and no tokens are returned.
func (t *ArithTokenizer) Tokenize(input string) (*List, error) {
	t.input = input
	t.pos = 0

	list := NewList()

	for t.pos < len(t.input) {
		ch := t.input[t.pos]

		var (
			tok Token
			err error
		)
		switch {
		case isDigit(ch):
			tok, err = NewNumber(t.input[t.pos:])
		case IsOperatorChar(ch):
			tok, err = NewOperator(ch)
		case IsGroupChar(ch):
			tok, err = NewGroup(ch)
		case isSpace(ch):
			t.pos++
			continue
		default:
			slog.Debug("tokenizer stopped on unrecognized character", "char", string(ch), "pos", t.pos)
			return nil, &LexError{Pos: t.pos, Char: ch}
		}
		if err != nil {
			return nil, err
		}

		list.Push(tok)
		t.pos += tok.Len()
	}

	return list, nil
}

// Tokenize runs a fresh ArithTokenizer over input.
func Tokenize(input string) (*List, error) {
	return NewArithTokenizer().Tokenize(input)
}
