package token

import (
	"fmt"
	"io"
	"strings"
)

// List is an ordered, growable sequence of tokens usable as a stack or a queue.
// Push stores a copy of its argument, Pop and PopAt hand the stored token back
// and release the slot, Peek and PeekAt return copies without removing anything.
type List struct {
	tokens []Token
}

func NewList() *List {
	return NewListWithCapacity(1)
}

func NewListWithCapacity(capacity int) *List {
	if capacity < 1 {
		capacity = 1
	}
	return &List{tokens: make([]Token, 0, capacity)}
}

// ListOf builds a list holding copies of tokens.
func ListOf(tokens ...Token) *List {
	l := NewListWithCapacity(len(tokens))
	for _, t := range tokens {
		l.Push(t)
	}
	return l
}

func (l *List) Len() int {
	return len(l.tokens)
}

func (l *List) Cap() int {
	return cap(l.tokens)
}

func (l *List) IsEmpty() bool {
	return len(l.tokens) == 0
}

func (l *List) IsFull() bool {
	return len(l.tokens) >= cap(l.tokens)
}

// Push appends a copy of t, doubling the capacity when the list is full.
func (l *List) Push(t Token) {
	if l.IsFull() {
		grown := make([]Token, len(l.tokens), 2*max(cap(l.tokens), 1))
		copy(grown, l.tokens)
		l.tokens = grown
	}
	l.tokens = append(l.tokens, t.Clone())
}

// Pop removes and returns the last token.
func (l *List) Pop() (Token, bool) {
	n := len(l.tokens)
	if n == 0 {
		return Token{}, false
	}
	t := l.tokens[n-1]
	l.tokens[n-1] = Token{}
	l.tokens = l.tokens[:n-1]
	return t, true
}

// PopAt removes and returns the token at index. Negative indexes count from
// the end, so -1 is the last token.
func (l *List) PopAt(index int) (Token, bool) {
	i, ok := l.normalize(index)
	if !ok {
		return Token{}, false
	}
	t := l.tokens[i]
	n := len(l.tokens)
	copy(l.tokens[i:], l.tokens[i+1:])
	l.tokens[n-1] = Token{}
	l.tokens = l.tokens[:n-1]
	return t, true
}

// Peek returns the last token without removing it.
func (l *List) Peek() (Token, bool) {
	if len(l.tokens) == 0 {
		return Token{}, false
	}
	return l.tokens[len(l.tokens)-1], true
}

func (l *List) PeekAt(index int) (Token, bool) {
	if index < 0 || index >= len(l.tokens) {
		return Token{}, false
	}
	return l.tokens[index], true
}

// Tokens returns a copy of the stored tokens in order.
func (l *List) Tokens() []Token {
	out := make([]Token, len(l.tokens))
	copy(out, l.tokens)
	return out
}

func (l *List) Clone() *List {
	c := NewListWithCapacity(cap(l.tokens))
	c.tokens = append(c.tokens, l.tokens...)
	return c
}

// Lexemes returns the lexemes in order.
func (l *List) Lexemes() []string {
	out := make([]string, len(l.tokens))
	for i, t := range l.tokens {
		out[i] = t.Lexeme
	}
	return out
}

// String joins the lexemes with single spaces, e.g. "2 3 4 * +".
func (l *List) String() string {
	return strings.Join(l.Lexemes(), " ")
}

// Dump writes one line per token for diagnostics.
func (l *List) Dump(w io.Writer) error {
	for i, t := range l.tokens {
		if _, err := fmt.Fprintf(w, "[TokenList] index=%d, %s\n", i, t); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) normalize(index int) (int, bool) {
	n := len(l.tokens)
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return 0, false
	}
	return index, true
}
