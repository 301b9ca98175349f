package domain

import (
	"strings"
	"time"

	"github.com/DjordjeVuckovic/shunting-yard/internal/token"
	"github.com/google/uuid"
)

// Conversion is one infix to postfix rewrite kept in history.
type Conversion struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Infix      []Token   `json:"infix"`
	Postfix    []Token   `json:"postfix"`
	Strict     bool      `json:"strict"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Token is the storable form of a token.Token.
type Token struct {
	Lexeme      string `json:"lexeme"`
	Kind        string `json:"kind"`
	Type        string `json:"type"`
	Role        string `json:"role"`
	Association string `json:"association"`
	Precedence  int    `json:"precedence"`
}

func NewConversion(expression string, infix, postfix *token.List, strict bool) Conversion {
	return Conversion{
		ID:         uuid.New(),
		Expression: expression,
		Infix:      TokensFrom(infix),
		Postfix:    TokensFrom(postfix),
		Strict:     strict,
		CreatedAt:  time.Now().UTC(),
	}
}

func TokensFrom(list *token.List) []Token {
	if list == nil {
		return nil
	}
	out := make([]Token, 0, list.Len())
	for _, t := range list.Tokens() {
		out = append(out, Token{
			Lexeme:      t.Lexeme,
			Kind:        t.Kind.String(),
			Type:        t.Type.String(),
			Role:        t.Role.String(),
			Association: t.Association.String(),
			Precedence:  int(t.Precedence),
		})
	}
	return out
}

// RPN joins the postfix lexemes with spaces.
func (c Conversion) RPN() string {
	lexemes := make([]string, len(c.Postfix))
	for i, t := range c.Postfix {
		lexemes[i] = t.Lexeme
	}
	return strings.Join(lexemes, " ")
}
