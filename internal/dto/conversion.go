package dto

import (
	"time"

	"github.com/DjordjeVuckovic/shunting-yard/internal/domain"
	"github.com/google/uuid"
)

type ConvertRequest struct {
	Expression string `json:"expression" example:"(2+3)*4"`
}

type Token struct {
	Lexeme      string `json:"lexeme"`
	Kind        string `json:"kind"`
	Type        string `json:"type"`
	Role        string `json:"role,omitempty"`
	Association string `json:"association,omitempty"`
	Precedence  int    `json:"precedence"`
}

type ConversionResponse struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Infix      []Token   `json:"infix"`
	Postfix    []Token   `json:"postfix"`
	RPN        string    `json:"rpn" example:"2 3 + 4 *"`
	Strict     bool      `json:"strict"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Title  string `json:"title,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func FromConversion(c domain.Conversion) ConversionResponse {
	return ConversionResponse{
		ID:         c.ID,
		Expression: c.Expression,
		Infix:      fromTokens(c.Infix),
		Postfix:    fromTokens(c.Postfix),
		RPN:        c.RPN(),
		Strict:     c.Strict,
		CreatedAt:  c.CreatedAt,
	}
}

func fromTokens(tokens []domain.Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = Token{
			Lexeme:     t.Lexeme,
			Kind:       t.Kind,
			Type:       t.Type,
			Precedence: t.Precedence,
		}
		if t.Kind == "OPERATOR" {
			out[i].Role = t.Role
			out[i].Association = t.Association
		}
	}
	return out
}
