package parser

import (
	"testing"

	"github.com/DjordjeVuckovic/shunting-yard/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shunt(t *testing.T, expression string) (*token.List, error) {
	t.Helper()
	infix, err := token.Tokenize(expression)
	require.NoError(t, err)
	return Shunt(infix)
}

func TestShunt(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       string
	}{
		{"single literal", "7", "7"},
		{"precedence", "2+3*4", "2 3 4 * +"},
		{"left associativity", "8-4-2", "8 4 - 2 -"},
		{"multiplicative left associativity", "8/4%3", "8 4 / 3 %"},
		{"grouping", "(2+3)*4", "2 3 + 4 *"},
		{"redundant grouping", "((7))", "7"},
		{"leading unary", "-5*4", "5 - 4 *"},
		{"unary after operator", "2*-3", "2 3 - *"},
		{"unary chain", "--5", "5 - -"},
		{"unary after paren", "(-5+1)", "5 - 1 +"},
		{"binary then unary", "2 - -3", "2 3 - -"},
		{"floats", "1.5*2.", "1.5 2. *"},
		{"nested", "(((53 + 2) - (-5 * 4)) / 5) % 100", "53 2 + 5 - 4 * - 5 / 100 %"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postfix, err := shunt(t, tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, postfix.String())
			assert.True(t, ValidatePostfix(postfix), "postfix %q should validate", postfix.String())
		})
	}
}

func TestShunt_UnaryClassification(t *testing.T) {
	infix, err := token.Tokenize("-5*4")
	require.NoError(t, err)

	postfix, err := Shunt(infix)
	require.NoError(t, err)

	// 5 - 4 *
	minus, ok := postfix.PeekAt(1)
	require.True(t, ok)
	assert.Equal(t, token.MINUS, minus.Type)
	assert.Equal(t, token.RoleUnary, minus.Role)
	assert.Equal(t, token.AssocRight, minus.Association)
	assert.Equal(t, token.PrecedenceUnary, minus.Precedence)

	star, ok := postfix.PeekAt(3)
	require.True(t, ok)
	assert.Equal(t, token.RoleBinary, star.Role)
	assert.Equal(t, token.AssocLeft, star.Association)

	original, _ := infix.PeekAt(0)
	assert.Equal(t, token.RoleBinary, original.Role, "infix stream must not be modified")

	assert.True(t, ValidatePostfix(postfix))
}

func TestShunt_Errors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		target     error
		reason     Reason
		pos        int
	}{
		{"unclosed", "(2+3", ErrUnmatchedLeftParen, ReasonUnmatchedLeftParen, 0},
		{"unclosed inner", "1*((2+3)", ErrUnmatchedLeftParen, ReasonUnmatchedLeftParen, 2},
		{"unopened", "2+3)", ErrUnmatchedRightParen, ReasonUnmatchedRightParen, 3},
		{"closing first", ")", ErrUnmatchedRightParen, ReasonUnmatchedRightParen, 0},
		{"empty", "", ErrEmptyExpression, ReasonEmptyExpression, -1},
		{"whitespace only", "   ", ErrEmptyExpression, ReasonEmptyExpression, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postfix, err := shunt(t, tt.expression)
			assert.Nil(t, postfix)
			require.ErrorIs(t, err, tt.target)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.reason, perr.Reason)
			assert.Equal(t, tt.pos, perr.Pos)
		})
	}
}

func TestShunt_NilInput(t *testing.T) {
	postfix, err := Shunt(nil)
	assert.Nil(t, postfix)
	assert.ErrorIs(t, err, ErrEmptyExpression)
}

func TestShunt_ValidInfixYieldsValidPostfix(t *testing.T) {
	expressions := []string{
		"1", "-1", "+-1", "1+2", "1-2*3", "(1-2)*3", "1*(2-3)/4%5",
		"-(1+2)", "-(-(-3))", "2*-3", "2/+3", "4%-(2+1)", "((1))+((2))",
		"1.5 * (2 - -0.5) / 3", "(((53 + 2) - (-5 * 4)) / 5) % 100",
	}

	for _, expr := range expressions {
		t.Run(expr, func(t *testing.T) {
			infix, err := token.Tokenize(expr)
			require.NoError(t, err)
			require.True(t, token.ValidateInfix(infix))

			postfix, err := Shunt(infix)
			require.NoError(t, err)

			depth, err := PostfixDepth(postfix)
			require.NoError(t, err)
			assert.Equal(t, 1, depth)
			assert.True(t, ValidatePostfix(postfix))
		})
	}
}
