package dto

import (
	"testing"

	"github.com/DjordjeVuckovic/shunting-yard/internal/domain"
	"github.com/DjordjeVuckovic/shunting-yard/internal/parser"
	"github.com/DjordjeVuckovic/shunting-yard/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConversion(t *testing.T) {
	infix, err := token.Tokenize("(1+2)*3")
	require.NoError(t, err)
	postfix, err := parser.Shunt(infix)
	require.NoError(t, err)

	c := domain.NewConversion("(1+2)*3", infix, postfix, true)
	resp := FromConversion(c)

	assert.Equal(t, c.ID, resp.ID)
	assert.Equal(t, "1 2 + 3 *", resp.RPN)
	assert.True(t, resp.Strict)
	require.Len(t, resp.Infix, 7)
	require.Len(t, resp.Postfix, 5)

	paren := resp.Infix[0]
	assert.Equal(t, "LPAREN", paren.Type)
	assert.Empty(t, paren.Role)
	assert.Empty(t, paren.Association)

	plus := resp.Postfix[2]
	assert.Equal(t, "BINARY", plus.Role)
	assert.Equal(t, "LEFT", plus.Association)
	assert.Equal(t, 1, plus.Precedence)
}
