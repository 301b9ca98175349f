package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperator(t *testing.T) {
	tests := []struct {
		ch   byte
		typ  Type
		prec Precedence
	}{
		{'+', PLUS, PrecedenceAdditive},
		{'-', MINUS, PrecedenceAdditive},
		{'*', STAR, PrecedenceMultiplicative},
		{'/', SLASH, PrecedenceMultiplicative},
		{'%', MOD, PrecedenceMultiplicative},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			tok, err := NewOperator(tt.ch)
			require.NoError(t, err)
			assert.Equal(t, KindOperator, tok.Kind)
			assert.Equal(t, tt.typ, tok.Type)
			assert.Equal(t, RoleBinary, tok.Role)
			assert.Equal(t, AssocLeft, tok.Association)
			assert.Equal(t, tt.prec, tok.Precedence)
			assert.Equal(t, string(tt.ch), tok.Lexeme)
			assert.Equal(t, 1, tok.Len())
		})
	}

	_, err := NewOperator('(')
	assert.ErrorIs(t, err, ErrNotOperator)
}

func TestNewGroup(t *testing.T) {
	l, err := NewGroup('(')
	require.NoError(t, err)
	assert.True(t, l.IsGroup())
	assert.True(t, l.IsLeftParen())
	assert.Equal(t, RoleNone, l.Role)
	assert.Equal(t, AssocNone, l.Association)
	assert.Equal(t, PrecedenceNone, l.Precedence)

	r, err := NewGroup(')')
	require.NoError(t, err)
	assert.True(t, r.IsRightParen())

	_, err = NewGroup('+')
	assert.ErrorIs(t, err, ErrNotGroup)
}

func TestNewNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		lexeme string
		typ    Type
	}{
		{"integer", "123", "123", INTEGER},
		{"integer followed by operator", "12+3", "12", INTEGER},
		{"float", "3.14", "3.14", FLOAT},
		{"trailing point", "7.", "7.", FLOAT},
		{"second point ends scan", "1.2.3", "1.2", FLOAT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := NewNumber(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.lexeme, tok.Lexeme)
			assert.Equal(t, tt.typ, tok.Type)
			assert.Equal(t, KindLiteral, tok.Kind)
			assert.Equal(t, PrecedenceNone, tok.Precedence)
		})
	}

	_, err := NewNumber(".5")
	assert.ErrorIs(t, err, ErrNotNumber)
	_, err = NewNumber("")
	assert.ErrorIs(t, err, ErrNotNumber)
}

func TestToken_Clone(t *testing.T) {
	orig, err := NewOperator('-')
	require.NoError(t, err)

	clone := orig.Clone()
	assert.Equal(t, orig, clone)
	assert.Equal(t, orig.IsOperator(), clone.IsOperator())
	assert.Equal(t, orig.IsBinary(), clone.IsBinary())
	assert.Equal(t, orig.IsLeftAssoc(), clone.IsLeftAssoc())
	assert.Equal(t, PrecedenceOf(&orig), PrecedenceOf(&clone))

	clone.Lexeme = "+"
	assert.Equal(t, "-", orig.Lexeme)
}

func TestToken_AsUnary(t *testing.T) {
	minus, err := NewOperator('-')
	require.NoError(t, err)

	unary := minus.AsUnary()
	assert.True(t, unary.IsUnary())
	assert.True(t, unary.IsRightAssoc())
	assert.Equal(t, PrecedenceUnary, unary.Precedence)

	assert.True(t, minus.IsBinary(), "original must not change")
	assert.Equal(t, PrecedenceAdditive, minus.Precedence)

	lit, err := NewNumber("5")
	require.NoError(t, err)
	assert.Equal(t, lit, lit.AsUnary())
}

func TestPrecedenceOf(t *testing.T) {
	assert.Equal(t, PrecedenceError, PrecedenceOf(nil))
	assert.Equal(t, PrecedenceError, PrecedenceOf(&Token{}))
	assert.Equal(t, PrecedenceError, PrecedenceOf(&Token{Kind: KindLiteral, Type: PLUS, Lexeme: "+"}))

	star, _ := NewOperator('*')
	assert.Equal(t, PrecedenceMultiplicative, PrecedenceOf(&star))

	paren, _ := NewGroup('(')
	assert.Equal(t, PrecedenceNone, PrecedenceOf(&paren))
}

func TestIsCharClass(t *testing.T) {
	for _, c := range []byte("+-*/%") {
		assert.True(t, IsOperatorChar(c), string(c))
		assert.False(t, IsGroupChar(c), string(c))
	}
	assert.True(t, IsGroupChar('('))
	assert.True(t, IsGroupChar(')'))
	assert.False(t, IsOperatorChar('^'))
	assert.False(t, IsGroupChar('['))
}
