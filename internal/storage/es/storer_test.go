//go:build integration

package es

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/shunting-yard/internal/domain"
	"github.com/DjordjeVuckovic/shunting-yard/internal/parser"
	"github.com/DjordjeVuckovic/shunting-yard/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/shunting-yard/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorer_SaveGet(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	s, err := NewStorer(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "conversions_test",
	})
	require.NoError(t, err)
	require.NoError(t, s.Ping(ctx))

	infix, err := parser.New().Tokenize("(2+3)*4")
	require.NoError(t, err)
	postfix, err := parser.Shunt(infix)
	require.NoError(t, err)
	c := domain.NewConversion("(2+3)*4", infix, postfix, false)

	id, err := s.Save(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, c.ID, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2 3 + 4 *", got.RPN())

	_, err = s.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
