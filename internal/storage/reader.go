package storage

import (
	"context"

	"github.com/DjordjeVuckovic/shunting-yard/internal/domain"
	"github.com/google/uuid"
)

const DefaultListLimit = 20

type Reader interface {
	// Get returns ErrNotFound when no conversion has the id.
	Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error)
	// List returns the most recent conversions, newest first.
	List(ctx context.Context, limit int) ([]domain.Conversion, error)
}

// Store is a full conversion history backend.
type Store interface {
	Storer
	Reader
	Ping(ctx context.Context) error
	Close()
}

// NormalizeLimit clamps a requested page size to 1..100, using DefaultListLimit
// for non-positive values.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, 100)
}
