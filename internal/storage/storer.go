package storage

import (
	"context"

	"github.com/DjordjeVuckovic/shunting-yard/internal/domain"
	"github.com/google/uuid"
)

// Storer persists conversions.
type Storer interface {
	Save(ctx context.Context, conversion domain.Conversion) (uuid.UUID, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
	ErrNotFound          StorerError = "conversion not found"
)

func (e StorerError) Error() string {
	return string(e)
}
