package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/shunting-yard/internal/storage"
	"github.com/DjordjeVuckovic/shunting-yard/internal/storage/es"
	"github.com/DjordjeVuckovic/shunting-yard/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/shunting-yard/internal/storage/pg"
)

// NewStore creates the conversion history backend selected by cfg.
func NewStore(ctx context.Context, cfg StorageConfig) (storage.Store, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		s, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return s, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		return es.NewStorer(ctx, *cfg.Es)

	case storage.InMem:
		return in_mem.NewInMemStorer(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
