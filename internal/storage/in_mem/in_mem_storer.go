package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/shunting-yard/internal/domain"
	"github.com/DjordjeVuckovic/shunting-yard/internal/storage"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Conversion
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Conversion),
	}
}

func (s *InMemStorer) Save(ctx context.Context, conversion domain.Conversion) (uuid.UUID, error) {
	if conversion.ID == uuid.Nil {
		conversion.ID = uuid.New()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[conversion.ID] = conversion

	slog.Debug("Saved conversion to in-memory storage", "id", conversion.ID, "expression", conversion.Expression)
	return conversion.ID, nil
}

func (s *InMemStorer) Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	c, ok := s.storage[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (s *InMemStorer) List(ctx context.Context, limit int) ([]domain.Conversion, error) {
	limit = storage.NormalizeLimit(limit)

	s.storageLock.RLock()
	all := make([]domain.Conversion, 0, len(s.storage))
	for _, c := range s.storage {
		all = append(all, c)
	}
	s.storageLock.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *InMemStorer) Ping(ctx context.Context) error {
	return nil
}

func (s *InMemStorer) Close() {}
