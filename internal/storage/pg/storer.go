package pg

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/shunting-yard/internal/domain"
	"github.com/DjordjeVuckovic/shunting-yard/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

type Storer struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	if pool == nil {
		return nil, errors.New("connection pool is required")
	}
	return &Storer{pool: pool, db: pool.conn}, nil
}

// EnsureSchema creates the conversions table when it is missing.
func (s *Storer) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *Storer) Save(ctx context.Context, conversion domain.Conversion) (uuid.UUID, error) {
	if conversion.ID == uuid.Nil {
		conversion.ID = uuid.New()
	}
	if conversion.CreatedAt.IsZero() {
		conversion.CreatedAt = time.Now().UTC()
	}

	infixJSON, err := json.Marshal(conversion.Infix)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal infix tokens: %w", err)
	}
	postfixJSON, err := json.Marshal(conversion.Postfix)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal postfix tokens: %w", err)
	}

	cmd := `
        INSERT INTO conversions (id, expression, infix, postfix, rpn, strict, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id;
    `
	var id uuid.UUID
	err = s.db.QueryRow(
		ctx,
		cmd,
		conversion.ID,
		conversion.Expression,
		infixJSON,
		postfixJSON,
		conversion.RPN(),
		conversion.Strict,
		conversion.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert conversion: %w", err)
	}

	return id, nil
}

func (s *Storer) Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, expression, infix, postfix, strict, created_at
        FROM conversions
        WHERE id = $1
    `, id)

	c, err := scanConversion(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversion %s: %w", id, err)
	}
	return c, nil
}

func (s *Storer) List(ctx context.Context, limit int) ([]domain.Conversion, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, expression, infix, postfix, strict, created_at
        FROM conversions
        ORDER BY created_at DESC
        LIMIT $1
    `, storage.NormalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	defer rows.Close()

	var out []domain.Conversion
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversions: %w", err)
	}
	return out, nil
}

func (s *Storer) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storer) Close() {
	s.pool.Close()
}

func scanConversion(row pgx.Row) (*domain.Conversion, error) {
	var (
		c                    domain.Conversion
		infixRaw, postfixRaw []byte
	)
	if err := row.Scan(&c.ID, &c.Expression, &infixRaw, &postfixRaw, &c.Strict, &c.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(infixRaw, &c.Infix); err != nil {
		return nil, fmt.Errorf("failed to unmarshal infix tokens: %w", err)
	}
	if err := json.Unmarshal(postfixRaw, &c.Postfix); err != nil {
		return nil, fmt.Errorf("failed to unmarshal postfix tokens: %w", err)
	}
	return &c, nil
}
