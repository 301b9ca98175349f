package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/shunting-yard/internal/domain"
	"github.com/DjordjeVuckovic/shunting-yard/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// Document is the indexed form of a conversion.
type Document struct {
	ID         string         `json:"id"`
	Expression string         `json:"expression"`
	Infix      []domain.Token `json:"infix"`
	Postfix    []domain.Token `json:"postfix"`
	RPN        string         `json:"rpn"`
	Strict     bool           `json:"strict"`
	CreatedAt  time.Time      `json:"created_at"`
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Save(ctx context.Context, conversion domain.Conversion) (uuid.UUID, error) {
	doc := toDocument(conversion)

	res, err := e.client.Index(e.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index conversion: %w", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse conversion ID: %w", err)
	}

	slog.Debug("conversion indexed", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return id, nil
}

func (e *Storer) Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error) {
	res, err := e.client.Get(e.indexName, id.String()).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversion %s: %w", id, err)
	}
	if !res.Found {
		return nil, storage.ErrNotFound
	}

	return fromSource(res.Source_)
}

func (e *Storer) List(ctx context.Context, limit int) ([]domain.Conversion, error) {
	sortOrderDesc := sortorder.Desc

	res, err := e.client.Search().
		Index(e.indexName).
		Query(&types.Query{MatchAll: types.NewMatchAllQuery()}).
		Size(storage.NormalizeLimit(limit)).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"created_at": {Order: &sortOrderDesc},
			},
		}).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}

	out := make([]domain.Conversion, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		c, err := fromSource(hit.Source_)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

func (e *Storer) Ping(ctx context.Context) error {
	ok, err := e.client.Ping().IsSuccess(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping Elasticsearch: %w", err)
	}
	if !ok {
		return errors.New("elasticsearch ping was not successful")
	}
	return nil
}

func (e *Storer) Close() {}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	tokenProps := types.NewObjectProperty()
	tokenProps.Properties = map[string]types.Property{
		"lexeme":      types.NewKeywordProperty(),
		"kind":        types.NewKeywordProperty(),
		"type":        types.NewKeywordProperty(),
		"role":        types.NewKeywordProperty(),
		"association": types.NewKeywordProperty(),
		"precedence":  types.NewIntegerNumberProperty(),
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"expression": types.NewKeywordProperty(),
			"infix":      tokenProps,
			"postfix":    tokenProps,
			"rpn":        types.NewKeywordProperty(),
			"strict":     types.NewBooleanProperty(),
			"created_at": types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

func toDocument(c domain.Conversion) Document {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return Document{
		ID:         c.ID.String(),
		Expression: c.Expression,
		Infix:      c.Infix,
		Postfix:    c.Postfix,
		RPN:        c.RPN(),
		Strict:     c.Strict,
		CreatedAt:  c.CreatedAt,
	}
}

func fromSource(source json.RawMessage) (*domain.Conversion, error) {
	var doc Document
	if err := json.Unmarshal(source, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversion document: %w", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse conversion ID %q: %w", doc.ID, err)
	}

	return &domain.Conversion{
		ID:         id,
		Expression: doc.Expression,
		Infix:      doc.Infix,
		Postfix:    doc.Postfix,
		Strict:     doc.Strict,
		CreatedAt:  doc.CreatedAt,
	}, nil
}
