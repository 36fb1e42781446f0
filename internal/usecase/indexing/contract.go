package indexing

import (
	"context"

	"github.com/kailas-cloud/shopassist/internal/domain/product"
)

// Repository manages the product index and writes documents into it.
type Repository interface {
	EnsureIndex(ctx context.Context) (created bool, err error)
	Drop(ctx context.Context) error
	BulkPut(ctx context.Context, docs []product.Document) []error
	Parts() int
}

// Vectorizer turns text into a validated embedding.
type Vectorizer interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
