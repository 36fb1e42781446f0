package search

import (
	"context"

	"github.com/kailas-cloud/shopassist/internal/domain/search/result"
)

// Repository defines the storage contract for partitioned vector search.
type Repository interface {
	// SearchPartition returns hits for one partition field, scored by cosine similarity.
	SearchPartition(ctx context.Context, part int, vec []float32, k int) ([]result.Hit, error)
	Count(ctx context.Context) (int, error)
	Parts() int
}

// Vectorizer turns text into a validated embedding.
type Vectorizer interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
