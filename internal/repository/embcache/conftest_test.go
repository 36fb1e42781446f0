package embcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/db"
	"github.com/kailas-cloud/shopassist/internal/domain"
)

type mockEmbedder struct {
	result domain.EmbeddingResult
	err    error
	calls  int
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	m.calls++
	return m.result, m.err
}

// mockVectorStore implements the consumer interface for tests.
type mockVectorStore struct {
	getFn func(ctx context.Context, key string) ([]float32, error)
	setFn func(ctx context.Context, key string, vec []float32, ttl time.Duration) error
}

func (m *mockVectorStore) GetVector(ctx context.Context, key string) ([]float32, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockVectorStore) SetVector(ctx context.Context, key string, vec []float32, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, vec, ttl)
	}
	return nil
}

func newTestCachedEmbedder(t *testing.T, inner *mockEmbedder) (*CachedEmbedder, *mockVectorStore) {
	t.Helper()
	ms := &mockVectorStore{}
	ce := New(inner, ms, Options{KeyPrefix: "test:emb:", TTL: time.Hour}, nil, zap.NewNop())
	return ce, ms
}
