package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/search/result"
	"github.com/kailas-cloud/shopassist/internal/domain/vector"
	"github.com/kailas-cloud/shopassist/internal/metrics"
)

// DefaultTopK is the number of hits returned when the caller does not ask for a size.
const DefaultTopK = 5

// Service ranks products by the sum of per-partition cosine similarities to a query.
type Service struct {
	repo       Repository
	vec        Vectorizer
	defaultTop int
	logger     *zap.Logger
}

// New creates a search service.
func New(repo Repository, vec Vectorizer, logger *zap.Logger) *Service {
	return &Service{repo: repo, vec: vec, defaultTop: DefaultTopK, logger: logger}
}

// WithDefaultTopK overrides the result size used when Search gets topK <= 0.
func (s *Service) WithDefaultTopK(k int) *Service {
	if k > 0 {
		s.defaultTop = k
	}
	return s
}

// Search embeds the query, scores every indexed product, and returns the topK best.
// Failures never surface as errors: the result is empty and Reason explains why.
func (s *Service) Search(ctx context.Context, query string, topK int) result.Result {
	start := time.Now()
	res := s.search(ctx, query, topK)
	metrics.SearchRequestDuration.Observe(time.Since(start).Seconds())

	switch {
	case res.Reason() != nil:
		metrics.SearchResultsTotal.WithLabelValues("failed").Inc()
	case res.Empty():
		metrics.SearchResultsTotal.WithLabelValues("empty").Inc()
	default:
		metrics.SearchResultsTotal.WithLabelValues("ok").Inc()
	}
	return res
}

func (s *Service) search(ctx context.Context, query string, topK int) result.Result {
	if topK <= 0 {
		topK = s.defaultTop
	}

	qvec, err := s.vec.Embed(ctx, query)
	if err != nil {
		// Vectorizer already logged the cause. Callers print the wrapped reason
		// ("No results: query embedding: ..."), not a fixed "failed to generate query vector" line.
		return result.Failed(fmt.Errorf("query embedding: %w", err))
	}

	parts, err := vector.Partition(qvec, s.repo.Parts())
	if err != nil {
		return s.fail("partition query", err)
	}

	// K = document count makes every partition search cover the whole index.
	n, err := s.repo.Count(ctx)
	if err != nil {
		return s.fail("count documents", err)
	}
	if n == 0 {
		s.logger.Info("Search on empty index", zap.String("query", query))
		return result.New(nil)
	}

	perPart := make([][]result.Hit, len(parts))
	for i, p := range parts {
		hits, err := s.repo.SearchPartition(ctx, i, p, n)
		if err != nil {
			return s.fail(fmt.Sprintf("search %s", vector.FieldName(i)), err)
		}
		perPart[i] = hits
	}

	hits := fuseSum(perPart, topK)
	s.logger.Debug("Search completed",
		zap.String("query", query),
		zap.Int("documents", n),
		zap.Int("hits", len(hits)),
	)
	return result.New(hits)
}

func (s *Service) fail(op string, err error) result.Result {
	s.logger.Error("Search failed", zap.String("op", op), zap.Error(err))
	return result.Failed(fmt.Errorf("%s: %w: %w", op, domain.ErrSearchFailed, err))
}
