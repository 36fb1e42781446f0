package embedding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/metrics"
)

const previewLen = 60

// Vectorizer turns text into a validated embedding of fixed length.
// Every failure is logged here and returned wrapped with domain.ErrNoEmbedding,
// so callers can skip the record or abort the query without logging again.
// Transport metrics (requests, duration, tokens) are recorded in transport/openai.
type Vectorizer struct {
	inner    domain.Embedder
	provider string
	model    string
	dims     int
	logger   *zap.Logger
}

// NewVectorizer wraps an embedder with normalization, size checks, and logging.
func NewVectorizer(
	inner domain.Embedder, provider, model string, dims int, logger *zap.Logger,
) *Vectorizer {
	return &Vectorizer{
		inner:    inner,
		provider: provider,
		model:    model,
		dims:     dims,
		logger:   logger,
	}
}

// Dimensions returns the expected embedding length.
func (v *Vectorizer) Dimensions() int { return v.dims }

// Embed normalizes line breaks to spaces, embeds the text, and checks the vector length.
func (v *Vectorizer) Embed(ctx context.Context, text string) ([]float32, error) {
	text = Normalize(text)
	if strings.TrimSpace(text) == "" {
		metrics.EmbeddingRejectedTotal.WithLabelValues("empty_text").Inc()
		v.logger.Warn("Skipping embedding of empty text")
		return nil, fmt.Errorf("%w: %w", domain.ErrNoEmbedding, domain.ErrEmptyText)
	}

	start := time.Now()

	result, err := v.inner.Embed(ctx, text)

	duration := time.Since(start)

	if err != nil {
		v.logger.Error("Embedding request failed",
			zap.String("provider", v.provider),
			zap.String("model", v.model),
			zap.String("text", preview(text)),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: embed: %w", domain.ErrNoEmbedding, err)
	}

	if len(result.Embedding) != v.dims {
		metrics.EmbeddingRejectedTotal.WithLabelValues("size_mismatch").Inc()
		v.logger.Error("Embedding size mismatch",
			zap.String("provider", v.provider),
			zap.String("model", v.model),
			zap.String("text", preview(text)),
			zap.Int("expected", v.dims),
			zap.Int("actual", len(result.Embedding)),
		)
		return nil, fmt.Errorf("%w: got %d dimensions, want %d: %w",
			domain.ErrNoEmbedding, len(result.Embedding), v.dims, domain.ErrEmbeddingSizeMismatch)
	}

	v.logger.Debug("Embedding request completed",
		zap.String("provider", v.provider),
		zap.String("model", v.model),
		zap.Duration("duration", duration),
		zap.Int("dimensions", len(result.Embedding)),
		zap.Int("prompt_tokens", result.PromptTokens),
		zap.Int("total_tokens", result.TotalTokens),
	)

	return result.Embedding, nil
}

// Normalize replaces line breaks with single spaces.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "\r", " ")
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLen {
		return s
	}
	return string(r[:previewLen]) + "..."
}
