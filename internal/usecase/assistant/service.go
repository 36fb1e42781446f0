package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/search/result"
	"github.com/kailas-cloud/shopassist/internal/metrics"
)

// FallbackInstructions is returned whenever instructions cannot be generated.
const FallbackInstructions = "Sorry, I couldn't generate cooking instructions at the moment."

// Service turns retrieved products into cooking instructions.
type Service struct {
	llm    Completer
	dish   string
	logger *zap.Logger
}

// New creates an assistant service. dish names the meal in the prompt and may be empty.
func New(llm Completer, dish string, logger *zap.Logger) *Service {
	return &Service{llm: llm, dish: dish, logger: logger}
}

// GenerateInstructions asks the text generation provider for instructions that use the hit names.
// It never fails: any error yields FallbackInstructions.
func (s *Service) GenerateInstructions(ctx context.Context, hits []result.Hit) string {
	text, err := s.Generate(ctx, hits)
	if err != nil {
		metrics.GenerationFallbacksTotal.WithLabelValues(fallbackReason(err)).Inc()
		s.logger.Warn("Falling back to default instructions", zap.Error(err))
		return FallbackInstructions
	}
	return text
}

// Generate is GenerateInstructions with the failure exposed.
func (s *Service) Generate(ctx context.Context, hits []result.Hit) (string, error) {
	if len(hits) == 0 {
		return "", domain.ErrNoIngredients
	}

	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = h.Name()
	}

	out, err := s.llm.Complete(ctx, BuildMessages(s.dish, names))
	if err != nil {
		return "", fmt.Errorf("generate instructions: %w", err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("generate instructions: %w", domain.ErrEmptyCompletion)
	}
	return out, nil
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoIngredients):
		return "no_ingredients"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, domain.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, domain.ErrEmptyCompletion):
		return "empty_completion"
	default:
		return "provider_error"
	}
}
