package assistant

import (
	"context"

	"github.com/kailas-cloud/shopassist/internal/domain"
)

// Completer produces a chat completion.
type Completer interface {
	Complete(ctx context.Context, messages []domain.Message) (string, error)
}
