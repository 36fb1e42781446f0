package domain

import "context"

// Embedder is the shared text vectorization contract between layers.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// EmbeddingResult carries the embedding vector and token usage through the decorator chain.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// Message is a single role-tagged chat message sent to a text generation provider.
type Message struct {
	Role    string
	Content string
}

// Chat message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Completer produces a text completion for an ordered list of messages.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
