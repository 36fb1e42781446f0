package domain

import "errors"

var (
	// ErrInvalidProduct signals a product that fails validation.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrInvalidSchema signals an index schema that cannot be built.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrNoEmbedding wraps every reason a text could not be vectorized.
	ErrNoEmbedding = errors.New("no embedding")
	// ErrEmptyText signals text that is blank after newline normalization.
	ErrEmptyText = errors.New("empty text")
	// ErrEmbeddingSizeMismatch signals a provider vector of unexpected length.
	ErrEmbeddingSizeMismatch = errors.New("embedding size mismatch")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")

	// ErrGenerationFailed signals a text generation provider failure.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrEmptyCompletion signals a completion response without usable choices.
	ErrEmptyCompletion = errors.New("empty completion")
	// ErrNoIngredients signals an instruction request without any search hits.
	ErrNoIngredients = errors.New("no ingredients")

	// ErrSearchFailed signals a search engine failure during a query.
	ErrSearchFailed = errors.New("search failed")
)
