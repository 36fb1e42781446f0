// Package db defines the search engine storage contract used by repositories.
// Implementations speak the FT.* command family (Redis 8 RediSearch, Valkey valkey-search).
package db

import (
	"context"
	"time"
)

// Backend names the FT.* implementation behind a Store.
type Backend string

const (
	// BackendRedis is Redis 8 with RediSearch.
	BackendRedis Backend = "redis"
	// BackendValkey is Valkey with valkey-search: no TEXT fields, no bare FT.SEARCH without KNN.
	BackendValkey Backend = "valkey"
)

// Store is the database facade combining all sub-interfaces.
type Store interface {
	Pinger
	HashStore
	VectorCache
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashSetItem holds a single key+fields pair for pipelined HSET.
type HashSetItem struct {
	Key    string
	Fields map[string]string
}

// HashStore provides pipelined hash writes.
type HashStore interface {
	// HSetMulti writes all items in one pipelined round-trip and reports one error slot per
	// item (nil on success). Items are independent: a rejected item does not roll back others.
	HSetMulti(ctx context.Context, items []HashSetItem) []error
}

// VectorCache stores standalone vectors with an expiry, outside any index.
type VectorCache interface {
	GetVector(ctx context.Context, key string) ([]float32, error)
	SetVector(ctx context.Context, key string, vec []float32, ttl time.Duration) error
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string, deleteDocs bool) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SupportsTextSearch(ctx context.Context) bool
}

// Searcher provides search operations over FT indexes.
type Searcher interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
	// SearchCount returns the number of documents in index, all stored under keyPrefix.
	SearchCount(ctx context.Context, index, keyPrefix string) (int, error)
}
