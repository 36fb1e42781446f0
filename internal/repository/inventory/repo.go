package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kailas-cloud/shopassist/internal/db"
	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
	"github.com/kailas-cloud/shopassist/internal/domain/search/result"
	"github.com/kailas-cloud/shopassist/internal/domain/vector"
)

// store is the consumer interface for the product inventory (ISP).
//
//nolint:interfacebloat // inventory repo needs index lifecycle + hash writes + search
type store interface {
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	DropIndex(ctx context.Context, name string, deleteDocs bool) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SupportsTextSearch(ctx context.Context) bool
	HSetMulti(ctx context.Context, items []db.HashSetItem) []error
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, keyPrefix string) (int, error)
}

// Config describes the index layout. PartDim is derived from Dims and Parts.
type Config struct {
	IndexName string
	KeyPrefix string
	Dims      int
	Parts     int
	Algorithm db.VectorAlgorithm
}

// Repo implements the indexing and search repositories over an FT index of product hashes.
type Repo struct {
	store store
	cfg   Config
}

// New creates an inventory repository.
func New(s store, cfg Config) *Repo {
	if cfg.Algorithm == "" {
		cfg.Algorithm = db.VectorFlat
	}
	return &Repo{store: s, cfg: cfg}
}

// IndexName returns the FT index name.
func (r *Repo) IndexName() string { return r.cfg.IndexName }

// Parts returns the number of vector partitions per document.
func (r *Repo) Parts() int { return r.cfg.Parts }

// Exists reports whether the index has been created.
func (r *Repo) Exists(ctx context.Context) (bool, error) {
	ok, err := r.store.IndexExists(ctx, r.cfg.IndexName)
	if err != nil {
		return false, fmt.Errorf("check index %s: %w", r.cfg.IndexName, err)
	}
	return ok, nil
}

// Schema returns the index definition for the configured layout.
func (r *Repo) Schema(ctx context.Context) (*db.IndexDefinition, error) {
	return buildIndex(r.cfg, r.store.SupportsTextSearch(ctx))
}

// EnsureIndex creates the index when absent. Returns true if it was created here;
// an existing index is left untouched.
func (r *Repo) EnsureIndex(ctx context.Context) (bool, error) {
	exists, err := r.Exists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	def, err := r.Schema(ctx)
	if err != nil {
		return false, fmt.Errorf("build index: %w", err)
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return false, nil
		}
		return false, fmt.Errorf("create index %s: %w", r.cfg.IndexName, err)
	}
	return true, nil
}

// Drop removes the index together with its product hashes. A missing index is not an error.
func (r *Repo) Drop(ctx context.Context) error {
	if err := r.store.DropIndex(ctx, r.cfg.IndexName, true); err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return nil
		}
		return fmt.Errorf("drop index %s: %w", r.cfg.IndexName, err)
	}
	return nil
}

// BulkPut writes all documents in one pipelined round-trip.
// The returned slice has one entry per document; nil means the document was stored.
func (r *Repo) BulkPut(ctx context.Context, docs []product.Document) []error {
	if len(docs) == 0 {
		return nil
	}

	errs := make([]error, len(docs))
	items := make([]db.HashSetItem, 0, len(docs))
	pos := make([]int, 0, len(docs))

	for i := range docs {
		if len(docs[i].Parts()) != r.cfg.Parts {
			errs[i] = fmt.Errorf("document %q has %d parts, want %d: %w",
				docs[i].Product().Name(), len(docs[i].Parts()), r.cfg.Parts, domain.ErrInvalidSchema)
			continue
		}
		items = append(items, db.HashSetItem{
			Key:    r.productKey(docs[i].Product().ID()),
			Fields: documentToHash(docs[i]),
		})
		pos = append(pos, i)
	}

	if len(items) == 0 {
		return errs
	}

	for j, err := range r.store.HSetMulti(ctx, items) {
		if err != nil && j < len(pos) {
			errs[pos[j]] = fmt.Errorf("hset %s: %w", items[j].Key, err)
		}
	}
	return errs
}

// Count returns the number of indexed products.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, r.cfg.IndexName, r.productPrefix())
	if err != nil {
		return 0, fmt.Errorf("search count %s: %w", r.cfg.IndexName, err)
	}
	return n, nil
}

// SearchPartition runs a KNN search over one vector partition field.
// Hit scores are cosine similarities (1 - distance) for that partition only.
func (r *Repo) SearchPartition(
	ctx context.Context, part int, vec []float32, k int,
) ([]result.Hit, error) {
	field := vector.FieldName(part)

	sr, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    r.cfg.IndexName,
		Field:        field,
		Vector:       vec,
		K:            k,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, fmt.Errorf("knn %s: %w", field, err)
	}
	if sr == nil {
		return nil, nil
	}

	hits := make([]result.Hit, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		hit, err := entryToHit(r.productID(entry.Key), entry)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Key, err)
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func (r *Repo) productPrefix() string {
	return r.cfg.KeyPrefix + "product:"
}

func (r *Repo) productKey(id string) string {
	return r.productPrefix() + id
}

func (r *Repo) productID(key string) string {
	return strings.TrimPrefix(key, r.productPrefix())
}
