package indexing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dombatch "github.com/kailas-cloud/shopassist/internal/domain/batch"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
	"github.com/kailas-cloud/shopassist/internal/metrics"
)

// Service builds the product index from a catalog.
type Service struct {
	repo   Repository
	vec    Vectorizer
	logger *zap.Logger
}

// New creates an indexing service.
func New(repo Repository, vec Vectorizer, logger *zap.Logger) *Service {
	return &Service{repo: repo, vec: vec, logger: logger}
}

// SetupOptions controls Setup behavior for an existing index.
type SetupOptions struct {
	// Force indexes the catalog even when the index already existed.
	Force bool
	// Recreate drops the index and its documents first.
	Recreate bool
}

// SetupResult describes what Setup did.
type SetupResult struct {
	Created bool
	Indexed bool
	Report  dombatch.Report
}

// EnsureIndex creates the index when absent. Returns true if it was created.
func (s *Service) EnsureIndex(ctx context.Context) (bool, error) {
	created, err := s.repo.EnsureIndex(ctx)
	if err != nil {
		return false, fmt.Errorf("ensure index: %w", err)
	}
	if created {
		s.logger.Info("Index created")
	} else {
		s.logger.Info("Index already exists")
	}
	return created, nil
}

// Setup ensures the index exists and indexes the catalog when the index was just created
// (or when forced). An existing index is otherwise left as is.
func (s *Service) Setup(ctx context.Context, products []product.Product, opts SetupOptions) (SetupResult, error) {
	if opts.Recreate {
		if err := s.repo.Drop(ctx); err != nil {
			return SetupResult{}, fmt.Errorf("recreate: %w", err)
		}
		s.logger.Info("Index dropped")
	}

	created, err := s.EnsureIndex(ctx)
	if err != nil {
		return SetupResult{}, err
	}

	res := SetupResult{Created: created}
	if !created && !opts.Force {
		return res, nil
	}

	res.Report = s.IndexAll(ctx, products)
	res.Indexed = true
	return res, nil
}

// IndexAll embeds every product description, partitions the vectors, and writes all
// documents in one bulk request. Products whose embedding fails are skipped; write
// failures are reported per item and do not roll back successful writes.
func (s *Service) IndexAll(ctx context.Context, products []product.Product) dombatch.Report {
	results := make([]dombatch.Result, len(products))
	docs := make([]product.Document, 0, len(products))
	docIdx := make([]int, 0, len(products))

	for i, p := range products {
		vec, err := s.vec.Embed(ctx, p.Description())
		if err != nil {
			// Vectorizer already logged the cause.
			results[i] = dombatch.NewSkipped(p.Name(), err)
			continue
		}

		doc, err := product.NewDocument(p, vec, s.repo.Parts())
		if err != nil {
			s.logger.Error("Failed to build document", zap.String("product", p.Name()), zap.Error(err))
			results[i] = dombatch.NewError(p.Name(), err)
			continue
		}

		docs = append(docs, doc)
		docIdx = append(docIdx, i)
	}

	if len(docs) > 0 {
		errs := s.repo.BulkPut(ctx, docs)
		for j, i := range docIdx {
			var err error
			if j < len(errs) {
				err = errs[j]
			}
			if err != nil {
				s.logger.Error("Failed to index document",
					zap.String("product", products[i].Name()),
					zap.Error(err),
				)
				results[i] = dombatch.NewError(products[i].Name(), fmt.Errorf("bulk write: %w", err))
				continue
			}
			results[i] = dombatch.NewOK(products[i].Name())
		}
	}

	report := dombatch.Report{Items: results}
	metrics.IndexedDocumentsTotal.WithLabelValues(string(dombatch.StatusOK)).Add(float64(report.Indexed()))
	metrics.IndexedDocumentsTotal.WithLabelValues(string(dombatch.StatusSkipped)).Add(float64(report.Skipped()))
	metrics.IndexedDocumentsTotal.WithLabelValues(string(dombatch.StatusError)).Add(float64(report.Failed()))

	s.logger.Info("Catalog indexed",
		zap.Int("total", len(products)),
		zap.Int("indexed", report.Indexed()),
		zap.Int("skipped", report.Skipped()),
		zap.Int("failed", report.Failed()),
	)
	return report
}
