package product

import (
	"fmt"

	"github.com/kailas-cloud/shopassist/internal/domain/vector"
)

// Document is a product plus its partitioned description embedding, ready for indexing.
type Document struct {
	product Product
	parts   [][]float32
}

// NewDocument partitions the embedding into n parts and attaches it to the product.
func NewDocument(p Product, embedding []float32, n int) (Document, error) {
	parts, err := vector.Partition(embedding, n)
	if err != nil {
		return Document{}, fmt.Errorf("partition %q: %w", p.Name(), err)
	}
	return Document{product: p, parts: parts}, nil
}

// Product returns the indexed product.
func (d Document) Product() Product { return d.product }

// Parts returns the vector partitions in field order.
func (d Document) Parts() [][]float32 { return d.parts }

// Fields maps partition field names to their vectors.
func (d Document) Fields() map[string][]float32 {
	m := make(map[string][]float32, len(d.parts))
	for i, p := range d.parts {
		m[vector.FieldName(i)] = p
	}
	return m
}
