package inventory

import (
	"fmt"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/shopassist/internal/db"
	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
	"github.com/kailas-cloud/shopassist/internal/domain/search/result"
	"github.com/kailas-cloud/shopassist/internal/domain/vector"
)

// Hash field names of a stored product.
const (
	fieldName        = "name"
	fieldCategory    = "category"
	fieldDescription = "description"
	fieldPrice       = "price"
)

var returnFields = []string{fieldName, fieldDescription, fieldCategory, fieldPrice}

// buildIndex creates the IndexDefinition for product hashes.
// textSearchEnabled adds TEXT fields for name and description; valkey-search does not support TEXT.
func buildIndex(cfg Config, textSearchEnabled bool) (*db.IndexDefinition, error) {
	partDim := vector.PartDim(cfg.Dims, cfg.Parts)
	if partDim <= 0 {
		return nil, fmt.Errorf("dims %d split into %d parts: %w", cfg.Dims, cfg.Parts, domain.ErrInvalidSchema)
	}

	b := db.NewIndex(cfg.IndexName).Prefix(cfg.KeyPrefix + "product:")
	if textSearchEnabled {
		b = b.Text(fieldName).Text(fieldDescription)
	}
	b = b.Tag(fieldCategory).Numeric(fieldPrice)
	for _, name := range vector.FieldNames(cfg.Parts) {
		b = b.Vector(name, partDim, cfg.Algorithm, db.DistanceCosine, 0, 0)
	}

	def, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSchema, err)
	}
	return def, nil
}

func documentToHash(doc product.Document) map[string]string {
	p := doc.Product()
	m := map[string]string{
		fieldName:        p.Name(),
		fieldCategory:    p.Category(),
		fieldDescription: p.Description(),
		fieldPrice:       strconv.FormatFloat(p.Price(), 'f', -1, 64),
	}
	for name, part := range doc.Fields() {
		m[name] = rueidis.VectorString32(part)
	}
	return m
}

func entryToHit(id string, entry db.SearchEntry) (result.Hit, error) {
	var price float64
	if s := entry.Fields[fieldPrice]; s != "" {
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return result.Hit{}, fmt.Errorf("parse price %q: %w", s, err)
		}
		price = p
	}

	return result.NewHit(
		id,
		entry.Fields[fieldName],
		entry.Fields[fieldDescription],
		entry.Fields[fieldCategory],
		price,
		1-entry.Distance,
	), nil
}
