package result

// Hit is a single ranked product returned by a search.
type Hit struct {
	id          string
	name        string
	description string
	category    string
	price       float64
	score       float64
}

// NewHit creates a search hit.
func NewHit(id, name, description, category string, price, score float64) Hit {
	return Hit{
		id: id, name: name, description: description,
		category: category, price: price, score: score,
	}
}

// ID returns the document identifier.
func (h Hit) ID() string { return h.id }

// Name returns the product name.
func (h Hit) Name() string { return h.name }

// Description returns the product description.
func (h Hit) Description() string { return h.description }

// Category returns the product category.
func (h Hit) Category() string { return h.category }

// Price returns the product price.
func (h Hit) Price() float64 { return h.price }

// Score returns the relevance score (sum of per-partition cosine similarities).
func (h Hit) Score() float64 { return h.score }

// Result is the outcome of a search: ranked hits, or no hits with the reason they are missing.
// An empty Result with a nil Reason means nothing matched.
type Result struct {
	hits   []Hit
	reason error
}

// New creates a successful result.
func New(hits []Hit) Result { return Result{hits: hits} }

// Failed creates an empty result that records why the search could not run.
func Failed(reason error) Result { return Result{reason: reason} }

// Hits returns the ranked hits, best first. Never nil.
func (r Result) Hits() []Hit {
	if r.hits == nil {
		return []Hit{}
	}
	return r.hits
}

// Reason returns the upstream failure behind an empty result, or nil.
func (r Result) Reason() error { return r.reason }

// Empty reports whether the result has no hits.
func (r Result) Empty() bool { return len(r.hits) == 0 }

// Names returns the hit names in rank order.
func (r Result) Names() []string {
	names := make([]string, len(r.hits))
	for i, h := range r.hits {
		names[i] = h.name
	}
	return names
}
