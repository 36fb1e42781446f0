package batch

// ItemStatus is the indexing outcome of a single catalog item.
type ItemStatus string

// Item status values.
const (
	StatusOK ItemStatus = "ok"
	// StatusSkipped marks an item dropped before the bulk write (no embedding).
	StatusSkipped ItemStatus = "skipped"
	// StatusError marks an item rejected by the bulk write.
	StatusError ItemStatus = "error"
)

// Result is the outcome of indexing one product.
type Result struct {
	name   string
	status ItemStatus
	err    error
}

// NewOK creates a successful result.
func NewOK(name string) Result { return Result{name: name, status: StatusOK} }

// NewSkipped creates a result for an item excluded from the batch.
func NewSkipped(name string, err error) Result {
	return Result{name: name, status: StatusSkipped, err: err}
}

// NewError creates a failed result.
func NewError(name string, err error) Result { return Result{name: name, status: StatusError, err: err} }

// Name returns the product name.
func (r Result) Name() string { return r.name }

// Status returns the outcome.
func (r Result) Status() ItemStatus { return r.status }

// Err returns the error, if any.
func (r Result) Err() error { return r.err }

// Report summarizes a bulk indexing run.
type Report struct {
	Items []Result
}

// Count returns how many items have the given status.
func (r Report) Count(status ItemStatus) int {
	n := 0
	for _, it := range r.Items {
		if it.status == status {
			n++
		}
	}
	return n
}

// Indexed returns the number of committed documents.
func (r Report) Indexed() int { return r.Count(StatusOK) }

// Skipped returns the number of items dropped for lack of an embedding.
func (r Report) Skipped() int { return r.Count(StatusSkipped) }

// Failed returns the number of items rejected by the search engine.
func (r Report) Failed() int { return r.Count(StatusError) }
