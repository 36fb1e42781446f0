package db

// KNNQuery is the input for vector similarity search over one vector field.
type KNNQuery struct {
	IndexName    string
	Field        string
	Vector       []float32
	K            int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
// For KNN queries Distance holds the raw metric distance (COSINE: 1 - cosine similarity).
type SearchEntry struct {
	Key      string
	Distance float64
	Fields   map[string]string
}
