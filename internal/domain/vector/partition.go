// Package vector splits embeddings into fixed-size partitions for multi-field indexing.
//
// Dense vector fields in the search engine are declared with a fixed dimension, so an
// embedding of length L is stored as N fields of length L/N. Any remainder elements
// (L not divisible by N) are dropped; the schema dimension is always PartDim(L, N).
package vector

import (
	"errors"
	"fmt"
)

// FieldPrefix is the hash field name prefix of a partition.
const FieldPrefix = "vector_part_"

// ErrInvalidParts signals a non-positive partition count.
var ErrInvalidParts = errors.New("partition count must be positive")

// PartDim returns the per-partition dimension for an embedding of length l split into n parts.
func PartDim(l, n int) int {
	if n <= 0 {
		return 0
	}
	return l / n
}

// Partition splits v into exactly n contiguous chunks of len(v)/n elements.
// Trailing elements beyond n*(len(v)/n) are dropped. Chunks are copies of v.
func Partition(v []float32, n int) ([][]float32, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidParts, n)
	}
	size := len(v) / n
	parts := make([][]float32, n)
	for i := range parts {
		chunk := make([]float32, size)
		copy(chunk, v[i*size:(i+1)*size])
		parts[i] = chunk
	}
	return parts, nil
}

// Concat joins partitions back into one vector in partition order.
func Concat(parts [][]float32) []float32 {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]float32, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// FieldName returns the field name of the i-th (zero-based) partition: vector_part_{i+1}.
func FieldName(i int) string {
	return fmt.Sprintf("%s%d", FieldPrefix, i+1)
}

// FieldNames returns the field names for n partitions.
func FieldNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = FieldName(i)
	}
	return names
}
