package search

import (
	"sort"

	"github.com/kailas-cloud/shopassist/internal/domain/search/result"
)

// fuseSum merges per-partition hit lists by summing each document's partition scores.
// A document missing from some partition list contributes nothing for that partition.
// Ordering: total score descending, then name ascending for a stable tie break.
func fuseSum(partitions [][]result.Hit, topK int) []result.Hit {
	type scored struct {
		hit   result.Hit
		score float64
	}

	merged := make(map[string]*scored)
	order := make([]string, 0)

	for _, hits := range partitions {
		for _, h := range hits {
			if existing, ok := merged[h.ID()]; ok {
				existing.score += h.Score()
				continue
			}
			merged[h.ID()] = &scored{hit: h, score: h.Score()}
			order = append(order, h.ID())
		}
	}

	out := make([]result.Hit, 0, len(merged))
	for _, id := range order {
		s := merged[id]
		// Rebuild hit with the fused score
		out = append(out, result.NewHit(
			s.hit.ID(), s.hit.Name(), s.hit.Description(),
			s.hit.Category(), s.hit.Price(), s.score,
		))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score() != out[j].Score() {
			return out[i].Score() > out[j].Score()
		}
		return out[i].Name() < out[j].Name()
	})

	if len(out) > topK {
		out = out[:topK]
	}
	return out
}
