package metrics

import "github.com/prometheus/client_golang/prometheus"

// Indexing and search Prometheus metrics.
var (
	IndexedDocumentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopassist",
			Name:      "indexed_documents_total",
			Help:      "Catalog documents processed by the indexer",
		},
		[]string{"status"}, // "ok" / "skipped" / "error"
	)

	SearchRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shopassist",
			Name:      "search_request_duration_seconds",
			Help:      "Product search duration in seconds, embedding included",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	SearchResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopassist",
			Name:      "search_requests_total",
			Help:      "Product searches by outcome",
		},
		[]string{"status"}, // "ok" / "empty" / "failed"
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers indexing and search metrics. Must be called once from main.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(IndexedDocumentsTotal)
	prometheus.MustRegister(SearchRequestDuration)
	prometheus.MustRegister(SearchResultsTotal)
	pipelineMetricsRegistered = true
}

// Register registers every metric family of the service. Must be called once from main.
func Register() {
	RegisterEmbeddingMetrics()
	RegisterGenerationMetrics()
	RegisterPipelineMetrics()
	RegisterHTTPMetrics()
}
