// Package metrics holds the Prometheus instrumentation of a run.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Alignment Prometheus metrics.
var (
	BundlesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "realign",
			Name:      "bundles_total",
			Help:      "Document bundles by outcome",
		},
		[]string{"outcome"}, // "aligned" / "empty" / "skipped" / "failed"
	)

	BundleDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "realign",
			Name:      "bundle_duration_seconds",
			Help:      "Per-bundle alignment duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	PairsScoredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "realign",
			Name:      "pairs_scored_total",
			Help:      "Candidate sentence pairs scored",
		},
	)

	CombinedScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "realign",
			Name:      "combined_score",
			Help:      "Combined confidence of kept alignment pairs",
			Buckets:   prometheus.LinearBuckets(0.05, 0.05, 19),
		},
	)

	SentencesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "realign",
			Name:      "sentences_total",
			Help:      "Sentences by alignment outcome and side",
		},
		[]string{"side", "outcome"}, // side: "source"/"target"; outcome: "matched"/"unmatched"
	)

	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "realign",
			Name:      "embedding_requests_total",
			Help:      "Remote embedding requests",
		},
		[]string{"model", "status"},
	)
)

var registered bool

// Register registers the alignment metrics. Must be called once from
// main; no init() registration.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(BundlesTotal)
	prometheus.MustRegister(BundleDuration)
	prometheus.MustRegister(PairsScoredTotal)
	prometheus.MustRegister(CombinedScore)
	prometheus.MustRegister(SentencesTotal)
	prometheus.MustRegister(EmbeddingRequestsTotal)
	registered = true
}
