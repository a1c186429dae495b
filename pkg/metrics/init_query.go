package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initQueryMetrics() {
	r.NearestQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "nearest_queries_total",
			Help:      "Nearest-node queries by outcome",
		},
		[]string{"outcome"},
	)

	r.NearestQueryDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: r.namespace,
			Name:      "nearest_query_duration_seconds",
			Help:      "Nearest-node query duration in seconds",
			Buckets:   []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
		},
	)

	r.BoxQueriesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "box_queries_total",
			Help:      "Bounded box queries executed",
		},
	)

	r.BoxCandidates = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: r.namespace,
			Name:      "box_query_candidates",
			Help:      "Nodes returned per box query",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	r.TracesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "visibility_traces_total",
			Help:      "Line traces issued during nearest-node resolution",
		},
		[]string{"result"},
	)

	r.BandSearchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "band_searches_total",
			Help:      "Distance-bounded searches by outcome",
		},
		[]string{"outcome"},
	)

	r.BandSearchVisits = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: r.namespace,
			Name:      "band_search_visits",
			Help:      "Nodes visited per distance-bounded search",
			Buckets:   []float64{1, 2, 5, 10, 50, 100, 500, 1000},
		},
	)

	r.CacheFlushesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "nearest_cache_flushes_total",
			Help:      "Explicit nearest-node cache flushes",
		},
	)
}
