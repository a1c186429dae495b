package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name
const DefaultNamespace = "navgraph"

// Nearest-node query outcomes
const (
	OutcomeCacheHit      = "cache_hit"
	OutcomeCacheNegative = "cache_negative"
	OutcomeFound         = "found"
	OutcomeNotFound      = "not_found"
)

// Registry holds all navigation metrics
type Registry struct {
	// Graph metrics
	NodesTotal                  prometheus.Gauge
	LinksTotal                  prometheus.Gauge
	ZonesTotal                  prometheus.Gauge
	ConstructionRejectionsTotal *prometheus.CounterVec
	StaleLinksForgivenTotal     prometheus.Counter

	// Query metrics
	NearestQueriesTotal  *prometheus.CounterVec
	NearestQueryDuration prometheus.Histogram
	BoxQueriesTotal      prometheus.Counter
	BoxCandidates        prometheus.Histogram
	TracesTotal          *prometheus.CounterVec
	BandSearchesTotal    *prometheus.CounterVec
	BandSearchVisits     prometheus.Histogram
	CacheFlushesTotal    prometheus.Counter

	namespace string
	registry  *prometheus.Registry
	mu        sync.RWMutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry under the default namespace
func NewRegistry() *Registry {
	return NewRegistryWithNamespace(DefaultNamespace)
}

// NewRegistryWithNamespace creates a registry whose metric names start with namespace
func NewRegistryWithNamespace(namespace string) *Registry {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	r := &Registry{
		namespace: namespace,
		registry:  prometheus.NewRegistry(),
	}

	r.initGraphMetrics()
	r.initQueryMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Namespace returns the metric name prefix
func (r *Registry) Namespace() string {
	return r.namespace
}
