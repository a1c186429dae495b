package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.NodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      "nodes_total",
			Help:      "Number of nodes in the network",
		},
	)

	r.LinksTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      "links_total",
			Help:      "Number of links in the network",
		},
	)

	r.ZonesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      "zones_total",
			Help:      "Number of connectivity zones after the last rebuild",
		},
	)

	r.ConstructionRejectionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "construction_rejections_total",
			Help:      "Node and link additions rejected during construction",
		},
		[]string{"reason"},
	)

	r.StaleLinksForgivenTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "stale_links_forgiven_total",
			Help:      "Stale-suggested link flags cleared after expiry",
		},
	)
}
