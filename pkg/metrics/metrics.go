package metrics

import (
	"time"
)

// RecordNearestQuery records a nearest-node query with its outcome and duration
func (r *Registry) RecordNearestQuery(outcome string, duration time.Duration) {
	r.NearestQueriesTotal.WithLabelValues(outcome).Inc()
	r.NearestQueryDuration.Observe(duration.Seconds())
}

// RecordBoxQuery records a box query and the number of nodes it returned
func (r *Registry) RecordBoxQuery(candidates int) {
	r.BoxQueriesTotal.Inc()
	r.BoxCandidates.Observe(float64(candidates))
}

// RecordTrace records a visibility trace
func (r *Registry) RecordTrace(obstructed bool) {
	if obstructed {
		r.TracesTotal.WithLabelValues("obstructed").Inc()
		return
	}
	r.TracesTotal.WithLabelValues("clear").Inc()
}

// RecordBandSearch records a distance-bounded search and how many nodes it visited
func (r *Registry) RecordBandSearch(found bool, visits int) {
	if found {
		r.BandSearchesTotal.WithLabelValues(OutcomeFound).Inc()
	} else {
		r.BandSearchesTotal.WithLabelValues(OutcomeNotFound).Inc()
	}
	r.BandSearchVisits.Observe(float64(visits))
}

// RecordRejection records a rejected construction call
func (r *Registry) RecordRejection(reason string) {
	r.ConstructionRejectionsTotal.WithLabelValues(reason).Inc()
}

// UpdateGraphMetrics sets the graph size gauges
func (r *Registry) UpdateGraphMetrics(nodes, links int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.NodesTotal.Set(float64(nodes))
	r.LinksTotal.Set(float64(links))
}

// SetZoneCount sets the zone gauge after a rebuild
func (r *Registry) SetZoneCount(zones int) {
	r.ZonesTotal.Set(float64(zones))
}
