package navgraph

import (
	"math"
	"sync/atomic"
	"time"
)

// Statistics is a snapshot of network counters
type Statistics struct {
	InstanceID       string
	NodeCount        int
	LinkCount        int
	Rejections       uint64
	NearestQueries   uint64
	CacheHits        uint64
	NegativeHits     uint64
	CacheMisses      uint64
	CachedEntries    int
	BoxQueries       uint64
	Traces           uint64
	BandSearches     uint64
	BandVisits       uint64
	AvgNearestTimeMs float64
}

// counters are updated atomically so concurrent NearestNode calls can share them
type counters struct {
	rejections     atomic.Uint64
	nearestQueries atomic.Uint64
	cacheHits      atomic.Uint64
	negativeHits   atomic.Uint64
	cacheMisses    atomic.Uint64
	boxQueries     atomic.Uint64
	traces         atomic.Uint64
	bandSearches   atomic.Uint64
	bandVisits     atomic.Uint64

	// avgNearestBits stores the average nearest query time in ms as float64 bits
	avgNearestBits atomic.Uint64
}

// Stats returns current network statistics
func (n *Network) Stats() Statistics {
	return Statistics{
		InstanceID:       n.instanceID,
		NodeCount:        len(n.nodes),
		LinkCount:        len(n.links),
		Rejections:       n.stats.rejections.Load(),
		NearestQueries:   n.stats.nearestQueries.Load(),
		CacheHits:        n.stats.cacheHits.Load(),
		NegativeHits:     n.stats.negativeHits.Load(),
		CacheMisses:      n.stats.cacheMisses.Load(),
		CachedEntries:    n.cache.live(n.clock()),
		BoxQueries:       n.stats.boxQueries.Load(),
		Traces:           n.stats.traces.Load(),
		BandSearches:     n.stats.bandSearches.Load(),
		BandVisits:       n.stats.bandVisits.Load(),
		AvgNearestTimeMs: math.Float64frombits(n.stats.avgNearestBits.Load()),
	}
}

// trackNearestTime folds duration into an exponential moving average:
// new_avg = 0.9 * old_avg + 0.1 * new_value
func (c *counters) trackNearestTime(duration time.Duration) {
	ms := float64(duration.Nanoseconds()) / 1e6
	for {
		oldBits := c.avgNearestBits.Load()
		newAvg := 0.9*math.Float64frombits(oldBits) + 0.1*ms
		if c.avgNearestBits.CompareAndSwap(oldBits, math.Float64bits(newAvg)) {
			return
		}
	}
}

func (n *Network) recordBoxQuery(results int) {
	if n.metricsRegistry != nil {
		n.metricsRegistry.RecordBoxQuery(results)
	}
}

func (n *Network) updateGraphMetrics() {
	if n.metricsRegistry != nil {
		n.metricsRegistry.UpdateGraphMetrics(len(n.nodes), len(n.links))
	}
}
