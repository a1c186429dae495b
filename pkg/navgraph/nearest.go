package navgraph

import (
	"time"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
	"github.com/dd0wney/cluso-navgraph/pkg/logging"
	"github.com/dd0wney/cluso-navgraph/pkg/metrics"
)

// nearFilter admits nodes whose medium the agent can move in and which the
// agent has not been told to avoid. Distance is measured from the query point.
type nearFilter struct {
	point geom.Vec3
	agent Agent
}

func (f nearFilter) IsValid(node *Node) bool {
	if f.agent == nil {
		return true
	}
	if !f.agent.Capabilities().Intersects(node.Type().RequiredCapability()) {
		return false
	}
	return !f.agent.IsUnusable(node.ID())
}

func (f nearFilter) DistanceSq(node *Node) float64 {
	return geom.DistSq(node.Origin(), f.point)
}

// NearestNode resolves point to the closest usable node for agent.
//
// Recent answers are served from a small cache. A slot only answers queries near
// its point made with the same hull, agent capabilities and checkVisibility. A
// cached node is re-traced when checkVisibility is set; if the trace is
// obstructed the full search runs and skips that node. The full
// search examines at most MaxNearNodes candidates inside a box around point,
// closest first, and returns the first that the agent fits at, that is visible
// when required and that filter accepts. Failures are cached too.
//
// agent may be nil (human hull, no movement or fit restrictions); filter may be
// nil (accept all). Returns NoNode when nothing qualifies.
func (n *Network) NearestNode(agent Agent, point geom.Vec3, checkVisibility bool, filter AcceptanceFilter) NodeID {
	started := time.Now()
	n.stats.nearestQueries.Add(1)

	if len(n.nodes) == 0 {
		n.finishNearest(metrics.OutcomeNotFound, started)
		return NoNode
	}

	key := newQueryKey(agent, checkVisibility)
	hull := key.hull
	now := n.clock()

	rejected := NoNode
	if idx, cached, ok := n.cache.lookup(point, key, now); ok {
		if cached == NoNode {
			n.stats.negativeHits.Add(1)
			n.finishNearest(metrics.OutcomeCacheNegative, started)
			return NoNode
		}
		if !checkVisibility || !n.trace(point, n.nodes[cached].Position(hull)) {
			n.cache.refresh(idx, key, cached, now)
			n.stats.cacheHits.Add(1)
			n.finishNearest(metrics.OutcomeCacheHit, started)
			return cached
		}
		rejected = cached
	}
	n.stats.cacheMisses.Add(1)

	result := n.scanNearest(agent, hull, point, checkVisibility, filter, rejected)
	n.cache.store(point, key, result, now)

	if result == NoNode {
		n.logger.Debug("no nearest node", logging.Point("point", point), logging.Hull(hull.String()))
		n.finishNearest(metrics.OutcomeNotFound, started)
	} else {
		n.finishNearest(metrics.OutcomeFound, started)
	}
	return result
}

func (n *Network) scanNearest(agent Agent, hull Hull, point geom.Vec3, checkVisibility bool, filter AcceptanceFilter, rejected NodeID) NodeID {
	halfExtent := n.config.MaxLinkDistance
	if agent != nil && agent.Capabilities().Intersects(CapMoveFly) {
		halfExtent = n.config.MaxAirLinkDistance
	}

	near := n.ListNodesInBox(geom.BoxAround(point, halfExtent), n.config.MaxNearNodes, nearFilter{point: point, agent: agent})
	for _, c := range near {
		if c.ID == rejected {
			continue
		}
		node := &n.nodes[c.ID]
		if agent != nil && !agent.CanFitAt(node) {
			continue
		}
		if checkVisibility && n.trace(point, node.Position(hull)) {
			continue
		}
		if filter != nil && !filter.IsValid(node) {
			if !filter.ShouldContinue() {
				return NoNode
			}
			continue
		}
		return c.ID
	}
	return NoNode
}

func (n *Network) finishNearest(outcome string, started time.Time) {
	elapsed := time.Since(started)
	n.stats.trackNearestTime(elapsed)
	if n.metricsRegistry != nil {
		n.metricsRegistry.RecordNearestQuery(outcome, elapsed)
	}
}
