package navgraph

import (
	"time"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
	"github.com/dd0wney/cluso-navgraph/pkg/logging"
)

// SetNodeType sets the traversal medium of a node
func (n *Network) SetNodeType(id NodeID, t NodeType) error {
	if !n.validNode(id) {
		return newError("SetNodeType").node(id).cause(ErrUnknownNode).build()
	}
	n.nodes[id].nodeType = t
	return nil
}

// SetHullPosition sets where agents of hull h stand at the node
func (n *Network) SetHullPosition(id NodeID, h Hull, pos geom.Vec3) error {
	if !n.validNode(id) {
		return newError("SetHullPosition").node(id).cause(ErrUnknownNode).build()
	}
	if !h.Valid() {
		return newError("SetHullPosition").node(id).cause(ErrInvalidHull).build()
	}
	n.nodes[id].hullPos[h] = pos
	return nil
}

// SetZone tags a node with a zone. Used for ZoneUniversal and ZoneSolo nodes
// and for graphs whose zones were computed elsewhere.
func (n *Network) SetZone(id NodeID, zone Zone) error {
	if !n.validNode(id) {
		return newError("SetZone").node(id).cause(ErrUnknownNode).build()
	}
	n.nodes[id].zone = zone
	return nil
}

// SetLinkAccepted replaces the movement types hull h may use on the link
func (n *Network) SetLinkAccepted(id LinkID, h Hull, caps Capability) error {
	if !n.validLink(id) {
		return newError("SetLinkAccepted").link(id).cause(ErrUnknownLink).build()
	}
	if !h.Valid() {
		return newError("SetLinkAccepted").link(id).cause(ErrInvalidHull).build()
	}
	n.links[id].accepted[h] = caps
	return nil
}

// SetLinkFlags sets flag bits on a link
func (n *Network) SetLinkFlags(id LinkID, flags LinkFlags) error {
	if !n.validLink(id) {
		return newError("SetLinkFlags").link(id).cause(ErrUnknownLink).build()
	}
	n.links[id].flags |= flags
	return nil
}

// ClearLinkFlags clears flag bits on a link
func (n *Network) ClearLinkFlags(id LinkID, flags LinkFlags) error {
	if !n.validLink(id) {
		return newError("ClearLinkFlags").link(id).cause(ErrUnknownLink).build()
	}
	n.links[id].flags &^= flags
	return nil
}

// MarkLinkStale flags a link an agent found blocked. ForgiveStaleLinks clears the
// flag once forgiveAfter has elapsed. The flag is read by callers (Link.IsStale);
// band search still follows stale links unless its validator rejects them.
func (n *Network) MarkLinkStale(id LinkID, forgiveAfter time.Duration) error {
	if !n.validLink(id) {
		return newError("MarkLinkStale").link(id).cause(ErrUnknownLink).build()
	}
	l := &n.links[id]
	l.flags |= LinkStaleSuggested
	l.staleUntil = n.clock().Add(forgiveAfter)
	n.logger.Debug("link marked stale", logging.LinkID(int(id)), logging.Duration("forgive_after", forgiveAfter))
	return nil
}

// ForgiveStaleLinks clears expired stale flags and returns how many were cleared
func (n *Network) ForgiveStaleLinks() int {
	now := n.clock()
	forgiven := 0
	for i := range n.links {
		l := &n.links[i]
		if l.flags&LinkStaleSuggested != 0 && !now.Before(l.staleUntil) {
			l.flags &^= LinkStaleSuggested
			l.staleUntil = time.Time{}
			forgiven++
		}
	}
	if forgiven > 0 {
		if n.metricsRegistry != nil {
			n.metricsRegistry.StaleLinksForgivenTotal.Add(float64(forgiven))
		}
		n.logger.Info("stale links forgiven", logging.Count(forgiven))
	}
	return forgiven
}

// AddLinkDanger increments a link's danger count
func (n *Network) AddLinkDanger(id LinkID) error {
	if !n.validLink(id) {
		return newError("AddLinkDanger").link(id).cause(ErrUnknownLink).build()
	}
	n.links[id].dangerCount++
	return nil
}

// RemoveLinkDanger decrements a link's danger count, never below zero
func (n *Network) RemoveLinkDanger(id LinkID) error {
	if !n.validLink(id) {
		return newError("RemoveLinkDanger").link(id).cause(ErrUnknownLink).build()
	}
	if n.links[id].dangerCount > 0 {
		n.links[id].dangerCount--
	}
	return nil
}

// LockNode reserves a node for duration. NearestNode does not consult locks;
// agents that honour them report locked nodes through IsUnusable.
func (n *Network) LockNode(id NodeID, duration time.Duration) error {
	if !n.validNode(id) {
		return newError("LockNode").node(id).cause(ErrUnknownNode).build()
	}
	n.nodes[id].lockedUntil = n.clock().Add(duration)
	return nil
}

// UnlockNode releases a reservation
func (n *Network) UnlockNode(id NodeID) error {
	if !n.validNode(id) {
		return newError("UnlockNode").node(id).cause(ErrUnknownNode).build()
	}
	n.nodes[id].lockedUntil = time.Time{}
	return nil
}

// IsNodeLocked reports whether a node is currently reserved
func (n *Network) IsNodeLocked(id NodeID) bool {
	if !n.validNode(id) {
		return false
	}
	return n.nodes[id].IsLocked(n.clock())
}

// FlushCache drops every nearest-node cache entry
func (n *Network) FlushCache() {
	n.cache.flush()
	if n.metricsRegistry != nil {
		n.metricsRegistry.CacheFlushesTotal.Inc()
	}
}
