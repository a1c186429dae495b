package navgraph

import "github.com/dd0wney/cluso-navgraph/pkg/logging"

// Connected reports whether b may be reachable from a according to zones.
// A node is always connected to itself. SOLO nodes connect to nothing else and
// UNIVERSAL nodes connect to everything.
func (n *Network) Connected(a, b NodeID) bool {
	if a == b {
		return true
	}
	if !n.validNode(a) || !n.validNode(b) {
		return false
	}
	za, zb := n.nodes[a].zone, n.nodes[b].zone
	if za == ZoneSolo || zb == ZoneSolo {
		return false
	}
	if za == ZoneUniversal || zb == ZoneUniversal {
		return true
	}
	return za == zb
}

// RebuildZones assigns a zone to every node by flood fill over links that are
// not off. Nodes with no usable link become ZoneSolo. ZoneUniversal nodes keep
// their tag and are not traversed. Returns the number of zones assigned.
func (n *Network) RebuildZones() int {
	for i := range n.nodes {
		if n.nodes[i].zone != ZoneUniversal {
			n.nodes[i].zone = ZoneUnknown
		}
	}

	next := ZoneFirst
	var queue []NodeID
	for i := range n.nodes {
		start := &n.nodes[i]
		if start.zone != ZoneUnknown {
			continue
		}
		if !n.hasUsableLink(start) {
			start.zone = ZoneSolo
			continue
		}

		start.zone = next
		queue = append(queue[:0], start.id)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, lid := range n.nodes[cur].links {
				l := &n.links[lid]
				if l.flags&LinkOff != 0 {
					continue
				}
				other := &n.nodes[l.Other(cur)]
				if other.zone != ZoneUnknown {
					continue
				}
				other.zone = next
				queue = append(queue, other.id)
			}
		}
		next++
	}

	zones := int(next - ZoneFirst)
	if n.metricsRegistry != nil {
		n.metricsRegistry.SetZoneCount(zones)
	}
	n.logger.Info("zones rebuilt", logging.Count(zones), logging.Int("nodes", len(n.nodes)))
	return zones
}

func (n *Network) hasUsableLink(node *Node) bool {
	for _, lid := range node.links {
		l := &n.links[lid]
		if l.flags&LinkOff == 0 && n.nodes[l.Other(node.id)].zone != ZoneUniversal {
			return true
		}
	}
	return false
}
