package navgraph

import (
	"time"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
)

// Node is a usable position in the movement graph. Nodes live in the Network's
// arena and are addressed by NodeID; callers receive read-only pointers.
type Node struct {
	id       NodeID
	origin   geom.Vec3
	hullPos  [NumHulls]geom.Vec3
	yaw      float64
	zone     Zone
	nodeType NodeType
	links    []LinkID

	lockedUntil time.Time
}

func newNode(id NodeID, origin geom.Vec3, yaw float64, maxLinks int) Node {
	n := Node{
		id:       id,
		origin:   origin,
		yaw:      yaw,
		zone:     ZoneUnknown,
		nodeType: NodeGround,
		links:    make([]LinkID, 0, maxLinks),
	}
	for h := range n.hullPos {
		n.hullPos[h] = origin
	}
	return n
}

func (n *Node) ID() NodeID        { return n.id }
func (n *Node) Origin() geom.Vec3 { return n.origin }
func (n *Node) Yaw() float64      { return n.yaw }
func (n *Node) Zone() Zone        { return n.zone }
func (n *Node) Type() NodeType    { return n.nodeType }
func (n *Node) NumLinks() int     { return len(n.links) }

// Position returns where an agent of the given hull stands at this node.
// Unknown hulls get the canonical origin.
func (n *Node) Position(h Hull) geom.Vec3 {
	if !h.Valid() {
		return n.origin
	}
	return n.hullPos[h]
}

// Links returns a copy of the node's link ids in insertion order
func (n *Node) Links() []LinkID {
	out := make([]LinkID, len(n.links))
	copy(out, n.links)
	return out
}

// IsLocked reports whether the node is reserved at time now
func (n *Node) IsLocked(now time.Time) bool {
	return now.Before(n.lockedUntil)
}

func (n *Node) hasLinkCapacity(max int) bool {
	return len(n.links) < max
}
