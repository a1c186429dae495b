package navgraph

import (
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
)

// Tree fan-out
const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// pointTolerance gives each node's point a non-degenerate bounding rect
const pointTolerance = 0.01

// indexedNode is the rtree entry for a node origin
type indexedNode struct {
	id   NodeID
	rect rtreego.Rect
}

func (e *indexedNode) Bounds() rtreego.Rect {
	return e.rect
}

// spatialIndex narrows box queries to nodes whose origins are near the box
type spatialIndex struct {
	tree *rtreego.Rtree
}

func newSpatialIndex() *spatialIndex {
	return &spatialIndex{tree: rtreego.NewTree(3, rtreeMinChildren, rtreeMaxChildren)}
}

func (s *spatialIndex) insert(id NodeID, origin geom.Vec3) {
	p := rtreego.Point(origin.Array())
	s.tree.Insert(&indexedNode{id: id, rect: p.ToRect(pointTolerance)})
}

// candidates returns ids of nodes whose origin might lie in box, in ascending id
// order. The result is a superset: callers apply the exact containment test.
func (s *spatialIndex) candidates(box geom.Box) []NodeID {
	grown := box.Expand(2 * pointTolerance)
	rect, err := rtreego.NewRectFromPoints(rtreego.Point(grown.Mins.Array()), rtreego.Point(grown.Maxs.Array()))
	if err != nil {
		return nil
	}
	hits := s.tree.SearchIntersect(rect)
	ids := make([]NodeID, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*indexedNode).id)
	}
	slices.Sort(ids)
	return ids
}
