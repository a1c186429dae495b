package navgraph

import (
	"cmp"
	"slices"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
)

type bandStep struct {
	id     NodeID
	distSq float64
}

// FindNodeInBand searches outward from start for a node whose squared distance
// from ref lies in [minDistSq, maxDistSq] and which validator accepts.
//
// The walk only follows links usable by (hull, moveMask) whose far end is
// strictly farther from ref than the current node, farthest first. A node beyond
// maxDistSq ends its branch. A nil validator accepts every in-band node.
func (n *Network) FindNodeInBand(start NodeID, ref geom.Vec3, minDistSq, maxDistSq float64, hull Hull, moveMask Capability, validator Validator) NodeID {
	if !n.validNode(start) {
		return NoNode
	}
	n.stats.bandSearches.Add(1)

	visits := 0
	found := n.searchBand(start, ref, minDistSq, maxDistSq, hull, moveMask, validator, &visits)

	n.stats.bandVisits.Add(uint64(visits))
	if n.metricsRegistry != nil {
		n.metricsRegistry.RecordBandSearch(found != NoNode, visits)
	}
	return found
}

func (n *Network) searchBand(id NodeID, ref geom.Vec3, minDistSq, maxDistSq float64, hull Hull, moveMask Capability, validator Validator, visits *int) NodeID {
	*visits++
	node := &n.nodes[id]
	d := geom.DistSq(node.origin, ref)

	if d > maxDistSq {
		return NoNode
	}
	if d >= minDistSq && (validator == nil || validator.Validate(node)) {
		return id
	}

	next := make([]bandStep, 0, len(node.links))
	for _, lid := range node.links {
		l := &n.links[lid]
		if !l.Accepts(hull, moveMask) {
			continue
		}
		other := l.Other(id)
		od := geom.DistSq(n.nodes[other].origin, ref)
		if od <= d {
			continue
		}
		next = append(next, bandStep{id: other, distSq: od})
	}
	slices.SortStableFunc(next, func(a, b bandStep) int {
		return cmp.Compare(b.distSq, a.distSq)
	})

	for _, step := range next {
		if found := n.searchBand(step.id, ref, minDistSq, maxDistSq, hull, moveMask, validator, visits); found != NoNode {
			return found
		}
	}
	return NoNode
}
