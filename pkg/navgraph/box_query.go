package navgraph

import (
	"container/heap"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
)

// NodeDistance pairs a node id with its filter distance
type NodeDistance struct {
	ID     NodeID
	DistSq float64
}

// candidateHeap is a max-heap on distance; among equal distances the later
// candidate sits higher so it is the first to be evicted.
type candidateHeap []candidate

type candidate struct {
	id     NodeID
	distSq float64
	seq    int
}

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].distSq != h[j].distSq {
		return h[i].distSq > h[j].distSq
	}
	return h[i].seq > h[j].seq
}

func (h candidateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *candidateHeap) Push(x any) {
	*h = append(*h, x.(candidate))
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// ListNodesInBox returns up to maxCount nodes whose origin lies inside box and
// which filter accepts, closest first by filter.DistanceSq. Equal distances keep
// ascending id order.
func (n *Network) ListNodesInBox(box geom.Box, maxCount int, filter BoxFilter) []NodeDistance {
	n.stats.boxQueries.Add(1)
	if maxCount <= 0 || len(n.nodes) == 0 || filter == nil {
		n.recordBoxQuery(0)
		return nil
	}

	h := make(candidateHeap, 0, min(maxCount, len(n.nodes)))
	seq := 0
	for _, id := range n.index.candidates(box) {
		node := &n.nodes[id]
		if !box.Contains(node.origin) || !filter.IsValid(node) {
			continue
		}
		d := filter.DistanceSq(node)
		if h.Len() < maxCount {
			heap.Push(&h, candidate{id: id, distSq: d, seq: seq})
		} else if d < h[0].distSq {
			h[0] = candidate{id: id, distSq: d, seq: seq}
			heap.Fix(&h, 0)
		}
		seq++
	}

	out := make([]NodeDistance, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		c := heap.Pop(&h).(candidate)
		out[i] = NodeDistance{ID: c.id, DistSq: c.distSq}
	}
	n.recordBoxQuery(len(out))
	return out
}
