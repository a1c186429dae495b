// Package scenario builds synthetic navigation networks for benchmarks and tests.
package scenario

import (
	"fmt"
	"math/rand/v2"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
	"github.com/dd0wney/cluso-navgraph/pkg/navgraph"
)

// Level describes a synthetic level: a ground grid, an optional air layer and walls
type Level struct {
	Cols      int
	Rows      int
	Spacing   float64
	Origin    geom.Vec3
	AirHeight float64 // zero disables the air layer
	Walls     []Wall
}

// Layout is what Build produced
type Layout struct {
	Ground [][]navgraph.NodeID // [row][col]
	Air    [][]navgraph.NodeID // nil without an air layer
	Tracer WallTracer
	Bounds geom.Box
}

// BuildLine adds count nodes along +X, each linked to the previous one
func BuildLine(n *navgraph.Network, origin geom.Vec3, count int, spacing float64) ([]navgraph.NodeID, error) {
	ids := make([]navgraph.NodeID, 0, count)
	for i := 0; i < count; i++ {
		id, err := n.AddNode(origin.Add(geom.V(float64(i)*spacing, 0, 0)), 0)
		if err != nil {
			return ids, fmt.Errorf("line node %d: %w", i, err)
		}
		if i > 0 {
			if _, err := n.CreateLink(ids[i-1], id); err != nil {
				return ids, fmt.Errorf("line link %d: %w", i, err)
			}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Build adds the grid described by level to n. Links crossing a wall are
// switched off and zones are rebuilt.
func Build(n *navgraph.Network, level Level) (*Layout, error) {
	if level.Cols <= 0 || level.Rows <= 0 || level.Spacing <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d spacing %g", level.Cols, level.Rows, level.Spacing)
	}

	layout := &Layout{Tracer: WallTracer(level.Walls)}
	ground, err := buildLayer(n, level, 0, navgraph.NodeGround)
	if err != nil {
		return nil, err
	}
	layout.Ground = ground
	top := level.Origin.Add(geom.V(float64(level.Cols-1)*level.Spacing, float64(level.Rows-1)*level.Spacing, 0))

	if level.AirHeight > 0 {
		air, err := buildLayer(n, level, level.AirHeight, navgraph.NodeAir)
		if err != nil {
			return nil, err
		}
		for r := range air {
			for c := range air[r] {
				if err := linkFlyOnly(n, ground[r][c], air[r][c]); err != nil {
					return nil, err
				}
			}
		}
		layout.Air = air
		top = top.Add(geom.V(0, 0, level.AirHeight))
	}
	layout.Bounds = geom.NewBox(level.Origin, top)

	if len(level.Walls) > 0 {
		if err := disableBlockedLinks(n, layout.Tracer); err != nil {
			return nil, err
		}
	}
	n.RebuildZones()
	return layout, nil
}

func buildLayer(n *navgraph.Network, level Level, height float64, nodeType navgraph.NodeType) ([][]navgraph.NodeID, error) {
	layer := make([][]navgraph.NodeID, level.Rows)
	for r := 0; r < level.Rows; r++ {
		layer[r] = make([]navgraph.NodeID, level.Cols)
		for c := 0; c < level.Cols; c++ {
			p := level.Origin.Add(geom.V(float64(c)*level.Spacing, float64(r)*level.Spacing, height))
			id, err := n.AddNode(p, 0)
			if err != nil {
				return nil, fmt.Errorf("%s node %d,%d: %w", nodeType, r, c, err)
			}
			if err := n.SetNodeType(id, nodeType); err != nil {
				return nil, err
			}
			layer[r][c] = id

			if c > 0 {
				if err := linkLayer(n, layer[r][c-1], id, nodeType); err != nil {
					return nil, err
				}
			}
			if r > 0 {
				if err := linkLayer(n, layer[r-1][c], id, nodeType); err != nil {
					return nil, err
				}
			}
		}
	}
	return layer, nil
}

func linkLayer(n *navgraph.Network, a, b navgraph.NodeID, nodeType navgraph.NodeType) error {
	if nodeType == navgraph.NodeAir {
		return linkFlyOnly(n, a, b)
	}
	_, err := n.CreateLink(a, b)
	return err
}

// linkFlyOnly creates a link only flying agents may use
func linkFlyOnly(n *navgraph.Network, a, b navgraph.NodeID) error {
	id, err := n.CreateLink(a, b)
	if err != nil {
		return err
	}
	for h := navgraph.Hull(0); h < navgraph.NumHulls; h++ {
		if err := n.SetLinkAccepted(id, h, navgraph.CapMoveFly); err != nil {
			return err
		}
	}
	return nil
}

func disableBlockedLinks(n *navgraph.Network, tracer WallTracer) error {
	for i := 0; i < n.LinkCount(); i++ {
		l := n.Link(navgraph.LinkID(i))
		from, to := n.Node(l.Source()).Origin(), n.Node(l.Dest()).Origin()
		if tracer.Trace(from, to) {
			if err := n.SetLinkFlags(l.ID(), navgraph.LinkOff); err != nil {
				return err
			}
		}
	}
	return nil
}

// RandomPoints returns count points uniformly distributed in box
func RandomPoints(r *rand.Rand, box geom.Box, count int) []geom.Vec3 {
	size := box.Maxs.Sub(box.Mins)
	points := make([]geom.Vec3, count)
	for i := range points {
		points[i] = box.Mins.Add(geom.V(r.Float64()*size.X, r.Float64()*size.Y, r.Float64()*size.Z))
	}
	return points
}
