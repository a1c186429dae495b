package scenario

import "github.com/dd0wney/cluso-navgraph/pkg/geom"

// Wall is a vertical plane at X spanning [MinY, MaxY] at every height
type Wall struct {
	X    float64 `yaml:"x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// blocks reports whether the segment from..to crosses the wall
func (w Wall) blocks(from, to geom.Vec3) bool {
	if (from.X < w.X) == (to.X < w.X) || from.X == to.X {
		return false
	}
	t := (w.X - from.X) / (to.X - from.X)
	y := from.Y + t*(to.Y-from.Y)
	return y >= w.MinY && y <= w.MaxY
}

// WallTracer is a line tracer obstructed by a set of walls
type WallTracer []Wall

// Trace reports whether any wall blocks the segment
func (t WallTracer) Trace(from, to geom.Vec3) bool {
	for _, w := range t {
		if w.blocks(from, to) {
			return true
		}
	}
	return false
}
