package geom

// Box is an axis-aligned bounding box with inclusive bounds
type Box struct {
	Mins, Maxs Vec3
}

// NewBox orders the corners so Mins <= Maxs on every axis
func NewBox(a, b Vec3) Box {
	return Box{
		Mins: Vec3{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)},
		Maxs: Vec3{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)},
	}
}

// BoxAround returns the box of the given half-extent centered on p
func BoxAround(p Vec3, halfExtent float64) Box {
	h := Splat(halfExtent)
	return Box{Mins: p.Sub(h), Maxs: p.Add(h)}
}

// Contains reports whether p lies inside the box, bounds included
func (b Box) Contains(p Vec3) bool {
	return p.X >= b.Mins.X && p.X <= b.Maxs.X &&
		p.Y >= b.Mins.Y && p.Y <= b.Maxs.Y &&
		p.Z >= b.Mins.Z && p.Z <= b.Maxs.Z
}

// Expand grows the box by d on every side
func (b Box) Expand(d float64) Box {
	e := Splat(d)
	return Box{Mins: b.Mins.Sub(e), Maxs: b.Maxs.Add(e)}
}

// Center returns the midpoint of the box
func (b Box) Center() Vec3 {
	return b.Mins.Add(b.Maxs).Scale(0.5)
}
