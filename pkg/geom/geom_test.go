package geom

import (
	"math"
	"testing"
)

func TestDistSq(t *testing.T) {
	tests := []struct {
		a, b     Vec3
		expected float64
	}{
		{V(0, 0, 0), V(0, 0, 0), 0},
		{V(0, 0, 0), V(3, 4, 0), 25},
		{V(1, 1, 1), V(2, 2, 2), 3},
		{V(-5, 0, 0), V(5, 0, 0), 100},
	}

	for _, tt := range tests {
		if got := DistSq(tt.a, tt.b); got != tt.expected {
			t.Errorf("DistSq(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}

	if d := Dist(V(0, 0, 0), V(3, 4, 0)); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist = %v, want 5", d)
	}
}

func TestNewBoxOrdersCorners(t *testing.T) {
	b := NewBox(V(10, -1, 5), V(-10, 1, -5))
	if b.Mins != V(-10, -1, -5) || b.Maxs != V(10, 1, 5) {
		t.Errorf("NewBox = %+v", b)
	}
}

func TestBoxContainsInclusive(t *testing.T) {
	b := BoxAround(V(0, 0, 0), 10)

	inside := []Vec3{V(0, 0, 0), V(10, 10, 10), V(-10, -10, -10), V(10, 0, -10)}
	for _, p := range inside {
		if !b.Contains(p) {
			t.Errorf("expected %v inside %+v", p, b)
		}
	}

	outside := []Vec3{V(10.001, 0, 0), V(0, -10.5, 0), V(0, 0, 11)}
	for _, p := range outside {
		if b.Contains(p) {
			t.Errorf("expected %v outside %+v", p, b)
		}
	}
}

func TestBoxExpandAndCenter(t *testing.T) {
	b := NewBox(V(0, 0, 0), V(2, 4, 6)).Expand(1)
	if b.Mins != V(-1, -1, -1) || b.Maxs != V(3, 5, 7) {
		t.Errorf("Expand = %+v", b)
	}
	if c := b.Center(); c != V(1, 2, 3) {
		t.Errorf("Center = %v", c)
	}
}
