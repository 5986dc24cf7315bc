package softbody

import (
	"math"
	"testing"
)

func TestHandlePointPointCollision(t *testing.T) {
	dots := pair(Vector{0, 0}, Vector{4, 0})

	if !HandlePointPointCollision(dots, 0, 1, Radius) {
		t.Fatal("Expected overlapping dots to be pushed")
	}
	if !dots[0].Position().Equal(Vector{-Radius, 0}) {
		t.Errorf("Expected first dot at -10,0 got %v", dots[0].Position())
	}
	if !dots[1].Position().Equal(Vector{4 + Radius, 0}) {
		t.Errorf("Expected second dot at 14,0 got %v", dots[1].Position())
	}
}

func TestHandlePointPointCollisionApart(t *testing.T) {
	dots := pair(Vector{0, 0}, Vector{40, 0})
	if HandlePointPointCollision(dots, 0, 1, Radius) {
		t.Error("Dots farther than the threshold should be left alone")
	}
}

func TestHandlePointPointCollisionCoincident(t *testing.T) {
	dots := pair(Vector{3, 3}, Vector{3, 3})
	if HandlePointPointCollision(dots, 0, 1, Radius) {
		t.Error("Coincident dots have no axis to separate along")
	}
	for i := range dots {
		p := dots[i].Position()
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || !p.Equal(Vector{3, 3}) {
			t.Errorf("Dot %d moved to %v", i, p)
		}
	}
}

func TestHandlePointPolygonCollision(t *testing.T) {
	dot := NewDot(Vector{5, -6}, Radius)
	if !HandlePointPolygonCollision(dot, square(10)) {
		t.Fatal("Expected a collision")
	}
	if math.Abs(dot.Position().Y+Radius) > 1e-9 {
		t.Errorf("Expected dot pushed to y=-10, got %v", dot.Position())
	}
}
