package softbody

import "testing"

func TestBB_ForPoints(t *testing.T) {
	bb := NewBBForPoints([]Vector{{3, 7}, {-1, 2}, {5, -4}})
	if bb.MinX() != -1 || bb.MaxX() != 5 || bb.MinY() != -4 || bb.MaxY() != 7 {
		t.Fatalf("Unexpected box %v..%v x %v..%v", bb.MinX(), bb.MaxX(), bb.MinY(), bb.MaxY())
	}
}

func TestBB_IntersectsCircle(t *testing.T) {
	bb := NewBBForPoints([]Vector{{0, 0}, {10, 10}})

	if !bb.IntersectsCircle(Vector{-5, 5}, 6) {
		t.Error("Expected overlapping disc to intersect")
	}
	if bb.IntersectsCircle(Vector{-5, 5}, 5) {
		t.Error("Touching disc should not intersect")
	}
	if bb.IntersectsCircle(Vector{20, 20}, 5) {
		t.Error("Far disc should not intersect")
	}
}

func TestBB_Intersects(t *testing.T) {
	a := NewBBForPoints([]Vector{{-1, -1}, {1, 1}})
	b := NewBBForPoints([]Vector{{0.5, -1}, {2.5, 1}})
	c := NewBBForPoints([]Vector{{4, -1}, {6, 1}})
	if !a.Intersects(b) {
		t.Error("Expected a and b to intersect")
	}
	if a.Intersects(c) {
		t.Error("Expected a and c to be apart")
	}
	if !NewBBForPoints([]Vector{{-4, -4}, {4, 4}}).Intersects(c) {
		t.Error("Expected a touching box to intersect")
	}
	if !a.ContainsVect(Vector{1, 1}) || a.ContainsVect(Vector{1.5, 0}) {
		t.Error("ContainsVect should include edges only")
	}
}
