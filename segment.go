package softbody

import "math"

// Segment is a finite line between A and B.
type Segment struct {
	A, B Vector
}

func NewSegment(a, b Vector) Segment {
	return Segment{A: a, B: b}
}

func (seg Segment) IsVertical() bool {
	return seg.A.X == seg.B.X
}

func (seg Segment) IsHorizontal() bool {
	return seg.A.Y == seg.B.Y
}

// slope is undefined for vertical segments; callers branch on IsVertical first.
func (seg Segment) slope() float64 {
	return (seg.B.Y - seg.A.Y) / (seg.B.X - seg.A.X)
}

func (seg Segment) intercept() float64 {
	return seg.A.Y - seg.slope()*seg.A.X
}

func (seg Segment) BB() BB {
	return NewBBForPoints([]Vector{seg.A, seg.B})
}

func (seg Segment) delta() Vector {
	return PointDiff(seg.A, seg.B)
}

// Project returns the foot of the perpendicular from p onto the segment.
// ok is false when the foot falls beyond either end.
func (seg Segment) Project(p Vector) (proj Vector, ok bool) {
	e1 := seg.delta()
	e2 := PointDiff(seg.A, p)
	area := e1.Dot(e1)
	if area == 0 {
		return seg.A, true
	}

	value := e1.Dot(e2)
	if value < 0 || value > area {
		return Vector{}, false
	}

	if seg.IsVertical() {
		return Vector{seg.A.X, p.Y}, true
	}
	if seg.IsHorizontal() {
		return Vector{p.X, seg.A.Y}, true
	}

	m := seg.slope()
	b := seg.intercept()
	perpIntercept := p.Y + p.X/m
	x := m * (perpIntercept - b) / (1 + m*m)
	return Vector{x, m*x + b}, true
}

// VerticalRaycast casts a ray from p along +Y and reports whether it crosses the segment.
// The x range is half open so a ray through a shared vertex counts once.
func (seg Segment) VerticalRaycast(p Vector) bool {
	minX := math.Min(seg.A.X, seg.B.X)
	maxX := math.Max(seg.A.X, seg.B.X)
	if p.X < minX || p.X >= maxX {
		return false
	}

	if seg.IsVertical() {
		return seg.A.Y > p.Y
	}
	return seg.slope()*p.X+seg.intercept() > p.Y
}

// Intersects reports whether two segments share at least one point.
// Colinear segments intersect when their extents overlap on either axis.
func (seg Segment) Intersects(other Segment) bool {
	common := PointDiff(seg.A, other.A)
	r := seg.delta()
	s := other.delta()

	numerator := common.Cross(r)
	denominator := r.Cross(s)

	if numerator == 0 && denominator == 0 {
		return !allEqual(
			negativeDiff(seg.A.X, other.A.X),
			negativeDiff(seg.A.X, other.B.X),
			negativeDiff(seg.B.X, other.A.X),
			negativeDiff(seg.B.X, other.B.X),
		) || !allEqual(
			negativeDiff(seg.A.Y, other.A.Y),
			negativeDiff(seg.A.Y, other.B.Y),
			negativeDiff(seg.B.Y, other.A.Y),
			negativeDiff(seg.B.Y, other.B.Y),
		)
	}
	if denominator == 0 {
		return false
	}

	u := numerator / denominator
	t := common.Cross(s) / denominator
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}
