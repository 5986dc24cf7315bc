package softbody

// HandlePointPolygonCollision pushes dot out of poly if they overlap.
func HandlePointPolygonCollision(dot *Dot, poly *Polygon) bool {
	return dot.HandleCollision(poly)
}

// HandlePointPointCollision pushes dots[i1] and dots[i2] one radius apart each when they are
// closer than threshold. Coincident dots have no separation axis and are left alone.
func HandlePointPointCollision(dots []Dot, i1, i2 int, threshold float64) bool {
	a := &dots[i1]
	b := &dots[i2]

	push, ok := separation(a.pos, b.pos, threshold, a.radius)
	if !ok {
		return false
	}
	a.Push(push)
	b.Push(push.Neg())
	return true
}

// separation returns the displacement for the dot at a; the dot at b takes its negation.
func separation(a, b Vector, threshold, radius float64) (Vector, bool) {
	delta := a.Sub(b)
	dist := delta.Length()
	if dist <= 0 || dist >= threshold {
		return Vector{}, false
	}
	return delta.Mult(radius / dist), true
}
