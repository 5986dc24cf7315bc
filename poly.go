package softbody

const normalProbeDistance = 1e-3

// Polygon is a closed ring of vertices. It must not be mutated after construction since
// the bounding box is computed once.
type Polygon struct {
	verts []Vector
	bb    BB
}

func NewPolygon(verts []Vector) *Polygon {
	assert(len(verts) >= 3, "Polygon needs at least 3 vertices, got ", len(verts))

	poly := &Polygon{
		verts: make([]Vector, len(verts)),
	}
	copy(poly.verts, verts)
	poly.bb = NewBBForPoints(poly.verts)
	return poly
}

// NewFloor builds the default ground strip near the bottom of a width x height viewport.
func NewFloor(width, height float64) *Polygon {
	return NewPolygon([]Vector{
		{20, height - 50},
		{width - 20, height - 50},
		{width - 20, height - 20},
		{20, height - 20},
	})
}

func (poly *Polygon) Count() int {
	return len(poly.verts)
}

// Vertices returns a copy of the vertex ring.
func (poly *Polygon) Vertices() []Vector {
	verts := make([]Vector, len(poly.verts))
	copy(verts, poly.verts)
	return verts
}

func (poly *Polygon) BB() BB {
	return poly.bb
}

// Segments pairs each vertex with its successor, wrapping the last back to the first.
func (poly *Polygon) Segments() []Segment {
	count := len(poly.verts)
	segments := make([]Segment, count)
	for i, v0 := range poly.verts {
		segments[i] = NewSegment(v0, poly.verts[(i+1)%count])
	}
	return segments
}

func (poly *Polygon) crossings(p Vector) int {
	count := 0
	for _, seg := range poly.Segments() {
		if seg.VerticalRaycast(p) {
			count++
		}
	}
	return count
}

// ContainsPoint is the vertical raycast parity test.
func (poly *Polygon) ContainsPoint(p Vector) bool {
	if !poly.bb.ContainsVect(p) {
		return false
	}
	return poly.crossings(p)%2 != 0
}

// IntersectsSegment reports whether seg crosses any edge of the polygon.
func (poly *Polygon) IntersectsSegment(seg Segment) bool {
	if !poly.bb.Intersects(seg.BB()) {
		return false
	}
	for _, edge := range poly.Segments() {
		if edge.Intersects(seg) {
			return true
		}
	}
	return false
}

// ClosestProjection returns the shortest vector from p to a perpendicular projection on
// any edge. ok is false when no edge has a projection for p.
func (poly *Polygon) ClosestProjection(p Vector) (closest Vector, ok bool) {
	closest, _, ok = poly.closestEdge(p)
	return closest, ok
}

func (poly *Polygon) closestEdge(p Vector) (closest Vector, edge Segment, ok bool) {
	best := INFINITY
	for _, seg := range poly.Segments() {
		proj, found := seg.Project(p)
		if !found {
			continue
		}
		v := proj.Sub(p)
		if d := v.LengthSq(); d < best {
			best = d
			closest = v
			edge = seg
			ok = true
		}
	}
	return closest, edge, ok
}

// OutwardNormal returns the unit normal of edge pointing away from the polygon's interior.
func (poly *Polygon) OutwardNormal(edge Segment) Vector {
	d := edge.delta().Normalize()
	n := Vector{-d.Y, d.X}
	mid := edge.A.Add(edge.delta().Mult(0.5))
	if poly.ContainsPoint(mid.Add(n.Mult(normalProbeDistance))) {
		return n.Neg()
	}
	return n
}
