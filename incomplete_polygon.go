package softbody

// IncompletePolygon collects vertices while a polygon is being drawn. It becomes a Polygon
// once a point lands near its first vertex.
type IncompletePolygon struct {
	points        []Vector
	closeDistance float64
}

func NewIncompletePolygon(closeDistance float64) *IncompletePolygon {
	return &IncompletePolygon{closeDistance: closeDistance}
}

// Points returns a copy of the vertices placed so far.
func (ip *IncompletePolygon) Points() []Vector {
	points := make([]Vector, len(ip.points))
	copy(points, ip.points)
	return points
}

func (ip *IncompletePolygon) IsEmpty() bool {
	return len(ip.points) == 0
}

// IsOnEnd reports whether a point at p would close the polygon.
func (ip *IncompletePolygon) IsOnEnd(p Vector) bool {
	return len(ip.points) >= 3 && p.Near(ip.points[0], ip.closeDistance)
}

func (ip *IncompletePolygon) Reset() {
	ip.points = ip.points[:0]
}

// CanAddPoint reports whether the edge leading to p stays clear of the polygon's own
// edges, the given polygons and the springs of body. body may be nil.
func (ip *IncompletePolygon) CanAddPoint(p Vector, polygons []*Polygon, body *SoftBody) bool {
	if len(ip.points) == 0 {
		return true
	}

	closing := ip.IsOnEnd(p)
	target := p
	if closing {
		target = ip.points[0]
	}
	edge := NewSegment(ip.points[len(ip.points)-1], target)

	if ip.crossesSelf(edge, closing) {
		return false
	}
	for _, poly := range polygons {
		if poly.IntersectsSegment(edge) {
			return false
		}
	}
	if body != nil {
		for _, seg := range body.Segments() {
			if seg.Intersects(edge) {
				return false
			}
		}
	}
	return true
}

// crossesSelf skips the edges that share an endpoint with edge.
func (ip *IncompletePolygon) crossesSelf(edge Segment, closing bool) bool {
	for k := 0; k < len(ip.points)-2; k++ {
		if closing && k == 0 {
			continue
		}
		if NewSegment(ip.points[k], ip.points[k+1]).Intersects(edge) {
			return true
		}
	}
	return false
}

// AddPoint places a vertex at p. When p closes the ring the finished polygon is returned
// and the drawing starts over. accepted is false when the new edge would cross something.
func (ip *IncompletePolygon) AddPoint(p Vector, polygons []*Polygon, body *SoftBody) (poly *Polygon, accepted bool) {
	if !ip.CanAddPoint(p, polygons, body) {
		return nil, false
	}

	if ip.IsOnEnd(p) {
		poly = NewPolygon(ip.points)
		ip.Reset()
		return poly, true
	}

	ip.points = append(ip.points, p)
	return nil, true
}
