package softbody

import "github.com/golang/geo/r2"

// BB is an axis aligned bounding box.
type BB struct {
	rect r2.Rect
}

func NewBBForPoints(points []Vector) BB {
	pts := make([]r2.Point, len(points))
	for i, p := range points {
		pts[i] = r2.Point{X: p.X, Y: p.Y}
	}
	return BB{r2.RectFromPoints(pts...)}
}

func (bb BB) MinX() float64 { return bb.rect.X.Lo }
func (bb BB) MaxX() float64 { return bb.rect.X.Hi }
func (bb BB) MinY() float64 { return bb.rect.Y.Lo }
func (bb BB) MaxY() float64 { return bb.rect.Y.Hi }

func (bb BB) Intersects(other BB) bool {
	return bb.rect.Intersects(other.rect)
}

// IntersectsCircle reports whether a disc strictly overlaps the box. Touching edges do not count.
func (bb BB) IntersectsCircle(p Vector, r float64) bool {
	return p.X-r < bb.MaxX() &&
		p.X+r > bb.MinX() &&
		p.Y-r < bb.MaxY() &&
		p.Y+r > bb.MinY()
}

func (bb BB) ContainsVect(v Vector) bool {
	return bb.rect.ContainsPoint(r2.Point{X: v.X, Y: v.Y})
}
